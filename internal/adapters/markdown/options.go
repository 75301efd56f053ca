package markdown

// Option applies a configuration option to the Formatter.
type Option func(*Formatter)

// WithSubstitutions replaces the name substitution table.
func WithSubstitutions(subs map[string]string) Option {
	return func(f *Formatter) {
		if subs == nil {
			return
		}
		f.substitutions = make(map[string]string, len(subs))
		for k, v := range subs {
			f.substitutions[k] = v
		}
	}
}

// WithTierLabels sets the tier column labels.
func WithTierLabels(labels []string) Option {
	return func(f *Formatter) {
		if len(labels) > 0 {
			f.tierLabels = append([]string(nil), labels...)
		}
	}
}

// WithHeadings sets the multicore and memory section headings.
func WithHeadings(multicore, memory string) Option {
	return func(f *Formatter) {
		if multicore != "" {
			f.multicoreHeading = multicore
		}
		if memory != "" {
			f.memoryHeading = memory
		}
	}
}
