package testlog

// Language describes one language's runs in a generated log.
type Language struct {
	Name string
	// TimesMS holds one processing time per tier.
	TimesMS []float64
	// MemoryKB holds one memory reading per tier.
	MemoryKB []int64
	// OOMTiers lists tiers (0-based) that print no processing time.
	OOMTiers []int
}

// Config holds configuration for log generation.
type Config struct {
	Languages []Language
	// RepeatHeaders prints every header twice, as some runners echo it.
	RepeatHeaders bool
	// Noise adds unrelated lines between measurements.
	Noise bool
	// SecondsFrom prints times at or above this many milliseconds in seconds.
	// Zero keeps every time in milliseconds.
	SecondsFrom float64
}

// Tiers returns the largest tier count across languages.
func (c Config) Tiers() int {
	n := 0
	for _, l := range c.Languages {
		n = max(n, len(l.TimesMS))
	}
	return n
}

func (l Language) isOOM(tier int) bool {
	for _, t := range l.OOMTiers {
		if t == tier {
			return true
		}
	}
	return false
}
