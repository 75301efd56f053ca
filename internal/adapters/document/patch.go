// Package document splices generated tables into a markdown document.
package document

import (
	"fmt"
	"strings"
)

const (
	defaultSeparator = "| ----"
	defaultDetails   = "<details>"
)

// Option configures a Patcher.
type Option func(*Patcher)

// WithSeparatorMarker sets the prefix of the table separator row that opens
// the replaceable region.
func WithSeparatorMarker(marker string) Option {
	return func(p *Patcher) {
		if marker != "" {
			p.separator = marker
		}
	}
}

// WithDetailsMarker sets the substring of the line that closes the region.
func WithDetailsMarker(marker string) Option {
	return func(p *Patcher) {
		if marker != "" {
			p.details = marker
		}
	}
}

// Patcher replaces the lines between the first separator row and the next
// details line. Everything else is copied unchanged.
type Patcher struct {
	separator string
	details   string
}

// New creates a Patcher.
func New(opts ...Option) *Patcher {
	p := &Patcher{separator: defaultSeparator, details: defaultDetails}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Patch returns doc with the region replaced by content. The separator and
// details lines are kept. Only the first region is replaced.
func (p *Patcher) Patch(doc string, content []string) (string, error) {
	lines := strings.Split(doc, "\n")
	out := make([]string, 0, len(lines)+len(content))

	var replacing, replaced bool
	for _, line := range lines {
		switch {
		case replacing:
			if !strings.Contains(strings.TrimSpace(line), p.details) {
				continue
			}
			out = append(out, content...)
			out = append(out, line)
			replacing = false
			replaced = true
		case !replaced && strings.HasPrefix(line, p.separator):
			out = append(out, line)
			replacing = true
		default:
			out = append(out, line)
		}
	}

	if replacing {
		return "", fmt.Errorf("%w: no %q line after %q", ErrMissingMarker, p.details, p.separator)
	}
	if !replaced {
		return "", fmt.Errorf("%w: no line starting with %q", ErrMissingMarker, p.separator)
	}
	return strings.Join(out, "\n"), nil
}

// Region returns the lines Patch would drop from doc, for dry runs.
func (p *Patcher) Region(doc string) ([]string, error) {
	var region []string
	replacing := false
	for _, line := range strings.Split(doc, "\n") {
		if replacing {
			if strings.Contains(strings.TrimSpace(line), p.details) {
				return region, nil
			}
			region = append(region, line)
			continue
		}
		if strings.HasPrefix(line, p.separator) {
			replacing = true
		}
	}
	if replacing {
		return nil, fmt.Errorf("%w: no %q line after %q", ErrMissingMarker, p.details, p.separator)
	}
	return nil, fmt.Errorf("%w: no line starting with %q", ErrMissingMarker, p.separator)
}
