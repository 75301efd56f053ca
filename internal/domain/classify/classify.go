// Package classify maps single log lines to tagged classifications.
package classify

import (
	"regexp"
	"strings"

	"github.com/okian/benchtable/internal/domain/model"
)

// Kind tags a classified line.
type Kind int

// Line kinds in matching priority order.
const (
	KindUnrelated Kind = iota
	KindHeader
	KindTime
	KindMemory
)

func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindTime:
		return "time"
	case KindMemory:
		return "memory"
	default:
		return "unrelated"
	}
}

// Line is the result of classifying one line of text. Only the fields
// belonging to Kind are set.
type Line struct {
	Kind Kind
	// Name is the language name of a header line.
	Name string
	// Value is the numeric text of a time or memory line.
	Value string
	// Unit is the normalized unit of a time line.
	Unit model.Unit
}

// Matcher recognizes one kind of line.
type Matcher interface {
	Match(text string) (Line, bool)
}

// MatcherFunc adapts a function to Matcher.
type MatcherFunc func(text string) (Line, bool)

// Match calls f.
func (f MatcherFunc) Match(text string) (Line, bool) { return f(text) }

var (
	headerPattern = regexp.MustCompile(`^[A-Za-z]`)
	timePattern   = regexp.MustCompile(`Processing time\D*(\d+(?:\.\d+)?)\s*(milliseconds|ms|s)`)
	memoryPattern = regexp.MustCompile(`memory: (\d+)k`)

	nameCleaner = strings.NewReplacer(":", "", "\n", "", "\r", "")
)

// Header matches lines starting with a letter and extracts the language name.
var Header = MatcherFunc(func(text string) (Line, bool) {
	if !headerPattern.MatchString(text) {
		return Line{}, false
	}
	name := strings.TrimSpace(nameCleaner.Replace(strings.TrimSpace(text)))
	return Line{Kind: KindHeader, Name: name}, true
})

// Time matches "Processing time ... <number><unit>" lines.
var Time = MatcherFunc(func(text string) (Line, bool) {
	m := timePattern.FindStringSubmatch(text)
	if m == nil {
		return Line{}, false
	}
	unit, err := model.ParseUnit(m[2])
	if err != nil {
		return Line{}, false
	}
	return Line{Kind: KindTime, Value: m[1], Unit: unit}, true
})

// Memory matches "memory: <kilobytes>k" lines.
var Memory = MatcherFunc(func(text string) (Line, bool) {
	m := memoryPattern.FindStringSubmatch(text)
	if m == nil {
		return Line{}, false
	}
	return Line{Kind: KindMemory, Value: m[1]}, true
})

// Classifier tries its matchers in order; the first match wins.
type Classifier struct {
	matchers []Matcher
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithMatcher appends a matcher tried after the built-in ones.
func WithMatcher(m Matcher) Option {
	return func(c *Classifier) {
		if m != nil {
			c.matchers = append(c.matchers, m)
		}
	}
}

// New creates a Classifier with the header, time and memory matchers.
func New(opts ...Option) *Classifier {
	c := &Classifier{matchers: []Matcher{Header, Time, Memory}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify returns the first matching classification or KindUnrelated.
func (c *Classifier) Classify(text string) Line {
	for _, m := range c.matchers {
		if l, ok := m.Match(text); ok {
			return l
		}
	}
	return Line{Kind: KindUnrelated}
}

var defaultClassifier = New()

// Classify classifies text with the default matchers.
func Classify(text string) Line {
	return defaultClassifier.Classify(text)
}
