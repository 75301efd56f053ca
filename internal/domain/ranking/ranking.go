// Package ranking orders language summaries for the report tables.
package ranking

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/okian/benchtable/internal/domain/scoring"
)

// ErrInsufficientData is returned when the leading group does not have the
// expected number of runs, which signals an incomplete log.
var ErrInsufficientData = errors.New("insufficient data")

const (
	defaultMulticoreMarker = "Concurrent"
	defaultExpectedRuns    = 3
)

// Option configures a Ranker.
type Option func(*Ranker)

// WithMulticoreMarker sets the substring that moves a language to the
// multicore table.
func WithMulticoreMarker(marker string) Option {
	return func(r *Ranker) {
		if marker != "" {
			r.multicoreMarker = marker
		}
	}
}

// WithExpectedRuns sets the run count checked on the leading group.
func WithExpectedRuns(n int) Option {
	return func(r *Ranker) {
		if n > 0 {
			r.expectedRuns = n
		}
	}
}

// Ranker produces the time, multicore and memory orderings.
type Ranker struct {
	multicoreMarker string
	expectedRuns    int
}

// New creates a Ranker.
func New(opts ...Option) *Ranker {
	r := &Ranker{
		multicoreMarker: defaultMulticoreMarker,
		expectedRuns:    defaultExpectedRuns,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Ranking holds the three table orderings.
type Ranking struct {
	// ByTime is every language by ascending total time, OOM totals last.
	ByTime []scoring.Summary
	// Primary is ByTime without multicore languages.
	Primary []scoring.Summary
	// Multicore is the multicore languages by ascending total time.
	Multicore []scoring.Summary
	// ByMemory is every language by ascending total memory, OOM totals last.
	ByMemory []scoring.Summary
}

// SortByTime stably sorts summaries by total time.
func SortByTime(in []scoring.Summary) []scoring.Summary {
	out := slices.Clone(in)
	slices.SortStableFunc(out, func(a, b scoring.Summary) int {
		return compare(a.TotalTime.Less(b.TotalTime), b.TotalTime.Less(a.TotalTime))
	})
	return out
}

// SortByMemory stably sorts summaries by total memory.
func SortByMemory(in []scoring.Summary) []scoring.Summary {
	out := slices.Clone(in)
	slices.SortStableFunc(out, func(a, b scoring.Summary) int {
		return compare(a.TotalMemory.Less(b.TotalMemory), b.TotalMemory.Less(a.TotalMemory))
	})
	return out
}

func compare(less, greater bool) int {
	switch {
	case less:
		return -1
	case greater:
		return 1
	default:
		return 0
	}
}

// IsMulticore reports whether name belongs in the multicore table.
func (r *Ranker) IsMulticore(name string) bool {
	return strings.Contains(name, r.multicoreMarker)
}

// Rank builds all orderings of summaries.
func (r *Ranker) Rank(summaries []scoring.Summary) Ranking {
	rk := Ranking{
		ByTime:   SortByTime(summaries),
		ByMemory: SortByMemory(summaries),
	}
	for _, s := range rk.ByTime {
		if r.IsMulticore(s.Name) {
			rk.Multicore = append(rk.Multicore, s)
		} else {
			rk.Primary = append(rk.Primary, s)
		}
	}
	return rk
}

// Check verifies that the fastest language has the expected run count.
// Only the leading group is inspected.
func (r *Ranker) Check(rk Ranking) error {
	if len(rk.ByTime) == 0 {
		return fmt.Errorf("%w: no languages found", ErrInsufficientData)
	}
	first := rk.ByTime[0]
	if len(first.Runs) != r.expectedRuns {
		return fmt.Errorf("%w: %s has %d runs, want %d", ErrInsufficientData, first.Name, len(first.Runs), r.expectedRuns)
	}
	return nil
}
