// Package scoring computes per-run and per-language averages and renders them.
package scoring

import (
	"fmt"

	"github.com/okian/benchtable/internal/domain/model"
)

const (
	millisecondsPerSecond = 1000
	kilobytesPerMegabyte  = 1000
)

// Rendered placeholders.
const (
	OOM          = "OOM"
	NotAvailable = "N/A"
)

// AvgTime returns the mean of s's times in milliseconds, or OutOfMemory
// when s has no time readings.
func AvgTime(s *model.Score) model.Average {
	times := s.Times()
	if len(times) == 0 {
		return model.OutOfMemory()
	}
	var sum float64
	for _, m := range times {
		sum += m.Milliseconds()
	}
	return model.Measured(sum / float64(len(times)))
}

// AvgMemory returns the mean of s's memory readings in kilobytes, or
// OutOfMemory when s has none.
func AvgMemory(s *model.Score) model.Average {
	mem := s.Memory()
	if len(mem) == 0 {
		return model.OutOfMemory()
	}
	var sum float64
	for _, kb := range mem {
		sum += float64(kb)
	}
	return model.Measured(sum / float64(len(mem)))
}

// Run is the averaged view of one Score.
type Run struct {
	Time   model.Average
	Memory model.Average
}

// Summary is the averaged view of one ScoreGroup.
type Summary struct {
	Name        string
	Runs        []Run
	TotalTime   model.Average
	TotalMemory model.Average
}

// Summarize averages every run of g and sums them in run order.
// An empty group sums to OutOfMemory.
func Summarize(g *model.ScoreGroup) Summary {
	sum := Summary{Name: g.Name, Runs: make([]Run, 0, g.Len())}
	if g.Len() == 0 {
		sum.TotalTime = model.OutOfMemory()
		sum.TotalMemory = model.OutOfMemory()
		return sum
	}

	sum.TotalTime = model.Measured(0)
	sum.TotalMemory = model.Measured(0)
	for _, s := range g.Runs {
		r := Run{Time: AvgTime(s), Memory: AvgMemory(s)}
		sum.Runs = append(sum.Runs, r)
		sum.TotalTime = sum.TotalTime.Add(r.Time)
		sum.TotalMemory = sum.TotalMemory.Add(r.Memory)
	}
	return sum
}

// SummarizeAll summarizes groups, keeping their order.
func SummarizeAll(groups []*model.ScoreGroup) []Summary {
	out := make([]Summary, 0, len(groups))
	for _, g := range groups {
		out = append(out, Summarize(g))
	}
	return out
}

// FormatTime renders a time average: below one second in ms, otherwise in s.
func FormatTime(a model.Average) string {
	v, ok := a.Value()
	if !ok {
		return OOM
	}
	if v < millisecondsPerSecond {
		return fmt.Sprintf("%.2f ms", v)
	}
	return fmt.Sprintf("%.2f s", v/millisecondsPerSecond)
}

// FormatMemory renders a kilobyte average in MB.
func FormatMemory(a model.Average) string {
	v, ok := a.Value()
	if !ok {
		return OOM
	}
	return fmt.Sprintf("%.2f MB", v/kilobytesPerMegabyte)
}

// TimeCell renders a run's time column.
func (r Run) TimeCell() string { return FormatTime(r.Time) }

// MemoryCell renders a run's memory column. A run without time readings
// is rendered OOM even if memory was reported.
func (r Run) MemoryCell() string {
	if r.Time.IsOOM() {
		return OOM
	}
	return FormatMemory(r.Memory)
}

// TotalTimeCell renders the total time column.
func (s Summary) TotalTimeCell() string {
	if s.TotalTime.IsOOM() {
		return NotAvailable
	}
	return FormatTime(s.TotalTime)
}

// TotalMemoryCell renders the total memory column.
func (s Summary) TotalMemoryCell() string {
	if s.TotalTime.IsOOM() || s.TotalMemory.IsOOM() {
		return NotAvailable
	}
	return FormatMemory(s.TotalMemory)
}

// OOMRuns counts runs without time and without memory readings.
func (s Summary) OOMRuns() (timeOOM, memoryOOM int) {
	for _, r := range s.Runs {
		if r.Time.IsOOM() {
			timeOOM++
		}
		if r.Memory.IsOOM() {
			memoryOOM++
		}
	}
	return timeOOM, memoryOOM
}
