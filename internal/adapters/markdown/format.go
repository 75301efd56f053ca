// Package markdown renders ranked summaries as markdown table rows.
package markdown

import (
	"strings"

	"github.com/okian/benchtable/internal/domain/ranking"
	"github.com/okian/benchtable/internal/domain/scoring"
)

const (
	nameColumn   = "Language"
	totalColumn  = "Total"
	minRuleWidth = 3
)

// Formatter renders rows with a fixed column layout: name, one column per
// tier, total.
type Formatter struct {
	substitutions    map[string]string
	tierLabels       []string
	multicoreHeading string
	memoryHeading    string
}

// New creates a Formatter.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		substitutions: map[string]string{
			"Julia HO": "_Julia HO_[^1]",
			"Inko":     "Inko[^2]",
		},
		tierLabels:       []string{"5k posts", "20k posts", "60k posts"},
		multicoreHeading: "### Multicore Results",
		memoryHeading:    "### Memory Usage",
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// DisplayName applies the literal name substitutions.
func (f *Formatter) DisplayName(name string) string {
	if sub, ok := f.substitutions[name]; ok {
		return sub
	}
	return name
}

// TimeRow renders the time columns of s.
func (f *Formatter) TimeRow(s scoring.Summary) string {
	return f.row(s, scoring.Run.TimeCell, s.TotalTimeCell())
}

// MemoryRow renders the memory columns of s.
func (f *Formatter) MemoryRow(s scoring.Summary) string {
	return f.row(s, scoring.Run.MemoryCell, s.TotalMemoryCell())
}

func (f *Formatter) row(s scoring.Summary, cell func(scoring.Run) string, total string) string {
	cells := make([]string, 0, len(f.tierLabels)+2)
	cells = append(cells, f.DisplayName(s.Name))
	for i := range f.tierLabels {
		if i < len(s.Runs) {
			cells = append(cells, cell(s.Runs[i]))
		} else {
			cells = append(cells, scoring.NotAvailable)
		}
	}
	cells = append(cells, total)
	return joinRow(cells)
}

// HeaderRows renders the column header and separator rows.
func (f *Formatter) HeaderRows() []string {
	head := make([]string, 0, len(f.tierLabels)+2)
	head = append(head, nameColumn)
	head = append(head, f.tierLabels...)
	head = append(head, totalColumn)

	rule := make([]string, len(head))
	for i, h := range head {
		rule[i] = strings.Repeat("-", max(len(h), minRuleWidth))
	}
	return []string{joinRow(head), joinRow(rule)}
}

func joinRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}

// Tables is the generated replacement content, in document order.
type Tables struct {
	Time           []string
	MulticoreBlock []string
	Multicore      []string
	MemoryBlock    []string
	Memory         []string
}

// Render formats every table of rk.
func (f *Formatter) Render(rk ranking.Ranking) Tables {
	t := Tables{
		MulticoreBlock: f.headingBlock(f.multicoreHeading),
		MemoryBlock:    f.headingBlock(f.memoryHeading),
	}
	for _, s := range rk.Primary {
		t.Time = append(t.Time, f.TimeRow(s))
	}
	for _, s := range rk.Multicore {
		t.Multicore = append(t.Multicore, f.TimeRow(s))
	}
	for _, s := range rk.ByMemory {
		t.Memory = append(t.Memory, f.MemoryRow(s))
	}
	return t
}

func (f *Formatter) headingBlock(heading string) []string {
	return append([]string{"", heading, ""}, f.HeaderRows()...)
}

// Lines returns the region content in patch order.
func (t Tables) Lines() []string {
	out := make([]string, 0, len(t.Time)+len(t.MulticoreBlock)+len(t.Multicore)+len(t.MemoryBlock)+len(t.Memory)+1)
	out = append(out, t.Time...)
	out = append(out, t.MulticoreBlock...)
	out = append(out, t.Multicore...)
	out = append(out, t.MemoryBlock...)
	out = append(out, t.Memory...)
	// blank line before the details block
	out = append(out, "")
	return out
}

// Markdown renders a standalone document of all tables, for previews.
func (f *Formatter) Markdown(t Tables) string {
	lines := f.HeaderRows()
	lines = append(lines, t.Lines()...)
	return strings.Join(lines, "\n")
}
