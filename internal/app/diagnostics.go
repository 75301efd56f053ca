package service

import (
	"fmt"
	"io"

	"github.com/okian/benchtable/internal/domain/scoring"
)

// dumpSummaries prints every group with its per-run averages.
func dumpSummaries(w io.Writer, summaries []scoring.Summary) {
	for _, sum := range summaries {
		fmt.Fprintf(w, "%s (%d runs)\n", sum.Name, len(sum.Runs))
		for i, r := range sum.Runs {
			fmt.Fprintf(w, "  run %d: time %s, memory %s\n", i+1, r.TimeCell(), scoring.FormatMemory(r.Memory))
		}
		fmt.Fprintf(w, "  total: time %s, memory %s\n", sum.TotalTimeCell(), sum.TotalMemoryCell())
	}
}

func dumpRawLog(w io.Writer, content string) {
	fmt.Fprintln(w, "--- raw log ---")
	fmt.Fprintln(w, content)
	fmt.Fprintln(w, "--- end raw log ---")
}
