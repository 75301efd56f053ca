// Package testlog generates synthetic benchmark logs.
package testlog

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

// Random value ranges for generated languages.
const (
	baseTimeMinMS   = 5.0
	baseTimeRangeMS = 200.0
	baseMemoryMinKB = 20_000
	baseMemoryRange = 400_000
	tierGrowth      = 4.0
	defaultTiers    = 3
)

// Generate renders cfg as a log. Tiers are the outer loop, so each language
// appears once per tier, interleaved with the others.
func Generate(cfg Config) string {
	var b strings.Builder
	for tier := 0; tier < cfg.Tiers(); tier++ {
		for _, lang := range cfg.Languages {
			if tier >= len(lang.TimesMS) {
				continue
			}
			writeRun(&b, cfg, lang, tier)
		}
	}
	return b.String()
}

func writeRun(b *strings.Builder, cfg Config, lang Language, tier int) {
	fmt.Fprintf(b, "%s:\n", lang.Name)
	if cfg.RepeatHeaders {
		fmt.Fprintf(b, "%s:\n", lang.Name)
	}
	if cfg.Noise {
		fmt.Fprintf(b, "\tbuild id: %s\n", uuid.New().String())
	}

	if !lang.isOOM(tier) {
		b.WriteString("\tProcessing time (w/o IO): " + formatTime(lang.TimesMS[tier], cfg.SecondsFrom) + "\n")
	} else {
		b.WriteString("\tCommand terminated by signal 9\n")
	}

	if tier < len(lang.MemoryKB) {
		fmt.Fprintf(b, "\tuser 0.00 system 0.00 memory: %dk\n", lang.MemoryKB[tier])
	}
	if cfg.Noise {
		b.WriteString("\n")
	}
}

func formatTime(ms, secondsFrom float64) string {
	if secondsFrom > 0 && ms >= secondsFrom {
		return fmt.Sprintf("%gs", ms/1000)
	}
	return fmt.Sprintf("%gms", ms)
}

// RandomLanguages builds n languages with growing per-tier values from a
// seeded source, so equal seeds give equal logs.
func RandomLanguages(names []string, seed uint64) []Language {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec // reproducible fixtures
	out := make([]Language, 0, len(names))
	for _, name := range names {
		t := baseTimeMinMS + rng.Float64()*baseTimeRangeMS
		m := int64(baseMemoryMinKB + rng.IntN(baseMemoryRange))
		lang := Language{Name: name}
		for tier := 0; tier < defaultTiers; tier++ {
			lang.TimesMS = append(lang.TimesMS, roundTo2(t))
			lang.MemoryKB = append(lang.MemoryKB, m)
			t *= tierGrowth
			m *= 2
		}
		out = append(out, lang)
	}
	return out
}

func roundTo2(v float64) float64 {
	return float64(int64(v*100)) / 100
}
