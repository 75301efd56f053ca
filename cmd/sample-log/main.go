package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/okian/benchtable/internal/testlog"
	"github.com/okian/benchtable/pkg/logger"
)

const (
	defaultLanguages = "Go,Rust,Zig,Python,Go Concurrent"
	defaultSeed      = 42
	outputFileMode   = 0o644
)

func main() {
	var (
		languages = flag.String("languages", defaultLanguages, "Comma separated language names")
		oom       = flag.String("oom", "", "Comma separated languages whose last tier runs out of memory")
		seed      = flag.Uint64("seed", defaultSeed, "Seed for generated values")
		output    = flag.String("output", "", "Output file (default: stdout)")
		repeat    = flag.Bool("repeat-headers", false, "Print every header twice")
		noise     = flag.Bool("noise", true, "Add unrelated lines between measurements")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	ctx := context.Background()
	log := logger.Named("sample-log")

	langs := testlog.RandomLanguages(splitList(*languages), *seed)
	for _, name := range splitList(*oom) {
		for i := range langs {
			if langs[i].Name == name {
				langs[i].OOMTiers = append(langs[i].OOMTiers, len(langs[i].TimesMS)-1)
			}
		}
	}

	content := testlog.Generate(testlog.Config{
		Languages:     langs,
		RepeatHeaders: *repeat,
		Noise:         *noise,
		SecondsFrom:   1000,
	})

	if *output == "" {
		os.Stdout.WriteString(content)
		return
	}
	if err := os.WriteFile(*output, []byte(content), outputFileMode); err != nil {
		log.Fatal(ctx, "failed to write log", logger.String("output", *output), logger.Error(err))
	}
	log.Info(ctx, "sample log written", logger.String("output", *output), logger.Int("languages", len(langs)))
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
