// Package config defines the report configuration and its loader.
//
// Conventions:
// - New() returns a Config populated with defaults.
// - Load(ctx, ...) layers a YAML file and environment variables on top.
// - External errors are wrapped with this package's sentinel errors.
package config

import (
	"fmt"
	"strings"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// ReadmeName is the document patched next to the log file.
	ReadmeName string `koanf:"readme_name"`

	// ExpectedRuns is the run count the first ranked group must have.
	ExpectedRuns int `koanf:"expected_runs"`

	// MulticoreMarker moves languages whose name contains it into the
	// multicore table.
	MulticoreMarker string `koanf:"multicore_marker"`

	// SeparatorMarker and DetailsMarker delimit the replaceable region.
	SeparatorMarker string `koanf:"separator_marker"`
	DetailsMarker   string `koanf:"details_marker"`

	// TierLabels name the workload tiers, in run order.
	TierLabels []string `koanf:"tier_labels"`

	// MulticoreHeading and MemoryHeading introduce the secondary tables.
	MulticoreHeading string `koanf:"multicore_heading"`
	MemoryHeading    string `koanf:"memory_heading"`

	// NameSubstitutions rewrites language names in rendered rows.
	NameSubstitutions map[string]string `koanf:"name_substitutions"`

	// MetricsFile receives a Prometheus textfile after each cycle. Empty disables.
	MetricsFile string `koanf:"metrics_file"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		ReadmeName:       "readme.md",
		ExpectedRuns:     3,
		MulticoreMarker:  "Concurrent",
		SeparatorMarker:  "| ----",
		DetailsMarker:    "<details>",
		TierLabels:       []string{"5k posts", "20k posts", "60k posts"},
		MulticoreHeading: "### Multicore Results",
		MemoryHeading:    "### Memory Usage",
		NameSubstitutions: map[string]string{
			"Julia HO": "_Julia HO_[^1]",
			"Inko":     "Inko[^2]",
		},
	}
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.ReadmeName) == "":
		return fmt.Errorf("%w: readme_name must not be empty", ErrInvalidConfig)
	case c.ExpectedRuns <= 0:
		return fmt.Errorf("%w: expected_runs must be positive", ErrInvalidConfig)
	case c.SeparatorMarker == "":
		return fmt.Errorf("%w: separator_marker must not be empty", ErrInvalidConfig)
	case c.DetailsMarker == "":
		return fmt.Errorf("%w: details_marker must not be empty", ErrInvalidConfig)
	case len(c.TierLabels) == 0:
		return fmt.Errorf("%w: tier_labels must not be empty", ErrInvalidConfig)
	}
	return nil
}
