package service

import (
	"io"

	"github.com/okian/benchtable/internal/adapters/document"
	"github.com/okian/benchtable/internal/adapters/markdown"
	"github.com/okian/benchtable/internal/adapters/repository"
	"github.com/okian/benchtable/internal/config"
	"github.com/okian/benchtable/internal/domain/ranking"
	"github.com/okian/benchtable/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore replaces the filesystem store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithConfig applies every report setting from cfg.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		if cfg == nil {
			return
		}
		s.readmeName = cfg.ReadmeName
		s.metricsFile = cfg.MetricsFile
		s.ranker = ranking.New(
			ranking.WithMulticoreMarker(cfg.MulticoreMarker),
			ranking.WithExpectedRuns(cfg.ExpectedRuns),
		)
		s.formatter = markdown.New(
			markdown.WithSubstitutions(cfg.NameSubstitutions),
			markdown.WithTierLabels(cfg.TierLabels),
			markdown.WithHeadings(cfg.MulticoreHeading, cfg.MemoryHeading),
		)
		s.patcher = document.New(
			document.WithSeparatorMarker(cfg.SeparatorMarker),
			document.WithDetailsMarker(cfg.DetailsMarker),
		)
	}
}

// WithDiagnostics sets where score dumps and raw logs are printed.
func WithDiagnostics(w io.Writer) Option {
	return func(s *Service) {
		if w != nil {
			s.diagnostics = w
		}
	}
}

// WithVerbose dumps every score group before ranking.
func WithVerbose(verbose bool) Option {
	return func(s *Service) {
		s.verbose = verbose
	}
}

// WithDryRun skips the final document write.
func WithDryRun(dryRun bool) Option {
	return func(s *Service) {
		s.dryRun = dryRun
	}
}

// WithMetricsFile writes a Prometheus textfile after each cycle.
func WithMetricsFile(path string) Option {
	return func(s *Service) {
		s.metricsFile = path
	}
}
