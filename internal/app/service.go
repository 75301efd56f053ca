// Package service runs one report cycle: read the log, parse it, rank the
// languages, render the tables and patch the document next to the log.
package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/okian/benchtable/internal/adapters/document"
	"github.com/okian/benchtable/internal/adapters/markdown"
	"github.com/okian/benchtable/internal/adapters/repository"
	"github.com/okian/benchtable/internal/domain/model"
	"github.com/okian/benchtable/internal/domain/parser"
	"github.com/okian/benchtable/internal/domain/ranking"
	"github.com/okian/benchtable/internal/domain/scoring"
	"github.com/okian/benchtable/pkg/logger"
	"github.com/okian/benchtable/pkg/metrics"
)

const (
	defaultReadmeName         = "readme.md"
	nanosecondsPerMillisecond = 1e6
)

// Service wires the report pipeline.
type Service struct {
	store     repository.Store
	ranker    *ranking.Ranker
	formatter *markdown.Formatter
	patcher   *document.Patcher

	readmeName  string
	metricsFile string
	verbose     bool
	dryRun      bool

	diagnostics io.Writer
	logger      logger.Logger
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		store:       repository.NewFileStore(),
		ranker:      ranking.New(),
		formatter:   markdown.New(),
		patcher:     document.New(),
		readmeName:  defaultReadmeName,
		diagnostics: os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Report describes a finished cycle.
type Report struct {
	RunID        string
	LogPath      string
	DocumentPath string
	Registry     *model.Registry
	Ranking      ranking.Ranking
	Tables       markdown.Tables
	// Document is the patched document text.
	Document string
	// Written is false for dry runs.
	Written bool
}

// Run executes one report cycle for the log at logPath. On any error the
// document is left untouched.
func (s *Service) Run(ctx context.Context, logPath string) (rep *Report, err error) {
	runID := uuid.New().String()
	log := s.log().With(logger.String("run_id", runID))
	start := time.Now()

	defer func() {
		metrics.RecordCycle(outcome(err), float64(time.Now().Unix()))
		metrics.RecordStageDuration("cycle", sinceMS(start))
		s.writeMetrics(ctx, log)
	}()

	if logPath == "" {
		return nil, ErrMissingArgument
	}

	rep = &Report{
		RunID:        runID,
		LogPath:      logPath,
		DocumentPath: repository.DocumentPath(logPath, s.readmeName),
	}

	content, err := s.store.ReadLog(ctx, logPath)
	if err != nil {
		return nil, err
	}

	stage := time.Now()
	res, err := parser.New(parser.WithLogger(log.Named("parser"))).Parse(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", logPath, err)
	}
	metrics.RecordStageDuration("parse", sinceMS(stage))
	metrics.UpdateScoreGroups(res.Registry.Len())
	rep.Registry = res.Registry
	log.Info(ctx, "parsed log",
		logger.String("path", logPath),
		logger.Int("languages", res.Registry.Len()),
		logger.Int("runs", res.Registry.Runs()),
		logger.Int("orphan_lines", res.Orphans))

	summaries := scoring.SummarizeAll(res.Registry.Groups())
	recordOOM(summaries)
	if s.verbose {
		dumpSummaries(s.diagnostics, summaries)
	}

	stage = time.Now()
	rep.Ranking = s.ranker.Rank(summaries)
	metrics.RecordStageDuration("rank", sinceMS(stage))
	metrics.UpdateMulticoreGroups(len(rep.Ranking.Multicore))

	if err := s.ranker.Check(rep.Ranking); err != nil {
		log.Error(ctx, "incomplete benchmark log", logger.Error(err))
		dumpSummaries(s.diagnostics, summaries)
		dumpRawLog(s.diagnostics, content)
		return nil, err
	}

	rep.Tables = s.formatter.Render(rep.Ranking)

	doc, err := s.store.ReadDocument(ctx, rep.DocumentPath)
	if err != nil {
		return nil, err
	}
	rep.Document, err = s.patcher.Patch(doc, rep.Tables.Lines())
	if err != nil {
		metrics.RecordDocumentPatch("missing_marker")
		return nil, fmt.Errorf("patch %s: %w", rep.DocumentPath, err)
	}

	if s.dryRun {
		metrics.RecordDocumentPatch("dry_run")
		log.Info(ctx, "dry run, document not written", logger.String("document", rep.DocumentPath))
		return rep, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("report cancelled: %w", err)
	}
	if err := s.store.WriteDocument(ctx, rep.DocumentPath, rep.Document); err != nil {
		metrics.RecordDocumentPatch("write_failed")
		return nil, err
	}
	rep.Written = true
	metrics.RecordDocumentPatch("written")
	log.Info(ctx, "document updated",
		logger.String("document", rep.DocumentPath),
		logger.Int("time_rows", len(rep.Tables.Time)),
		logger.Int("multicore_rows", len(rep.Tables.Multicore)),
		logger.Int("memory_rows", len(rep.Tables.Memory)))
	return rep, nil
}

// Formatter returns the formatter used for rendering.
func (s *Service) Formatter() *markdown.Formatter { return s.formatter }

func (s *Service) log() logger.Logger {
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s.logger
}

func (s *Service) writeMetrics(ctx context.Context, log logger.Logger) {
	if s.metricsFile == "" {
		return
	}
	if err := metrics.WriteTextfile(s.metricsFile, nil); err != nil {
		log.Warn(ctx, "failed to write metrics file", logger.String("path", s.metricsFile), logger.Error(err))
	}
}

func recordOOM(summaries []scoring.Summary) {
	for _, sum := range summaries {
		timeOOM, memOOM := sum.OOMRuns()
		for i := 0; i < timeOOM; i++ {
			metrics.RecordOOMRun("time")
		}
		for i := 0; i < memOOM; i++ {
			metrics.RecordOOMRun("memory")
		}
	}
}

func sinceMS(t time.Time) float64 {
	return float64(time.Since(t).Nanoseconds()) / nanosecondsPerMillisecond
}
