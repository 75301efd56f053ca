// Package metrics provides Prometheus metrics for benchmark report cycles.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default histogram buckets for stage durations in milliseconds.
var defaultDurationBuckets = []float64{0.1, 0.5, 1, 5, 10, 50, 100, 500, 1000} //nolint:gochecknoglobals // read-only defaults

// Manager owns every metric of a report cycle.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      prometheus.Labels
	registry         prometheus.Registerer

	// Parsing
	linesClassified *prometheus.CounterVec
	runsParsed      prometheus.Counter
	scoreGroups     prometheus.Gauge
	oomRuns         *prometheus.CounterVec

	// Ranking and output
	multicoreGroups   prometheus.Gauge
	documentPatches   *prometheus.CounterVec
	cycles            *prometheus.CounterVec
	stageDuration     *prometheus.HistogramVec
	lastCycleUnixTime prometheus.Gauge
}

var globalManager *Manager //nolint:gochecknoglobals // process-wide metrics manager

var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // keeps Go runtime collectors out of report output

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "benchtable",
		subsystem:        "report",
		histogramBuckets: defaultDurationBuckets,
		constLabels:      prometheus.Labels{},
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.linesClassified = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "lines_classified_total",
		Help:        "Log lines by classification kind",
		ConstLabels: m.constLabels,
	}, []string{"kind"})

	m.runsParsed = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "runs_parsed_total",
		Help:        "Benchmark runs opened by header lines",
		ConstLabels: m.constLabels,
	})

	m.scoreGroups = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "score_groups",
		Help:        "Distinct languages in the last parsed log",
		ConstLabels: m.constLabels,
	})

	m.oomRuns = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "oom_runs_total",
		Help:        "Runs without readings, by metric",
		ConstLabels: m.constLabels,
	}, []string{"metric"})

	m.multicoreGroups = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "multicore_groups",
		Help:        "Languages moved to the multicore table",
		ConstLabels: m.constLabels,
	})

	m.documentPatches = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "document_patches_total",
		Help:        "Document patch attempts by outcome",
		ConstLabels: m.constLabels,
	}, []string{"outcome"})

	m.cycles = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "cycles_total",
		Help:        "Report cycles by outcome",
		ConstLabels: m.constLabels,
	}, []string{"outcome"})

	m.stageDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "stage_duration_milliseconds",
		Help:        "Duration of report stages in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}, []string{"stage"})

	m.lastCycleUnixTime = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "last_cycle_timestamp_seconds",
		Help:        "Unix time of the last finished report cycle",
		ConstLabels: m.constLabels,
	})
}

// RecordLineClassified counts one classified line.
func (m *Manager) RecordLineClassified(kind string) { m.linesClassified.WithLabelValues(kind).Inc() }

// RecordRunParsed counts one opened run.
func (m *Manager) RecordRunParsed() { m.runsParsed.Inc() }

// UpdateScoreGroups sets the language count.
func (m *Manager) UpdateScoreGroups(n int) { m.scoreGroups.Set(float64(n)) }

// RecordOOMRun counts a run whose metric ("time" or "memory") had no readings.
func (m *Manager) RecordOOMRun(metric string) { m.oomRuns.WithLabelValues(metric).Inc() }

// UpdateMulticoreGroups sets the multicore language count.
func (m *Manager) UpdateMulticoreGroups(n int) { m.multicoreGroups.Set(float64(n)) }

// RecordDocumentPatch counts a patch attempt.
func (m *Manager) RecordDocumentPatch(outcome string) { m.documentPatches.WithLabelValues(outcome).Inc() }

// RecordCycle counts a finished cycle and stamps its time.
func (m *Manager) RecordCycle(outcome string, unixSeconds float64) {
	m.cycles.WithLabelValues(outcome).Inc()
	m.lastCycleUnixTime.Set(unixSeconds)
}

// RecordStageDuration observes a stage duration in milliseconds.
func (m *Manager) RecordStageDuration(stage string, ms float64) {
	m.stageDuration.WithLabelValues(stage).Observe(ms)
}

// Package-level helpers forward to the global manager.

func RecordLineClassified(kind string)                { globalManager.RecordLineClassified(kind) }
func RecordRunParsed()                                { globalManager.RecordRunParsed() }
func UpdateScoreGroups(n int)                         { globalManager.UpdateScoreGroups(n) }
func RecordOOMRun(metric string)                      { globalManager.RecordOOMRun(metric) }
func UpdateMulticoreGroups(n int)                     { globalManager.UpdateMulticoreGroups(n) }
func RecordDocumentPatch(outcome string)              { globalManager.RecordDocumentPatch(outcome) }
func RecordCycle(outcome string, unixSeconds float64) { globalManager.RecordCycle(outcome, unixSeconds) }
func RecordStageDuration(stage string, ms float64)    { globalManager.RecordStageDuration(stage, ms) }

// GetRegistry returns the registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
