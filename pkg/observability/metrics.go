package observability

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aretw0/puzzler/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the search collectors.
// Safe for concurrent use after creation.
type Metrics struct {
	registry *prometheus.Registry

	// Searches counts finished searches by puzzle and status.
	Searches *prometheus.CounterVec

	// Expansions counts frontier pops by puzzle.
	Expansions *prometheus.CounterVec

	// Duration records search wall time in seconds by puzzle.
	Duration *prometheus.HistogramVec

	// Running tracks searches in progress by puzzle.
	Running *prometheus.GaugeVec
}

// NewMetrics creates the collectors on a fresh registry.
// When withRuntime is set, Go runtime and process collectors are registered too.
func NewMetrics(withRuntime bool) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "puzzler_searches_total",
				Help: "Total number of finished searches",
			},
			[]string{"puzzle", "status"},
		),
		Expansions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "puzzler_expansions_total",
				Help: "Total number of expanded search nodes",
			},
			[]string{"puzzle"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "puzzler_search_duration_seconds",
				Help:    "Duration of searches",
				Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
			},
			[]string{"puzzle"},
		),
		Running: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "puzzler_searches_running",
				Help: "Searches currently in progress",
			},
			[]string{"puzzle"},
		),
	}

	m.registry.MustRegister(m.Searches, m.Expansions, m.Duration, m.Running)
	if withRuntime {
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Hooks records every search event on the collectors.
func (m *Metrics) Hooks() domain.SearchHooks {
	return domain.SearchHooks{
		OnSearchStart: func(_ context.Context, e *domain.SearchEvent) {
			m.Running.WithLabelValues(e.Puzzle).Inc()
		},
		OnExpand: func(_ context.Context, e *domain.ExpandEvent) {
			m.Expansions.WithLabelValues(e.Puzzle).Inc()
		},
		OnSearchFinish: func(_ context.Context, e *domain.SearchEvent) {
			m.Running.WithLabelValues(e.Puzzle).Dec()
			m.Searches.WithLabelValues(e.Puzzle, string(e.Status)).Inc()
			m.Duration.WithLabelValues(e.Puzzle).Observe(e.Duration.Seconds())
		},
	}
}

// LogHooks logs search start and finish at Info. Expansions are not logged.
func LogHooks(logger *slog.Logger) domain.SearchHooks {
	return domain.SearchHooks{
		OnSearchStart: func(ctx context.Context, e *domain.SearchEvent) {
			logger.InfoContext(ctx, "search_start", "puzzle", e.Puzzle, "run_id", e.RunID)
		},
		OnSearchFinish: func(ctx context.Context, e *domain.SearchEvent) {
			logger.InfoContext(ctx, "search_finish",
				"puzzle", e.Puzzle,
				"run_id", e.RunID,
				"status", e.Status,
				"expanded", e.NodesExpanded,
				"path_length", e.PathLength,
				"duration", e.Duration,
			)
		},
	}
}
