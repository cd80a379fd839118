package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/puzzler/internal/logging"
	"github.com/aretw0/puzzler/pkg/domain"
	"github.com/aretw0/puzzler/pkg/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simulate(hooks domain.SearchHooks, puzzle string, expansions int, status domain.Status) {
	ctx := context.Background()
	base := domain.EventBase{Puzzle: puzzle, RunID: "run-1"}

	hooks.OnSearchStart(ctx, &domain.SearchEvent{EventBase: base})
	for i := 1; i <= expansions; i++ {
		if hooks.OnExpand != nil {
			hooks.OnExpand(ctx, &domain.ExpandEvent{EventBase: base, Expanded: i})
		}
	}
	hooks.OnSearchFinish(ctx, &domain.SearchEvent{
		EventBase:     base,
		Status:        status,
		NodesExpanded: expansions,
		Duration:      2 * time.Millisecond,
	})
}

func TestMetrics_Hooks(t *testing.T) {
	m := observability.NewMetrics(false)

	simulate(m.Hooks(), "pancake", 6, domain.StatusFound)
	simulate(m.Hooks(), "pancake", 3, domain.StatusExhausted)
	simulate(m.Hooks(), "cube", 2, domain.StatusFound)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Searches.WithLabelValues("pancake", "found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Searches.WithLabelValues("pancake", "exhausted")))
	assert.Equal(t, 9.0, testutil.ToFloat64(m.Expansions.WithLabelValues("pancake")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Expansions.WithLabelValues("cube")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Running.WithLabelValues("pancake")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Duration))
}

func TestMetrics_Handler(t *testing.T) {
	m := observability.NewMetrics(true)
	simulate(m.Hooks(), "cube", 1, domain.StatusFound)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `puzzler_searches_total{puzzle="cube",status="found"} 1`)
	assert.Contains(t, body, "go_goroutines")
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		observability.NewMetrics(true)
		observability.NewMetrics(true)
	})
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, slog.LevelInfo, false)

	hooks := observability.LogHooks(logger).Merge(domain.SearchHooks{
		OnExpand: func(context.Context, *domain.ExpandEvent) {},
	})
	simulate(hooks, "pancake", 2, domain.StatusFound)

	out := buf.String()
	assert.Contains(t, out, "search_start")
	assert.Contains(t, out, "search_finish")
	assert.Contains(t, out, "status=found")
	assert.Equal(t, 2, strings.Count(out, "run_id=run-1"))
}
