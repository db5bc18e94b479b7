package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNew(t *testing.T) {
	m := New()
	if m.handler == nil {
		t.Error("Metrics.handler should be initialized")
	}
}

func TestObserveRun(t *testing.T) {
	m := New()
	m.ObserveRun("success", 120*time.Millisecond)
	m.ObserveRun("success", 80*time.Millisecond)
	m.ObserveRun("failure", time.Second)

	if got := testutil.ToFloat64(m.runs.WithLabelValues("success")); got != 2 {
		t.Errorf("expected 2 successful runs, got %v", got)
	}
	if got := testutil.ToFloat64(m.runs.WithLabelValues("failure")); got != 1 {
		t.Errorf("expected 1 failed run, got %v", got)
	}
}

func TestWritePrometheus(t *testing.T) {
	m := New()
	m.ObserveRun("success", time.Millisecond)
	m.IncWarnings()

	req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
	rec := httptest.NewRecorder()
	m.WritePrometheus(rec, req)

	body := rec.Body.String()
	for _, want := range []string{
		`whisker_runs_total{outcome="success"} 1`,
		"whisker_run_duration_seconds_count 1",
		"whisker_warnings_total 1",
		"go_goroutines",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output should contain %q", want)
		}
	}
}

func TestInstancesAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.IncWarnings()
	if got := testutil.ToFloat64(b.warnings); got != 0 {
		t.Errorf("expected independent registries, got %v warnings", got)
	}
}
