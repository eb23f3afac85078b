package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsRecordAndExpose(t *testing.T) {
	m := New(nil)
	m.ObserveAPI("GET", "/api/learning-data", "200", 20*time.Millisecond)
	m.ObserveAPI("", "", "", time.Millisecond)
	m.ObserveLearningTree(OutcomeSuccess, 3, 5*time.Millisecond)
	m.IncProgressUpdate(OutcomeSuccess)
	m.IncProgressUpdate(OutcomeError)
	m.IncProgressUpdate(OutcomeError)

	if got := testutil.ToFloat64(m.progressUpdates.WithLabelValues(OutcomeError)); got != 2 {
		t.Fatalf("progress errors = %v", got)
	}
	if got := testutil.ToFloat64(m.apiRequests.WithLabelValues("UNKNOWN", "unknown", "0")); got != 1 {
		t.Fatalf("defaulted labels = %v", got)
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	for _, want := range []string{
		"mentor_http_requests_total",
		"mentor_learning_tree_duration_seconds",
		"mentor_progress_updates_total",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("exposition missing %s", want)
		}
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveAPI("GET", "/", "200", time.Millisecond)
	m.ApiInflightInc()
	m.ApiInflightDec()
	m.ObserveLearningTree(OutcomeError, 0, time.Millisecond)
	m.IncProgressUpdate(OutcomeSuccess)
	m.IncRealtimeEvent("x", OutcomeSuccess)
	m.IncCatalogWrite("domain", "create", OutcomeSuccess)
	if err := m.RegisterDBStats(nil, "db"); err != nil {
		t.Fatalf("RegisterDBStats: %v", err)
	}
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("nil handler status = %d", rec.Code)
	}
}
