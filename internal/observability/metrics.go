package observability

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/logger"
)

const namespace = "mentor"

// Metrics owns a private registry so tests and multiple app instances never
// collide on the global default one. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	reg *prometheus.Registry

	apiRequests *prometheus.CounterVec
	apiLatency  *prometheus.HistogramVec
	apiInflight prometheus.Gauge

	treeDuration    *prometheus.HistogramVec
	treeDomains     prometheus.Histogram
	progressUpdates *prometheus.CounterVec
	realtimeEvents  *prometheus.CounterVec
	catalogWrites   *prometheus.CounterVec
}

func New(log *logger.Logger) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		reg: reg,
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		apiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		apiInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "HTTP requests currently being served.",
		}),
		treeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "learning",
			Name:      "tree_duration_seconds",
			Help:      "Time to assemble a user's learning tree.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"outcome"}),
		treeDomains: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "learning",
			Name:      "tree_domains",
			Help:      "Domains returned per learning tree.",
			Buckets:   prometheus.LinearBuckets(0, 2, 10),
		}),
		progressUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "progress",
			Name:      "updates_total",
			Help:      "Progress update attempts by outcome.",
		}, []string{"outcome"}),
		realtimeEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "realtime",
			Name:      "events_total",
			Help:      "Realtime events published by event and outcome.",
		}, []string{"event", "outcome"}),
		catalogWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "writes_total",
			Help:      "Catalog administration writes by entity, op and outcome.",
		}, []string{"entity", "op", "outcome"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.apiRequests,
		m.apiLatency,
		m.apiInflight,
		m.treeDuration,
		m.treeDomains,
		m.progressUpdates,
		m.realtimeEvents,
		m.catalogWrites,
	)
	if log != nil {
		log.Info("metrics registry initialized", "namespace", namespace)
	}
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.reg
}

// Handler serves the prometheus exposition format for this registry.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// RegisterDBStats exports connection pool stats for db.
func (m *Metrics) RegisterDBStats(db *sql.DB, name string) error {
	if m == nil || db == nil {
		return nil
	}
	return m.reg.Register(collectors.NewDBStatsCollector(db, name))
}

func (m *Metrics) ObserveAPI(method, route, status string, dur time.Duration) {
	if m == nil {
		return
	}
	if method == "" {
		method = "UNKNOWN"
	}
	if route == "" {
		route = "unknown"
	}
	if status == "" {
		status = "0"
	}
	m.apiRequests.WithLabelValues(method, route, status).Inc()
	m.apiLatency.WithLabelValues(method, route, status).Observe(dur.Seconds())
}

func (m *Metrics) ApiInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) ApiInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

func (m *Metrics) ObserveLearningTree(outcome string, domains int, dur time.Duration) {
	if m == nil {
		return
	}
	m.treeDuration.WithLabelValues(outcome).Observe(dur.Seconds())
	if outcome == OutcomeSuccess {
		m.treeDomains.Observe(float64(domains))
	}
}

func (m *Metrics) IncProgressUpdate(outcome string) {
	if m == nil {
		return
	}
	m.progressUpdates.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncRealtimeEvent(event, outcome string) {
	if m == nil {
		return
	}
	m.realtimeEvents.WithLabelValues(event, outcome).Inc()
}

func (m *Metrics) IncCatalogWrite(entity, op, outcome string) {
	if m == nil {
		return
	}
	m.catalogWrites.WithLabelValues(entity, op, outcome).Inc()
}

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeInvalid = "invalid"
)
