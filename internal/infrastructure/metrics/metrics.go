// Package metrics holds the service's prometheus collectors.
//
// All recording methods are nil-safe so use cases can run without metrics
// in tests.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "freight_crm"

// Custom-field upsert outcomes.
const (
	UpsertCached    = "cached"
	UpsertRelocated = "relocated"
	UpsertCreated   = "created"
	UpsertFailed    = "failed"
)

type Metrics struct {
	gatherer prometheus.Gatherer

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	cfUpserts    *prometheus.CounterVec
	profitSyncs  *prometheus.CounterVec
	reportHits   *prometheus.CounterVec
}

// New registers the collectors on reg. Passing a fresh prometheus.NewRegistry
// keeps tests isolated from the default registry.
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		gatherer: reg,
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		cfUpserts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "custom_field_upserts_total",
			Help:      "Custom field upserts by resolution path.",
		}, []string{"path"}),
		profitSyncs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profit_syncs_total",
			Help:      "Deal value write-backs after profit computation.",
		}, []string{"result"}),
		reportHits: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_strategy_attempts_total",
			Help:      "Report renderer attempts by strategy and outcome.",
		}, []string{"strategy", "outcome"}),
	}
}

func (m *Metrics) CustomFieldUpsert(path string) {
	if m == nil {
		return
	}
	m.cfUpserts.WithLabelValues(path).Inc()
}

func (m *Metrics) ProfitSync(ok bool) {
	if m == nil {
		return
	}
	result := "synced"
	if !ok {
		result = "failed"
	}
	m.profitSyncs.WithLabelValues(result).Inc()
}

func (m *Metrics) ReportAttempt(strategy string, ok bool) {
	if m == nil {
		return
	}
	outcome := "hit"
	if !ok {
		outcome = "miss"
	}
	m.reportHits.WithLabelValues(strategy, outcome).Inc()
}

// Middleware records request count and latency per matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if m == nil {
			return
		}

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
