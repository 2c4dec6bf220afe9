package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"freight_crm/internal/infrastructure/metrics"
)

func TestMetrics_Counters(t *testing.T) {
	rq := require.New(t)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.CustomFieldUpsert(metrics.UpsertCached)
	m.CustomFieldUpsert(metrics.UpsertCached)
	m.CustomFieldUpsert(metrics.UpsertFailed)
	m.ProfitSync(true)
	m.ReportAttempt("post", false)

	expected := `
# HELP freight_crm_custom_field_upserts_total Custom field upserts by resolution path.
# TYPE freight_crm_custom_field_upserts_total counter
freight_crm_custom_field_upserts_total{path="cached"} 2
freight_crm_custom_field_upserts_total{path="failed"} 1
`
	rq.NoError(testutil.GatherAndCompare(reg, strings.NewReader(expected), "freight_crm_custom_field_upserts_total"))
	rq.Equal(3, testutil.CollectAndCount(reg, "freight_crm_custom_field_upserts_total", "freight_crm_profit_syncs_total", "freight_crm_report_strategy_attempts_total"))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *metrics.Metrics

	require.NotPanics(t, func() {
		m.CustomFieldUpsert(metrics.UpsertCreated)
		m.ProfitSync(false)
		m.ReportAttempt("get", true)
	})
}

func TestMetrics_MiddlewareAndHandler(t *testing.T) {
	rq := require.New(t)
	gin.SetMode(gin.TestMode)

	m := metrics.New(prometheus.NewRegistry())

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/v1/deals/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/deals/d-1", nil))
	rq.Equal(http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	rq.Equal(http.StatusOK, w.Code)
	rq.Contains(w.Body.String(), `freight_crm_http_requests_total{method="GET",route="/v1/deals/:id",status="204"} 1`)
}
