package reports

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	appconfig "freight_crm/internal/config"
	"freight_crm/internal/infrastructure/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type hits struct {
	mu    sync.Mutex
	paths []string
}

func (h *hits) add(r *http.Request) {
	h.mu.Lock()
	h.paths = append(h.paths, r.Method+" "+r.URL.RequestURI())
	h.mu.Unlock()
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *prometheus.Registry) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	reg := prometheus.NewRegistry()
	c, err := NewClient(appconfig.Report{BaseURL: srv.URL + "/", Timeout: 2 * time.Second}, zaptest.NewLogger(t), metrics.New(reg))
	require.NoError(t, err)
	return c, reg
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(appconfig.Report{}, nil, nil)
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestRender_FallsBackInOrder(t *testing.T) {
	h := &hits{}
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		h.add(r)
		switch {
		case r.Method == http.MethodPost:
			w.WriteHeader(http.StatusNotFound)
		case r.URL.Path == "/reports/deal/d-1":
			w.WriteHeader(http.StatusMethodNotAllowed)
		default:
			w.Header().Set("Content-Type", "application/pdf")
			_, _ = w.Write([]byte("%PDF-1.7 report"))
		}
	})

	pdf, err := c.Render(context.Background(), "d-1")
	require.NoError(t, err)
	require.Equal(t, "%PDF-1.7 report", string(pdf))
	require.Equal(t, []string{
		"POST /reports/deal",
		"GET /reports/deal/d-1",
		"GET /reports/deal?deal_id=d-1",
	}, h.paths)
}

func TestRender_FirstSuccessShortCircuits(t *testing.T) {
	h := &hits{}
	c, reg := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		h.add(r)
		_, _ = w.Write([]byte("%PDF-1.4"))
	})

	_, err := c.Render(context.Background(), "d-1")
	require.NoError(t, err)
	require.Len(t, h.paths, 1)

	n, err := testutil.GatherAndCount(reg, "freight_crm_report_strategy_attempts_total")
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestRender_AllFailKeepsLastStatus(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"deal has no cost sheet"}`))
	})

	_, err := c.Render(context.Background(), "d-1")
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	require.Equal(t, "get_query", se.Strategy)
	require.Equal(t, http.StatusUnprocessableEntity, se.Status)
	require.Contains(t, se.Body, "no cost sheet")
}

func TestRender_RejectsNonPDF(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>login</html>"))
	})

	_, err := c.Render(context.Background(), "d-1")
	require.ErrorIs(t, err, ErrNotPDF)
}

func TestRender_OctetStreamNeedsPDFMagic(t *testing.T) {
	h := &hits{}
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		h.add(r)
		w.Header().Set("Content-Type", "application/octet-stream")
		if r.Method == http.MethodPost {
			_, _ = w.Write([]byte("PK\x03\x04 legacy export"))
			return
		}
		_, _ = w.Write([]byte("%PDF-1.5 body"))
	})

	pdf, err := c.Render(context.Background(), "d-1")
	require.NoError(t, err)
	require.Equal(t, "%PDF-1.5 body", string(pdf))
	require.Len(t, h.paths, 2)
}

func TestIsPDF(t *testing.T) {
	require.True(t, isPDF("application/octet-stream", []byte("%PDF-1.7")))
	require.True(t, isPDF("application/pdf; charset=binary", []byte("data")))
	require.False(t, isPDF("application/octet-stream", []byte{0x50, 0x4b, 0x03, 0x04}))
	require.False(t, isPDF("application/pdf", nil))
}

func TestRender_CustomStrategies(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	c.WithStrategies()

	_, err := c.Render(context.Background(), "d-1")
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestRender_CancelledContext(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("%PDF"))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Render(ctx, "d-1")
	require.ErrorIs(t, err, context.Canceled)
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "abc", truncate("abcdef", 3))
	require.Equal(t, "ab", truncate("ab", 3))
	require.Equal(t, "operaci", truncate("operación", 8))
	require.Equal(t, "operació", truncate("operación", 9))
	require.True(t, utf8.ValidString(truncate("ñññ", 5)))
}
