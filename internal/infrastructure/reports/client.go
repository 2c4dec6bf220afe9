// Package reports fetches deal PDF reports from the report service.
package reports

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	appconfig "freight_crm/internal/config"
	"freight_crm/internal/infrastructure/metrics"
	"freight_crm/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

var (
	ErrNotConfigured = errors.New("report service not configured")
	ErrNotPDF        = errors.New("report response is not a pdf")
)

const maxErrorBody = 512

// StatusError is a non-2xx answer from the report service. Body is truncated.
type StatusError struct {
	Strategy string
	Status   int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("report strategy %s: status %d: %s", e.Strategy, e.Status, e.Body)
}

// Strategy is one historical shape of the report endpoint.
type Strategy struct {
	Name string
	Do   func(r *resty.Request, dealID string) (*resty.Response, error)
}

// DefaultStrategies lists the endpoint shapes the report service has exposed,
// newest first.
func DefaultStrategies() []Strategy {
	return []Strategy{
		{
			Name: "post_body",
			Do: func(r *resty.Request, dealID string) (*resty.Response, error) {
				return r.SetBody(map[string]string{"deal_id": dealID}).Post("/reports/deal")
			},
		},
		{
			Name: "get_path",
			Do: func(r *resty.Request, dealID string) (*resty.Response, error) {
				return r.SetPathParam("id", dealID).Get("/reports/deal/{id}")
			},
		},
		{
			Name: "get_query",
			Do: func(r *resty.Request, dealID string) (*resty.Response, error) {
				return r.SetQueryParam("deal_id", dealID).Get("/reports/deal")
			},
		},
	}
}

type Client struct {
	http       *resty.Client
	strategies []Strategy
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

var _ interfaces.IReportRenderer = (*Client)(nil)

func NewClient(cfg appconfig.Report, logger *zap.Logger, m *metrics.Metrics) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrNotConfigured
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
			SetTimeout(cfg.Timeout).
			SetHeader("Accept", "application/pdf"),
		strategies: DefaultStrategies(),
		logger:     logger,
		metrics:    m,
	}, nil
}

// WithStrategies replaces the strategy list.
func (c *Client) WithStrategies(s ...Strategy) *Client {
	c.strategies = s
	return c
}

// Render tries each strategy in order and returns the first PDF. When every
// strategy fails the last failure is returned.
func (c *Client) Render(ctx context.Context, dealID string) ([]byte, error) {
	var last error
	for _, s := range c.strategies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pdf, err := c.attempt(ctx, s, dealID)
		c.metrics.ReportAttempt(s.Name, err == nil)
		if err == nil {
			c.logger.Info("[report][client] rendered",
				zap.String("deal_id", dealID), zap.String("strategy", s.Name), zap.Int("bytes", len(pdf)))
			return pdf, nil
		}

		c.logger.Warn("[report][client] strategy failed",
			zap.String("deal_id", dealID), zap.String("strategy", s.Name), zap.Error(err))
		last = err
	}
	if last == nil {
		return nil, ErrNotConfigured
	}
	return nil, fmt.Errorf("all %d report strategies failed: %w", len(c.strategies), last)
}

func (c *Client) attempt(ctx context.Context, s Strategy, dealID string) ([]byte, error) {
	resp, err := s.Do(c.http.R().SetContext(ctx), dealID)
	if err != nil {
		return nil, fmt.Errorf("report strategy %s: %w", s.Name, err)
	}
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return nil, &StatusError{Strategy: s.Name, Status: resp.StatusCode(), Body: truncate(resp.String(), maxErrorBody)}
	}
	body := resp.Body()
	if !isPDF(resp.Header().Get("Content-Type"), body) {
		return nil, fmt.Errorf("report strategy %s: %w", s.Name, ErrNotPDF)
	}
	return body, nil
}

// isPDF trusts an application/pdf content type. Generic binary answers must
// carry the %PDF magic.
func isPDF(contentType string, body []byte) bool {
	if len(body) == 0 {
		return false
	}
	if bytes.HasPrefix(body, []byte("%PDF")) {
		return true
	}
	return strings.Contains(strings.ToLower(contentType), "application/pdf")
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
