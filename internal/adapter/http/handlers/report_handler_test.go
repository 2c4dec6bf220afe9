package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"freight_crm/internal/adapter/http/handlers/mocks"
	"freight_crm/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestReportHandler_GetReport(t *testing.T) {
	t.Run("pdf", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc, nil)
		r := newTestRouter()
		r.GET("/v1/deals/:id/report", h.GetReport)

		uc.EXPECT().Render(gomock.Any(), "d-1").Return([]byte("%PDF-1.7"), nil)

		w := serve(r, http.MethodGet, "/v1/deals/d-1/report", "")
		if w.Code != http.StatusOK || w.Body.String() != "%PDF-1.7" {
			t.Fatalf("unexpected response %d %q", w.Code, w.Body.String())
		}
		if got := w.Header().Get("Content-Type"); got != "application/pdf" {
			t.Fatalf("unexpected content type %q", got)
		}
		if got := w.Header().Get("Content-Disposition"); got != `inline; filename="report-d-1.pdf"` {
			t.Fatalf("unexpected disposition %q", got)
		}
	})

	t.Run("service down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc, nil)
		r := newTestRouter()
		r.GET("/v1/deals/:id/report", h.GetReport)

		uc.EXPECT().Render(gomock.Any(), "d-1").Return(nil, fmt.Errorf("%w: all strategies failed", usecase.ErrReportUnavailable))

		w := serve(r, http.MethodGet, "/v1/deals/d-1/report", "")
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "REPORT_UNAVAILABLE" {
			t.Fatalf("unexpected code %q", body.Code)
		}
	})

	t.Run("unknown deal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc, nil)
		r := newTestRouter()
		r.GET("/v1/deals/:id/report", h.GetReport)

		uc.EXPECT().Render(gomock.Any(), "d-9").Return(nil, usecase.ErrDealNotFound)

		w := serve(r, http.MethodGet, "/v1/deals/d-9/report", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
