package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"freight_crm/internal/adapter/http/dto/response"
	"freight_crm/internal/adapter/http/handlers/mocks"
	"freight_crm/internal/domain/entities"
	"freight_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDealPaymentHandler_CollectPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIDealPaymentUseCase) *gin.Engine {
		r := gin.New()
		r.POST("/v1/deals/:id/payments", NewDealPaymentHandler(uc, nil).CollectPayment)
		return r
	}

	t.Run("invalid json is passed as nil payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDealPaymentUseCase(ctrl)

		uc.EXPECT().Collect(gomock.Any(), "d-1", gomock.Nil()).Return(entities.DealPayment{}, usecase.ErrInvalidMPPayload)

		w := serve(newRouter(uc), http.MethodPost, "/v1/deals/d-1/payments", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDealPaymentUseCase(ctrl)

		uc.EXPECT().Collect(gomock.Any(), "d-1", gomock.Any()).Return(entities.DealPayment{}, usecase.ErrDealAlreadyPaid)

		w := serve(newRouter(uc), http.MethodPost, "/v1/deals/d-1/payments", `{"payment_method_id":"pix"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "DEAL_ALREADY_PAID" {
			t.Fatalf("unexpected code %q", body.Code)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDealPaymentUseCase(ctrl)

		uc.EXPECT().Collect(gomock.Any(), "d-1", gomock.Any()).Return(entities.DealPayment{}, usecase.ErrPaymentGatewayNotConfigured)

		w := serve(newRouter(uc), http.MethodPost, "/v1/deals/d-1/payments", `{}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("unwraps mp_payload envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDealPaymentUseCase(ctrl)

		now := time.Now().UTC()
		uc.EXPECT().Collect(gomock.Any(), "d-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, payload json.RawMessage) (entities.DealPayment, error) {
				if string(payload) != `{"payment_method_id":"pix"}` {
					t.Fatalf("unexpected payload %s", payload)
				}
				return entities.DealPayment{ID: "pay-1", DealID: "d-1", Amount: 120, Currency: "USD", Date: now, Status: entities.PaymentStatusApproved}, nil
			})

		w := serve(newRouter(uc), http.MethodPost, "/v1/deals/d-1/payments", `{"mp_payload":{"payment_method_id":"pix"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body response.DealPaymentResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body.PaymentID != "pay-1" || body.Status != "approved" || body.Amount != 120 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestDealPaymentHandler_ListAndGet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIDealPaymentUseCase(ctrl)
	h := NewDealPaymentHandler(uc, nil)

	r := gin.New()
	r.GET("/v1/deals/:id/payments", h.ListPayments)
	r.GET("/v1/payments/:payment_id", h.GetPayment)

	uc.EXPECT().ListByDealID(gomock.Any(), "d-1").Return(nil, nil)
	w := serve(r, http.MethodGet, "/v1/deals/d-1/payments", "")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("expected empty list, got %d %s", w.Code, w.Body.String())
	}

	uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.DealPayment{}, usecase.ErrDealPaymentNotFound)
	w = serve(r, http.MethodGet, "/v1/payments/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
