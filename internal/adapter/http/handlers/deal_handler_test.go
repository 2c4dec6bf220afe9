package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"freight_crm/internal/adapter/http/handlers/mocks"
	"freight_crm/internal/adapter/http/middleware"
	"freight_crm/internal/domain/entities"
	"freight_crm/internal/usecase"
	"freight_crm/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func serve(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Session())
	return r
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body is not json: %v (%s)", err, w.Body.String())
	}
	return body
}

func TestDealHandler_CreateDeal(t *testing.T) {
	t.Run("missing organization name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewDealHandler(mocks.NewMockIDealUseCase(ctrl), mocks.NewMockIStageUseCase(ctrl), nil)
		r := newTestRouter()
		r.POST("/v1/deals", h.CreateDeal)

		w := serve(r, http.MethodPost, "/v1/deals", `{"title":"Import"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeError(t, w)
		if body.Code != "INVALID_REQUEST" {
			t.Fatalf("unexpected code %q", body.Code)
		}
		fields, _ := body.Details["fields"].(map[string]any)
		if fields["OrganizationName"] != "required" {
			t.Fatalf("expected field details, got %+v", body.Details)
		}
	})

	t.Run("no stages maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		deals := mocks.NewMockIDealUseCase(ctrl)
		h := NewDealHandler(deals, mocks.NewMockIStageUseCase(ctrl), nil)
		r := newTestRouter()
		r.POST("/v1/deals", h.CreateDeal)

		deals.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Deal{}, usecase.ErrNoStages)

		w := serve(r, http.MethodPost, "/v1/deals", `{"organization_name":"Acme"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		deals := mocks.NewMockIDealUseCase(ctrl)
		h := NewDealHandler(deals, mocks.NewMockIStageUseCase(ctrl), nil)
		r := newTestRouter()
		r.POST("/v1/deals", h.CreateDeal)

		deals.EXPECT().Create(gomock.Any(), usecase.CreateDealInput{
			Title:            "Import",
			OrganizationName: "Acme",
			Value:            100,
			TransportType:    entities.TransportOcean,
		}).Return(entities.Deal{ID: "d-1", Reference: "OP-20260309-ABCDEF"}, nil)

		w := serve(r, http.MethodPost, "/v1/deals", `{"title":"Import","organization_name":"Acme","value":100,"transport_type":"ocean"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var d entities.Deal
		if err := json.Unmarshal(w.Body.Bytes(), &d); err != nil || d.Reference != "OP-20260309-ABCDEF" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestDealHandler_GetDeal(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		deals := mocks.NewMockIDealUseCase(ctrl)
		h := NewDealHandler(deals, mocks.NewMockIStageUseCase(ctrl), nil)
		r := newTestRouter()
		r.GET("/v1/deals/:id", h.GetDeal)

		deals.EXPECT().Get(gomock.Any(), "nope").Return(usecase.DealDetail{}, usecase.ErrDealNotFound)

		w := serve(r, http.MethodGet, "/v1/deals/nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "DEAL_NOT_FOUND" {
			t.Fatalf("unexpected code %q", body.Code)
		}
	})

	t.Run("flattens custom fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		deals := mocks.NewMockIDealUseCase(ctrl)
		h := NewDealHandler(deals, mocks.NewMockIStageUseCase(ctrl), nil)
		r := newTestRouter()
		r.GET("/v1/deals/:id", h.GetDeal)

		deals.EXPECT().Get(gomock.Any(), "d-1").Return(usecase.DealDetail{
			Deal: entities.Deal{ID: "d-1"},
			CustomFields: entities.NewCustomFieldSet([]entities.CustomField{
				{Key: entities.CFKeyModalidadCarga, Value: entities.ScalarValue("TERRESTRE")},
			}),
			Modality: entities.NewModalityView(entities.TransportRoad),
		}, nil)

		w := serve(r, http.MethodGet, "/v1/deals/d-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			ID           string            `json:"id"`
			CustomFields map[string]string `json:"custom_fields"`
			Modality     struct {
				Resolved string `json:"resolved"`
			} `json:"modality"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body.ID != "d-1" || body.CustomFields["modalidad_carga"] != "TERRESTRE" || body.Modality.Resolved != "ROAD" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestDealHandler_UpdateDeal(t *testing.T) {
	ctrl := gomock.NewController(t)
	deals := mocks.NewMockIDealUseCase(ctrl)
	h := NewDealHandler(deals, mocks.NewMockIStageUseCase(ctrl), nil)
	r := newTestRouter()
	r.PATCH("/v1/deals/:id", h.UpdateDeal)

	deals.EXPECT().Update(gomock.Any(), "d-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, p entities.DealPatch) (entities.Deal, error) {
			if p.Value == nil || *p.Value != 50 || p.Title != nil {
				t.Fatalf("unexpected patch: %+v", p)
			}
			return entities.Deal{ID: "d-1", Value: 50}, nil
		})

	w := serve(r, http.MethodPatch, "/v1/deals/d-1", `{"value":50}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	deals.EXPECT().Update(gomock.Any(), "d-1", gomock.Any()).Return(entities.Deal{}, usecase.ErrEmptyDealPatch)
	w = serve(r, http.MethodPatch, "/v1/deals/d-1", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestDealHandler_MoveStage(t *testing.T) {
	ctrl := gomock.NewController(t)
	deals := mocks.NewMockIDealUseCase(ctrl)
	h := NewDealHandler(deals, mocks.NewMockIStageUseCase(ctrl), nil)
	r := newTestRouter()
	r.PATCH("/v1/deals/:id/stage", h.MoveStage)

	w := serve(r, http.MethodPatch, "/v1/deals/d-1/stage", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	deals.EXPECT().MoveStage(gomock.Any(), "d-1", "s-9").Return(entities.Deal{}, usecase.ErrStageNotFound)
	w = serve(r, http.MethodPatch, "/v1/deals/d-1/stage", `{"stage_id":"s-9"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestDealHandler_Stages(t *testing.T) {
	ctrl := gomock.NewController(t)
	stages := mocks.NewMockIStageUseCase(ctrl)
	h := NewDealHandler(mocks.NewMockIDealUseCase(ctrl), stages, nil)
	r := newTestRouter()
	r.GET("/v1/stages", h.ListStages)
	r.POST("/v1/stages", h.CreateStage)

	stages.EXPECT().List(gomock.Any()).Return([]entities.Stage{{ID: "s-1", Position: 1}}, nil)
	if w := serve(r, http.MethodGet, "/v1/stages", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	stages.EXPECT().Create(gomock.Any(), "Won", 5).Return(entities.Stage{ID: "s-5", Name: "Won", Position: 5}, nil)
	if w := serve(r, http.MethodPost, "/v1/stages", `{"name":"Won","position":5}`); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
}

func TestDealHandler_GetModality(t *testing.T) {
	ctrl := gomock.NewController(t)
	deals := mocks.NewMockIDealUseCase(ctrl)
	h := NewDealHandler(deals, mocks.NewMockIStageUseCase(ctrl), nil)
	r := newTestRouter()
	r.GET("/v1/deals/:id/modality", h.GetModality)

	deals.EXPECT().Modality(gomock.Any(), "d-1").Return(entities.NewModalityView(entities.TransportAir), nil)

	w := serve(r, http.MethodGet, "/v1/deals/d-1/modality", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var view entities.ModalityView
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if view.Resolved != entities.TransportAir || len(view.Forms) != 4 {
		t.Fatalf("unexpected view: %+v", view)
	}
}
