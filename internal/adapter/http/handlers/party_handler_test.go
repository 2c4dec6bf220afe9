package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"freight_crm/internal/adapter/http/handlers/mocks"
	"freight_crm/internal/domain/entities"
	"freight_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPartyRouter(h *PartyHandler) *gin.Engine {
	r := newTestRouter()
	r.POST("/v1/organizations", h.CreateOrganization)
	r.GET("/v1/organizations", h.SearchOrganizations)
	r.GET("/v1/organizations/:id", h.GetOrganization)
	r.PUT("/v1/organizations/:id", h.UpdateOrganization)
	r.POST("/v1/contacts", h.CreateContact)
	r.GET("/v1/contacts", h.SearchContacts)
	r.PUT("/v1/contacts/:id", h.UpdateContact)
	return r
}

func TestPartyHandler_Organizations(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewPartyHandler(mocks.NewMockIOrganizationUseCase(ctrl), mocks.NewMockIContactUseCase(ctrl), nil)

		w := serve(newPartyRouter(h), http.MethodPost, "/v1/organizations", `{"name":"Acme","email":"nope"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orgs := mocks.NewMockIOrganizationUseCase(ctrl)
		h := NewPartyHandler(orgs, mocks.NewMockIContactUseCase(ctrl), nil)

		orgs.EXPECT().Create(gomock.Any(), entities.Organization{Name: "Acme"}).Return(entities.Organization{}, usecase.ErrOrganizationNameTaken)

		w := serve(newPartyRouter(h), http.MethodPost, "/v1/organizations", `{"name":"  Acme "}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "ORGANIZATION_NAME_TAKEN" {
			t.Fatalf("unexpected code %q", body.Code)
		}
	})

	t.Run("update uses path id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orgs := mocks.NewMockIOrganizationUseCase(ctrl)
		h := NewPartyHandler(orgs, mocks.NewMockIContactUseCase(ctrl), nil)

		orgs.EXPECT().Update(gomock.Any(), entities.Organization{ID: "o-1", Name: "Acme SA"}).Return(entities.Organization{ID: "o-1", Name: "Acme SA"}, nil)

		w := serve(newPartyRouter(h), http.MethodPut, "/v1/organizations/o-1", `{"name":"Acme SA"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orgs := mocks.NewMockIOrganizationUseCase(ctrl)
		h := NewPartyHandler(orgs, mocks.NewMockIContactUseCase(ctrl), nil)

		orgs.EXPECT().Get(gomock.Any(), "o-9").Return(entities.Organization{}, usecase.ErrOrganizationNotFound)

		w := serve(newPartyRouter(h), http.MethodGet, "/v1/organizations/o-9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("search short query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orgs := mocks.NewMockIOrganizationUseCase(ctrl)
		h := NewPartyHandler(orgs, mocks.NewMockIContactUseCase(ctrl), nil)

		orgs.EXPECT().Search(gomock.Any(), "a").Return(nil, usecase.ErrSearchQueryTooShort)

		w := serve(newPartyRouter(h), http.MethodGet, "/v1/organizations?q=a", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("search returns empty array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orgs := mocks.NewMockIOrganizationUseCase(ctrl)
		h := NewPartyHandler(orgs, mocks.NewMockIContactUseCase(ctrl), nil)

		orgs.EXPECT().Search(gomock.Any(), "zz").Return(nil, nil)

		w := serve(newPartyRouter(h), http.MethodGet, "/v1/organizations?q=zz", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected [], got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestPartyHandler_Contacts(t *testing.T) {
	t.Run("unknown organization", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		contacts := mocks.NewMockIContactUseCase(ctrl)
		h := NewPartyHandler(mocks.NewMockIOrganizationUseCase(ctrl), contacts, nil)

		contacts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Contact{}, usecase.ErrOrganizationNotFound)

		w := serve(newPartyRouter(h), http.MethodPost, "/v1/contacts", `{"name":"Ana","organization_id":"o-9"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		contacts := mocks.NewMockIContactUseCase(ctrl)
		h := NewPartyHandler(mocks.NewMockIOrganizationUseCase(ctrl), contacts, nil)

		contacts.EXPECT().Create(gomock.Any(), entities.Contact{Name: "Ana", Email: "ana@acme.test"}).
			Return(entities.Contact{ID: "c-1", Name: "Ana", Email: "ana@acme.test"}, nil)

		w := serve(newPartyRouter(h), http.MethodPost, "/v1/contacts", `{"name":"Ana","email":"ana@acme.test"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var ct entities.Contact
		if err := json.Unmarshal(w.Body.Bytes(), &ct); err != nil || ct.ID != "c-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("search", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		contacts := mocks.NewMockIContactUseCase(ctrl)
		h := NewPartyHandler(mocks.NewMockIOrganizationUseCase(ctrl), contacts, nil)

		contacts.EXPECT().Search(gomock.Any(), "ana").Return([]entities.Contact{{ID: "c-1", Name: "Ana"}}, nil)

		w := serve(newPartyRouter(h), http.MethodGet, "/v1/contacts?q=ana", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []entities.Contact
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil || len(got) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
