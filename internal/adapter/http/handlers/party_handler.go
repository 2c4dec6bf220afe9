package handlers

import (
	"errors"
	"net/http"

	"freight_crm/internal/adapter/http/dto/request"
	"freight_crm/internal/usecase"
	"freight_crm/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PartyHandler handles organizations and contacts.
type PartyHandler struct {
	organizations usecase.IOrganizationUseCase
	contacts      usecase.IContactUseCase
	logger        *zap.Logger
}

func NewPartyHandler(organizations usecase.IOrganizationUseCase, contacts usecase.IContactUseCase, logger *zap.Logger) *PartyHandler {
	return &PartyHandler{organizations: organizations, contacts: contacts, logger: orNop(logger)}
}

// CreateOrganization godoc
// @Summary      Create an organization
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Param        body  body      request.OrganizationRequest  true  "Organization"
// @Success      201   {object}  entities.Organization
// @Failure      409   {object}  pkg.HTTPError
// @Router       /organizations [post]
func (h *PartyHandler) CreateOrganization(c *gin.Context) {
	var req request.OrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	o, err := h.organizations.Create(c.Request.Context(), req.ToEntity(""))
	if err != nil {
		h.logger.Warn("[org][handler] create failed", zap.String("name", req.Name), zap.Error(err))
		writeError(c, mapPartyError(err))
		return
	}
	c.JSON(http.StatusCreated, o)
}

// GetOrganization godoc
// @Summary      Get an organization
// @Tags         organizations
// @Produce      json
// @Param        id   path      string  true  "Organization ID"
// @Success      200  {object}  entities.Organization
// @Router       /organizations/{id} [get]
func (h *PartyHandler) GetOrganization(c *gin.Context) {
	o, err := h.organizations.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapPartyError(err))
		return
	}
	c.JSON(http.StatusOK, o)
}

// UpdateOrganization godoc
// @Summary      Replace an organization
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Param        id    path      string                       true  "Organization ID"
// @Param        body  body      request.OrganizationRequest  true  "Organization"
// @Success      200   {object}  entities.Organization
// @Router       /organizations/{id} [put]
func (h *PartyHandler) UpdateOrganization(c *gin.Context) {
	var req request.OrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	o, err := h.organizations.Update(c.Request.Context(), req.ToEntity(c.Param("id")))
	if err != nil {
		writeError(c, mapPartyError(err))
		return
	}
	c.JSON(http.StatusOK, o)
}

// SearchOrganizations godoc
// @Summary      Search organizations by name prefix
// @Tags         organizations
// @Produce      json
// @Param        q    query     string  true  "At least 2 characters"
// @Success      200  {array}   entities.Organization
// @Router       /organizations [get]
func (h *PartyHandler) SearchOrganizations(c *gin.Context) {
	orgs, err := h.organizations.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, mapPartyError(err))
		return
	}
	c.JSON(http.StatusOK, nonNil(orgs))
}

// CreateContact godoc
// @Summary      Create a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        body  body      request.ContactRequest  true  "Contact"
// @Success      201   {object}  entities.Contact
// @Router       /contacts [post]
func (h *PartyHandler) CreateContact(c *gin.Context) {
	var req request.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	ct, err := h.contacts.Create(c.Request.Context(), req.ToEntity(""))
	if err != nil {
		h.logger.Warn("[contact][handler] create failed", zap.String("organization_id", req.OrganizationID), zap.Error(err))
		writeError(c, mapPartyError(err))
		return
	}
	c.JSON(http.StatusCreated, ct)
}

// GetContact godoc
// @Summary      Get a contact
// @Tags         contacts
// @Produce      json
// @Param        id   path      string  true  "Contact ID"
// @Success      200  {object}  entities.Contact
// @Router       /contacts/{id} [get]
func (h *PartyHandler) GetContact(c *gin.Context) {
	ct, err := h.contacts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapPartyError(err))
		return
	}
	c.JSON(http.StatusOK, ct)
}

// UpdateContact godoc
// @Summary      Replace a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Contact ID"
// @Param        body  body      request.ContactRequest  true  "Contact"
// @Success      200   {object}  entities.Contact
// @Router       /contacts/{id} [put]
func (h *PartyHandler) UpdateContact(c *gin.Context) {
	var req request.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	ct, err := h.contacts.Update(c.Request.Context(), req.ToEntity(c.Param("id")))
	if err != nil {
		writeError(c, mapPartyError(err))
		return
	}
	c.JSON(http.StatusOK, ct)
}

// SearchContacts godoc
// @Summary      Search contacts by name or e-mail prefix
// @Tags         contacts
// @Produce      json
// @Param        q    query     string  true  "At least 2 characters"
// @Success      200  {array}   entities.Contact
// @Router       /contacts [get]
func (h *PartyHandler) SearchContacts(c *gin.Context) {
	contacts, err := h.contacts.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, mapPartyError(err))
		return
	}
	c.JSON(http.StatusOK, nonNil(contacts))
}

func mapPartyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrOrganizationNameRequired),
		errors.Is(err, usecase.ErrContactNameRequired),
		errors.Is(err, usecase.ErrInvalidOrganizationID),
		errors.Is(err, usecase.ErrInvalidContactID):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSearchQueryTooShort):
		return pkg.NewDomainErrorSimple("SEARCH_QUERY_TOO_SHORT", "Search query must have at least 2 characters", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrganizationNameTaken):
		return pkg.NewDomainErrorSimple("ORGANIZATION_NAME_TAKEN", "Organization name already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrganizationNotFound):
		return pkg.NewDomainErrorSimple("ORGANIZATION_NOT_FOUND", "Organization not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContactNotFound):
		return pkg.NewDomainErrorSimple("CONTACT_NOT_FOUND", "Contact not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
