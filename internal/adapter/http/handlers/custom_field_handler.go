package handlers

import (
	"errors"
	"net/http"

	"freight_crm/internal/adapter/http/dto/request"
	"freight_crm/internal/domain/entities"
	"freight_crm/internal/usecase"
	"freight_crm/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CustomFieldHandler exposes the custom field overlay of deals, contacts and
// organizations.
type CustomFieldHandler struct {
	usecase usecase.ICustomFieldUseCase
	logger  *zap.Logger
}

func NewCustomFieldHandler(uc usecase.ICustomFieldUseCase, logger *zap.Logger) *CustomFieldHandler {
	return &CustomFieldHandler{usecase: uc, logger: orNop(logger)}
}

// GetCustomFields godoc
// @Summary      Read an entity's custom fields
// @Description  Never fails on storage errors: the overlay is then reported as unsupported.
// @Tags         custom-fields
// @Produce      json
// @Param        entity_type  path      string  true  "deal, contact or organization"
// @Param        entity_id    path      string  true  "Entity ID"
// @Success      200          {object}  entities.CustomFieldSet
// @Router       /custom-fields/{entity_type}/{entity_id} [get]
func (h *CustomFieldHandler) GetCustomFields(c *gin.Context) {
	entityType, ok := entityTypeParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.usecase.GetAll(c.Request.Context(), entityType, c.Param("entity_id")))
}

// UpsertCustomFields godoc
// @Summary      Write several custom fields
// @Description  Keys are written independently. When some fail the answer is 207 with the failed keys.
// @Tags         custom-fields
// @Accept       json
// @Produce      json
// @Param        entity_type  path      string                             true  "deal, contact or organization"
// @Param        entity_id    path      string                             true  "Entity ID"
// @Param        body         body      request.UpsertCustomFieldsRequest  true  "Fields"
// @Success      200          {object}  entities.CustomFieldSet
// @Success      207          {object}  map[string]any
// @Router       /custom-fields/{entity_type}/{entity_id} [put]
func (h *CustomFieldHandler) UpsertCustomFields(c *gin.Context) {
	entityType, ok := entityTypeParam(c)
	if !ok {
		return
	}
	var req request.UpsertCustomFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	set, err := h.usecase.UpsertMany(c.Request.Context(), entityType, c.Param("entity_id"), req.ToInputs())
	var batchErr *usecase.BatchError
	switch {
	case errors.As(err, &batchErr):
		failed := make(map[string]string, len(batchErr.Failed))
		for k, e := range batchErr.Failed {
			failed[k] = e.Error()
		}
		h.logger.Warn("[cf][handler] partial upsert", zap.String("entity_id", c.Param("entity_id")), zap.Int("failed", len(failed)))
		c.JSON(http.StatusMultiStatus, gin.H{"fields": set.Fields, "supported": set.Supported, "failed": failed})
	case err != nil:
		writeError(c, mapCustomFieldError(err))
	default:
		c.JSON(http.StatusOK, set)
	}
}

// UpsertCustomField godoc
// @Summary      Write one custom field
// @Tags         custom-fields
// @Accept       json
// @Produce      json
// @Param        entity_type  path      string                      true  "deal, contact or organization"
// @Param        entity_id    path      string                      true  "Entity ID"
// @Param        key          path      string                      true  "Field key"
// @Param        body         body      request.CustomFieldRequest  true  "Field"
// @Success      200          {object}  entities.CustomField
// @Router       /custom-fields/{entity_type}/{entity_id}/{key} [put]
func (h *CustomFieldHandler) UpsertCustomField(c *gin.Context) {
	entityType, ok := entityTypeParam(c)
	if !ok {
		return
	}
	var req request.CustomFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	f, err := h.usecase.Upsert(c.Request.Context(), entityType, c.Param("entity_id"), req.ToInput(c.Param("key")))
	if err != nil {
		h.logger.Warn("[cf][handler] upsert failed", zap.String("key", c.Param("key")), zap.Error(err))
		writeError(c, mapCustomFieldError(err))
		return
	}
	c.JSON(http.StatusOK, f)
}

func entityTypeParam(c *gin.Context) (entities.EntityType, bool) {
	t, ok := entities.ParseEntityType(c.Param("entity_type"))
	if !ok {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_ENTITY_TYPE", "Entity type must be deal, contact or organization", http.StatusBadRequest))
	}
	return t, ok
}

func mapCustomFieldError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEntityType):
		return pkg.NewDomainErrorSimple("INVALID_ENTITY_TYPE", "Entity type must be deal, contact or organization", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEntityID), errors.Is(err, usecase.ErrInvalidFieldKey):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidStructure):
		return pkg.NewDomainError("INVALID_CUSTOM_FIELD_VALUE", "Custom field value has an invalid structure", err, http.StatusUnprocessableEntity)
	default:
		return mapCommonError(err)
	}
}
