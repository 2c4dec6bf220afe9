package handlers

import (
	"errors"
	"net/http"

	"freight_crm/internal/adapter/http/dto/request"
	"freight_crm/internal/adapter/http/dto/response"
	"freight_crm/internal/usecase"
	"freight_crm/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DealHandler handles the pipeline: deals and their stages.
type DealHandler struct {
	deals  usecase.IDealUseCase
	stages usecase.IStageUseCase
	logger *zap.Logger
}

func NewDealHandler(deals usecase.IDealUseCase, stages usecase.IStageUseCase, logger *zap.Logger) *DealHandler {
	return &DealHandler{deals: deals, stages: stages, logger: orNop(logger)}
}

// CreateDeal godoc
// @Summary      Create a deal
// @Tags         deals
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateDealRequest  true  "Deal"
// @Success      201   {object}  entities.Deal
// @Failure      400   {object}  pkg.HTTPError
// @Router       /deals [post]
func (h *DealHandler) CreateDeal(c *gin.Context) {
	var req request.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	d, err := h.deals.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.logger.Warn("[deal][handler] create failed", zap.String("organization", req.OrganizationName), zap.Error(err))
		writeError(c, mapDealError(err))
		return
	}
	c.JSON(http.StatusCreated, d)
}

// ListDeals godoc
// @Summary      List deals, optionally for one stage
// @Tags         deals
// @Produce      json
// @Param        stage_id  query  string  false  "Stage"
// @Success      200  {array}  entities.Deal
// @Router       /deals [get]
func (h *DealHandler) ListDeals(c *gin.Context) {
	deals, err := h.deals.List(c.Request.Context(), c.Query("stage_id"))
	if err != nil {
		writeError(c, mapDealError(err))
		return
	}
	c.JSON(http.StatusOK, deals)
}

// GetDeal godoc
// @Summary      Get a deal with its custom fields and modality
// @Tags         deals
// @Produce      json
// @Param        id   path      string  true  "Deal ID"
// @Success      200  {object}  response.DealDetailResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /deals/{id} [get]
func (h *DealHandler) GetDeal(c *gin.Context) {
	detail, err := h.deals.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDealError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDealDetail(detail))
}

// UpdateDeal godoc
// @Summary      Partially update a deal
// @Tags         deals
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "Deal ID"
// @Param        body  body      request.UpdateDealRequest  true  "Patch"
// @Success      200   {object}  entities.Deal
// @Router       /deals/{id} [patch]
func (h *DealHandler) UpdateDeal(c *gin.Context) {
	var req request.UpdateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	d, err := h.deals.Update(c.Request.Context(), c.Param("id"), req.ToPatch())
	if err != nil {
		h.logger.Warn("[deal][handler] update failed", zap.String("deal_id", c.Param("id")), zap.Error(err))
		writeError(c, mapDealError(err))
		return
	}
	c.JSON(http.StatusOK, d)
}

// MoveStage godoc
// @Summary      Move a deal to another stage
// @Tags         deals
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "Deal ID"
// @Param        body  body      request.MoveStageRequest  true  "Stage"
// @Success      200   {object}  entities.Deal
// @Router       /deals/{id}/stage [patch]
func (h *DealHandler) MoveStage(c *gin.Context) {
	var req request.MoveStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	d, err := h.deals.MoveStage(c.Request.Context(), c.Param("id"), req.StageID)
	if err != nil {
		writeError(c, mapDealError(err))
		return
	}
	c.JSON(http.StatusOK, d)
}

// GetModality godoc
// @Summary      Resolve the deal's transport modality
// @Tags         deals
// @Produce      json
// @Param        id   path      string  true  "Deal ID"
// @Success      200  {object}  entities.ModalityView
// @Router       /deals/{id}/modality [get]
func (h *DealHandler) GetModality(c *gin.Context) {
	view, err := h.deals.Modality(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDealError(err))
		return
	}
	c.JSON(http.StatusOK, view)
}

// ListStages godoc
// @Summary      List pipeline stages by position
// @Tags         stages
// @Produce      json
// @Success      200  {array}  entities.Stage
// @Router       /stages [get]
func (h *DealHandler) ListStages(c *gin.Context) {
	stages, err := h.stages.List(c.Request.Context())
	if err != nil {
		writeError(c, mapDealError(err))
		return
	}
	c.JSON(http.StatusOK, stages)
}

// CreateStage godoc
// @Summary      Create a pipeline stage
// @Tags         stages
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateStageRequest  true  "Stage"
// @Success      201   {object}  entities.Stage
// @Router       /stages [post]
func (h *DealHandler) CreateStage(c *gin.Context) {
	var req request.CreateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	s, err := h.stages.Create(c.Request.Context(), req.Name, req.Position)
	if err != nil {
		writeError(c, mapDealError(err))
		return
	}
	c.JSON(http.StatusCreated, s)
}

func mapDealError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrOrganizationNameRequired),
		errors.Is(err, usecase.ErrInvalidDealValue),
		errors.Is(err, usecase.ErrInvalidDealTitle),
		errors.Is(err, usecase.ErrInvalidTransportType),
		errors.Is(err, usecase.ErrEmptyDealPatch),
		errors.Is(err, usecase.ErrInvalidStageID),
		errors.Is(err, usecase.ErrInvalidStageName):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStageNotFound):
		return pkg.NewDomainErrorSimple("STAGE_NOT_FOUND", "Stage not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoStages):
		return pkg.NewDomainErrorSimple("NO_STAGES", "Pipeline has no stages", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrganizationNotFound):
		return pkg.NewDomainErrorSimple("ORGANIZATION_NOT_FOUND", "Organization not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContactNotFound):
		return pkg.NewDomainErrorSimple("CONTACT_NOT_FOUND", "Contact not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}

func orNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
