package handlers

import (
	"errors"
	"net/http"

	"freight_crm/internal/adapter/http/dto/response"
	"freight_crm/internal/domain/entities"
	"freight_crm/internal/usecase"
	"freight_crm/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CostSheetHandler struct {
	usecase usecase.ICostSheetUseCase
	logger  *zap.Logger
}

func NewCostSheetHandler(uc usecase.ICostSheetUseCase, logger *zap.Logger) *CostSheetHandler {
	return &CostSheetHandler{usecase: uc, logger: orNop(logger)}
}

// GetCostSheet godoc
// @Summary      Get the deal's cost sheet
// @Tags         cost-sheet
// @Produce      json
// @Param        id   path      string  true  "Deal ID"
// @Success      200  {object}  entities.CostSheet
// @Failure      404  {object}  pkg.HTTPError
// @Router       /deals/{id}/cost-sheet [get]
func (h *CostSheetHandler) GetCostSheet(c *gin.Context) {
	sheet, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCostSheetError(err))
		return
	}
	c.JSON(http.StatusOK, sheet)
}

// SaveCostSheet godoc
// @Summary      Replace the deal's cost sheet
// @Description  Cells accept numbers or locale formatted text ("1.234,50").
// @Tags         cost-sheet
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Deal ID"
// @Param        body  body      entities.CostSheet  true  "Sheet"
// @Success      200   {object}  entities.CostSheet
// @Router       /deals/{id}/cost-sheet [put]
func (h *CostSheetHandler) SaveCostSheet(c *gin.Context) {
	var sheet entities.CostSheet
	if err := c.ShouldBindJSON(&sheet); err != nil {
		invalidRequest(c, err)
		return
	}
	sheet.DealID = c.Param("id")

	saved, err := h.usecase.Save(c.Request.Context(), sheet)
	if err != nil {
		h.logger.Warn("[costsheet][handler] save failed", zap.String("deal_id", sheet.DealID), zap.Error(err))
		writeError(c, mapCostSheetError(err))
		return
	}
	c.JSON(http.StatusOK, saved)
}

// GetProfit godoc
// @Summary      Compute the deal's profit in USD
// @Description  Syncs the deal value when it drifted from the computed profit.
// @Tags         cost-sheet
// @Produce      json
// @Param        id   path      string  true  "Deal ID"
// @Success      200  {object}  response.ProfitResponse
// @Router       /deals/{id}/profit [get]
func (h *CostSheetHandler) GetProfit(c *gin.Context) {
	res, err := h.usecase.Profit(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCostSheetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProfit(res))
}

func mapCostSheetError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrCostSheetNotFound) {
		return pkg.NewDomainErrorSimple("COST_SHEET_NOT_FOUND", "Cost sheet not found", http.StatusNotFound)
	}
	return mapCommonError(err)
}
