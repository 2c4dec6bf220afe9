package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"freight_crm/internal/usecase"
	"freight_crm/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReportHandler struct {
	usecase usecase.IReportUseCase
	logger  *zap.Logger
}

func NewReportHandler(uc usecase.IReportUseCase, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{usecase: uc, logger: orNop(logger)}
}

// GetReport godoc
// @Summary      Download the deal's operation report
// @Tags         reports
// @Produce      application/pdf
// @Param        id   path  string  true  "Deal ID"
// @Success      200
// @Failure      502  {object}  pkg.HTTPError
// @Router       /deals/{id}/report [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	dealID := c.Param("id")
	pdf, err := h.usecase.Render(c.Request.Context(), dealID)
	if err != nil {
		h.logger.Warn("[report][handler] render failed", zap.String("deal_id", dealID), zap.Error(err))
		writeError(c, mapReportError(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="report-%s.pdf"`, dealID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func mapReportError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrReportUnavailable) {
		return pkg.NewDomainError("REPORT_UNAVAILABLE", "The report service could not produce the report", err, http.StatusBadGateway)
	}
	return mapCommonError(err)
}
