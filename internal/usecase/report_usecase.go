package usecase

import (
	"context"
	"errors"
	"fmt"

	"freight_crm/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrReportUnavailable = errors.New("report unavailable")

type IReportUseCase interface {
	Render(ctx context.Context, dealID string) ([]byte, error)
}

type ReportUseCase struct {
	renderer interfaces.IReportRenderer
	dealRepo interfaces.IDealRepository
	logger   *zap.Logger
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(renderer interfaces.IReportRenderer, dealRepo interfaces.IDealRepository, logger *zap.Logger) *ReportUseCase {
	return &ReportUseCase{renderer: renderer, dealRepo: dealRepo, logger: orNop(logger)}
}

// Render returns the deal's PDF report. Renderer failures are reported as
// ErrReportUnavailable with the renderer's error kept in the chain.
func (u *ReportUseCase) Render(ctx context.Context, dealID string) ([]byte, error) {
	d, err := requireDeal(ctx, u.dealRepo, dealID)
	if err != nil {
		return nil, err
	}
	if u.renderer == nil {
		return nil, fmt.Errorf("%w: renderer not configured", ErrReportUnavailable)
	}

	pdf, err := u.renderer.Render(ctx, d.ID)
	if err != nil {
		u.logger.Warn("[report][usecase] render failed", zap.String("deal_id", d.ID), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrReportUnavailable, err)
	}
	return pdf, nil
}
