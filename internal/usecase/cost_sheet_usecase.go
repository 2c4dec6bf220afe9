package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"freight_crm/internal/config"
	"freight_crm/internal/domain/costing"
	"freight_crm/internal/domain/entities"
	"freight_crm/internal/infrastructure/metrics"
	"freight_crm/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrCostSheetNotFound = errors.New("cost sheet not found")

// ProfitResult is the profit view of a deal. Computable is false when the
// deal has no cost sheet or the sheet cannot produce a finite figure; the
// deal value is then left untouched.
type ProfitResult struct {
	DealID     string
	Computable bool
	Profit     float64
	Totals     costing.Totals
	DealValue  float64
	Synced     bool
}

type ICostSheetUseCase interface {
	Get(ctx context.Context, dealID string) (entities.CostSheet, error)
	Save(ctx context.Context, sheet entities.CostSheet) (entities.CostSheet, error)
	Profit(ctx context.Context, dealID string) (ProfitResult, error)
}

type CostSheetUseCase struct {
	repo      interfaces.ICostSheetRepository
	dealRepo  interfaces.IDealRepository
	tolerance float64
	logger    *zap.Logger
	metrics   *metrics.Metrics
}

var _ ICostSheetUseCase = (*CostSheetUseCase)(nil)

func NewCostSheetUseCase(repo interfaces.ICostSheetRepository, dealRepo interfaces.IDealRepository, cfg config.Profit, logger *zap.Logger, m *metrics.Metrics) *CostSheetUseCase {
	return &CostSheetUseCase{
		repo:      repo,
		dealRepo:  dealRepo,
		tolerance: cfg.SyncTolerance,
		logger:    orNop(logger),
		metrics:   m,
	}
}

func (u *CostSheetUseCase) Get(ctx context.Context, dealID string) (entities.CostSheet, error) {
	dealID = strings.TrimSpace(dealID)
	if dealID == "" {
		return entities.CostSheet{}, ErrInvalidDealID
	}
	sheet, err := u.repo.Get(ctx, dealID)
	if err != nil {
		return entities.CostSheet{}, err
	}
	if sheet.DealID == "" {
		return entities.CostSheet{}, ErrCostSheetNotFound
	}
	return sheet, nil
}

// Save replaces the deal's cost sheet document.
func (u *CostSheetUseCase) Save(ctx context.Context, sheet entities.CostSheet) (entities.CostSheet, error) {
	sheet.DealID = strings.TrimSpace(sheet.DealID)
	if sheet.DealID == "" {
		return entities.CostSheet{}, ErrInvalidDealID
	}
	d, err := u.dealRepo.GetByID(ctx, sheet.DealID)
	if err != nil {
		return entities.CostSheet{}, err
	}
	if d.ID == "" {
		return entities.CostSheet{}, ErrDealNotFound
	}

	sheet.UpdatedAt = time.Now().UTC()
	return u.repo.Put(ctx, sheet)
}

// Profit computes the deal's profit and, when it drifted from the stored deal
// value by more than the tolerance, writes it back. The write-back is best
// effort: its failure is logged and the computed profit still returned.
func (u *CostSheetUseCase) Profit(ctx context.Context, dealID string) (ProfitResult, error) {
	dealID = strings.TrimSpace(dealID)
	if dealID == "" {
		return ProfitResult{}, ErrInvalidDealID
	}
	d, err := u.dealRepo.GetByID(ctx, dealID)
	if err != nil {
		return ProfitResult{}, err
	}
	if d.ID == "" {
		return ProfitResult{}, ErrDealNotFound
	}

	res := ProfitResult{DealID: d.ID, DealValue: d.Value}

	sheet, err := u.repo.Get(ctx, dealID)
	if err != nil {
		return ProfitResult{}, err
	}
	if sheet.DealID == "" {
		return res, nil
	}

	profit, ok := costing.ComputeProfit(&sheet)
	if !ok {
		u.logger.Info("[cost][usecase] profit not computable", zap.String("deal_id", dealID))
		return res, nil
	}
	res.Computable = true
	res.Profit = profit
	res.Totals = costing.ComputeTotals(&sheet)

	if math.Abs(profit-d.Value) <= u.tolerance {
		return res, nil
	}

	updated, err := u.dealRepo.Update(ctx, d.ID, entities.DealPatch{Value: &profit})
	if err != nil || updated.ID == "" {
		u.logger.Warn("[cost][usecase] deal value sync failed",
			zap.String("deal_id", dealID),
			zap.Float64("profit", profit),
			zap.Float64("deal_value", d.Value),
			zap.Error(err))
		u.metrics.ProfitSync(false)
		return res, nil
	}

	u.logger.Info("[cost][usecase] deal value synced",
		zap.String("deal_id", dealID),
		zap.Float64("from", d.Value),
		zap.Float64("to", profit))
	u.metrics.ProfitSync(true)
	res.DealValue = updated.Value
	res.Synced = true
	return res, nil
}
