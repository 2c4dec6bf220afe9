package usecase

import (
	"context"
	"errors"
	"testing"

	"freight_crm/internal/config"
	"freight_crm/internal/domain/entities"
	"freight_crm/internal/infrastructure/metrics"
	mock_interfaces "freight_crm/internal/usecase/interfaces/mocks"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

func aggregationSheet() entities.CostSheet {
	return entities.CostSheet{
		DealID: "d-1",
		Header: entities.CostSheetHeader{
			"pesoKg": entities.NumberAmount(100),
			"gsRate": entities.NumberAmount(7300),
		},
		VentaRows:  []entities.CostRow{{UsdXKg: entities.NumberAmount(2.5)}},
		LocCliRows: []entities.CostRow{{Gs: entities.NumberAmount(730000)}},
		CompraRows: []entities.CostRow{{Total: entities.NumberAmount(120)}},
	}
}

func newCostSheetUseCase(t *testing.T, ctrl *gomock.Controller) (*CostSheetUseCase, *mock_interfaces.MockICostSheetRepository, *mock_interfaces.MockIDealRepository) {
	sheets := mock_interfaces.NewMockICostSheetRepository(ctrl)
	deals := mock_interfaces.NewMockIDealRepository(ctrl)
	uc := NewCostSheetUseCase(sheets, deals, config.Profit{SyncTolerance: 0.01}, zaptest.NewLogger(t), metrics.New(prometheus.NewRegistry()))
	return uc, sheets, deals
}

func TestCostSheetUseCase_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, sheets, _ := newCostSheetUseCase(t, ctrl)

	sheets.EXPECT().Get(gomock.Any(), "d-1").Return(entities.CostSheet{}, nil)

	_, err := uc.Get(context.Background(), "d-1")
	if !errors.Is(err, ErrCostSheetNotFound) {
		t.Fatalf("expected ErrCostSheetNotFound, got %v", err)
	}
}

func TestCostSheetUseCase_Save(t *testing.T) {
	t.Run("unknown deal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, deals := newCostSheetUseCase(t, ctrl)

		deals.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Deal{}, nil)

		_, err := uc.Save(context.Background(), entities.CostSheet{DealID: "d-1"})
		if !errors.Is(err, ErrDealNotFound) {
			t.Fatalf("expected ErrDealNotFound, got %v", err)
		}
	})

	t.Run("stamps update time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, sheets, deals := newCostSheetUseCase(t, ctrl)

		deals.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Deal{ID: "d-1"}, nil)
		sheets.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.CostSheet) (entities.CostSheet, error) {
				if s.UpdatedAt.IsZero() {
					t.Fatalf("updated_at must be set")
				}
				return s, nil
			})

		if _, err := uc.Save(context.Background(), aggregationSheet()); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestCostSheetUseCase_Profit(t *testing.T) {
	t.Run("no cost sheet leaves deal value alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, sheets, deals := newCostSheetUseCase(t, ctrl)

		deals.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Deal{ID: "d-1", Value: 50}, nil)
		sheets.EXPECT().Get(gomock.Any(), "d-1").Return(entities.CostSheet{}, nil)

		res, err := uc.Profit(context.Background(), "d-1")
		if err != nil || res.Computable || res.Synced || res.DealValue != 50 {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("drift beyond tolerance syncs deal value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, sheets, deals := newCostSheetUseCase(t, ctrl)

		deals.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Deal{ID: "d-1", Value: 200}, nil)
		sheets.EXPECT().Get(gomock.Any(), "d-1").Return(aggregationSheet(), nil)
		deals.EXPECT().Update(gomock.Any(), "d-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, p entities.DealPatch) (entities.Deal, error) {
				if p.Value == nil || *p.Value != 230 {
					t.Fatalf("expected value 230, got %+v", p.Value)
				}
				return entities.Deal{ID: id, Value: *p.Value}, nil
			})

		res, err := uc.Profit(context.Background(), "d-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !res.Computable || res.Profit != 230 || !res.Synced || res.DealValue != 230 {
			t.Fatalf("unexpected result %+v", res)
		}
		if res.Totals.SaleUSD != 350 || res.Totals.CostUSD != 120 {
			t.Fatalf("unexpected totals %+v", res.Totals)
		}
	})

	t.Run("within tolerance does not write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, sheets, deals := newCostSheetUseCase(t, ctrl)

		deals.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Deal{ID: "d-1", Value: 229.995}, nil)
		sheets.EXPECT().Get(gomock.Any(), "d-1").Return(aggregationSheet(), nil)

		res, err := uc.Profit(context.Background(), "d-1")
		if err != nil || res.Synced || res.Profit != 230 {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("sync failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, sheets, deals := newCostSheetUseCase(t, ctrl)

		deals.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Deal{ID: "d-1", Value: 0}, nil)
		sheets.EXPECT().Get(gomock.Any(), "d-1").Return(aggregationSheet(), nil)
		deals.EXPECT().Update(gomock.Any(), "d-1", gomock.Any()).Return(entities.Deal{}, errors.New("throttled"))

		res, err := uc.Profit(context.Background(), "d-1")
		if err != nil {
			t.Fatalf("sync failure must not surface, got %v", err)
		}
		if !res.Computable || res.Profit != 230 || res.Synced || res.DealValue != 0 {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("non-finite profit is not computable and never written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, sheets, deals := newCostSheetUseCase(t, ctrl)

		huge := []entities.CostRow{{UsdXKg: entities.NumberAmount(1e200)}}
		deals.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Deal{ID: "d-1", Value: 75}, nil)
		sheets.EXPECT().Get(gomock.Any(), "d-1").Return(entities.CostSheet{
			DealID:     "d-1",
			Header:     entities.CostSheetHeader{"pesoKg": entities.NumberAmount(1e200)},
			VentaRows:  huge,
			CompraRows: huge,
		}, nil)

		res, err := uc.Profit(context.Background(), "d-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Computable || res.Synced || res.Profit != 0 || res.DealValue != 75 {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("override short-circuits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, sheets, deals := newCostSheetUseCase(t, ctrl)

		deals.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Deal{ID: "d-1", Value: 1234.5}, nil)
		sheets.EXPECT().Get(gomock.Any(), "d-1").Return(entities.CostSheet{
			DealID: "d-1",
			Header: entities.CostSheetHeader{"profit_usd": entities.TextAmount("1234.5")},
		}, nil)

		res, err := uc.Profit(context.Background(), "d-1")
		if err != nil || res.Profit != 1234.5 || res.Synced {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}
