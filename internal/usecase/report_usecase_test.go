package usecase

import (
	"context"
	"errors"
	"testing"

	"freight_crm/internal/domain/entities"
	mock_interfaces "freight_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReportUseCase_Render(t *testing.T) {
	t.Run("unknown deal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		deals := mock_interfaces.NewMockIDealRepository(ctrl)
		uc := NewReportUseCase(mock_interfaces.NewMockIReportRenderer(ctrl), deals, nil)

		deals.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Deal{}, nil)

		if _, err := uc.Render(context.Background(), "d-1"); !errors.Is(err, ErrDealNotFound) {
			t.Fatalf("expected ErrDealNotFound, got %v", err)
		}
	})

	t.Run("renderer failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		deals := mock_interfaces.NewMockIDealRepository(ctrl)
		renderer := mock_interfaces.NewMockIReportRenderer(ctrl)
		uc := NewReportUseCase(renderer, deals, nil)

		cause := errors.New("all strategies failed")
		deals.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Deal{ID: "d-1"}, nil)
		renderer.EXPECT().Render(gomock.Any(), "d-1").Return(nil, cause)

		_, err := uc.Render(context.Background(), "d-1")
		if !errors.Is(err, ErrReportUnavailable) || !errors.Is(err, cause) {
			t.Fatalf("expected wrapped ErrReportUnavailable, got %v", err)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		deals := mock_interfaces.NewMockIDealRepository(ctrl)
		uc := NewReportUseCase(nil, deals, nil)

		deals.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Deal{ID: "d-1"}, nil)

		if _, err := uc.Render(context.Background(), "d-1"); !errors.Is(err, ErrReportUnavailable) {
			t.Fatalf("expected ErrReportUnavailable, got %v", err)
		}
	})

	t.Run("pdf bytes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		deals := mock_interfaces.NewMockIDealRepository(ctrl)
		renderer := mock_interfaces.NewMockIReportRenderer(ctrl)
		uc := NewReportUseCase(renderer, deals, nil)

		deals.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Deal{ID: "d-1"}, nil)
		renderer.EXPECT().Render(gomock.Any(), "d-1").Return([]byte("%PDF"), nil)

		pdf, err := uc.Render(context.Background(), "d-1")
		if err != nil || string(pdf) != "%PDF" {
			t.Fatalf("unexpected result err=%v pdf=%q", err, pdf)
		}
	})
}
