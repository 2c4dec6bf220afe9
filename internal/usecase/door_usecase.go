package usecase

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"freight_crm/internal/domain/entities"
	"freight_crm/internal/domain/quote"
	"freight_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

var (
	ErrDoorNotFound    = errors.New("door not found")
	ErrInvalidDoorID   = errors.New("invalid door id")
	ErrInvalidQuantity = errors.New("invalid door quantity")
	ErrNoDoorsToQuote  = errors.New("deal has no doors to quote")
)

// IDoorUseCase manages the industrial doors of a deal and renders the
// supplier quote request for them.
type IDoorUseCase interface {
	List(ctx context.Context, dealID string) ([]entities.Door, error)
	Create(ctx context.Context, dealID string, d entities.Door) (entities.Door, error)
	Update(ctx context.Context, dealID string, d entities.Door) (entities.Door, error)
	Delete(ctx context.Context, dealID, doorID string) error
	QuoteEmail(ctx context.Context, dealID, to string) (quote.Email, error)
}

type DoorUseCase struct {
	repo     interfaces.IDoorRepository
	dealRepo interfaces.IDealRepository
	logger   *zap.Logger
}

var _ IDoorUseCase = (*DoorUseCase)(nil)

func NewDoorUseCase(repo interfaces.IDoorRepository, dealRepo interfaces.IDealRepository, logger *zap.Logger) *DoorUseCase {
	return &DoorUseCase{repo: repo, dealRepo: dealRepo, logger: orNop(logger)}
}

// List returns the doors ordered by position.
func (u *DoorUseCase) List(ctx context.Context, dealID string) ([]entities.Door, error) {
	d, err := requireDeal(ctx, u.dealRepo, dealID)
	if err != nil {
		return nil, err
	}
	doors, err := u.repo.ListByDealID(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(doors, func(a, b entities.Door) int {
		if a.Position != b.Position {
			return a.Position - b.Position
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return doors, nil
}

// Create appends a door; without an explicit position it goes last.
func (u *DoorUseCase) Create(ctx context.Context, dealID string, door entities.Door) (entities.Door, error) {
	if door.Quantity < 0 {
		return entities.Door{}, ErrInvalidQuantity
	}
	doors, err := u.List(ctx, dealID)
	if err != nil {
		return entities.Door{}, err
	}

	if door.Position <= 0 {
		door.Position = 1 + lo.Reduce(doors, func(acc int, d entities.Door, _ int) int {
			return max(acc, d.Position)
		}, 0)
	}

	now := time.Now().UTC()
	door.ID = uuid.NewString()
	door.DealID = strings.TrimSpace(dealID)
	door.CreatedAt = now
	door.UpdatedAt = now
	return u.repo.Create(ctx, door)
}

func (u *DoorUseCase) Update(ctx context.Context, dealID string, door entities.Door) (entities.Door, error) {
	current, err := u.owned(ctx, dealID, door.ID)
	if err != nil {
		return entities.Door{}, err
	}
	if door.Quantity < 0 {
		return entities.Door{}, ErrInvalidQuantity
	}
	if door.Position <= 0 {
		door.Position = current.Position
	}
	door.DealID = current.DealID
	door.CreatedAt = current.CreatedAt
	door.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, door)
	if err != nil {
		return entities.Door{}, err
	}
	if updated.ID == "" {
		return entities.Door{}, ErrDoorNotFound
	}
	return updated, nil
}

func (u *DoorUseCase) Delete(ctx context.Context, dealID, doorID string) error {
	current, err := u.owned(ctx, dealID, doorID)
	if err != nil {
		return err
	}
	deleted, err := u.repo.Delete(ctx, current.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDoorNotFound
	}
	return nil
}

func (u *DoorUseCase) QuoteEmail(ctx context.Context, dealID, to string) (quote.Email, error) {
	d, err := requireDeal(ctx, u.dealRepo, dealID)
	if err != nil {
		return quote.Email{}, err
	}
	doors, err := u.List(ctx, d.ID)
	if err != nil {
		return quote.Email{}, err
	}
	if len(doors) == 0 {
		return quote.Email{}, ErrNoDoorsToQuote
	}

	email, err := quote.Build(d.Reference, to, doors)
	if err != nil {
		u.logger.Error("[door][usecase] quote email render failed", zap.String("deal_id", d.ID), zap.Error(err))
		return quote.Email{}, err
	}
	u.logger.Info("[door][usecase] quote email built", zap.String("deal_id", d.ID), zap.Int("doors", len(doors)))
	return email, nil
}

// owned loads a door and checks it belongs to the deal.
func (u *DoorUseCase) owned(ctx context.Context, dealID, doorID string) (entities.Door, error) {
	doorID = strings.TrimSpace(doorID)
	if doorID == "" {
		return entities.Door{}, ErrInvalidDoorID
	}
	d, err := requireDeal(ctx, u.dealRepo, dealID)
	if err != nil {
		return entities.Door{}, err
	}
	door, err := u.repo.GetByID(ctx, doorID)
	if err != nil {
		return entities.Door{}, err
	}
	if door.ID == "" || door.DealID != d.ID {
		return entities.Door{}, ErrDoorNotFound
	}
	return door, nil
}
