package usecase

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"freight_crm/internal/domain/entities"
	"freight_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrStageNotFound    = errors.New("stage not found")
	ErrInvalidStageID   = errors.New("invalid stage id")
	ErrInvalidStageName = errors.New("invalid stage name")
	ErrNoStages         = errors.New("pipeline has no stages")
)

type IStageUseCase interface {
	List(ctx context.Context) ([]entities.Stage, error)
	Create(ctx context.Context, name string, position int) (entities.Stage, error)
}

type StageUseCase struct {
	repo interfaces.IStageRepository
}

var _ IStageUseCase = (*StageUseCase)(nil)

func NewStageUseCase(repo interfaces.IStageRepository) *StageUseCase {
	return &StageUseCase{repo: repo}
}

// List returns the pipeline columns ordered by position.
func (u *StageUseCase) List(ctx context.Context) ([]entities.Stage, error) {
	stages, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return sortStages(stages), nil
}

func (u *StageUseCase) Create(ctx context.Context, name string, position int) (entities.Stage, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Stage{}, ErrInvalidStageName
	}
	return u.repo.Create(ctx, entities.Stage{
		ID:        uuid.NewString(),
		Name:      name,
		Position:  position,
		CreatedAt: time.Now().UTC(),
	})
}

func sortStages(stages []entities.Stage) []entities.Stage {
	slices.SortStableFunc(stages, func(a, b entities.Stage) int {
		if a.Position != b.Position {
			return a.Position - b.Position
		}
		return strings.Compare(a.Name, b.Name)
	})
	return stages
}
