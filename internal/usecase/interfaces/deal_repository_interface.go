package interfaces

import (
	"context"
	"freight_crm/internal/domain/entities"
)

// IDealRepository abstracts DynamoDB persistence for Deal.
//
// Lookups return a zero-value Deal (empty ID) when nothing matches.

type IDealRepository interface {
	Create(ctx context.Context, d entities.Deal) (entities.Deal, error)
	GetByID(ctx context.Context, id string) (entities.Deal, error)
	List(ctx context.Context, stageID string) ([]entities.Deal, error)
	Update(ctx context.Context, id string, patch entities.DealPatch) (entities.Deal, error)
	Search(ctx context.Context, query string, limit int) ([]entities.Deal, error)
}

type IStageRepository interface {
	Create(ctx context.Context, s entities.Stage) (entities.Stage, error)
	GetByID(ctx context.Context, id string) (entities.Stage, error)
	List(ctx context.Context) ([]entities.Stage, error)
}
