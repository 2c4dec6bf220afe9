package interfaces

import (
	"context"
	"freight_crm/internal/domain/entities"
)

type INoteRepository interface {
	Create(ctx context.Context, n entities.Note) (entities.Note, error)
	ListByDealID(ctx context.Context, dealID string) ([]entities.Note, error)
}

// IDoorRepository abstracts persistence for the industrial doors of a deal.
// Delete reports whether an item was removed.

type IDoorRepository interface {
	Create(ctx context.Context, d entities.Door) (entities.Door, error)
	GetByID(ctx context.Context, id string) (entities.Door, error)
	ListByDealID(ctx context.Context, dealID string) ([]entities.Door, error)
	Update(ctx context.Context, d entities.Door) (entities.Door, error)
	Delete(ctx context.Context, id string) (bool, error)
}
