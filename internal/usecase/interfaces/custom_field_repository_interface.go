package interfaces

import (
	"context"
	"freight_crm/internal/domain/entities"
)

// ICustomFieldRepository abstracts the custom-field overlay backend.
//
// UpdateByID returns a zero-value CustomField when the id no longer exists, so
// callers can fall back to relocating the key.

type ICustomFieldRepository interface {
	ListByEntity(ctx context.Context, entityType entities.EntityType, entityID string) ([]entities.CustomField, error)
	Create(ctx context.Context, f entities.CustomField) (entities.CustomField, error)
	UpdateByID(ctx context.Context, id string, f entities.CustomField) (entities.CustomField, error)
}
