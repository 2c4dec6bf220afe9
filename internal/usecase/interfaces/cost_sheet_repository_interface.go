package interfaces

import (
	"context"
	"freight_crm/internal/domain/entities"
)

// ICostSheetRepository stores one cost sheet document per deal.
// Get returns a zero-value CostSheet (empty DealID) when the deal has none.

type ICostSheetRepository interface {
	Get(ctx context.Context, dealID string) (entities.CostSheet, error)
	Put(ctx context.Context, sheet entities.CostSheet) (entities.CostSheet, error)
}
