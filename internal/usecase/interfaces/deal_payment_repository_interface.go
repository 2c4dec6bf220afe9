package interfaces

import (
	"context"
	"freight_crm/internal/domain/entities"
)

// IDealPaymentRepository abstracts DynamoDB persistence for DealPayment.

type IDealPaymentRepository interface {
	Create(ctx context.Context, p entities.DealPayment) (entities.DealPayment, error)
	GetByID(ctx context.Context, id string) (entities.DealPayment, error)
	ListByDealID(ctx context.Context, dealID string) ([]entities.DealPayment, error)
}
