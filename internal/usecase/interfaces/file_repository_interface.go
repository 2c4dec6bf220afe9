package interfaces

import (
	"context"
	"freight_crm/internal/domain/entities"
	"io"
)

// IDealFileRepository keeps the metadata of files attached to a deal.

type IDealFileRepository interface {
	Create(ctx context.Context, f entities.DealFile) (entities.DealFile, error)
	GetByID(ctx context.Context, id string) (entities.DealFile, error)
	ListByDealID(ctx context.Context, dealID string) ([]entities.DealFile, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// IBlobStore holds file contents addressed by storage key.
type IBlobStore interface {
	Put(ctx context.Context, key string, r io.Reader) (int64, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}
