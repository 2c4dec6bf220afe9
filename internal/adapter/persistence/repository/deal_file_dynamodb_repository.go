package repository

import (
	"context"

	"freight_crm/internal/domain/entities"
	"freight_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type dealFileItem struct {
	ID          string `dynamodbav:"id"`
	DealID      string `dynamodbav:"deal_id"`
	Name        string `dynamodbav:"name"`
	ContentType string `dynamodbav:"content_type"`
	Size        int64  `dynamodbav:"size"`
	StorageKey  string `dynamodbav:"storage_key"`
	UploadedBy  string `dynamodbav:"uploaded_by,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// DealFileDynamoRepository persists file metadata; the bytes live in the blob
// store under StorageKey. Labels are kept in the deal overlay, not here.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: deal_id-index (PK: deal_id)
type DealFileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDealFileRepository = (*DealFileDynamoRepository)(nil)

func NewDealFileDynamoRepository(ddb *dynamodb.Client, tableName string) *DealFileDynamoRepository {
	return &DealFileDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *DealFileDynamoRepository) Create(ctx context.Context, f entities.DealFile) (entities.DealFile, error) {
	it := dealFileItem{
		ID:          f.ID,
		DealID:      f.DealID,
		Name:        f.Name,
		ContentType: f.ContentType,
		Size:        f.Size,
		StorageKey:  f.StorageKey,
		UploadedBy:  f.UploadedBy,
		CreatedAt:   formatTime(f.CreatedAt),
	}
	if _, err := putItem(ctx, r.ddb, r.tableName, "id", it, false); err != nil {
		return entities.DealFile{}, err
	}
	return f, nil
}

func (r *DealFileDynamoRepository) GetByID(ctx context.Context, id string) (entities.DealFile, error) {
	it, found, err := getItem[dealFileItem](ctx, r.ddb, r.tableName, "id", id)
	if err != nil || !found {
		return entities.DealFile{}, err
	}
	return fromDealFileItem(it), nil
}

func (r *DealFileDynamoRepository) ListByDealID(ctx context.Context, dealID string) ([]entities.DealFile, error) {
	items, err := queryIndex[dealFileItem](ctx, r.ddb, r.tableName, dealIDIndex, "deal_id", dealID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.DealFile, 0, len(items))
	for _, it := range items {
		out = append(out, fromDealFileItem(it))
	}
	return out, nil
}

func (r *DealFileDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteItem(ctx, r.ddb, r.tableName, "id", id)
}

func fromDealFileItem(it dealFileItem) entities.DealFile {
	return entities.DealFile{
		ID:          it.ID,
		DealID:      it.DealID,
		Name:        it.Name,
		ContentType: it.ContentType,
		Size:        it.Size,
		StorageKey:  it.StorageKey,
		UploadedBy:  it.UploadedBy,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
