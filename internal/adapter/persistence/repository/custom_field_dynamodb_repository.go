package repository

import (
	"context"

	"freight_crm/internal/domain/entities"
	"freight_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
)

const customFieldsEntityIndex = "entity_key-index"

type customFieldItem struct {
	ID         string `dynamodbav:"id"`
	EntityKey  string `dynamodbav:"entity_key"`
	EntityType string `dynamodbav:"entity_type"`
	EntityID   string `dynamodbav:"entity_id"`
	Key        string `dynamodbav:"key"`
	Label      string `dynamodbav:"label"`
	Type       string `dynamodbav:"type"`
	Value      string `dynamodbav:"value"`
	ValueKind  string `dynamodbav:"value_kind"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// CustomFieldDynamoRepository stores overlay entries. Nothing stops two rows
// sharing a key; readers resolve that through entities.NewCustomFieldSet.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: entity_key-index (PK: entity_key = "<entity_type>#<entity_id>")
type CustomFieldDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomFieldRepository = (*CustomFieldDynamoRepository)(nil)

func NewCustomFieldDynamoRepository(ddb *dynamodb.Client, tableName string) *CustomFieldDynamoRepository {
	return &CustomFieldDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CustomFieldDynamoRepository) ListByEntity(ctx context.Context, entityType entities.EntityType, entityID string) ([]entities.CustomField, error) {
	items, err := queryIndex[customFieldItem](ctx, r.ddb, r.tableName, customFieldsEntityIndex, "entity_key", entityKey(entityType, entityID))
	if err != nil {
		return nil, err
	}
	out := make([]entities.CustomField, 0, len(items))
	for _, it := range items {
		out = append(out, fromCustomFieldItem(it))
	}
	return out, nil
}

func (r *CustomFieldDynamoRepository) Create(ctx context.Context, f entities.CustomField) (entities.CustomField, error) {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if _, err := putItem(ctx, r.ddb, r.tableName, "id", toCustomFieldItem(f), false); err != nil {
		return entities.CustomField{}, err
	}
	return f, nil
}

// UpdateByID replaces the entry stored under id. A missing id yields a zero
// CustomField so callers can fall back to relocating the key.
func (r *CustomFieldDynamoRepository) UpdateByID(ctx context.Context, id string, f entities.CustomField) (entities.CustomField, error) {
	f.ID = id
	ok, err := putItem(ctx, r.ddb, r.tableName, "id", toCustomFieldItem(f), true)
	if err != nil || !ok {
		return entities.CustomField{}, err
	}
	return f, nil
}

func entityKey(t entities.EntityType, id string) string {
	return string(t) + "#" + id
}

func toCustomFieldItem(f entities.CustomField) customFieldItem {
	return customFieldItem{
		ID:         f.ID,
		EntityKey:  entityKey(f.EntityType, f.EntityID),
		EntityType: string(f.EntityType),
		EntityID:   f.EntityID,
		Key:        f.Key,
		Label:      f.Label,
		Type:       string(f.Type),
		Value:      f.Value.Text(),
		ValueKind:  string(f.Value.Kind()),
		UpdatedAt:  formatTime(f.UpdatedAt),
	}
}

func fromCustomFieldItem(it customFieldItem) entities.CustomField {
	return entities.CustomField{
		ID:         it.ID,
		EntityType: entities.EntityType(it.EntityType),
		EntityID:   it.EntityID,
		Key:        it.Key,
		Label:      it.Label,
		Type:       entities.CustomFieldType(it.Type),
		Value:      entities.StoredValue(entities.ValueKind(it.ValueKind), it.Value),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
