package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"freight_crm/internal/domain/entities"
	"freight_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// costSheetItem keeps the sheet as its editor JSON so mixed number/text
// cells survive unchanged.
type costSheetItem struct {
	DealID    string `dynamodbav:"deal_id"`
	Document  string `dynamodbav:"document"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CostSheetDynamoRepository persists one cost sheet per deal (PK: deal_id).
type CostSheetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICostSheetRepository = (*CostSheetDynamoRepository)(nil)

func NewCostSheetDynamoRepository(ddb *dynamodb.Client, tableName string) *CostSheetDynamoRepository {
	return &CostSheetDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CostSheetDynamoRepository) Get(ctx context.Context, dealID string) (entities.CostSheet, error) {
	it, found, err := getItem[costSheetItem](ctx, r.ddb, r.tableName, "deal_id", dealID)
	if err != nil || !found {
		return entities.CostSheet{}, err
	}
	return fromCostSheetItem(it)
}

// Put creates or replaces the deal's sheet.
func (r *CostSheetDynamoRepository) Put(ctx context.Context, sheet entities.CostSheet) (entities.CostSheet, error) {
	it, err := toCostSheetItem(sheet)
	if err != nil {
		return entities.CostSheet{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.CostSheet{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.CostSheet{}, err
	}
	return sheet, nil
}

func toCostSheetItem(s entities.CostSheet) (costSheetItem, error) {
	doc, err := json.Marshal(s)
	if err != nil {
		return costSheetItem{}, fmt.Errorf("encode cost sheet: %w", err)
	}
	return costSheetItem{DealID: s.DealID, Document: string(doc), UpdatedAt: formatTime(s.UpdatedAt)}, nil
}

func fromCostSheetItem(it costSheetItem) (entities.CostSheet, error) {
	var s entities.CostSheet
	if err := json.Unmarshal([]byte(it.Document), &s); err != nil {
		return entities.CostSheet{}, fmt.Errorf("decode cost sheet %s: %w", it.DealID, err)
	}
	s.DealID = it.DealID
	s.UpdatedAt = parseTime(it.UpdatedAt)
	return s, nil
}
