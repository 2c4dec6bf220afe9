package repository

import (
	"context"

	"freight_crm/internal/domain/entities"
	"freight_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type dealPaymentItem struct {
	ID           string         `dynamodbav:"id"`
	DealID       string         `dynamodbav:"deal_id"`
	Amount       float64        `dynamodbav:"amount"`
	Currency     string         `dynamodbav:"currency"`
	Date         string         `dynamodbav:"date"`
	Status       string         `dynamodbav:"status"`
	MPPayload    map[string]any `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string         `dynamodbav:"mp_payload_raw,omitempty"`
}

// DealPaymentDynamoRepository persists collected payments.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: deal_id-index (PK: deal_id)
type DealPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDealPaymentRepository = (*DealPaymentDynamoRepository)(nil)

func NewDealPaymentDynamoRepository(ddb *dynamodb.Client, tableName string) *DealPaymentDynamoRepository {
	return &DealPaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *DealPaymentDynamoRepository) Create(ctx context.Context, p entities.DealPayment) (entities.DealPayment, error) {
	if _, err := putItem(ctx, r.ddb, r.tableName, "id", toDealPaymentItem(p), false); err != nil {
		return entities.DealPayment{}, err
	}
	return p, nil
}

func (r *DealPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.DealPayment, error) {
	it, found, err := getItem[dealPaymentItem](ctx, r.ddb, r.tableName, "id", id)
	if err != nil || !found {
		return entities.DealPayment{}, err
	}
	return fromDealPaymentItem(it), nil
}

func (r *DealPaymentDynamoRepository) ListByDealID(ctx context.Context, dealID string) ([]entities.DealPayment, error) {
	items, err := queryIndex[dealPaymentItem](ctx, r.ddb, r.tableName, dealIDIndex, "deal_id", dealID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.DealPayment, 0, len(items))
	for _, it := range items {
		out = append(out, fromDealPaymentItem(it))
	}
	return out, nil
}

func toDealPaymentItem(p entities.DealPayment) dealPaymentItem {
	return dealPaymentItem{
		ID:           p.ID,
		DealID:       p.DealID,
		Amount:       p.Amount,
		Currency:     p.Currency,
		Date:         formatTime(p.Date),
		Status:       string(p.Status),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func fromDealPaymentItem(it dealPaymentItem) entities.DealPayment {
	return entities.DealPayment{
		ID:           it.ID,
		DealID:       it.DealID,
		Amount:       it.Amount,
		Currency:     it.Currency,
		Date:         parseTime(it.Date),
		Status:       entities.PaymentStatus(it.Status),
		MPPayload:    it.MPPayload,
		MPPayloadRaw: []byte(it.MPPayloadRaw),
	}
}
