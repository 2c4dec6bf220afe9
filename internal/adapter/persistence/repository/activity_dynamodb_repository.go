package repository

import (
	"context"

	"freight_crm/internal/domain/entities"
	"freight_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type noteItem struct {
	ID         string `dynamodbav:"id"`
	DealID     string `dynamodbav:"deal_id"`
	AuthorID   string `dynamodbav:"author_id"`
	AuthorName string `dynamodbav:"author_name"`
	Body       string `dynamodbav:"body"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// NoteDynamoRepository persists deal notes.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: deal_id-index (PK: deal_id)
type NoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INoteRepository = (*NoteDynamoRepository)(nil)

func NewNoteDynamoRepository(ddb *dynamodb.Client, tableName string) *NoteDynamoRepository {
	return &NoteDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *NoteDynamoRepository) Create(ctx context.Context, n entities.Note) (entities.Note, error) {
	it := noteItem{
		ID:         n.ID,
		DealID:     n.DealID,
		AuthorID:   n.AuthorID,
		AuthorName: n.AuthorName,
		Body:       n.Body,
		CreatedAt:  formatTime(n.CreatedAt),
	}
	if _, err := putItem(ctx, r.ddb, r.tableName, "id", it, false); err != nil {
		return entities.Note{}, err
	}
	return n, nil
}

func (r *NoteDynamoRepository) ListByDealID(ctx context.Context, dealID string) ([]entities.Note, error) {
	items, err := queryIndex[noteItem](ctx, r.ddb, r.tableName, dealIDIndex, "deal_id", dealID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Note, 0, len(items))
	for _, it := range items {
		out = append(out, entities.Note{
			ID:         it.ID,
			DealID:     it.DealID,
			AuthorID:   it.AuthorID,
			AuthorName: it.AuthorName,
			Body:       it.Body,
			CreatedAt:  parseTime(it.CreatedAt),
		})
	}
	return out, nil
}

type doorItem struct {
	ID             string   `dynamodbav:"id"`
	DealID         string   `dynamodbav:"deal_id"`
	Position       int      `dynamodbav:"position"`
	Quantity       int      `dynamodbav:"quantity"`
	FrameType      string   `dynamodbav:"frame_type"`
	CanvasType     string   `dynamodbav:"canvas_type"`
	Material       string   `dynamodbav:"material"`
	Finish         string   `dynamodbav:"finish"`
	WidthMM        string   `dynamodbav:"width_mm"`
	HeightMM       string   `dynamodbav:"height_mm"`
	ClearanceLeft  string   `dynamodbav:"clearance_left,omitempty"`
	ClearanceRight string   `dynamodbav:"clearance_right,omitempty"`
	ClearanceTop   string   `dynamodbav:"clearance_top,omitempty"`
	MotorSide      string   `dynamodbav:"motor_side"`
	Actuators      []string `dynamodbav:"actuators,omitempty"`
	Notes          string   `dynamodbav:"notes,omitempty"`
	Images         []string `dynamodbav:"images,omitempty"`
	CreatedAt      string   `dynamodbav:"created_at"`
	UpdatedAt      string   `dynamodbav:"updated_at"`
}

// DoorDynamoRepository persists door configurations (PK: id, GSI: deal_id-index).
type DoorDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDoorRepository = (*DoorDynamoRepository)(nil)

func NewDoorDynamoRepository(ddb *dynamodb.Client, tableName string) *DoorDynamoRepository {
	return &DoorDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *DoorDynamoRepository) Create(ctx context.Context, d entities.Door) (entities.Door, error) {
	if _, err := putItem(ctx, r.ddb, r.tableName, "id", toDoorItem(d), false); err != nil {
		return entities.Door{}, err
	}
	return d, nil
}

func (r *DoorDynamoRepository) GetByID(ctx context.Context, id string) (entities.Door, error) {
	it, found, err := getItem[doorItem](ctx, r.ddb, r.tableName, "id", id)
	if err != nil || !found {
		return entities.Door{}, err
	}
	return fromDoorItem(it), nil
}

func (r *DoorDynamoRepository) ListByDealID(ctx context.Context, dealID string) ([]entities.Door, error) {
	items, err := queryIndex[doorItem](ctx, r.ddb, r.tableName, dealIDIndex, "deal_id", dealID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Door, 0, len(items))
	for _, it := range items {
		out = append(out, fromDoorItem(it))
	}
	return out, nil
}

func (r *DoorDynamoRepository) Update(ctx context.Context, d entities.Door) (entities.Door, error) {
	ok, err := putItem(ctx, r.ddb, r.tableName, "id", toDoorItem(d), true)
	if err != nil || !ok {
		return entities.Door{}, err
	}
	return d, nil
}

func (r *DoorDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteItem(ctx, r.ddb, r.tableName, "id", id)
}

func toDoorItem(d entities.Door) doorItem {
	return doorItem{
		ID:             d.ID,
		DealID:         d.DealID,
		Position:       d.Position,
		Quantity:       d.Quantity,
		FrameType:      d.FrameType,
		CanvasType:     d.CanvasType,
		Material:       d.Material,
		Finish:         d.Finish,
		WidthMM:        d.WidthMM,
		HeightMM:       d.HeightMM,
		ClearanceLeft:  d.ClearanceLeft,
		ClearanceRight: d.ClearanceRight,
		ClearanceTop:   d.ClearanceTop,
		MotorSide:      d.MotorSide,
		Actuators:      d.Actuators,
		Notes:          d.Notes,
		Images:         d.Images,
		CreatedAt:      formatTime(d.CreatedAt),
		UpdatedAt:      formatTime(d.UpdatedAt),
	}
}

func fromDoorItem(it doorItem) entities.Door {
	return entities.Door{
		ID:             it.ID,
		DealID:         it.DealID,
		Position:       it.Position,
		Quantity:       it.Quantity,
		FrameType:      it.FrameType,
		CanvasType:     it.CanvasType,
		Material:       it.Material,
		Finish:         it.Finish,
		WidthMM:        it.WidthMM,
		HeightMM:       it.HeightMM,
		ClearanceLeft:  it.ClearanceLeft,
		ClearanceRight: it.ClearanceRight,
		ClearanceTop:   it.ClearanceTop,
		MotorSide:      it.MotorSide,
		Actuators:      it.Actuators,
		Notes:          it.Notes,
		Images:         it.Images,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
