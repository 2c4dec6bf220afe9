package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"freight_crm/internal/domain/entities"
	"freight_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const dealsStageIDIndex = "stage_id-index"

type dealItem struct {
	ID             string  `dynamodbav:"id"`
	Reference      string  `dynamodbav:"reference"`
	ReferenceLower string  `dynamodbav:"reference_lower"`
	Title          string  `dynamodbav:"title"`
	TitleLower     string  `dynamodbav:"title_lower"`
	Value          float64 `dynamodbav:"value"`
	TransportType  string  `dynamodbav:"transport_type,omitempty"`
	StageID        string  `dynamodbav:"stage_id"`
	OrganizationID string  `dynamodbav:"organization_id"`
	ContactID      string  `dynamodbav:"contact_id,omitempty"`
	CreatedAt      string  `dynamodbav:"created_at"`
	UpdatedAt      string  `dynamodbav:"updated_at"`
}

// DealDynamoRepository persists deals.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: stage_id-index (PK: stage_id)
type DealDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDealRepository = (*DealDynamoRepository)(nil)

func NewDealDynamoRepository(ddb *dynamodb.Client, tableName string) *DealDynamoRepository {
	return &DealDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *DealDynamoRepository) Create(ctx context.Context, d entities.Deal) (entities.Deal, error) {
	if _, err := putItem(ctx, r.ddb, r.tableName, "id", toDealItem(d), false); err != nil {
		return entities.Deal{}, err
	}
	return d, nil
}

func (r *DealDynamoRepository) GetByID(ctx context.Context, id string) (entities.Deal, error) {
	it, found, err := getItem[dealItem](ctx, r.ddb, r.tableName, "id", id)
	if err != nil || !found {
		return entities.Deal{}, err
	}
	return fromDealItem(it), nil
}

// List returns the deals of a stage, or every deal when stageID is empty,
// most recently updated first.
func (r *DealDynamoRepository) List(ctx context.Context, stageID string) ([]entities.Deal, error) {
	var (
		items []dealItem
		err   error
	)
	if stageID != "" {
		items, err = queryIndex[dealItem](ctx, r.ddb, r.tableName, dealsStageIDIndex, "stage_id", stageID)
	} else {
		items, err = scan[dealItem](ctx, r.ddb, scanAll(r.tableName), 0)
	}
	if err != nil {
		return nil, err
	}

	deals := make([]entities.Deal, 0, len(items))
	for _, it := range items {
		deals = append(deals, fromDealItem(it))
	}
	sort.SliceStable(deals, func(i, j int) bool { return deals[i].UpdatedAt.After(deals[j].UpdatedAt) })
	return deals, nil
}

// Search matches a title substring or a reference prefix, case-insensitively.
func (r *DealDynamoRepository) Search(ctx context.Context, query string, limit int) ([]entities.Deal, error) {
	items, err := scan[dealItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("contains(#title, :q) OR begins_with(#ref, :q)"),
		ExpressionAttributeNames: map[string]string{
			"#title": "title_lower",
			"#ref":   "reference_lower",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":q": &types.AttributeValueMemberS{Value: lower(query)},
		},
	}, limit)
	if err != nil {
		return nil, err
	}

	deals := make([]entities.Deal, 0, len(items))
	for _, it := range items {
		deals = append(deals, fromDealItem(it))
	}
	return deals, nil
}

// Update applies the non-nil patch fields. A missing deal yields a zero Deal.
func (r *DealDynamoRepository) Update(ctx context.Context, id string, patch entities.DealPatch) (entities.Deal, error) {
	expr, values, names := dealUpdateExpression(patch, time.Now().UTC())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       stringKey("id", id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if isConditionFailed(err) {
		return entities.Deal{}, nil
	}
	if err != nil {
		return entities.Deal{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Deal{}, nil
	}

	var it dealItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Deal{}, err
	}
	return fromDealItem(it), nil
}

func dealUpdateExpression(p entities.DealPatch, now time.Time) (string, map[string]types.AttributeValue, map[string]string) {
	sets := []string{"#updated_at = :updated_at"}
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: formatTime(now)},
	}
	names := map[string]string{"#updated_at": "updated_at"}

	set := func(attr string, v types.AttributeValue) {
		sets = append(sets, "#"+attr+" = :"+attr)
		names["#"+attr] = attr
		values[":"+attr] = v
	}
	str := func(s string) types.AttributeValue { return &types.AttributeValueMemberS{Value: s} }

	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		set("title", str(title))
		set("title_lower", str(lower(title)))
	}
	if p.Value != nil {
		set("value", &types.AttributeValueMemberN{Value: floatToString(*p.Value)})
	}
	if p.TransportType != nil {
		set("transport_type", str(string(*p.TransportType)))
	}
	if p.StageID != nil {
		set("stage_id", str(*p.StageID))
	}
	if p.OrganizationID != nil {
		set("organization_id", str(*p.OrganizationID))
	}
	if p.ContactID != nil {
		set("contact_id", str(*p.ContactID))
	}
	return "SET " + strings.Join(sets, ", "), values, names
}

func toDealItem(d entities.Deal) dealItem {
	return dealItem{
		ID:             d.ID,
		Reference:      d.Reference,
		ReferenceLower: lower(d.Reference),
		Title:          d.Title,
		TitleLower:     lower(d.Title),
		Value:          d.Value,
		TransportType:  string(d.TransportType),
		StageID:        d.StageID,
		OrganizationID: d.OrganizationID,
		ContactID:      d.ContactID,
		CreatedAt:      formatTime(d.CreatedAt),
		UpdatedAt:      formatTime(d.UpdatedAt),
	}
}

func fromDealItem(it dealItem) entities.Deal {
	return entities.Deal{
		ID:             it.ID,
		Reference:      it.Reference,
		Title:          it.Title,
		Value:          it.Value,
		TransportType:  entities.TransportType(it.TransportType),
		StageID:        it.StageID,
		OrganizationID: it.OrganizationID,
		ContactID:      it.ContactID,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}

type stageItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Position  int    `dynamodbav:"position"`
	CreatedAt string `dynamodbav:"created_at"`
}

// StageDynamoRepository persists pipeline stages (PK: id).
type StageDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStageRepository = (*StageDynamoRepository)(nil)

func NewStageDynamoRepository(ddb *dynamodb.Client, tableName string) *StageDynamoRepository {
	return &StageDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *StageDynamoRepository) Create(ctx context.Context, s entities.Stage) (entities.Stage, error) {
	it := stageItem{ID: s.ID, Name: s.Name, Position: s.Position, CreatedAt: formatTime(s.CreatedAt)}
	if _, err := putItem(ctx, r.ddb, r.tableName, "id", it, false); err != nil {
		return entities.Stage{}, err
	}
	return s, nil
}

func (r *StageDynamoRepository) GetByID(ctx context.Context, id string) (entities.Stage, error) {
	it, found, err := getItem[stageItem](ctx, r.ddb, r.tableName, "id", id)
	if err != nil || !found {
		return entities.Stage{}, err
	}
	return fromStageItem(it), nil
}

func (r *StageDynamoRepository) List(ctx context.Context) ([]entities.Stage, error) {
	items, err := scan[stageItem](ctx, r.ddb, scanAll(r.tableName), 0)
	if err != nil {
		return nil, err
	}
	stages := make([]entities.Stage, 0, len(items))
	for _, it := range items {
		stages = append(stages, fromStageItem(it))
	}
	return stages, nil
}

func fromStageItem(it stageItem) entities.Stage {
	return entities.Stage{ID: it.ID, Name: it.Name, Position: it.Position, CreatedAt: parseTime(it.CreatedAt)}
}
