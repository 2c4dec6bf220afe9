package repository

import (
	"context"

	"freight_crm/internal/domain/entities"
	"freight_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const organizationsNameIndex = "name_lower-index"

type organizationItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	NameLower string `dynamodbav:"name_lower"`
	TaxID     string `dynamodbav:"tax_id,omitempty"`
	Email     string `dynamodbav:"email,omitempty"`
	Phone     string `dynamodbav:"phone,omitempty"`
	Address   string `dynamodbav:"address,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// OrganizationDynamoRepository persists organizations.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: name_lower-index (PK: name_lower)
type OrganizationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	search    func(query string) *dynamodb.ScanInput
}

var _ interfaces.IOrganizationRepository = (*OrganizationDynamoRepository)(nil)

func NewOrganizationDynamoRepository(ddb *dynamodb.Client, tableName string) *OrganizationDynamoRepository {
	return &OrganizationDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		search:    prefixScan(tableName, "name_lower"),
	}
}

func (r *OrganizationDynamoRepository) Create(ctx context.Context, o entities.Organization) (entities.Organization, error) {
	if _, err := putItem(ctx, r.ddb, r.tableName, "id", toOrganizationItem(o), false); err != nil {
		return entities.Organization{}, err
	}
	return o, nil
}

func (r *OrganizationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Organization, error) {
	it, found, err := getItem[organizationItem](ctx, r.ddb, r.tableName, "id", id)
	if err != nil || !found {
		return entities.Organization{}, err
	}
	return fromOrganizationItem(it), nil
}

// FindByName is a case-insensitive exact match.
func (r *OrganizationDynamoRepository) FindByName(ctx context.Context, name string) (entities.Organization, error) {
	items, err := queryIndex[organizationItem](ctx, r.ddb, r.tableName, organizationsNameIndex, "name_lower", lower(name))
	if err != nil || len(items) == 0 {
		return entities.Organization{}, err
	}
	return fromOrganizationItem(items[0]), nil
}

func (r *OrganizationDynamoRepository) Update(ctx context.Context, o entities.Organization) (entities.Organization, error) {
	ok, err := putItem(ctx, r.ddb, r.tableName, "id", toOrganizationItem(o), true)
	if err != nil || !ok {
		return entities.Organization{}, err
	}
	return o, nil
}

func (r *OrganizationDynamoRepository) Search(ctx context.Context, query string, limit int) ([]entities.Organization, error) {
	items, err := scan[organizationItem](ctx, r.ddb, r.search(query), limit)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Organization, 0, len(items))
	for _, it := range items {
		out = append(out, fromOrganizationItem(it))
	}
	return out, nil
}

func toOrganizationItem(o entities.Organization) organizationItem {
	return organizationItem{
		ID:        o.ID,
		Name:      o.Name,
		NameLower: lower(o.Name),
		TaxID:     o.TaxID,
		Email:     o.Email,
		Phone:     o.Phone,
		Address:   o.Address,
		CreatedAt: formatTime(o.CreatedAt),
		UpdatedAt: formatTime(o.UpdatedAt),
	}
}

func fromOrganizationItem(it organizationItem) entities.Organization {
	return entities.Organization{
		ID:        it.ID,
		Name:      it.Name,
		TaxID:     it.TaxID,
		Email:     it.Email,
		Phone:     it.Phone,
		Address:   it.Address,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}

type contactItem struct {
	ID             string `dynamodbav:"id"`
	OrganizationID string `dynamodbav:"organization_id,omitempty"`
	Name           string `dynamodbav:"name"`
	NameLower      string `dynamodbav:"name_lower"`
	Email          string `dynamodbav:"email,omitempty"`
	EmailLower     string `dynamodbav:"email_lower,omitempty"`
	Phone          string `dynamodbav:"phone,omitempty"`
	Position       string `dynamodbav:"position,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// ContactDynamoRepository persists contacts (PK: id). Search matches a name
// or email prefix.
type ContactDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	search    func(query string) *dynamodb.ScanInput
}

var _ interfaces.IContactRepository = (*ContactDynamoRepository)(nil)

func NewContactDynamoRepository(ddb *dynamodb.Client, tableName string) *ContactDynamoRepository {
	return &ContactDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		search:    prefixScan(tableName, "name_lower", "email_lower"),
	}
}

func (r *ContactDynamoRepository) Create(ctx context.Context, c entities.Contact) (entities.Contact, error) {
	if _, err := putItem(ctx, r.ddb, r.tableName, "id", toContactItem(c), false); err != nil {
		return entities.Contact{}, err
	}
	return c, nil
}

func (r *ContactDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contact, error) {
	it, found, err := getItem[contactItem](ctx, r.ddb, r.tableName, "id", id)
	if err != nil || !found {
		return entities.Contact{}, err
	}
	return fromContactItem(it), nil
}

func (r *ContactDynamoRepository) Update(ctx context.Context, c entities.Contact) (entities.Contact, error) {
	ok, err := putItem(ctx, r.ddb, r.tableName, "id", toContactItem(c), true)
	if err != nil || !ok {
		return entities.Contact{}, err
	}
	return c, nil
}

func (r *ContactDynamoRepository) Search(ctx context.Context, query string, limit int) ([]entities.Contact, error) {
	items, err := scan[contactItem](ctx, r.ddb, r.search(query), limit)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Contact, 0, len(items))
	for _, it := range items {
		out = append(out, fromContactItem(it))
	}
	return out, nil
}

func toContactItem(c entities.Contact) contactItem {
	return contactItem{
		ID:             c.ID,
		OrganizationID: c.OrganizationID,
		Name:           c.Name,
		NameLower:      lower(c.Name),
		Email:          c.Email,
		EmailLower:     lower(c.Email),
		Phone:          c.Phone,
		Position:       c.Position,
		CreatedAt:      formatTime(c.CreatedAt),
		UpdatedAt:      formatTime(c.UpdatedAt),
	}
}

func fromContactItem(it contactItem) entities.Contact {
	return entities.Contact{
		ID:             it.ID,
		OrganizationID: it.OrganizationID,
		Name:           it.Name,
		Email:          it.Email,
		Phone:          it.Phone,
		Position:       it.Position,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
