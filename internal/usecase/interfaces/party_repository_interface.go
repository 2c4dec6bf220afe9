package interfaces

import (
	"context"
	"freight_crm/internal/domain/entities"
)

// IOrganizationRepository abstracts DynamoDB persistence for Organization.

type IOrganizationRepository interface {
	Create(ctx context.Context, o entities.Organization) (entities.Organization, error)
	GetByID(ctx context.Context, id string) (entities.Organization, error)
	FindByName(ctx context.Context, name string) (entities.Organization, error)
	Update(ctx context.Context, o entities.Organization) (entities.Organization, error)
	Search(ctx context.Context, query string, limit int) ([]entities.Organization, error)
}

// IContactRepository abstracts DynamoDB persistence for Contact.

type IContactRepository interface {
	Create(ctx context.Context, c entities.Contact) (entities.Contact, error)
	GetByID(ctx context.Context, id string) (entities.Contact, error)
	Update(ctx context.Context, c entities.Contact) (entities.Contact, error)
	Search(ctx context.Context, query string, limit int) ([]entities.Contact, error)
}

// IDirectory is the legacy CRM directory. Implementations normalize whatever
// response shape the upstream returns into typed slices.
type IDirectory interface {
	SearchOrganizations(ctx context.Context, query string) ([]entities.Organization, error)
	SearchContacts(ctx context.Context, query string) ([]entities.Contact, error)
}
