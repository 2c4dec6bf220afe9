package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"freight_crm/internal/domain/entities"
	"freight_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

var (
	ErrOrganizationNotFound  = errors.New("organization not found")
	ErrInvalidOrganizationID = errors.New("invalid organization id")
	ErrOrganizationNameTaken = errors.New("organization name already exists")
	ErrContactNotFound       = errors.New("contact not found")
	ErrInvalidContactID      = errors.New("invalid contact id")
	ErrContactNameRequired   = errors.New("contact name is required")
	ErrSearchQueryTooShort   = errors.New("search query too short")
)

const (
	defaultPartySearchLimit   = 10
	minPartySearchQueryLength = 2
)

// IOrganizationUseCase manages client and supplier organizations.
// Search merges the legacy directory when one is configured.
type IOrganizationUseCase interface {
	Create(ctx context.Context, o entities.Organization) (entities.Organization, error)
	Get(ctx context.Context, id string) (entities.Organization, error)
	Update(ctx context.Context, o entities.Organization) (entities.Organization, error)
	Search(ctx context.Context, query string) ([]entities.Organization, error)
}

type IContactUseCase interface {
	Create(ctx context.Context, c entities.Contact) (entities.Contact, error)
	Get(ctx context.Context, id string) (entities.Contact, error)
	Update(ctx context.Context, c entities.Contact) (entities.Contact, error)
	Search(ctx context.Context, query string) ([]entities.Contact, error)
}

type OrganizationUseCase struct {
	repo      interfaces.IOrganizationRepository
	directory interfaces.IDirectory
	limit     int
	logger    *zap.Logger
}

var _ IOrganizationUseCase = (*OrganizationUseCase)(nil)

// NewOrganizationUseCase accepts a nil directory.
func NewOrganizationUseCase(repo interfaces.IOrganizationRepository, directory interfaces.IDirectory, limit int, logger *zap.Logger) *OrganizationUseCase {
	if limit <= 0 {
		limit = defaultPartySearchLimit
	}
	return &OrganizationUseCase{repo: repo, directory: directory, limit: limit, logger: orNop(logger)}
}

func (u *OrganizationUseCase) Create(ctx context.Context, o entities.Organization) (entities.Organization, error) {
	o.Name = strings.TrimSpace(o.Name)
	if o.Name == "" {
		return entities.Organization{}, ErrOrganizationNameRequired
	}

	existing, err := u.repo.FindByName(ctx, o.Name)
	if err != nil {
		return entities.Organization{}, err
	}
	if existing.ID != "" {
		return entities.Organization{}, ErrOrganizationNameTaken
	}

	now := time.Now().UTC()
	o.ID = uuid.NewString()
	o.CreatedAt = now
	o.UpdatedAt = now
	return u.repo.Create(ctx, o)
}

func (u *OrganizationUseCase) Get(ctx context.Context, id string) (entities.Organization, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Organization{}, ErrInvalidOrganizationID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Organization{}, err
	}
	if o.ID == "" {
		return entities.Organization{}, ErrOrganizationNotFound
	}
	return o, nil
}

func (u *OrganizationUseCase) Update(ctx context.Context, o entities.Organization) (entities.Organization, error) {
	current, err := u.Get(ctx, o.ID)
	if err != nil {
		return entities.Organization{}, err
	}
	o.Name = strings.TrimSpace(o.Name)
	if o.Name == "" {
		return entities.Organization{}, ErrOrganizationNameRequired
	}
	o.CreatedAt = current.CreatedAt
	o.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, o)
	if err != nil {
		return entities.Organization{}, err
	}
	if updated.ID == "" {
		return entities.Organization{}, ErrOrganizationNotFound
	}
	return updated, nil
}

// Search matches by name prefix. Directory failures are logged and the local
// matches returned alone.
func (u *OrganizationUseCase) Search(ctx context.Context, query string) ([]entities.Organization, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < minPartySearchQueryLength {
		return nil, ErrSearchQueryTooShort
	}

	local, err := u.repo.Search(ctx, query, u.limit)
	if err != nil {
		return nil, err
	}
	if u.directory == nil {
		return local, nil
	}

	remote, err := u.directory.SearchOrganizations(ctx, query)
	if err != nil {
		u.logger.Warn("[org][usecase] directory lookup failed", zap.String("query", query), zap.Error(err))
		return local, nil
	}

	merged := lo.UniqBy(append(local, remote...), func(o entities.Organization) string {
		return strings.ToLower(strings.TrimSpace(o.Name))
	})
	if len(merged) > u.limit {
		merged = merged[:u.limit]
	}
	return merged, nil
}

type ContactUseCase struct {
	repo      interfaces.IContactRepository
	orgRepo   interfaces.IOrganizationRepository
	directory interfaces.IDirectory
	limit     int
	logger    *zap.Logger
}

var _ IContactUseCase = (*ContactUseCase)(nil)

func NewContactUseCase(repo interfaces.IContactRepository, orgRepo interfaces.IOrganizationRepository, directory interfaces.IDirectory, limit int, logger *zap.Logger) *ContactUseCase {
	if limit <= 0 {
		limit = defaultPartySearchLimit
	}
	return &ContactUseCase{repo: repo, orgRepo: orgRepo, directory: directory, limit: limit, logger: orNop(logger)}
}

func (u *ContactUseCase) Create(ctx context.Context, c entities.Contact) (entities.Contact, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Contact{}, ErrContactNameRequired
	}
	if err := u.ensureOrganization(ctx, c.OrganizationID); err != nil {
		return entities.Contact{}, err
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	return u.repo.Create(ctx, c)
}

func (u *ContactUseCase) Get(ctx context.Context, id string) (entities.Contact, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contact{}, ErrInvalidContactID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Contact{}, err
	}
	if c.ID == "" {
		return entities.Contact{}, ErrContactNotFound
	}
	return c, nil
}

func (u *ContactUseCase) Update(ctx context.Context, c entities.Contact) (entities.Contact, error) {
	current, err := u.Get(ctx, c.ID)
	if err != nil {
		return entities.Contact{}, err
	}
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Contact{}, ErrContactNameRequired
	}
	if err := u.ensureOrganization(ctx, c.OrganizationID); err != nil {
		return entities.Contact{}, err
	}
	c.CreatedAt = current.CreatedAt
	c.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Contact{}, err
	}
	if updated.ID == "" {
		return entities.Contact{}, ErrContactNotFound
	}
	return updated, nil
}

func (u *ContactUseCase) Search(ctx context.Context, query string) ([]entities.Contact, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < minPartySearchQueryLength {
		return nil, ErrSearchQueryTooShort
	}

	local, err := u.repo.Search(ctx, query, u.limit)
	if err != nil {
		return nil, err
	}
	if u.directory == nil {
		return local, nil
	}

	remote, err := u.directory.SearchContacts(ctx, query)
	if err != nil {
		u.logger.Warn("[contact][usecase] directory lookup failed", zap.String("query", query), zap.Error(err))
		return local, nil
	}

	merged := lo.UniqBy(append(local, remote...), func(c entities.Contact) string {
		return strings.ToLower(strings.TrimSpace(c.Name)) + "|" + strings.ToLower(strings.TrimSpace(c.Email))
	})
	if len(merged) > u.limit {
		merged = merged[:u.limit]
	}
	return merged, nil
}

func (u *ContactUseCase) ensureOrganization(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	o, err := u.orgRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if o.ID == "" {
		return ErrOrganizationNotFound
	}
	return nil
}
