package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"freight_crm/internal/domain/entities"
	"freight_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrDealNotFound             = errors.New("deal not found")
	ErrInvalidDealID            = errors.New("invalid deal id")
	ErrInvalidDealValue         = errors.New("invalid deal value")
	ErrInvalidDealTitle         = errors.New("invalid deal title")
	ErrOrganizationNameRequired = errors.New("organization name is required")
	ErrInvalidTransportType     = errors.New("invalid transport type")
	ErrEmptyDealPatch           = errors.New("nothing to update")
)

// CreateDealInput is a new operation as captured by the pipeline form.
// The organization is matched by name and created when unknown.
type CreateDealInput struct {
	Title            string
	OrganizationName string
	ContactID        string
	StageID          string
	Value            float64
	TransportType    entities.TransportType
}

// DealDetail is a deal with its overlay fields flattened and the modality
// already resolved.
type DealDetail struct {
	Deal         entities.Deal
	CustomFields entities.CustomFieldSet
	Modality     entities.ModalityView
}

// IDealUseCase exposes pipeline operations on deals. Deals have no delete.
type IDealUseCase interface {
	Create(ctx context.Context, in CreateDealInput) (entities.Deal, error)
	List(ctx context.Context, stageID string) ([]entities.Deal, error)
	Get(ctx context.Context, id string) (DealDetail, error)
	Update(ctx context.Context, id string, patch entities.DealPatch) (entities.Deal, error)
	MoveStage(ctx context.Context, id, stageID string) (entities.Deal, error)
	Modality(ctx context.Context, id string) (entities.ModalityView, error)
}

type DealUseCase struct {
	repo         interfaces.IDealRepository
	stageRepo    interfaces.IStageRepository
	orgRepo      interfaces.IOrganizationRepository
	contactRepo  interfaces.IContactRepository
	customFields ICustomFieldUseCase
	logger       *zap.Logger
	now          func() time.Time
}

var _ IDealUseCase = (*DealUseCase)(nil)

func NewDealUseCase(
	repo interfaces.IDealRepository,
	stageRepo interfaces.IStageRepository,
	orgRepo interfaces.IOrganizationRepository,
	contactRepo interfaces.IContactRepository,
	customFields ICustomFieldUseCase,
	logger *zap.Logger,
) *DealUseCase {
	return &DealUseCase{
		repo:         repo,
		stageRepo:    stageRepo,
		orgRepo:      orgRepo,
		contactRepo:  contactRepo,
		customFields: customFields,
		logger:       orNop(logger),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (u *DealUseCase) Create(ctx context.Context, in CreateDealInput) (entities.Deal, error) {
	orgName := strings.TrimSpace(in.OrganizationName)
	if orgName == "" {
		return entities.Deal{}, ErrOrganizationNameRequired
	}
	if !validAmount(in.Value) {
		return entities.Deal{}, ErrInvalidDealValue
	}
	if in.TransportType != "" && !in.TransportType.Valid() {
		return entities.Deal{}, ErrInvalidTransportType
	}

	stageID, err := u.resolveStage(ctx, in.StageID)
	if err != nil {
		return entities.Deal{}, err
	}

	org, err := u.findOrCreateOrganization(ctx, orgName)
	if err != nil {
		return entities.Deal{}, err
	}

	contactID := strings.TrimSpace(in.ContactID)
	if contactID != "" {
		if err := u.ensureContact(ctx, contactID); err != nil {
			return entities.Deal{}, err
		}
	}

	now := u.now()
	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = org.Name
	}
	d := entities.Deal{
		ID:             uuid.NewString(),
		Reference:      NewDealReference(now),
		Title:          title,
		Value:          in.Value,
		TransportType:  in.TransportType,
		StageID:        stageID,
		OrganizationID: org.ID,
		ContactID:      contactID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		u.logger.Error("[deal][usecase] create failed", zap.String("reference", d.Reference), zap.Error(err))
		return entities.Deal{}, err
	}
	u.logger.Info("[deal][usecase] created",
		zap.String("deal_id", created.ID),
		zap.String("reference", created.Reference),
		zap.String("organization_id", org.ID))
	return created, nil
}

// NewDealReference builds the human reference OP-<yyyymmdd>-<6 hex>.
func NewDealReference(at time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return "OP-" + at.Format("20060102") + "-" + suffix
}

func (u *DealUseCase) List(ctx context.Context, stageID string) ([]entities.Deal, error) {
	return u.repo.List(ctx, strings.TrimSpace(stageID))
}

func (u *DealUseCase) Get(ctx context.Context, id string) (DealDetail, error) {
	d, err := u.get(ctx, id)
	if err != nil {
		return DealDetail{}, err
	}

	set := u.customFields.GetAll(ctx, entities.EntityDeal, d.ID)
	resolved := entities.ResolveModality(d.TransportType, set.Text(entities.CFKeyModalidadCarga))
	return DealDetail{
		Deal:         d,
		CustomFields: set,
		Modality:     entities.NewModalityView(resolved),
	}, nil
}

func (u *DealUseCase) Modality(ctx context.Context, id string) (entities.ModalityView, error) {
	detail, err := u.Get(ctx, id)
	if err != nil {
		return entities.ModalityView{}, err
	}
	return detail.Modality, nil
}

func (u *DealUseCase) Update(ctx context.Context, id string, patch entities.DealPatch) (entities.Deal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Deal{}, ErrInvalidDealID
	}
	if patch.IsEmpty() {
		return entities.Deal{}, ErrEmptyDealPatch
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return entities.Deal{}, ErrInvalidDealTitle
	}
	if patch.Value != nil && !validAmount(*patch.Value) {
		return entities.Deal{}, ErrInvalidDealValue
	}
	if patch.TransportType != nil && *patch.TransportType != "" && !patch.TransportType.Valid() {
		return entities.Deal{}, ErrInvalidTransportType
	}
	if patch.StageID != nil {
		if _, err := u.resolveStage(ctx, *patch.StageID); err != nil {
			return entities.Deal{}, err
		}
	}
	if patch.OrganizationID != nil {
		org, err := u.orgRepo.GetByID(ctx, *patch.OrganizationID)
		if err != nil {
			return entities.Deal{}, err
		}
		if org.ID == "" {
			return entities.Deal{}, ErrOrganizationNotFound
		}
	}
	if patch.ContactID != nil && *patch.ContactID != "" {
		if err := u.ensureContact(ctx, *patch.ContactID); err != nil {
			return entities.Deal{}, err
		}
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		u.logger.Error("[deal][usecase] update failed", zap.String("deal_id", id), zap.Error(err))
		return entities.Deal{}, err
	}
	if updated.ID == "" {
		return entities.Deal{}, ErrDealNotFound
	}
	return updated, nil
}

func (u *DealUseCase) MoveStage(ctx context.Context, id, stageID string) (entities.Deal, error) {
	stageID = strings.TrimSpace(stageID)
	if stageID == "" {
		return entities.Deal{}, ErrInvalidStageID
	}
	return u.Update(ctx, id, entities.DealPatch{StageID: &stageID})
}

func (u *DealUseCase) get(ctx context.Context, id string) (entities.Deal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Deal{}, ErrInvalidDealID
	}
	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Deal{}, err
	}
	if d.ID == "" {
		return entities.Deal{}, ErrDealNotFound
	}
	return d, nil
}

// resolveStage validates stageID, or picks the first pipeline stage when empty.
func (u *DealUseCase) resolveStage(ctx context.Context, stageID string) (string, error) {
	stageID = strings.TrimSpace(stageID)
	if stageID != "" {
		s, err := u.stageRepo.GetByID(ctx, stageID)
		if err != nil {
			return "", err
		}
		if s.ID == "" {
			return "", ErrStageNotFound
		}
		return s.ID, nil
	}

	stages, err := u.stageRepo.List(ctx)
	if err != nil {
		return "", err
	}
	if len(stages) == 0 {
		return "", ErrNoStages
	}
	return sortStages(stages)[0].ID, nil
}

func (u *DealUseCase) findOrCreateOrganization(ctx context.Context, name string) (entities.Organization, error) {
	org, err := u.orgRepo.FindByName(ctx, name)
	if err != nil {
		return entities.Organization{}, err
	}
	if org.ID != "" {
		return org, nil
	}

	now := u.now()
	created, err := u.orgRepo.Create(ctx, entities.Organization{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return entities.Organization{}, err
	}
	u.logger.Info("[deal][usecase] organization created from deal form",
		zap.String("organization_id", created.ID), zap.String("name", name))
	return created, nil
}

func (u *DealUseCase) ensureContact(ctx context.Context, id string) error {
	c, err := u.contactRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c.ID == "" {
		return ErrContactNotFound
	}
	return nil
}

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
