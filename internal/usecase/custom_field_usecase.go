package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"freight_crm/internal/config"
	"freight_crm/internal/domain/entities"
	"freight_crm/internal/infrastructure/metrics"
	"freight_crm/internal/usecase/interfaces"

	"github.com/patrickmn/go-cache"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidEntityType  = errors.New("invalid entity type")
	ErrInvalidEntityID    = errors.New("invalid entity id")
	ErrInvalidFieldKey    = errors.New("invalid custom field key")
	ErrCustomFieldsFailed = errors.New("custom field upsert failed")
)

// ICustomFieldUseCase is the overlay store: schema-less named attributes on
// deals, contacts and organizations, written through one idempotent
// "set value for key" operation.
type ICustomFieldUseCase interface {
	GetAll(ctx context.Context, entityType entities.EntityType, entityID string) entities.CustomFieldSet
	Upsert(ctx context.Context, entityType entities.EntityType, entityID string, in entities.CustomFieldInput) (entities.CustomField, error)
	UpsertMany(ctx context.Context, entityType entities.EntityType, entityID string, inputs []entities.CustomFieldInput) (entities.CustomFieldSet, error)
}

type CustomFieldUseCase struct {
	repo        interfaces.ICustomFieldRepository
	ids         *cache.Cache
	parallelism int
	logger      *zap.Logger
	metrics     *metrics.Metrics
}

var _ ICustomFieldUseCase = (*CustomFieldUseCase)(nil)

func NewCustomFieldUseCase(repo interfaces.ICustomFieldRepository, cfg config.CustomFields, logger *zap.Logger, m *metrics.Metrics) *CustomFieldUseCase {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	parallelism := cfg.Parallelism
	if parallelism <= 0 {
		parallelism = 1
	}
	return &CustomFieldUseCase{
		repo:        repo,
		ids:         cache.New(ttl, 2*ttl),
		parallelism: parallelism,
		logger:      orNop(logger),
		metrics:     m,
	}
}

// BatchError reports the keys that failed in UpsertMany. Keys not listed
// were written.
type BatchError struct {
	Failed map[string]error
}

func (e *BatchError) Error() string {
	keys := lo.Keys(e.Failed)
	slices.Sort(keys)
	parts := lo.Map(keys, func(k string, _ int) string {
		return fmt.Sprintf("%s: %v", k, e.Failed[k])
	})
	return fmt.Sprintf("%d custom field(s) failed: %s", len(keys), strings.Join(parts, "; "))
}

func (e *BatchError) Unwrap() []error {
	return append([]error{ErrCustomFieldsFailed}, lo.Values(e.Failed)...)
}

func (u *CustomFieldUseCase) GetAll(ctx context.Context, entityType entities.EntityType, entityID string) entities.CustomFieldSet {
	entityID = strings.TrimSpace(entityID)
	if _, ok := entities.ParseEntityType(string(entityType)); !ok || entityID == "" {
		return entities.UnsupportedCustomFieldSet()
	}

	fields, err := u.repo.ListByEntity(ctx, entityType, entityID)
	if err != nil {
		u.logger.Warn("[cf][usecase] list failed; overlay marked unsupported",
			zap.String("entity_type", string(entityType)),
			zap.String("entity_id", entityID),
			zap.Error(err))
		return entities.UnsupportedCustomFieldSet()
	}

	set := entities.NewCustomFieldSet(fields)
	for key, f := range set.Fields {
		u.remember(entityType, entityID, key, f.ID)
	}
	return set
}

// Upsert writes in.Value under in.Key. A cached id is tried first; when it is
// stale the entity's fields are re-fetched and the key relocated; when the key
// does not exist yet it is created.
func (u *CustomFieldUseCase) Upsert(ctx context.Context, entityType entities.EntityType, entityID string, in entities.CustomFieldInput) (entities.CustomField, error) {
	entityID = strings.TrimSpace(entityID)
	in.Key = strings.TrimSpace(in.Key)
	if _, ok := entities.ParseEntityType(string(entityType)); !ok {
		return entities.CustomField{}, ErrInvalidEntityType
	}
	if entityID == "" {
		return entities.CustomField{}, ErrInvalidEntityID
	}
	if in.Key == "" {
		return entities.CustomField{}, ErrInvalidFieldKey
	}

	field := entities.CustomField{
		EntityType: entityType,
		EntityID:   entityID,
		Key:        in.Key,
		Label:      lo.Ternary(strings.TrimSpace(in.Label) == "", in.Key, in.Label),
		Type:       in.Type.StorageType(),
		Value:      in.Value,
		UpdatedAt:  time.Now().UTC(),
	}
	log := u.logger.With(
		zap.String("entity_type", string(entityType)),
		zap.String("entity_id", entityID),
		zap.String("key", in.Key))

	if id, ok := u.cachedID(entityType, entityID, in.Key); ok {
		updated, err := u.repo.UpdateByID(ctx, id, field)
		if err == nil && updated.ID != "" {
			u.remember(entityType, entityID, in.Key, updated.ID)
			u.metrics.CustomFieldUpsert(metrics.UpsertCached)
			return updated, nil
		}
		log.Debug("[cf][usecase] cached id stale; relocating", zap.String("id", id), zap.Error(err))
		u.forget(entityType, entityID, in.Key)
	}

	existing, err := u.repo.ListByEntity(ctx, entityType, entityID)
	if err != nil {
		log.Warn("[cf][usecase] re-fetch failed", zap.Error(err))
		u.metrics.CustomFieldUpsert(metrics.UpsertFailed)
		return entities.CustomField{}, fmt.Errorf("list custom fields: %w", err)
	}

	if current, ok := entities.NewCustomFieldSet(existing).Fields[in.Key]; ok {
		updated, err := u.repo.UpdateByID(ctx, current.ID, field)
		if err != nil {
			log.Warn("[cf][usecase] update after relocate failed", zap.String("id", current.ID), zap.Error(err))
			u.metrics.CustomFieldUpsert(metrics.UpsertFailed)
			return entities.CustomField{}, fmt.Errorf("update custom field %s: %w", current.ID, err)
		}
		if updated.ID != "" {
			u.remember(entityType, entityID, in.Key, updated.ID)
			u.metrics.CustomFieldUpsert(metrics.UpsertRelocated)
			return updated, nil
		}
		// Deleted between the list and the update.
		log.Debug("[cf][usecase] relocated id vanished; creating", zap.String("id", current.ID))
	}

	created, err := u.repo.Create(ctx, field)
	if err != nil {
		log.Warn("[cf][usecase] create failed", zap.Error(err))
		u.metrics.CustomFieldUpsert(metrics.UpsertFailed)
		return entities.CustomField{}, fmt.Errorf("create custom field: %w", err)
	}
	u.remember(entityType, entityID, in.Key, created.ID)
	u.metrics.CustomFieldUpsert(metrics.UpsertCreated)
	return created, nil
}

// UpsertMany writes every input concurrently. One failing key never stops the
// others; failures come back as *BatchError alongside the reloaded set.
// Repeated keys collapse to their last occurrence.
func (u *CustomFieldUseCase) UpsertMany(ctx context.Context, entityType entities.EntityType, entityID string, inputs []entities.CustomFieldInput) (entities.CustomFieldSet, error) {
	entityID = strings.TrimSpace(entityID)
	if _, ok := entities.ParseEntityType(string(entityType)); !ok {
		return entities.CustomFieldSet{}, ErrInvalidEntityType
	}
	if entityID == "" {
		return entities.CustomFieldSet{}, ErrInvalidEntityID
	}

	latest := make(map[string]entities.CustomFieldInput, len(inputs))
	order := make([]string, 0, len(inputs))
	for _, in := range inputs {
		key := strings.TrimSpace(in.Key)
		if _, seen := latest[key]; !seen {
			order = append(order, key)
		}
		latest[key] = in
	}

	var (
		mu     sync.Mutex
		failed = map[string]error{}
	)
	// Plain Group: a failing key must not cancel its siblings.
	var g errgroup.Group
	g.SetLimit(u.parallelism)
	for _, key := range order {
		in := latest[key]
		g.Go(func() error {
			if _, err := u.Upsert(ctx, entityType, entityID, in); err != nil {
				mu.Lock()
				failed[key] = err
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	set := u.GetAll(ctx, entityType, entityID)
	if len(failed) == 0 {
		return set, nil
	}

	batchErr := &BatchError{Failed: failed}
	u.logger.Warn("[cf][usecase] batch upsert finished with failures",
		zap.String("entity_type", string(entityType)),
		zap.String("entity_id", entityID),
		zap.Int("total", len(order)),
		zap.Int("failed", len(failed)),
		zap.Error(batchErr))
	return set, batchErr
}

func cacheKey(entityType entities.EntityType, entityID, key string) string {
	return string(entityType) + "/" + entityID + "/" + key
}

func (u *CustomFieldUseCase) cachedID(entityType entities.EntityType, entityID, key string) (string, bool) {
	v, ok := u.ids.Get(cacheKey(entityType, entityID, key))
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func (u *CustomFieldUseCase) remember(entityType entities.EntityType, entityID, key, id string) {
	if id == "" {
		return
	}
	u.ids.SetDefault(cacheKey(entityType, entityID, key), id)
}

func (u *CustomFieldUseCase) forget(entityType entities.EntityType, entityID, key string) {
	u.ids.Delete(cacheKey(entityType, entityID, key))
}
