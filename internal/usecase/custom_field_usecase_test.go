package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"freight_crm/internal/config"
	"freight_crm/internal/domain/entities"
	mock_interfaces "freight_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

func newCFUseCase(t *testing.T, repo *mock_interfaces.MockICustomFieldRepository) *CustomFieldUseCase {
	return NewCustomFieldUseCase(repo, config.CustomFields{CacheTTL: time.Minute, Parallelism: 4}, zaptest.NewLogger(t), nil)
}

func TestCustomFieldUseCase_GetAll(t *testing.T) {
	t.Run("repository error degrades to unsupported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomFieldRepository(ctrl)
		uc := newCFUseCase(t, repo)

		repo.EXPECT().ListByEntity(gomock.Any(), entities.EntityDeal, "d-1").Return(nil, errors.New("timeout"))

		set := uc.GetAll(context.Background(), entities.EntityDeal, "d-1")
		if set.Supported {
			t.Fatalf("expected unsupported set")
		}
		if set.Fields == nil || len(set.Fields) != 0 {
			t.Fatalf("expected empty non-nil fields, got %v", set.Fields)
		}
	})

	t.Run("invalid entity type never reaches repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomFieldRepository(ctrl)
		uc := newCFUseCase(t, repo)

		set := uc.GetAll(context.Background(), entities.EntityType("invoice"), "d-1")
		if set.Supported {
			t.Fatalf("expected unsupported set")
		}
	})

	t.Run("warms id cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomFieldRepository(ctrl)
		uc := newCFUseCase(t, repo)

		repo.EXPECT().ListByEntity(gomock.Any(), entities.EntityDeal, "d-1").Return([]entities.CustomField{
			{ID: "cf-1", Key: entities.CFKeyModalidadCarga, Value: entities.ScalarValue("MARITIMO")},
		}, nil)
		repo.EXPECT().UpdateByID(gomock.Any(), "cf-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, f entities.CustomField) (entities.CustomField, error) {
				f.ID = id
				return f, nil
			})

		set := uc.GetAll(context.Background(), entities.EntityDeal, "d-1")
		if !set.Supported || set.Text(entities.CFKeyModalidadCarga) != "MARITIMO" {
			t.Fatalf("unexpected set %+v", set)
		}

		got, err := uc.Upsert(context.Background(), entities.EntityDeal, "d-1", entities.CustomFieldInput{
			Key: entities.CFKeyModalidadCarga, Type: entities.FieldTypeSelect, Value: entities.ScalarValue("AEREO"),
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.ID != "cf-1" || got.Value.Text() != "AEREO" {
			t.Fatalf("unexpected field %+v", got)
		}
	})
}

func TestCustomFieldUseCase_Upsert_Validations(t *testing.T) {
	uc := NewCustomFieldUseCase(nil, config.CustomFields{}, nil, nil)

	cases := []struct {
		name       string
		entityType entities.EntityType
		entityID   string
		key        string
		want       error
	}{
		{"entity type", "invoice", "d-1", "k", ErrInvalidEntityType},
		{"entity id", entities.EntityDeal, " ", "k", ErrInvalidEntityID},
		{"key", entities.EntityDeal, "d-1", "", ErrInvalidFieldKey},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Upsert(context.Background(), tc.entityType, tc.entityID, entities.CustomFieldInput{Key: tc.key})
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestCustomFieldUseCase_Upsert_Fallbacks(t *testing.T) {
	in := entities.CustomFieldInput{Key: "incoterm", Label: "Incoterm", Type: entities.FieldTypeText, Value: entities.ScalarValue("FOB")}

	t.Run("cold cache creates and then updates by cached id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomFieldRepository(ctrl)
		uc := newCFUseCase(t, repo)

		gomock.InOrder(
			repo.EXPECT().ListByEntity(gomock.Any(), entities.EntityDeal, "d-1").Return(nil, nil),
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, f entities.CustomField) (entities.CustomField, error) {
					f.ID = "cf-9"
					return f, nil
				}),
			repo.EXPECT().UpdateByID(gomock.Any(), "cf-9", gomock.Any()).
				DoAndReturn(func(_ context.Context, id string, f entities.CustomField) (entities.CustomField, error) {
					f.ID = id
					return f, nil
				}),
		)

		created, err := uc.Upsert(context.Background(), entities.EntityDeal, "d-1", in)
		if err != nil || created.ID != "cf-9" {
			t.Fatalf("unexpected create result %+v err=%v", created, err)
		}
		if created.Label != "Incoterm" || created.EntityID != "d-1" {
			t.Fatalf("unexpected field %+v", created)
		}

		in2 := in
		in2.Value = entities.ScalarValue("CIF")
		updated, err := uc.Upsert(context.Background(), entities.EntityDeal, "d-1", in2)
		if err != nil || updated.Value.Text() != "CIF" {
			t.Fatalf("unexpected update result %+v err=%v", updated, err)
		}
	})

	t.Run("stale cached id relocates by key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomFieldRepository(ctrl)
		uc := newCFUseCase(t, repo)
		uc.remember(entities.EntityDeal, "d-1", "incoterm", "cf-old")

		gomock.InOrder(
			repo.EXPECT().UpdateByID(gomock.Any(), "cf-old", gomock.Any()).Return(entities.CustomField{}, nil),
			repo.EXPECT().ListByEntity(gomock.Any(), entities.EntityDeal, "d-1").Return([]entities.CustomField{
				{ID: "cf-new", Key: "incoterm"},
				{ID: "cf-other", Key: "containers"},
			}, nil),
			repo.EXPECT().UpdateByID(gomock.Any(), "cf-new", gomock.Any()).
				DoAndReturn(func(_ context.Context, id string, f entities.CustomField) (entities.CustomField, error) {
					f.ID = id
					return f, nil
				}),
		)

		got, err := uc.Upsert(context.Background(), entities.EntityDeal, "d-1", in)
		if err != nil || got.ID != "cf-new" {
			t.Fatalf("unexpected result %+v err=%v", got, err)
		}
		if id, _ := uc.cachedID(entities.EntityDeal, "d-1", "incoterm"); id != "cf-new" {
			t.Fatalf("expected cache to hold cf-new, got %q", id)
		}
	})

	t.Run("update error with key gone creates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomFieldRepository(ctrl)
		uc := newCFUseCase(t, repo)
		uc.remember(entities.EntityDeal, "d-1", "incoterm", "cf-old")

		gomock.InOrder(
			repo.EXPECT().UpdateByID(gomock.Any(), "cf-old", gomock.Any()).Return(entities.CustomField{}, errors.New("404")),
			repo.EXPECT().ListByEntity(gomock.Any(), entities.EntityDeal, "d-1").Return(nil, nil),
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.CustomField{ID: "cf-2", Key: "incoterm"}, nil),
		)

		got, err := uc.Upsert(context.Background(), entities.EntityDeal, "d-1", in)
		if err != nil || got.ID != "cf-2" {
			t.Fatalf("unexpected result %+v err=%v", got, err)
		}
	})

	t.Run("re-fetch error fails the key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomFieldRepository(ctrl)
		uc := newCFUseCase(t, repo)

		repo.EXPECT().ListByEntity(gomock.Any(), entities.EntityDeal, "d-1").Return(nil, errors.New("db down"))

		_, err := uc.Upsert(context.Background(), entities.EntityDeal, "d-1", in)
		if err == nil || err.Error() != "list custom fields: db down" {
			t.Fatalf("expected wrapped list error, got %v", err)
		}
	})

	t.Run("json type is stored as text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomFieldRepository(ctrl)
		uc := newCFUseCase(t, repo)

		value, err := entities.NewStructuredValue([]entities.Container{{Number: "MSCU1234567", Type: "40HC"}})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}

		repo.EXPECT().ListByEntity(gomock.Any(), entities.EntityDeal, "d-1").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f entities.CustomField) (entities.CustomField, error) {
				if f.Type != entities.FieldTypeText {
					t.Fatalf("expected text storage type, got %s", f.Type)
				}
				if !f.Value.IsStructured() || f.Value.Text() != `[{"number":"MSCU1234567","type":"40HC","weight_kg":0}]` {
					t.Fatalf("unexpected stored value %q", f.Value.Text())
				}
				f.ID = "cf-3"
				return f, nil
			})

		_, err = uc.Upsert(context.Background(), entities.EntityDeal, "d-1", entities.CustomFieldInput{
			Key: entities.CFKeyContainers, Type: entities.FieldTypeJSON, Value: value,
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

// memoryCustomFields is a concurrency-safe ICustomFieldRepository used to
// check end state rather than call sequences.
type memoryCustomFields struct {
	mu      sync.Mutex
	seq     int
	rows    map[string]entities.CustomField
	failKey string
}

func newMemoryCustomFields() *memoryCustomFields {
	return &memoryCustomFields{rows: map[string]entities.CustomField{}}
}

func (m *memoryCustomFields) ListByEntity(_ context.Context, entityType entities.EntityType, entityID string) ([]entities.CustomField, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entities.CustomField
	for _, f := range m.rows {
		if f.EntityType == entityType && f.EntityID == entityID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memoryCustomFields) Create(_ context.Context, f entities.CustomField) (entities.CustomField, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if f.Key == m.failKey {
		return entities.CustomField{}, errors.New("rejected")
	}
	m.seq++
	f.ID = fmt.Sprintf("cf-%d", m.seq)
	m.rows[f.ID] = f
	return f, nil
}

func (m *memoryCustomFields) UpdateByID(_ context.Context, id string, f entities.CustomField) (entities.CustomField, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return entities.CustomField{}, nil
	}
	f.ID = id
	m.rows[id] = f
	return f, nil
}

func (m *memoryCustomFields) count(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, f := range m.rows {
		if f.Key == key {
			n++
		}
	}
	return n
}

func TestCustomFieldUseCase_Upsert_Idempotent(t *testing.T) {
	for _, warm := range []bool{true, false} {
		t.Run(fmt.Sprintf("warm=%v", warm), func(t *testing.T) {
			repo := newMemoryCustomFields()
			first := NewCustomFieldUseCase(repo, config.CustomFields{CacheTTL: time.Minute, Parallelism: 2}, zaptest.NewLogger(t), nil)

			in := entities.CustomFieldInput{Key: "incoterm", Type: entities.FieldTypeText, Value: entities.ScalarValue("v1")}
			if _, err := first.Upsert(context.Background(), entities.EntityDeal, "d-1", in); err != nil {
				t.Fatalf("unexpected err: %v", err)
			}

			second := first
			if !warm {
				second = NewCustomFieldUseCase(repo, config.CustomFields{CacheTTL: time.Minute, Parallelism: 2}, zaptest.NewLogger(t), nil)
			}
			in.Value = entities.ScalarValue("v2")
			if _, err := second.Upsert(context.Background(), entities.EntityDeal, "d-1", in); err != nil {
				t.Fatalf("unexpected err: %v", err)
			}

			if n := repo.count("incoterm"); n != 1 {
				t.Fatalf("expected exactly one stored entry, got %d", n)
			}
			if got := second.GetAll(context.Background(), entities.EntityDeal, "d-1").Text("incoterm"); got != "v2" {
				t.Fatalf("expected v2, got %q", got)
			}
		})
	}
}

func TestCustomFieldUseCase_UpsertMany(t *testing.T) {
	t.Run("one failing key does not abort siblings", func(t *testing.T) {
		repo := newMemoryCustomFields()
		repo.failKey = "broken"
		uc := NewCustomFieldUseCase(repo, config.CustomFields{CacheTTL: time.Minute, Parallelism: 2}, zaptest.NewLogger(t), nil)

		set, err := uc.UpsertMany(context.Background(), entities.EntityOrganization, "org-1", []entities.CustomFieldInput{
			{Key: "segment", Value: entities.ScalarValue("retail")},
			{Key: "broken", Value: entities.ScalarValue("x")},
			{Key: "tier", Value: entities.ScalarValue("gold")},
			{Key: "segment", Value: entities.ScalarValue("wholesale")},
		})

		var batchErr *BatchError
		if !errors.As(err, &batchErr) {
			t.Fatalf("expected *BatchError, got %v", err)
		}
		if len(batchErr.Failed) != 1 || batchErr.Failed["broken"] == nil {
			t.Fatalf("unexpected failures %v", batchErr.Failed)
		}
		if !errors.Is(err, ErrCustomFieldsFailed) {
			t.Fatalf("expected ErrCustomFieldsFailed in chain")
		}
		if set.Text("segment") != "wholesale" || set.Text("tier") != "gold" {
			t.Fatalf("unexpected reloaded set %+v", set.Fields)
		}
		if repo.count("segment") != 1 {
			t.Fatalf("repeated key must be written once")
		}
	})

	t.Run("all succeed", func(t *testing.T) {
		repo := newMemoryCustomFields()
		uc := NewCustomFieldUseCase(repo, config.CustomFields{Parallelism: 3}, nil, nil)

		set, err := uc.UpsertMany(context.Background(), entities.EntityContact, "c-1", []entities.CustomFieldInput{
			{Key: "a", Value: entities.ScalarValue("1")},
			{Key: "b", Value: entities.ScalarValue("2")},
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(set.Fields) != 2 || !set.Supported {
			t.Fatalf("unexpected set %+v", set)
		}
	})

	t.Run("invalid entity", func(t *testing.T) {
		uc := NewCustomFieldUseCase(newMemoryCustomFields(), config.CustomFields{}, nil, nil)
		if _, err := uc.UpsertMany(context.Background(), entities.EntityDeal, "", nil); !errors.Is(err, ErrInvalidEntityID) {
			t.Fatalf("expected ErrInvalidEntityID, got %v", err)
		}
	})
}

func TestBatchError_Error(t *testing.T) {
	err := &BatchError{Failed: map[string]error{"b": errors.New("x"), "a": errors.New("y")}}
	if got := err.Error(); got != "2 custom field(s) failed: a: y; b: x" {
		t.Fatalf("unexpected message %q", got)
	}
}
