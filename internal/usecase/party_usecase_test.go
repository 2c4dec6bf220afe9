package usecase

import (
	"context"
	"errors"
	"testing"

	"freight_crm/internal/domain/entities"
	mock_interfaces "freight_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrganizationUseCase_Create(t *testing.T) {
	t.Run("name taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrganizationRepository(ctrl)
		uc := NewOrganizationUseCase(repo, nil, 0, nil)

		repo.EXPECT().FindByName(gomock.Any(), "Acme").Return(entities.Organization{ID: "org-1"}, nil)

		if _, err := uc.Create(context.Background(), entities.Organization{Name: " Acme "}); !errors.Is(err, ErrOrganizationNameTaken) {
			t.Fatalf("expected ErrOrganizationNameTaken, got %v", err)
		}
	})

	t.Run("name required", func(t *testing.T) {
		uc := NewOrganizationUseCase(nil, nil, 0, nil)
		if _, err := uc.Create(context.Background(), entities.Organization{}); !errors.Is(err, ErrOrganizationNameRequired) {
			t.Fatalf("expected ErrOrganizationNameRequired, got %v", err)
		}
	})
}

func TestOrganizationUseCase_Search(t *testing.T) {
	t.Run("short query", func(t *testing.T) {
		uc := NewOrganizationUseCase(nil, nil, 0, nil)
		if _, err := uc.Search(context.Background(), "a"); !errors.Is(err, ErrSearchQueryTooShort) {
			t.Fatalf("expected ErrSearchQueryTooShort, got %v", err)
		}
	})

	t.Run("merges directory without duplicates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrganizationRepository(ctrl)
		dir := mock_interfaces.NewMockIDirectory(ctrl)
		uc := NewOrganizationUseCase(repo, dir, 3, nil)

		repo.EXPECT().Search(gomock.Any(), "ac", 3).Return([]entities.Organization{{ID: "org-1", Name: "Acme"}}, nil)
		dir.EXPECT().SearchOrganizations(gomock.Any(), "ac").Return([]entities.Organization{
			{Name: "ACME "}, {Name: "Acorn"}, {Name: "Active"}, {Name: "Acre"},
		}, nil)

		got, err := uc.Search(context.Background(), "ac")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(got) != 3 || got[0].ID != "org-1" || got[1].Name != "Acorn" {
			t.Fatalf("unexpected result %+v", got)
		}
	})

	t.Run("directory failure keeps local matches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrganizationRepository(ctrl)
		dir := mock_interfaces.NewMockIDirectory(ctrl)
		uc := NewOrganizationUseCase(repo, dir, 0, nil)

		repo.EXPECT().Search(gomock.Any(), "acme", defaultPartySearchLimit).Return([]entities.Organization{{ID: "org-1", Name: "Acme"}}, nil)
		dir.EXPECT().SearchOrganizations(gomock.Any(), "acme").Return(nil, errors.New("timeout"))

		got, err := uc.Search(context.Background(), "acme")
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result err=%v got=%+v", err, got)
		}
	})
}

func TestContactUseCase(t *testing.T) {
	t.Run("unknown organization", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orgs := mock_interfaces.NewMockIOrganizationRepository(ctrl)
		uc := NewContactUseCase(nil, orgs, nil, 0, nil)

		orgs.EXPECT().GetByID(gomock.Any(), "org-x").Return(entities.Organization{}, nil)

		if _, err := uc.Create(context.Background(), entities.Contact{Name: "Luis", OrganizationID: "org-x"}); !errors.Is(err, ErrOrganizationNotFound) {
			t.Fatalf("expected ErrOrganizationNotFound, got %v", err)
		}
	})

	t.Run("update missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContactRepository(ctrl)
		uc := NewContactUseCase(repo, nil, nil, 0, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Contact{}, nil)

		if _, err := uc.Update(context.Background(), entities.Contact{ID: "c-1", Name: "Luis"}); !errors.Is(err, ErrContactNotFound) {
			t.Fatalf("expected ErrContactNotFound, got %v", err)
		}
	})

	t.Run("search dedupes by name and email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContactRepository(ctrl)
		dir := mock_interfaces.NewMockIDirectory(ctrl)
		uc := NewContactUseCase(repo, nil, dir, 0, nil)

		repo.EXPECT().Search(gomock.Any(), "lu", defaultPartySearchLimit).Return([]entities.Contact{{ID: "c-1", Name: "Luis", Email: "luis@acme.com"}}, nil)
		dir.EXPECT().SearchContacts(gomock.Any(), "lu").Return([]entities.Contact{
			{Name: "luis", Email: "LUIS@acme.com"},
			{Name: "Luis", Email: "luis@other.com"},
		}, nil)

		got, err := uc.Search(context.Background(), "lu")
		if err != nil || len(got) != 2 || got[0].ID != "c-1" {
			t.Fatalf("unexpected result err=%v got=%+v", err, got)
		}
	})
}
