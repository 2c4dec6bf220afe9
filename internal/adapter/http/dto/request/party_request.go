package request

import (
	"strings"

	"freight_crm/internal/domain/entities"
)

type OrganizationRequest struct {
	Name    string `json:"name" binding:"required"`
	TaxID   string `json:"tax_id"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (r OrganizationRequest) ToEntity(id string) entities.Organization {
	return entities.Organization{
		ID:      id,
		Name:    strings.TrimSpace(r.Name),
		TaxID:   strings.TrimSpace(r.TaxID),
		Email:   strings.TrimSpace(r.Email),
		Phone:   strings.TrimSpace(r.Phone),
		Address: strings.TrimSpace(r.Address),
	}
}

type ContactRequest struct {
	OrganizationID string `json:"organization_id"`
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"omitempty,email"`
	Phone          string `json:"phone"`
	Position       string `json:"position"`
}

func (r ContactRequest) ToEntity(id string) entities.Contact {
	return entities.Contact{
		ID:             id,
		OrganizationID: strings.TrimSpace(r.OrganizationID),
		Name:           strings.TrimSpace(r.Name),
		Email:          strings.TrimSpace(r.Email),
		Phone:          strings.TrimSpace(r.Phone),
		Position:       strings.TrimSpace(r.Position),
	}
}
