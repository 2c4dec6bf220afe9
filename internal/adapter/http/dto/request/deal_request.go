package request

import (
	"strings"

	"freight_crm/internal/domain/entities"
	"freight_crm/internal/usecase"
)

// CreateDealRequest is the pipeline "new operation" form. The organization is
// referenced by name and created when unknown; the title defaults to it.
type CreateDealRequest struct {
	Title            string  `json:"title"`
	OrganizationName string  `json:"organization_name" binding:"required"`
	ContactID        string  `json:"contact_id"`
	StageID          string  `json:"stage_id"`
	Value            float64 `json:"value" binding:"gte=0"`
	TransportType    string  `json:"transport_type"`
}

func (r CreateDealRequest) ToInput() usecase.CreateDealInput {
	return usecase.CreateDealInput{
		Title:            strings.TrimSpace(r.Title),
		OrganizationName: strings.TrimSpace(r.OrganizationName),
		ContactID:        strings.TrimSpace(r.ContactID),
		StageID:          strings.TrimSpace(r.StageID),
		Value:            r.Value,
		TransportType:    entities.TransportType(strings.ToUpper(strings.TrimSpace(r.TransportType))),
	}
}

// UpdateDealRequest is a partial update; omitted fields are left untouched.
type UpdateDealRequest struct {
	Title          *string  `json:"title"`
	Value          *float64 `json:"value" binding:"omitempty,gte=0"`
	TransportType  *string  `json:"transport_type"`
	OrganizationID *string  `json:"organization_id"`
	ContactID      *string  `json:"contact_id"`
}

func (r UpdateDealRequest) ToPatch() entities.DealPatch {
	p := entities.DealPatch{
		Title:          r.Title,
		Value:          r.Value,
		OrganizationID: r.OrganizationID,
		ContactID:      r.ContactID,
	}
	if r.TransportType != nil {
		t := entities.TransportType(strings.ToUpper(strings.TrimSpace(*r.TransportType)))
		p.TransportType = &t
	}
	return p
}

type MoveStageRequest struct {
	StageID string `json:"stage_id" binding:"required"`
}

type CreateStageRequest struct {
	Name     string `json:"name" binding:"required"`
	Position int    `json:"position" binding:"gte=0"`
}
