package entities

import "time"

// Deal is a shipping or industrial operation tracked through pipeline stages.
//
// Value is the cost-sheet derived profit (USD) when a cost sheet exists; otherwise
// it is a manual estimate. Deals are never hard-deleted.
type Deal struct {
	ID             string        `json:"id"`
	Reference      string        `json:"reference"`
	Title          string        `json:"title"`
	Value          float64       `json:"value"`
	TransportType  TransportType `json:"transport_type,omitempty"`
	StageID        string        `json:"stage_id"`
	OrganizationID string        `json:"organization_id"`
	ContactID      string        `json:"contact_id,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// DealPatch is a partial update; nil fields are left untouched.
type DealPatch struct {
	Title          *string
	Value          *float64
	TransportType  *TransportType
	OrganizationID *string
	ContactID      *string
	StageID        *string
}

func (p DealPatch) IsEmpty() bool {
	return p.Title == nil && p.Value == nil && p.TransportType == nil &&
		p.OrganizationID == nil && p.ContactID == nil && p.StageID == nil
}

// Stage is a pipeline column. Lower positions come first.
type Stage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}
