package entities

import (
	"strings"
	"time"
)

// EntityType names the parent an overlay field is attached to.
type EntityType string

const (
	EntityDeal         EntityType = "deal"
	EntityContact      EntityType = "contact"
	EntityOrganization EntityType = "organization"
)

func ParseEntityType(s string) (EntityType, bool) {
	switch t := EntityType(strings.ToLower(strings.TrimSpace(s))); t {
	case EntityDeal, EntityContact, EntityOrganization:
		return t, true
	}
	return "", false
}

// CustomFieldType is the declared type of an overlay field.
type CustomFieldType string

const (
	FieldTypeText   CustomFieldType = "text"
	FieldTypeNumber CustomFieldType = "number"
	FieldTypeDate   CustomFieldType = "date"
	FieldTypeSelect CustomFieldType = "select"
	FieldTypeJSON   CustomFieldType = "json"
)

// StorageType maps the declared type to the one persisted. There is no JSON
// column type, so json is stored as text; unknown types also fall back to text.
func (t CustomFieldType) StorageType() CustomFieldType {
	switch t {
	case FieldTypeNumber, FieldTypeDate, FieldTypeSelect:
		return t
	}
	return FieldTypeText
}

// Well-known overlay keys.
const (
	CFKeyModalidadCarga  = "modalidad_carga"
	CFKeyContainers      = "containers"
	CFKeyLegs            = "legs"
	CFKeyFileLabels      = "file_labels"
	CFKeyNoteAttachments = "note_attachments"
)

// CustomField is one overlay entry. ID is empty until first persisted.
// At most one entry per (entity, key) is meaningful.
type CustomField struct {
	ID         string           `json:"id"`
	EntityType EntityType       `json:"entity_type"`
	EntityID   string           `json:"entity_id"`
	Key        string           `json:"key"`
	Label      string           `json:"label"`
	Type       CustomFieldType  `json:"type"`
	Value      CustomFieldValue `json:"value"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// CustomFieldInput is a "set value for key" request.
type CustomFieldInput struct {
	Key   string
	Label string
	Type  CustomFieldType
	Value CustomFieldValue
}

// CustomFieldSet is the flattened key -> field view of an entity's overlay.
// Supported is false when the overlay could not be loaded; callers hide
// overlay-driven controls instead of failing.
type CustomFieldSet struct {
	Fields    map[string]CustomField `json:"fields"`
	Supported bool                   `json:"supported"`
}

func NewCustomFieldSet(fields []CustomField) CustomFieldSet {
	set := CustomFieldSet{Fields: make(map[string]CustomField, len(fields)), Supported: true}
	for _, f := range fields {
		current, ok := set.Fields[f.Key]
		// Duplicates can exist after concurrent creates; the latest write wins.
		if !ok || f.UpdatedAt.After(current.UpdatedAt) {
			set.Fields[f.Key] = f
		}
	}
	return set
}

// UnsupportedCustomFieldSet is returned when the overlay backend is unavailable.
func UnsupportedCustomFieldSet() CustomFieldSet {
	return CustomFieldSet{Fields: map[string]CustomField{}, Supported: false}
}

// Text returns the stored text for key, or "" when absent.
func (s CustomFieldSet) Text(key string) string {
	f, ok := s.Fields[key]
	if !ok {
		return ""
	}
	return f.Value.Text()
}
