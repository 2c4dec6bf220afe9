package request

import (
	"strings"

	"freight_crm/internal/domain/entities"
)

// CustomFieldRequest sets one overlay field. Value accepts any JSON: objects
// and arrays are kept as structured values.
type CustomFieldRequest struct {
	Key   string                    `json:"key"`
	Label string                    `json:"label"`
	Type  string                    `json:"type" binding:"omitempty,oneof=text number date select json"`
	Value entities.CustomFieldValue `json:"value"`
}

func (r CustomFieldRequest) ToInput(key string) entities.CustomFieldInput {
	if key == "" {
		key = r.Key
	}
	return entities.CustomFieldInput{
		Key:   strings.TrimSpace(key),
		Label: strings.TrimSpace(r.Label),
		Type:  entities.CustomFieldType(r.Type),
		Value: r.Value,
	}
}

type UpsertCustomFieldsRequest struct {
	Fields []CustomFieldRequest `json:"fields" binding:"required,min=1,dive"`
}

func (r UpsertCustomFieldsRequest) ToInputs() []entities.CustomFieldInput {
	inputs := make([]entities.CustomFieldInput, 0, len(r.Fields))
	for _, f := range r.Fields {
		inputs = append(inputs, f.ToInput(""))
	}
	return inputs
}
