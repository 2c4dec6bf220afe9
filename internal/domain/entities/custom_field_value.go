package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNotStructured    = errors.New("custom field value is not structured")
	ErrInvalidStructure = errors.New("custom field value has an invalid structure")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValueKind tags a CustomFieldValue.
type ValueKind string

const (
	ValueScalar     ValueKind = "scalar"
	ValueStructured ValueKind = "json"
)

// CustomFieldValue is either a scalar text value or a structured JSON payload.
// Both are persisted as text; the kind travels next to it so structured
// payloads never need to be sniffed.
type CustomFieldValue struct {
	kind ValueKind
	text string
}

func ScalarValue(s string) CustomFieldValue {
	return CustomFieldValue{kind: ValueScalar, text: s}
}

// RawJSONValue wraps an already encoded JSON document.
func RawJSONValue(raw []byte) (CustomFieldValue, error) {
	if !json.Valid(raw) {
		return CustomFieldValue{}, fmt.Errorf("%w: not valid json", ErrInvalidStructure)
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return CustomFieldValue{}, fmt.Errorf("%w: %v", ErrInvalidStructure, err)
	}
	return CustomFieldValue{kind: ValueStructured, text: buf.String()}, nil
}

// NewStructuredValue validates v against its struct tags and encodes it.
func NewStructuredValue(v any) (CustomFieldValue, error) {
	if err := validatePayload(v); err != nil {
		return CustomFieldValue{}, err
	}
	b, err := json.Marshal(v)
	if err != nil {
		return CustomFieldValue{}, fmt.Errorf("%w: %v", ErrInvalidStructure, err)
	}
	return CustomFieldValue{kind: ValueStructured, text: string(b)}, nil
}

// StoredValue rebuilds a value read back from storage.
func StoredValue(kind ValueKind, text string) CustomFieldValue {
	if kind == ValueStructured && json.Valid([]byte(text)) {
		return CustomFieldValue{kind: ValueStructured, text: text}
	}
	return ScalarValue(text)
}

func (v CustomFieldValue) Kind() ValueKind {
	if v.kind == "" {
		return ValueScalar
	}
	return v.kind
}

func (v CustomFieldValue) IsStructured() bool { return v.kind == ValueStructured }

// Text is the persisted representation.
func (v CustomFieldValue) Text() string { return v.text }

// DecodeStructured unmarshals a structured value into dst and validates it.
func DecodeStructured(v CustomFieldValue, dst any) error {
	if !v.IsStructured() {
		return ErrNotStructured
	}
	if err := json.Unmarshal([]byte(v.text), dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStructure, err)
	}
	return validatePayload(dst)
}

// MarshalJSON writes scalars as JSON strings and structured values inline.
func (v CustomFieldValue) MarshalJSON() ([]byte, error) {
	if v.IsStructured() {
		return []byte(v.text), nil
	}
	return json.Marshal(v.text)
}

// UnmarshalJSON accepts any JSON: strings, numbers and booleans become
// scalars, objects and arrays become structured values, null is "".
func (v *CustomFieldValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*v = ScalarValue("")
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = ScalarValue(s)
	case '{', '[':
		parsed, err := RawJSONValue(b)
		if err != nil {
			return err
		}
		*v = parsed
	case 't', 'f':
		bv, err := strconv.ParseBool(string(b))
		if err != nil {
			return err
		}
		*v = ScalarValue(strconv.FormatBool(bv))
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*v = ScalarValue(n.String())
	}
	return nil
}

func validatePayload(v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return fmt.Errorf("%w: nil payload", ErrInvalidStructure)
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		if err := validate.Struct(rv.Interface()); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidStructure, err)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if err := validatePayload(rv.Index(i).Interface()); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
	}
	return nil
}

// Structured payloads persisted in the overlay.

type Container struct {
	Number   string  `json:"number" validate:"required"`
	Type     string  `json:"type" validate:"required"`
	Seal     string  `json:"seal,omitempty"`
	WeightKg float64 `json:"weight_kg" validate:"gte=0"`
}

type Leg struct {
	Mode        TransportType `json:"mode" validate:"required,oneof=AIR OCEAN ROAD"`
	Origin      string        `json:"origin" validate:"required"`
	Destination string        `json:"destination" validate:"required"`
	Carrier     string        `json:"carrier,omitempty"`
	ETD         string        `json:"etd,omitempty"`
	ETA         string        `json:"eta,omitempty"`
}

type FileLabel struct {
	FileID string `json:"file_id" validate:"required"`
	Label  string `json:"label" validate:"required"`
}

type NoteAttachment struct {
	NoteID  string   `json:"note_id" validate:"required"`
	FileIDs []string `json:"file_ids" validate:"required,min=1,dive,required"`
}
