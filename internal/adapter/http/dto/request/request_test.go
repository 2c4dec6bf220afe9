package request

import (
	"encoding/json"
	"testing"

	"freight_crm/internal/domain/entities"
)

func TestCreateDealRequest_ToInput(t *testing.T) {
	in := CreateDealRequest{
		Title:            "  Import resin ",
		OrganizationName: " Acme ",
		TransportType:    " ocean",
		Value:            10,
	}.ToInput()

	if in.Title != "Import resin" || in.OrganizationName != "Acme" {
		t.Fatalf("expected trimmed fields, got %+v", in)
	}
	if in.TransportType != entities.TransportOcean {
		t.Fatalf("expected OCEAN, got %q", in.TransportType)
	}
}

func TestUpdateDealRequest_ToPatch(t *testing.T) {
	var r UpdateDealRequest
	if err := json.Unmarshal([]byte(`{"value":12.5,"transport_type":"road"}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	p := r.ToPatch()

	if p.Title != nil || p.OrganizationID != nil || p.ContactID != nil {
		t.Fatalf("omitted fields must stay nil: %+v", p)
	}
	if p.Value == nil || *p.Value != 12.5 {
		t.Fatalf("unexpected value: %+v", p.Value)
	}
	if p.TransportType == nil || *p.TransportType != entities.TransportRoad {
		t.Fatalf("unexpected transport type: %+v", p.TransportType)
	}
}

func TestUpsertCustomFieldsRequest_KeepsStructuredValues(t *testing.T) {
	var r UpsertCustomFieldsRequest
	body := `{"fields":[{"key":"legs","value":[{"origin":"PY"}]},{"key":"modalidad_carga","value":"MARITIMO"}]}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	inputs := r.ToInputs()
	if len(inputs) != 2 {
		t.Fatalf("expected 2 inputs, got %d", len(inputs))
	}
	if !inputs[0].Value.IsStructured() || inputs[0].Value.Text() != `[{"origin":"PY"}]` {
		t.Fatalf("expected structured legs, got %q", inputs[0].Value.Text())
	}
	if inputs[1].Value.IsStructured() || inputs[1].Value.Text() != "MARITIMO" {
		t.Fatalf("expected scalar modality, got %q", inputs[1].Value.Text())
	}
}

func TestCustomFieldRequest_PathKeyWins(t *testing.T) {
	in := CustomFieldRequest{Key: "body", Value: entities.ScalarValue("x")}.ToInput("path_key")
	if in.Key != "path_key" {
		t.Fatalf("expected path key, got %q", in.Key)
	}
}
