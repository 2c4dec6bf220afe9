package repository

import (
	"testing"
	"time"

	"freight_crm/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"
)

func TestDealUpdateExpression(t *testing.T) {
	title := "  Reefer Shanghai  "
	value := 230.5
	stage := "st-2"
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	expr, values, names := dealUpdateExpression(entities.DealPatch{Title: &title, Value: &value, StageID: &stage}, now)

	require.Equal(t, "SET #updated_at = :updated_at, #title = :title, #title_lower = :title_lower, #value = :value, #stage_id = :stage_id", expr)
	require.Equal(t, "Reefer Shanghai", values[":title"].(*types.AttributeValueMemberS).Value)
	require.Equal(t, "reefer shanghai", values[":title_lower"].(*types.AttributeValueMemberS).Value)
	require.Equal(t, "230.5", values[":value"].(*types.AttributeValueMemberN).Value)
	require.Equal(t, "2026-01-02T03:04:05Z", values[":updated_at"].(*types.AttributeValueMemberS).Value)
	require.Equal(t, "stage_id", names["#stage_id"])
	require.NotContains(t, names, "#contact_id")
}

func TestDealItem_RoundTrip(t *testing.T) {
	d := entities.Deal{
		ID:            "d-1",
		Reference:     "OP-20260101-ABC123",
		Title:         "Import",
		Value:         10.5,
		TransportType: entities.TransportOcean,
		StageID:       "st-1",
		CreatedAt:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	it := toDealItem(d)
	require.Equal(t, "op-20260101-abc123", it.ReferenceLower)

	av, err := attributevalue.MarshalMap(it)
	require.NoError(t, err)
	_, hasContact := av["contact_id"]
	require.False(t, hasContact)

	var back dealItem
	require.NoError(t, attributevalue.UnmarshalMap(av, &back))
	require.Equal(t, d, fromDealItem(back))
}

func TestCustomFieldItem_KeepsValueKind(t *testing.T) {
	structured, err := entities.NewStructuredValue([]entities.FileLabel{{FileID: "f-1", Label: "BL"}})
	require.NoError(t, err)

	for name, value := range map[string]entities.CustomFieldValue{
		"scalar":     entities.ScalarValue(`[{"file_id":"f-1"}]`),
		"structured": structured,
	} {
		t.Run(name, func(t *testing.T) {
			f := entities.CustomField{
				ID:         "cf-1",
				EntityType: entities.EntityDeal,
				EntityID:   "d-1",
				Key:        entities.CFKeyFileLabels,
				Type:       entities.FieldTypeText,
				Value:      value,
			}
			it := toCustomFieldItem(f)
			require.Equal(t, "deal#d-1", it.EntityKey)

			back := fromCustomFieldItem(it)
			require.Equal(t, value.IsStructured(), back.Value.IsStructured())
			require.Equal(t, value.Text(), back.Value.Text())
		})
	}
}

func TestCostSheetItem_PreservesTextCells(t *testing.T) {
	sheet := entities.CostSheet{
		DealID: "d-1",
		Header: entities.CostSheetHeader{
			"pesoKg": entities.TextAmount("1.234,5"),
			"gsRate": entities.NumberAmount(7300),
		},
		VentaRows: []entities.CostRow{{Concept: "Flete", Total: entities.TextAmount("USD 1.200,00")}},
		UpdatedAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	}

	it, err := toCostSheetItem(sheet)
	require.NoError(t, err)

	back, err := fromCostSheetItem(it)
	require.NoError(t, err)
	require.Equal(t, "1.234,5", back.Header["pesoKg"].Text())
	n, ok := back.Header["gsRate"].Number()
	require.True(t, ok)
	require.Equal(t, 7300.0, n)
	require.Equal(t, "USD 1.200,00", back.VentaRows[0].Total.Text())
	require.True(t, back.UpdatedAt.Equal(sheet.UpdatedAt))
}

func TestPrefixScan(t *testing.T) {
	in := prefixScan("contacts", "name_lower", "email_lower")("  Ana ")

	require.Equal(t, "contacts", *in.TableName)
	require.Equal(t, "begins_with(#a0, :q) OR begins_with(#a1, :q)", *in.FilterExpression)
	require.Equal(t, map[string]string{"#a0": "name_lower", "#a1": "email_lower"}, in.ExpressionAttributeNames)
	require.Equal(t, "ana", in.ExpressionAttributeValues[":q"].(*types.AttributeValueMemberS).Value)
}

func TestDealPaymentItem_RoundTrip(t *testing.T) {
	p := entities.DealPayment{
		ID:           "p-1",
		DealID:       "d-1",
		Amount:       77.2,
		Currency:     "USD",
		Date:         time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		Status:       entities.PaymentStatusApproved,
		MPPayloadRaw: []byte(`{"id":1}`),
	}
	require.Equal(t, p, fromDealPaymentItem(toDealPaymentItem(p)))
}
