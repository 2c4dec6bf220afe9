package response

import (
	"freight_crm/internal/domain/costing"
	"freight_crm/internal/domain/entities"
	"freight_crm/internal/usecase"
)

// DealDetailResponse is a deal with its overlay fields flattened to
// key -> value and the modality forms resolved.
type DealDetailResponse struct {
	entities.Deal
	CustomFields          map[string]entities.CustomFieldValue `json:"custom_fields"`
	CustomFieldsSupported bool                                 `json:"custom_fields_supported"`
	Modality              entities.ModalityView                `json:"modality"`
}

func FromDealDetail(d usecase.DealDetail) DealDetailResponse {
	return DealDetailResponse{
		Deal:                  d.Deal,
		CustomFields:          FlattenCustomFields(d.CustomFields),
		CustomFieldsSupported: d.CustomFields.Supported,
		Modality:              d.Modality,
	}
}

// FlattenCustomFields maps each field key to its value.
func FlattenCustomFields(set entities.CustomFieldSet) map[string]entities.CustomFieldValue {
	out := make(map[string]entities.CustomFieldValue, len(set.Fields))
	for k, f := range set.Fields {
		out[k] = f.Value
	}
	return out
}

type ProfitResponse struct {
	DealID     string         `json:"deal_id"`
	Computable bool           `json:"computable"`
	ProfitUSD  *float64       `json:"profit_usd"`
	Totals     costing.Totals `json:"totals"`
	DealValue  float64        `json:"deal_value"`
	Synced     bool           `json:"synced"`
}

// FromProfit leaves profit_usd null when the sheet cannot produce a figure.
func FromProfit(p usecase.ProfitResult) ProfitResponse {
	res := ProfitResponse{
		DealID:     p.DealID,
		Computable: p.Computable,
		Totals:     p.Totals,
		DealValue:  p.DealValue,
		Synced:     p.Synced,
	}
	if p.Computable {
		profit := p.Profit
		res.ProfitUSD = &profit
	}
	return res
}
