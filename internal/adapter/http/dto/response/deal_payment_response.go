package response

import (
	"time"

	"freight_crm/internal/domain/entities"
)

type DealPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	ID          string    `json:"id"`
	DealID      string    `json:"deal_id"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	PaymentDate time.Time `json:"payment_date"`
	Status      string    `json:"status"`

	MPPayloadRaw string         `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]any `json:"mp_payload,omitempty"`
}

func FromDealPayment(p entities.DealPayment) DealPaymentResponse {
	return DealPaymentResponse{
		PaymentID:    p.ID,
		ID:           p.ID,
		DealID:       p.DealID,
		Amount:       p.Amount,
		Currency:     p.Currency,
		PaymentDate:  p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}

func FromDealPayments(ps []entities.DealPayment) []DealPaymentResponse {
	out := make([]DealPaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromDealPayment(p))
	}
	return out
}
