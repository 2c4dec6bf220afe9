package entities

import (
	"encoding/json"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// DealPayment is a client payment collected for a deal.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (deal_id-index): deal_id
//
// MPPayloadRaw keeps the provider response for audit; MPPayload is the parsed
// form used for debugging.
type DealPayment struct {
	ID       string        `json:"id"`
	DealID   string        `json:"deal_id"`
	Amount   float64       `json:"amount"`
	Currency string        `json:"currency"`
	Date     time.Time     `json:"date"`
	Status   PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]any  `json:"mp_payload,omitempty"`
}
