package request

import "encoding/json"

// DealPaymentCreateRequest is the payload for collecting a deal's payment.
//
// `mp_payload` is stored as-is (raw JSON) to support varying Mercado Pago
// schemas. The amount is never taken from it.
type DealPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
