package entities

import (
	"encoding/json"
	"time"
)

type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "CASH"
	PaymentMethodCard       PaymentMethod = "CARD"
	PaymentMethodPix        PaymentMethod = "PIX"
	PaymentMethodTransfer   PaymentMethod = "TRANSFER"
	PaymentMethodCardOnline PaymentMethod = "CARD_ONLINE"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodPix,
		PaymentMethodTransfer, PaymentMethodCardOnline:
		return true
	}
	return false
}

// Online reports whether the method is charged through the payment gateway
// before it enters the ledger.
func (m PaymentMethod) Online() bool {
	return m == PaymentMethodCardOnline
}

// Payment is a permanent ledger entry applied to exactly one invoice.
// Payments are never mutated or deleted; there is no reversal operation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (invoice_id-index): invoice_id
//
// Gateway payload:
//   - GatewayPayloadRaw keeps the provider response (JSON) for audit when the
//     payment was charged online; cash/card-present payments leave it empty.

type Payment struct {
	ID        string        `json:"id"`
	InvoiceID string        `json:"invoice_id"`
	Amount    float64       `json:"amount"`
	Method    PaymentMethod `json:"method"`
	Date      time.Time     `json:"date"`
	Reference string        `json:"reference,omitempty"`
	Notes     string        `json:"notes,omitempty"`

	GatewayPaymentID   string          `json:"gateway_payment_id,omitempty"`
	GatewayPayloadRaw  json.RawMessage `json:"gateway_payload_raw,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}
