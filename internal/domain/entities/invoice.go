package entities

import "time"

// InvoiceStatus represents the billing lifecycle of an invoice.
//
// PARTIALLY_PAID and PAID are derived from the balance after each payment
// application; they are never set directly by callers.

type InvoiceStatus string

const (
	InvoiceStatusDraft         InvoiceStatus = "DRAFT"
	InvoiceStatusSent          InvoiceStatus = "SENT"
	InvoiceStatusPartiallyPaid InvoiceStatus = "PARTIALLY_PAID"
	InvoiceStatusPaid          InvoiceStatus = "PAID"
	InvoiceStatusOverdue       InvoiceStatus = "OVERDUE"
	InvoiceStatusCancelled     InvoiceStatus = "CANCELLED"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPartiallyPaid,
		InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

func (i InvoiceItem) LineTotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// Invoice is the billing document for a job (at most one per job).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
//   - GSI2 (invoice_number-index): invoice_number
//
// Invariants, held after every payment application:
//   - TotalAmount = Subtotal + TaxAmount - DiscountAmount
//   - BalanceAmount = TotalAmount - PaidAmount
//   - PaidAmount is the sum of all Payment amounts.

type Invoice struct {
	ID             string        `json:"id"`
	InvoiceNumber  string        `json:"invoice_number"`
	JobID          string        `json:"job_id"`
	Status         InvoiceStatus `json:"status"`
	Items          []InvoiceItem `json:"items"`
	Subtotal       float64       `json:"subtotal"`
	TaxRate        float64       `json:"tax_rate"`
	TaxAmount      float64       `json:"tax_amount"`
	DiscountAmount float64       `json:"discount_amount"`
	TotalAmount    float64       `json:"total_amount"`
	PaidAmount     float64       `json:"paid_amount"`
	BalanceAmount  float64       `json:"balance_amount"`
	DueDate        *time.Time    `json:"due_date,omitempty"`
	Notes          string        `json:"notes,omitempty"`
	Terms          string        `json:"terms,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
