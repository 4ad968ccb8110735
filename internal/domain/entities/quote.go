package entities

import "time"

// QuoteStatus represents the lifecycle of a priced proposal.
//
// DRAFT -> SENT -> {ACCEPTED, REJECTED, EXPIRED}; ACCEPTED -> CONVERTED_TO_INVOICE.
// REJECTED, EXPIRED and CONVERTED_TO_INVOICE are terminal.

type QuoteStatus string

const (
	QuoteStatusDraft              QuoteStatus = "DRAFT"
	QuoteStatusSent               QuoteStatus = "SENT"
	QuoteStatusAccepted           QuoteStatus = "ACCEPTED"
	QuoteStatusRejected           QuoteStatus = "REJECTED"
	QuoteStatusExpired            QuoteStatus = "EXPIRED"
	QuoteStatusConvertedToInvoice QuoteStatus = "CONVERTED_TO_INVOICE"
)

type QuoteResponse string

const (
	QuoteResponseAccepted QuoteResponse = "ACCEPTED"
	QuoteResponseRejected QuoteResponse = "REJECTED"
)

type QuoteItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

func (i QuoteItem) LineTotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// Quote is a priced proposal tied to exactly one job. Its number derives from
// the job number ("JOB-00042" -> "JOB-00042-Q").
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
//
// ReminderCount only increases; reminders are sent only while the quote is
// SENT, still valid and below the configured maximum.

type Quote struct {
	ID                   string        `json:"id"`
	QuoteNumber          string        `json:"quote_number"`
	JobID                string        `json:"job_id"`
	Status               QuoteStatus   `json:"status"`
	Items                []QuoteItem   `json:"items"`
	Subtotal             float64       `json:"subtotal"`
	TaxRate              float64       `json:"tax_rate"`
	TaxAmount            float64       `json:"tax_amount"`
	TotalAmount          float64       `json:"total_amount"`
	IssueDate            time.Time     `json:"issue_date"`
	ValidUntil           time.Time     `json:"valid_until"`
	CustomerResponse     QuoteResponse `json:"customer_response,omitempty"`
	CustomerResponseDate *time.Time    `json:"customer_response_date,omitempty"`
	RejectionReason      string        `json:"rejection_reason,omitempty"`
	ReminderCount        int           `json:"reminder_count"`
	LastReminderSent     *time.Time    `json:"last_reminder_sent,omitempty"`
	ConvertedToInvoiceID string        `json:"converted_to_invoice_id,omitempty"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}
