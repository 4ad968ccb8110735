package response

import (
	"time"

	"reparotec/internal/domain/entities"
)

type QuoteItemResponse struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

type QuoteResponse struct {
	ID                   string              `json:"id"`
	QuoteNumber          string              `json:"quote_number"`
	JobID                string              `json:"job_id"`
	Status               string              `json:"status"`
	Items                []QuoteItemResponse `json:"items"`
	Subtotal             float64             `json:"subtotal"`
	TaxRate              float64             `json:"tax_rate"`
	TaxAmount            float64             `json:"tax_amount"`
	TotalAmount          float64             `json:"total_amount"`
	IssueDate            time.Time           `json:"issue_date"`
	ValidUntil           time.Time           `json:"valid_until"`
	CustomerResponse     string              `json:"customer_response,omitempty"`
	CustomerResponseDate *time.Time          `json:"customer_response_date,omitempty"`
	RejectionReason      string              `json:"rejection_reason,omitempty"`
	ReminderCount        int                 `json:"reminder_count"`
	LastReminderSent     *time.Time          `json:"last_reminder_sent,omitempty"`
	ConvertedToInvoiceID string              `json:"converted_to_invoice_id,omitempty"`
	CreatedAt            time.Time           `json:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at"`

	// EmailSent reports whether the customer email went out on issue/reminder
	// operations; it is always false on plain reads.
	EmailSent bool `json:"email_sent,omitempty"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	items := make([]QuoteItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, QuoteItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal(),
		})
	}
	return QuoteResponse{
		ID:                   q.ID,
		QuoteNumber:          q.QuoteNumber,
		JobID:                q.JobID,
		Status:               string(q.Status),
		Items:                items,
		Subtotal:             q.Subtotal,
		TaxRate:              q.TaxRate,
		TaxAmount:            q.TaxAmount,
		TotalAmount:          q.TotalAmount,
		IssueDate:            q.IssueDate,
		ValidUntil:           q.ValidUntil,
		CustomerResponse:     string(q.CustomerResponse),
		CustomerResponseDate: q.CustomerResponseDate,
		RejectionReason:      q.RejectionReason,
		ReminderCount:        q.ReminderCount,
		LastReminderSent:     q.LastReminderSent,
		ConvertedToInvoiceID: q.ConvertedToInvoiceID,
		CreatedAt:            q.CreatedAt,
		UpdatedAt:            q.UpdatedAt,
	}
}

func FromQuoteWithEmail(q entities.Quote, emailSent bool) QuoteResponse {
	out := FromQuote(q)
	out.EmailSent = emailSent
	return out
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
