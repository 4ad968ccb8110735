package response

import (
	"time"

	"reparotec/internal/domain/entities"
)

type InvoiceItemResponse struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

type InvoiceResponse struct {
	ID             string                `json:"id"`
	InvoiceNumber  string                `json:"invoice_number"`
	JobID          string                `json:"job_id"`
	Status         string                `json:"status"`
	Items          []InvoiceItemResponse `json:"items"`
	Subtotal       float64               `json:"subtotal"`
	TaxRate        float64               `json:"tax_rate"`
	TaxAmount      float64               `json:"tax_amount"`
	DiscountAmount float64               `json:"discount_amount"`
	TotalAmount    float64               `json:"total_amount"`
	PaidAmount     float64               `json:"paid_amount"`
	BalanceAmount  float64               `json:"balance_amount"`
	DueDate        *time.Time            `json:"due_date,omitempty"`
	Notes          string                `json:"notes,omitempty"`
	Terms          string                `json:"terms,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, InvoiceItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal(),
		})
	}
	return InvoiceResponse{
		ID:             inv.ID,
		InvoiceNumber:  inv.InvoiceNumber,
		JobID:          inv.JobID,
		Status:         string(inv.Status),
		Items:          items,
		Subtotal:       inv.Subtotal,
		TaxRate:        inv.TaxRate,
		TaxAmount:      inv.TaxAmount,
		DiscountAmount: inv.DiscountAmount,
		TotalAmount:    inv.TotalAmount,
		PaidAmount:     inv.PaidAmount,
		BalanceAmount:  inv.BalanceAmount,
		DueDate:        inv.DueDate,
		Notes:          inv.Notes,
		Terms:          inv.Terms,
		CreatedAt:      inv.CreatedAt,
		UpdatedAt:      inv.UpdatedAt,
	}
}

type PaymentResponse struct {
	ID               string    `json:"id"`
	InvoiceID        string    `json:"invoice_id"`
	Amount           float64   `json:"amount"`
	Method           string    `json:"method"`
	Date             time.Time `json:"date"`
	Reference        string    `json:"reference,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	GatewayPaymentID string    `json:"gateway_payment_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:               p.ID,
		InvoiceID:        p.InvoiceID,
		Amount:           p.Amount,
		Method:           string(p.Method),
		Date:             p.Date,
		Reference:        p.Reference,
		Notes:            p.Notes,
		GatewayPaymentID: p.GatewayPaymentID,
		CreatedAt:        p.CreatedAt,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}

// ApplyPaymentResponse pairs the created ledger entry with the invoice state
// it produced.
type ApplyPaymentResponse struct {
	Payment PaymentResponse `json:"payment"`
	Invoice InvoiceResponse `json:"invoice"`
}
