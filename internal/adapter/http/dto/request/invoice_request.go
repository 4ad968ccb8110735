package request

import (
	"strings"
	"time"

	"reparotec/internal/domain/entities"
	"reparotec/internal/usecase"
)

type InvoiceItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price"`
}

type CreateInvoiceRequest struct {
	JobID    string               `json:"job_id" binding:"required"`
	Items    []InvoiceItemRequest `json:"items" binding:"required"`
	Discount float64              `json:"discount"`
}

func (r CreateInvoiceRequest) ToItems() []entities.InvoiceItem {
	items := make([]entities.InvoiceItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.InvoiceItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return items
}

type ApplyPaymentRequest struct {
	Amount    float64    `json:"amount" binding:"required"`
	Method    string     `json:"method" binding:"required"`
	Date      *time.Time `json:"date"`
	Reference string     `json:"reference"`
	Notes     string     `json:"notes"`

	// CardToken and PayerEmail are required by the gateway for CARD_ONLINE.
	CardToken  string `json:"card_token"`
	PayerEmail string `json:"payer_email"`
}

func (r ApplyPaymentRequest) ToInput() usecase.ApplyPaymentInput {
	in := usecase.ApplyPaymentInput{
		Amount:     r.Amount,
		Method:     entities.PaymentMethod(strings.ToUpper(strings.TrimSpace(r.Method))),
		Reference:  r.Reference,
		Notes:      r.Notes,
		CardToken:  strings.TrimSpace(r.CardToken),
		PayerEmail: strings.TrimSpace(r.PayerEmail),
	}
	if r.Date != nil {
		in.Date = *r.Date
	}
	return in
}

type UpdateInvoiceRequest struct {
	Status  *string    `json:"status"`
	DueDate *time.Time `json:"due_date"`
	Notes   *string    `json:"notes"`
	Terms   *string    `json:"terms"`
}

func (r UpdateInvoiceRequest) ToInput() usecase.UpdateInvoiceInput {
	in := usecase.UpdateInvoiceInput{
		DueDate: r.DueDate,
		Notes:   r.Notes,
		Terms:   r.Terms,
	}
	if r.Status != nil {
		s := entities.InvoiceStatus(strings.ToUpper(strings.TrimSpace(*r.Status)))
		in.Status = &s
	}
	return in
}
