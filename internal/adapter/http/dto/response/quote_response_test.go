package response

import (
	"testing"

	"reparotec/internal/domain/entities"
)

func TestFromQuoteWithEmail(t *testing.T) {
	q := entities.Quote{
		ID:          "q-1",
		QuoteNumber: "JOB-00042-Q",
		Status:      entities.QuoteStatusSent,
		Items: []entities.QuoteItem{
			{Description: "Thermostat", Quantity: 1, UnitPrice: 120},
		},
		Subtotal:    120,
		TaxRate:     15,
		TaxAmount:   18,
		TotalAmount: 138,
	}

	got := FromQuoteWithEmail(q, true)
	if got.QuoteNumber != "JOB-00042-Q" || !got.EmailSent {
		t.Fatalf("unexpected response: %+v", got)
	}
	if len(got.Items) != 1 || got.Items[0].LineTotal != 120 {
		t.Fatalf("unexpected items: %+v", got.Items)
	}

	plain := FromQuote(q)
	if plain.EmailSent {
		t.Fatalf("expected email_sent false on plain mapping")
	}
}
