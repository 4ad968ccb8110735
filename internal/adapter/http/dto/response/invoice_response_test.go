package response

import (
	"testing"

	"reparotec/internal/domain/entities"
)

func TestFromInvoice(t *testing.T) {
	inv := entities.Invoice{
		ID:            "inv-1",
		InvoiceNumber: "INV-00012",
		JobID:         "j-1",
		Status:        entities.InvoiceStatusPartiallyPaid,
		Items: []entities.InvoiceItem{
			{Description: "Labor", Quantity: 2, UnitPrice: 50},
		},
		Subtotal:      100,
		TaxRate:       15,
		TaxAmount:     15,
		TotalAmount:   115,
		PaidAmount:    50,
		BalanceAmount: 65,
	}

	got := FromInvoice(inv)
	if got.Status != "PARTIALLY_PAID" {
		t.Fatalf("expected PARTIALLY_PAID, got %q", got.Status)
	}
	if len(got.Items) != 1 || got.Items[0].LineTotal != 100 {
		t.Fatalf("unexpected items: %+v", got.Items)
	}
	if got.BalanceAmount != 65 {
		t.Fatalf("expected balance 65, got %v", got.BalanceAmount)
	}
}

func TestFromPayments(t *testing.T) {
	payments := []entities.Payment{
		{ID: "p-1", InvoiceID: "inv-1", Amount: 50, Method: entities.PaymentMethodCash},
		{ID: "p-2", InvoiceID: "inv-1", Amount: 65, Method: entities.PaymentMethodPix, GatewayPaymentID: "mp-9"},
	}

	got := FromPayments(payments)
	if len(got) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(got))
	}
	if got[0].Method != "CASH" || got[1].GatewayPaymentID != "mp-9" {
		t.Fatalf("unexpected payments: %+v", got)
	}
}
