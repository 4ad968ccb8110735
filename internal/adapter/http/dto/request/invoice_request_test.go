package request

import (
	"testing"
	"time"

	"reparotec/internal/domain/entities"
)

func TestApplyPaymentRequest_ToInput(t *testing.T) {
	when := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	r := ApplyPaymentRequest{
		Amount:    50,
		Method:    " cash ",
		Date:      &when,
		Reference: "receipt-7",
	}
	in := r.ToInput()
	if in.Method != entities.PaymentMethodCash {
		t.Fatalf("expected CASH, got %q", in.Method)
	}
	if !in.Date.Equal(when) {
		t.Fatalf("expected %v, got %v", when, in.Date)
	}

	r2 := ApplyPaymentRequest{Amount: 50, Method: "PIX"}
	in2 := r2.ToInput()
	if !in2.Date.IsZero() {
		t.Fatalf("expected zero date when omitted, got %v", in2.Date)
	}
}

func TestUpdateInvoiceRequest_ToInput(t *testing.T) {
	status := " cancelled "
	r := UpdateInvoiceRequest{Status: &status}
	in := r.ToInput()
	if in.Status == nil || *in.Status != entities.InvoiceStatusCancelled {
		t.Fatalf("expected CANCELLED, got %v", in.Status)
	}

	r2 := UpdateInvoiceRequest{}
	if r2.ToInput().Status != nil {
		t.Fatalf("expected nil status when omitted")
	}
}

func TestCreateInvoiceRequest_ToItems(t *testing.T) {
	r := CreateInvoiceRequest{
		JobID: "j-1",
		Items: []InvoiceItemRequest{
			{Description: "Compressor", Quantity: 1, UnitPrice: 300},
			{Description: "Labor", Quantity: 2, UnitPrice: 80},
		},
	}
	items := r.ToItems()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[1].Quantity != 2 || items[1].UnitPrice != 80 {
		t.Fatalf("unexpected item: %+v", items[1])
	}
}
