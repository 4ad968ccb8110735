package request

import (
	"testing"

	"reparotec/internal/domain/entities"
)

func TestQuoteResponseRequest_ResolveResponse(t *testing.T) {
	r := QuoteResponseRequest{Response: " accepted "}
	if got := r.ResolveResponse(); got != entities.QuoteResponseAccepted {
		t.Fatalf("expected ACCEPTED, got %q", got)
	}
}

func TestIssueQuoteRequest_ToItems(t *testing.T) {
	r := IssueQuoteRequest{
		JobID: "j-1",
		Items: []QuoteItemRequest{
			{Description: "Diagnosis", Quantity: 1, UnitPrice: 40},
			{Description: "Thermostat", Quantity: 1, UnitPrice: 120},
		},
	}
	items := r.ToItems()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Description != "Diagnosis" || items[1].UnitPrice != 120 {
		t.Fatalf("unexpected items: %+v", items)
	}
}
