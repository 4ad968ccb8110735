package interfaces

import (
	"context"
	"reparotec/internal/domain/entities"
)

// IDocumentRenderer turns quote/invoice data into a customer-facing binary
// document (PDF). The core only supplies the data shape.
type IDocumentRenderer interface {
	RenderQuote(ctx context.Context, q entities.Quote, job entities.Job, customer entities.Customer) ([]byte, error)
	RenderInvoice(ctx context.Context, inv entities.Invoice, job entities.Job, customer entities.Customer) ([]byte, error)
}
