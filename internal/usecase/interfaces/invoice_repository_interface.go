package interfaces

import (
	"context"
	"reparotec/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// ApplyPayment writes the payment row and the recomputed invoice totals as a
// single DynamoDB transaction, conditioned on paid_amount still holding the
// value the caller read (expectedPaid). When another payment won the race the
// condition fails and the zero-value invoice is returned with a nil error;
// the use case reloads and retries.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	GetByJobID(ctx context.Context, jobID string) (entities.Invoice, error)
	Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	Delete(ctx context.Context, id string) error
	ApplyPayment(ctx context.Context, inv entities.Invoice, expectedPaid float64, p entities.Payment) (entities.Invoice, error)
}
