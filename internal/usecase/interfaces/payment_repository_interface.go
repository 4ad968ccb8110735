package interfaces

import (
	"context"
	"reparotec/internal/domain/entities"
)

// IPaymentRepository reads the payment ledger. Writes happen only through
// IInvoiceRepository.ApplyPayment; payments are never mutated or deleted.

type IPaymentRepository interface {
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error)
}
