package interfaces

import (
	"context"
	"reparotec/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
}
