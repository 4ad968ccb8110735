package interfaces

import (
	"context"
	"reparotec/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for Customer.
//
// Public intake resolves the customer by phone first, then email, creating a
// new record only when neither matches.

type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	GetByPhone(ctx context.Context, phone string) (entities.Customer, error)
	GetByEmail(ctx context.Context, email string) (entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
}
