package interfaces

import (
	"context"
	"reparotec/internal/domain/entities"
)

// ISettingsProvider supplies the shop configuration. It is consulted on every
// operation; implementations must not assume callers cache the result.
type ISettingsProvider interface {
	Get(ctx context.Context) (entities.BillingSettings, error)
}
