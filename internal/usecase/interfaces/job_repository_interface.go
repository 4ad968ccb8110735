package interfaces

import (
	"context"
	"reparotec/internal/domain/entities"
)

// IJobRepository abstracts DynamoDB persistence for Job and its append-only
// status history.
//
// The lifecycle manager must be able to:
//   - create a job with a pre-assigned sequential number
//   - update job state (status, stamps, diagnostics)
//   - append a history row per transition and read the trail back in order

type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	GetByNumber(ctx context.Context, jobNumber string) (entities.Job, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Job, error)
	ListActive(ctx context.Context) ([]entities.Job, error)
	Update(ctx context.Context, j entities.Job) (entities.Job, error)
	AppendHistory(ctx context.Context, h entities.JobStatusHistory) (entities.JobStatusHistory, error)
	ListHistory(ctx context.Context, jobID string) ([]entities.JobStatusHistory, error)
}
