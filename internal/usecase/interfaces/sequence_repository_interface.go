package interfaces

import "context"

// ISequenceRepository hands out strictly increasing integers per named
// sequence. The DynamoDB implementation uses an atomic ADD update, so two
// concurrent callers can never observe the same value.

type ISequenceRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}
