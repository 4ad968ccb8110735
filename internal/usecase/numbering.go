package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"reparotec/internal/usecase/interfaces"
)

const (
	SequenceJobs     = "jobs"
	SequenceInvoices = "invoices"

	jobNumberPrefix     = "JOB"
	invoiceNumberPrefix = "INV"
	quoteNumberSuffix   = "-Q"
)

var ErrSequenceUnavailable = errors.New("sequence repository not configured")

// NumberingService issues the human-readable identifiers printed on documents
// (JOB-00001, INV-00001). Numbers come from an atomic per-name counter, so
// concurrent creations can never collide; quote numbers derive from the
// parent job.

type NumberingService struct {
	seq interfaces.ISequenceRepository
}

func NewNumberingService(seq interfaces.ISequenceRepository) *NumberingService {
	return &NumberingService{seq: seq}
}

func (s *NumberingService) NextJobNumber(ctx context.Context) (string, error) {
	return s.next(ctx, SequenceJobs, jobNumberPrefix)
}

func (s *NumberingService) NextInvoiceNumber(ctx context.Context) (string, error) {
	return s.next(ctx, SequenceInvoices, invoiceNumberPrefix)
}

func (s *NumberingService) next(ctx context.Context, sequence, prefix string) (string, error) {
	if s == nil || s.seq == nil {
		return "", ErrSequenceUnavailable
	}
	n, err := s.seq.Next(ctx, sequence)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%05d", prefix, n), nil
}

// QuoteNumberFor derives the quote identifier from its job number.
func QuoteNumberFor(jobNumber string) string {
	return strings.TrimSpace(jobNumber) + quoteNumberSuffix
}
