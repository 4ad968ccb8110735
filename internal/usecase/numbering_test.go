package usecase

import (
	"context"
	"errors"
	"testing"

	mock_interfaces "reparotec/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNumberingService_NextJobNumber(t *testing.T) {
	t.Run("formats with prefix and zero padding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		svc := NewNumberingService(seq)

		seq.EXPECT().Next(gomock.Any(), SequenceJobs).Return(int64(42), nil)

		got, err := svc.NextJobNumber(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "JOB-00042" {
			t.Fatalf("expected JOB-00042, got %s", got)
		}
	})

	t.Run("large numbers widen past the padding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		svc := NewNumberingService(seq)

		seq.EXPECT().Next(gomock.Any(), SequenceJobs).Return(int64(123456), nil)

		got, err := svc.NextJobNumber(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "JOB-123456" {
			t.Fatalf("expected JOB-123456, got %s", got)
		}
	})

	t.Run("propagates sequence errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		svc := NewNumberingService(seq)

		seq.EXPECT().Next(gomock.Any(), SequenceJobs).Return(int64(0), errors.New("db"))

		if _, err := svc.NextJobNumber(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("nil sequence repository", func(t *testing.T) {
		svc := NewNumberingService(nil)
		if _, err := svc.NextJobNumber(context.Background()); !errors.Is(err, ErrSequenceUnavailable) {
			t.Fatalf("expected ErrSequenceUnavailable, got %v", err)
		}
	})
}

func TestNumberingService_NextInvoiceNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	seq := mock_interfaces.NewMockISequenceRepository(ctrl)
	svc := NewNumberingService(seq)

	seq.EXPECT().Next(gomock.Any(), SequenceInvoices).Return(int64(7), nil)

	got, err := svc.NextInvoiceNumber(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "INV-00007" {
		t.Fatalf("expected INV-00007, got %s", got)
	}
}

func TestQuoteNumberFor(t *testing.T) {
	if got := QuoteNumberFor("JOB-00042"); got != "JOB-00042-Q" {
		t.Fatalf("expected JOB-00042-Q, got %s", got)
	}
	if got := QuoteNumberFor("  JOB-00001  "); got != "JOB-00001-Q" {
		t.Fatalf("expected trimmed JOB-00001-Q, got %s", got)
	}
}
