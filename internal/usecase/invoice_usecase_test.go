package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"reparotec/internal/domain/entities"
	mock_interfaces "reparotec/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type invoiceUseCaseMocks struct {
	repo        *mock_interfaces.MockIInvoiceRepository
	paymentRepo *mock_interfaces.MockIPaymentRepository
	jobRepo     *mock_interfaces.MockIJobRepository
	seq         *mock_interfaces.MockISequenceRepository
	settings    *mock_interfaces.MockISettingsProvider
	gateway     *mock_interfaces.MockIPaymentGateway
}

func newInvoiceUseCaseForTest(t *testing.T) (*InvoiceUseCase, invoiceUseCaseMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := invoiceUseCaseMocks{
		repo:        mock_interfaces.NewMockIInvoiceRepository(ctrl),
		paymentRepo: mock_interfaces.NewMockIPaymentRepository(ctrl),
		jobRepo:     mock_interfaces.NewMockIJobRepository(ctrl),
		seq:         mock_interfaces.NewMockISequenceRepository(ctrl),
		settings:    mock_interfaces.NewMockISettingsProvider(ctrl),
		gateway:     mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	uc := NewInvoiceUseCase(m.repo, m.paymentRepo, m.jobRepo, NewNumberingService(m.seq), m.settings, m.gateway)
	return uc, m
}

func TestInvoiceUseCase_CreateForJob(t *testing.T) {
	items := []entities.InvoiceItem{
		{Description: "Compressor", Quantity: 1, UnitPrice: 80},
		{Description: "Labor", Quantity: 2, UnitPrice: 10},
	}

	t.Run("empty items", func(t *testing.T) {
		uc, _ := newInvoiceUseCaseForTest(t)
		_, err := uc.CreateForJob(context.Background(), "j-1", nil, 0)
		if !errors.Is(err, ErrInvalidInvoiceItems) {
			t.Fatalf("expected ErrInvalidInvoiceItems, got %v", err)
		}
	})

	t.Run("job not found", func(t *testing.T) {
		uc, m := newInvoiceUseCaseForTest(t)
		m.jobRepo.EXPECT().GetByID(gomock.Any(), "j-missing").Return(entities.Job{}, nil)

		_, err := uc.CreateForJob(context.Background(), "j-missing", items, 0)
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("one invoice per job", func(t *testing.T) {
		uc, m := newInvoiceUseCaseForTest(t)
		m.jobRepo.EXPECT().GetByID(gomock.Any(), "j-1").Return(entities.Job{ID: "j-1"}, nil)
		m.repo.EXPECT().GetByJobID(gomock.Any(), "j-1").Return(entities.Invoice{ID: "inv-existing"}, nil)

		_, err := uc.CreateForJob(context.Background(), "j-1", items, 0)
		if !errors.Is(err, ErrInvoiceAlreadyExists) {
			t.Fatalf("expected ErrInvoiceAlreadyExists, got %v", err)
		}
	})

	t.Run("discount larger than the total", func(t *testing.T) {
		uc, m := newInvoiceUseCaseForTest(t)
		m.jobRepo.EXPECT().GetByID(gomock.Any(), "j-1").Return(entities.Job{ID: "j-1"}, nil)
		m.repo.EXPECT().GetByJobID(gomock.Any(), "j-1").Return(entities.Invoice{}, nil)
		m.settings.EXPECT().Get(gomock.Any()).Return(entities.BillingSettings{TaxRate: 15}, nil)

		_, err := uc.CreateForJob(context.Background(), "j-1", items, 500)
		if !errors.Is(err, ErrInvalidDiscount) {
			t.Fatalf("expected ErrInvalidDiscount, got %v", err)
		}
	})

	t.Run("totals from the configured tax rate", func(t *testing.T) {
		uc, m := newInvoiceUseCaseForTest(t)
		m.jobRepo.EXPECT().GetByID(gomock.Any(), "j-1").Return(entities.Job{ID: "j-1"}, nil)
		m.repo.EXPECT().GetByJobID(gomock.Any(), "j-1").Return(entities.Invoice{}, nil)
		m.settings.EXPECT().Get(gomock.Any()).Return(entities.BillingSettings{TaxRate: 15}, nil)
		m.seq.EXPECT().Next(gomock.Any(), SequenceInvoices).Return(int64(12), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Invoice{})).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.InvoiceNumber != "INV-00012" || inv.Status != entities.InvoiceStatusDraft {
					t.Fatalf("unexpected invoice identity: %+v", inv)
				}
				if inv.Subtotal != 100 || inv.TaxAmount != 15 || inv.TotalAmount != 115 {
					t.Fatalf("unexpected totals: subtotal=%.2f tax=%.2f total=%.2f", inv.Subtotal, inv.TaxAmount, inv.TotalAmount)
				}
				if inv.PaidAmount != 0 || inv.BalanceAmount != 115 {
					t.Fatalf("unexpected ledger state: paid=%.2f balance=%.2f", inv.PaidAmount, inv.BalanceAmount)
				}
				return inv, nil
			},
		)

		if _, err := uc.CreateForJob(context.Background(), "j-1", items, 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestInvoiceUseCase_ApplyPayment(t *testing.T) {
	openInvoice := entities.Invoice{
		ID:            "inv-1",
		InvoiceNumber: "INV-00012",
		Status:        entities.InvoiceStatusSent,
		TotalAmount:   115,
		PaidAmount:    0,
		BalanceAmount: 115,
	}

	t.Run("non-positive amount", func(t *testing.T) {
		uc, _ := newInvoiceUseCaseForTest(t)
		_, _, err := uc.ApplyPayment(context.Background(), "inv-1", ApplyPaymentInput{Amount: 0, Method: entities.PaymentMethodCash})
		if !errors.Is(err, ErrInvalidPaymentAmount) {
			t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
		}
	})

	t.Run("unknown method", func(t *testing.T) {
		uc, _ := newInvoiceUseCaseForTest(t)
		_, _, err := uc.ApplyPayment(context.Background(), "inv-1", ApplyPaymentInput{Amount: 10, Method: "CHEQUE"})
		if !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})

	t.Run("overdraw rejected", func(t *testing.T) {
		uc, m := newInvoiceUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(openInvoice, nil)

		_, _, err := uc.ApplyPayment(context.Background(), "inv-1", ApplyPaymentInput{Amount: 200, Method: entities.PaymentMethodCash})
		if !errors.Is(err, ErrInvalidPaymentAmount) {
			t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
		}
	})

	t.Run("cancelled invoice rejects payments", func(t *testing.T) {
		uc, m := newInvoiceUseCaseForTest(t)
		cancelled := openInvoice
		cancelled.Status = entities.InvoiceStatusCancelled
		m.repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(cancelled, nil)

		_, _, err := uc.ApplyPayment(context.Background(), "inv-1", ApplyPaymentInput{Amount: 10, Method: entities.PaymentMethodCash})
		if !errors.Is(err, ErrInvoiceCancelled) {
			t.Fatalf("expected ErrInvoiceCancelled, got %v", err)
		}
	})

	t.Run("partial payment derives PARTIALLY_PAID", func(t *testing.T) {
		uc, m := newInvoiceUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(openInvoice, nil)
		m.repo.EXPECT().ApplyPayment(gomock.Any(), gomock.Any(), 0.0, gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice, expectedPaid float64, p entities.Payment) (entities.Invoice, error) {
				if p.Amount != 50 || p.Method != entities.PaymentMethodCash {
					t.Fatalf("unexpected payment: %+v", p)
				}
				if inv.PaidAmount != 50 || inv.BalanceAmount != 65 || inv.Status != entities.InvoiceStatusPartiallyPaid {
					t.Fatalf("unexpected invoice state: paid=%.2f balance=%.2f status=%s", inv.PaidAmount, inv.BalanceAmount, inv.Status)
				}
				return inv, nil
			},
		)

		payment, inv, err := uc.ApplyPayment(context.Background(), "inv-1", ApplyPaymentInput{Amount: 50, Method: entities.PaymentMethodCash})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payment.InvoiceID != "inv-1" || inv.Status != entities.InvoiceStatusPartiallyPaid {
			t.Fatalf("unexpected result: payment=%+v invoice=%+v", payment, inv)
		}
	})

	t.Run("final payment derives PAID with zero balance", func(t *testing.T) {
		uc, m := newInvoiceUseCaseForTest(t)
		partiallyPaid := openInvoice
		partiallyPaid.Status = entities.InvoiceStatusPartiallyPaid
		partiallyPaid.PaidAmount = 50
		partiallyPaid.BalanceAmount = 65

		m.repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(partiallyPaid, nil)
		m.repo.EXPECT().ApplyPayment(gomock.Any(), gomock.Any(), 50.0, gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice, expectedPaid float64, p entities.Payment) (entities.Invoice, error) {
				if inv.PaidAmount != 115 || inv.BalanceAmount != 0 || inv.Status != entities.InvoiceStatusPaid {
					t.Fatalf("unexpected invoice state: paid=%.2f balance=%.2f status=%s", inv.PaidAmount, inv.BalanceAmount, inv.Status)
				}
				return inv, nil
			},
		)

		_, inv, err := uc.ApplyPayment(context.Background(), "inv-1", ApplyPaymentInput{Amount: 65, Method: entities.PaymentMethodPix})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.Status != entities.InvoiceStatusPaid {
			t.Fatalf("expected PAID, got %s", inv.Status)
		}
	})

	t.Run("lost race reloads and retries", func(t *testing.T) {
		uc, m := newInvoiceUseCaseForTest(t)

		// First read sees a clean invoice, but the conditional write loses.
		m.repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(openInvoice, nil)
		m.repo.EXPECT().ApplyPayment(gomock.Any(), gomock.Any(), 0.0, gomock.Any()).Return(entities.Invoice{}, nil)

		// Second read sees the concurrent payment already applied.
		raced := openInvoice
		raced.Status = entities.InvoiceStatusPartiallyPaid
		raced.PaidAmount = 30
		raced.BalanceAmount = 85
		m.repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(raced, nil)
		m.repo.EXPECT().ApplyPayment(gomock.Any(), gomock.Any(), 30.0, gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice, expectedPaid float64, p entities.Payment) (entities.Invoice, error) {
				if inv.PaidAmount != 80 || inv.BalanceAmount != 35 {
					t.Fatalf("retry did not revalidate: paid=%.2f balance=%.2f", inv.PaidAmount, inv.BalanceAmount)
				}
				return inv, nil
			},
		)

		_, _, err := uc.ApplyPayment(context.Background(), "inv-1", ApplyPaymentInput{Amount: 50, Method: entities.PaymentMethodCard})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("conflict after exhausting retries", func(t *testing.T) {
		uc, m := newInvoiceUseCaseForTest(t)

		m.repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(openInvoice, nil).Times(maxPaymentAttempts)
		m.repo.EXPECT().ApplyPayment(gomock.Any(), gomock.Any(), 0.0, gomock.Any()).Return(entities.Invoice{}, nil).Times(maxPaymentAttempts)

		_, _, err := uc.ApplyPayment(context.Background(), "inv-1", ApplyPaymentInput{Amount: 50, Method: entities.PaymentMethodCash})
		if !errors.Is(err, ErrPaymentConflict) {
			t.Fatalf("expected ErrPaymentConflict, got %v", err)
		}
	})

	t.Run("online method charges the gateway once", func(t *testing.T) {
		uc, m := newInvoiceUseCaseForTest(t)

		m.repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(openInvoice, nil).Times(2)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("invalid gateway payload: %v", err)
				}
				if req["transaction_amount"] != 115.0 || req["external_reference"] != "inv-1" {
					t.Fatalf("unexpected gateway payload: %v", req)
				}
				return "mp-1", "approved", json.RawMessage(`{"id":1}`), nil
			},
		)
		// First ledger write loses the race; the retry must not re-charge.
		m.repo.EXPECT().ApplyPayment(gomock.Any(), gomock.Any(), 0.0, gomock.Any()).Return(entities.Invoice{}, nil)
		m.repo.EXPECT().ApplyPayment(gomock.Any(), gomock.Any(), 0.0, gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice, expectedPaid float64, p entities.Payment) (entities.Invoice, error) {
				if p.GatewayPaymentID != "mp-1" || len(p.GatewayPayloadRaw) == 0 {
					t.Fatalf("expected gateway data on the payment: %+v", p)
				}
				return inv, nil
			},
		)

		_, _, err := uc.ApplyPayment(context.Background(), "inv-1", ApplyPaymentInput{
			Amount:     115,
			Method:     entities.PaymentMethodCardOnline,
			CardToken:  "tok-1",
			PayerEmail: "maria@example.com",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gateway failure aborts before the ledger", func(t *testing.T) {
		uc, m := newInvoiceUseCaseForTest(t)

		m.repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(openInvoice, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("declined"))

		_, _, err := uc.ApplyPayment(context.Background(), "inv-1", ApplyPaymentInput{Amount: 115, Method: entities.PaymentMethodCardOnline})
		if err == nil || err.Error() != "declined" {
			t.Fatalf("expected declined error, got %v", err)
		}
	})
}

func TestInvoiceUseCase_UpdateInvoice(t *testing.T) {
	statusOf := func(s entities.InvoiceStatus) *entities.InvoiceStatus { return &s }

	t.Run("derived statuses rejected", func(t *testing.T) {
		uc, _ := newInvoiceUseCaseForTest(t)
		_, err := uc.UpdateInvoice(context.Background(), "inv-1", UpdateInvoiceInput{Status: statusOf(entities.InvoiceStatusPaid)})
		if !errors.Is(err, ErrDerivedInvoiceStatus) {
			t.Fatalf("expected ErrDerivedInvoiceStatus, got %v", err)
		}
	})

	t.Run("paid invoice only cancels", func(t *testing.T) {
		uc, m := newInvoiceUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusPaid}, nil)

		_, err := uc.UpdateInvoice(context.Background(), "inv-1", UpdateInvoiceInput{Status: statusOf(entities.InvoiceStatusSent)})
		if !errors.Is(err, ErrInvoicePaid) {
			t.Fatalf("expected ErrInvoicePaid, got %v", err)
		}
	})

	t.Run("paid invoice accepts cancellation", func(t *testing.T) {
		uc, m := newInvoiceUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusPaid}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.Status != entities.InvoiceStatusCancelled {
					t.Fatalf("expected CANCELLED, got %s", inv.Status)
				}
				return inv, nil
			},
		)

		if _, err := uc.UpdateInvoice(context.Background(), "inv-1", UpdateInvoiceInput{Status: statusOf(entities.InvoiceStatusCancelled)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestInvoiceUseCase_DeleteInvoice(t *testing.T) {
	t.Run("blocked by existing payments", func(t *testing.T) {
		uc, m := newInvoiceUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1"}, nil)
		m.paymentRepo.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return([]entities.Payment{{ID: "p-1"}}, nil)

		if err := uc.DeleteInvoice(context.Background(), "inv-1"); !errors.Is(err, ErrInvoiceHasPayments) {
			t.Fatalf("expected ErrInvoiceHasPayments, got %v", err)
		}
	})

	t.Run("deletes a paymentless invoice", func(t *testing.T) {
		uc, m := newInvoiceUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1"}, nil)
		m.paymentRepo.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return(nil, nil)
		m.repo.EXPECT().Delete(gomock.Any(), "inv-1").Return(nil)

		if err := uc.DeleteInvoice(context.Background(), "inv-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
