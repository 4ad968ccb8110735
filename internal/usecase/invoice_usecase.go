package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"reparotec/internal/domain/entities"
	"reparotec/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvalidInvoiceID     = errors.New("invalid invoice id")
	ErrInvalidInvoiceItems  = errors.New("invalid invoice items")
	ErrInvalidDiscount      = errors.New("invalid discount amount")
	ErrInvoiceAlreadyExists = errors.New("invoice already exists for this job")
	ErrInvoiceCancelled     = errors.New("invoice is cancelled")
	ErrInvoicePaid          = errors.New("invoice is paid and can only be cancelled")
	ErrInvoiceHasPayments   = errors.New("invoice has payments and cannot be deleted")
	ErrInvalidInvoiceStatus = errors.New("invalid invoice status")
	ErrDerivedInvoiceStatus = errors.New("paid statuses are derived from the balance, not set directly")
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive and at most the open balance")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrPaymentConflict      = errors.New("payment application conflicted with a concurrent payment")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrInvalidPaymentID     = errors.New("invalid payment id")
)

// maxPaymentAttempts bounds the compare-and-swap retry loop when concurrent
// payments race on the same invoice.
const maxPaymentAttempts = 3

type ApplyPaymentInput struct {
	Amount    float64
	Method    entities.PaymentMethod
	Date      time.Time
	Reference string
	Notes     string

	// CardToken and PayerEmail feed the gateway charge for online methods.
	CardToken  string
	PayerEmail string
}

type UpdateInvoiceInput struct {
	Status  *entities.InvoiceStatus
	DueDate *time.Time
	Notes   *string
	Terms   *string
}

// IInvoiceUseCase is the invoice and payment ledger.
//
//   - CreateForJob opens the single invoice a job may have
//   - ApplyPayment appends an immutable ledger entry and rederives status
//   - UpdateInvoice/DeleteInvoice enforce the paid/has-payments guards

type IInvoiceUseCase interface {
	CreateForJob(ctx context.Context, jobID string, items []entities.InvoiceItem, discount float64) (entities.Invoice, error)
	ApplyPayment(ctx context.Context, invoiceID string, in ApplyPaymentInput) (entities.Payment, entities.Invoice, error)
	UpdateInvoice(ctx context.Context, invoiceID string, in UpdateInvoiceInput) (entities.Invoice, error)
	DeleteInvoice(ctx context.Context, invoiceID string) error
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	GetByJobID(ctx context.Context, jobID string) (entities.Invoice, error)
	ListPayments(ctx context.Context, invoiceID string) ([]entities.Payment, error)
}

type InvoiceUseCase struct {
	repo        interfaces.IInvoiceRepository
	paymentRepo interfaces.IPaymentRepository
	jobRepo     interfaces.IJobRepository
	numbering   *NumberingService
	settings    interfaces.ISettingsProvider
	gateway     interfaces.IPaymentGateway
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	repo interfaces.IInvoiceRepository,
	paymentRepo interfaces.IPaymentRepository,
	jobRepo interfaces.IJobRepository,
	numbering *NumberingService,
	settings interfaces.ISettingsProvider,
	gateway interfaces.IPaymentGateway,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		repo:        repo,
		paymentRepo: paymentRepo,
		jobRepo:     jobRepo,
		numbering:   numbering,
		settings:    settings,
		gateway:     gateway,
	}
}

func (u *InvoiceUseCase) CreateForJob(ctx context.Context, jobID string, items []entities.InvoiceItem, discount float64) (entities.Invoice, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Invoice{}, ErrInvalidJobID
	}
	if len(items) == 0 {
		return entities.Invoice{}, ErrInvalidInvoiceItems
	}
	for _, it := range items {
		if strings.TrimSpace(it.Description) == "" || it.Quantity <= 0 || it.UnitPrice < 0 {
			return entities.Invoice{}, ErrInvalidInvoiceItems
		}
	}
	if discount < 0 {
		return entities.Invoice{}, ErrInvalidDiscount
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if job.ID == "" {
		return entities.Invoice{}, ErrJobNotFound
	}

	// Enforce: 1 invoice per job.
	if existing, err := u.repo.GetByJobID(ctx, jobID); err != nil {
		return entities.Invoice{}, err
	} else if existing.ID != "" {
		return entities.Invoice{}, ErrInvoiceAlreadyExists
	}

	settings, err := u.settings.Get(ctx)
	if err != nil {
		return entities.Invoice{}, err
	}

	subtotal := 0.0
	for _, it := range items {
		subtotal += it.LineTotal()
	}
	subtotal = roundMoney(subtotal)
	taxAmount := roundMoney(subtotal * settings.TaxRate / 100)
	discount = roundMoney(discount)
	total := roundMoney(subtotal + taxAmount - discount)
	if total < 0 {
		return entities.Invoice{}, ErrInvalidDiscount
	}

	number, err := u.numbering.NextInvoiceNumber(ctx)
	if err != nil {
		return entities.Invoice{}, err
	}

	now := time.Now().UTC()
	inv := entities.Invoice{
		ID:             uuid.NewString(),
		InvoiceNumber:  number,
		JobID:          jobID,
		Status:         entities.InvoiceStatusDraft,
		Items:          items,
		Subtotal:       subtotal,
		TaxRate:        settings.TaxRate,
		TaxAmount:      taxAmount,
		DiscountAmount: discount,
		TotalAmount:    total,
		PaidAmount:     0,
		BalanceAmount:  total,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	log.Printf("[invoice][usecase] invoice created invoice_id=%s invoice_number=%s job_id=%s total=%.2f", created.ID, created.InvoiceNumber, jobID, created.TotalAmount)
	return created, nil
}

// ApplyPayment appends a payment and rederives the invoice status.
//
// The balance check and the write must be consistent under concurrency: the
// repository persists the payment and the new totals in one transaction
// conditioned on the paid amount read here. A lost race returns a zero-value
// invoice and the loop revalidates against fresh state.
func (u *InvoiceUseCase) ApplyPayment(ctx context.Context, invoiceID string, in ApplyPaymentInput) (entities.Payment, entities.Invoice, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Payment{}, entities.Invoice{}, ErrInvalidInvoiceID
	}
	amount := roundMoney(in.Amount)
	if amount <= 0 {
		return entities.Payment{}, entities.Invoice{}, ErrInvalidPaymentAmount
	}
	if !in.Method.Valid() {
		return entities.Payment{}, entities.Invoice{}, ErrInvalidPaymentMethod
	}
	paymentDate := in.Date
	if paymentDate.IsZero() {
		paymentDate = time.Now().UTC()
	}

	charged := false
	var gatewayPaymentID string
	var gatewayPayload json.RawMessage

	for attempt := 1; attempt <= maxPaymentAttempts; attempt++ {
		inv, err := u.repo.GetByID(ctx, invoiceID)
		if err != nil {
			return entities.Payment{}, entities.Invoice{}, err
		}
		if inv.ID == "" {
			return entities.Payment{}, entities.Invoice{}, ErrInvoiceNotFound
		}
		if inv.Status == entities.InvoiceStatusCancelled {
			return entities.Payment{}, entities.Invoice{}, ErrInvoiceCancelled
		}
		if amount > inv.BalanceAmount+1e-9 {
			return entities.Payment{}, entities.Invoice{}, ErrInvalidPaymentAmount
		}

		// Charge the provider once, after validation and before the ledger
		// write. A later lost ledger race retries the write only.
		if in.Method.Online() && !charged {
			gatewayPaymentID, gatewayPayload, err = u.chargeGateway(ctx, inv, amount, in)
			if err != nil {
				return entities.Payment{}, entities.Invoice{}, err
			}
			charged = true
		}

		now := time.Now().UTC()
		p := entities.Payment{
			ID:                uuid.NewString(),
			InvoiceID:         inv.ID,
			Amount:            amount,
			Method:            in.Method,
			Date:              paymentDate,
			Reference:         strings.TrimSpace(in.Reference),
			Notes:             strings.TrimSpace(in.Notes),
			GatewayPaymentID:  gatewayPaymentID,
			GatewayPayloadRaw: gatewayPayload,
			CreatedAt:         now,
		}

		newPaid := roundMoney(inv.PaidAmount + amount)
		newBalance := roundMoney(inv.TotalAmount - newPaid)
		if moneyEquals(newBalance, 0) {
			newBalance = 0
		}

		updated := inv
		updated.PaidAmount = newPaid
		updated.BalanceAmount = newBalance
		updated.UpdatedAt = now
		switch {
		case newBalance == 0:
			updated.Status = entities.InvoiceStatusPaid
		case newBalance < inv.TotalAmount:
			updated.Status = entities.InvoiceStatusPartiallyPaid
		}

		result, err := u.repo.ApplyPayment(ctx, updated, inv.PaidAmount, p)
		if err != nil {
			return entities.Payment{}, entities.Invoice{}, err
		}
		if result.ID != "" {
			log.Printf("[invoice][usecase] payment applied invoice_id=%s payment_id=%s amount=%.2f balance=%.2f status=%s", inv.ID, p.ID, amount, result.BalanceAmount, result.Status)
			return p, result, nil
		}
		log.Printf("[invoice][usecase] payment application lost race invoice_id=%s attempt=%d", inv.ID, attempt)
	}

	return entities.Payment{}, entities.Invoice{}, ErrPaymentConflict
}

func (u *InvoiceUseCase) chargeGateway(ctx context.Context, inv entities.Invoice, amount float64, in ApplyPaymentInput) (string, json.RawMessage, error) {
	if u.gateway == nil {
		return "", nil, errors.New("payment gateway not configured")
	}

	req := map[string]any{
		"transaction_amount": amount,
		"description":        fmt.Sprintf("Invoice %s", inv.InvoiceNumber),
		"external_reference": inv.ID,
		"payment_method_id":  strings.ToLower(string(in.Method)),
	}
	if in.CardToken != "" {
		req["token"] = in.CardToken
	}
	if in.PayerEmail != "" {
		req["payer"] = map[string]any{"email": in.PayerEmail}
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return "", nil, err
	}

	log.Printf("[invoice][usecase] charging gateway invoice_id=%s amount=%.2f", inv.ID, amount)
	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[invoice][usecase] gateway charge failed invoice_id=%s err=%v", inv.ID, err)
		return "", nil, err
	}
	log.Printf("[invoice][usecase] gateway charge success invoice_id=%s provider_payment_id=%s provider_status=%s", inv.ID, providerID, providerStatus)
	return providerID, providerResp, nil
}

func (u *InvoiceUseCase) UpdateInvoice(ctx context.Context, invoiceID string, in UpdateInvoiceInput) (entities.Invoice, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return entities.Invoice{}, ErrInvalidInvoiceStatus
		}
		if *in.Status == entities.InvoiceStatusPaid || *in.Status == entities.InvoiceStatusPartiallyPaid {
			return entities.Invoice{}, ErrDerivedInvoiceStatus
		}
	}

	inv, err := u.repo.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	if inv.Status == entities.InvoiceStatusPaid {
		if in.Status == nil || *in.Status != entities.InvoiceStatusCancelled {
			return entities.Invoice{}, ErrInvoicePaid
		}
	}

	if in.Status != nil {
		inv.Status = *in.Status
	}
	if in.DueDate != nil {
		inv.DueDate = in.DueDate
	}
	if in.Notes != nil {
		inv.Notes = *in.Notes
	}
	if in.Terms != nil {
		inv.Terms = *in.Terms
	}
	inv.UpdatedAt = time.Now().UTC()

	return u.repo.Update(ctx, inv)
}

func (u *InvoiceUseCase) DeleteInvoice(ctx context.Context, invoiceID string) error {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	if inv.ID == "" {
		return ErrInvoiceNotFound
	}

	payments, err := u.paymentRepo.ListByInvoiceID(ctx, invoiceID)
	if err != nil {
		return err
	}
	if len(payments) > 0 {
		return ErrInvoiceHasPayments
	}

	return u.repo.Delete(ctx, invoiceID)
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) GetByJobID(ctx context.Context, jobID string) (entities.Invoice, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Invoice{}, ErrInvalidJobID
	}

	inv, err := u.repo.GetByJobID(ctx, jobID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) ListPayments(ctx context.Context, invoiceID string) ([]entities.Payment, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidInvoiceID
	}
	return u.paymentRepo.ListByInvoiceID(ctx, invoiceID)
}
