package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"reparotec/internal/domain/entities"
	"reparotec/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound        = errors.New("quote not found")
	ErrInvalidQuoteID       = errors.New("invalid quote id")
	ErrInvalidQuoteItems    = errors.New("invalid quote items")
	ErrInvalidQuoteResponse = errors.New("invalid quote response")
	ErrQuoteNotPending      = errors.New("quote is not awaiting a customer response")
	ErrQuoteAlreadyResolved = errors.New("quote already resolved with a different response")
	ErrQuoteExpired         = errors.New("quote validity period has ended")
	ErrQuoteMaxReminders    = errors.New("quote reminder limit reached")
	ErrQuoteReminderTooSoon = errors.New("quote reminder sent too recently")
	ErrQuoteNotAccepted     = errors.New("quote is not accepted")
	ErrQuoteConverted       = errors.New("quote already converted to invoice")
)

// IQuoteUseCase drives the quote lifecycle:
// DRAFT -> SENT -> {ACCEPTED, REJECTED, EXPIRED}; ACCEPTED -> CONVERTED_TO_INVOICE.
//
// Issue/reminder operations report whether the customer email went out; a
// failed send never rolls back the committed state change.

type IQuoteUseCase interface {
	IssueQuote(ctx context.Context, jobID string, items []entities.QuoteItem, validDays int) (entities.Quote, bool, error)
	RecordResponse(ctx context.Context, quoteID string, resp entities.QuoteResponse, rejectionReason string) (entities.Quote, error)
	SendReminder(ctx context.Context, quoteID string) (entities.Quote, bool, error)
	ConvertToInvoice(ctx context.Context, quoteID string) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Quote, error)
}

type QuoteUseCase struct {
	repo         interfaces.IQuoteRepository
	jobRepo      interfaces.IJobRepository
	customerRepo interfaces.ICustomerRepository
	invoices     IInvoiceUseCase
	settings     interfaces.ISettingsProvider
	mailer       interfaces.IMailer
	renderer     interfaces.IDocumentRenderer
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	repo interfaces.IQuoteRepository,
	jobRepo interfaces.IJobRepository,
	customerRepo interfaces.ICustomerRepository,
	invoices IInvoiceUseCase,
	settings interfaces.ISettingsProvider,
	mailer interfaces.IMailer,
	renderer interfaces.IDocumentRenderer,
) *QuoteUseCase {
	return &QuoteUseCase{
		repo:         repo,
		jobRepo:      jobRepo,
		customerRepo: customerRepo,
		invoices:     invoices,
		settings:     settings,
		mailer:       mailer,
		renderer:     renderer,
	}
}

func (u *QuoteUseCase) IssueQuote(ctx context.Context, jobID string, items []entities.QuoteItem, validDays int) (entities.Quote, bool, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Quote{}, false, ErrInvalidJobID
	}
	if len(items) == 0 {
		return entities.Quote{}, false, ErrInvalidQuoteItems
	}
	for _, it := range items {
		if strings.TrimSpace(it.Description) == "" || it.Quantity <= 0 || it.UnitPrice < 0 {
			return entities.Quote{}, false, ErrInvalidQuoteItems
		}
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Quote{}, false, err
	}
	if job.ID == "" {
		return entities.Quote{}, false, ErrJobNotFound
	}

	settings, err := u.settings.Get(ctx)
	if err != nil {
		return entities.Quote{}, false, err
	}
	if validDays <= 0 {
		validDays = settings.QuoteValidDays
	}

	subtotal := 0.0
	for _, it := range items {
		subtotal += it.LineTotal()
	}
	subtotal = roundMoney(subtotal)
	taxAmount := roundMoney(subtotal * settings.TaxRate / 100)
	total := roundMoney(subtotal + taxAmount)

	now := time.Now().UTC()
	q := entities.Quote{
		ID:          uuid.NewString(),
		QuoteNumber: QuoteNumberFor(job.JobNumber),
		JobID:       job.ID,
		Status:      entities.QuoteStatusSent,
		Items:       items,
		Subtotal:    subtotal,
		TaxRate:     settings.TaxRate,
		TaxAmount:   taxAmount,
		TotalAmount: total,
		IssueDate:   now,
		ValidUntil:  now.AddDate(0, 0, validDays),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, false, err
	}
	log.Printf("[quote][usecase] quote issued quote_id=%s quote_number=%s job_id=%s total=%.2f valid_until=%s", created.ID, created.QuoteNumber, job.ID, total, created.ValidUntil.Format(time.RFC3339))

	if err := u.stampJobQuoteSent(ctx, job, created, now); err != nil {
		return entities.Quote{}, false, err
	}

	emailSent := u.emailQuote(ctx, created, job, "Your repair quote")
	return created, emailSent, nil
}

// stampJobQuoteSent moves the job to AWAITING_CUSTOMER_APPROVAL with its
// audit row and records the notification timestamps.
func (u *QuoteUseCase) stampJobQuoteSent(ctx context.Context, job entities.Job, q entities.Quote, now time.Time) error {
	previous := job.Status
	job.Status = entities.JobStatusAwaitingCustomerApproval
	job.QuoteSentAt = &now
	job.LastNotificationSent = &now
	job.UpdatedAt = now

	if _, err := u.jobRepo.Update(ctx, job); err != nil {
		return err
	}
	_, err := u.jobRepo.AppendHistory(ctx, entities.JobStatusHistory{
		ID:         uuid.NewString(),
		JobID:      job.ID,
		FromStatus: previous,
		ToStatus:   entities.JobStatusAwaitingCustomerApproval,
		Notes:      fmt.Sprintf("Quote %s sent to customer", q.QuoteNumber),
		CreatedAt:  now,
	})
	return err
}

func (u *QuoteUseCase) RecordResponse(ctx context.Context, quoteID string, resp entities.QuoteResponse, rejectionReason string) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if resp != entities.QuoteResponseAccepted && resp != entities.QuoteResponseRejected {
		return entities.Quote{}, ErrInvalidQuoteResponse
	}

	q, err := u.repo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	now := time.Now().UTC()
	switch q.Status {
	case entities.QuoteStatusSent:
		// fall through to apply the response below
	case entities.QuoteStatusAccepted, entities.QuoteStatusConvertedToInvoice:
		// Double-clicks on the accept link are a no-op.
		if resp == entities.QuoteResponseAccepted {
			return q, nil
		}
		return entities.Quote{}, ErrQuoteAlreadyResolved
	case entities.QuoteStatusRejected:
		if resp == entities.QuoteResponseRejected {
			return q, nil
		}
		return entities.Quote{}, ErrQuoteAlreadyResolved
	default:
		return entities.Quote{}, ErrQuoteNotPending
	}

	if now.After(q.ValidUntil) {
		if _, err := u.expire(ctx, q, now); err != nil {
			return entities.Quote{}, err
		}
		return entities.Quote{}, ErrQuoteExpired
	}

	q.CustomerResponse = resp
	q.CustomerResponseDate = &now
	if resp == entities.QuoteResponseAccepted {
		q.Status = entities.QuoteStatusAccepted
	} else {
		q.Status = entities.QuoteStatusRejected
		q.RejectionReason = strings.TrimSpace(rejectionReason)
	}
	q.UpdatedAt = now

	updated, err := u.repo.Update(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] customer response recorded quote_id=%s response=%s", q.ID, resp)
	return updated, nil
}

func (u *QuoteUseCase) SendReminder(ctx context.Context, quoteID string) (entities.Quote, bool, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, false, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, false, err
	}
	if q.ID == "" {
		return entities.Quote{}, false, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusSent {
		return entities.Quote{}, false, ErrQuoteNotPending
	}

	settings, err := u.settings.Get(ctx)
	if err != nil {
		return entities.Quote{}, false, err
	}

	now := time.Now().UTC()
	if now.After(q.ValidUntil) {
		if _, err := u.expire(ctx, q, now); err != nil {
			return entities.Quote{}, false, err
		}
		return entities.Quote{}, false, ErrQuoteExpired
	}
	if q.ReminderCount >= settings.QuoteMaxReminders {
		return entities.Quote{}, false, ErrQuoteMaxReminders
	}
	last := q.IssueDate
	if q.LastReminderSent != nil {
		last = *q.LastReminderSent
	}
	if daysSince(last, now) < settings.QuoteReminderFrequencyDays {
		return entities.Quote{}, false, ErrQuoteReminderTooSoon
	}

	q.ReminderCount++
	q.LastReminderSent = &now
	q.UpdatedAt = now

	updated, err := u.repo.Update(ctx, q)
	if err != nil {
		return entities.Quote{}, false, err
	}
	log.Printf("[quote][usecase] reminder recorded quote_id=%s reminder_count=%d", q.ID, updated.ReminderCount)

	emailSent := false
	if job, err := u.jobRepo.GetByID(ctx, updated.JobID); err == nil && job.ID != "" {
		emailSent = u.emailQuote(ctx, updated, job, "Reminder: your repair quote is waiting")
	}
	return updated, emailSent, nil
}

func (u *QuoteUseCase) expire(ctx context.Context, q entities.Quote, now time.Time) (entities.Quote, error) {
	q.Status = entities.QuoteStatusExpired
	q.UpdatedAt = now
	updated, err := u.repo.Update(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] quote expired quote_id=%s valid_until=%s", q.ID, q.ValidUntil.Format(time.RFC3339))
	return updated, nil
}

// ConvertToInvoice is the single authorized path from an accepted quote to an
// invoice; items mirror the quote items one to one.
func (u *QuoteUseCase) ConvertToInvoice(ctx context.Context, quoteID string) (entities.Invoice, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Invoice{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if q.ID == "" {
		return entities.Invoice{}, ErrQuoteNotFound
	}
	if q.ConvertedToInvoiceID != "" {
		return entities.Invoice{}, ErrQuoteConverted
	}
	if q.Status != entities.QuoteStatusAccepted {
		return entities.Invoice{}, ErrQuoteNotAccepted
	}

	items := make([]entities.InvoiceItem, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, entities.InvoiceItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}

	inv, err := u.invoices.CreateForJob(ctx, q.JobID, items, 0)
	if err != nil {
		return entities.Invoice{}, err
	}

	q.Status = entities.QuoteStatusConvertedToInvoice
	q.ConvertedToInvoiceID = inv.ID
	q.UpdatedAt = time.Now().UTC()
	if _, err := u.repo.Update(ctx, q); err != nil {
		return entities.Invoice{}, err
	}
	log.Printf("[quote][usecase] quote converted quote_id=%s invoice_id=%s", q.ID, inv.ID)

	return inv, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListByJobID(ctx context.Context, jobID string) ([]entities.Quote, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	return u.repo.ListByJobID(ctx, jobID)
}

// emailQuote dispatches the customer-facing email with accept/reject links
// and the rendered PDF. Failures are logged and reported to the caller, never
// rolled back: the business transition already committed.
func (u *QuoteUseCase) emailQuote(ctx context.Context, q entities.Quote, job entities.Job, subject string) bool {
	if u.mailer == nil {
		log.Printf("[quote][usecase] mailer not configured quote_id=%s", q.ID)
		return false
	}

	customer, err := u.customerRepo.GetByID(ctx, job.CustomerID)
	if err != nil || customer.ID == "" || customer.Email == "" {
		log.Printf("[quote][usecase] no reachable customer for email quote_id=%s customer_id=%s err=%v", q.ID, job.CustomerID, err)
		return false
	}

	msg := interfaces.MailMessage{
		To:      customer.Email,
		Subject: fmt.Sprintf("%s (%s)", subject, q.QuoteNumber),
		HTML:    buildQuoteEmailHTML(q, job, customer, publicBaseURL()),
	}

	if u.renderer != nil {
		if pdf, err := u.renderer.RenderQuote(ctx, q, job, customer); err != nil {
			log.Printf("[quote][usecase] quote pdf render failed quote_id=%s err=%v", q.ID, err)
		} else {
			msg.Attachments = append(msg.Attachments, interfaces.MailAttachment{
				Filename: q.QuoteNumber + ".pdf",
				Content:  pdf,
			})
		}
	}

	if err := u.mailer.Send(ctx, msg); err != nil {
		log.Printf("[quote][usecase] quote email failed quote_id=%s to=%s err=%v", q.ID, customer.Email, err)
		return false
	}
	log.Printf("[quote][usecase] quote email sent quote_id=%s to=%s", q.ID, customer.Email)
	return true
}

func buildQuoteEmailHTML(q entities.Quote, job entities.Job, customer entities.Customer, baseURL string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<p>Hello %s,</p>", customer.Name)
	fmt.Fprintf(&b, "<p>Here is quote <strong>%s</strong> for your %s %s (%s).</p>", q.QuoteNumber, job.ApplianceBrand, job.ApplianceType, job.JobNumber)
	b.WriteString("<table><tr><th>Description</th><th>Qty</th><th>Unit</th></tr>")
	for _, it := range q.Items {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%d</td><td>%.2f</td></tr>", it.Description, it.Quantity, it.UnitPrice)
	}
	b.WriteString("</table>")
	fmt.Fprintf(&b, "<p>Total: <strong>%.2f</strong> (valid until %s)</p>", q.TotalAmount, q.ValidUntil.Format("2006-01-02"))
	fmt.Fprintf(&b, `<p><a href="%s/v1/public/quotes/%s/accept">Accept</a> | <a href="%s/v1/public/quotes/%s/reject">Reject</a></p>`, baseURL, q.ID, baseURL, q.ID)
	return b.String()
}

func publicBaseURL() string {
	if v := os.Getenv("PUBLIC_BASE_URL"); v != "" {
		return strings.TrimRight(v, "/")
	}
	return "http://localhost:8080"
}
