package handlers

import (
	"errors"
	"log"
	"net/http"

	request "reparotec/internal/adapter/http/dto/request"
	response "reparotec/internal/adapter/http/dto/response"
	"reparotec/internal/domain/entities"
	"reparotec/internal/usecase"
	"reparotec/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for quotes, including the public
// accept/reject links embedded in customer email.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// IssueQuote prices a job and emails the quote to the customer.
func (h *QuoteHandler) IssueQuote(c *gin.Context) {
	var payload request.IssueQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, emailSent, err := h.usecase.IssueQuote(c.Request.Context(), payload.JobID, payload.ToItems(), payload.ValidDays)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] issue success quote_id=%s email_sent=%t", quote.ID, emailSent)

	c.JSON(http.StatusCreated, response.FromQuoteWithEmail(quote, emailSent))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) ListQuotesByJob(c *gin.Context) {
	quotes, err := h.usecase.ListByJobID(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// RecordResponse applies a staff-entered customer decision.
func (h *QuoteHandler) RecordResponse(c *gin.Context) {
	var payload request.QuoteResponseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.RecordResponse(c.Request.Context(), c.Param("quote_id"), payload.ResolveResponse(), payload.RejectionReason)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// SendReminder re-emails a pending quote, subject to the reminder policy.
func (h *QuoteHandler) SendReminder(c *gin.Context) {
	quote, emailSent, err := h.usecase.SendReminder(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] reminder success quote_id=%s email_sent=%t", quote.ID, emailSent)

	c.JSON(http.StatusOK, response.FromQuoteWithEmail(quote, emailSent))
}

// ConvertToInvoice turns an accepted quote into the job's invoice.
func (h *QuoteHandler) ConvertToInvoice(c *gin.Context) {
	invoice, err := h.usecase.ConvertToInvoice(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(invoice))
}

// AcceptQuotePublic and RejectQuotePublic back the unauthenticated links in
// the quote email. Double clicks on the same link return 200.

func (h *QuoteHandler) AcceptQuotePublic(c *gin.Context) {
	h.recordPublicResponse(c, entities.QuoteResponseAccepted)
}

func (h *QuoteHandler) RejectQuotePublic(c *gin.Context) {
	h.recordPublicResponse(c, entities.QuoteResponseRejected)
}

func (h *QuoteHandler) recordPublicResponse(c *gin.Context, resp entities.QuoteResponse) {
	quoteID := c.Param("quote_id")
	log.Printf("[quote][handler] public response start quote_id=%s response=%s", quoteID, resp)

	quote, err := h.usecase.RecordResponse(c.Request.Context(), quoteID, resp, c.Query("reason"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidQuoteItems),
		errors.Is(err, usecase.ErrInvalidQuoteResponse), errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotPending):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_PENDING", "Quote is not awaiting a customer response", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteAlreadyResolved):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_RESOLVED", "Quote was already resolved with a different response", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteExpired):
		return pkg.NewDomainErrorSimple("QUOTE_EXPIRED", "Quote validity period has ended", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteMaxReminders):
		return pkg.NewDomainErrorSimple("QUOTE_MAX_REMINDERS", "Quote reminder limit reached", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteReminderTooSoon):
		return pkg.NewDomainErrorSimple("QUOTE_REMINDER_TOO_SOON", "A reminder was sent too recently", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotAccepted):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_ACCEPTED", "Quote is not accepted", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteConverted):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_CONVERTED", "Quote was already converted to an invoice", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceAlreadyExists):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_EXISTS", "Invoice already exists for this job", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
