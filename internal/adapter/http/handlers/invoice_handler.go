package handlers

import (
	"errors"
	"log"
	"net/http"

	request "reparotec/internal/adapter/http/dto/request"
	response "reparotec/internal/adapter/http/dto/response"
	"reparotec/internal/usecase"
	"reparotec/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)
)

// InvoiceHandler handles HTTP requests for invoices and their payment ledger.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// CreateInvoice opens the single invoice a job may have.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	invoice, err := h.usecase.CreateForJob(c.Request.Context(), payload.JobID, payload.ToItems(), payload.Discount)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.usecase.GetByID(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) GetInvoiceByJob(c *gin.Context) {
	invoice, err := h.usecase.GetByJobID(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

// UpdateInvoice edits mutable fields, honoring the paid/derived-status guards.
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	var payload request.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	invoice, err := h.usecase.UpdateInvoice(c.Request.Context(), c.Param("invoice_id"), payload.ToInput())
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	if err := h.usecase.DeleteInvoice(c.Request.Context(), c.Param("invoice_id")); err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ApplyPayment appends a payment to the invoice ledger.
func (h *InvoiceHandler) ApplyPayment(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	var payload request.ApplyPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}
	log.Printf("[invoice][handler] apply payment start invoice_id=%s amount=%.2f method=%s", invoiceID, payload.Amount, payload.Method)

	payment, invoice, err := h.usecase.ApplyPayment(c.Request.Context(), invoiceID, payload.ToInput())
	if err != nil {
		log.Printf("[invoice][handler] apply payment failed invoice_id=%s err=%v", invoiceID, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[invoice][handler] apply payment success invoice_id=%s payment_id=%s status=%s", invoiceID, payment.ID, invoice.Status)

	c.JSON(http.StatusCreated, response.ApplyPaymentResponse{
		Payment: response.FromPayment(payment),
		Invoice: response.FromInvoice(invoice),
	})
}

func (h *InvoiceHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListPayments(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidInvoiceItems),
		errors.Is(err, usecase.ErrInvalidDiscount), errors.Is(err, usecase.ErrInvalidInvoiceStatus),
		errors.Is(err, usecase.ErrInvalidPaymentMethod), errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentAmount):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_AMOUNT", "Payment amount must be positive and at most the open balance", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDerivedInvoiceStatus):
		return pkg.NewDomainErrorSimple("DERIVED_STATUS", "Paid statuses are derived from the balance and cannot be set directly", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceAlreadyExists):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_EXISTS", "Invoice already exists for this job", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceCancelled):
		return pkg.NewDomainErrorSimple("INVOICE_CANCELLED", "Invoice is cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoicePaid):
		return pkg.NewDomainErrorSimple("INVOICE_PAID", "Paid invoices can only be cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceHasPayments):
		return pkg.NewDomainErrorSimple("INVOICE_HAS_PAYMENTS", "Invoice has payments and cannot be deleted", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentConflict):
		return pkg.NewDomainErrorSimple("PAYMENT_CONFLICT", "Payment conflicted with a concurrent payment, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
