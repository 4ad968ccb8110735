package handlers

import (
	"errors"
	"net/http"

	request "reparotec/internal/adapter/http/dto/request"
	response "reparotec/internal/adapter/http/dto/response"
	"reparotec/internal/usecase"
	"reparotec/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)
)

// JobHandler handles HTTP requests for repair jobs.

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

// CreateJob opens a new repair job for an existing customer.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.CreateJob(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromJob(job))
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.usecase.GetByID(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// GetJobByNumber resolves a job by its customer-facing number (JOB-00042).
func (h *JobHandler) GetJobByNumber(c *gin.Context) {
	job, err := h.usecase.GetByNumber(c.Request.Context(), c.Param("job_number"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) ListJobsByCustomer(c *gin.Context) {
	jobs, err := h.usecase.ListByCustomerID(c.Request.Context(), c.Param("customer_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJobs(jobs))
}

// ChangeStatus applies a status transition and records the audit row.
func (h *JobHandler) ChangeStatus(c *gin.Context) {
	var payload request.ChangeJobStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.ChangeStatus(c.Request.Context(), c.Param("job_id"), payload.ResolveStatus(), payload.Notes)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) ListHistory(c *gin.Context) {
	rows, err := h.usecase.ListHistory(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJobHistory(rows))
}

// ListNeedingAttention returns active jobs whose customers are due for a
// follow-up under the notification policy.
func (h *JobHandler) ListNeedingAttention(c *gin.Context) {
	jobs, err := h.usecase.ListNeedingAttention(c.Request.Context())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJobs(jobs))
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidJobNumber),
		errors.Is(err, usecase.ErrInvalidJobStatus), errors.Is(err, usecase.ErrInvalidJobPriority),
		errors.Is(err, usecase.ErrInvalidJobInput), errors.Is(err, usecase.ErrInvalidIntakeInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
