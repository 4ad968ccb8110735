package handlers

import (
	"log"
	"net/http"

	request "reparotec/internal/adapter/http/dto/request"
	response "reparotec/internal/adapter/http/dto/response"
	"reparotec/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the unauthenticated customer surface: the repair
// request form submission. Quote accept/reject links live on QuoteHandler.

type PublicHandler struct {
	jobs usecase.IJobUseCase
}

func NewPublicHandler(jobs usecase.IJobUseCase) *PublicHandler {
	return &PublicHandler{jobs: jobs}
}

// SubmitIntake receives a customer-entered repair request, resolving or
// creating the customer record by phone/email.
func (h *PublicHandler) SubmitIntake(c *gin.Context) {
	var payload request.PublicIntakeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}
	log.Printf("[public][handler] intake start phone=%s email=%s", payload.Phone, payload.Email)

	job, err := h.jobs.PublicIntake(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[public][handler] intake failed err=%v", err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[public][handler] intake success job_id=%s job_number=%s", job.ID, job.JobNumber)

	c.JSON(http.StatusCreated, response.FromJob(job))
}
