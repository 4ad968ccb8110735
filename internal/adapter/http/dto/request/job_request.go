package request

import (
	"strings"
	"time"

	"reparotec/internal/domain/entities"
	"reparotec/internal/usecase"
)

type CreateJobRequest struct {
	CustomerID          string     `json:"customer_id" binding:"required"`
	ApplianceType       string     `json:"appliance_type" binding:"required"`
	ApplianceBrand      string     `json:"appliance_brand"`
	ApplianceModel      string     `json:"appliance_model"`
	ApplianceSerial     string     `json:"appliance_serial"`
	IssueDescription    string     `json:"issue_description" binding:"required"`
	Priority            string     `json:"priority"`
	Technician          string     `json:"technician"`
	EstimatedCompletion *time.Time `json:"estimated_completion"`
}

func (r CreateJobRequest) ToInput() usecase.CreateJobInput {
	return usecase.CreateJobInput{
		CustomerID:          strings.TrimSpace(r.CustomerID),
		ApplianceType:       r.ApplianceType,
		ApplianceBrand:      r.ApplianceBrand,
		ApplianceModel:      r.ApplianceModel,
		ApplianceSerial:     r.ApplianceSerial,
		IssueDescription:    r.IssueDescription,
		Priority:            entities.JobPriority(strings.ToUpper(strings.TrimSpace(r.Priority))),
		Technician:          r.Technician,
		EstimatedCompletion: r.EstimatedCompletion,
	}
}

// PublicIntakeRequest is the unauthenticated customer submission payload.
type PublicIntakeRequest struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	CustomerType     string `json:"customer_type"`
	ApplianceType    string `json:"appliance_type" binding:"required"`
	ApplianceBrand   string `json:"appliance_brand"`
	ApplianceModel   string `json:"appliance_model"`
	IssueDescription string `json:"issue_description" binding:"required"`
}

func (r PublicIntakeRequest) ToInput() usecase.PublicIntakeInput {
	return usecase.PublicIntakeInput{
		Name:             r.Name,
		Email:            strings.TrimSpace(r.Email),
		Phone:            strings.TrimSpace(r.Phone),
		Address:          r.Address,
		CustomerType:     entities.CustomerType(strings.ToUpper(strings.TrimSpace(r.CustomerType))),
		ApplianceType:    r.ApplianceType,
		ApplianceBrand:   r.ApplianceBrand,
		ApplianceModel:   r.ApplianceModel,
		IssueDescription: r.IssueDescription,
	}
}

type ChangeJobStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

func (r ChangeJobStatusRequest) ResolveStatus() entities.JobStatus {
	return entities.JobStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
}
