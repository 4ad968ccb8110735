package response

import (
	"time"

	"reparotec/internal/domain/entities"
)

type JobResponse struct {
	ID                   string     `json:"id"`
	JobNumber            string     `json:"job_number"`
	CustomerID           string     `json:"customer_id"`
	ApplianceType        string     `json:"appliance_type"`
	ApplianceBrand       string     `json:"appliance_brand,omitempty"`
	ApplianceModel       string     `json:"appliance_model,omitempty"`
	ApplianceSerial      string     `json:"appliance_serial,omitempty"`
	IssueDescription     string     `json:"issue_description"`
	DiagnosticNotes      string     `json:"diagnostic_notes,omitempty"`
	Priority             string     `json:"priority"`
	Status               string     `json:"status"`
	Technician           string     `json:"technician,omitempty"`
	LaborHours           float64    `json:"labor_hours"`
	EstimatedCompletion  *time.Time `json:"estimated_completion,omitempty"`
	ActualCompletion     *time.Time `json:"actual_completion,omitempty"`
	QuoteSentAt          *time.Time `json:"quote_sent_at,omitempty"`
	LastNotificationSent *time.Time `json:"last_notification_sent,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func FromJob(j entities.Job) JobResponse {
	return JobResponse{
		ID:                   j.ID,
		JobNumber:            j.JobNumber,
		CustomerID:           j.CustomerID,
		ApplianceType:        j.ApplianceType,
		ApplianceBrand:       j.ApplianceBrand,
		ApplianceModel:       j.ApplianceModel,
		ApplianceSerial:      j.ApplianceSerial,
		IssueDescription:     j.IssueDescription,
		DiagnosticNotes:      j.DiagnosticNotes,
		Priority:             string(j.Priority),
		Status:               string(j.Status),
		Technician:           j.Technician,
		LaborHours:           j.LaborHours,
		EstimatedCompletion:  j.EstimatedCompletion,
		ActualCompletion:     j.ActualCompletion,
		QuoteSentAt:          j.QuoteSentAt,
		LastNotificationSent: j.LastNotificationSent,
		CreatedAt:            j.CreatedAt,
		UpdatedAt:            j.UpdatedAt,
	}
}

func FromJobs(jobs []entities.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}

type JobStatusHistoryResponse struct {
	ID         string    `json:"id"`
	JobID      string    `json:"job_id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromJobHistory(rows []entities.JobStatusHistory) []JobStatusHistoryResponse {
	out := make([]JobStatusHistoryResponse, 0, len(rows))
	for _, h := range rows {
		out = append(out, JobStatusHistoryResponse{
			ID:         h.ID,
			JobID:      h.JobID,
			FromStatus: string(h.FromStatus),
			ToStatus:   string(h.ToStatus),
			Notes:      h.Notes,
			CreatedAt:  h.CreatedAt,
		})
	}
	return out
}
