package entities

import "time"

// JobStatus represents the lifecycle of a repair job.
//
// Domain notes:
//   - Transitions are deliberately permissive (any status to any status):
//     shop staff fix data-entry mistakes by moving jobs backwards.
//   - Every transition appends a JobStatusHistory row, so the audit trail is
//     complete even without a transition table.

type JobStatus string

const (
	JobStatusOpen                     JobStatus = "OPEN"
	JobStatusInProgress               JobStatus = "IN_PROGRESS"
	JobStatusAwaitingParts            JobStatus = "AWAITING_PARTS"
	JobStatusAwaitingCustomerApproval JobStatus = "AWAITING_CUSTOMER_APPROVAL"
	JobStatusReadyForPickup           JobStatus = "READY_FOR_PICKUP"
	JobStatusClosed                   JobStatus = "CLOSED"
	JobStatusCancelled                JobStatus = "CANCELLED"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusOpen, JobStatusInProgress, JobStatusAwaitingParts,
		JobStatusAwaitingCustomerApproval, JobStatusReadyForPickup,
		JobStatusClosed, JobStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether the job no longer needs customer-facing follow-up.
func (s JobStatus) Terminal() bool {
	return s == JobStatusClosed || s == JobStatusCancelled
}

type JobPriority string

const (
	JobPriorityLow    JobPriority = "LOW"
	JobPriorityMedium JobPriority = "MEDIUM"
	JobPriorityHigh   JobPriority = "HIGH"
	JobPriorityUrgent JobPriority = "URGENT"
)

func (p JobPriority) Valid() bool {
	switch p {
	case JobPriorityLow, JobPriorityMedium, JobPriorityHigh, JobPriorityUrgent:
		return true
	}
	return false
}

// Job is one repair case tracked from intake to closure.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_number-index): job_number
//   - GSI2 (customer_id-index): customer_id

type Job struct {
	ID                  string      `json:"id"`
	JobNumber           string      `json:"job_number"`
	CustomerID          string      `json:"customer_id"`
	ApplianceType       string      `json:"appliance_type"`
	ApplianceBrand      string      `json:"appliance_brand"`
	ApplianceModel      string      `json:"appliance_model"`
	ApplianceSerial     string      `json:"appliance_serial"`
	IssueDescription    string      `json:"issue_description"`
	DiagnosticNotes     string      `json:"diagnostic_notes"`
	Priority            JobPriority `json:"priority"`
	Status              JobStatus   `json:"status"`
	Technician          string      `json:"technician,omitempty"`
	LaborHours          float64     `json:"labor_hours"`
	EstimatedCompletion *time.Time  `json:"estimated_completion,omitempty"`
	ActualCompletion    *time.Time  `json:"actual_completion,omitempty"`
	QuoteSentAt         *time.Time  `json:"quote_sent_at,omitempty"`
	LastNotificationSent *time.Time `json:"last_notification_sent,omitempty"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

// JobStatusHistory is the append-only audit trail of status changes.
// Rows are never mutated once written.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id

type JobStatusHistory struct {
	ID         string    `json:"id"`
	JobID      string    `json:"job_id"`
	FromStatus JobStatus `json:"from_status"`
	ToStatus   JobStatus `json:"to_status"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
}
