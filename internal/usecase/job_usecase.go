package usecase

import (
	"context"
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
	ErrJobNotFound        = errors.New("job not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrInvalidJobID       = errors.New("invalid job id")
	ErrInvalidJobNumber   = errors.New("invalid job number")
	ErrInvalidJobStatus   = errors.New("invalid job status")
	ErrInvalidJobPriority = errors.New("invalid job priority")
	ErrInvalidJobInput    = errors.New("invalid job data")
	ErrInvalidIntakeInput = errors.New("invalid intake data")
)

type CreateJobInput struct {
	CustomerID          string
	ApplianceType       string
	ApplianceBrand      string
	ApplianceModel      string
	ApplianceSerial     string
	IssueDescription    string
	Priority            entities.JobPriority
	Technician          string
	EstimatedCompletion *time.Time
}

// PublicIntakeInput is customer-entered data arriving through the
// unauthenticated submission endpoint.
type PublicIntakeInput struct {
	Name             string
	Email            string
	Phone            string
	Address          string
	CustomerType     entities.CustomerType
	ApplianceType    string
	ApplianceBrand   string
	ApplianceModel   string
	IssueDescription string
}

// IJobUseCase exposes the job lifecycle operations.
//
//   - CreateJob / PublicIntake open a new repair case in OPEN
//   - ChangeStatus records free-form transitions with an audit row each
//   - ListNeedingAttention applies the notification policy per view

type IJobUseCase interface {
	CreateJob(ctx context.Context, in CreateJobInput) (entities.Job, error)
	PublicIntake(ctx context.Context, in PublicIntakeInput) (entities.Job, error)
	ChangeStatus(ctx context.Context, jobID string, newStatus entities.JobStatus, notes string) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	GetByNumber(ctx context.Context, jobNumber string) (entities.Job, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Job, error)
	ListHistory(ctx context.Context, jobID string) ([]entities.JobStatusHistory, error)
	ListNeedingAttention(ctx context.Context) ([]entities.Job, error)
}

type JobUseCase struct {
	repo         interfaces.IJobRepository
	customerRepo interfaces.ICustomerRepository
	numbering    *NumberingService
	settings     interfaces.ISettingsProvider
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(repo interfaces.IJobRepository, customerRepo interfaces.ICustomerRepository, numbering *NumberingService, settings interfaces.ISettingsProvider) *JobUseCase {
	return &JobUseCase{repo: repo, customerRepo: customerRepo, numbering: numbering, settings: settings}
}

func (u *JobUseCase) CreateJob(ctx context.Context, in CreateJobInput) (entities.Job, error) {
	customerID := strings.TrimSpace(in.CustomerID)
	if customerID == "" || strings.TrimSpace(in.ApplianceType) == "" || strings.TrimSpace(in.IssueDescription) == "" {
		return entities.Job{}, ErrInvalidJobInput
	}
	if in.Priority == "" {
		in.Priority = entities.JobPriorityMedium
	}
	if !in.Priority.Valid() {
		return entities.Job{}, ErrInvalidJobPriority
	}

	customer, err := u.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return entities.Job{}, err
	}
	if customer.ID == "" {
		return entities.Job{}, ErrCustomerNotFound
	}

	return u.openJob(ctx, customer.ID, in)
}

func (u *JobUseCase) PublicIntake(ctx context.Context, in PublicIntakeInput) (entities.Job, error) {
	phone := strings.TrimSpace(in.Phone)
	email := strings.TrimSpace(in.Email)
	if strings.TrimSpace(in.Name) == "" || (phone == "" && email == "") {
		return entities.Job{}, ErrInvalidIntakeInput
	}
	if strings.TrimSpace(in.ApplianceType) == "" || strings.TrimSpace(in.IssueDescription) == "" {
		return entities.Job{}, ErrInvalidIntakeInput
	}

	customer, err := u.resolveCustomer(ctx, in, phone, email)
	if err != nil {
		return entities.Job{}, err
	}
	log.Printf("[job][usecase] public intake resolved customer_id=%s", customer.ID)

	return u.openJob(ctx, customer.ID, CreateJobInput{
		CustomerID:       customer.ID,
		ApplianceType:    in.ApplianceType,
		ApplianceBrand:   in.ApplianceBrand,
		ApplianceModel:   in.ApplianceModel,
		IssueDescription: in.IssueDescription,
		Priority:         entities.JobPriorityMedium,
	})
}

// resolveCustomer finds an existing customer by phone first, then email, and
// creates one only when neither matches.
func (u *JobUseCase) resolveCustomer(ctx context.Context, in PublicIntakeInput, phone, email string) (entities.Customer, error) {
	if phone != "" {
		c, err := u.customerRepo.GetByPhone(ctx, phone)
		if err != nil {
			return entities.Customer{}, err
		}
		if c.ID != "" {
			return c, nil
		}
	}
	if email != "" {
		c, err := u.customerRepo.GetByEmail(ctx, email)
		if err != nil {
			return entities.Customer{}, err
		}
		if c.ID != "" {
			return c, nil
		}
	}

	customerType := in.CustomerType
	if customerType == "" {
		customerType = entities.CustomerTypeResidential
	}
	now := time.Now().UTC()
	return u.customerRepo.Create(ctx, entities.Customer{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Email:     email,
		Phone:     phone,
		Address:   strings.TrimSpace(in.Address),
		Type:      customerType,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (u *JobUseCase) openJob(ctx context.Context, customerID string, in CreateJobInput) (entities.Job, error) {
	number, err := u.numbering.NextJobNumber(ctx)
	if err != nil {
		return entities.Job{}, err
	}

	now := time.Now().UTC()
	j := entities.Job{
		ID:                  uuid.NewString(),
		JobNumber:           number,
		CustomerID:          customerID,
		ApplianceType:       strings.TrimSpace(in.ApplianceType),
		ApplianceBrand:      strings.TrimSpace(in.ApplianceBrand),
		ApplianceModel:      strings.TrimSpace(in.ApplianceModel),
		ApplianceSerial:     strings.TrimSpace(in.ApplianceSerial),
		IssueDescription:    strings.TrimSpace(in.IssueDescription),
		Priority:            in.Priority,
		Status:              entities.JobStatusOpen,
		Technician:          strings.TrimSpace(in.Technician),
		EstimatedCompletion: in.EstimatedCompletion,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	created, err := u.repo.Create(ctx, j)
	if err != nil {
		return entities.Job{}, err
	}
	log.Printf("[job][usecase] job created job_id=%s job_number=%s customer_id=%s", created.ID, created.JobNumber, customerID)
	return created, nil
}

// ChangeStatus applies a free-form transition and appends the audit row.
// Which-to-which transitions are unrestricted on purpose; the history trail
// is the safety net.
func (u *JobUseCase) ChangeStatus(ctx context.Context, jobID string, newStatus entities.JobStatus, notes string) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	if !newStatus.Valid() {
		return entities.Job{}, ErrInvalidJobStatus
	}

	job, err := u.repo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}

	previous := job.Status
	now := time.Now().UTC()
	job.Status = newStatus
	job.UpdatedAt = now
	if newStatus == entities.JobStatusClosed && job.ActualCompletion == nil {
		job.ActualCompletion = &now
	}

	updated, err := u.repo.Update(ctx, job)
	if err != nil {
		return entities.Job{}, err
	}

	if strings.TrimSpace(notes) == "" {
		notes = fmt.Sprintf("Status changed from %s to %s", previous, newStatus)
	}
	if _, err := u.repo.AppendHistory(ctx, entities.JobStatusHistory{
		ID:         uuid.NewString(),
		JobID:      job.ID,
		FromStatus: previous,
		ToStatus:   newStatus,
		Notes:      notes,
		CreatedAt:  now,
	}); err != nil {
		return entities.Job{}, err
	}
	log.Printf("[job][usecase] status changed job_id=%s from=%s to=%s", job.ID, previous, newStatus)

	return updated, nil
}

func (u *JobUseCase) GetByID(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (u *JobUseCase) GetByNumber(ctx context.Context, jobNumber string) (entities.Job, error) {
	jobNumber = strings.TrimSpace(jobNumber)
	if jobNumber == "" {
		return entities.Job{}, ErrInvalidJobNumber
	}

	j, err := u.repo.GetByNumber(ctx, jobNumber)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (u *JobUseCase) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Job, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidJobInput
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}

func (u *JobUseCase) ListHistory(ctx context.Context, jobID string) ([]entities.JobStatusHistory, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	return u.repo.ListHistory(ctx, jobID)
}

func (u *JobUseCase) ListNeedingAttention(ctx context.Context) ([]entities.Job, error) {
	settings, err := u.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	jobs, err := u.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	out := make([]entities.Job, 0, len(jobs))
	for _, j := range jobs {
		if NeedsAttention(j, settings, now) {
			out = append(out, j)
		}
	}
	return out, nil
}
