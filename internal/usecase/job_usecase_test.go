package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"reparotec/internal/domain/entities"
	mock_interfaces "reparotec/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newJobUseCaseForTest(t *testing.T) (*JobUseCase, *mock_interfaces.MockIJobRepository, *mock_interfaces.MockICustomerRepository, *mock_interfaces.MockISequenceRepository, *mock_interfaces.MockISettingsProvider) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mock_interfaces.NewMockIJobRepository(ctrl)
	customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
	seq := mock_interfaces.NewMockISequenceRepository(ctrl)
	settings := mock_interfaces.NewMockISettingsProvider(ctrl)

	uc := NewJobUseCase(repo, customerRepo, NewNumberingService(seq), settings)
	return uc, repo, customerRepo, seq, settings
}

func TestJobUseCase_CreateJob(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		uc, _, _, _, _ := newJobUseCaseForTest(t)
		_, err := uc.CreateJob(context.Background(), CreateJobInput{CustomerID: "c-1"})
		if !errors.Is(err, ErrInvalidJobInput) {
			t.Fatalf("expected ErrInvalidJobInput, got %v", err)
		}
	})

	t.Run("invalid priority", func(t *testing.T) {
		uc, _, _, _, _ := newJobUseCaseForTest(t)
		_, err := uc.CreateJob(context.Background(), CreateJobInput{
			CustomerID:       "c-1",
			ApplianceType:    "Washing machine",
			IssueDescription: "No spin",
			Priority:         "IMMEDIATELY",
		})
		if !errors.Is(err, ErrInvalidJobPriority) {
			t.Fatalf("expected ErrInvalidJobPriority, got %v", err)
		}
	})

	t.Run("customer not found", func(t *testing.T) {
		uc, _, customerRepo, _, _ := newJobUseCaseForTest(t)

		customerRepo.EXPECT().GetByID(gomock.Any(), "c-missing").Return(entities.Customer{}, nil)

		_, err := uc.CreateJob(context.Background(), CreateJobInput{
			CustomerID:       "c-missing",
			ApplianceType:    "Fridge",
			IssueDescription: "Not cooling",
		})
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("create success with assigned number", func(t *testing.T) {
		uc, repo, customerRepo, seq, _ := newJobUseCaseForTest(t)

		customerRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)
		seq.EXPECT().Next(gomock.Any(), SequenceJobs).Return(int64(7), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.ID == "" || j.JobNumber != "JOB-00007" {
					t.Fatalf("unexpected job identity: %+v", j)
				}
				if j.Status != entities.JobStatusOpen || j.Priority != entities.JobPriorityMedium {
					t.Fatalf("unexpected job state: status=%s priority=%s", j.Status, j.Priority)
				}
				if j.CreatedAt.IsZero() || j.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return j, nil
			},
		)

		job, err := uc.CreateJob(context.Background(), CreateJobInput{
			CustomerID:       " c-1 ",
			ApplianceType:    "Washing machine",
			IssueDescription: "No spin",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.JobNumber != "JOB-00007" {
			t.Fatalf("expected JOB-00007, got %s", job.JobNumber)
		}
	})
}

func TestJobUseCase_PublicIntake(t *testing.T) {
	in := PublicIntakeInput{
		Name:             "Maria Souza",
		Phone:            "+5511999990000",
		Email:            "maria@example.com",
		ApplianceType:    "Dishwasher",
		IssueDescription: "Leaking",
	}

	t.Run("requires name and a contact channel", func(t *testing.T) {
		uc, _, _, _, _ := newJobUseCaseForTest(t)
		_, err := uc.PublicIntake(context.Background(), PublicIntakeInput{
			Name:             "Maria",
			ApplianceType:    "Dishwasher",
			IssueDescription: "Leaking",
		})
		if !errors.Is(err, ErrInvalidIntakeInput) {
			t.Fatalf("expected ErrInvalidIntakeInput, got %v", err)
		}
	})

	t.Run("matches existing customer by phone", func(t *testing.T) {
		uc, repo, customerRepo, seq, _ := newJobUseCaseForTest(t)

		customerRepo.EXPECT().GetByPhone(gomock.Any(), in.Phone).Return(entities.Customer{ID: "c-9"}, nil)
		seq.EXPECT().Next(gomock.Any(), SequenceJobs).Return(int64(1), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.CustomerID != "c-9" {
					t.Fatalf("expected existing customer c-9, got %s", j.CustomerID)
				}
				return j, nil
			},
		)

		if _, err := uc.PublicIntake(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("falls back to email before creating a customer", func(t *testing.T) {
		uc, repo, customerRepo, seq, _ := newJobUseCaseForTest(t)

		customerRepo.EXPECT().GetByPhone(gomock.Any(), in.Phone).Return(entities.Customer{}, nil)
		customerRepo.EXPECT().GetByEmail(gomock.Any(), in.Email).Return(entities.Customer{ID: "c-5"}, nil)
		seq.EXPECT().Next(gomock.Any(), SequenceJobs).Return(int64(2), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.CustomerID != "c-5" {
					t.Fatalf("expected existing customer c-5, got %s", j.CustomerID)
				}
				return j, nil
			},
		)

		if _, err := uc.PublicIntake(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("creates a new residential customer when nothing matches", func(t *testing.T) {
		uc, repo, customerRepo, seq, _ := newJobUseCaseForTest(t)

		customerRepo.EXPECT().GetByPhone(gomock.Any(), in.Phone).Return(entities.Customer{}, nil)
		customerRepo.EXPECT().GetByEmail(gomock.Any(), in.Email).Return(entities.Customer{}, nil)
		customerRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.ID == "" || c.Type != entities.CustomerTypeResidential {
					t.Fatalf("unexpected customer: %+v", c)
				}
				return c, nil
			},
		)
		seq.EXPECT().Next(gomock.Any(), SequenceJobs).Return(int64(3), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) { return j, nil },
		)

		job, err := uc.PublicIntake(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Status != entities.JobStatusOpen || job.Priority != entities.JobPriorityMedium {
			t.Fatalf("unexpected defaults: status=%s priority=%s", job.Status, job.Priority)
		}
	})
}

func TestJobUseCase_ChangeStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc, _, _, _, _ := newJobUseCaseForTest(t)
		_, err := uc.ChangeStatus(context.Background(), "j-1", "BROKEN", "")
		if !errors.Is(err, ErrInvalidJobStatus) {
			t.Fatalf("expected ErrInvalidJobStatus, got %v", err)
		}
	})

	t.Run("job not found", func(t *testing.T) {
		uc, repo, _, _, _ := newJobUseCaseForTest(t)

		repo.EXPECT().GetByID(gomock.Any(), "j-missing").Return(entities.Job{}, nil)

		_, err := uc.ChangeStatus(context.Background(), "j-missing", entities.JobStatusInProgress, "")
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("transition appends history with default note", func(t *testing.T) {
		uc, repo, _, _, _ := newJobUseCaseForTest(t)

		repo.EXPECT().GetByID(gomock.Any(), "j-1").Return(entities.Job{ID: "j-1", Status: entities.JobStatusOpen}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.Status != entities.JobStatusInProgress {
					t.Fatalf("expected IN_PROGRESS, got %s", j.Status)
				}
				return j, nil
			},
		)
		repo.EXPECT().AppendHistory(gomock.Any(), gomock.AssignableToTypeOf(entities.JobStatusHistory{})).DoAndReturn(
			func(_ context.Context, h entities.JobStatusHistory) (entities.JobStatusHistory, error) {
				if h.FromStatus != entities.JobStatusOpen || h.ToStatus != entities.JobStatusInProgress {
					t.Fatalf("unexpected history row: %+v", h)
				}
				if h.Notes != "Status changed from OPEN to IN_PROGRESS" {
					t.Fatalf("unexpected default note: %q", h.Notes)
				}
				return h, nil
			},
		)

		if _, err := uc.ChangeStatus(context.Background(), "j-1", entities.JobStatusInProgress, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("backward transitions are allowed", func(t *testing.T) {
		uc, repo, _, _, _ := newJobUseCaseForTest(t)

		repo.EXPECT().GetByID(gomock.Any(), "j-1").Return(entities.Job{ID: "j-1", Status: entities.JobStatusReadyForPickup}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) { return j, nil },
		)
		repo.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, h entities.JobStatusHistory) (entities.JobStatusHistory, error) { return h, nil },
		)

		job, err := uc.ChangeStatus(context.Background(), "j-1", entities.JobStatusInProgress, "found another fault")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Status != entities.JobStatusInProgress {
			t.Fatalf("expected IN_PROGRESS, got %s", job.Status)
		}
	})

	t.Run("closing stamps actual completion", func(t *testing.T) {
		uc, repo, _, _, _ := newJobUseCaseForTest(t)

		repo.EXPECT().GetByID(gomock.Any(), "j-1").Return(entities.Job{ID: "j-1", Status: entities.JobStatusReadyForPickup}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.ActualCompletion == nil {
					t.Fatalf("expected actual completion stamp")
				}
				return j, nil
			},
		)
		repo.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, h entities.JobStatusHistory) (entities.JobStatusHistory, error) { return h, nil },
		)

		if _, err := uc.ChangeStatus(context.Background(), "j-1", entities.JobStatusClosed, "picked up"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestJobUseCase_ListNeedingAttention(t *testing.T) {
	uc, repo, _, _, settings := newJobUseCaseForTest(t)

	now := time.Now().UTC()
	stale := now.AddDate(0, 0, -5)
	fresh := now.Add(-2 * time.Hour)

	settings.EXPECT().Get(gomock.Any()).Return(entities.BillingSettings{NotificationReminderDays: 3}, nil)
	repo.EXPECT().ListActive(gomock.Any()).Return([]entities.Job{
		{ID: "j-1", Status: entities.JobStatusOpen},
		{ID: "j-2", Status: entities.JobStatusInProgress, LastNotificationSent: &stale},
		{ID: "j-3", Status: entities.JobStatusOpen, LastNotificationSent: &fresh},
	}, nil)

	jobs, err := uc.ListNeedingAttention(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].ID != "j-1" || jobs[1].ID != "j-2" {
		t.Fatalf("unexpected selection: %+v", jobs)
	}
}
