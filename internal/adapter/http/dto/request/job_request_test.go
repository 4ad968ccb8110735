package request

import (
	"testing"

	"reparotec/internal/domain/entities"
)

func TestCreateJobRequest_ToInput(t *testing.T) {
	r := CreateJobRequest{
		CustomerID:       " cust-1 ",
		ApplianceType:    "WASHER",
		IssueDescription: "Leaks from the door seal",
		Priority:         " high ",
	}
	in := r.ToInput()
	if in.CustomerID != "cust-1" {
		t.Fatalf("expected cust-1, got %q", in.CustomerID)
	}
	if in.Priority != entities.JobPriorityHigh {
		t.Fatalf("expected HIGH, got %q", in.Priority)
	}
}

func TestChangeJobStatusRequest_ResolveStatus(t *testing.T) {
	r := ChangeJobStatusRequest{Status: " in_progress "}
	if got := r.ResolveStatus(); got != entities.JobStatusInProgress {
		t.Fatalf("expected IN_PROGRESS, got %q", got)
	}
}

func TestPublicIntakeRequest_ToInput(t *testing.T) {
	r := PublicIntakeRequest{
		Name:         "Maria Souza",
		Email:        " maria@example.com ",
		Phone:        " 11999990000 ",
		CustomerType: "commercial",
	}
	in := r.ToInput()
	if in.Email != "maria@example.com" || in.Phone != "11999990000" {
		t.Fatalf("expected trimmed contact, got %q / %q", in.Email, in.Phone)
	}
	if in.CustomerType != entities.CustomerTypeCommercial {
		t.Fatalf("expected COMMERCIAL, got %q", in.CustomerType)
	}
}
