package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"reparotec/internal/adapter/http/handlers/mocks"
	"reparotec/internal/domain/entities"
	"reparotec/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestJobHandler_CreateJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("customer not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		uc.EXPECT().CreateJob(gomock.Any(), gomock.Any()).Return(entities.Job{}, usecase.ErrCustomerNotFound)

		body := `{"customer_id":"c-missing","appliance_type":"Fridge","issue_description":"Not cooling"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		uc.EXPECT().CreateJob(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, in usecase.CreateJobInput) (entities.Job, error) {
				if in.CustomerID != "c-1" || in.Priority != entities.JobPriorityHigh {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Job{ID: "j-1", JobNumber: "JOB-00001", Status: entities.JobStatusOpen}, nil
			},
		)

		body := `{"customer_id":"c-1","appliance_type":"Fridge","issue_description":"Not cooling","priority":"high"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["job_number"] != "JOB-00001" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestJobHandler_ChangeStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("status is uppercased before the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:job_id/status", h.ChangeStatus)

		uc.EXPECT().ChangeStatus(gomock.Any(), "j-1", entities.JobStatusInProgress, "started").
			Return(entities.Job{ID: "j-1", Status: entities.JobStatusInProgress}, nil)

		body := `{"status":"in_progress","notes":"started"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/j-1/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid status maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:job_id/status", h.ChangeStatus)

		uc.EXPECT().ChangeStatus(gomock.Any(), "j-1", gomock.Any(), gomock.Any()).
			Return(entities.Job{}, usecase.ErrInvalidJobStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/j-1/status", bytes.NewBufferString(`{"status":"BROKEN"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestJobHandler_ListNeedingAttention(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIJobUseCase(ctrl)
	h := NewJobHandler(uc)

	r := gin.New()
	r.GET("/v1/jobs/attention", h.ListNeedingAttention)

	uc.EXPECT().ListNeedingAttention(gomock.Any()).Return([]entities.Job{
		{ID: "j-1", Status: entities.JobStatusOpen},
		{ID: "j-2", Status: entities.JobStatusInProgress},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/jobs/attention", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(resp))
	}
}
