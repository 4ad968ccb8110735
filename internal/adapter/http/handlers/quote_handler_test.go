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

func TestQuoteHandler_IssueQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.IssueQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("issue reports email status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.IssueQuote)

		uc.EXPECT().IssueQuote(gomock.Any(), "j-1", gomock.Any(), 0).
			Return(entities.Quote{ID: "q-1", QuoteNumber: "JOB-00001-Q", Status: entities.QuoteStatusSent}, true, nil)

		body := `{"job_id":"j-1","items":[{"description":"Labor","quantity":1,"unit_price":100}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(body))
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
		if resp["quote_number"] != "JOB-00001-Q" || resp["email_sent"] != true {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestQuoteHandler_PublicResponseLinks(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("accept link records acceptance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/public/quotes/:quote_id/accept", h.AcceptQuotePublic)

		uc.EXPECT().RecordResponse(gomock.Any(), "q-1", entities.QuoteResponseAccepted, "").
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusAccepted}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/public/quotes/q-1/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reject after accept maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/public/quotes/:quote_id/reject", h.RejectQuotePublic)

		uc.EXPECT().RecordResponse(gomock.Any(), "q-1", entities.QuoteResponseRejected, "").
			Return(entities.Quote{}, usecase.ErrQuoteAlreadyResolved)

		req := httptest.NewRequest(http.MethodGet, "/v1/public/quotes/q-1/reject", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("expired quote maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/public/quotes/:quote_id/accept", h.AcceptQuotePublic)

		uc.EXPECT().RecordResponse(gomock.Any(), "q-1", entities.QuoteResponseAccepted, "").
			Return(entities.Quote{}, usecase.ErrQuoteExpired)

		req := httptest.NewRequest(http.MethodGet, "/v1/public/quotes/q-1/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_SendReminder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("limit reached maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:quote_id/reminder", h.SendReminder)

		uc.EXPECT().SendReminder(gomock.Any(), "q-1").
			Return(entities.Quote{}, false, usecase.ErrQuoteMaxReminders)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/reminder", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_ConvertToInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("conversion returns the invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:quote_id/convert", h.ConvertToInvoice)

		uc.EXPECT().ConvertToInvoice(gomock.Any(), "q-1").
			Return(entities.Invoice{ID: "inv-1", InvoiceNumber: "INV-00001"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/convert", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["invoice_number"] != "INV-00001" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("not accepted maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:quote_id/convert", h.ConvertToInvoice)

		uc.EXPECT().ConvertToInvoice(gomock.Any(), "q-1").
			Return(entities.Invoice{}, usecase.ErrQuoteNotAccepted)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/convert", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
