package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"atelier-service/internal/adapter/http/handlers/mocks"
	"atelier-service/internal/domain/entities"
	"atelier-service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBillingHandler_GetByDesignID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.GET("/v1/billings/:design_id", h.GetByDesignID)

		uc.EXPECT().GetByDesignID(gomock.Any(), "design-404").Return(entities.Billing{}, usecase.ErrBillingNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/billings/design-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success carries the remaining rounds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.GET("/v1/billings/:design_id", h.GetByDesignID)

		uc.EXPECT().GetByDesignID(gomock.Any(), "design-1").
			Return(entities.Billing{ID: "design-1", DesignID: "design-1", InvoiceNo: "INV-AAAA1111", StartingAmount: 1000, NegotiationRounds: 2, Status: entities.BillingStatusPending}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/billings/design-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["rounds_remaining"].(float64) != 3 {
			t.Fatalf("expected 3 rounds remaining, got %v", body["rounds_remaining"])
		}
	})
}

func TestBillingHandler_Negotiate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("proposal below the floor maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.PATCH("/v1/billings/:design_id/negotiate", h.Negotiate)

		uc.EXPECT().Negotiate(gomock.Any(), "design-1", "client-1", 500.0).
			Return(entities.Billing{}, usecase.ErrAmountBelowFloor)

		req := httptest.NewRequest(http.MethodPatch, "/v1/billings/design-1/negotiate", bytes.NewBufferString(`{"client_id":"client-1","amount":500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("exhausted rounds map to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.PATCH("/v1/billings/:design_id/negotiate", h.Negotiate)

		uc.EXPECT().Negotiate(gomock.Any(), "design-1", "client-1", 950.0).
			Return(entities.Billing{}, usecase.ErrNegotiationLimit)

		req := httptest.NewRequest(http.MethodPatch, "/v1/billings/design-1/negotiate", bytes.NewBufferString(`{"client_id":"client-1","amount":950}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.PATCH("/v1/billings/:design_id/negotiate", h.Negotiate)

		uc.EXPECT().Negotiate(gomock.Any(), "design-1", "client-1", 950.0).
			Return(entities.Billing{ID: "design-1", StartingAmount: 1000, FinalAmount: 950, NegotiationRounds: 1, Status: entities.BillingStatusPending}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/billings/design-1/negotiate", bytes.NewBufferString(`{"client_id":"client-1","amount":950}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBillingHandler_Approve(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("already approved maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.PATCH("/v1/billings/:design_id/approve", h.Approve)

		uc.EXPECT().Approve(gomock.Any(), "design-1", "client-1").
			Return(entities.Billing{}, usecase.ErrBillingApproved)

		req := httptest.NewRequest(http.MethodPatch, "/v1/billings/design-1/approve", bytes.NewBufferString(`{"client_id":"client-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.PATCH("/v1/billings/:design_id/approve", h.Approve)

		uc.EXPECT().Approve(gomock.Any(), "design-1", "client-1").
			Return(entities.Billing{ID: "design-1", StartingAmount: 1000, Status: entities.BillingStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/billings/design-1/approve", bytes.NewBufferString(`{"client_id":"client-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
