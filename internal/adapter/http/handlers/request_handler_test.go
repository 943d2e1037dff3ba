package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"atelier-service/internal/adapter/http/handlers/mocks"
	"atelier-service/internal/domain/entities"
	"atelier-service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRequestHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests", h.Submit)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad preferred date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests", h.Submit)

		body := `{"client_id":"client-1","textile_id":"tex-1","shirt_type_name":"crew","print_type":"screen","sizes":[{"label":"M","quantity":2}],"preferred_date":"next friday"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown textile maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests", h.Submit)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.DesignRequest{}, usecase.ErrTextileNotFound)

		body := `{"client_id":"client-1","textile_id":"tex-404","shirt_type_name":"crew","print_type":"screen","sizes":[{"label":"M","quantity":2}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests", h.Submit)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in usecase.SubmitRequestInput) (entities.DesignRequest, error) {
				if in.ClientID != "client-1" || len(in.Sizes) != 1 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.DesignRequest{ID: "req-1", ClientID: in.ClientID, Status: entities.RequestStatusPending}, nil
			})

		body := `{"client_id":"client-1","textile_id":"tex-1","shirt_type_name":"crew","print_type":"screen","sizes":[{"label":"M","quantity":2}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestRequestHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("client filter lists the client history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := gin.New()
		r.GET("/v1/requests", h.List)

		uc.EXPECT().ListByClient(gomock.Any(), "client-1").
			Return([]entities.DesignRequest{{ID: "req-1", ClientID: "client-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests?client_id=client-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("no filter lists the pending queue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := gin.New()
		r.GET("/v1/requests", h.List)

		uc.EXPECT().ListPending(gomock.Any()).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestRequestHandler_Assign(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("assignment conflict maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := gin.New()
		r.PATCH("/v1/requests/:id/assign", h.Assign)

		uc.EXPECT().Assign(gomock.Any(), "req-1", "designer-1", "admin-1").
			Return(entities.Design{}, usecase.ErrRequestNotPending)

		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/req-1/assign", bytes.NewBufferString(`{"designer_id":"designer-1","admin_id":"admin-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success creates a design", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := gin.New()
		r.PATCH("/v1/requests/:id/assign", h.Assign)

		uc.EXPECT().Assign(gomock.Any(), "req-1", "designer-1", "admin-1").
			Return(entities.Design{ID: "design-1", RequestID: "req-1", DesignerID: "designer-1", Status: entities.DesignStatusInProgress}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/req-1/assign", bytes.NewBufferString(`{"designer_id":"designer-1","admin_id":"admin-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestRequestHandler_Cancel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("foreign client maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := gin.New()
		r.PATCH("/v1/requests/:id/cancel", h.Cancel)

		uc.EXPECT().Cancel(gomock.Any(), "req-1", "client-2").
			Return(entities.DesignRequest{}, usecase.ErrNotOwner)

		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/req-1/cancel", bytes.NewBufferString(`{"client_id":"client-2"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}
