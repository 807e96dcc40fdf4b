package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"claims_assessment/internal/adapter/http/handlers/mocks"
	"claims_assessment/internal/domain/entities"
	"claims_assessment/internal/domain/workflow"
	"claims_assessment/internal/usecase"
	"claims_assessment/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func decodeHTTPError(t *testing.T, body *bytes.Buffer) pkg.HTTPError {
	t.Helper()
	var he pkg.HTTPError
	if err := json.Unmarshal(body.Bytes(), &he); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	return he
}

func TestAssessmentHandler_CreateAssessment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		h := NewAssessmentHandler(uc)

		r := gin.New()
		r.POST("/v1/assessments", h.CreateAssessment)

		req := httptest.NewRequest(http.MethodPost, "/v1/assessments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing request id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		h := NewAssessmentHandler(uc)

		r := gin.New()
		r.POST("/v1/assessments", h.CreateAssessment)

		req := httptest.NewRequest(http.MethodPost, "/v1/assessments", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("accepts nested request shape", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		h := NewAssessmentHandler(uc)

		r := gin.New()
		r.POST("/v1/assessments", h.CreateAssessment)

		now := time.Now().UTC()
		uc.EXPECT().CreateAssessment(gomock.Any(), "req-1").Return(entities.Assessment{
			ID: "a-1", RequestID: "req-1", Stage: entities.StageRequestSubmitted, CreatedAt: now, UpdatedAt: now,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/assessments", bytes.NewBufferString(`{"request":{"id":"req-1"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("duplicate request conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		h := NewAssessmentHandler(uc)

		r := gin.New()
		r.POST("/v1/assessments", h.CreateAssessment)

		uc.EXPECT().CreateAssessment(gomock.Any(), "req-1").Return(entities.Assessment{}, usecase.ErrAssessmentAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/assessments", bytes.NewBufferString(`{"request_id":"req-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if he := decodeHTTPError(t, w.Body); he.Code != "ASSESSMENT_ALREADY_EXISTS" {
			t.Fatalf("unexpected error code %q", he.Code)
		}
	})
}

func TestAssessmentHandler_AttemptTransition(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing event rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		h := NewAssessmentHandler(uc)

		r := gin.New()
		r.POST("/v1/assessments/:id/transitions", h.AttemptTransition)

		req := httptest.NewRequest(http.MethodPost, "/v1/assessments/a-1/transitions", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid transition maps to conflict with details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		h := NewAssessmentHandler(uc)

		r := gin.New()
		r.POST("/v1/assessments/:id/transitions", h.AttemptTransition)

		uc.EXPECT().AttemptTransition(gomock.Any(), "a-1", workflow.EventSendEstimate, nil).Return(entities.Assessment{}, workflow.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPost, "/v1/assessments/a-1/transitions", bytes.NewBufferString(`{"event":"send_estimate"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		he := decodeHTTPError(t, w.Body)
		if he.Code != "INVALID_TRANSITION" {
			t.Fatalf("unexpected error code %q", he.Code)
		}
		if he.Details["event"] != "send_estimate" || he.Details["assessment_id"] != "a-1" {
			t.Fatalf("details not attached: %+v", he.Details)
		}
	})

	t.Run("missing appointment maps to unprocessable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		h := NewAssessmentHandler(uc)

		r := gin.New()
		r.POST("/v1/assessments/:id/transitions", h.AttemptTransition)

		uc.EXPECT().AttemptTransition(gomock.Any(), "a-1", workflow.EventStartAssessment, nil).Return(entities.Assessment{}, workflow.ErrMissingPrerequisite)

		req := httptest.NewRequest(http.MethodPost, "/v1/assessments/a-1/transitions", bytes.NewBufferString(`{"event":"start_assessment"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("expected stage forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		h := NewAssessmentHandler(uc)

		r := gin.New()
		r.POST("/v1/assessments/:id/transitions", h.AttemptTransition)

		expected := entities.StageEstimateReview
		uc.EXPECT().AttemptTransition(gomock.Any(), "a-1", workflow.EventSendEstimate, gomock.Cond(func(s *entities.Stage) bool {
			return s != nil && *s == expected
		})).Return(entities.Assessment{ID: "a-1", Stage: entities.StageEstimateSent}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/assessments/a-1/transitions",
			bytes.NewBufferString(`{"event":"send_estimate","expected_stage":"estimate_review"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestAssessmentHandler_ScheduleAppointment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("accepts flat appointment shape", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		h := NewAssessmentHandler(uc)

		r := gin.New()
		r.POST("/v1/assessments/:id/appointment", h.ScheduleAppointment)

		apt := "apt-1"
		uc.EXPECT().ScheduleAppointment(gomock.Any(), "a-1", "apt-1", nil).Return(entities.Assessment{
			ID: "a-1", Stage: entities.StageAppointmentScheduled, AppointmentID: &apt,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/assessments/a-1/appointment", bytes.NewBufferString(`{"appointment_id":"apt-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("missing appointment id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		h := NewAssessmentHandler(uc)

		r := gin.New()
		r.POST("/v1/assessments/:id/appointment", h.ScheduleAppointment)

		req := httptest.NewRequest(http.MethodPost, "/v1/assessments/a-1/appointment", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAssessmentHandler_GetAssessment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		h := NewAssessmentHandler(uc)

		r := gin.New()
		r.GET("/v1/assessments/:id", h.GetAssessment)

		uc.EXPECT().GetByID(gomock.Any(), "a-404").Return(entities.Assessment{}, usecase.ErrAssessmentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/assessments/a-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssessmentUseCase(ctrl)
		h := NewAssessmentHandler(uc)

		r := gin.New()
		r.GET("/v1/assessments/:id", h.GetAssessment)

		uc.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.Assessment{ID: "a-1", RequestID: "req-1", Stage: entities.StageRequestReviewed}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/assessments/a-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["id"] != "a-1" || body["stage"] != "request_reviewed" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
