package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"claims_assessment/internal/adapter/http/handlers/mocks"
	"claims_assessment/internal/domain/concurrency"
	"claims_assessment/internal/domain/costing"
	"claims_assessment/internal/domain/entities"
	"claims_assessment/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestFRCHandler_StartFRC(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFRCUseCase(ctrl)
		h := NewFRCHandler(uc)

		r := gin.New()
		r.POST("/v1/assessments/:id/frc", h.StartFRC)

		uc.EXPECT().Start(gomock.Any(), "a-1").Return(entities.FRCRecord{
			ID: "frc-1", AssessmentID: "a-1", Status: entities.FRCStatusInProgress,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/assessments/a-1/frc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("duplicate start conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFRCUseCase(ctrl)
		h := NewFRCHandler(uc)

		r := gin.New()
		r.POST("/v1/assessments/:id/frc", h.StartFRC)

		uc.EXPECT().Start(gomock.Any(), "a-1").Return(entities.FRCRecord{}, usecase.ErrFRCAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/assessments/a-1/frc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if he := decodeHTTPError(t, w.Body); he.Code != "FRC_ALREADY_EXISTS" {
			t.Fatalf("unexpected error code %q", he.Code)
		}
	})
}

func TestFRCHandler_MergeSnapshot(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing expected_version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFRCUseCase(ctrl)
		h := NewFRCHandler(uc)

		r := gin.New()
		r.POST("/v1/frc/:id/merge", h.MergeSnapshot)

		req := httptest.NewRequest(http.MethodPost, "/v1/frc/frc-1/merge", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("version conflict with details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFRCUseCase(ctrl)
		h := NewFRCHandler(uc)

		r := gin.New()
		r.POST("/v1/frc/:id/merge", h.MergeSnapshot)

		uc.EXPECT().MergeSnapshot(gomock.Any(), "frc-1", int64(3)).Return(entities.FRCRecord{}, concurrency.ErrVersionConflict)

		req := httptest.NewRequest(http.MethodPost, "/v1/frc/frc-1/merge", bytes.NewBufferString(`{"expected_version":3}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		he := decodeHTTPError(t, w.Body)
		if he.Code != "VERSION_CONFLICT" {
			t.Fatalf("unexpected error code %q", he.Code)
		}
		if he.Details["frc_id"] != "frc-1" {
			t.Fatalf("details not attached: %+v", he.Details)
		}
	})

	t.Run("integrity violation maps to unprocessable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFRCUseCase(ctrl)
		h := NewFRCHandler(uc)

		r := gin.New()
		r.POST("/v1/frc/:id/merge", h.MergeSnapshot)

		uc.EXPECT().MergeSnapshot(gomock.Any(), "frc-1", int64(1)).Return(entities.FRCRecord{}, costing.ErrIntegrityViolation)

		req := httptest.NewRequest(http.MethodPost, "/v1/frc/frc-1/merge", bytes.NewBufferString(`{"expected_version":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success returns refreshed snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFRCUseCase(ctrl)
		h := NewFRCHandler(uc)

		r := gin.New()
		r.POST("/v1/frc/:id/merge", h.MergeSnapshot)

		uc.EXPECT().MergeSnapshot(gomock.Any(), "frc-1", int64(2)).Return(entities.FRCRecord{
			ID: "frc-1", AssessmentID: "a-1", Status: entities.FRCStatusInProgress, LineItemsVersion: 3,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/frc/frc-1/merge", bytes.NewBufferString(`{"expected_version":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["line_items_version"] != float64(3) {
			t.Fatalf("unexpected version: %v", body["line_items_version"])
		}
	})
}

func TestFRCHandler_UpdateLineDecision(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing decision rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFRCUseCase(ctrl)
		h := NewFRCHandler(uc)

		r := gin.New()
		r.POST("/v1/frc/:id/lines/:fingerprint/decision", h.UpdateLineDecision)

		req := httptest.NewRequest(http.MethodPost, "/v1/frc/frc-1/lines/estimate:b1/decision", bytes.NewBufferString(`{"expected_version":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("line not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFRCUseCase(ctrl)
		h := NewFRCHandler(uc)

		r := gin.New()
		r.POST("/v1/frc/:id/lines/:fingerprint/decision", h.UpdateLineDecision)

		uc.EXPECT().UpdateLineDecision(gomock.Any(), gomock.Any()).Return(entities.FRCRecord{}, usecase.ErrLineNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/frc/frc-1/lines/estimate:zz/decision",
			bytes.NewBufferString(`{"decision":"agree","expected_version":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("decision with actuals forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFRCUseCase(ctrl)
		h := NewFRCHandler(uc)

		r := gin.New()
		r.POST("/v1/frc/:id/lines/:fingerprint/decision", h.UpdateLineDecision)

		uc.EXPECT().UpdateLineDecision(gomock.Any(), gomock.Cond(func(cmd usecase.LineDecisionCommand) bool {
			return cmd.FRCID == "frc-1" &&
				cmd.Fingerprint == "estimate:b1" &&
				cmd.Decision == entities.DecisionAgree &&
				cmd.ExpectedVersion == 2 &&
				cmd.Actual != nil && cmd.Actual.PartsNett.Equal(decimal.RequireFromString("92.50"))
		})).Return(entities.FRCRecord{ID: "frc-1", LineItemsVersion: 3}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/frc/frc-1/lines/estimate:b1/decision",
			bytes.NewBufferString(`{"decision":"agree","expected_version":2,"actual":{"parts_nett":"92.50"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestFRCHandler_GetTotals(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("renders two-decimal money", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFRCUseCase(ctrl)
		h := NewFRCHandler(uc)

		r := gin.New()
		r.GET("/v1/frc/:id/totals", h.GetTotals)

		totals := costing.Totals{
			BaselineSubtotal: decimal.RequireFromString("2889.6"),
			BaselineVAT:      decimal.RequireFromString("433.44"),
			BaselineTotal:    decimal.RequireFromString("3323.04"),
			FinalSubtotal:    decimal.RequireFromString("2889.6"),
			FinalVAT:         decimal.RequireFromString("433.44"),
			FinalTotal:       decimal.RequireFromString("3323.04"),
			Delta:            decimal.Zero,
			DeltaIndicator:   costing.DeltaUnchanged,
		}
		uc.EXPECT().ComputeTotals(gomock.Any(), "frc-1").Return(entities.FRCRecord{ID: "frc-1"}, totals, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/frc/frc-1/totals", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["baseline_total"] != "3323.04" {
			t.Fatalf("baseline_total = %v, want 3323.04", body["baseline_total"])
		}
		if body["final_subtotal"] != "2889.60" {
			t.Fatalf("final_subtotal = %v, want 2889.60", body["final_subtotal"])
		}
		if body["delta"] != "0.00" || body["delta_indicator"] != "unchanged" {
			t.Fatalf("unexpected delta: %v %v", body["delta"], body["delta_indicator"])
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFRCUseCase(ctrl)
		h := NewFRCHandler(uc)

		r := gin.New()
		r.GET("/v1/frc/:id/totals", h.GetTotals)

		uc.EXPECT().ComputeTotals(gomock.Any(), "frc-404").Return(entities.FRCRecord{}, costing.Totals{}, usecase.ErrFRCNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/frc/frc-404/totals", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
