package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "claims_assessment/internal/adapter/http/dto/request"
	response "claims_assessment/internal/adapter/http/dto/response"
	"claims_assessment/internal/domain/concurrency"
	"claims_assessment/internal/domain/costing"
	"claims_assessment/internal/domain/workflow"
	"claims_assessment/internal/usecase"
	"claims_assessment/pkg"
)

var (
	errInvalidFRCPayload = pkg.NewDomainErrorSimple("INVALID_FRC_INPUT", "Invalid FRC payload", http.StatusBadRequest)
)

// FRCHandler handles HTTP requests for the final-repair-costing subprocess.

type FRCHandler struct {
	usecase usecase.IFRCUseCase
}

func NewFRCHandler(uc usecase.IFRCUseCase) *FRCHandler {
	return &FRCHandler{usecase: uc}
}

// StartFRC opens the costing subprocess for an assessment sitting on
// estimate_finalized. The assessment stage is not changed.
func (h *FRCHandler) StartFRC(c *gin.Context) {
	r, err := h.usecase.Start(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapFRCError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromFRCRecord(r))
}

func (h *FRCHandler) GetFRC(c *gin.Context) {
	r, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapFRCError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFRCRecord(r))
}

// MergeSnapshot reconciles the snapshot against the current baseline and
// additionals. Also serves the manual "refresh snapshot" action.
func (h *FRCHandler) MergeSnapshot(c *gin.Context) {
	var payload request.MergeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFRCPayload.HTTPStatus, errInvalidFRCPayload.ToHTTPError())
		return
	}
	expectedVersion, err := payload.ResolveExpectedVersion()
	if err != nil {
		c.JSON(errInvalidFRCPayload.HTTPStatus, errInvalidFRCPayload.ToHTTPError())
		return
	}

	r, err := h.usecase.MergeSnapshot(c.Request.Context(), c.Param("id"), expectedVersion)
	if err != nil {
		appErr := mapFRCError(err).WithDetails(map[string]any{
			"frc_id":           c.Param("id"),
			"expected_version": expectedVersion,
		})
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFRCRecord(r))
}

func (h *FRCHandler) CompleteFRC(c *gin.Context) {
	r, err := h.usecase.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapFRCError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFRCRecord(r))
}

func (h *FRCHandler) ReopenFRC(c *gin.Context) {
	r, err := h.usecase.Reopen(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapFRCError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFRCRecord(r))
}

func (h *FRCHandler) UpdateLineDecision(c *gin.Context) {
	var payload request.DecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFRCPayload.HTTPStatus, errInvalidFRCPayload.ToHTTPError())
		return
	}
	expectedVersion, err := payload.ResolveExpectedVersion()
	if err != nil {
		c.JSON(errInvalidFRCPayload.HTTPStatus, errInvalidFRCPayload.ToHTTPError())
		return
	}

	r, err := h.usecase.UpdateLineDecision(c.Request.Context(), usecase.LineDecisionCommand{
		FRCID:           c.Param("id"),
		Fingerprint:     c.Param("fingerprint"),
		Decision:        payload.ResolveDecision(),
		Actual:          payload.ResolveActual(),
		ExpectedVersion: expectedVersion,
	})
	if err != nil {
		appErr := mapFRCError(err).WithDetails(map[string]any{
			"frc_id":      c.Param("id"),
			"fingerprint": c.Param("fingerprint"),
		})
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFRCRecord(r))
}

func (h *FRCHandler) GetTotals(c *gin.Context) {
	r, totals, err := h.usecase.ComputeTotals(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapFRCError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTotals(r.ID, totals))
}

func mapFRCError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFRCID),
		errors.Is(err, usecase.ErrInvalidAssessmentID),
		errors.Is(err, usecase.ErrInvalidFingerprint),
		errors.Is(err, usecase.ErrInvalidDecision),
		errors.Is(err, costing.ErrValidation):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, workflow.ErrInvalidTransition), errors.Is(err, usecase.ErrFRCInvalidState):
		return pkg.NewDomainError("INVALID_TRANSITION", "Subprocess change not permitted from the current state", err, http.StatusConflict)
	case errors.Is(err, concurrency.ErrVersionConflict), errors.Is(err, concurrency.ErrStaleState):
		return pkg.NewDomainError("VERSION_CONFLICT", "Record changed since it was read; refetch and retry", err, http.StatusConflict)
	case errors.Is(err, costing.ErrIntegrityViolation):
		return pkg.NewDomainError("INTEGRITY_VIOLATION", "Snapshot integrity violation", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrFRCAlreadyExists):
		return pkg.NewDomainErrorSimple("FRC_ALREADY_EXISTS", "FRC record already exists for this assessment", http.StatusConflict)
	case errors.Is(err, usecase.ErrFRCNotFound):
		return pkg.NewDomainErrorSimple("FRC_NOT_FOUND", "FRC record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineNotFound):
		return pkg.NewDomainErrorSimple("LINE_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAssessmentNotFound):
		return pkg.NewDomainErrorSimple("ASSESSMENT_NOT_FOUND", "Assessment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
