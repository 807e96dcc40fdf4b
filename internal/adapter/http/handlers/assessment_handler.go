package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "claims_assessment/internal/adapter/http/dto/request"
	response "claims_assessment/internal/adapter/http/dto/response"
	"claims_assessment/internal/domain/concurrency"
	"claims_assessment/internal/domain/workflow"
	"claims_assessment/internal/usecase"
	"claims_assessment/pkg"
)

var (
	errInvalidAssessmentPayload = pkg.NewDomainErrorSimple("INVALID_ASSESSMENT_INPUT", "Invalid assessment payload", http.StatusBadRequest)
)

// AssessmentHandler handles HTTP requests for assessment lifecycle operations.
//
// Every stage move goes through the transition endpoint; there is no direct
// stage write anywhere in the HTTP surface.

type AssessmentHandler struct {
	usecase usecase.IAssessmentUseCase
}

func NewAssessmentHandler(uc usecase.IAssessmentUseCase) *AssessmentHandler {
	return &AssessmentHandler{usecase: uc}
}

// CreateAssessment registers a new assessment for a claim request at
// request_submitted. Exactly one assessment may exist per request.
func (h *AssessmentHandler) CreateAssessment(c *gin.Context) {
	var payload request.CreateAssessmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAssessmentPayload.HTTPStatus, errInvalidAssessmentPayload.ToHTTPError())
		return
	}

	requestID := payload.ResolveRequestID()
	if requestID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	a, err := h.usecase.CreateAssessment(c.Request.Context(), requestID)
	if err != nil {
		appErr := mapAssessmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAssessment(a))
}

func (h *AssessmentHandler) GetAssessment(c *gin.Context) {
	a, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAssessmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAssessment(a))
}

// AttemptTransition fires a named workflow event against the assessment. A
// refused transition reports its kind plus the stage it was attempted from, so
// the caller can render an actionable message.
func (h *AssessmentHandler) AttemptTransition(c *gin.Context) {
	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAssessmentPayload.HTTPStatus, errInvalidAssessmentPayload.ToHTTPError())
		return
	}

	a, err := h.usecase.AttemptTransition(
		c.Request.Context(),
		c.Param("id"),
		workflow.Event(payload.Event),
		payload.ResolveExpectedStage(),
	)
	if err != nil {
		appErr := mapAssessmentError(err).WithDetails(map[string]any{
			"assessment_id": c.Param("id"),
			"event":         payload.Event,
		})
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAssessment(a))
}

func (h *AssessmentHandler) ScheduleAppointment(c *gin.Context) {
	var payload request.AppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAssessmentPayload.HTTPStatus, errInvalidAssessmentPayload.ToHTTPError())
		return
	}

	appointmentID := payload.ResolveAppointmentID()
	if appointmentID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	a, err := h.usecase.ScheduleAppointment(c.Request.Context(), c.Param("id"), appointmentID, payload.ResolveExpectedStage())
	if err != nil {
		appErr := mapAssessmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAssessment(a))
}

func mapAssessmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID),
		errors.Is(err, usecase.ErrInvalidAssessmentID),
		errors.Is(err, usecase.ErrInvalidAppointmentID),
		errors.Is(err, workflow.ErrUnknownEvent):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, workflow.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Transition not permitted from the current stage", err, http.StatusConflict)
	case errors.Is(err, workflow.ErrMissingPrerequisite):
		return pkg.NewDomainError("MISSING_PREREQUISITE", "Target stage requires an appointment", err, http.StatusUnprocessableEntity)
	case errors.Is(err, concurrency.ErrStaleState):
		return pkg.NewDomainError("STALE_STATE", "Assessment changed since it was read; refetch and retry", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrAssessmentAlreadyExists):
		return pkg.NewDomainErrorSimple("ASSESSMENT_ALREADY_EXISTS", "Assessment already exists for this request", http.StatusConflict)
	case errors.Is(err, usecase.ErrAssessmentNotFound):
		return pkg.NewDomainErrorSimple("ASSESSMENT_NOT_FOUND", "Assessment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
