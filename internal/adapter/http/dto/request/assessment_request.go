package request

import (
	"strings"

	"claims_assessment/internal/domain/entities"
)

// CreateAssessmentRequest accepts both payload shapes emitted by the intake
// integrations: a flat request_id and the nested request object from the older
// query shape. Normalization happens here, once; the core only ever sees the
// resolved id.
type CreateAssessmentRequest struct {
	RequestID string `json:"request_id"`
	Request   struct {
		ID string `json:"id"`
	} `json:"request"`
}

func (r CreateAssessmentRequest) ResolveRequestID() string {
	if v := strings.TrimSpace(r.RequestID); v != "" {
		return v
	}
	return strings.TrimSpace(r.Request.ID)
}

// TransitionRequest names the workflow event to fire and, optionally, the
// stage the caller believes the assessment is on.
type TransitionRequest struct {
	Event         string `json:"event" binding:"required"`
	ExpectedStage string `json:"expected_stage"`
}

func (r TransitionRequest) ResolveExpectedStage() *entities.Stage {
	v := strings.TrimSpace(r.ExpectedStage)
	if v == "" {
		return nil
	}
	s := entities.Stage(v)
	return &s
}

// AppointmentRequest accepts the flat appointment_id and the nested
// appointment object produced by the scheduling system's list query.
type AppointmentRequest struct {
	AppointmentID string `json:"appointment_id"`
	Appointment   struct {
		ID string `json:"id"`
	} `json:"appointment"`
	ExpectedStage string `json:"expected_stage"`
}

func (r AppointmentRequest) ResolveAppointmentID() string {
	if v := strings.TrimSpace(r.AppointmentID); v != "" {
		return v
	}
	return strings.TrimSpace(r.Appointment.ID)
}

func (r AppointmentRequest) ResolveExpectedStage() *entities.Stage {
	v := strings.TrimSpace(r.ExpectedStage)
	if v == "" {
		return nil
	}
	s := entities.Stage(v)
	return &s
}
