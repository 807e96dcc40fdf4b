package response

import (
	"time"

	"claims_assessment/internal/domain/entities"
)

type AssessmentResponse struct {
	ID            string    `json:"id"`
	RequestID     string    `json:"request_id"`
	AppointmentID string    `json:"appointment_id,omitempty"`
	Stage         string    `json:"stage"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromAssessment(a entities.Assessment) AssessmentResponse {
	resp := AssessmentResponse{
		ID:        a.ID,
		RequestID: a.RequestID,
		Stage:     string(a.Stage),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if a.AppointmentID != nil {
		resp.AppointmentID = *a.AppointmentID
	}
	return resp
}
