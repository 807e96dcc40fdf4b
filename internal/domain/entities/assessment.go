package entities

import "time"

// Stage represents the assessment's position in the workflow pipeline.
//
// Domain notes:
//   - The assessment-core service is the source of truth for stage state.
//   - Stage changes happen only through the workflow transition table; call
//     sites never compare or assign stages directly.
//   - StageFRCInProgress is informational (list filtering). The FRC subprocess
//     does not move the assessment into it; see usecase.FRCUseCase.

type Stage string

const (
	StageRequestSubmitted     Stage = "request_submitted"
	StageRequestReviewed      Stage = "request_reviewed"
	StageInspectionScheduled  Stage = "inspection_scheduled"
	StageAppointmentScheduled Stage = "appointment_scheduled"
	StageAssessmentInProgress Stage = "assessment_in_progress"
	StageEstimateReview       Stage = "estimate_review"
	StageEstimateSent         Stage = "estimate_sent"
	StageEstimateFinalized    Stage = "estimate_finalized"
	StageFRCInProgress        Stage = "frc_in_progress"
	StageArchived             Stage = "archived"
	StageCancelled            Stage = "cancelled"
)

// Stages lists every stage in pipeline order, terminal cancelled last.
var Stages = []Stage{
	StageRequestSubmitted,
	StageRequestReviewed,
	StageInspectionScheduled,
	StageAppointmentScheduled,
	StageAssessmentInProgress,
	StageEstimateReview,
	StageEstimateSent,
	StageEstimateFinalized,
	StageFRCInProgress,
	StageArchived,
	StageCancelled,
}

// RequiresAppointment reports whether the stage may only be held by an
// assessment with a bound appointment.
func (s Stage) RequiresAppointment() bool {
	switch s {
	case StageAppointmentScheduled, StageAssessmentInProgress, StageEstimateReview,
		StageEstimateSent, StageEstimateFinalized, StageFRCInProgress:
		return true
	}
	return false
}

// Terminal reports whether the stage ends the pipeline. Archived assessments
// can still be reopened through the reversal transition; cancelled ones cannot.
func (s Stage) Terminal() bool {
	return s == StageArchived || s == StageCancelled
}

// Assessment is the claim assessment persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (request_id-index): request_id
//
// Invariants:
//   - Exactly one assessment per request (conditional create on request_id).
//   - AppointmentID is set whenever Stage.RequiresAppointment().
//   - Rows are never deleted; archived/cancelled are the terminal stages.

type Assessment struct {
	ID            string    `json:"id"`
	RequestID     string    `json:"request_id"`
	AppointmentID *string   `json:"appointment_id,omitempty"`
	Stage         Stage     `json:"stage"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
