package workflow

import (
	"errors"
	"fmt"

	"claims_assessment/internal/domain/entities"
)

var (
	ErrUnknownEvent        = errors.New("unknown transition event")
	ErrInvalidTransition   = errors.New("transition not permitted from current stage")
	ErrMissingPrerequisite = errors.New("missing prerequisite for target stage")
)

// Event names a stage transition. Reversals (reopen) are first-class events
// in the same table, never special-cased branches at call sites.
type Event string

const (
	EventReviewRequest       Event = "review_request"
	EventScheduleInspection  Event = "schedule_inspection"
	EventScheduleAppointment Event = "schedule_appointment"
	EventStartAssessment     Event = "start_assessment"
	EventSubmitForReview     Event = "submit_for_review"
	EventSendEstimate        Event = "send_estimate"
	EventFinalizeEstimate    Event = "finalize_estimate"
	EventFlagFRCInProgress   Event = "flag_frc_in_progress"
	EventCompleteFRC         Event = "complete_frc"
	EventReopenFRC           Event = "reopen_frc"
	EventCancelAssessment    Event = "cancel_assessment"
)

// Transition maps an event to the stages it may fire from and the stage it
// lands on.
type Transition struct {
	EligibleFrom map[entities.Stage]bool
	To           entities.Stage
}

func from(stages ...entities.Stage) map[entities.Stage]bool {
	m := make(map[entities.Stage]bool, len(stages))
	for _, s := range stages {
		m[s] = true
	}
	return m
}

// Table is the single authority on stage movement. Every call site resolves
// through it; stage lists are never inlined elsewhere. Incompleteness here
// once left production assessments silently stuck, so the table is covered by
// an exhaustive (stage x event) test.
var Table = map[Event]Transition{
	EventReviewRequest: {
		EligibleFrom: from(entities.StageRequestSubmitted),
		To:           entities.StageRequestReviewed,
	},
	EventScheduleInspection: {
		EligibleFrom: from(entities.StageRequestReviewed),
		To:           entities.StageInspectionScheduled,
	},
	EventScheduleAppointment: {
		EligibleFrom: from(entities.StageInspectionScheduled),
		To:           entities.StageAppointmentScheduled,
	},
	EventStartAssessment: {
		EligibleFrom: from(entities.StageAppointmentScheduled),
		To:           entities.StageAssessmentInProgress,
	},
	EventSubmitForReview: {
		EligibleFrom: from(entities.StageAssessmentInProgress),
		To:           entities.StageEstimateReview,
	},
	EventSendEstimate: {
		EligibleFrom: from(entities.StageEstimateReview),
		To:           entities.StageEstimateSent,
	},
	EventFinalizeEstimate: {
		EligibleFrom: from(entities.StageEstimateSent),
		To:           entities.StageEstimateFinalized,
	},
	EventFlagFRCInProgress: {
		EligibleFrom: from(entities.StageEstimateFinalized),
		To:           entities.StageFRCInProgress,
	},
	EventCompleteFRC: {
		EligibleFrom: from(entities.StageEstimateFinalized, entities.StageFRCInProgress),
		To:           entities.StageArchived,
	},
	// Reversal: reopening a completed costing pulls the assessment back out of
	// the archive.
	EventReopenFRC: {
		EligibleFrom: from(entities.StageArchived),
		To:           entities.StageEstimateFinalized,
	},
	EventCancelAssessment: {
		EligibleFrom: from(
			entities.StageRequestSubmitted,
			entities.StageRequestReviewed,
			entities.StageInspectionScheduled,
			entities.StageAppointmentScheduled,
			entities.StageAssessmentInProgress,
			entities.StageEstimateReview,
			entities.StageEstimateSent,
			entities.StageEstimateFinalized,
			entities.StageFRCInProgress,
		),
		To: entities.StageCancelled,
	},
}

// Resolution is the typed outcome of resolving an event against a stage.
// NoOp means the assessment already sits on the target stage; callers treat
// that as success without writing.
type Resolution struct {
	From entities.Stage
	To   entities.Stage
	NoOp bool
}

// Resolve validates event against the current stage and appointment binding.
// It always returns a typed verdict; there is no silent pass-through.
func Resolve(event Event, current entities.Stage, appointmentID *string) (Resolution, error) {
	t, ok := Table[event]
	if !ok {
		return Resolution{}, fmt.Errorf("%w: %q", ErrUnknownEvent, event)
	}

	// Retried requests land here after the first attempt already won.
	if current == t.To {
		return Resolution{From: current, To: t.To, NoOp: true}, nil
	}

	if !t.EligibleFrom[current] {
		return Resolution{}, fmt.Errorf("%w: event %q from stage %q", ErrInvalidTransition, event, current)
	}

	if t.To.RequiresAppointment() && (appointmentID == nil || *appointmentID == "") {
		return Resolution{}, fmt.Errorf("%w: stage %q requires an appointment", ErrMissingPrerequisite, t.To)
	}

	return Resolution{From: current, To: t.To}, nil
}
