package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"claims_assessment/internal/domain/entities"
	"claims_assessment/internal/domain/workflow"
	"claims_assessment/internal/usecase/interfaces"
)

var (
	ErrAssessmentNotFound      = errors.New("assessment not found")
	ErrAssessmentAlreadyExists = errors.New("assessment already exists for this request")
	ErrInvalidRequestID        = errors.New("invalid request_id")
	ErrInvalidAssessmentID     = errors.New("invalid assessment id")
	ErrInvalidAppointmentID    = errors.New("invalid appointment id")
)

// IAssessmentUseCase exposes assessment lifecycle operations.
//
// AttemptTransition is the only path that moves Assessment.Stage. It resolves
// the named event against the workflow table, optionally checks the caller's
// expected current stage, and applies the change with a stage compare-and-set.

type IAssessmentUseCase interface {
	CreateAssessment(ctx context.Context, requestID string) (entities.Assessment, error)
	AttemptTransition(ctx context.Context, assessmentID string, event workflow.Event, expectedCurrentStage *entities.Stage) (entities.Assessment, error)
	ScheduleAppointment(ctx context.Context, assessmentID, appointmentID string, expectedCurrentStage *entities.Stage) (entities.Assessment, error)
	GetByID(ctx context.Context, id string) (entities.Assessment, error)
	GetByRequestID(ctx context.Context, requestID string) (entities.Assessment, error)
}

type AssessmentUseCase struct {
	repo   interfaces.IAssessmentRepository
	events interfaces.IEventSink
}

var _ IAssessmentUseCase = (*AssessmentUseCase)(nil)

func NewAssessmentUseCase(repo interfaces.IAssessmentRepository, events interfaces.IEventSink) *AssessmentUseCase {
	return &AssessmentUseCase{repo: repo, events: events}
}

func (u *AssessmentUseCase) CreateAssessment(ctx context.Context, requestID string) (entities.Assessment, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.Assessment{}, ErrInvalidRequestID
	}

	// Enforce: 1 assessment per request.
	if existing, err := u.repo.GetByRequestID(ctx, requestID); err != nil {
		return entities.Assessment{}, err
	} else if existing.ID != "" {
		return entities.Assessment{}, ErrAssessmentAlreadyExists
	}

	now := time.Now().UTC()
	a := entities.Assessment{
		ID:        uuid.NewString(),
		RequestID: requestID,
		Stage:     entities.StageRequestSubmitted,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, a)
}

func (u *AssessmentUseCase) AttemptTransition(ctx context.Context, assessmentID string, event workflow.Event, expectedCurrentStage *entities.Stage) (entities.Assessment, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return entities.Assessment{}, ErrInvalidAssessmentID
	}

	a, err := u.GetByID(ctx, assessmentID)
	if err != nil {
		return entities.Assessment{}, err
	}

	if expectedCurrentStage != nil && a.Stage != *expectedCurrentStage {
		return entities.Assessment{}, staleStageError(a.Stage, *expectedCurrentStage)
	}

	res, err := workflow.Resolve(event, a.Stage, a.AppointmentID)
	if err != nil {
		return entities.Assessment{}, err
	}
	if res.NoOp {
		return a, nil
	}

	updated, err := u.repo.UpdateStageCAS(ctx, a.ID, res.From, res.To)
	if err != nil {
		return entities.Assessment{}, err
	}

	if u.events != nil {
		u.events.StageChanged(ctx, entities.StageChanged{
			AssessmentID: a.ID,
			From:         res.From,
			To:           res.To,
			Event:        string(event),
		})
	}
	return updated, nil
}

// ScheduleAppointment binds the appointment and then fires the
// schedule_appointment event, so the prerequisite check in the workflow table
// sees the binding it is about to rely on.
func (u *AssessmentUseCase) ScheduleAppointment(ctx context.Context, assessmentID, appointmentID string, expectedCurrentStage *entities.Stage) (entities.Assessment, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return entities.Assessment{}, ErrInvalidAssessmentID
	}
	appointmentID = strings.TrimSpace(appointmentID)
	if appointmentID == "" {
		return entities.Assessment{}, ErrInvalidAppointmentID
	}

	a, err := u.GetByID(ctx, assessmentID)
	if err != nil {
		return entities.Assessment{}, err
	}
	if expectedCurrentStage != nil && a.Stage != *expectedCurrentStage {
		return entities.Assessment{}, staleStageError(a.Stage, *expectedCurrentStage)
	}

	// Validate before writing anything: a failed transition must leave the
	// assessment untouched, including the appointment binding.
	res, err := workflow.Resolve(workflow.EventScheduleAppointment, a.Stage, &appointmentID)
	if err != nil {
		return entities.Assessment{}, err
	}

	if _, err := u.repo.SetAppointment(ctx, a.ID, appointmentID); err != nil {
		return entities.Assessment{}, err
	}
	if res.NoOp {
		return u.GetByID(ctx, a.ID)
	}

	updated, err := u.repo.UpdateStageCAS(ctx, a.ID, res.From, res.To)
	if err != nil {
		return entities.Assessment{}, err
	}
	if u.events != nil {
		u.events.StageChanged(ctx, entities.StageChanged{
			AssessmentID: a.ID,
			From:         res.From,
			To:           res.To,
			Event:        string(workflow.EventScheduleAppointment),
		})
	}
	return updated, nil
}

func (u *AssessmentUseCase) GetByID(ctx context.Context, id string) (entities.Assessment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Assessment{}, ErrInvalidAssessmentID
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Assessment{}, err
	}
	if a.ID == "" {
		return entities.Assessment{}, ErrAssessmentNotFound
	}
	return a, nil
}

func (u *AssessmentUseCase) GetByRequestID(ctx context.Context, requestID string) (entities.Assessment, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.Assessment{}, ErrInvalidRequestID
	}

	a, err := u.repo.GetByRequestID(ctx, requestID)
	if err != nil {
		return entities.Assessment{}, err
	}
	if a.ID == "" {
		return entities.Assessment{}, ErrAssessmentNotFound
	}
	return a, nil
}
