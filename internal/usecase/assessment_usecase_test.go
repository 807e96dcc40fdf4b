package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"claims_assessment/internal/domain/concurrency"
	"claims_assessment/internal/domain/entities"
	"claims_assessment/internal/domain/workflow"
	mock_interfaces "claims_assessment/internal/usecase/interfaces/mocks"
)

func stagePtr(s entities.Stage) *entities.Stage { return &s }

func appointmentPtr(s string) *string { return &s }

func TestAssessmentUseCase_CreateAssessment(t *testing.T) {
	t.Run("invalid request id", func(t *testing.T) {
		uc := NewAssessmentUseCase(nil, nil)
		_, err := uc.CreateAssessment(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidRequestID) {
			t.Fatalf("expected ErrInvalidRequestID, got %v", err)
		}
	})

	t.Run("already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		uc := NewAssessmentUseCase(repo, nil)

		repo.EXPECT().GetByRequestID(gomock.Any(), "req-1").Return(entities.Assessment{ID: "existing"}, nil)

		_, err := uc.CreateAssessment(context.Background(), "req-1")
		if !errors.Is(err, ErrAssessmentAlreadyExists) {
			t.Fatalf("expected ErrAssessmentAlreadyExists, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		uc := NewAssessmentUseCase(repo, nil)

		repo.EXPECT().GetByRequestID(gomock.Any(), "req-1").Return(entities.Assessment{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Assessment{})).DoAndReturn(
			func(_ context.Context, a entities.Assessment) (entities.Assessment, error) {
				if a.ID == "" || a.RequestID != "req-1" || a.Stage != entities.StageRequestSubmitted {
					t.Fatalf("unexpected assessment: %+v", a)
				}
				if a.CreatedAt.IsZero() || a.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return a, nil
			},
		)

		res, err := uc.CreateAssessment(context.Background(), " req-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestAssessmentUseCase_AttemptTransition(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewAssessmentUseCase(nil, nil)
		_, err := uc.AttemptTransition(context.Background(), "", workflow.EventReviewRequest, nil)
		if !errors.Is(err, ErrInvalidAssessmentID) {
			t.Fatalf("expected ErrInvalidAssessmentID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		uc := NewAssessmentUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.Assessment{}, nil)

		_, err := uc.AttemptTransition(context.Background(), "a-1", workflow.EventReviewRequest, nil)
		if !errors.Is(err, ErrAssessmentNotFound) {
			t.Fatalf("expected ErrAssessmentNotFound, got %v", err)
		}
	})

	t.Run("stale expected stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		uc := NewAssessmentUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.Assessment{ID: "a-1", Stage: entities.StageEstimateSent}, nil)

		_, err := uc.AttemptTransition(context.Background(), "a-1", workflow.EventSendEstimate, stagePtr(entities.StageEstimateReview))
		if !errors.Is(err, concurrency.ErrStaleState) {
			t.Fatalf("expected ErrStaleState, got %v", err)
		}
	})

	t.Run("invalid transition reported, nothing written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		uc := NewAssessmentUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.Assessment{ID: "a-1", Stage: entities.StageRequestSubmitted}, nil)

		_, err := uc.AttemptTransition(context.Background(), "a-1", workflow.EventSendEstimate, nil)
		if !errors.Is(err, workflow.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("idempotent no-op when already on target", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		events := mock_interfaces.NewMockIEventSink(ctrl)
		uc := NewAssessmentUseCase(repo, events)

		repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.Assessment{ID: "a-1", Stage: entities.StageRequestReviewed}, nil)

		res, err := uc.AttemptTransition(context.Background(), "a-1", workflow.EventReviewRequest, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Stage != entities.StageRequestReviewed {
			t.Fatalf("unexpected stage %q", res.Stage)
		}
	})

	t.Run("start assessment from appointment_scheduled", func(t *testing.T) {
		// Regression path: this transition once failed with an incomplete
		// eligible set.
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		events := mock_interfaces.NewMockIEventSink(ctrl)
		uc := NewAssessmentUseCase(repo, events)

		a := entities.Assessment{ID: "a-1", Stage: entities.StageAppointmentScheduled, AppointmentID: appointmentPtr("apt-1")}
		moved := a
		moved.Stage = entities.StageAssessmentInProgress

		repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(a, nil)
		repo.EXPECT().UpdateStageCAS(gomock.Any(), "a-1", entities.StageAppointmentScheduled, entities.StageAssessmentInProgress).Return(moved, nil)
		events.EXPECT().StageChanged(gomock.Any(), entities.StageChanged{
			AssessmentID: "a-1",
			From:         entities.StageAppointmentScheduled,
			To:           entities.StageAssessmentInProgress,
			Event:        string(workflow.EventStartAssessment),
		})

		res, err := uc.AttemptTransition(context.Background(), "a-1", workflow.EventStartAssessment, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Stage != entities.StageAssessmentInProgress {
			t.Fatalf("expected assessment_in_progress, got %q", res.Stage)
		}
	})

	t.Run("cas loss surfaces stale state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		uc := NewAssessmentUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.Assessment{ID: "a-1", Stage: entities.StageRequestSubmitted}, nil)
		repo.EXPECT().UpdateStageCAS(gomock.Any(), "a-1", entities.StageRequestSubmitted, entities.StageRequestReviewed).Return(entities.Assessment{}, concurrency.ErrStaleState)

		_, err := uc.AttemptTransition(context.Background(), "a-1", workflow.EventReviewRequest, nil)
		if !errors.Is(err, concurrency.ErrStaleState) {
			t.Fatalf("expected ErrStaleState, got %v", err)
		}
	})
}

func TestAssessmentUseCase_ScheduleAppointment(t *testing.T) {
	t.Run("invalid appointment id", func(t *testing.T) {
		uc := NewAssessmentUseCase(nil, nil)
		_, err := uc.ScheduleAppointment(context.Background(), "a-1", "  ", nil)
		if !errors.Is(err, ErrInvalidAppointmentID) {
			t.Fatalf("expected ErrInvalidAppointmentID, got %v", err)
		}
	})

	t.Run("wrong stage leaves assessment untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		uc := NewAssessmentUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.Assessment{ID: "a-1", Stage: entities.StageRequestSubmitted}, nil)

		_, err := uc.ScheduleAppointment(context.Background(), "a-1", "apt-1", nil)
		if !errors.Is(err, workflow.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("binds appointment then advances", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		events := mock_interfaces.NewMockIEventSink(ctrl)
		uc := NewAssessmentUseCase(repo, events)

		a := entities.Assessment{ID: "a-1", Stage: entities.StageInspectionScheduled}
		bound := a
		bound.AppointmentID = appointmentPtr("apt-1")
		moved := bound
		moved.Stage = entities.StageAppointmentScheduled

		repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(a, nil)
		repo.EXPECT().SetAppointment(gomock.Any(), "a-1", "apt-1").Return(bound, nil)
		repo.EXPECT().UpdateStageCAS(gomock.Any(), "a-1", entities.StageInspectionScheduled, entities.StageAppointmentScheduled).Return(moved, nil)
		events.EXPECT().StageChanged(gomock.Any(), gomock.AssignableToTypeOf(entities.StageChanged{}))

		res, err := uc.ScheduleAppointment(context.Background(), "a-1", "apt-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Stage != entities.StageAppointmentScheduled {
			t.Fatalf("expected appointment_scheduled, got %q", res.Stage)
		}
		if res.AppointmentID == nil || *res.AppointmentID != "apt-1" {
			t.Fatalf("expected bound appointment, got %+v", res.AppointmentID)
		}
	})
}
