package interfaces

import (
	"context"

	"claims_assessment/internal/domain/entities"
)

// IAssessmentRepository abstracts DynamoDB persistence for Assessment.
//
// The assessment core must be able to:
//   - create an assessment when a request is submitted (exactly one per request)
//   - move the stage with a compare-and-set on the expected current stage
//   - bind an appointment before appointment-dependent stages are entered
//
// UpdateStageCAS returns concurrency.ErrStaleState when the stored stage no
// longer matches expected; it never writes partially.

type IAssessmentRepository interface {
	Create(ctx context.Context, a entities.Assessment) (entities.Assessment, error)
	GetByID(ctx context.Context, id string) (entities.Assessment, error)
	GetByRequestID(ctx context.Context, requestID string) (entities.Assessment, error)
	UpdateStageCAS(ctx context.Context, id string, expected, to entities.Stage) (entities.Assessment, error)
	SetAppointment(ctx context.Context, id string, appointmentID string) (entities.Assessment, error)
}
