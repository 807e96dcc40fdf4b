package interfaces

import (
	"context"

	"claims_assessment/internal/domain/entities"
)

// IFRCRepository abstracts DynamoDB persistence for FRCRecord.
//
// CommitSnapshotCAS persists the record's line items, aggregates and status
// under the condition that the stored line_items_version still equals
// expectedVersion, then stores expectedVersion+1. A losing writer receives
// concurrency.ErrVersionConflict and nothing is written.

type IFRCRepository interface {
	Create(ctx context.Context, r entities.FRCRecord) (entities.FRCRecord, error)
	GetByID(ctx context.Context, id string) (entities.FRCRecord, error)
	GetByAssessmentID(ctx context.Context, assessmentID string) (entities.FRCRecord, error)
	CommitSnapshotCAS(ctx context.Context, r entities.FRCRecord, expectedVersion int64) (entities.FRCRecord, error)
}
