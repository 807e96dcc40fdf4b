package interfaces

import (
	"context"

	"claims_assessment/internal/domain/entities"
)

// IEventSink receives domain events for external consumers (audit log, badge
// refresh). Emission is fire-and-forget: use cases call the sink after a
// successful write and ignore its outcome.
type IEventSink interface {
	StageChanged(ctx context.Context, e entities.StageChanged)
	SnapshotMerged(ctx context.Context, e entities.SnapshotMerged)
	FRCCompleted(ctx context.Context, e entities.FRCCompleted)
	FRCReopened(ctx context.Context, e entities.FRCReopened)
}
