package audit

import (
	"context"

	"go.uber.org/zap"

	"claims_assessment/internal/domain/entities"
	"claims_assessment/internal/usecase/interfaces"
)

// ZapSink writes domain events to the structured audit log. It is the default
// event-sink wiring; downstream consumers (badge refresh, navigation) tail the
// same stream. A sink failure never reaches the use case layer: zap's writers
// do not return errors into the call path.

type ZapSink struct {
	logger *zap.Logger
}

var _ interfaces.IEventSink = (*ZapSink)(nil)

func NewZapSink(logger *zap.Logger) *ZapSink {
	return &ZapSink{logger: logger.Named("audit")}
}

func (s *ZapSink) StageChanged(_ context.Context, e entities.StageChanged) {
	s.logger.Info("stage_changed",
		zap.String("assessment_id", e.AssessmentID),
		zap.String("from", string(e.From)),
		zap.String("to", string(e.To)),
		zap.String("event", e.Event),
	)
}

func (s *ZapSink) SnapshotMerged(_ context.Context, e entities.SnapshotMerged) {
	s.logger.Info("snapshot_merged",
		zap.String("frc_id", e.FRCID),
		zap.String("assessment_id", e.AssessmentID),
		zap.Int64("version", e.Version),
		zap.Int("line_count", e.LineCount),
	)
}

func (s *ZapSink) FRCCompleted(_ context.Context, e entities.FRCCompleted) {
	s.logger.Info("frc_completed",
		zap.String("frc_id", e.FRCID),
		zap.String("assessment_id", e.AssessmentID),
	)
}

func (s *ZapSink) FRCReopened(_ context.Context, e entities.FRCReopened) {
	s.logger.Info("frc_reopened",
		zap.String("frc_id", e.FRCID),
		zap.String("assessment_id", e.AssessmentID),
	)
}
