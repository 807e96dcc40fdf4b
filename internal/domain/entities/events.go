package entities

// Domain events emitted after successful mutations. Consumers (audit log,
// badge refresh, navigation) are external; emission is fire-and-forget and
// never fails the originating operation.

type StageChanged struct {
	AssessmentID string `json:"assessment_id"`
	From         Stage  `json:"from"`
	To           Stage  `json:"to"`
	Event        string `json:"event"`
}

type SnapshotMerged struct {
	FRCID        string `json:"frc_id"`
	AssessmentID string `json:"assessment_id"`
	Version      int64  `json:"version"`
	LineCount    int    `json:"line_count"`
}

type FRCCompleted struct {
	FRCID        string `json:"frc_id"`
	AssessmentID string `json:"assessment_id"`
}

type FRCReopened struct {
	FRCID        string `json:"frc_id"`
	AssessmentID string `json:"assessment_id"`
}
