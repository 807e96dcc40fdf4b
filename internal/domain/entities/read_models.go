package entities

// Canonical shapes for the two external read models the costing engine
// consumes. Adapters normalize whatever wire shape they ingest into these;
// the core never branches on alternative input shapes.

// ApprovalStatus is the additionals system's own approval state for a line.
// It is distinct from Decision, which is the assessor's call inside the FRC
// snapshot.
type ApprovalStatus string

const (
	ApprovalStatusPending         ApprovalStatus = "pending"
	ApprovalStatusApproved        ApprovalStatus = "approved"
	ApprovalStatusDeclined        ApprovalStatus = "declined"
	ApprovalStatusPendingDeletion ApprovalStatus = "pending_deletion"
)

// BaselineLine is one line of the original (finalized) estimate.
type BaselineLine struct {
	SourceLineID string     `json:"source_line_id"`
	Description  string     `json:"description"`
	Quoted       LineValues `json:"quoted"`
}

// AdditionalLine is one post-estimate change request line.
//
// IsRemoval lines deduct a baseline line without deleting audit history:
// RemovalForSourceLineID points at the baseline line and the quoted nett
// values mirror it negated.
type AdditionalLine struct {
	SourceLineID           string         `json:"source_line_id"`
	Description            string         `json:"description"`
	ApprovalStatus         ApprovalStatus `json:"approval_status"`
	IsRemoval              bool           `json:"is_removal"`
	RemovalForSourceLineID string         `json:"removal_for_source_line_id,omitempty"`
	Quoted                 LineValues     `json:"quoted"`
}
