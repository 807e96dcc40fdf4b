package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// FRCStatus is the final-repair-costing subprocess state. It is deliberately
// decoupled from Assessment.Stage: starting the subprocess must not move the
// assessment out of estimate_finalized.

type FRCStatus string

const (
	FRCStatusInProgress FRCStatus = "in_progress"
	FRCStatusCompleted  FRCStatus = "completed"
)

// LineSource identifies where a costing line originated.
type LineSource string

const (
	LineSourceEstimate   LineSource = "estimate"
	LineSourceAdditional LineSource = "additional"
)

// Decision is the assessor's call on a single costing line.
type Decision string

const (
	DecisionPending Decision = "pending"
	DecisionAgree   Decision = "agree"
	DecisionDecline Decision = "decline"
)

// LineValues groups the monetary categories carried per line. Markup is kept
// as its own category and only ever enters totals as an aggregate sum.
type LineValues struct {
	PartsNett   decimal.Decimal `json:"parts_nett"`
	Labour      decimal.Decimal `json:"labour"`
	Paint       decimal.Decimal `json:"paint"`
	OutworkNett decimal.Decimal `json:"outwork_nett"`
	Markup      decimal.Decimal `json:"markup"`
}

// Add returns the category-wise sum of v and o.
func (v LineValues) Add(o LineValues) LineValues {
	return LineValues{
		PartsNett:   v.PartsNett.Add(o.PartsNett),
		Labour:      v.Labour.Add(o.Labour),
		Paint:       v.Paint.Add(o.Paint),
		OutworkNett: v.OutworkNett.Add(o.OutworkNett),
		Markup:      v.Markup.Add(o.Markup),
	}
}

// Subtotal is the sum of all five categories.
func (v LineValues) Subtotal() decimal.Decimal {
	return v.PartsNett.Add(v.Labour).Add(v.Paint).Add(v.OutworkNett).Add(v.Markup)
}

// LineItem is one element of the FRC snapshot. It is produced and owned by the
// snapshot merger; other components read it, and decisions change only through
// the explicit decision-update operation under the version guard.
//
// Fingerprint is "{source}:{sourceLineId}" and is the identity used to carry
// decisions and actuals forward across merges.
type LineItem struct {
	Fingerprint            string     `json:"fingerprint"`
	Source                 LineSource `json:"source"`
	SourceLineID           string     `json:"source_line_id"`
	Description            string     `json:"description"`
	Decision               Decision   `json:"decision"`
	IsRemovalAdditional    bool       `json:"is_removal_additional"`
	RemovalForSourceLineID string     `json:"removal_for_source_line_id,omitempty"`
	RemovedViaAdditionals  bool       `json:"removed_via_additionals"`
	Quoted                 LineValues `json:"quoted"`
	Actual                 LineValues `json:"actual"`
}

// Fingerprint builds the stable line identity key.
func Fingerprint(source LineSource, sourceLineID string) string {
	return fmt.Sprintf("%s:%s", source, sourceLineID)
}

// CountsTowardFinal reports whether the line participates in the final total:
// agreed and not displaced by a removal additional. Declined and removed lines
// stay in the snapshot for audit but never enter totals.
func (li LineItem) CountsTowardFinal() bool {
	return li.Decision == DecisionAgree && !li.RemovedViaAdditionals
}

// FRCRecord is the final-repair-costing record, one per assessment, created
// when the subprocess starts.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (assessment_id-index): assessment_id
//
// LineItemsVersion increases by exactly 1 on every successful snapshot commit
// and is the sole concurrency token for this record.
type FRCRecord struct {
	ID           string     `json:"id"`
	AssessmentID string     `json:"assessment_id"`
	Status       FRCStatus  `json:"status"`
	LineItems    []LineItem `json:"line_items"`

	LineItemsVersion int64 `json:"line_items_version"`

	QuotedEstimateSubtotal decimal.Decimal `json:"quoted_estimate_subtotal"`
	VATPercentage          decimal.Decimal `json:"vat_percentage"`

	// Aggregates derived from the snapshot on every commit; kept on the record
	// so list views never recompute line sums.
	Actual            LineValues      `json:"actual"`
	ActualSubtotal    decimal.Decimal `json:"actual_subtotal"`
	ActualVAT         decimal.Decimal `json:"actual_vat"`
	ActualTotal       decimal.Decimal `json:"actual_total"`
	ActualAdditionals LineValues      `json:"actual_additionals"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
