package interfaces

import (
	"context"

	"github.com/shopspring/decimal"

	"claims_assessment/internal/domain/entities"
)

// EstimateBaseline is the finalized-estimate view the costing subprocess is
// seeded from.
type EstimateBaseline struct {
	Lines            []entities.BaselineLine
	EstimateSubtotal decimal.Decimal
	VATPercentage    decimal.Decimal
}

// IEstimateReader supplies the baseline estimate read model. The estimate
// system owns the data; the core only reads it.
type IEstimateReader interface {
	BaselineByAssessment(ctx context.Context, assessmentID string) (EstimateBaseline, error)
}

// IAdditionalsReader supplies the current additionals state for an assessment.
// Read-only input to the snapshot merge.
type IAdditionalsReader interface {
	ListByAssessment(ctx context.Context, assessmentID string) ([]entities.AdditionalLine, error)
}
