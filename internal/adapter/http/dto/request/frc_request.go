package request

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"claims_assessment/internal/domain/entities"
)

var ErrMissingExpectedVersion = errors.New("missing expected_version")

// MergeRequest carries the optimistic-lock token for a snapshot merge or
// manual refresh. The pointer distinguishes an absent field from version 0,
// which is a legitimate token for the first merge.
type MergeRequest struct {
	ExpectedVersion *int64 `json:"expected_version"`
}

func (r MergeRequest) ResolveExpectedVersion() (int64, error) {
	if r.ExpectedVersion == nil {
		return 0, ErrMissingExpectedVersion
	}
	return *r.ExpectedVersion, nil
}

// LineValuesPayload mirrors the five monetary categories on the wire.
// decimal.Decimal accepts both JSON numbers and strings.
type LineValuesPayload struct {
	PartsNett   decimal.Decimal `json:"parts_nett"`
	Labour      decimal.Decimal `json:"labour"`
	Paint       decimal.Decimal `json:"paint"`
	OutworkNett decimal.Decimal `json:"outwork_nett"`
	Markup      decimal.Decimal `json:"markup"`
}

func (p LineValuesPayload) ToLineValues() entities.LineValues {
	return entities.LineValues{
		PartsNett:   p.PartsNett,
		Labour:      p.Labour,
		Paint:       p.Paint,
		OutworkNett: p.OutworkNett,
		Markup:      p.Markup,
	}
}

// DecisionRequest updates one line's decision, optionally capturing its
// actual values in the same versioned write.
type DecisionRequest struct {
	Decision        string             `json:"decision" binding:"required"`
	Actual          *LineValuesPayload `json:"actual"`
	ExpectedVersion *int64             `json:"expected_version"`
}

func (r DecisionRequest) ResolveDecision() entities.Decision {
	return entities.Decision(strings.TrimSpace(strings.ToLower(r.Decision)))
}

func (r DecisionRequest) ResolveExpectedVersion() (int64, error) {
	if r.ExpectedVersion == nil {
		return 0, ErrMissingExpectedVersion
	}
	return *r.ExpectedVersion, nil
}

func (r DecisionRequest) ResolveActual() *entities.LineValues {
	if r.Actual == nil {
		return nil
	}
	v := r.Actual.ToLineValues()
	return &v
}
