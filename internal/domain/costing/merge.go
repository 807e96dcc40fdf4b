package costing

import (
	"errors"
	"fmt"

	"claims_assessment/internal/domain/entities"
)

var (
	ErrIntegrityViolation = errors.New("snapshot integrity violation")
	ErrValidation         = errors.New("invalid merge input")
)

// MergeSnapshot reconciles the baseline estimate lines and the current
// additionals state into a new line-item snapshot, carrying forward every
// decision and actual value a human already recorded on a previously-merged
// line. Running it twice over unchanged input yields an identical array.
//
// The returned slice is ordered baseline lines first (input order), then
// additionals (input order), so repeated merges are byte-stable.
func MergeSnapshot(existing []entities.LineItem, baseline []entities.BaselineLine, additionals []entities.AdditionalLine) ([]entities.LineItem, error) {
	oldByFingerprint := make(map[string]entities.LineItem, len(existing))
	for _, li := range existing {
		oldByFingerprint[li.Fingerprint] = li
	}

	// Baseline line ids that an included removal additional displaces.
	removedBaseline := make(map[string]string, 2)

	candidates := make([]entities.AdditionalLine, 0, len(additionals))
	for _, al := range additionals {
		if al.SourceLineID == "" {
			return nil, fmt.Errorf("%w: additional line without source line id", ErrValidation)
		}
		// Lines parked for deletion drop out of the snapshot, unless they are
		// removal markers, which always participate.
		if al.ApprovalStatus == entities.ApprovalStatusPendingDeletion && !al.IsRemoval {
			continue
		}
		if al.IsRemoval {
			if al.RemovalForSourceLineID == "" {
				return nil, fmt.Errorf("%w: removal additional %q has no target line", ErrIntegrityViolation, al.SourceLineID)
			}
			if prev, dup := removedBaseline[al.RemovalForSourceLineID]; dup {
				return nil, fmt.Errorf("%w: baseline line %q removed by both %q and %q",
					ErrIntegrityViolation, al.RemovalForSourceLineID, prev, al.SourceLineID)
			}
			removedBaseline[al.RemovalForSourceLineID] = al.SourceLineID
		}
		candidates = append(candidates, al)
	}

	merged := make([]entities.LineItem, 0, len(baseline)+len(candidates))

	baselineSeen := make(map[string]bool, len(baseline))
	for _, bl := range baseline {
		if bl.SourceLineID == "" {
			return nil, fmt.Errorf("%w: baseline line without source line id", ErrValidation)
		}
		baselineSeen[bl.SourceLineID] = true

		li := entities.LineItem{
			Fingerprint:  entities.Fingerprint(entities.LineSourceEstimate, bl.SourceLineID),
			Source:       entities.LineSourceEstimate,
			SourceLineID: bl.SourceLineID,
			Description:  bl.Description,
			Decision:     entities.DecisionPending,
			Quoted:       bl.Quoted,
		}
		if old, ok := oldByFingerprint[li.Fingerprint]; ok {
			li.Decision = old.Decision
			li.Actual = old.Actual
		}
		// Recomputed every merge: the flag tracks current additionals state,
		// not a prior snapshot's view of it.
		_, li.RemovedViaAdditionals = removedBaseline[bl.SourceLineID]
		merged = append(merged, li)
	}

	for target := range removedBaseline {
		if !baselineSeen[target] {
			return nil, fmt.Errorf("%w: removal additional %q targets unknown baseline line %q",
				ErrIntegrityViolation, removedBaseline[target], target)
		}
	}

	for _, al := range candidates {
		li := entities.LineItem{
			Fingerprint:            entities.Fingerprint(entities.LineSourceAdditional, al.SourceLineID),
			Source:                 entities.LineSourceAdditional,
			SourceLineID:           al.SourceLineID,
			Description:            al.Description,
			Decision:               entities.DecisionPending,
			IsRemovalAdditional:    al.IsRemoval,
			RemovalForSourceLineID: al.RemovalForSourceLineID,
			Quoted:                 al.Quoted,
		}
		if old, ok := oldByFingerprint[li.Fingerprint]; ok {
			li.Decision = old.Decision
			li.Actual = old.Actual
		} else if al.IsRemoval {
			// Removal pairs are agreed automatically; the deduction was already
			// approved on the additionals side.
			li.Decision = entities.DecisionAgree
		}
		merged = append(merged, li)
	}

	return merged, nil
}
