package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"claims_assessment/internal/domain/costing"
	"claims_assessment/internal/domain/entities"
	"claims_assessment/internal/domain/workflow"
	"claims_assessment/internal/usecase/interfaces"
)

var (
	ErrFRCNotFound        = errors.New("frc record not found")
	ErrFRCAlreadyExists   = errors.New("frc record already exists for this assessment")
	ErrInvalidFRCID       = errors.New("invalid frc id")
	ErrInvalidFingerprint = errors.New("invalid line fingerprint")
	ErrInvalidDecision    = errors.New("invalid decision")
	ErrLineNotFound       = errors.New("line item not found")
	ErrFRCInvalidState    = errors.New("frc subprocess change not permitted from current status")
)

// IFRCUseCase orchestrates the final-repair-costing subprocess.
//
// Stage coupling is deliberate and minimal:
//   - Start requires estimate_finalized and leaves the stage untouched.
//   - Complete archives the assessment through the complete_frc event.
//   - Reopen reverts it through the reopen_frc reversal event.
//
// Merge, decision updates and the manual refresh all commit through the
// line_items_version compare-and-set; losers get a version conflict and must
// refetch.

type IFRCUseCase interface {
	Start(ctx context.Context, assessmentID string) (entities.FRCRecord, error)
	Complete(ctx context.Context, frcID string) (entities.FRCRecord, error)
	Reopen(ctx context.Context, frcID string) (entities.FRCRecord, error)
	MergeSnapshot(ctx context.Context, frcID string, expectedVersion int64) (entities.FRCRecord, error)
	UpdateLineDecision(ctx context.Context, cmd LineDecisionCommand) (entities.FRCRecord, error)
	ComputeTotals(ctx context.Context, frcID string) (entities.FRCRecord, costing.Totals, error)
	GetByID(ctx context.Context, frcID string) (entities.FRCRecord, error)
}

// LineDecisionCommand is the explicit decision-update operation on one line.
// Actuals, when present, are captured in the same versioned write.
type LineDecisionCommand struct {
	FRCID           string
	Fingerprint     string
	Decision        entities.Decision
	Actual          *entities.LineValues
	ExpectedVersion int64
}

type FRCUseCase struct {
	repo        interfaces.IFRCRepository
	assessments IAssessmentUseCase
	estimates   interfaces.IEstimateReader
	additionals interfaces.IAdditionalsReader
	events      interfaces.IEventSink
}

var _ IFRCUseCase = (*FRCUseCase)(nil)

func NewFRCUseCase(
	repo interfaces.IFRCRepository,
	assessments IAssessmentUseCase,
	estimates interfaces.IEstimateReader,
	additionals interfaces.IAdditionalsReader,
	events interfaces.IEventSink,
) *FRCUseCase {
	return &FRCUseCase{
		repo:        repo,
		assessments: assessments,
		estimates:   estimates,
		additionals: additionals,
		events:      events,
	}
}

func (u *FRCUseCase) Start(ctx context.Context, assessmentID string) (entities.FRCRecord, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return entities.FRCRecord{}, ErrInvalidAssessmentID
	}

	a, err := u.assessments.GetByID(ctx, assessmentID)
	if err != nil {
		return entities.FRCRecord{}, err
	}
	if a.Stage != entities.StageEstimateFinalized {
		return entities.FRCRecord{}, fmt.Errorf("%w: start requires stage %q, found %q",
			workflow.ErrInvalidTransition, entities.StageEstimateFinalized, a.Stage)
	}

	if existing, err := u.repo.GetByAssessmentID(ctx, assessmentID); err != nil {
		return entities.FRCRecord{}, err
	} else if existing.ID != "" {
		return entities.FRCRecord{}, ErrFRCAlreadyExists
	}

	baseline, err := u.estimates.BaselineByAssessment(ctx, assessmentID)
	if err != nil {
		return entities.FRCRecord{}, err
	}

	// The assessment stays on estimate_finalized: starting costing must not
	// move it out of the list view assessors work from.
	now := time.Now().UTC()
	r := entities.FRCRecord{
		ID:                     uuid.NewString(),
		AssessmentID:           assessmentID,
		Status:                 entities.FRCStatusInProgress,
		QuotedEstimateSubtotal: baseline.EstimateSubtotal,
		VATPercentage:          baseline.VATPercentage,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	return u.repo.Create(ctx, r)
}

func (u *FRCUseCase) Complete(ctx context.Context, frcID string) (entities.FRCRecord, error) {
	r, err := u.GetByID(ctx, frcID)
	if err != nil {
		return entities.FRCRecord{}, err
	}
	if r.Status != entities.FRCStatusInProgress {
		return entities.FRCRecord{}, fmt.Errorf("%w: complete requires status %q, found %q",
			ErrFRCInvalidState, entities.FRCStatusInProgress, r.Status)
	}

	// Validate the stage leg before any write so a refused transition leaves
	// the subprocess status untouched.
	a, err := u.assessments.GetByID(ctx, r.AssessmentID)
	if err != nil {
		return entities.FRCRecord{}, err
	}
	if _, err := workflow.Resolve(workflow.EventCompleteFRC, a.Stage, a.AppointmentID); err != nil {
		return entities.FRCRecord{}, err
	}

	r.Status = entities.FRCStatusCompleted
	updated, err := u.repo.CommitSnapshotCAS(ctx, r, r.LineItemsVersion)
	if err != nil {
		return entities.FRCRecord{}, err
	}

	if _, err := u.assessments.AttemptTransition(ctx, r.AssessmentID, workflow.EventCompleteFRC, nil); err != nil {
		return entities.FRCRecord{}, err
	}

	if u.events != nil {
		u.events.FRCCompleted(ctx, entities.FRCCompleted{FRCID: updated.ID, AssessmentID: updated.AssessmentID})
	}
	return updated, nil
}

func (u *FRCUseCase) Reopen(ctx context.Context, frcID string) (entities.FRCRecord, error) {
	r, err := u.GetByID(ctx, frcID)
	if err != nil {
		return entities.FRCRecord{}, err
	}
	if r.Status != entities.FRCStatusCompleted {
		return entities.FRCRecord{}, fmt.Errorf("%w: reopen requires status %q, found %q",
			ErrFRCInvalidState, entities.FRCStatusCompleted, r.Status)
	}

	a, err := u.assessments.GetByID(ctx, r.AssessmentID)
	if err != nil {
		return entities.FRCRecord{}, err
	}
	if _, err := workflow.Resolve(workflow.EventReopenFRC, a.Stage, a.AppointmentID); err != nil {
		return entities.FRCRecord{}, err
	}

	r.Status = entities.FRCStatusInProgress
	updated, err := u.repo.CommitSnapshotCAS(ctx, r, r.LineItemsVersion)
	if err != nil {
		return entities.FRCRecord{}, err
	}

	if _, err := u.assessments.AttemptTransition(ctx, r.AssessmentID, workflow.EventReopenFRC, nil); err != nil {
		return entities.FRCRecord{}, err
	}

	if u.events != nil {
		u.events.FRCReopened(ctx, entities.FRCReopened{FRCID: updated.ID, AssessmentID: updated.AssessmentID})
	}
	return updated, nil
}

// MergeSnapshot reconciles the baseline and the current additionals state into
// a fresh snapshot and commits it under the caller's expected version. The
// manual "refresh snapshot" action is this same path: it always re-runs, and
// it never bypasses the version check.
func (u *FRCUseCase) MergeSnapshot(ctx context.Context, frcID string, expectedVersion int64) (entities.FRCRecord, error) {
	r, err := u.GetByID(ctx, frcID)
	if err != nil {
		return entities.FRCRecord{}, err
	}

	baseline, err := u.estimates.BaselineByAssessment(ctx, r.AssessmentID)
	if err != nil {
		return entities.FRCRecord{}, err
	}
	additionals, err := u.additionals.ListByAssessment(ctx, r.AssessmentID)
	if err != nil {
		return entities.FRCRecord{}, err
	}

	merged, err := costing.MergeSnapshot(r.LineItems, baseline.Lines, additionals)
	if err != nil {
		return entities.FRCRecord{}, err
	}

	r.LineItems = merged
	u.refreshAggregates(&r)

	updated, err := u.repo.CommitSnapshotCAS(ctx, r, expectedVersion)
	if err != nil {
		return entities.FRCRecord{}, err
	}

	if u.events != nil {
		u.events.SnapshotMerged(ctx, entities.SnapshotMerged{
			FRCID:        updated.ID,
			AssessmentID: updated.AssessmentID,
			Version:      updated.LineItemsVersion,
			LineCount:    len(updated.LineItems),
		})
	}
	return updated, nil
}

func (u *FRCUseCase) UpdateLineDecision(ctx context.Context, cmd LineDecisionCommand) (entities.FRCRecord, error) {
	r, err := u.GetByID(ctx, cmd.FRCID)
	if err != nil {
		return entities.FRCRecord{}, err
	}
	fingerprint := strings.TrimSpace(cmd.Fingerprint)
	if fingerprint == "" {
		return entities.FRCRecord{}, ErrInvalidFingerprint
	}
	switch cmd.Decision {
	case entities.DecisionAgree, entities.DecisionDecline, entities.DecisionPending:
	default:
		return entities.FRCRecord{}, fmt.Errorf("%w: %q", ErrInvalidDecision, cmd.Decision)
	}

	found := false
	for i := range r.LineItems {
		if r.LineItems[i].Fingerprint != fingerprint {
			continue
		}
		r.LineItems[i].Decision = cmd.Decision
		if cmd.Actual != nil {
			r.LineItems[i].Actual = *cmd.Actual
		}
		found = true
		break
	}
	if !found {
		return entities.FRCRecord{}, fmt.Errorf("%w: %q", ErrLineNotFound, fingerprint)
	}

	u.refreshAggregates(&r)
	return u.repo.CommitSnapshotCAS(ctx, r, cmd.ExpectedVersion)
}

func (u *FRCUseCase) ComputeTotals(ctx context.Context, frcID string) (entities.FRCRecord, costing.Totals, error) {
	r, err := u.GetByID(ctx, frcID)
	if err != nil {
		return entities.FRCRecord{}, costing.Totals{}, err
	}
	return r, costing.ComputeTotals(r), nil
}

func (u *FRCUseCase) GetByID(ctx context.Context, frcID string) (entities.FRCRecord, error) {
	frcID = strings.TrimSpace(frcID)
	if frcID == "" {
		return entities.FRCRecord{}, ErrInvalidFRCID
	}

	r, err := u.repo.GetByID(ctx, frcID)
	if err != nil {
		return entities.FRCRecord{}, err
	}
	if r.ID == "" {
		return entities.FRCRecord{}, ErrFRCNotFound
	}
	return r, nil
}

func (u *FRCUseCase) refreshAggregates(r *entities.FRCRecord) {
	all, additionals, subtotal, vat, total := costing.Aggregates(r.LineItems, r.VATPercentage)
	r.Actual = all
	r.ActualAdditionals = additionals
	r.ActualSubtotal = subtotal
	r.ActualVAT = vat
	r.ActualTotal = total
}
