package response

import (
	"time"

	"claims_assessment/internal/domain/costing"
	"claims_assessment/internal/domain/entities"
)

// All monetary fields render rounded to 2 decimals. This is the output
// boundary: calculations upstream stay exact.

type LineValuesResponse struct {
	PartsNett   string `json:"parts_nett"`
	Labour      string `json:"labour"`
	Paint       string `json:"paint"`
	OutworkNett string `json:"outwork_nett"`
	Markup      string `json:"markup"`
}

func fromLineValues(v entities.LineValues) LineValuesResponse {
	return LineValuesResponse{
		PartsNett:   v.PartsNett.StringFixed(2),
		Labour:      v.Labour.StringFixed(2),
		Paint:       v.Paint.StringFixed(2),
		OutworkNett: v.OutworkNett.StringFixed(2),
		Markup:      v.Markup.StringFixed(2),
	}
}

type LineItemResponse struct {
	Fingerprint            string             `json:"fingerprint"`
	Source                 string             `json:"source"`
	SourceLineID           string             `json:"source_line_id"`
	Description            string             `json:"description"`
	Decision               string             `json:"decision"`
	IsRemovalAdditional    bool               `json:"is_removal_additional"`
	RemovalForSourceLineID string             `json:"removal_for_source_line_id,omitempty"`
	RemovedViaAdditionals  bool               `json:"removed_via_additionals"`
	Quoted                 LineValuesResponse `json:"quoted"`
	Actual                 LineValuesResponse `json:"actual"`
}

type FRCResponse struct {
	ID               string             `json:"id"`
	AssessmentID     string             `json:"assessment_id"`
	Status           string             `json:"status"`
	LineItems        []LineItemResponse `json:"line_items"`
	LineItemsVersion int64              `json:"line_items_version"`

	QuotedEstimateSubtotal string `json:"quoted_estimate_subtotal"`
	VATPercentage          string `json:"vat_percentage"`

	Actual            LineValuesResponse `json:"actual"`
	ActualSubtotal    string             `json:"actual_subtotal"`
	ActualVAT         string             `json:"actual_vat"`
	ActualTotal       string             `json:"actual_total"`
	ActualAdditionals LineValuesResponse `json:"actual_additionals"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromFRCRecord(r entities.FRCRecord) FRCResponse {
	lineItems := make([]LineItemResponse, 0, len(r.LineItems))
	for _, li := range r.LineItems {
		lineItems = append(lineItems, LineItemResponse{
			Fingerprint:            li.Fingerprint,
			Source:                 string(li.Source),
			SourceLineID:           li.SourceLineID,
			Description:            li.Description,
			Decision:               string(li.Decision),
			IsRemovalAdditional:    li.IsRemovalAdditional,
			RemovalForSourceLineID: li.RemovalForSourceLineID,
			RemovedViaAdditionals:  li.RemovedViaAdditionals,
			Quoted:                 fromLineValues(li.Quoted),
			Actual:                 fromLineValues(li.Actual),
		})
	}
	return FRCResponse{
		ID:               r.ID,
		AssessmentID:     r.AssessmentID,
		Status:           string(r.Status),
		LineItems:        lineItems,
		LineItemsVersion: r.LineItemsVersion,

		QuotedEstimateSubtotal: r.QuotedEstimateSubtotal.StringFixed(2),
		VATPercentage:          r.VATPercentage.String(),

		Actual:            fromLineValues(r.Actual),
		ActualSubtotal:    r.ActualSubtotal.StringFixed(2),
		ActualVAT:         r.ActualVAT.StringFixed(2),
		ActualTotal:       r.ActualTotal.StringFixed(2),
		ActualAdditionals: fromLineValues(r.ActualAdditionals),

		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type TotalsResponse struct {
	FRCID string `json:"frc_id"`

	BaselineSubtotal string `json:"baseline_subtotal"`
	BaselineVAT      string `json:"baseline_vat"`
	BaselineTotal    string `json:"baseline_total"`

	Final         LineValuesResponse `json:"final"`
	FinalSubtotal string             `json:"final_subtotal"`
	FinalVAT      string             `json:"final_vat"`
	FinalTotal    string             `json:"final_total"`

	Delta          string `json:"delta"`
	DeltaIndicator string `json:"delta_indicator"`
}

func FromTotals(frcID string, t costing.Totals) TotalsResponse {
	return TotalsResponse{
		FRCID: frcID,

		BaselineSubtotal: t.BaselineSubtotal.StringFixed(2),
		BaselineVAT:      t.BaselineVAT.StringFixed(2),
		BaselineTotal:    t.BaselineTotal.StringFixed(2),

		Final:         fromLineValues(t.Final),
		FinalSubtotal: t.FinalSubtotal.StringFixed(2),
		FinalVAT:      t.FinalVAT.StringFixed(2),
		FinalTotal:    t.FinalTotal.StringFixed(2),

		Delta:          t.Delta.StringFixed(2),
		DeltaIndicator: string(t.DeltaIndicator),
	}
}
