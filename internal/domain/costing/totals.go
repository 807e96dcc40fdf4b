package costing

import (
	"github.com/shopspring/decimal"

	"claims_assessment/internal/domain/entities"
)

// DeltaIndicator qualifies the sign of the settlement delta for display.
type DeltaIndicator string

const (
	DeltaIncrease  DeltaIndicator = "increase"
	DeltaDecrease  DeltaIndicator = "decrease"
	DeltaUnchanged DeltaIndicator = "unchanged"
)

// Totals carries the two independently-derived settlement figures and their
// delta. All values are exact decimals; rounding happens only where a caller
// formats for display.
type Totals struct {
	BaselineSubtotal decimal.Decimal
	BaselineVAT      decimal.Decimal
	BaselineTotal    decimal.Decimal

	Final         entities.LineValues
	FinalSubtotal decimal.Decimal
	FinalVAT      decimal.Decimal
	FinalTotal    decimal.Decimal

	Delta          decimal.Decimal
	DeltaIndicator DeltaIndicator
}

var oneHundred = decimal.NewFromInt(100)

func vatOn(subtotal, vatPercentage decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(vatPercentage.Div(oneHundred))
}

// ComputeTotals derives baseline and final settlement figures from a record.
//
// The baseline depends only on the quoted estimate subtotal and the VAT rate;
// no additionals state can move it. The final total aggregates the quoted
// values of agreed, non-removed lines per category; markup enters once as the
// summed category, and VAT is applied once on the aggregate subtotal.
func ComputeTotals(record entities.FRCRecord) Totals {
	t := Totals{
		BaselineSubtotal: record.QuotedEstimateSubtotal,
		BaselineVAT:      vatOn(record.QuotedEstimateSubtotal, record.VATPercentage),
	}
	t.BaselineTotal = t.BaselineSubtotal.Add(t.BaselineVAT)

	for _, li := range record.LineItems {
		if !li.CountsTowardFinal() {
			continue
		}
		t.Final = t.Final.Add(li.Quoted)
	}
	t.FinalSubtotal = t.Final.Subtotal()
	t.FinalVAT = vatOn(t.FinalSubtotal, record.VATPercentage)
	t.FinalTotal = t.FinalSubtotal.Add(t.FinalVAT)

	t.Delta = t.FinalTotal.Sub(t.BaselineTotal)
	switch t.Delta.Sign() {
	case 1:
		t.DeltaIndicator = DeltaIncrease
	case -1:
		t.DeltaIndicator = DeltaDecrease
	default:
		t.DeltaIndicator = DeltaUnchanged
	}
	return t
}

// Aggregates recomputes the record-level actual_* fields from the snapshot:
// the category sums of agreed, non-removed lines' actual values, with the
// additionals-only portion mirrored separately.
func Aggregates(lineItems []entities.LineItem, vatPercentage decimal.Decimal) (all entities.LineValues, additionals entities.LineValues, subtotal, vat, total decimal.Decimal) {
	for _, li := range lineItems {
		if !li.CountsTowardFinal() {
			continue
		}
		all = all.Add(li.Actual)
		if li.Source == entities.LineSourceAdditional {
			additionals = additionals.Add(li.Actual)
		}
	}
	subtotal = all.Subtotal()
	vat = vatOn(subtotal, vatPercentage)
	total = subtotal.Add(vat)
	return all, additionals, subtotal, vat, total
}
