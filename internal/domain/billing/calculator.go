package billing

import (
	"errors"
	"math"

	"github.com/restrodesk/restrodesk-api/internal/domain/enum"
)

// CGST and SGST are each levied at 2.5% on the taxable bucket only.
const (
	CGSTRate = 0.025
	SGSTRate = 0.025
)

// ErrInvalidDiscount is returned when a discount percentage falls outside [0, 100].
var ErrInvalidDiscount = errors.New("discount percentage must be between 0 and 100")

// Line is the pricing view of one snapshotted order line.
type Line struct {
	Price       float64
	Quantity    int
	PricingType enum.PricingType
}

// Totals holds every derived monetary figure for an order.
// All fields are rounded to 2 decimals; intermediate math keeps full precision.
type Totals struct {
	TaxableAmount       float64 `json:"taxableAmount"`
	NonTaxableAmount    float64 `json:"nonTaxableAmount"`
	Subtotal            float64 `json:"subtotal"`
	CGST                float64 `json:"cgst"`
	SGST                float64 `json:"sgst"`
	TotalBeforeDiscount float64 `json:"totalBeforeDiscount"`
	Discount            float64 `json:"discount"`
	Total               float64 `json:"total"`
}

// Round2 rounds to 2 decimal places using half-up rounding.
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// ValidateDiscountPercentage rejects non-finite or out-of-range percentages.
func ValidateDiscountPercentage(pct float64) error {
	if math.IsNaN(pct) || math.IsInf(pct, 0) || pct < 0 || pct > 100 {
		return ErrInvalidDiscount
	}
	return nil
}

// Calculate computes order totals from snapshotted lines and a discount.
// A positive percentage takes precedence over the flat amount.
// Callers validate the percentage with ValidateDiscountPercentage first.
func Calculate(lines []Line, discountPercentage, discountAmount float64) Totals {
	var taxable, nonTaxable float64
	for _, line := range lines {
		qty := line.Quantity
		if qty < 1 {
			qty = 1
		}
		lineTotal := line.Price * float64(qty)
		if line.PricingType.Taxable() {
			taxable += lineTotal
		} else {
			nonTaxable += lineTotal
		}
	}

	subtotal := taxable + nonTaxable
	cgst := taxable * CGSTRate
	sgst := taxable * SGSTRate
	beforeDiscount := subtotal + cgst + sgst

	discount := discountAmount
	if discountPercentage > 0 {
		discount = beforeDiscount * discountPercentage / 100
	}

	return Totals{
		TaxableAmount:       Round2(taxable),
		NonTaxableAmount:    Round2(nonTaxable),
		Subtotal:            Round2(subtotal),
		CGST:                Round2(cgst),
		SGST:                Round2(sgst),
		TotalBeforeDiscount: Round2(beforeDiscount),
		Discount:            Round2(discount),
		Total:               Round2(beforeDiscount - discount),
	}
}

// Recombine recomputes the discounted totals from already-summed figures.
// Finalization uses it so combined bills are discounted once, instead of
// summing per-bill totals and compounding rounding.
func Recombine(subtotal, cgst, sgst, discountPercentage float64) (beforeDiscount, discount, total float64) {
	beforeDiscount = subtotal + cgst + sgst
	discount = beforeDiscount * discountPercentage / 100
	return Round2(beforeDiscount), Round2(discount), Round2(beforeDiscount - discount)
}
