package compute

import "github.com/inkvoice/inkvoice/internal/invoice/domain"

// Totals is the invoice-level aggregation result.
type Totals struct {
	SubTotal       float64
	DiscountAmount float64
	TotalFee       float64
}

// Aggregate sums resolved line amounts and applies the invoice-level
// discount. A fixed discount is deliberately not capped to the subtotal;
// the total can go negative and is displayed as-is.
func Aggregate(items []ResolvedItem, discountType domain.DiscountType, discountValue float64) Totals {
	var subTotal float64
	for _, item := range items {
		subTotal += item.LineAmount
	}

	var discountAmount float64
	if discountValue > 0 {
		switch discountType {
		case domain.DiscountFixed:
			discountAmount = discountValue
		default:
			discountAmount = subTotal * discountValue / 100
		}
	}

	return Totals{
		SubTotal:       subTotal,
		DiscountAmount: discountAmount,
		TotalFee:       subTotal - discountAmount,
	}
}

// AggregateInvoice resolves the invoice's items and aggregates them in one
// step. Renderers call this instead of trusting persisted totals.
func AggregateInvoice(inv domain.Invoice) ([]ResolvedItem, Totals) {
	resolved := ResolveItems(inv.Items)
	totals := Aggregate(resolved, inv.GlobalDiscountType, inv.GlobalDiscountValue.Float())
	return resolved, totals
}
