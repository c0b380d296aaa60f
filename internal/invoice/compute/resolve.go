// Package compute holds the pure billing math: per-line resolution and
// invoice aggregation. Every renderer and the save path go through these
// functions so the three output surfaces cannot drift apart.
package compute

import (
	"time"

	"github.com/inkvoice/inkvoice/internal/invoice/domain"
)

// ResolvedItem is a line item after quantity resolution and per-item
// discount application.
type ResolvedItem struct {
	Item              domain.LineItem
	EffectiveQuantity float64
	LineSubtotal      float64
	LineAmount        float64
	// DayDerived reports that the quantity came from the item date range
	// rather than the stored quantity field.
	DayDerived bool
}

// ResolveItem computes the effective quantity and line amount for one item.
//
// A valid date range overrides the stored quantity: the stored value may be
// stale, so the inclusive day count is recomputed wherever the item is
// consumed, at save time and in every renderer alike.
func ResolveItem(item domain.LineItem) ResolvedItem {
	qty, derived := effectiveQuantity(item)

	rate := item.Rate.Float()
	if rate < 0 {
		rate = 0
	}

	discount := item.Discount.Float()
	if discount < 0 {
		discount = 0
	} else if discount > 100 {
		discount = 100
	}

	subtotal := qty * rate
	return ResolvedItem{
		Item:              item,
		EffectiveQuantity: qty,
		LineSubtotal:      subtotal,
		LineAmount:        subtotal * (1 - discount/100),
		DayDerived:        derived,
	}
}

// ResolveItems resolves every item of an invoice.
func ResolveItems(items []domain.LineItem) []ResolvedItem {
	out := make([]ResolvedItem, 0, len(items))
	for _, item := range items {
		out = append(out, ResolveItem(item))
	}
	return out
}

func effectiveQuantity(item domain.LineItem) (float64, bool) {
	if start, end, ok := item.DateRange(); ok {
		return float64(inclusiveDays(start, end)), true
	}
	qty := item.Quantity.Float()
	if qty < 0 {
		qty = 0
	}
	return qty, false
}

// inclusiveDays counts whole calendar days from start through end.
// Both bounds are midnight UTC, so the division is exact.
func inclusiveDays(start, end time.Time) int {
	return int(end.Sub(start)/(24*time.Hour)) + 1
}
