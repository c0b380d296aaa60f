package compute

import (
	"testing"

	"github.com/inkvoice/inkvoice/internal/invoice/domain"
	"github.com/stretchr/testify/assert"
)

func resolved(amounts ...float64) []ResolvedItem {
	out := make([]ResolvedItem, 0, len(amounts))
	for _, a := range amounts {
		out = append(out, ResolvedItem{LineAmount: a})
	}
	return out
}

func TestAggregate_SubtotalSumsLineAmounts(t *testing.T) {
	got := Aggregate(resolved(100, 50, 25.5), domain.DiscountPercentage, 0)

	assert.InDelta(t, 175.5, got.SubTotal, 1e-9)
	assert.Zero(t, got.DiscountAmount)
	assert.InDelta(t, 175.5, got.TotalFee, 1e-9)
}

func TestAggregate_EmptyItemList(t *testing.T) {
	got := Aggregate(nil, domain.DiscountPercentage, 10)

	assert.Zero(t, got.SubTotal)
	assert.Zero(t, got.DiscountAmount)
	assert.Zero(t, got.TotalFee)
}

func TestAggregate_PercentageDiscount(t *testing.T) {
	got := Aggregate(resolved(200), domain.DiscountPercentage, 10)

	assert.InDelta(t, 20.0, got.DiscountAmount, 1e-9)
	assert.InDelta(t, 180.0, got.TotalFee, 1e-9)
}

func TestAggregate_FixedDiscount(t *testing.T) {
	got := Aggregate(resolved(200), domain.DiscountFixed, 50)

	assert.InDelta(t, 50.0, got.DiscountAmount, 1e-9)
	assert.InDelta(t, 150.0, got.TotalFee, 1e-9)
}

func TestAggregate_FixedDiscountExceedingSubtotalIsNotClamped(t *testing.T) {
	got := Aggregate(resolved(30), domain.DiscountFixed, 50)

	assert.InDelta(t, -20.0, got.TotalFee, 1e-9)
}

func TestAggregate_ZeroDiscountValueIsNoOp(t *testing.T) {
	got := Aggregate(resolved(120), domain.DiscountFixed, 0)

	assert.Zero(t, got.DiscountAmount)
	assert.InDelta(t, 120.0, got.TotalFee, 1e-9)
}

func TestAggregateInvoice_ResolvesFromItems(t *testing.T) {
	inv := domain.Invoice{
		Items: []domain.LineItem{
			{Quantity: 2, Rate: 100},
			{Rate: 50, ItemStartDate: "2024-06-01", ItemEndDate: "2024-06-03"},
		},
		GlobalDiscountType:  domain.DiscountPercentage,
		GlobalDiscountValue: 10,
		// Stale persisted totals must be ignored in favour of recomputation.
		SubTotal: 9999,
		TotalFee: 9999,
	}

	items, totals := AggregateInvoice(inv)

	assert.Len(t, items, 2)
	assert.InDelta(t, 350.0, totals.SubTotal, 1e-9)
	assert.InDelta(t, 315.0, totals.TotalFee, 1e-9)
}
