package compute

import (
	"testing"

	"github.com/inkvoice/inkvoice/internal/invoice/domain"
	"github.com/stretchr/testify/assert"
)

func TestResolveItem_DateRangeOverridesQuantity(t *testing.T) {
	item := domain.LineItem{
		Description:   "On-site consulting",
		Quantity:      99, // stale, must be ignored
		Rate:          200,
		ItemStartDate: "2024-01-01",
		ItemEndDate:   "2024-01-05",
	}

	got := ResolveItem(item)

	assert.True(t, got.DayDerived)
	assert.Equal(t, 5.0, got.EffectiveQuantity)
	assert.Equal(t, 1000.0, got.LineAmount)
}

func TestResolveItem_SingleDayRange(t *testing.T) {
	got := ResolveItem(domain.LineItem{
		Rate:          150,
		ItemStartDate: "2024-03-10",
		ItemEndDate:   "2024-03-10",
	})

	assert.Equal(t, 1.0, got.EffectiveQuantity)
	assert.Equal(t, 150.0, got.LineAmount)
}

func TestResolveItem_InvertedRangeFallsBackToQuantity(t *testing.T) {
	got := ResolveItem(domain.LineItem{
		Quantity:      3,
		Rate:          10,
		ItemStartDate: "2024-01-10",
		ItemEndDate:   "2024-01-01",
	})

	assert.False(t, got.DayDerived)
	assert.Equal(t, 3.0, got.EffectiveQuantity)
	assert.Equal(t, 30.0, got.LineAmount)
}

func TestResolveItem_PartialOrUnparseableDates(t *testing.T) {
	tests := []struct {
		name string
		item domain.LineItem
		want float64
	}{
		{"start only", domain.LineItem{Quantity: 2, Rate: 5, ItemStartDate: "2024-01-01"}, 2},
		{"end only", domain.LineItem{Quantity: 2, Rate: 5, ItemEndDate: "2024-01-05"}, 2},
		{"garbage dates", domain.LineItem{Quantity: 4, Rate: 5, ItemStartDate: "not-a-date", ItemEndDate: "2024-01-05"}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveItem(tt.item)
			assert.False(t, got.DayDerived)
			assert.Equal(t, tt.want, got.EffectiveQuantity)
		})
	}
}

func TestResolveItem_Discounts(t *testing.T) {
	tests := []struct {
		name     string
		discount domain.Number
		want     float64
	}{
		{"no discount", 0, 100},
		{"half", 50, 50},
		{"full", 100, 0},
		{"clamped above 100", 250, 0},
		{"clamped below 0", -10, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveItem(domain.LineItem{Quantity: 10, Rate: 10, Discount: tt.discount})
			assert.InDelta(t, tt.want, got.LineAmount, 1e-9)
		})
	}
}

func TestResolveItem_NegativeInputsCoerceToZero(t *testing.T) {
	got := ResolveItem(domain.LineItem{Quantity: -4, Rate: -25})

	assert.Zero(t, got.EffectiveQuantity)
	assert.Zero(t, got.LineAmount)
}
