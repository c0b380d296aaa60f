package render

import (
	"testing"

	"github.com/inkvoice/inkvoice/internal/invoice/domain"
	"github.com/inkvoice/inkvoice/internal/invoice/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleInvoice() domain.Invoice {
	return domain.Invoice{
		ID:            "123",
		InvoiceNumber: "INV-42",
		InvoiceDate:   "2024-02-01",
		DueDate:       "2024-02-15",
		CompanyName:   "Acme Studio",
		CustomerName:  "Globex LLC",
		CurrencyCode:  "USD",
		Items: []domain.LineItem{
			{Description: "Design work", Quantity: 2, Rate: 100},
			{Description: "On-site days", Rate: 50, ItemStartDate: "2024-01-01", ItemEndDate: "2024-01-05"},
		},
		GlobalDiscountType:  domain.DiscountPercentage,
		GlobalDiscountValue: 10,
	}
}

func TestBuildView_RecomputesTotalsFromItems(t *testing.T) {
	inv := sampleInvoice()
	inv.SubTotal = 1_000_000 // stale persisted totals must be ignored
	inv.TotalFee = 1_000_000

	view := BuildView(inv, theme.ModeLight, zap.NewNop())

	require.Len(t, view.Rows, 2)
	assert.Equal(t, "$450.00", view.SubTotal)
	assert.True(t, view.HasDiscount)
	assert.Equal(t, "Discount (10%)", view.DiscountLabel)
	assert.Equal(t, "$45.00", view.DiscountAmount)
	assert.Equal(t, "$405.00", view.Total)
}

func TestBuildView_DateDerivedRowGetsSubCaption(t *testing.T) {
	view := BuildView(sampleInvoice(), theme.ModeLight, zap.NewNop())

	assert.Empty(t, view.Rows[0].DateRange)
	assert.Equal(t, "5", view.Rows[1].Quantity)
	assert.Equal(t, "Jan 1, 2024 to Jan 5, 2024", view.Rows[1].DateRange)
}

func TestBuildView_NoItemsFallsBackToStoredTotals(t *testing.T) {
	inv := sampleInvoice()
	inv.Items = nil
	inv.SubTotal = 120
	inv.TotalFee = 120

	view := BuildView(inv, theme.ModeLight, zap.NewNop())

	assert.False(t, view.HasItems)
	assert.Empty(t, view.Rows)
	assert.Equal(t, "$120.00", view.SubTotal)
	assert.Equal(t, "$120.00", view.Total)
}

func TestBuildView_FixedDiscountCanExceedSubtotal(t *testing.T) {
	inv := domain.Invoice{
		CurrencyCode:        "USD",
		Items:               []domain.LineItem{{Description: "x", Quantity: 1, Rate: 30}},
		GlobalDiscountType:  domain.DiscountFixed,
		GlobalDiscountValue: 50,
	}

	view := BuildView(inv, theme.ModeLight, zap.NewNop())

	assert.Equal(t, "Discount", view.DiscountLabel)
	assert.Equal(t, "-$20.00", view.Total)
}

func TestBuildView_ThemeTokensFollowMode(t *testing.T) {
	inv := sampleInvoice()
	inv.ThemeColor = theme.ThemeEmeraldGreen

	light := BuildView(inv, theme.ModeLight, zap.NewNop())
	dark := BuildView(inv, theme.ModeDark, zap.NewNop())

	assert.Equal(t, light.Theme.Primary, dark.Theme.Primary)
	assert.NotEqual(t, light.Theme.Background, dark.Theme.Background)
}
