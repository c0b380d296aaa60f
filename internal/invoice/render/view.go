// Package render builds the shared invoice view model. Every output
// surface (preview page, DOC export, raster/PDF export) consumes the same
// View, which is what keeps the surfaces visually equivalent.
package render

import (
	"time"

	"github.com/inkvoice/inkvoice/internal/invoice/compute"
	"github.com/inkvoice/inkvoice/internal/invoice/domain"
	"github.com/inkvoice/inkvoice/internal/invoice/format"
	"github.com/inkvoice/inkvoice/internal/invoice/theme"
	"go.uber.org/zap"
)

const displayDateLayout = "Jan 2, 2006"

// NoItemsLabel is the row shown instead of an empty item table.
const NoItemsLabel = "No items listed"

// View is the fully resolved projection of one invoice.
type View struct {
	Number       string
	Date         string
	DueDate      string
	CompanyName  string
	CustomerName string
	LogoDataURL  string

	Rows     []Row
	HasItems bool

	SubTotal       string
	HasDiscount    bool
	DiscountLabel  string
	DiscountAmount string
	Total          string

	Notes string
	Terms string

	Watermark        string
	WatermarkOpacity float64

	Theme theme.Tokens
}

// Row is one rendered item line.
type Row struct {
	Description string
	// DateRange is the sub-caption under the description when the quantity
	// was derived from the item dates.
	DateRange string
	Quantity  string
	Unit      string
	Rate      string
	Discount  string
	Amount    string
}

// BuildView resolves items, totals, and theme tokens into a View.
//
// Totals are recomputed from the stored items; the persisted subTotal and
// totalFee are trusted only when the record carries no items at all. This
// is the one consistent rule applied across every consumer.
func BuildView(inv domain.Invoice, mode theme.Mode, log *zap.Logger) View {
	if log != nil {
		if inv.ThemeColor != "" && !theme.KnownTheme(inv.ThemeColor) {
			log.Warn("unknown theme key, using default", zap.String("theme", inv.ThemeColor))
		}
		if inv.FontTheme != "" && !theme.KnownFont(inv.FontTheme) {
			log.Warn("unknown font key, using default", zap.String("font", inv.FontTheme))
		}
	}

	tokens := theme.Resolve(inv.ThemeColor, inv.FontTheme, mode)
	code := inv.CurrencyCode

	view := View{
		Number:           inv.InvoiceNumber,
		Date:             displayDate(inv.InvoiceDate),
		DueDate:          displayDate(inv.DueDate),
		CompanyName:      inv.CompanyName,
		CustomerName:     inv.CustomerName,
		LogoDataURL:      inv.CompanyLogoDataURL,
		Notes:            inv.InvoiceNotes,
		Terms:            inv.TermsAndConditions,
		Watermark:        inv.WatermarkDataURL,
		WatermarkOpacity: inv.WatermarkOpacity.Float(),
		Theme:            tokens,
	}

	if len(inv.Items) == 0 {
		view.HasItems = false
		view.SubTotal = format.Money(inv.SubTotal.Float(), code)
		view.Total = format.Money(inv.TotalFee.Float(), code)
		return view
	}

	resolved, totals := compute.AggregateInvoice(inv)

	view.HasItems = true
	view.Rows = make([]Row, 0, len(resolved))
	for _, item := range resolved {
		view.Rows = append(view.Rows, buildRow(item, code))
	}

	view.SubTotal = format.Money(totals.SubTotal, code)
	view.Total = format.Money(totals.TotalFee, code)
	if totals.DiscountAmount != 0 {
		view.HasDiscount = true
		view.DiscountAmount = format.Money(totals.DiscountAmount, code)
		if inv.GlobalDiscountType == domain.DiscountPercentage {
			view.DiscountLabel = "Discount (" + format.Percent(inv.GlobalDiscountValue.Float()) + ")"
		} else {
			view.DiscountLabel = "Discount"
		}
	}

	return view
}

func buildRow(item compute.ResolvedItem, code string) Row {
	row := Row{
		Description: item.Item.Description,
		Quantity:    format.Quantity(item.EffectiveQuantity),
		Unit:        item.Item.Unit,
		Rate:        format.Money(item.Item.Rate.Float(), code),
		Amount:      format.Money(item.LineAmount, code),
	}
	if item.Item.Discount > 0 {
		row.Discount = format.Percent(item.Item.Discount.Float())
	}
	if item.DayDerived {
		if start, end, ok := item.Item.DateRange(); ok {
			row.DateRange = start.Format(displayDateLayout) + " to " + end.Format(displayDateLayout)
		}
	}
	return row
}

func displayDate(iso string) string {
	if iso == "" {
		return ""
	}
	parsed, err := time.ParseInLocation(domain.DateLayout, iso, time.UTC)
	if err != nil {
		return iso
	}
	return parsed.Format(displayDateLayout)
}
