// Package domain contains the canonical invoice record shape.
package domain

import (
	"strings"
	"time"
)

// DiscountType selects how the invoice-level discount is applied.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// DateLayout is the wire format for invoice-level calendar dates.
// Invoice dates carry no time component.
const DateLayout = "2006-01-02"

const defaultWatermarkOpacity = 0.05

// LineItem is one billable row. Quantity is either explicit or derived
// from the item date range; see compute.ResolveItem.
type LineItem struct {
	Description   string `json:"description"`
	Quantity      Number `json:"quantity"`
	Unit          string `json:"unit,omitempty"`
	Rate          Number `json:"rate"`
	Discount      Number `json:"discount"`
	ItemStartDate string `json:"itemStartDate,omitempty"`
	ItemEndDate   string `json:"itemEndDate,omitempty"`
}

// DateRange returns the parsed item dates. ok is false unless both dates
// are present, parseable, and end is not before start. Records persisted
// by older clients can carry an inverted range; those are treated as if
// no dates were set.
func (li LineItem) DateRange() (start, end time.Time, ok bool) {
	if li.ItemStartDate == "" || li.ItemEndDate == "" {
		return time.Time{}, time.Time{}, false
	}
	start, err := time.ParseInLocation(DateLayout, li.ItemStartDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err = time.ParseInLocation(DateLayout, li.ItemEndDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// Invoice is the root aggregate persisted per save. Each save replaces the
// prior snapshot in full; there is no partial patch and no versioning.
type Invoice struct {
	ID            string `json:"id"`
	InvoiceNumber string `json:"invoiceNumber"`
	InvoiceDate   string `json:"invoiceDate"`
	DueDate       string `json:"dueDate,omitempty"`

	CompanyName  string `json:"companyName"`
	CustomerName string `json:"customerName"`

	CompanyLogoDataURL string `json:"companyLogoDataUrl,omitempty"`
	WatermarkDataURL   string `json:"watermarkDataUrl,omitempty"`
	WatermarkOpacity   Number `json:"watermarkOpacity"`

	Items []LineItem `json:"items"`

	SubTotal            Number       `json:"subTotal"`
	GlobalDiscountType  DiscountType `json:"globalDiscountType"`
	GlobalDiscountValue Number       `json:"globalDiscountValue"`
	TotalFee            Number       `json:"totalFee"`

	InvoiceNotes       string `json:"invoiceNotes,omitempty"`
	TermsAndConditions string `json:"termsAndConditions,omitempty"`

	CurrencyCode  string `json:"currencyCode,omitempty"`
	ThemeColor    string `json:"themeColor,omitempty"`
	FontTheme     string `json:"fontTheme,omitempty"`
	TemplateStyle string `json:"templateStyle,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PlaceholderItem is the repair value for a missing or corrupt item list.
func PlaceholderItem() LineItem {
	return LineItem{Description: "Item", Quantity: 1, Rate: 0}
}

// Normalize repairs a loaded record in place so downstream consumers never
// see a structurally invalid invoice.
func (inv *Invoice) Normalize() {
	if len(inv.Items) == 0 {
		inv.Items = []LineItem{PlaceholderItem()}
	}
	for i := range inv.Items {
		inv.Items[i].Discount = Number(clamp(inv.Items[i].Discount.Float(), 0, 100))
		if inv.Items[i].Quantity < 0 {
			inv.Items[i].Quantity = 0
		}
		if inv.Items[i].Rate < 0 {
			inv.Items[i].Rate = 0
		}
	}
	if inv.WatermarkOpacity <= 0 {
		inv.WatermarkOpacity = defaultWatermarkOpacity
	} else if inv.WatermarkOpacity > 1 {
		inv.WatermarkOpacity = 1
	}
	if inv.GlobalDiscountValue < 0 {
		inv.GlobalDiscountValue = 0
	}
	switch inv.GlobalDiscountType {
	case DiscountPercentage, DiscountFixed:
	default:
		inv.GlobalDiscountType = DiscountPercentage
	}
	if strings.TrimSpace(inv.CurrencyCode) == "" {
		inv.CurrencyCode = "USD"
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
