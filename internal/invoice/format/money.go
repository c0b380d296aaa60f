// Package format holds pure formatting helpers shared by all renderers.
package format

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DefaultCurrency = "USD"

var printer = message.NewPrinter(language.English)

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"INR": "₹",
	"AUD": "A$",
	"CAD": "C$",
	"KES": "KSh ",
	"NGN": "₦",
	"ZAR": "R",
}

// Money renders a monetary value with the symbol for the given ISO 4217
// code, grouped per the English locale. Unknown or empty codes fall back
// to USD. Negative values keep their sign in front of the symbol so a
// discount larger than the subtotal displays as a subtraction.
func Money(amount float64, code string) string {
	if amount < 0 {
		return "-" + Money(-amount, code)
	}

	code = normalizeCode(code)
	unit, err := currency.ParseISO(code)
	if err != nil {
		code = DefaultCurrency
	} else {
		code = unit.String()
	}

	symbol, ok := symbols[code]
	if !ok {
		symbol = code + " "
	}

	return symbol + printer.Sprintf("%.2f", amount)
}

// Quantity renders an effective quantity without trailing zeros.
func Quantity(value float64) string {
	s := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", value), "0"), ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}

// Percent renders a discount percentage without trailing zeros.
func Percent(value float64) string {
	return Quantity(value) + "%"
}

func normalizeCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return DefaultCurrency
	}
	return code
}
