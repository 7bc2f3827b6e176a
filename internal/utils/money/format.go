package money

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/transitbase/currency-service/internal/core/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatOptions tunes the rendering of a formatted amount.
type FormatOptions struct {
	// WithCurrencyCode appends the ISO code as a trailing token, e.g. "$27.00 USD".
	WithCurrencyCode bool
}

// The numeral locale is fixed to en-US grouping; symbol placement is governed
// by per-currency metadata, not by the numeral locale.
var printer = message.NewPrinter(language.AmericanEnglish)

// Format renders an amount in the given currency: grouped digits with exactly
// the currency's decimal places, and the symbol placed per its metadata.
// NaN and infinite amounts are treated as 0.
func Format(amount float64, code string) string {
	return FormatWith(amount, code, FormatOptions{})
}

// FormatWith is Format with explicit options.
func FormatWith(amount float64, code string, opts FormatOptions) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}

	meta := MetadataFor(code)
	rounded, _ := decimal.NewFromFloat(amount).Round(int32(meta.DecimalPlaces)).Float64()

	digits := printer.Sprintf("%v", number.Decimal(rounded,
		number.MinFractionDigits(meta.DecimalPlaces),
		number.MaxFractionDigits(meta.DecimalPlaces),
	))

	var out string
	if meta.SymbolPosition == domain.SymbolAfter {
		out = digits + " " + meta.Symbol
	} else {
		out = meta.Symbol + digits
	}

	if opts.WithCurrencyCode {
		out += " " + code
	}
	return out
}

// FormatPrice converts an amount from the base currency into the target
// currency and formats it. This is the single entry point the rest of the
// platform uses for money display.
func FormatPrice(amount float64, target string, rates domain.RateTable) string {
	return FormatPriceWith(amount, target, rates, FormatOptions{})
}

// FormatPriceWith is FormatPrice with explicit options.
func FormatPriceWith(amount float64, target string, rates domain.RateTable, opts FormatOptions) string {
	return FormatWith(ConvertFromBase(amount, target, rates), target, opts)
}

// FormatPriceRange formats a base-currency price range as
// "{min} - {max}", converting each bound independently.
func FormatPriceRange(min, max float64, target string, rates domain.RateTable) string {
	return FormatPrice(min, target, rates) + " - " + FormatPrice(max, target, rates)
}
