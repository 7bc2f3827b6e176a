package money

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/transitbase/currency-service/internal/core/domain"
)

// Convert converts an amount between two currencies using a base-relative
// rate table. Invalid amounts (NaN, ±Inf) convert to 0. When from and to are
// the same code the amount is returned unchanged so no rounding is applied.
// Missing rate entries are treated as 1 ("no conversion available"), and the
// result is rounded half-away-from-zero to the target currency's decimal
// places.
func Convert(amount float64, from, to string, rates domain.RateTable) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	if from == to {
		return amount
	}

	amt := decimal.NewFromFloat(amount)
	inBase := amt.Div(rates.Rate(from))
	converted := inBase.Mul(rates.Rate(to))

	places := int32(MetadataFor(to).DecimalPlaces)
	rounded, _ := converted.Round(places).Float64()
	return rounded
}

// ConvertFromBase converts an amount denominated in the platform base
// currency into the target currency.
func ConvertFromBase(amount float64, to string, rates domain.RateTable) float64 {
	return Convert(amount, domain.BaseCurrencyCode, to, rates)
}
