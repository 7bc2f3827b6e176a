package money

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/transitbase/currency-service/internal/core/domain"
)

func testRates() domain.RateTable {
	return domain.RateTable{
		"AED": decimal.NewFromInt(1),
		"USD": decimal.RequireFromString("0.27"),
		"EUR": decimal.RequireFromString("0.25"),
		"JPY": decimal.RequireFromString("40.2"),
	}
}

func TestConvertBaseToTarget(t *testing.T) {
	rates := testRates()

	assert.Equal(t, 27.0, Convert(100, "AED", "USD", rates), "100 AED at 0.27 should be 27 USD")
	assert.Equal(t, 25.0, Convert(100, "AED", "EUR", rates))
	assert.Equal(t, 4020.0, Convert(100, "AED", "JPY", rates))
}

func TestConvertTargetToBase(t *testing.T) {
	rates := testRates()

	assert.Equal(t, 100.0, Convert(27, "USD", "AED", rates), "converting back should invert the rate")
}

func TestConvertCrossCurrency(t *testing.T) {
	rates := testRates()

	// 27 USD -> 100 AED -> 25 EUR
	assert.Equal(t, 25.0, Convert(27, "USD", "EUR", rates))
}

func TestConvertIdentity(t *testing.T) {
	// Same-code conversion never touches the rate table, so an empty table works.
	assert.Equal(t, 123.456, Convert(123.456, "USD", "USD", domain.RateTable{}))
	assert.Equal(t, 0.0, Convert(0, "AED", "AED", nil))
}

func TestConvertInvalidAmounts(t *testing.T) {
	rates := testRates()

	assert.Equal(t, 0.0, Convert(math.NaN(), "AED", "USD", rates))
	assert.Equal(t, 0.0, Convert(math.Inf(1), "AED", "USD", rates))
	assert.Equal(t, 0.0, Convert(math.Inf(-1), "AED", "USD", rates))
}

func TestConvertMissingRateDefaultsToOne(t *testing.T) {
	rates := domain.RateTable{"USD": decimal.RequireFromString("0.27")}

	// Unknown source rate reads as 1, so the amount is treated as base.
	assert.Equal(t, 2.7, Convert(10, "ZZZ", "USD", rates))
}

func TestConvertRoundsToTargetDecimalPlaces(t *testing.T) {
	rates := domain.RateTable{
		"AED": decimal.NewFromInt(1),
		"USD": decimal.RequireFromString("0.333333"),
		"JPY": decimal.RequireFromString("40.2"),
	}

	// 10 * 0.333333 = 3.33333, rounded to 2 places for USD.
	assert.Equal(t, 3.33, Convert(10, "AED", "USD", rates))
	// JPY carries zero decimal places: 1.5 * 40.2 = 60.3 -> 60.
	assert.Equal(t, 60.0, Convert(1.5, "AED", "JPY", rates))
}

func TestConvertHalfAwayFromZero(t *testing.T) {
	rates := domain.RateTable{
		"AED": decimal.NewFromInt(1),
		"USD": decimal.RequireFromString("0.005"),
	}

	assert.Equal(t, 0.01, Convert(1, "AED", "USD", rates))
	assert.Equal(t, -0.01, Convert(-1, "AED", "USD", rates))
}

func TestConvertFromBase(t *testing.T) {
	rates := testRates()

	assert.Equal(t, 27.0, ConvertFromBase(100, "USD", rates))
	assert.Equal(t, 100.0, ConvertFromBase(100, "AED", rates))
}
