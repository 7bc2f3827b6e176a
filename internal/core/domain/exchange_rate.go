package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a directed rate from the fixed base currency to a target
// currency: units of target per 1 unit of base.
type ExchangeRate struct {
	BaseCurrencyCode   string          `json:"baseCurrencyCode"`
	TargetCurrencyCode string          `json:"targetCurrencyCode"`
	Rate               decimal.Decimal `json:"rate"`
	FetchedAt          time.Time       `json:"fetchedAt"`
}

// RateTable maps a currency code to its rate relative to the base currency.
// The base currency itself always maps to exactly 1.
type RateTable map[string]decimal.Decimal

// Rate returns the rate for code, defaulting to 1 when absent. A missing
// entry means "no conversion available" rather than an error.
func (t RateTable) Rate(code string) decimal.Decimal {
	if r, ok := t[code]; ok {
		return r
	}
	return decimal.NewFromInt(1)
}
