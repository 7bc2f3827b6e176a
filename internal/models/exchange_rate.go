package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is the database row shape for a base-relative exchange rate.
// Rates use github.com/shopspring/decimal to avoid binary float drift.
type ExchangeRate struct {
	BaseCurrencyCode   string          `json:"baseCurrencyCode"`
	TargetCurrencyCode string          `json:"targetCurrencyCode"`
	Rate               decimal.Decimal `json:"rate"`
	FetchedAt          time.Time       `json:"fetchedAt"`
}
