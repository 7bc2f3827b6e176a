package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpsertRatesRequest is the payload the external refresh collaborator posts:
// a full base-relative rate table keyed by target currency code.
type UpsertRatesRequest struct {
	Rates     map[string]decimal.Decimal `json:"rates" binding:"required,min=1"`
	FetchedAt *time.Time                 `json:"fetchedAt"` // defaults to now
}

// RatesResponse is the public view of the rate table.
type RatesResponse struct {
	BaseCurrency string                     `json:"baseCurrency"`
	Rates        map[string]decimal.Decimal `json:"rates"`
	Stale        bool                       `json:"stale"`
}
