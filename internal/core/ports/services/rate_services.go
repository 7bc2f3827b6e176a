package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/transitbase/currency-service/internal/core/domain"
)

// RatesResult is a rate table plus whether the hard-coded fallback produced
// it. Callers that only display amounts use the table; tests and diagnostics
// read the flag.
type RatesResult struct {
	Rates        domain.RateTable
	UsedFallback bool
}

// CurrenciesResult is a currency list plus the fallback flag, mirroring
// RatesResult.
type CurrenciesResult struct {
	Currencies   []domain.Currency
	UsedFallback bool
}

// RateReaderSvc exposes the cached, never-failing read side of the rate
// store. Persistence errors are logged and masked behind fallback data so
// currency display never blocks the rest of the platform.
type RateReaderSvc interface {
	// GetRates returns the base-relative rate table. The base currency always
	// maps to exactly 1.
	GetRates(ctx context.Context) domain.RateTable

	// GetRatesResult is GetRates plus the fallback flag.
	GetRatesResult(ctx context.Context) RatesResult

	// IsStale reports whether the newest rate row is older than the staleness
	// threshold, or whether no rows exist at all. Advisory only.
	IsStale(ctx context.Context) bool

	// GetEnabledCurrencies returns enabled currencies sorted by display order.
	GetEnabledCurrencies(ctx context.Context) []domain.Currency

	// GetEnabledCurrenciesResult is GetEnabledCurrencies plus the fallback flag.
	GetEnabledCurrenciesResult(ctx context.Context) CurrenciesResult

	// GetFeaturedCurrencies returns enabled, featured currencies sorted by
	// display order.
	GetFeaturedCurrencies(ctx context.Context) []domain.Currency
}

// RateWriterSvc is consumed by the external refresh collaborator.
type RateWriterSvc interface {
	// UpsertRates replaces the base-relative rates for the given targets and
	// stamps them with fetchedAt. The base currency is always normalized to 1.
	UpsertRates(ctx context.Context, rates map[string]decimal.Decimal, fetchedAt time.Time) error
}

// RateSvcFacade combines the rate store read and write sides.
type RateSvcFacade interface {
	RateReaderSvc
	RateWriterSvc
}
