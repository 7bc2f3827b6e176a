package repositories

import (
	"context"
	"time"

	"github.com/transitbase/currency-service/internal/core/domain"
)

// ExchangeRateReader defines read operations for base-relative exchange rates.
type ExchangeRateReader interface {
	// ListRatesForBase retrieves all rate rows whose base matches baseCurrencyCode.
	ListRatesForBase(ctx context.Context, baseCurrencyCode string) ([]domain.ExchangeRate, error)

	// LatestFetchedAt returns the newest fetchedAt across all rows for the base,
	// or apperrors.ErrNotFound when no rows exist.
	LatestFetchedAt(ctx context.Context, baseCurrencyCode string) (time.Time, error)
}

// ExchangeRateWriter defines write operations for exchange rates.
type ExchangeRateWriter interface {
	// SaveRates upserts the given rate rows atomically, keyed by (base, target).
	SaveRates(ctx context.Context, rates []domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange-rate repository interfaces.
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}

// ExchangeRateRepositoryWithTx extends ExchangeRateRepositoryFacade with transaction capabilities.
type ExchangeRateRepositoryWithTx interface {
	ExchangeRateRepositoryFacade
	TransactionManager
}
