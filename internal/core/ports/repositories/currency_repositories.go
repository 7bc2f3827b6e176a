package repositories

import (
	"context"

	"github.com/transitbase/currency-service/internal/core/domain"
)

// CurrencyReader defines read operations for currency data.
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all currencies, enabled or not, sorted by display order.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// ListEnabledCurrencies retrieves enabled currencies sorted by display order.
	ListEnabledCurrencies(ctx context.Context) ([]domain.Currency, error)

	// ListFeaturedCurrencies retrieves enabled, featured currencies sorted by display order.
	ListFeaturedCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data.
type CurrencyWriter interface {
	// SaveCurrency inserts or updates a currency.
	SaveCurrency(ctx context.Context, currency domain.Currency) error

	// SetDefaultCurrency atomically makes code the single default currency.
	SetDefaultCurrency(ctx context.Context, currencyCode, updaterUserID string) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces.
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}

// CurrencyRepositoryWithTx extends CurrencyRepositoryFacade with transaction capabilities.
type CurrencyRepositoryWithTx interface {
	CurrencyRepositoryFacade
	TransactionManager
}
