package services

import (
	"context"

	"github.com/transitbase/currency-service/internal/core/domain"
	"github.com/transitbase/currency-service/internal/dto"
)

// CurrencyReaderSvc defines read operations for admin currency management.
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all currencies, enabled or not.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations for admin currency management.
type CurrencyWriterSvc interface {
	// CreateCurrency persists a new currency.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error)

	// UpdateCurrency applies a partial update to an existing currency.
	UpdateCurrency(ctx context.Context, currencyCode string, req dto.UpdateCurrencyRequest, updaterUserID string) (*domain.Currency, error)

	// SetDefaultCurrency makes currencyCode the single default currency.
	SetDefaultCurrency(ctx context.Context, currencyCode, updaterUserID string) error
}

// CurrencySvcFacade combines all currency-management service interfaces.
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
