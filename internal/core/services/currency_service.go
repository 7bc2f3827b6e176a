package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/transitbase/currency-service/internal/apperrors"
	"github.com/transitbase/currency-service/internal/core/domain"
	portsrepo "github.com/transitbase/currency-service/internal/core/ports/repositories"
	portssvc "github.com/transitbase/currency-service/internal/core/ports/services"
	"github.com/transitbase/currency-service/internal/dto"
	"github.com/transitbase/currency-service/pkg/cache"
)

// CurrencyService provides the admin-facing business logic for currency
// settings. Writes invalidate the cached currency reads served by the rate
// accessor.
type CurrencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
	store        cache.Cache
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)

func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade, store cache.Cache) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo, store: store}
}

// CreateCurrency adds a new supported currency.
func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	existing, err := s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing currency: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: currency %s", apperrors.ErrDuplicate, req.CurrencyCode)
	}

	now := time.Now()
	currency := domain.Currency{
		CurrencyCode:   req.CurrencyCode,
		Name:           req.Name,
		Symbol:         req.Symbol,
		DecimalPlaces:  req.DecimalPlaces,
		SymbolPosition: domain.SymbolPosition(req.SymbolPosition),
		IsEnabled:      req.IsEnabled,
		IsFeatured:     req.IsFeatured,
		DisplayOrder:   req.DisplayOrder,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}

	s.invalidateCurrencyCaches()
	s.LogInfo(ctx, "Currency created", slog.String("currency_code", currency.CurrencyCode))
	return &currency, nil
}

// UpdateCurrency applies a partial update to an existing currency.
func (s *CurrencyService) UpdateCurrency(ctx context.Context, currencyCode string, req dto.UpdateCurrencyRequest, updaterUserID string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load currency %s: %w", currencyCode, err)
	}

	if req.Name != nil {
		currency.Name = *req.Name
	}
	if req.Symbol != nil {
		currency.Symbol = *req.Symbol
	}
	if req.DecimalPlaces != nil {
		currency.DecimalPlaces = *req.DecimalPlaces
	}
	if req.SymbolPosition != nil {
		currency.SymbolPosition = domain.SymbolPosition(*req.SymbolPosition)
	}
	if req.IsEnabled != nil {
		if !*req.IsEnabled && currency.IsDefault {
			return nil, apperrors.NewValidationError("cannot disable the default currency")
		}
		currency.IsEnabled = *req.IsEnabled
	}
	if req.IsFeatured != nil {
		currency.IsFeatured = *req.IsFeatured
	}
	if req.DisplayOrder != nil {
		currency.DisplayOrder = *req.DisplayOrder
	}
	currency.LastUpdatedAt = time.Now()
	currency.LastUpdatedBy = updaterUserID

	if err := s.currencyRepo.SaveCurrency(ctx, *currency); err != nil {
		return nil, fmt.Errorf("failed to update currency %s: %w", currencyCode, err)
	}

	s.invalidateCurrencyCaches()
	s.LogInfo(ctx, "Currency updated", slog.String("currency_code", currencyCode))
	return currency, nil
}

// SetDefaultCurrency makes currencyCode the single default. The target must
// exist and be enabled; the repository enforces both transactionally.
func (s *CurrencyService) SetDefaultCurrency(ctx context.Context, currencyCode, updaterUserID string) error {
	if err := s.currencyRepo.SetDefaultCurrency(ctx, currencyCode, updaterUserID); err != nil {
		return fmt.Errorf("failed to set default currency: %w", err)
	}

	s.invalidateCurrencyCaches()
	s.LogInfo(ctx, "Default currency changed", slog.String("currency_code", currencyCode))
	return nil
}

// GetCurrencyByCode retrieves one currency, enabled or not.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

// ListCurrencies retrieves all currencies for the admin portal.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

func (s *CurrencyService) invalidateCurrencyCaches() {
	s.store.Delete(cacheKeyEnabledCurrencies)
	s.store.Delete(cacheKeyFeaturedCurrencies)
}
