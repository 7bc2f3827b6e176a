package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/transitbase/currency-service/internal/apperrors"
	"github.com/transitbase/currency-service/internal/core/domain"
	portsrepo "github.com/transitbase/currency-service/internal/core/ports/repositories"
	portssvc "github.com/transitbase/currency-service/internal/core/ports/services"
	"github.com/transitbase/currency-service/internal/utils/money"
	"github.com/transitbase/currency-service/pkg/cache"
)

// Cache keys for the time-bounded memoized reads. Values are immutable once
// computed for a window, so concurrent refreshes are last-writer-wins.
const (
	cacheKeyRates              = "rates:" + domain.BaseCurrencyCode
	cacheKeyEnabledCurrencies  = "currencies:enabled"
	cacheKeyFeaturedCurrencies = "currencies:featured"
)

// fallbackRates is the baked-in base-relative table used when storage is
// unavailable or empty. Best-effort approximations, not live data.
var fallbackRates = map[string]string{
	"AED": "1",
	"USD": "0.27",
	"EUR": "0.25",
	"GBP": "0.21",
	"SAR": "1.02",
	"QAR": "0.99",
	"KWD": "0.083",
	"BHD": "0.10",
	"OMR": "0.105",
	"EGP": "13.2",
	"INR": "22.9",
	"PKR": "76.0",
	"JPY": "40.2",
	"CNY": "1.95",
	"RUB": "24.5",
	"TRY": "9.3",
	"CAD": "0.37",
	"AUD": "0.41",
	"CHF": "0.24",
}

// RateService is the rate store accessor: cached reads over persisted rates
// and currency settings that degrade to hard-coded fallbacks instead of
// surfacing errors.
type RateService struct {
	BaseService
	rateRepo     portsrepo.ExchangeRateRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
	store        cache.Cache
	cacheTTL     time.Duration
	staleAfter   time.Duration
}

var _ portssvc.RateSvcFacade = (*RateService)(nil)

// NewRateService creates a RateService. cacheTTL bounds the memoization
// window; staleAfter is the advisory display-warning threshold.
func NewRateService(
	rateRepo portsrepo.ExchangeRateRepositoryFacade,
	currencyRepo portsrepo.CurrencyReader,
	store cache.Cache,
	cacheTTL time.Duration,
	staleAfter time.Duration,
) *RateService {
	return &RateService{
		rateRepo:     rateRepo,
		currencyRepo: currencyRepo,
		store:        store,
		cacheTTL:     cacheTTL,
		staleAfter:   staleAfter,
	}
}

// GetRates returns the base-relative rate table, from cache when live.
func (s *RateService) GetRates(ctx context.Context) domain.RateTable {
	return s.GetRatesResult(ctx).Rates
}

// GetRatesResult is GetRates plus whether the fallback table produced it.
// It never returns an error: persistence failures are logged and masked.
func (s *RateService) GetRatesResult(ctx context.Context) portssvc.RatesResult {
	if cached, ok := s.store.Get(cacheKeyRates); ok {
		if result, ok := cached.(portssvc.RatesResult); ok {
			return result
		}
	}

	result := s.loadRates(ctx)
	s.store.Set(cacheKeyRates, result, s.cacheTTL)
	return result
}

func (s *RateService) loadRates(ctx context.Context) portssvc.RatesResult {
	rows, err := s.rateRepo.ListRatesForBase(ctx, domain.BaseCurrencyCode)
	if err != nil {
		s.LogError(ctx, err, "Failed to load exchange rates, serving fallback table")
		return portssvc.RatesResult{Rates: fallbackRateTable(), UsedFallback: true}
	}
	if len(rows) == 0 {
		s.LogWarn(ctx, "No exchange rates in storage, serving fallback table")
		return portssvc.RatesResult{Rates: fallbackRateTable(), UsedFallback: true}
	}

	table := make(domain.RateTable, len(rows)+1)
	for _, row := range rows {
		table[row.TargetCurrencyCode] = row.Rate
	}
	// The base rate is exactly 1 regardless of what storage says.
	table[domain.BaseCurrencyCode] = decimal.NewFromInt(1)

	return portssvc.RatesResult{Rates: table}
}

func fallbackRateTable() domain.RateTable {
	table := make(domain.RateTable, len(fallbackRates))
	for code, raw := range fallbackRates {
		table[code] = decimal.RequireFromString(raw)
	}
	table[domain.BaseCurrencyCode] = decimal.NewFromInt(1)
	return table
}

// IsStale reports whether the newest rate row is older than the staleness
// threshold, or whether no rows exist. Advisory only; callers may render a
// warning banner.
func (s *RateService) IsStale(ctx context.Context) bool {
	fetchedAt, err := s.rateRepo.LatestFetchedAt(ctx, domain.BaseCurrencyCode)
	if err != nil {
		return true
	}
	return time.Since(fetchedAt) > s.staleAfter
}

// GetEnabledCurrencies returns enabled currencies sorted by display order.
func (s *RateService) GetEnabledCurrencies(ctx context.Context) []domain.Currency {
	return s.GetEnabledCurrenciesResult(ctx).Currencies
}

// GetEnabledCurrenciesResult is GetEnabledCurrencies plus the fallback flag.
func (s *RateService) GetEnabledCurrenciesResult(ctx context.Context) portssvc.CurrenciesResult {
	return s.cachedCurrencies(ctx, cacheKeyEnabledCurrencies, s.currencyRepo.ListEnabledCurrencies)
}

// GetFeaturedCurrencies returns enabled, featured currencies sorted by
// display order.
func (s *RateService) GetFeaturedCurrencies(ctx context.Context) []domain.Currency {
	return s.cachedCurrencies(ctx, cacheKeyFeaturedCurrencies, s.currencyRepo.ListFeaturedCurrencies).Currencies
}

func (s *RateService) cachedCurrencies(
	ctx context.Context,
	key string,
	list func(ctx context.Context) ([]domain.Currency, error),
) portssvc.CurrenciesResult {
	if cached, ok := s.store.Get(key); ok {
		if result, ok := cached.(portssvc.CurrenciesResult); ok {
			return result
		}
	}

	var result portssvc.CurrenciesResult
	currencies, err := list(ctx)
	switch {
	case err != nil:
		s.LogError(ctx, err, "Failed to load currencies, serving fallback set", slog.String("cache_key", key))
		result = portssvc.CurrenciesResult{Currencies: fallbackCurrencies(), UsedFallback: true}
	case len(currencies) == 0:
		s.LogWarn(ctx, "No currencies in storage, serving fallback set", slog.String("cache_key", key))
		result = portssvc.CurrenciesResult{Currencies: fallbackCurrencies(), UsedFallback: true}
	default:
		result = portssvc.CurrenciesResult{Currencies: currencies}
	}

	s.store.Set(key, result, s.cacheTTL)
	return result
}

// fallbackCurrencies is the minimal hard-coded set served when currency
// settings cannot be read: the base plus three common majors, all featured.
func fallbackCurrencies() []domain.Currency {
	codes := []string{domain.BaseCurrencyCode, "USD", "EUR", "GBP"}
	names := map[string]string{
		"AED": "UAE Dirham",
		"USD": "US Dollar",
		"EUR": "Euro",
		"GBP": "Pound Sterling",
	}

	currencies := make([]domain.Currency, 0, len(codes))
	for i, code := range codes {
		meta := money.MetadataFor(code)
		currencies = append(currencies, domain.Currency{
			CurrencyCode:   code,
			Name:           names[code],
			Symbol:         meta.Symbol,
			DecimalPlaces:  meta.DecimalPlaces,
			SymbolPosition: meta.SymbolPosition,
			IsEnabled:      true,
			IsDefault:      code == domain.DefaultCurrencyCode,
			IsFeatured:     true,
			DisplayOrder:   i,
		})
	}
	return currencies
}

// UpsertRates replaces the base-relative rates for the given targets. Unlike
// the read side this is a real write and returns errors to the refresh
// collaborator.
func (s *RateService) UpsertRates(ctx context.Context, rates map[string]decimal.Decimal, fetchedAt time.Time) error {
	if len(rates) == 0 {
		return apperrors.NewValidationError("rates table cannot be empty")
	}
	if fetchedAt.IsZero() {
		fetchedAt = time.Now()
	}

	rows := make([]domain.ExchangeRate, 0, len(rates))
	for target, rate := range rates {
		if len(target) != 3 {
			return fmt.Errorf("%w: invalid target currency code %q", apperrors.ErrValidation, target)
		}
		if rate.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: rate for %s must be positive", apperrors.ErrValidation, target)
		}
		if target == domain.BaseCurrencyCode {
			// The base rate is 1 by definition; normalize whatever was sent.
			rate = decimal.NewFromInt(1)
		}
		rows = append(rows, domain.ExchangeRate{
			BaseCurrencyCode:   domain.BaseCurrencyCode,
			TargetCurrencyCode: target,
			Rate:               rate,
			FetchedAt:          fetchedAt,
		})
	}

	if err := s.rateRepo.SaveRates(ctx, rows); err != nil {
		return fmt.Errorf("failed to upsert exchange rates: %w", err)
	}

	// The cached window is now out of date.
	s.store.Delete(cacheKeyRates)

	s.LogInfo(ctx, "Exchange rates upserted", slog.Int("count", len(rows)), slog.Time("fetched_at", fetchedAt))
	return nil
}
