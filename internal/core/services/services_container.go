package services

import (
	portsrepo "github.com/transitbase/currency-service/internal/core/ports/repositories"
	portssvc "github.com/transitbase/currency-service/internal/core/ports/services"
	"github.com/transitbase/currency-service/pkg/cache"
	"github.com/transitbase/currency-service/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, store cache.Cache) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The rate accessor comes first since preference resolution reads the
	// enabled set through it.
	container.Rate = NewRateService(
		repos.ExchangeRateRepo,
		repos.CurrencyRepo,
		store,
		cfg.RateCacheTTL,
		cfg.RateStaleAfter,
	)

	container.Currency = NewCurrencyService(repos.CurrencyRepo, store)
	container.Preference = NewPreferenceService(container.Rate)

	return container
}
