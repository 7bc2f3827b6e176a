package services

import (
	"context"

	"github.com/transitbase/currency-service/internal/core/domain"
)

// PreferenceSvc resolves the effective display currency for one request.
// Resolution is total: it always yields a code, worst case the platform
// default.
type PreferenceSvc interface {
	// ResolvePreference picks the display currency from an explicit cookie
	// value, the Accept-Language header, and the enabled currency set, in that
	// priority order.
	ResolvePreference(ctx context.Context, cookieValue, acceptLanguage string) domain.CurrencyPreference
}
