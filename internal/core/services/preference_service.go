package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/transitbase/currency-service/internal/core/domain"
	portssvc "github.com/transitbase/currency-service/internal/core/ports/services"
	"github.com/transitbase/currency-service/internal/utils/locale"
)

// PreferenceService resolves the effective display currency for a request.
type PreferenceService struct {
	BaseService
	rates portssvc.RateReaderSvc
}

var _ portssvc.PreferenceSvc = (*PreferenceService)(nil)

func NewPreferenceService(rates portssvc.RateReaderSvc) *PreferenceService {
	return &PreferenceService{rates: rates}
}

// ResolvePreference picks the display currency in fixed priority order:
// explicit cookie, then browser locale, then the platform default. The
// enabled set is read through the rate accessor so it shares its cache and
// fallback behavior.
func (s *PreferenceService) ResolvePreference(ctx context.Context, cookieValue, acceptLanguage string) domain.CurrencyPreference {
	enabled := s.rates.GetEnabledCurrencies(ctx)
	codes := make([]string, len(enabled))
	for i, currency := range enabled {
		codes[i] = currency.CurrencyCode
	}

	pref := ResolveWithEnabled(cookieValue, acceptLanguage, codes)
	s.LogDebug(ctx, "Display currency resolved",
		slog.String("code", pref.Code),
		slog.String("source", string(pref.Source)),
	)
	return pref
}

// ResolveWithEnabled is the pure resolution rule. It is total: with empty
// inputs it still returns the platform default.
func ResolveWithEnabled(cookieValue, acceptLanguage string, enabledCodes []string) domain.CurrencyPreference {
	// 1. An explicit, enabled cookie choice always wins.
	if code := normalizeCode(cookieValue); code != "" && contains(enabledCodes, code) {
		return domain.CurrencyPreference{Code: code, Source: domain.PreferenceSourceCookie}
	}

	// 2. Whatever the browser locale suggests, if enabled. Only a genuine
	// locale match counts as browser-detected; the detector's own default
	// fallback must not masquerade as one.
	if detected, ok := locale.DetectCurrencyOK(acceptLanguage); ok && contains(enabledCodes, detected) {
		return domain.CurrencyPreference{Code: detected, Source: domain.PreferenceSourceBrowser}
	}

	// 3. The platform default, the first enabled currency, or the default as
	// the absolute last resort.
	if contains(enabledCodes, domain.DefaultCurrencyCode) {
		return domain.CurrencyPreference{Code: domain.DefaultCurrencyCode, Source: domain.PreferenceSourceDefault}
	}
	if len(enabledCodes) > 0 {
		return domain.CurrencyPreference{Code: enabledCodes[0], Source: domain.PreferenceSourceDefault}
	}
	return domain.CurrencyPreference{Code: domain.DefaultCurrencyCode, Source: domain.PreferenceSourceDefault}
}

// normalizeCode uppercases a candidate code and rejects anything that is not
// syntactically a 3-letter code.
func normalizeCode(value string) string {
	value = strings.ToUpper(strings.TrimSpace(value))
	if len(value) != 3 {
		return ""
	}
	for _, r := range value {
		if r < 'A' || r > 'Z' {
			return ""
		}
	}
	return value
}

func contains(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
