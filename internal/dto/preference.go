package dto

import "github.com/transitbase/currency-service/internal/core/domain"

// SetPreferenceRequest sets the client's display currency.
type SetPreferenceRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,uppercase,len=3"`
}

// PreferenceResponse reports the resolved display currency and where it came from.
type PreferenceResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Source       string `json:"source"`
}

// ToPreferenceResponse converts a resolved preference to its DTO.
func ToPreferenceResponse(pref domain.CurrencyPreference) PreferenceResponse {
	return PreferenceResponse{
		CurrencyCode: pref.Code,
		Source:       string(pref.Source),
	}
}
