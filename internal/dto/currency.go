package dto

import (
	"time"

	"github.com/transitbase/currency-service/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
type CreateCurrencyRequest struct {
	CurrencyCode   string `json:"currencyCode" binding:"required,uppercase,len=3"`
	Name           string `json:"name" binding:"required"`
	Symbol         string `json:"symbol" binding:"required"`
	DecimalPlaces  int    `json:"decimalPlaces" binding:"gte=0,lte=8"`
	SymbolPosition string `json:"symbolPosition" binding:"required,oneof=before after"`
	IsEnabled      bool   `json:"isEnabled"`
	IsFeatured     bool   `json:"isFeatured"`
	DisplayOrder   int    `json:"displayOrder"`
}

// UpdateCurrencyRequest defines a partial update to an existing currency.
// Nil fields are left untouched.
type UpdateCurrencyRequest struct {
	Name           *string `json:"name"`
	Symbol         *string `json:"symbol"`
	DecimalPlaces  *int    `json:"decimalPlaces" binding:"omitempty,gte=0,lte=8"`
	SymbolPosition *string `json:"symbolPosition" binding:"omitempty,oneof=before after"`
	IsEnabled      *bool   `json:"isEnabled"`
	IsFeatured     *bool   `json:"isFeatured"`
	DisplayOrder   *int    `json:"displayOrder"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode   string    `json:"currencyCode"`
	Name           string    `json:"name"`
	Symbol         string    `json:"symbol"`
	DecimalPlaces  int       `json:"decimalPlaces"`
	SymbolPosition string    `json:"symbolPosition"`
	IsEnabled      bool      `json:"isEnabled"`
	IsDefault      bool      `json:"isDefault"`
	IsFeatured     bool      `json:"isFeatured"`
	DisplayOrder   int       `json:"displayOrder"`
	CreatedAt      time.Time `json:"createdAt"`
	LastUpdatedAt  time.Time `json:"lastUpdatedAt"`
}

// ToCurrencyResponse converts a domain.Currency to a CurrencyResponse DTO.
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode:   curr.CurrencyCode,
		Name:           curr.Name,
		Symbol:         curr.Symbol,
		DecimalPlaces:  curr.DecimalPlaces,
		SymbolPosition: string(curr.SymbolPosition),
		IsEnabled:      curr.IsEnabled,
		IsDefault:      curr.IsDefault,
		IsFeatured:     curr.IsFeatured,
		DisplayOrder:   curr.DisplayOrder,
		CreatedAt:      curr.CreatedAt,
		LastUpdatedAt:  curr.LastUpdatedAt,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to response DTOs.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr)
	}
	return res
}
