package mapping

import (
	"github.com/transitbase/currency-service/internal/core/domain"
	"github.com/transitbase/currency-service/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		CurrencyCode:   d.CurrencyCode,
		Name:           d.Name,
		Symbol:         d.Symbol,
		DecimalPlaces:  d.DecimalPlaces,
		SymbolPosition: string(d.SymbolPosition),
		IsEnabled:      d.IsEnabled,
		IsDefault:      d.IsDefault,
		IsFeatured:     d.IsFeatured,
		DisplayOrder:   d.DisplayOrder,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyCode:   m.CurrencyCode,
		Name:           m.Name,
		Symbol:         m.Symbol,
		DecimalPlaces:  m.DecimalPlaces,
		SymbolPosition: domain.SymbolPosition(m.SymbolPosition),
		IsEnabled:      m.IsEnabled,
		IsDefault:      m.IsDefault,
		IsFeatured:     m.IsFeatured,
		DisplayOrder:   m.DisplayOrder,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to a slice of domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
