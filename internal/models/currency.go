package models

// Currency is the database row shape for a supported currency.
type Currency struct {
	CurrencyCode   string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Name           string `json:"name"`
	Symbol         string `json:"symbol"`
	DecimalPlaces  int    `json:"decimalPlaces"`
	SymbolPosition string `json:"symbolPosition"` // "before" or "after"
	IsEnabled      bool   `json:"isEnabled"`
	IsDefault      bool   `json:"isDefault"`
	IsFeatured     bool   `json:"isFeatured"`
	DisplayOrder   int    `json:"displayOrder"`
	AuditFields
}
