package domain

// SymbolPosition says where a currency's symbol is rendered relative to the
// formatted number.
type SymbolPosition string

const (
	SymbolBefore SymbolPosition = "before"
	SymbolAfter  SymbolPosition = "after"
)

// Currency represents one supported tender.
type Currency struct {
	CurrencyCode   string         `json:"currencyCode"` // Primary Key (e.g., "USD")
	Name           string         `json:"name"`         // e.g., "US Dollar"
	Symbol         string         `json:"symbol"`       // e.g., "$"
	DecimalPlaces  int            `json:"decimalPlaces"`
	SymbolPosition SymbolPosition `json:"symbolPosition"`
	IsEnabled      bool           `json:"isEnabled"`
	IsDefault      bool           `json:"isDefault"` // at most one among enabled currencies
	IsFeatured     bool           `json:"isFeatured"`
	DisplayOrder   int            `json:"displayOrder"`
	AuditFields
}
