package money

import "github.com/transitbase/currency-service/internal/core/domain"

// Metadata supplies the display attributes for one currency code.
type Metadata struct {
	Symbol         string
	DecimalPlaces  int
	SymbolPosition domain.SymbolPosition
}

// metadataTable is the static display table for the platform's supported
// codes. Admin-managed currency rows carry the authoritative copy; this table
// backs the pure formatting path so it never needs a database round trip.
var metadataTable = map[string]Metadata{
	"AED": {Symbol: "د.إ", DecimalPlaces: 2, SymbolPosition: domain.SymbolBefore},
	"USD": {Symbol: "$", DecimalPlaces: 2, SymbolPosition: domain.SymbolBefore},
	"EUR": {Symbol: "€", DecimalPlaces: 2, SymbolPosition: domain.SymbolBefore},
	"GBP": {Symbol: "£", DecimalPlaces: 2, SymbolPosition: domain.SymbolBefore},
	"SAR": {Symbol: "﷼", DecimalPlaces: 2, SymbolPosition: domain.SymbolAfter},
	"QAR": {Symbol: "ر.ق", DecimalPlaces: 2, SymbolPosition: domain.SymbolAfter},
	"KWD": {Symbol: "د.ك", DecimalPlaces: 3, SymbolPosition: domain.SymbolAfter},
	"BHD": {Symbol: ".د.ب", DecimalPlaces: 3, SymbolPosition: domain.SymbolAfter},
	"OMR": {Symbol: "ر.ع.", DecimalPlaces: 3, SymbolPosition: domain.SymbolAfter},
	"EGP": {Symbol: "E£", DecimalPlaces: 2, SymbolPosition: domain.SymbolBefore},
	"JPY": {Symbol: "¥", DecimalPlaces: 0, SymbolPosition: domain.SymbolBefore},
	"CNY": {Symbol: "¥", DecimalPlaces: 2, SymbolPosition: domain.SymbolBefore},
	"INR": {Symbol: "₹", DecimalPlaces: 2, SymbolPosition: domain.SymbolBefore},
	"PKR": {Symbol: "₨", DecimalPlaces: 2, SymbolPosition: domain.SymbolBefore},
	"RUB": {Symbol: "₽", DecimalPlaces: 2, SymbolPosition: domain.SymbolAfter},
	"TRY": {Symbol: "₺", DecimalPlaces: 2, SymbolPosition: domain.SymbolBefore},
	"CAD": {Symbol: "C$", DecimalPlaces: 2, SymbolPosition: domain.SymbolBefore},
	"AUD": {Symbol: "A$", DecimalPlaces: 2, SymbolPosition: domain.SymbolBefore},
	"CHF": {Symbol: "CHF", DecimalPlaces: 2, SymbolPosition: domain.SymbolBefore},
}

// MetadataFor returns the display metadata for a currency code. Unknown codes
// fall back to the base currency's metadata.
func MetadataFor(code string) Metadata {
	if m, ok := metadataTable[code]; ok {
		return m
	}
	return metadataTable[domain.BaseCurrencyCode]
}

// SupportedCodes returns the codes present in the static metadata table.
func SupportedCodes() []string {
	codes := make([]string, 0, len(metadataTable))
	for code := range metadataTable {
		codes = append(codes, code)
	}
	return codes
}
