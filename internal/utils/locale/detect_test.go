package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAcceptLanguageOrdering(t *testing.T) {
	tags := ParseAcceptLanguage("en-US,en;q=0.9,ar;q=0.8")
	assert.Equal(t, []string{"en-US", "en", "ar"}, tags)

	// Quality weights override header order.
	tags = ParseAcceptLanguage("fr;q=0.5,de-DE;q=0.9")
	assert.Equal(t, []string{"de-DE", "fr"}, tags)

	// Equal weights keep header order.
	tags = ParseAcceptLanguage("en;q=0.8,fr;q=0.8")
	assert.Equal(t, []string{"en", "fr"}, tags)
}

func TestParseAcceptLanguageMalformed(t *testing.T) {
	assert.Empty(t, ParseAcceptLanguage(""))
	assert.Empty(t, ParseAcceptLanguage("   "))
	assert.Equal(t, []string{"en"}, ParseAcceptLanguage(",,en,"))

	// Unparseable q-values fall back to 1.0.
	tags := ParseAcceptLanguage("en;q=abc,de;q=0.5")
	assert.Equal(t, []string{"en", "de"}, tags)
}

func TestCurrencyForLocaleCountryWins(t *testing.T) {
	code, ok := CurrencyForLocale("en-US")
	assert.True(t, ok)
	assert.Equal(t, "USD", code)

	code, ok = CurrencyForLocale("de-DE")
	assert.True(t, ok)
	assert.Equal(t, "EUR", code)

	// The country segment beats the language segment.
	code, ok = CurrencyForLocale("en-GB")
	assert.True(t, ok)
	assert.Equal(t, "GBP", code)

	code, ok = CurrencyForLocale("ar-SA")
	assert.True(t, ok)
	assert.Equal(t, "SAR", code)
}

func TestCurrencyForLocaleLanguageFallback(t *testing.T) {
	code, ok := CurrencyForLocale("ar")
	assert.True(t, ok)
	assert.Equal(t, "AED", code)

	code, ok = CurrencyForLocale("ja")
	assert.True(t, ok)
	assert.Equal(t, "JPY", code)

	// Unknown country segment falls through to the language.
	code, ok = CurrencyForLocale("en-ZZ")
	assert.True(t, ok)
	assert.Equal(t, "USD", code)
}

func TestCurrencyForLocaleUnderscoreAndCase(t *testing.T) {
	code, ok := CurrencyForLocale("en_us")
	assert.True(t, ok)
	assert.Equal(t, "USD", code)

	code, ok = CurrencyForLocale("AR_ae")
	assert.True(t, ok)
	assert.Equal(t, "AED", code)
}

func TestCurrencyForLocaleUnknown(t *testing.T) {
	_, ok := CurrencyForLocale("xx")
	assert.False(t, ok)

	_, ok = CurrencyForLocale("")
	assert.False(t, ok)
}

func TestDetectCurrency(t *testing.T) {
	assert.Equal(t, "USD", DetectCurrency("en-US,en;q=0.9"))
	assert.Equal(t, "EUR", DetectCurrency("de-DE,de;q=0.9,en;q=0.8"))
	assert.Equal(t, "AED", DetectCurrency("ar"))

	// The first mappable tag in quality order wins.
	assert.Equal(t, "JPY", DetectCurrency("xx,ja;q=0.9,en;q=0.8"))
}

func TestDetectCurrencyDefault(t *testing.T) {
	assert.Equal(t, "AED", DetectCurrency(""))
	assert.Equal(t, "AED", DetectCurrency("xx-YY,zz"))
}

func TestDetectCurrencyOK(t *testing.T) {
	code, ok := DetectCurrencyOK("en-US")
	assert.True(t, ok)
	assert.Equal(t, "USD", code)

	// A genuine match on the default currency still reports ok.
	code, ok = DetectCurrencyOK("ar")
	assert.True(t, ok)
	assert.Equal(t, "AED", code)

	// No match reports ok=false rather than the default.
	_, ok = DetectCurrencyOK("")
	assert.False(t, ok)

	_, ok = DetectCurrencyOK("xx-YY,zz")
	assert.False(t, ok)
}
