package locale

import (
	"sort"
	"strconv"
	"strings"

	"github.com/transitbase/currency-service/internal/core/domain"
)

// countryCurrency maps an uppercased ISO country code to the currency a
// visitor from that country most likely wants quoted.
var countryCurrency = map[string]string{
	"AE": "AED",
	"SA": "SAR",
	"QA": "QAR",
	"KW": "KWD",
	"BH": "BHD",
	"OM": "OMR",
	"EG": "EGP",
	"US": "USD",
	"GB": "GBP",
	"DE": "EUR",
	"FR": "EUR",
	"ES": "EUR",
	"IT": "EUR",
	"NL": "EUR",
	"IE": "EUR",
	"AT": "EUR",
	"BE": "EUR",
	"PT": "EUR",
	"IN": "INR",
	"PK": "PKR",
	"JP": "JPY",
	"CN": "CNY",
	"RU": "RUB",
	"TR": "TRY",
	"CA": "CAD",
	"AU": "AUD",
	"CH": "CHF",
}

// languageCurrency is the fallback for bare language tags with no country
// segment.
var languageCurrency = map[string]string{
	"ar": "AED",
	"en": "USD",
	"de": "EUR",
	"fr": "EUR",
	"es": "EUR",
	"it": "EUR",
	"nl": "EUR",
	"pt": "EUR",
	"hi": "INR",
	"ur": "PKR",
	"ja": "JPY",
	"zh": "CNY",
	"ru": "RUB",
	"tr": "TRY",
}

type weightedTag struct {
	tag     string
	quality float64
}

// ParseAcceptLanguage parses an Accept-Language-shaped header value into an
// ordered list of locale tags, descending by quality weight. A missing ;q=
// suffix implies 1.0. Ordering is stable, so equal weights keep header order.
// An empty header yields an empty list.
func ParseAcceptLanguage(header string) []string {
	if strings.TrimSpace(header) == "" {
		return nil
	}

	var tags []weightedTag
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tag, params, _ := strings.Cut(part, ";")
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		q := 1.0
		for _, p := range strings.Split(params, ";") {
			p = strings.TrimSpace(p)
			if v, ok := strings.CutPrefix(p, "q="); ok {
				if parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
					q = parsed
				}
			}
		}
		tags = append(tags, weightedTag{tag: tag, quality: q})
	}

	sort.SliceStable(tags, func(i, j int) bool {
		return tags[i].quality > tags[j].quality
	})

	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.tag
	}
	return out
}

// CurrencyForLocale maps one locale tag to a currency code. The country
// segment (second hyphen- or underscore-delimited token) wins over the
// language segment; an unrecognized tag reports ok=false.
func CurrencyForLocale(tag string) (string, bool) {
	segments := strings.FieldsFunc(tag, func(r rune) bool {
		return r == '-' || r == '_'
	})
	if len(segments) == 0 {
		return "", false
	}

	if len(segments) > 1 {
		country := strings.ToUpper(segments[1])
		if code, ok := countryCurrency[country]; ok {
			return code, true
		}
	}

	lang := strings.ToLower(segments[0])
	if code, ok := languageCurrency[lang]; ok {
		return code, true
	}
	return "", false
}

// DetectCurrencyOK parses an Accept-Language header and returns the currency
// of the first quality-ordered locale that maps to one. It reports ok=false
// when no locale matched, letting callers tell a genuine detection apart from
// a fallback.
func DetectCurrencyOK(header string) (string, bool) {
	for _, tag := range ParseAcceptLanguage(header) {
		if code, ok := CurrencyForLocale(tag); ok {
			return code, true
		}
	}
	return "", false
}

// DetectCurrency is DetectCurrencyOK with the platform default standing in
// when nothing matches.
func DetectCurrency(header string) string {
	if code, ok := DetectCurrencyOK(header); ok {
		return code
	}
	return domain.DefaultCurrencyCode
}
