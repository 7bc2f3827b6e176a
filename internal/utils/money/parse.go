package money

import (
	"strconv"
	"strings"
)

// ParsePrice is a best-effort inverse of Format: it strips everything except
// digits, '.', ',' and '-', treats a lone comma as the decimal separator, and
// parses the remainder as a float. It reports ok=false when nothing numeric
// survives. A bare grouped number like "1,234" therefore reads as 1.234.
func ParsePrice(text string) (float64, bool) {
	var b strings.Builder
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',', r == '-':
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0, false
	}

	if strings.Count(cleaned, ",") == 1 && !strings.Contains(cleaned, ".") {
		// A single comma with no dot reads as a decimal separator.
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	} else {
		// Otherwise commas are thousands grouping.
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
