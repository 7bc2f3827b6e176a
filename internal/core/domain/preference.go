package domain

// PreferenceSource records where a resolved display currency came from.
type PreferenceSource string

const (
	PreferenceSourceCookie  PreferenceSource = "cookie"
	PreferenceSourceBrowser PreferenceSource = "browser-detected"
	PreferenceSourceDefault PreferenceSource = "default-fallback"
)

// CurrencyPreference is the per-client choice of display currency, resolved
// once per request from cookie > browser locale > platform default.
type CurrencyPreference struct {
	Code   string           `json:"code"`
	Source PreferenceSource `json:"source"`
}
