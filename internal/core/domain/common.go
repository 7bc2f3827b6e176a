package domain

import "time"

// Platform-wide currency anchors. All monetary amounts stored elsewhere in
// the platform are denominated in the base currency; the default currency is
// what preference resolution falls back to when nothing better is known.
const (
	BaseCurrencyCode    = "AED"
	DefaultCurrencyCode = "AED"
)

// AuditFields holds standard audit information for admin-managed entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}
