package dto

// ConvertResponse is the result of converting and formatting one amount.
type ConvertResponse struct {
	Amount    float64 `json:"amount"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Converted float64 `json:"converted"`
	Formatted string  `json:"formatted"`
}

// PriceRangeResponse is a formatted min-max price range in the target currency.
type PriceRangeResponse struct {
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	To        string  `json:"to"`
	Formatted string  `json:"formatted"`
}
