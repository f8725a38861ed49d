package models

import "encoding/json"

// ExchangeRate is one item of the daily rate batch.
// Rates are sent as JSON numbers.
type ExchangeRate struct {
	BaseCurrencyCode   string      `json:"base_currency_code"`
	TargetCurrencyCode string      `json:"target_currency_code"`
	BuyRate            json.Number `json:"buy_rate"`
	SellRate           json.Number `json:"sell_rate"`
	RateDate           string      `json:"rate_date"`
}
