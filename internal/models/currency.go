package models

import "github.com/shopspring/decimal"

// Currency is a currency as served by the upstream exchange API.
type Currency struct {
	ID            int64               `json:"id"`
	Code          string              `json:"code"`
	Name          string              `json:"name"`
	FlagEmoji     string              `json:"flag_emoji"`
	DecimalPlaces int32               `json:"decimal_places"`
	Symbol        string              `json:"symbol"`
	IsActive      bool                `json:"is_active"`
	BaseCurrency  bool                `json:"base_currency"`
	BuyRate       decimal.NullDecimal `json:"buy_rate"`
	SellRate      decimal.NullDecimal `json:"sell_rate"`
	CreatedAt     string              `json:"created_at,omitempty"`
	UpdatedAt     string              `json:"updated_at,omitempty"`
}

// ActivateCurrency is the body of an activation toggle.
type ActivateCurrency struct {
	CurrencyID int64 `json:"currency_id"`
	IsActive   bool  `json:"is_active"`
}
