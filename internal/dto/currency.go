package dto

import (
	"github.com/SscSPs/exchange_desk/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	ID             int64   `json:"id"`
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	FlagEmoji      string  `json:"flagEmoji"`
	Symbol         string  `json:"symbol"`
	DecimalPlaces  int32   `json:"decimalPlaces"`
	IsActive       bool    `json:"isActive"`
	IsBaseCurrency bool    `json:"isBaseCurrency"`
	BuyRate        *string `json:"buyRate"`
	SellRate       *string `json:"sellRate"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		ID:             curr.ID,
		Code:           curr.Code,
		Name:           curr.Name,
		FlagEmoji:      curr.FlagEmoji,
		Symbol:         curr.Symbol,
		DecimalPlaces:  curr.DecimalPlaces,
		IsActive:       curr.IsActive,
		IsBaseCurrency: curr.IsBaseCurrency,
		BuyRate:        nullableRate(curr.BuyRate),
		SellRate:       nullableRate(curr.SellRate),
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(curr)
	}
	return res
}

func nullableRate(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.String()
	return &s
}

// ActivationRequest toggles a currency for the signed-in provider.
type ActivationRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}
