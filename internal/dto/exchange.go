package dto

import "github.com/SscSPs/exchange_desk/internal/core/domain"

// QuoteRequest asks for a conversion of an amount between two currencies.
type QuoteRequest struct {
	FromCurrencyCode string `json:"fromCurrencyCode" form:"from" binding:"required"`
	ToCurrencyCode   string `json:"toCurrencyCode" form:"to" binding:"required"`
	FromAmount       string `json:"fromAmount" form:"amount"`
}

// PairResponse is a priced currency pair.
type PairResponse struct {
	From        CurrencyResponse `json:"from"`
	To          CurrencyResponse `json:"to"`
	FromAmount  string           `json:"fromAmount"`
	ToAmount    string           `json:"toAmount"`
	Rate        string           `json:"rate"`
	RateDisplay string           `json:"rateDisplay"`
}

// ToPairResponse converts a domain.ExchangePair to PairResponse DTO
func ToPairResponse(p domain.ExchangePair) PairResponse {
	return PairResponse{
		From:        ToCurrencyResponse(p.From),
		To:          ToCurrencyResponse(p.To),
		FromAmount:  p.FromAmount,
		ToAmount:    p.ToAmount,
		Rate:        p.Rate.String(),
		RateDisplay: domain.FormatRate(p.Rate),
	}
}
