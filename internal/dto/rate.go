package dto

import (
	"github.com/SscSPs/exchange_desk/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateInput is one edited row of the rate board.
type RateInput struct {
	TargetCurrencyCode string          `json:"targetCurrencyCode" binding:"required"`
	BuyRate            decimal.Decimal `json:"buyRate"`
	SellRate           decimal.Decimal `json:"sellRate"`
}

// SubmitRatesRequest carries the edited rate board.
type SubmitRatesRequest struct {
	Rates []RateInput `json:"rates" binding:"required,min=1,dive"`
}

// RateResponse is one row of the rate board.
type RateResponse struct {
	BaseCurrencyCode   string `json:"baseCurrencyCode"`
	TargetCurrencyCode string `json:"targetCurrencyCode"`
	BuyRate            string `json:"buyRate"`
	SellRate           string `json:"sellRate"`
}

// SubmitRatesResponse reports how many rates were sent upstream.
type SubmitRatesResponse struct {
	Submitted int    `json:"submitted"`
	RateDate  string `json:"rateDate"`
}

// ToRateBoardResponse converts a staged rate board to DTOs.
func ToRateBoardResponse(board []domain.Rate) []RateResponse {
	res := make([]RateResponse, len(board))
	for i, r := range board {
		res[i] = RateResponse{
			BaseCurrencyCode:   r.BaseCurrencyCode,
			TargetCurrencyCode: r.TargetCurrencyCode,
			BuyRate:            r.BuyRate.String(),
			SellRate:           r.SellRate.String(),
		}
	}
	return res
}
