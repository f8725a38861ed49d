package mapping

import (
	"encoding/json"

	"github.com/SscSPs/exchange_desk/internal/core/domain"
	"github.com/SscSPs/exchange_desk/internal/models"
)

// ToModelExchangeRates converts a rate batch to its wire form
func ToModelExchangeRates(batch []domain.RateSubmission) []models.ExchangeRate {
	ms := make([]models.ExchangeRate, len(batch))
	for i, r := range batch {
		ms[i] = models.ExchangeRate{
			BaseCurrencyCode:   r.BaseCurrencyCode,
			TargetCurrencyCode: r.TargetCurrencyCode,
			BuyRate:            json.Number(r.BuyRate.String()),
			SellRate:           json.Number(r.SellRate.String()),
			RateDate:           r.RateDate,
		}
	}
	return ms
}
