package mapping

import (
	"github.com/SscSPs/exchange_desk/internal/core/domain"
	"github.com/SscSPs/exchange_desk/internal/models"
)

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		ID:             m.ID,
		Code:           m.Code,
		Name:           m.Name,
		FlagEmoji:      m.FlagEmoji,
		Symbol:         m.Symbol,
		DecimalPlaces:  m.DecimalPlaces,
		IsActive:       m.IsActive,
		IsBaseCurrency: m.BaseCurrency,
		BuyRate:        m.BuyRate,
		SellRate:       m.SellRate,
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to a slice of domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	if ms == nil {
		return []domain.Currency{}
	}
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
