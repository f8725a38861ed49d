package mapping

import (
	"encoding/json"

	"github.com/SscSPs/exchange_desk/internal/core/domain"
	"github.com/SscSPs/exchange_desk/internal/models"
)

// ToDomainExchangeRequest converts a model ExchangeRequest to a domain ExchangeRequest.
// The status is normalized to lower case.
func ToDomainExchangeRequest(m models.ExchangeRequest) domain.ExchangeRequest {
	return domain.ExchangeRequest{
		ReferenceNumber:     m.ReferenceNumber,
		GuestName:           m.GuestName,
		GuestEmail:          m.GuestEmail,
		GuestPhone:          m.GuestPhone,
		Whatsapp:            m.Whatsapp,
		GuestIdentification: m.GuestIdentification,
		FromCurrencyCode:    m.FromCurrency,
		ToCurrencyCode:      m.ToCurrency,
		BaseAmount:          m.BaseAmount,
		TargetAmount:        m.TargetAmount,
		ExchangeRate:        m.ExchangeRate,
		PaymentMethod:       domain.PaymentMethod(m.PaymentMethod),
		Status:              domain.NormalizeStatus(m.Status),
		CreatedAt:           m.CreatedAt,
	}
}

// ToDomainExchangeRequestSlice converts a slice of model ExchangeRequests
func ToDomainExchangeRequestSlice(ms []models.ExchangeRequest) []domain.ExchangeRequest {
	ds := make([]domain.ExchangeRequest, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExchangeRequest(m)
	}
	return ds
}

// ToModelNewExchangeRequest converts a domain ExchangeRequest to the creation body
func ToModelNewExchangeRequest(d domain.ExchangeRequest) models.NewExchangeRequest {
	return models.NewExchangeRequest{
		GuestName:           d.GuestName,
		GuestEmail:          d.GuestEmail,
		GuestPhone:          d.GuestPhone,
		Whatsapp:            d.Whatsapp,
		GuestIdentification: d.GuestIdentification,
		FromCurrency:        d.FromCurrencyCode,
		ToCurrency:          d.ToCurrencyCode,
		BaseAmount:          json.Number(d.BaseAmount.String()),
		TargetAmount:        json.Number(d.TargetAmount.String()),
		ExchangeRate:        json.Number(d.ExchangeRate.String()),
		PaymentMethod:       string(d.PaymentMethod),
		Status:              string(d.Status),
	}
}
