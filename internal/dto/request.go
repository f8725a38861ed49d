package dto

import "github.com/SscSPs/exchange_desk/internal/core/domain"

// RequestView is an exchange request prepared for a list row.
type RequestView struct {
	ReferenceNumber     string                  `json:"referenceNumber"`
	GuestName           string                  `json:"guestName"`
	GuestEmail          string                  `json:"guestEmail,omitempty"`
	GuestPhone          string                  `json:"guestPhone"`
	Whatsapp            string                  `json:"whatsapp"`
	GuestIdentification string                  `json:"guestIdentification,omitempty"`
	FromCurrencyCode    string                  `json:"fromCurrencyCode"`
	ToCurrencyCode      string                  `json:"toCurrencyCode"`
	BaseAmount          string                  `json:"baseAmount"`
	TargetAmount        string                  `json:"targetAmount"`
	BaseAmountDisplay   string                  `json:"baseAmountDisplay"`
	TargetAmountDisplay string                  `json:"targetAmountDisplay"`
	ExchangeRate        string                  `json:"exchangeRate"`
	PaymentMethod       string                  `json:"paymentMethod"`
	Status              string                  `json:"status"`
	Display             domain.StatusProjection `json:"display"`
	CreatedAt           string                  `json:"createdAt"`
	DateDisplay         string                  `json:"dateDisplay"`
}

// ToRequestView converts a domain.ExchangeRequest to a RequestView in the given language.
func ToRequestView(r domain.ExchangeRequest, lang domain.Language) RequestView {
	return RequestView{
		ReferenceNumber:     r.ReferenceNumber,
		GuestName:           r.GuestName,
		GuestEmail:          r.GuestEmail,
		GuestPhone:          r.GuestPhone,
		Whatsapp:            r.Whatsapp,
		GuestIdentification: r.GuestIdentification,
		FromCurrencyCode:    r.FromCurrencyCode,
		ToCurrencyCode:      r.ToCurrencyCode,
		BaseAmount:          r.BaseAmount.String(),
		TargetAmount:        r.TargetAmount.String(),
		BaseAmountDisplay:   domain.FormatAmount(r.BaseAmount, r.FromCurrencyCode),
		TargetAmountDisplay: domain.FormatAmount(r.TargetAmount, r.ToCurrencyCode),
		ExchangeRate:        domain.FormatRate(r.ExchangeRate),
		PaymentMethod:       string(r.PaymentMethod),
		Status:              string(r.Status),
		Display:             domain.Project(string(r.Status), lang),
		CreatedAt:           r.CreatedAt,
		DateDisplay:         domain.FormatDate(r.CreatedAt, lang),
	}
}

// ListRequestsParams are the query parameters of the request list.
type ListRequestsParams struct {
	Tab       string `form:"tab"`
	PageToken string `form:"pageToken"`
	Lang      string `form:"lang"`
	Refresh   bool   `form:"refresh"`
}

// ListRequestsResponse is one page of projected requests.
type ListRequestsResponse struct {
	Tab           string        `json:"tab"`
	Requests      []RequestView `json:"requests"`
	NextPageToken string        `json:"nextPageToken,omitempty"`
}

// UpdateStatusRequest asks the upstream API to move a request to a new status.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
