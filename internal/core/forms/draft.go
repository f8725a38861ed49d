package forms

import (
	"strings"
	"time"

	"github.com/SscSPs/exchange_desk/internal/apperrors"
	"github.com/SscSPs/exchange_desk/internal/core/domain"
)

// FieldFromAmount is the error key used when the exchange amount is missing.
const FieldFromAmount = "fromAmount"

// Draft is an exchange request still being filled in by a guest.
type Draft struct {
	Wizard
	ID         string              `json:"id"`
	ProviderID string              `json:"providerId"`
	Form       RequestForm         `json:"form"`
	Pair       domain.ExchangePair `json:"pair"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}

// ValidateForSubmit re-checks every field regardless of earlier feedback, plus the exchange amount.
func (d Draft) ValidateForSubmit() apperrors.FieldErrors {
	errs := Validate(d.Form)
	if !d.Pair.FromValue().IsPositive() {
		errs[FieldFromAmount] = "amount must be greater than zero"
	}
	return errs
}

// ToExchangeRequest assembles the request sent upstream. The rate is the snapshot held by the draft.
func (d Draft) ToExchangeRequest() domain.ExchangeRequest {
	return domain.ExchangeRequest{
		GuestName:           strings.TrimSpace(d.Form.GuestName),
		GuestEmail:          strings.TrimSpace(d.Form.GuestEmail),
		GuestPhone:          strings.TrimSpace(d.Form.GuestPhone),
		Whatsapp:            strings.TrimSpace(d.Form.Whatsapp),
		GuestIdentification: strings.TrimSpace(d.Form.GuestIdentification),
		FromCurrencyCode:    d.Pair.From.Code,
		ToCurrencyCode:      d.Pair.To.Code,
		BaseAmount:          d.Pair.FromValue(),
		TargetAmount:        d.Pair.ToValue(),
		ExchangeRate:        d.Pair.Rate,
		PaymentMethod:       domain.PaymentMethod(d.Form.PaymentMethod),
		Status:              domain.StatusPending,
	}
}
