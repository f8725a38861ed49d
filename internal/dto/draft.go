package dto

import (
	"github.com/SscSPs/exchange_desk/internal/apperrors"
	"github.com/SscSPs/exchange_desk/internal/core/forms"
)

// CreateDraftRequest starts a new exchange request. Empty codes select the base currency
// and its first counterpart.
type CreateDraftRequest struct {
	FromCurrencyCode string `json:"fromCurrencyCode"`
	ToCurrencyCode   string `json:"toCurrencyCode"`
	FromAmount       string `json:"fromAmount"`
}

// UpdateContactRequest sets form fields by name, e.g. {"guestName": "Sara"}.
type UpdateContactRequest struct {
	Fields map[string]string `json:"fields" binding:"required,min=1"`
}

// UpdateExchangeRequest changes the pair of a draft. Nil fields are left as they are.
type UpdateExchangeRequest struct {
	FromCurrencyCode *string `json:"fromCurrencyCode"`
	ToCurrencyCode   *string `json:"toCurrencyCode"`
	FromAmount       *string `json:"fromAmount"`
}

// DraftResponse is the state of a draft as shown by the request wizard.
type DraftResponse struct {
	ID         string            `json:"id"`
	ProviderID string            `json:"providerId"`
	Step       int               `json:"step"`
	StepName   string            `json:"stepName"`
	CanSubmit  bool              `json:"canSubmit"`
	Form       forms.RequestForm `json:"form"`
	Pair       PairResponse      `json:"pair"`
	Feedback   map[string]string `json:"feedback,omitempty"`
}

// ToDraftResponse converts a forms.Draft to DraftResponse DTO
func ToDraftResponse(d *forms.Draft, feedback apperrors.FieldErrors) DraftResponse {
	res := DraftResponse{
		ID:         d.ID,
		ProviderID: d.ProviderID,
		Step:       int(d.Step),
		StepName:   d.Step.String(),
		CanSubmit:  d.CanSubmit(),
		Form:       d.Form,
		Pair:       ToPairResponse(d.Pair),
	}
	if len(feedback) > 0 {
		res.Feedback = feedback
	}
	return res
}
