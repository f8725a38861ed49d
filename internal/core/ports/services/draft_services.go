package services

import (
	"context"

	"github.com/SscSPs/exchange_desk/internal/apperrors"
	"github.com/SscSPs/exchange_desk/internal/core/domain"
	"github.com/SscSPs/exchange_desk/internal/core/forms"
	"github.com/SscSPs/exchange_desk/internal/dto"
)

// DraftSvc drives the multi-step exchange request wizard.
// Step and submit failures carry apperrors.FieldErrors.
type DraftSvc interface {
	CreateDraft(ctx context.Context, providerID string, req dto.CreateDraftRequest) (*forms.Draft, error)
	GetDraft(ctx context.Context, draftID string) (*forms.Draft, error)

	// UpdateContact sets form fields and returns per-field feedback for the fields it touched.
	UpdateContact(ctx context.Context, draftID string, fields map[string]string) (*forms.Draft, apperrors.FieldErrors, error)
	UpdateExchange(ctx context.Context, draftID string, req dto.UpdateExchangeRequest) (*forms.Draft, error)
	Swap(ctx context.Context, draftID string) (*forms.Draft, error)

	Next(ctx context.Context, draftID string) (*forms.Draft, error)
	Previous(ctx context.Context, draftID string) (*forms.Draft, error)

	// Submit validates every field, sends the request upstream and discards the draft on success.
	Submit(ctx context.Context, draftID string) (*domain.ExchangeRequest, error)
}
