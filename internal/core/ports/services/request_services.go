package services

import (
	"context"

	"github.com/SscSPs/exchange_desk/internal/dto"
)

// RequestSvc lists and advances a provider's exchange requests.
type RequestSvc interface {
	ListRequests(ctx context.Context, providerID string, params dto.ListRequestsParams) (*dto.ListRequestsResponse, error)
	UpdateStatus(ctx context.Context, providerID, referenceNumber, status string) error
}

// SettingsSvc holds per-provider preferences.
type SettingsSvc interface {
	GetLanguage(ctx context.Context, providerID string) (string, error)
	SetLanguage(ctx context.Context, providerID, language string) (string, error)
}
