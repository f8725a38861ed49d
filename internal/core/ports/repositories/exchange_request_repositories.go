package repositories

import (
	"context"

	"github.com/SscSPs/exchange_desk/internal/core/domain"
)

// ExchangeRequestReader defines read operations for exchange requests
type ExchangeRequestReader interface {
	// ListRecentRequests retrieves a page of a provider's requests, most recent first.
	ListRecentRequests(ctx context.Context, providerID string, offset int) ([]domain.ExchangeRequest, error)
}

// ExchangeRequestWriter defines write operations for exchange requests
type ExchangeRequestWriter interface {
	// CreateRequest submits a new exchange request and returns it as stored upstream.
	CreateRequest(ctx context.Context, providerID string, req domain.ExchangeRequest) (*domain.ExchangeRequest, error)

	// UpdateRequestStatus issues a status change command for a request.
	UpdateRequestStatus(ctx context.Context, referenceNumber string, status domain.RequestStatus) error
}

// ExchangeRequestRepositoryFacade combines all exchange request repository interfaces
type ExchangeRequestRepositoryFacade interface {
	ExchangeRequestReader
	ExchangeRequestWriter
}
