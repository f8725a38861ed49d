package exchangeapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/SscSPs/exchange_desk/internal/core/domain"
	portsrepo "github.com/SscSPs/exchange_desk/internal/core/ports/repositories"
	"github.com/SscSPs/exchange_desk/internal/models"
	"github.com/SscSPs/exchange_desk/internal/utils/mapping"
)

// RequestRepository lists, creates and updates exchange requests through the upstream API.
type RequestRepository struct {
	client *Client
}

// NewRequestRepository creates a new repository for exchange requests.
func NewRequestRepository(client *Client) *RequestRepository {
	return &RequestRepository{client: client}
}

var _ portsrepo.ExchangeRequestRepositoryFacade = (*RequestRepository)(nil)

// ListRecentRequests calls GET /recentRequests/{providerId}/{offset}.
func (r *RequestRepository) ListRecentRequests(ctx context.Context, providerID string, offset int) ([]domain.ExchangeRequest, error) {
	var out []models.ExchangeRequest
	path := fmt.Sprintf("/recentRequests/%s/%s", url.PathEscape(providerID), strconv.Itoa(offset))
	if err := r.client.do(ctx, "recent_requests", http.MethodGet, path, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list recent requests for provider %s: %w", providerID, err)
	}
	return mapping.ToDomainExchangeRequestSlice(out), nil
}

// CreateRequest calls POST /requestExchange/{providerId}.
// Fields the upstream leaves out of its answer are kept from the submitted request.
func (r *RequestRepository) CreateRequest(ctx context.Context, providerID string, req domain.ExchangeRequest) (*domain.ExchangeRequest, error) {
	var out models.ExchangeRequest
	path := "/requestExchange/" + url.PathEscape(providerID)
	if err := r.client.do(ctx, "request_exchange", http.MethodPost, path, mapping.ToModelNewExchangeRequest(req), &out); err != nil {
		return nil, fmt.Errorf("failed to submit exchange request for provider %s: %w", providerID, err)
	}

	created := req
	if out.ReferenceNumber != "" {
		created.ReferenceNumber = out.ReferenceNumber
	}
	if out.Status != "" {
		created.Status = domain.NormalizeStatus(out.Status)
	}
	if out.CreatedAt != "" {
		created.CreatedAt = out.CreatedAt
	}
	return &created, nil
}

// UpdateRequestStatus calls POST /updateRequestStatus.
func (r *RequestRepository) UpdateRequestStatus(ctx context.Context, referenceNumber string, status domain.RequestStatus) error {
	body := models.UpdateRequestStatus{ReferenceNumber: referenceNumber, Status: string(status)}
	if err := r.client.do(ctx, "update_request_status", http.MethodPost, "/updateRequestStatus", body, nil); err != nil {
		return fmt.Errorf("failed to update status of request %s: %w", referenceNumber, err)
	}
	return nil
}
