package exchangeapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/SscSPs/exchange_desk/internal/apperrors"
	"github.com/SscSPs/exchange_desk/internal/core/domain"
	portsrepo "github.com/SscSPs/exchange_desk/internal/core/ports/repositories"
	"github.com/SscSPs/exchange_desk/internal/models"
	"github.com/SscSPs/exchange_desk/internal/utils/mapping"
)

// ProviderRepository verifies provider accounts through the upstream API.
type ProviderRepository struct {
	client *Client
}

// NewProviderRepository creates a new provider verifier.
func NewProviderRepository(client *Client) *ProviderRepository {
	return &ProviderRepository{client: client}
}

var _ portsrepo.ProviderVerifier = (*ProviderRepository)(nil)

// VerifyProvider calls POST /providerVerification/{providerId}. An empty answer means the email is unknown.
func (r *ProviderRepository) VerifyProvider(ctx context.Context, providerID, email string) (*domain.ProviderUser, error) {
	var out models.VerifyProviderResponse
	path := "/providerVerification/" + url.PathEscape(providerID)
	if err := r.client.do(ctx, "provider_verification", http.MethodPost, path, models.VerifyProviderRequest{Email: email}, &out); err != nil {
		return nil, fmt.Errorf("failed to verify provider: %w", err)
	}
	if out.User == nil || out.User.ProviderID == "" {
		return nil, fmt.Errorf("%w: unknown provider account", apperrors.ErrUnauthorized)
	}
	user := mapping.ToDomainProviderUser(*out.User)
	return &user, nil
}
