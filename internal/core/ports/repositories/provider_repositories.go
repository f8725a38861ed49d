package repositories

import (
	"context"

	"github.com/SscSPs/exchange_desk/internal/core/domain"
)

// ProviderVerifier resolves a provider account from an email address.
type ProviderVerifier interface {
	VerifyProvider(ctx context.Context, providerID, email string) (*domain.ProviderUser, error)
}
