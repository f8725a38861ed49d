package exchangeapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/SscSPs/exchange_desk/internal/core/domain"
	portsrepo "github.com/SscSPs/exchange_desk/internal/core/ports/repositories"
	"github.com/SscSPs/exchange_desk/internal/models"
	"github.com/SscSPs/exchange_desk/internal/utils/mapping"
)

// CurrencyRepository reads and configures a provider's currencies through the upstream API.
type CurrencyRepository struct {
	client *Client
}

// NewCurrencyRepository creates a new repository for currency data.
func NewCurrencyRepository(client *Client) *CurrencyRepository {
	return &CurrencyRepository{client: client}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*CurrencyRepository)(nil)

// ListActiveCurrencies calls GET /activeCurrencies/{providerId}.
func (r *CurrencyRepository) ListActiveCurrencies(ctx context.Context, providerID string) ([]domain.Currency, error) {
	var out []models.Currency
	path := "/activeCurrencies/" + url.PathEscape(providerID)
	if err := r.client.do(ctx, "active_currencies", http.MethodGet, path, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list active currencies for provider %s: %w", providerID, err)
	}
	return mapping.ToDomainCurrencySlice(out), nil
}

// ListCurrencies calls GET /listCurrencies.
func (r *CurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	var out []models.Currency
	if err := r.client.do(ctx, "list_currencies", http.MethodGet, "/listCurrencies", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list currency catalog: %w", err)
	}
	return mapping.ToDomainCurrencySlice(out), nil
}

// SetRates calls POST /setRates/{providerId}.
func (r *CurrencyRepository) SetRates(ctx context.Context, providerID string, rates []domain.RateSubmission) error {
	path := "/setRates/" + url.PathEscape(providerID)
	if err := r.client.do(ctx, "set_rates", http.MethodPost, path, mapping.ToModelExchangeRates(rates), nil); err != nil {
		return fmt.Errorf("failed to set rates for provider %s: %w", providerID, err)
	}
	return nil
}

// ActivateCurrency calls POST /activateCurrency/{providerId}.
func (r *CurrencyRepository) ActivateCurrency(ctx context.Context, providerID string, currencyID int64, isActive bool) error {
	path := "/activateCurrency/" + url.PathEscape(providerID)
	body := models.ActivateCurrency{CurrencyID: currencyID, IsActive: isActive}
	if err := r.client.do(ctx, "activate_currency", http.MethodPost, path, body, nil); err != nil {
		return fmt.Errorf("failed to toggle currency %d for provider %s: %w", currencyID, providerID, err)
	}
	return nil
}
