package repositories

import (
	"context"

	"github.com/SscSPs/exchange_desk/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// ListActiveCurrencies retrieves a provider's active currencies with their embedded buy/sell rates.
	ListActiveCurrencies(ctx context.Context, providerID string) ([]domain.Currency, error)

	// ListCurrencies retrieves the global currency catalog.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// SetRates submits a batch of daily rates for a provider.
	SetRates(ctx context.Context, providerID string, rates []domain.RateSubmission) error

	// ActivateCurrency toggles whether a provider offers a currency.
	ActivateCurrency(ctx context.Context, providerID string, currencyID int64, isActive bool) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
// This is a facade for clients that need access to all operations
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
