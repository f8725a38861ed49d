package services

import (
	"context"

	"github.com/SscSPs/exchange_desk/internal/core/domain"
	"github.com/SscSPs/exchange_desk/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// ListActiveCurrencies returns the provider's active currencies, from the snapshot unless refresh is set.
	ListActiveCurrencies(ctx context.Context, providerID string, refresh bool) ([]domain.Currency, error)

	// ListTargets returns the currencies selectable opposite fromCode.
	ListTargets(ctx context.Context, providerID, fromCode string) ([]domain.Currency, error)

	// Quote prices an amount between two of the provider's currencies.
	Quote(ctx context.Context, providerID string, req dto.QuoteRequest) (*domain.ExchangePair, error)

	// ListCatalog returns every currency known upstream.
	ListCatalog(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// SetActivation activates or deactivates a catalog currency for the provider.
	SetActivation(ctx context.Context, providerID string, currencyID int64, isActive bool) error
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}

// RateSvc stages and submits the provider's buy and sell rates.
type RateSvc interface {
	GetRateBoard(ctx context.Context, providerID string, refresh bool) ([]domain.Rate, error)
	SubmitRates(ctx context.Context, providerID string, req dto.SubmitRatesRequest) (*dto.SubmitRatesResponse, error)
}
