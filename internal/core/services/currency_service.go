package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/exchange_desk/internal/apperrors"
	"github.com/SscSPs/exchange_desk/internal/core/domain"
	portsrepo "github.com/SscSPs/exchange_desk/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/exchange_desk/internal/core/ports/services"
	"github.com/SscSPs/exchange_desk/internal/dto"
)

type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a currency service reading through the snapshot store.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade, base BaseService) portssvc.CurrencySvcFacade {
	return &currencyService{BaseService: base, currencyRepo: currencyRepo}
}

func requireProvider(providerID string) error {
	if strings.TrimSpace(providerID) == "" {
		return fmt.Errorf("%w: provider id is required", apperrors.ErrValidation)
	}
	return nil
}

func (s *currencyService) ListActiveCurrencies(ctx context.Context, providerID string, refresh bool) ([]domain.Currency, error) {
	if err := requireProvider(providerID); err != nil {
		return nil, err
	}
	key := portsrepo.ScopedKey(portsrepo.KeyCurrenciesData, providerID)
	currencies, err := readThrough(ctx, &s.BaseService, portsrepo.KeyCurrenciesData, key, refresh,
		func(ctx context.Context) ([]domain.Currency, error) {
			return s.currencyRepo.ListActiveCurrencies(ctx, providerID)
		})
	if err != nil {
		s.LogError(ctx, err, "Failed to list active currencies", slog.String("provider_id", providerID))
		return nil, fmt.Errorf("failed to list active currencies: %w", err)
	}
	return domain.FilterActive(currencies), nil
}

func (s *currencyService) ListTargets(ctx context.Context, providerID, fromCode string) ([]domain.Currency, error) {
	currencies, err := s.ListActiveCurrencies(ctx, providerID, false)
	if err != nil {
		return nil, err
	}
	from, err := domain.FindByCode(currencies, fromCode)
	if err != nil {
		return nil, err
	}
	return domain.TargetOptions(currencies, from), nil
}

func (s *currencyService) Quote(ctx context.Context, providerID string, req dto.QuoteRequest) (*domain.ExchangePair, error) {
	currencies, err := s.ListActiveCurrencies(ctx, providerID, false)
	if err != nil {
		return nil, err
	}
	from, err := domain.FindByCode(currencies, req.FromCurrencyCode)
	if err != nil {
		return nil, err
	}
	to, err := domain.FindByCode(currencies, req.ToCurrencyCode)
	if err != nil {
		return nil, err
	}
	pair, err := domain.NewExchangePair(from, to, req.FromAmount)
	if err != nil {
		return nil, err
	}
	return &pair, nil
}

func (s *currencyService) ListCatalog(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currency catalog")
		return nil, fmt.Errorf("failed to list currency catalog: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

func (s *currencyService) SetActivation(ctx context.Context, providerID string, currencyID int64, isActive bool) error {
	if err := requireProvider(providerID); err != nil {
		return err
	}
	if currencyID <= 0 {
		return fmt.Errorf("%w: currency id must be positive", apperrors.ErrValidation)
	}
	if err := s.currencyRepo.ActivateCurrency(ctx, providerID, currencyID, isActive); err != nil {
		s.LogError(ctx, err, "Failed to change currency activation",
			slog.String("provider_id", providerID), slog.Int64("currency_id", currencyID))
		return fmt.Errorf("failed to change currency activation: %w", err)
	}
	s.invalidate(ctx, portsrepo.ScopedKey(portsrepo.KeyCurrenciesData, providerID))
	s.LogInfo(ctx, "Currency activation changed",
		slog.String("provider_id", providerID), slog.Int64("currency_id", currencyID), slog.Bool("is_active", isActive))
	return nil
}
