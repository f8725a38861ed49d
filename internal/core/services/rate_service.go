package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/exchange_desk/internal/apperrors"
	"github.com/SscSPs/exchange_desk/internal/core/domain"
	portsrepo "github.com/SscSPs/exchange_desk/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/exchange_desk/internal/core/ports/services"
	"github.com/SscSPs/exchange_desk/internal/dto"
)

// RateService provides business logic for the provider's rate board.
type RateService struct {
	BaseService
	currencies   portssvc.CurrencyReaderSvc
	currencyRepo portsrepo.CurrencyWriter
	now          func() time.Time
}

// NewRateService creates a new RateService.
func NewRateService(currencies portssvc.CurrencyReaderSvc, currencyRepo portsrepo.CurrencyWriter, base BaseService) *RateService {
	return &RateService{
		BaseService:  base,
		currencies:   currencies,
		currencyRepo: currencyRepo,
		now:          time.Now,
	}
}

// GetRateBoard stages one rate per non-base active currency.
func (s *RateService) GetRateBoard(ctx context.Context, providerID string, refresh bool) ([]domain.Rate, error) {
	currencies, err := s.currencies.ListActiveCurrencies(ctx, providerID, refresh)
	if err != nil {
		return nil, err
	}
	return domain.NewRateBoard(currencies)
}

// SubmitRates applies the edited rows to a fresh board and sends every row with a sell rate upstream.
func (s *RateService) SubmitRates(ctx context.Context, providerID string, req dto.SubmitRatesRequest) (*dto.SubmitRatesResponse, error) {
	board, err := s.GetRateBoard(ctx, providerID, false)
	if err != nil {
		return nil, err
	}
	for _, in := range req.Rates {
		if err := domain.ApplyRate(board, in.TargetCurrencyCode, in.BuyRate, in.SellRate); err != nil {
			return nil, err
		}
	}

	day := s.now()
	batch := domain.RatesToSubmit(board, day)
	if len(batch) == 0 {
		return nil, fmt.Errorf("%w: at least one sell rate must be greater than zero", apperrors.ErrValidation)
	}

	if err := s.currencyRepo.SetRates(ctx, providerID, batch); err != nil {
		s.LogError(ctx, err, "Failed to submit rates", slog.String("provider_id", providerID), slog.Int("count", len(batch)))
		return nil, fmt.Errorf("failed to submit rates: %w", err)
	}
	s.invalidate(ctx, portsrepo.ScopedKey(portsrepo.KeyCurrenciesData, providerID))

	s.LogInfo(ctx, "Rates submitted", slog.String("provider_id", providerID), slog.Int("count", len(batch)))
	return &dto.SubmitRatesResponse{Submitted: len(batch), RateDate: day.Format(domain.RateDateLayout)}, nil
}

var _ portssvc.RateSvc = (*RateService)(nil)
