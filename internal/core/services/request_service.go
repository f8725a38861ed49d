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
	"github.com/SscSPs/exchange_desk/internal/utils/pagination"
)

// RequestService lists a provider's requests for display and forwards status changes.
type RequestService struct {
	BaseService
	requestRepo portsrepo.ExchangeRequestRepositoryFacade
	currencies  portssvc.CurrencyReaderSvc
	settings    portssvc.SettingsSvc
}

// NewRequestService creates a new RequestService.
func NewRequestService(requestRepo portsrepo.ExchangeRequestRepositoryFacade, currencies portssvc.CurrencyReaderSvc, settings portssvc.SettingsSvc, base BaseService) *RequestService {
	return &RequestService{
		BaseService: base,
		requestRepo: requestRepo,
		currencies:  currencies,
		settings:    settings,
	}
}

// ListRequests returns one page of requests filtered by tab. Only the first page is served from the snapshot.
// Tabs filter within the page, and the next page token follows the unfiltered page.
func (s *RequestService) ListRequests(ctx context.Context, providerID string, params dto.ListRequestsParams) (*dto.ListRequestsResponse, error) {
	if err := requireProvider(providerID); err != nil {
		return nil, err
	}
	tab, err := domain.ParseTab(params.Tab)
	if err != nil {
		return nil, err
	}
	offset, err := pagination.DecodeOffsetToken(params.PageToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	lang, err := s.language(ctx, providerID, params.Lang)
	if err != nil {
		return nil, err
	}

	page, err := s.fetchPage(ctx, providerID, offset, params.Refresh)
	if err != nil {
		s.LogError(ctx, err, "Failed to list exchange requests", slog.String("provider_id", providerID), slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list exchange requests: %w", err)
	}

	var baseCode string
	if tab == domain.TabBiggestSell || tab == domain.TabBiggestBuy {
		currencies, err := s.currencies.ListActiveCurrencies(ctx, providerID, false)
		if err != nil {
			return nil, err
		}
		base, err := domain.FindBase(currencies)
		if err != nil {
			return nil, err
		}
		baseCode = base.Code
	}

	filtered, err := domain.FilterByTab(page, tab, baseCode)
	if err != nil {
		return nil, err
	}

	views := make([]dto.RequestView, len(filtered))
	for i, r := range filtered {
		views[i] = dto.ToRequestView(r, lang)
	}
	return &dto.ListRequestsResponse{
		Tab:           string(tab),
		Requests:      views,
		NextPageToken: pagination.NextOffsetToken(offset, len(page)),
	}, nil
}

func (s *RequestService) fetchPage(ctx context.Context, providerID string, offset int, refresh bool) ([]domain.ExchangeRequest, error) {
	fetch := func(ctx context.Context) ([]domain.ExchangeRequest, error) {
		return s.requestRepo.ListRecentRequests(ctx, providerID, offset)
	}
	if offset > 0 {
		return fetch(ctx)
	}
	key := portsrepo.ScopedKey(portsrepo.KeyExchangeRequests, providerID)
	return readThrough(ctx, &s.BaseService, portsrepo.KeyExchangeRequests, key, refresh, fetch)
}

func (s *RequestService) language(ctx context.Context, providerID, requested string) (domain.Language, error) {
	if requested != "" {
		return domain.ParseLanguage(requested)
	}
	stored, err := s.settings.GetLanguage(ctx, providerID)
	if err != nil {
		s.LogError(ctx, err, "Falling back to default language", slog.String("provider_id", providerID))
		return domain.DefaultLanguage, nil
	}
	return domain.Language(stored), nil
}

// UpdateStatus forwards a status change and drops the cached first page so the next list reflects it.
func (s *RequestService) UpdateStatus(ctx context.Context, providerID, referenceNumber, status string) error {
	if err := requireProvider(providerID); err != nil {
		return err
	}
	if strings.TrimSpace(referenceNumber) == "" {
		return fmt.Errorf("%w: reference number is required", apperrors.ErrValidation)
	}
	normalized := domain.NormalizeStatus(status)
	if !normalized.IsKnown() {
		return fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, status)
	}

	if err := s.requestRepo.UpdateRequestStatus(ctx, referenceNumber, normalized); err != nil {
		s.LogError(ctx, err, "Failed to update request status",
			slog.String("reference_number", referenceNumber), slog.String("status", string(normalized)))
		return fmt.Errorf("failed to update request status: %w", err)
	}
	s.invalidate(ctx, portsrepo.ScopedKey(portsrepo.KeyExchangeRequests, providerID))
	s.LogInfo(ctx, "Request status updated",
		slog.String("reference_number", referenceNumber), slog.String("status", string(normalized)))
	return nil
}

var _ portssvc.RequestSvc = (*RequestService)(nil)
