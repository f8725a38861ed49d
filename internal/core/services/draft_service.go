package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/exchange_desk/internal/apperrors"
	"github.com/SscSPs/exchange_desk/internal/core/domain"
	"github.com/SscSPs/exchange_desk/internal/core/forms"
	portsrepo "github.com/SscSPs/exchange_desk/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/exchange_desk/internal/core/ports/services"
	"github.com/SscSPs/exchange_desk/internal/dto"
	"github.com/google/uuid"
)

// DraftService keeps request drafts in the snapshot store. Concurrent writes to one draft are last-writer-wins.
type DraftService struct {
	BaseService
	currencies  portssvc.CurrencyReaderSvc
	requestRepo portsrepo.ExchangeRequestWriter
	draftTTL    time.Duration
	now         func() time.Time
	newID       func() string
}

// NewDraftService creates a new DraftService. The base service must carry a snapshot store.
func NewDraftService(currencies portssvc.CurrencyReaderSvc, requestRepo portsrepo.ExchangeRequestWriter, base BaseService, draftTTL time.Duration) *DraftService {
	return &DraftService{
		BaseService: base,
		currencies:  currencies,
		requestRepo: requestRepo,
		draftTTL:    draftTTL,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

func draftKey(draftID string) string {
	return portsrepo.ScopedKey(portsrepo.KeyDraft, draftID)
}

func (s *DraftService) load(ctx context.Context, draftID string) (*forms.Draft, error) {
	if strings.TrimSpace(draftID) == "" {
		return nil, fmt.Errorf("%w: draft id is required", apperrors.ErrValidation)
	}
	var d forms.Draft
	found, err := s.fetchState(ctx, draftKey(draftID), &d)
	if err != nil {
		return nil, fmt.Errorf("failed to load draft %s: %w", draftID, err)
	}
	if !found {
		return nil, fmt.Errorf("%w: draft %s", apperrors.ErrNotFound, draftID)
	}
	return &d, nil
}

func (s *DraftService) save(ctx context.Context, d *forms.Draft) (*forms.Draft, error) {
	d.UpdatedAt = s.now().UTC()
	if err := s.storeState(ctx, draftKey(d.ID), d, s.draftTTL); err != nil {
		return nil, fmt.Errorf("failed to save draft %s: %w", d.ID, err)
	}
	return d, nil
}

// CreateDraft starts a draft on the contact step with a priced pair.
func (s *DraftService) CreateDraft(ctx context.Context, providerID string, req dto.CreateDraftRequest) (*forms.Draft, error) {
	currencies, err := s.currencies.ListActiveCurrencies(ctx, providerID, false)
	if err != nil {
		return nil, err
	}

	from, err := s.pickFrom(currencies, req.FromCurrencyCode)
	if err != nil {
		return nil, err
	}
	to, err := pickTo(currencies, from, req.ToCurrencyCode)
	if err != nil {
		return nil, err
	}
	pair, err := domain.NewExchangePair(from, to, req.FromAmount)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	d := &forms.Draft{
		Wizard:     forms.NewWizard(),
		ID:         s.newID(),
		ProviderID: providerID,
		Pair:       pair,
		CreatedAt:  now,
	}
	if _, err := s.save(ctx, d); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Draft created", slog.String("draft_id", d.ID), slog.String("provider_id", providerID))
	return d, nil
}

func (s *DraftService) pickFrom(currencies []domain.Currency, code string) (domain.Currency, error) {
	if code != "" {
		return domain.FindByCode(currencies, code)
	}
	return domain.FindBase(currencies)
}

// pickTo returns the requested counterpart, or the first one allowed opposite from.
func pickTo(currencies []domain.Currency, from domain.Currency, code string) (domain.Currency, error) {
	if code != "" {
		return domain.FindByCode(currencies, code)
	}
	options := domain.TargetOptions(currencies, from)
	if len(options) == 0 {
		return domain.Currency{}, fmt.Errorf("%w: no currency can be exchanged against %s", apperrors.ErrUnsupportedPair, from.Code)
	}
	return options[0], nil
}

func (s *DraftService) GetDraft(ctx context.Context, draftID string) (*forms.Draft, error) {
	return s.load(ctx, draftID)
}

// UpdateContact sets the named fields. Unknown field names reject the whole update.
func (s *DraftService) UpdateContact(ctx context.Context, draftID string, fields map[string]string) (*forms.Draft, apperrors.FieldErrors, error) {
	d, err := s.load(ctx, draftID)
	if err != nil {
		return nil, nil, err
	}
	for name, value := range fields {
		if err := d.Form.Set(name, value); err != nil {
			return nil, nil, err
		}
	}

	feedback := apperrors.FieldErrors{}
	for name := range fields {
		if msg := forms.ValidateField(d.Form, name); msg != "" {
			feedback[name] = msg
		}
	}
	if _, err := s.save(ctx, d); err != nil {
		return nil, nil, err
	}
	return d, feedback, nil
}

// UpdateExchange changes currencies and amount. A new source currency on the other side of the base
// also replaces an incompatible target unless one was given.
func (s *DraftService) UpdateExchange(ctx context.Context, draftID string, req dto.UpdateExchangeRequest) (*forms.Draft, error) {
	d, err := s.load(ctx, draftID)
	if err != nil {
		return nil, err
	}

	pair := d.Pair
	if req.FromAmount != nil {
		pair.SetFromAmount(*req.FromAmount)
	}

	if req.FromCurrencyCode != nil || req.ToCurrencyCode != nil {
		currencies, err := s.currencies.ListActiveCurrencies(ctx, d.ProviderID, false)
		if err != nil {
			return nil, err
		}
		from := pair.From
		if req.FromCurrencyCode != nil {
			if from, err = domain.FindByCode(currencies, *req.FromCurrencyCode); err != nil {
				return nil, err
			}
		}
		to := pair.To
		if req.ToCurrencyCode != nil {
			if to, err = domain.FindByCode(currencies, *req.ToCurrencyCode); err != nil {
				return nil, err
			}
		} else if domain.ValidatePair(from, to) != nil {
			if to, err = pickTo(currencies, from, ""); err != nil {
				return nil, err
			}
		}
		if pair, err = domain.NewExchangePair(from, to, pair.FromAmount); err != nil {
			return nil, err
		}
	}

	d.Pair = pair
	return s.save(ctx, d)
}

func (s *DraftService) Swap(ctx context.Context, draftID string) (*forms.Draft, error) {
	d, err := s.load(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if err := d.Pair.Swap(); err != nil {
		return nil, err
	}
	return s.save(ctx, d)
}

// Next advances the wizard. Blocking field errors are returned as apperrors.FieldErrors.
func (s *DraftService) Next(ctx context.Context, draftID string) (*forms.Draft, error) {
	d, err := s.load(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if errs := d.Next(d.Form); len(errs) > 0 {
		return d, errs
	}
	return s.save(ctx, d)
}

func (s *DraftService) Previous(ctx context.Context, draftID string) (*forms.Draft, error) {
	d, err := s.load(ctx, draftID)
	if err != nil {
		return nil, err
	}
	d.Previous()
	return s.save(ctx, d)
}

// Submit sends the draft upstream. On any failure the draft is kept as it was.
func (s *DraftService) Submit(ctx context.Context, draftID string) (*domain.ExchangeRequest, error) {
	d, err := s.load(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if !d.CanSubmit() {
		return nil, fmt.Errorf("%w: requests can only be submitted from the %s step", apperrors.ErrValidation, forms.StepPayment)
	}
	if errs := d.ValidateForSubmit(); len(errs) > 0 {
		s.LogDebug(ctx, "Draft submission blocked", slog.String("draft_id", d.ID), slog.Any("fields", errs.Fields()))
		return nil, errs
	}

	created, err := s.requestRepo.CreateRequest(ctx, d.ProviderID, d.ToExchangeRequest())
	if err != nil {
		s.LogError(ctx, err, "Failed to submit exchange request", slog.String("draft_id", d.ID))
		return nil, fmt.Errorf("failed to submit exchange request: %w", err)
	}

	s.invalidate(ctx, draftKey(d.ID))
	s.invalidate(ctx, portsrepo.ScopedKey(portsrepo.KeyExchangeRequests, d.ProviderID))
	s.LogInfo(ctx, "Exchange request submitted",
		slog.String("draft_id", d.ID), slog.String("reference_number", created.ReferenceNumber))
	return created, nil
}

var _ portssvc.DraftSvc = (*DraftService)(nil)
