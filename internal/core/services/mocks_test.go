package services_test

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/SscSPs/exchange_desk/internal/adapters/cache"
	"github.com/SscSPs/exchange_desk/internal/core/domain"
	portsrepo "github.com/SscSPs/exchange_desk/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) ListActiveCurrencies(ctx context.Context, providerID string) ([]domain.Currency, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) SetRates(ctx context.Context, providerID string, rates []domain.RateSubmission) error {
	args := m.Called(ctx, providerID, rates)
	return args.Error(0)
}

func (m *MockCurrencyRepository) ActivateCurrency(ctx context.Context, providerID string, currencyID int64, isActive bool) error {
	args := m.Called(ctx, providerID, currencyID, isActive)
	return args.Error(0)
}

var _ portsrepo.CurrencyRepositoryFacade = (*MockCurrencyRepository)(nil)

// --- Mock ExchangeRequestRepository ---
type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) ListRecentRequests(ctx context.Context, providerID string, offset int) ([]domain.ExchangeRequest, error) {
	args := m.Called(ctx, providerID, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRequest), args.Error(1)
}

func (m *MockRequestRepository) CreateRequest(ctx context.Context, providerID string, req domain.ExchangeRequest) (*domain.ExchangeRequest, error) {
	args := m.Called(ctx, providerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRequest), args.Error(1)
}

func (m *MockRequestRepository) UpdateRequestStatus(ctx context.Context, referenceNumber string, status domain.RequestStatus) error {
	args := m.Called(ctx, referenceNumber, status)
	return args.Error(0)
}

var _ portsrepo.ExchangeRequestRepositoryFacade = (*MockRequestRepository)(nil)

// --- Mock ProviderVerifier ---
type MockProviderVerifier struct {
	mock.Mock
}

func (m *MockProviderVerifier) VerifyProvider(ctx context.Context, providerID, email string) (*domain.ProviderUser, error) {
	args := m.Called(ctx, providerID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProviderUser), args.Error(1)
}

var _ portsrepo.ProviderVerifier = (*MockProviderVerifier)(nil)

func rate(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

// sampleCurrencies is an AED-based provider offering USD and EUR, with GBP switched off.
func sampleCurrencies() []domain.Currency {
	return []domain.Currency{
		{ID: 1, Code: "AED", Name: "UAE Dirham", DecimalPlaces: 2, IsActive: true, IsBaseCurrency: true},
		{ID: 2, Code: "USD", Name: "US Dollar", DecimalPlaces: 2, IsActive: true, BuyRate: rate("3.67"), SellRate: rate("3.65")},
		{ID: 3, Code: "EUR", Name: "Euro", DecimalPlaces: 2, IsActive: true, BuyRate: rate("4.00"), SellRate: rate("3.95")},
		{ID: 4, Code: "GBP", Name: "Pound Sterling", DecimalPlaces: 2, IsActive: false, BuyRate: rate("4.60"), SellRate: rate("4.55")},
	}
}

// --- Unreliable snapshot store ---

var errStoreDown = errors.New("store unavailable")

// brokenStore wraps a MemoryStore and fails reads or writes of keys with the given prefixes.
type brokenStore struct {
	*cache.MemoryStore
	failGet string
	failSet string
}

func (s *brokenStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if s.failGet != "" && strings.HasPrefix(key, s.failGet) {
		return nil, false, errStoreDown
	}
	return s.MemoryStore.Get(ctx, key)
}

func (s *brokenStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if s.failSet != "" && strings.HasPrefix(key, s.failSet) {
		return errStoreDown
	}
	return s.MemoryStore.Set(ctx, key, value, ttl)
}

var _ portsrepo.SnapshotStore = (*brokenStore)(nil)
