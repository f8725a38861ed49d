package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/exchange_desk/internal/adapters/cache"
	"github.com/SscSPs/exchange_desk/internal/apperrors"
	portsrepo "github.com/SscSPs/exchange_desk/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/exchange_desk/internal/core/ports/services"
	"github.com/SscSPs/exchange_desk/internal/core/services"
	"github.com/SscSPs/exchange_desk/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	store    *cache.MemoryStore
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.store = cache.NewMemoryStore()
	suite.service = services.NewCurrencyService(suite.mockRepo, services.BaseService{Snapshots: suite.store})
}

func (suite *CurrencyServiceTestSuite) TearDownTest() {
	suite.store.Close()
}

func (suite *CurrencyServiceTestSuite) TestListActiveCurrencies_ReadsThroughSnapshot() {
	ctx := context.Background()
	suite.mockRepo.On("ListActiveCurrencies", ctx, "1").Return(sampleCurrencies(), nil).Once()

	first, err := suite.service.ListActiveCurrencies(ctx, "1", false)
	suite.Require().NoError(err)
	suite.Len(first, 3, "inactive currencies are filtered out")

	second, err := suite.service.ListActiveCurrencies(ctx, "1", false)
	suite.Require().NoError(err)
	suite.Equal(first, second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListActiveCurrencies_RefreshBypassesSnapshot() {
	ctx := context.Background()
	suite.mockRepo.On("ListActiveCurrencies", ctx, "1").Return(sampleCurrencies(), nil).Twice()

	_, err := suite.service.ListActiveCurrencies(ctx, "1", false)
	suite.Require().NoError(err)
	_, err = suite.service.ListActiveCurrencies(ctx, "1", true)
	suite.Require().NoError(err)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListActiveCurrencies_NetworkError() {
	ctx := context.Background()
	suite.mockRepo.On("ListActiveCurrencies", ctx, "1").Return(nil, apperrors.ErrNetwork).Once()

	currencies, err := suite.service.ListActiveCurrencies(ctx, "1", false)

	suite.Require().Error(err)
	suite.Nil(currencies)
	suite.ErrorIs(err, apperrors.ErrNetwork)

	_, cached, _ := suite.store.Get(ctx, portsrepo.ScopedKey(portsrepo.KeyCurrenciesData, "1"))
	suite.False(cached, "failed fetches are not cached")
}

func (suite *CurrencyServiceTestSuite) TestListActiveCurrencies_RequiresProvider() {
	_, err := suite.service.ListActiveCurrencies(context.Background(), " ", false)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListActiveCurrencies")
}

func (suite *CurrencyServiceTestSuite) TestListTargets() {
	ctx := context.Background()
	suite.mockRepo.On("ListActiveCurrencies", ctx, "1").Return(sampleCurrencies(), nil).Once()

	fromBase, err := suite.service.ListTargets(ctx, "1", "aed")
	suite.Require().NoError(err)
	codes := make([]string, len(fromBase))
	for i, c := range fromBase {
		codes[i] = c.Code
	}
	suite.Equal([]string{"USD", "EUR"}, codes)

	fromUSD, err := suite.service.ListTargets(ctx, "1", "USD")
	suite.Require().NoError(err)
	suite.Require().Len(fromUSD, 1)
	suite.Equal("AED", fromUSD[0].Code)

	_, err = suite.service.ListTargets(ctx, "1", "JPY")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyServiceTestSuite) TestQuote() {
	ctx := context.Background()
	suite.mockRepo.On("ListActiveCurrencies", ctx, "1").Return(sampleCurrencies(), nil).Once()

	tests := []struct {
		name     string
		req      dto.QuoteRequest
		toAmount string
		wantErr  error
	}{
		{"sell to base", dto.QuoteRequest{FromCurrencyCode: "USD", ToCurrencyCode: "AED", FromAmount: "100"}, "365.00", nil},
		{"buy from base", dto.QuoteRequest{FromCurrencyCode: "AED", ToCurrencyCode: "USD", FromAmount: "367"}, "100.00", nil},
		{"unparsable amount", dto.QuoteRequest{FromCurrencyCode: "USD", ToCurrencyCode: "AED", FromAmount: "abc"}, "0.00", nil},
		{"cross pair", dto.QuoteRequest{FromCurrencyCode: "USD", ToCurrencyCode: "EUR", FromAmount: "1"}, "", apperrors.ErrUnsupportedPair},
		{"inactive currency", dto.QuoteRequest{FromCurrencyCode: "GBP", ToCurrencyCode: "AED", FromAmount: "1"}, "", apperrors.ErrNotFound},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			pair, err := suite.service.Quote(ctx, "1", tt.req)
			if tt.wantErr != nil {
				suite.ErrorIs(err, tt.wantErr)
				suite.Nil(pair)
				return
			}
			suite.Require().NoError(err)
			suite.Equal(tt.toAmount, pair.ToAmount)
		})
	}
}

func (suite *CurrencyServiceTestSuite) TestSetActivation_InvalidatesSnapshot() {
	ctx := context.Background()
	suite.mockRepo.On("ListActiveCurrencies", ctx, "1").Return(sampleCurrencies(), nil).Twice()
	suite.mockRepo.On("ActivateCurrency", ctx, "1", int64(4), true).Return(nil).Once()

	_, err := suite.service.ListActiveCurrencies(ctx, "1", false)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.service.SetActivation(ctx, "1", 4, true))

	_, err = suite.service.ListActiveCurrencies(ctx, "1", false)
	suite.Require().NoError(err)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestSetActivation_InvalidID() {
	err := suite.service.SetActivation(context.Background(), "1", 0, true)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CurrencyServiceTestSuite) TestListCatalog_Error() {
	ctx := context.Background()
	suite.mockRepo.On("ListCurrencies", ctx).Return(nil, assert.AnError).Once()

	currencies, err := suite.service.ListCatalog(ctx)

	suite.Require().Error(err)
	suite.Nil(currencies)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *CurrencyServiceTestSuite) TestListActiveCurrencies_CacheFailureIsIgnored() {
	ctx := context.Background()
	store := &brokenStore{MemoryStore: suite.store, failGet: "currenciesData:", failSet: "currenciesData:"}
	service := services.NewCurrencyService(suite.mockRepo, services.BaseService{Snapshots: store})
	suite.mockRepo.On("ListActiveCurrencies", ctx, "1").Return(sampleCurrencies(), nil).Once()

	currencies, err := service.ListActiveCurrencies(ctx, "1", false)

	suite.Require().NoError(err)
	suite.Len(currencies, 3)
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
