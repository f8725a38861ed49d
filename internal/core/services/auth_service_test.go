package services_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/exchange_desk/internal/adapters/cache"
	"github.com/SscSPs/exchange_desk/internal/apperrors"
	"github.com/SscSPs/exchange_desk/internal/core/domain"
	portsrepo "github.com/SscSPs/exchange_desk/internal/core/ports/repositories"
	"github.com/SscSPs/exchange_desk/internal/core/services"
	"github.com/SscSPs/exchange_desk/internal/dto"
	"github.com/SscSPs/exchange_desk/internal/utils"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret"

type AuthServiceTestSuite struct {
	suite.Suite
	providers *MockProviderVerifier
	store     *cache.MemoryStore
	ctx       context.Context
	user      *domain.ProviderUser
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.providers = new(MockProviderVerifier)
	suite.store = cache.NewMemoryStore()
	suite.user = &domain.ProviderUser{ID: 12, ProviderID: "1", Name: "Desk Admin", Email: "admin@desk.ae", Role: "admin"}
}

func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.store.Close()
}

func (suite *AuthServiceTestSuite) newService(exposeHint bool) *services.AuthService {
	return services.NewAuthService(suite.providers, services.BaseService{Snapshots: suite.store}, services.AuthConfig{
		JWTSecret:     testJWTSecret,
		JWTIssuer:     "exchange-desk",
		JWTExpiry:     time.Hour,
		OTPTTL:        5 * time.Minute,
		ExposeOTPHint: exposeHint,
	})
}

func (suite *AuthServiceTestSuite) TestSignIn_Success() {
	service := suite.newService(true)
	suite.providers.On("VerifyProvider", suite.ctx, "1", "admin@desk.ae").Return(suite.user, nil).Once()

	challenge, err := service.StartSignIn(suite.ctx, dto.VerifyProviderRequest{ProviderID: "1", Email: "  Admin@Desk.ae "})
	suite.Require().NoError(err)
	suite.NotEmpty(challenge.ChallengeID)
	suite.Regexp(`^[0-9]{4}$`, challenge.Hint)

	_, cachedUser, _ := suite.store.Get(suite.ctx, portsrepo.ScopedKey(portsrepo.KeyUserData, "1"))
	suite.True(cachedUser)

	session, err := service.CompleteSignIn(suite.ctx, dto.VerifyOTPRequest{ChallengeID: challenge.ChallengeID, Code: challenge.Hint})
	suite.Require().NoError(err)
	suite.Equal("Desk Admin", session.User.Name)

	claims, err := utils.ParseAndValidateJWT(session.Token, testJWTSecret)
	suite.Require().NoError(err)
	suite.Equal("1", claims.Subject)

	_, err = service.CompleteSignIn(suite.ctx, dto.VerifyOTPRequest{ChallengeID: challenge.ChallengeID, Code: challenge.Hint})
	suite.ErrorIs(err, apperrors.ErrUnauthorized, "a challenge can be used once")
	suite.providers.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestStartSignIn_HintHidden() {
	service := suite.newService(false)
	suite.providers.On("VerifyProvider", suite.ctx, "1", "admin@desk.ae").Return(suite.user, nil).Once()

	challenge, err := service.StartSignIn(suite.ctx, dto.VerifyProviderRequest{ProviderID: "1", Email: "admin@desk.ae"})

	suite.Require().NoError(err)
	suite.Empty(challenge.Hint)
}

func (suite *AuthServiceTestSuite) TestStartSignIn_UnknownProvider() {
	service := suite.newService(true)
	suite.providers.On("VerifyProvider", suite.ctx, "1", "nobody@desk.ae").Return(nil, apperrors.ErrUnauthorized).Once()

	challenge, err := service.StartSignIn(suite.ctx, dto.VerifyProviderRequest{ProviderID: "1", Email: "nobody@desk.ae"})

	suite.Nil(challenge)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestCompleteSignIn_LocksAfterRepeatedWrongCodes() {
	service := suite.newService(true)
	suite.providers.On("VerifyProvider", suite.ctx, "1", "admin@desk.ae").Return(suite.user, nil).Once()

	challenge, err := service.StartSignIn(suite.ctx, dto.VerifyProviderRequest{ProviderID: "1", Email: "admin@desk.ae"})
	suite.Require().NoError(err)

	wrong := "0000"
	if challenge.Hint == wrong {
		wrong = "1111"
	}
	for i := 0; i < 5; i++ {
		_, err := service.CompleteSignIn(suite.ctx, dto.VerifyOTPRequest{ChallengeID: challenge.ChallengeID, Code: wrong})
		suite.ErrorIs(err, apperrors.ErrUnauthorized)
	}

	_, err = service.CompleteSignIn(suite.ctx, dto.VerifyOTPRequest{ChallengeID: challenge.ChallengeID, Code: challenge.Hint})
	suite.ErrorIs(err, apperrors.ErrUnauthorized, "the right code no longer works once locked")
}

func (suite *AuthServiceTestSuite) TestCompleteSignIn_UnknownChallenge() {
	service := suite.newService(true)
	_, err := service.CompleteSignIn(suite.ctx, dto.VerifyOTPRequest{ChallengeID: "nope", Code: "1234"})
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestCompleteSignIn_ConcurrentWrongCodesStillLock() {
	service := suite.newService(true)
	suite.providers.On("VerifyProvider", suite.ctx, "1", "admin@desk.ae").Return(suite.user, nil).Once()

	challenge, err := service.StartSignIn(suite.ctx, dto.VerifyProviderRequest{ProviderID: "1", Email: "admin@desk.ae"})
	suite.Require().NoError(err)

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		code := fmt.Sprintf("%04d", i)
		if code == challenge.Hint {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.CompleteSignIn(suite.ctx, dto.VerifyOTPRequest{ChallengeID: challenge.ChallengeID, Code: code})
			suite.ErrorIs(err, apperrors.ErrUnauthorized)
		}()
	}
	wg.Wait()

	_, err = service.CompleteSignIn(suite.ctx, dto.VerifyOTPRequest{ChallengeID: challenge.ChallengeID, Code: challenge.Hint})
	suite.ErrorIs(err, apperrors.ErrUnauthorized, "the challenge is locked after the burst")

	_, found, _ := suite.store.Get(suite.ctx, portsrepo.ScopedKey(portsrepo.KeyOTPChallenge, challenge.ChallengeID))
	suite.False(found)
}

func (suite *AuthServiceTestSuite) TestCompleteSignIn_RightCodeWithinAttempts() {
	service := suite.newService(true)
	suite.providers.On("VerifyProvider", suite.ctx, "1", "admin@desk.ae").Return(suite.user, nil).Once()

	challenge, err := service.StartSignIn(suite.ctx, dto.VerifyProviderRequest{ProviderID: "1", Email: "admin@desk.ae"})
	suite.Require().NoError(err)

	wrong := "0000"
	if challenge.Hint == wrong {
		wrong = "1111"
	}
	for i := 0; i < 4; i++ {
		_, err := service.CompleteSignIn(suite.ctx, dto.VerifyOTPRequest{ChallengeID: challenge.ChallengeID, Code: wrong})
		suite.ErrorIs(err, apperrors.ErrUnauthorized)
	}

	session, err := service.CompleteSignIn(suite.ctx, dto.VerifyOTPRequest{ChallengeID: challenge.ChallengeID, Code: challenge.Hint})
	suite.Require().NoError(err)
	suite.NotEmpty(session.Token)
}

func (suite *AuthServiceTestSuite) TestStartSignIn_ChallengeStoreFailure() {
	store := &brokenStore{MemoryStore: suite.store, failSet: "otp:"}
	service := services.NewAuthService(suite.providers, services.BaseService{Snapshots: store}, services.AuthConfig{
		JWTSecret: testJWTSecret,
		JWTExpiry: time.Hour,
		OTPTTL:    5 * time.Minute,
	})
	suite.providers.On("VerifyProvider", suite.ctx, "1", "admin@desk.ae").Return(suite.user, nil).Once()

	challenge, err := service.StartSignIn(suite.ctx, dto.VerifyProviderRequest{ProviderID: "1", Email: "admin@desk.ae"})

	suite.Nil(challenge)
	suite.ErrorIs(err, errStoreDown)
}

func (suite *AuthServiceTestSuite) TestCompleteSignIn_ChallengeReadFailure() {
	store := &brokenStore{MemoryStore: suite.store, failGet: "otp:"}
	service := services.NewAuthService(suite.providers, services.BaseService{Snapshots: store}, services.AuthConfig{
		JWTSecret: testJWTSecret,
		JWTExpiry: time.Hour,
		OTPTTL:    5 * time.Minute,
	})

	_, err := service.CompleteSignIn(suite.ctx, dto.VerifyOTPRequest{ChallengeID: "abc", Code: "1234"})

	suite.ErrorIs(err, errStoreDown)
	suite.NotErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestStartSignIn_ChallengeIDIsRandomHex() {
	service := suite.newService(false)
	suite.providers.On("VerifyProvider", suite.ctx, "1", "admin@desk.ae").Return(suite.user, nil).Twice()

	first, err := service.StartSignIn(suite.ctx, dto.VerifyProviderRequest{ProviderID: "1", Email: "admin@desk.ae"})
	suite.Require().NoError(err)
	second, err := service.StartSignIn(suite.ctx, dto.VerifyProviderRequest{ProviderID: "1", Email: "admin@desk.ae"})
	suite.Require().NoError(err)

	suite.Regexp(`^[0-9a-f]{32}$`, first.ChallengeID)
	suite.NotEqual(first.ChallengeID, second.ChallengeID)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
