package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/exchange_desk/internal/apperrors"
	"github.com/SscSPs/exchange_desk/internal/core/domain"
	portsrepo "github.com/SscSPs/exchange_desk/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/exchange_desk/internal/core/ports/services"
	"github.com/SscSPs/exchange_desk/internal/dto"
	"github.com/SscSPs/exchange_desk/internal/utils"
)

const (
	otpDigits        = 4
	maxOTPAttempts   = 5
	challengeIDBytes = 16
)

// AuthConfig holds the session settings of AuthService.
type AuthConfig struct {
	JWTSecret     string
	JWTIssuer     string
	JWTExpiry     time.Duration
	OTPTTL        time.Duration
	ExposeOTPHint bool
}

// AuthService signs providers in.
type AuthService struct {
	BaseService
	providers portsrepo.ProviderVerifier
	cfg       AuthConfig
	now       func() time.Time
	newID     func() (string, error)
	newCode   func() (string, error)
}

// NewAuthService creates a new AuthService. The base service must carry a snapshot store.
func NewAuthService(providers portsrepo.ProviderVerifier, base BaseService, cfg AuthConfig) *AuthService {
	return &AuthService{
		BaseService: base,
		providers:   providers,
		cfg:         cfg,
		now:         time.Now,
		newID:       func() (string, error) { return utils.GenerateSecureRandomString(challengeIDBytes) },
		newCode:     func() (string, error) { return utils.GenerateNumericCode(otpDigits) },
	}
}

type otpChallenge struct {
	CodeHash  string              `json:"codeHash"`
	User      domain.ProviderUser `json:"user"`
	ExpiresAt time.Time           `json:"expiresAt"`
}

func challengeKey(id string) string {
	return portsrepo.ScopedKey(portsrepo.KeyOTPChallenge, id)
}

func attemptsKey(id string) string {
	return portsrepo.ScopedKey(portsrepo.KeyOTPAttempts, id)
}

func (s *AuthService) dropChallenge(ctx context.Context, id string) {
	s.invalidate(ctx, challengeKey(id))
	s.invalidate(ctx, attemptsKey(id))
}

// StartSignIn checks the email against the provider upstream and issues a one-time code.
func (s *AuthService) StartSignIn(ctx context.Context, req dto.VerifyProviderRequest) (*dto.ChallengeResponse, error) {
	providerID := strings.TrimSpace(req.ProviderID)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if providerID == "" || email == "" {
		return nil, fmt.Errorf("%w: provider id and email are required", apperrors.ErrValidation)
	}

	user, err := s.providers.VerifyProvider(ctx, providerID, email)
	if err != nil {
		s.LogInfo(ctx, "Provider verification failed", slog.String("provider_id", providerID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("provider verification failed: %w", err)
	}
	s.saveSnapshot(ctx, portsrepo.ScopedKey(portsrepo.KeyUserData, user.ProviderID), user, 0)

	code, err := s.newCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate one-time code: %w", err)
	}
	hash, err := utils.HashCode(code)
	if err != nil {
		return nil, fmt.Errorf("failed to hash one-time code: %w", err)
	}

	challengeID, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate challenge id: %w", err)
	}
	challenge := otpChallenge{
		CodeHash:  hash,
		User:      *user,
		ExpiresAt: s.now().UTC().Add(s.cfg.OTPTTL),
	}
	if err := s.storeState(ctx, challengeKey(challengeID), challenge, s.cfg.OTPTTL); err != nil {
		return nil, fmt.Errorf("failed to store sign-in challenge: %w", err)
	}
	s.LogInfo(ctx, "Sign-in challenge issued", slog.String("provider_id", user.ProviderID), slog.String("challenge_id", challengeID))

	res := &dto.ChallengeResponse{
		ChallengeID: challengeID,
		ExpiresAt:   challenge.ExpiresAt,
		User:        *user,
	}
	if s.cfg.ExposeOTPHint {
		res.Hint = code
	}
	return res, nil
}

// CompleteSignIn exchanges a valid code for a bearer token. A challenge is dropped once used,
// once expired, or after too many wrong codes.
// At most maxOTPAttempts codes are compared per challenge. The attempt is counted before the compare.
func (s *AuthService) CompleteSignIn(ctx context.Context, req dto.VerifyOTPRequest) (*dto.SessionResponse, error) {
	if req.ChallengeID == "" {
		return nil, fmt.Errorf("%w: sign-in challenge expired or unknown", apperrors.ErrUnauthorized)
	}
	var challenge otpChallenge
	found, err := s.fetchState(ctx, challengeKey(req.ChallengeID), &challenge)
	if err != nil {
		return nil, fmt.Errorf("failed to load sign-in challenge: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("%w: sign-in challenge expired or unknown", apperrors.ErrUnauthorized)
	}

	now := s.now().UTC()
	if !now.Before(challenge.ExpiresAt) {
		s.dropChallenge(ctx, req.ChallengeID)
		return nil, fmt.Errorf("%w: sign-in challenge expired or unknown", apperrors.ErrUnauthorized)
	}

	attempt, err := s.incrCounter(ctx, attemptsKey(req.ChallengeID), challenge.ExpiresAt.Sub(now))
	if err != nil {
		return nil, fmt.Errorf("failed to count sign-in attempt: %w", err)
	}
	if attempt > maxOTPAttempts {
		s.dropChallenge(ctx, req.ChallengeID)
		return nil, fmt.Errorf("%w: too many attempts", apperrors.ErrUnauthorized)
	}

	if !utils.CheckCodeHash(req.Code, challenge.CodeHash) {
		if attempt == maxOTPAttempts {
			s.dropChallenge(ctx, req.ChallengeID)
			s.LogInfo(ctx, "Sign-in challenge locked", slog.String("challenge_id", req.ChallengeID))
		}
		return nil, fmt.Errorf("%w: invalid code", apperrors.ErrUnauthorized)
	}
	s.dropChallenge(ctx, req.ChallengeID)

	token, err := utils.GenerateJWT(challenge.User.ProviderID, s.cfg.JWTSecret, s.cfg.JWTExpiry, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign session token")
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}
	s.LogInfo(ctx, "Provider signed in", slog.String("provider_id", challenge.User.ProviderID))
	return &dto.SessionResponse{
		Token:     token,
		ExpiresAt: now.Add(s.cfg.JWTExpiry),
		User:      challenge.User,
	}, nil
}

var _ portssvc.AuthSvc = (*AuthService)(nil)
