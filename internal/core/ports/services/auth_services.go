package services

import (
	"context"

	"github.com/SscSPs/exchange_desk/internal/dto"
)

// AuthSvc signs providers in with an email check followed by a one-time code.
type AuthSvc interface {
	// StartSignIn verifies the provider upstream and issues a one-time code challenge.
	StartSignIn(ctx context.Context, req dto.VerifyProviderRequest) (*dto.ChallengeResponse, error)

	// CompleteSignIn checks the code and issues a bearer token whose subject is the provider ID.
	CompleteSignIn(ctx context.Context, req dto.VerifyOTPRequest) (*dto.SessionResponse, error)
}
