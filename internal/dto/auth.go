package dto

import (
	"time"

	"github.com/SscSPs/exchange_desk/internal/core/domain"
)

// VerifyProviderRequest starts a provider sign-in.
type VerifyProviderRequest struct {
	ProviderID string `json:"providerId" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
}

// ChallengeResponse identifies the one-time code sent for a sign-in.
// Hint carries the code itself outside production only.
type ChallengeResponse struct {
	ChallengeID string              `json:"challengeId"`
	ExpiresAt   time.Time           `json:"expiresAt"`
	Hint        string              `json:"hint,omitempty"`
	User        domain.ProviderUser `json:"user"`
}

// VerifyOTPRequest completes a provider sign-in.
type VerifyOTPRequest struct {
	ChallengeID string `json:"challengeId" binding:"required"`
	Code        string `json:"code" binding:"required,len=4,numeric"`
}

// SessionResponse carries the bearer token for admin routes.
type SessionResponse struct {
	Token     string              `json:"token"`
	ExpiresAt time.Time           `json:"expiresAt"`
	User      domain.ProviderUser `json:"user"`
}
