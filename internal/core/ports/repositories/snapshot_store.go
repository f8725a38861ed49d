package repositories

import (
	"context"
	"time"
)

// Logical snapshot keys. Provider-scoped keys are suffixed with ":<providerID>".
const (
	KeyCurrenciesData   = "currenciesData"
	KeyExchangeRequests = "exchangeRequests"
	KeyUserData         = "userData"
	KeyLanguage         = "lang"
	KeyDraft            = "draft"
	KeyOTPChallenge     = "otp"
	KeyOTPAttempts      = "otpAttempts"
)

// SnapshotStore is a key-value cache holding the last successful JSON payloads.
// It is a convenience cache, never a source of truth.
type SnapshotStore interface {
	// Get returns the stored payload and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a payload. A zero ttl keeps it until deleted.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a payload. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Incr atomically increments the counter at key and returns its new value.
	// A missing or expired counter starts again at 1 and expires after ttl.
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

// ScopedKey builds a key for a logical name and an id.
func ScopedKey(name, id string) string {
	return name + ":" + id
}
