package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNumericCode(t *testing.T) {
	code, err := GenerateNumericCode(4)
	require.NoError(t, err)
	assert.Len(t, code, 4)
	assert.Regexp(t, `^[0-9]{4}$`, code)

	_, err = GenerateNumericCode(0)
	assert.Error(t, err)
}

func TestGenerateSecureRandomString(t *testing.T) {
	s, err := GenerateSecureRandomString(16)
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9a-f]{32}$`, s)

	_, err = GenerateSecureRandomString(0)
	assert.Error(t, err)
}

func TestHashCode(t *testing.T) {
	hash, err := HashCode("4821")
	require.NoError(t, err)
	assert.NotEqual(t, "4821", hash)
	assert.True(t, CheckCodeHash("4821", hash))
	assert.False(t, CheckCodeHash("1111", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("7", "secret", time.Minute, "exchange-desk")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, "exchange-desk", claims.Issuer)

	_, err = ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	token, err := GenerateJWT("7", "secret", -time.Minute, "exchange-desk")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "secret")
	assert.Error(t, err)
}
