package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/exchange_desk/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestFieldErrors(t *testing.T) {
	fe := apperrors.FieldErrors{"whatsapp": "required", "guestName": "required"}

	assert.Equal(t, []string{"guestName", "whatsapp"}, fe.Fields())
	assert.ErrorIs(t, fe, apperrors.ErrValidation)
	assert.Contains(t, fe.Error(), "guestName, whatsapp")

	wrapped := fmt.Errorf("submit draft: %w", fe)
	got, ok := apperrors.AsFieldErrors(wrapped)
	assert.True(t, ok)
	assert.Equal(t, fe, got)

	_, ok = apperrors.AsFieldErrors(apperrors.ErrValidation)
	assert.False(t, ok)
}

func TestIsConfigurationError(t *testing.T) {
	assert.True(t, apperrors.IsConfigurationError(fmt.Errorf("quote: %w", apperrors.ErrNoBaseCurrency)))
	assert.True(t, apperrors.IsConfigurationError(apperrors.ErrUnsupportedPair))
	assert.False(t, apperrors.IsConfigurationError(apperrors.ErrNetwork))
}

func TestAppError(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperrors.NewAppError(http.StatusInternalServerError, "failed to commit", cause)

	assert.Equal(t, "failed to commit: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to commit", apperrors.NewAppError(http.StatusBadRequest, "failed to commit", nil).Error())
}
