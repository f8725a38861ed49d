package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrNoBaseCurrency indicates that a provider's active currencies do not carry exactly one base currency.
var ErrNoBaseCurrency = errors.New("no single base currency configured")

// ErrUnsupportedPair indicates a conversion between two currencies where neither is the base currency.
var ErrUnsupportedPair = errors.New("unsupported currency pair")

// ErrNetwork indicates that a call to the upstream exchange API failed.
var ErrNetwork = errors.New("upstream exchange api unavailable")

// ErrUnauthorized indicates missing or rejected credentials.
var ErrUnauthorized = errors.New("unauthorized")

// AppError pairs an HTTP status with a message and an optional cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// FieldErrors maps a form field name to its error message. An empty map means the form is valid.
type FieldErrors map[string]string

// Fields returns the field names in a stable order.
func (fe FieldErrors) Fields() []string {
	names := make([]string, 0, len(fe))
	for name := range fe {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (fe FieldErrors) Error() string {
	return fmt.Sprintf("%s: invalid fields: %s", ErrValidation.Error(), strings.Join(fe.Fields(), ", "))
}

// Is lets errors.Is match FieldErrors against ErrValidation.
func (fe FieldErrors) Is(target error) bool {
	return target == ErrValidation
}

// AsFieldErrors extracts FieldErrors from an error chain.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// IsConfigurationError reports whether err stems from the provider's currency setup.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrNoBaseCurrency) || errors.Is(err, ErrUnsupportedPair)
}
