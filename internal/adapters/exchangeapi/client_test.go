package exchangeapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/exchange_desk/internal/adapters/exchangeapi"
	"github.com/SscSPs/exchange_desk/internal/apperrors"
	"github.com/SscSPs/exchange_desk/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newServer answers a single expected method and path with status and body, recording the request body.
func newServer(t *testing.T, method, path string, status int, body string, got *[]byte) *exchangeapi.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, method, r.Method)
		assert.Equal(t, path, r.URL.Path)
		if got != nil {
			*got, _ = io.ReadAll(r.Body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return exchangeapi.NewClient(srv.URL+"/api/v1/", 2*time.Second)
}

func TestListActiveCurrencies(t *testing.T) {
	body := `[
		{"id": 1, "code": "AED", "name": "UAE Dirham", "decimal_places": 2, "is_active": true, "base_currency": true, "buy_rate": null, "sell_rate": null},
		{"id": 2, "code": "USD", "name": "US Dollar", "decimal_places": 2, "is_active": true, "base_currency": false, "buy_rate": "3.67", "sell_rate": 3.65}
	]`
	client := newServer(t, http.MethodGet, "/api/v1/activeCurrencies/7", http.StatusOK, body, nil)
	repo := exchangeapi.NewCurrencyRepository(client)

	currencies, err := repo.ListActiveCurrencies(context.Background(), "7")

	require.NoError(t, err)
	require.Len(t, currencies, 2)
	assert.True(t, currencies[0].IsBaseCurrency)
	assert.False(t, currencies[0].BuyRate.Valid)
	assert.True(t, currencies[1].BuyRate.Decimal.Equal(decimal.RequireFromString("3.67")))
	assert.True(t, currencies[1].SellRate.Decimal.Equal(decimal.RequireFromString("3.65")))
}

func TestSetRates_SendsNumbers(t *testing.T) {
	var sent []byte
	client := newServer(t, http.MethodPost, "/api/v1/setRates/7", http.StatusCreated, `{}`, &sent)
	repo := exchangeapi.NewCurrencyRepository(client)

	err := repo.SetRates(context.Background(), "7", []domain.RateSubmission{{
		BaseCurrencyCode:   "AED",
		TargetCurrencyCode: "USD",
		BuyRate:            decimal.RequireFromString("3.67"),
		SellRate:           decimal.RequireFromString("3.65"),
		RateDate:           "2024-09-04",
	}})

	require.NoError(t, err)
	assert.JSONEq(t, `[{"base_currency_code":"AED","target_currency_code":"USD","buy_rate":3.67,"sell_rate":3.65,"rate_date":"2024-09-04"}]`, string(sent))
}

func TestCreateRequest_KeepsSubmittedFields(t *testing.T) {
	var sent []byte
	client := newServer(t, http.MethodPost, "/api/v1/requestExchange/7", http.StatusOK,
		`{"reference_number": "EX-1001", "status": "Pending", "created_at": "2024-09-04T10:00:00Z"}`, &sent)
	repo := exchangeapi.NewRequestRepository(client)

	created, err := repo.CreateRequest(context.Background(), "7", domain.ExchangeRequest{
		GuestName:        "Sara",
		GuestPhone:       "0501234567",
		Whatsapp:         "0501234567",
		FromCurrencyCode: "AED",
		ToCurrencyCode:   "USD",
		BaseAmount:       decimal.NewFromInt(100),
		TargetAmount:     decimal.RequireFromString("27.25"),
		ExchangeRate:     decimal.RequireFromString("0.272479"),
		PaymentMethod:    domain.PaymentCash,
		Status:           domain.StatusPending,
	})

	require.NoError(t, err)
	assert.Equal(t, "EX-1001", created.ReferenceNumber)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, "Sara", created.GuestName)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(sent, &payload))
	assert.Equal(t, "AED", payload["from_currency"])
	assert.Equal(t, 100.0, payload["base_amount"])
	assert.NotContains(t, payload, "guest_email")
}

func TestVerifyProvider(t *testing.T) {
	client := newServer(t, http.MethodPost, "/api/v1/providerVerification/7", http.StatusOK,
		`{"user": {"id": 3, "provider_id": 7, "name": "Desk", "email": "desk@example.com", "role": "admin"}}`, nil)
	repo := exchangeapi.NewProviderRepository(client)

	user, err := repo.VerifyProvider(context.Background(), "7", "desk@example.com")

	require.NoError(t, err)
	assert.Equal(t, "7", user.ProviderID)
	assert.Equal(t, "desk@example.com", user.Email)
}

func TestVerifyProvider_UnknownAccount(t *testing.T) {
	client := newServer(t, http.MethodPost, "/api/v1/providerVerification/7", http.StatusOK, `{}`, nil)
	repo := exchangeapi.NewProviderRepository(client)

	_, err := repo.VerifyProvider(context.Background(), "7", "nobody@example.com")

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, apperrors.ErrValidation},
		{http.StatusUnprocessableEntity, apperrors.ErrValidation},
		{http.StatusUnauthorized, apperrors.ErrUnauthorized},
		{http.StatusForbidden, apperrors.ErrUnauthorized},
		{http.StatusNotFound, apperrors.ErrNotFound},
		{http.StatusInternalServerError, apperrors.ErrNetwork},
		{http.StatusBadGateway, apperrors.ErrNetwork},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			client := newServer(t, http.MethodPost, "/api/v1/updateRequestStatus", tt.status, `{"error":"nope"}`, nil)
			repo := exchangeapi.NewRequestRepository(client)

			err := repo.UpdateRequestStatus(context.Background(), "EX-1", domain.StatusCompleted)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	repo := exchangeapi.NewCurrencyRepository(exchangeapi.NewClient(srv.URL, time.Second))

	_, err := repo.ListCurrencies(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrNetwork)
}

func TestInvalidBody(t *testing.T) {
	client := newServer(t, http.MethodGet, "/api/v1/listCurrencies", http.StatusOK, `{"not": "a list"}`, nil)
	repo := exchangeapi.NewCurrencyRepository(client)

	_, err := repo.ListCurrencies(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrNetwork)
}
