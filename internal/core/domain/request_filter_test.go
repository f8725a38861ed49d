package domain_test

import (
	"fmt"
	"testing"

	"github.com/SscSPs/exchange_desk/internal/apperrors"
	"github.com/SscSPs/exchange_desk/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func req(ref, from, to string, base, target int64, status domain.RequestStatus) domain.ExchangeRequest {
	return domain.ExchangeRequest{
		ReferenceNumber:  ref,
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		BaseAmount:       decimal.NewFromInt(base),
		TargetAmount:     decimal.NewFromInt(target),
		Status:           status,
	}
}

func refs(requests []domain.ExchangeRequest) []string {
	out := make([]string, len(requests))
	for i, r := range requests {
		out[i] = r.ReferenceNumber
	}
	return out
}

func TestParseTab(t *testing.T) {
	tab, err := domain.ParseTab("")
	require.NoError(t, err)
	assert.Equal(t, domain.TabRecent, tab)

	tab, err = domain.ParseTab("Biggest_Buy")
	require.NoError(t, err)
	assert.Equal(t, domain.TabBiggestBuy, tab)

	_, err = domain.ParseTab("oldest")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestFilterByTab(t *testing.T) {
	page := []domain.ExchangeRequest{
		req("R1", "AED", "USD", 1000, 272, domain.StatusPending),
		req("R2", "USD", "AED", 50, 182, domain.StatusCompleted),
		req("R3", "EUR", "AED", 300, 1185, domain.StatusProcessing),
		req("R4", "AED", "EUR", 4000, 1000, domain.StatusCancelled),
		req("R5", "AED", "USD", 2500, 681, "Pending"),
	}

	tests := []struct {
		tab  domain.Tab
		want []string
	}{
		{domain.TabRecent, []string{"R1", "R2", "R3", "R4", "R5"}},
		{domain.TabPending, []string{"R1", "R3", "R5"}},
		{domain.TabCompleted, []string{"R2"}},
		{domain.TabBiggestSell, []string{"R5", "R1"}},
		{domain.TabBiggestBuy, []string{"R3"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.tab), func(t *testing.T) {
			got, err := domain.FilterByTab(append([]domain.ExchangeRequest(nil), page...), tt.tab, "AED")
			require.NoError(t, err)
			assert.Equal(t, tt.want, refs(got))
		})
	}
}

func TestFilterByTab_BiggestIsCapped(t *testing.T) {
	var page []domain.ExchangeRequest
	for i := 1; i <= 8; i++ {
		page = append(page, req(fmt.Sprintf("R%d", i), "AED", "USD", int64(i*100), 0, domain.StatusPending))
	}

	got, err := domain.FilterByTab(page, domain.TabBiggestSell, "AED")
	require.NoError(t, err)
	assert.Equal(t, []string{"R8", "R7", "R6", "R5", "R4"}, refs(got))
}
