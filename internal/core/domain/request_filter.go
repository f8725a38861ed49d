package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/exchange_desk/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Tab is a view over the provider's request list.
type Tab string

const (
	TabRecent      Tab = "recent"
	TabPending     Tab = "pending"
	TabCompleted   Tab = "completed"
	TabBiggestSell Tab = "biggest_sell"
	TabBiggestBuy  Tab = "biggest_buy"
)

// BiggestLimit caps the biggest_sell and biggest_buy tabs.
const BiggestLimit = 5

// ParseTab validates a tab name. An empty name selects the recent tab.
func ParseTab(s string) (Tab, error) {
	if s == "" {
		return TabRecent, nil
	}
	switch t := Tab(strings.ToLower(s)); t {
	case TabRecent, TabPending, TabCompleted, TabBiggestSell, TabBiggestBuy:
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown tab %q", apperrors.ErrValidation, s)
}

// FilterByTab selects the requests shown on a tab. The input is assumed to be ordered by recency.
// The biggest tabs are seen from the provider's side: selling foreign currency means the guest pays in the base currency.
func FilterByTab(requests []ExchangeRequest, tab Tab, baseCode string) ([]ExchangeRequest, error) {
	switch tab {
	case TabRecent:
		return requests, nil
	case TabPending:
		return filter(requests, func(r ExchangeRequest) bool { return KindOf(string(r.Status)) == KindPending }), nil
	case TabCompleted:
		return filter(requests, func(r ExchangeRequest) bool { return KindOf(string(r.Status)) == KindCompleted }), nil
	case TabBiggestSell:
		out := filter(requests, func(r ExchangeRequest) bool {
			return strings.EqualFold(r.FromCurrencyCode, baseCode) && KindOf(string(r.Status)) == KindPending
		})
		return topBy(out, func(r ExchangeRequest) decimal.Decimal { return r.BaseAmount }), nil
	case TabBiggestBuy:
		out := filter(requests, func(r ExchangeRequest) bool {
			return strings.EqualFold(r.ToCurrencyCode, baseCode) && KindOf(string(r.Status)) == KindPending
		})
		return topBy(out, func(r ExchangeRequest) decimal.Decimal { return r.TargetAmount }), nil
	}
	return nil, fmt.Errorf("%w: unknown tab %q", apperrors.ErrValidation, tab)
}

func filter(requests []ExchangeRequest, keep func(ExchangeRequest) bool) []ExchangeRequest {
	out := make([]ExchangeRequest, 0, len(requests))
	for _, r := range requests {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func topBy(requests []ExchangeRequest, amount func(ExchangeRequest) decimal.Decimal) []ExchangeRequest {
	sort.SliceStable(requests, func(i, j int) bool {
		return amount(requests[i]).GreaterThan(amount(requests[j]))
	})
	if len(requests) > BiggestLimit {
		requests = requests[:BiggestLimit]
	}
	return requests
}
