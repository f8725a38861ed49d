package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/exchange_desk/internal/apperrors"
	"github.com/shopspring/decimal"
)

// CalculateRate returns how many units of `to` one unit of `from` buys.
//
// Selling a quoted currency into the base uses the quoted currency's sell rate (0 when unset).
// Buying a quoted currency with the base uses 1/buyRate, where a missing or zero buy rate counts as 1.
// Pairs where neither side is the base currency are rejected.
func CalculateRate(from, to Currency) (decimal.Decimal, error) {
	switch {
	case strings.EqualFold(from.Code, to.Code):
		return decimal.NewFromInt(1), nil
	case to.IsBaseCurrency:
		return from.sellRateOrZero(), nil
	case from.IsBaseCurrency:
		return decimal.NewFromInt(1).Div(to.buyRateOrOne()), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %s to %s", apperrors.ErrUnsupportedPair, from.Code, to.Code)
	}
}
