package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/exchange_desk/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ExchangePair keeps the two amount fields of a conversion consistent with the current rate.
// Only FromAmount is editable; ToAmount is always derived and rounded to the target currency's decimal places.
type ExchangePair struct {
	From       Currency        `json:"from"`
	To         Currency        `json:"to"`
	FromAmount string          `json:"fromAmount"`
	ToAmount   string          `json:"toAmount"`
	Rate       decimal.Decimal `json:"rate"`
}

// ParseAmount reads a user-typed amount. Thousands separators are ignored and
// anything unparsable or negative reads as zero so that partial input never fails.
func ParseAmount(s string) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ValidatePair checks the selection constraint: a currency is never exchanged against itself
// and the base currency sits on exactly one side.
func ValidatePair(from, to Currency) error {
	if strings.EqualFold(from.Code, to.Code) {
		return fmt.Errorf("%w: cannot exchange %s against itself", apperrors.ErrUnsupportedPair, from.Code)
	}
	if from.IsBaseCurrency == to.IsBaseCurrency {
		return fmt.Errorf("%w: %s to %s", apperrors.ErrUnsupportedPair, from.Code, to.Code)
	}
	return nil
}

// NewExchangePair builds a pair and derives ToAmount from fromAmount.
func NewExchangePair(from, to Currency, fromAmount string) (ExchangePair, error) {
	p := ExchangePair{From: from, To: to, FromAmount: fromAmount}
	if err := p.recompute(); err != nil {
		return ExchangePair{}, err
	}
	return p, nil
}

func (p *ExchangePair) recompute() error {
	if err := ValidatePair(p.From, p.To); err != nil {
		return err
	}
	rate, err := CalculateRate(p.From, p.To)
	if err != nil {
		return err
	}
	p.Rate = rate
	p.ToAmount = ParseAmount(p.FromAmount).Mul(rate).StringFixed(p.To.DecimalPlaces)
	return nil
}

// SetFromAmount replaces the editable amount and re-derives ToAmount.
func (p *ExchangePair) SetFromAmount(amount string) {
	p.FromAmount = amount
	p.ToAmount = ParseAmount(amount).Mul(p.Rate).StringFixed(p.To.DecimalPlaces)
}

// SetFromCurrency changes the source currency. The pair is left untouched if the new selection is not allowed.
func (p *ExchangePair) SetFromCurrency(c Currency) error {
	next := *p
	next.From = c
	if err := next.recompute(); err != nil {
		return err
	}
	*p = next
	return nil
}

// SetToCurrency changes the target currency. The pair is left untouched if the new selection is not allowed.
func (p *ExchangePair) SetToCurrency(c Currency) error {
	next := *p
	next.To = c
	if err := next.recompute(); err != nil {
		return err
	}
	*p = next
	return nil
}

// Swap exchanges both currencies and both amounts, then re-derives ToAmount from the new FromAmount and rate.
func (p *ExchangePair) Swap() error {
	next := ExchangePair{
		From:       p.To,
		To:         p.From,
		FromAmount: p.ToAmount,
		ToAmount:   p.FromAmount,
	}
	if err := next.recompute(); err != nil {
		return err
	}
	*p = next
	return nil
}

// FromValue is the parsed source amount.
func (p ExchangePair) FromValue() decimal.Decimal {
	return ParseAmount(p.FromAmount)
}

// ToValue is the parsed derived amount.
func (p ExchangePair) ToValue() decimal.Decimal {
	return ParseAmount(p.ToAmount)
}

// TargetOptions lists the currencies selectable opposite `from`:
// every non-base active currency when `from` is the base, otherwise only the base.
func TargetOptions(currencies []Currency, from Currency) []Currency {
	active := FilterActive(currencies)
	options := make([]Currency, 0, len(active))
	for _, c := range active {
		if strings.EqualFold(c.Code, from.Code) {
			continue
		}
		if c.IsBaseCurrency != from.IsBaseCurrency {
			options = append(options, c)
		}
	}
	return options
}
