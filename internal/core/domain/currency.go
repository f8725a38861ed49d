package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/exchange_desk/internal/apperrors"
	"github.com/shopspring/decimal"
)

// RateDateLayout is the layout of the rate_date field sent with a rate batch.
const RateDateLayout = "2006-01-02"

// Currency represents a currency offered by a provider.
// BuyRate and SellRate are quoted as units of the base currency per 1 unit of this currency
// and are only meaningful for non-base currencies.
type Currency struct {
	ID             int64               `json:"id"`
	Code           string              `json:"code"` // e.g., "USD"
	Name           string              `json:"name"`
	FlagEmoji      string              `json:"flagEmoji"`
	Symbol         string              `json:"symbol"`
	DecimalPlaces  int32               `json:"decimalPlaces"`
	IsActive       bool                `json:"isActive"`
	IsBaseCurrency bool                `json:"isBaseCurrency"`
	BuyRate        decimal.NullDecimal `json:"buyRate"`
	SellRate       decimal.NullDecimal `json:"sellRate"`
}

// sellRateOrZero returns the configured sell rate, or zero when unset.
func (c Currency) sellRateOrZero() decimal.Decimal {
	if !c.SellRate.Valid {
		return decimal.Zero
	}
	return c.SellRate.Decimal
}

// buyRateOrOne returns the configured buy rate. A missing or non-positive rate degrades to 1.
func (c Currency) buyRateOrOne() decimal.Decimal {
	if !c.BuyRate.Valid || !c.BuyRate.Decimal.IsPositive() {
		return decimal.NewFromInt(1)
	}
	return c.BuyRate.Decimal
}

// FindByCode returns the currency with the given code, compared case-insensitively.
func FindByCode(currencies []Currency, code string) (Currency, error) {
	for _, c := range currencies {
		if strings.EqualFold(c.Code, code) {
			return c, nil
		}
	}
	return Currency{}, fmt.Errorf("%w: currency %q", apperrors.ErrNotFound, code)
}

// FindByID returns the currency with the given id.
func FindByID(currencies []Currency, id int64) (Currency, error) {
	for _, c := range currencies {
		if c.ID == id {
			return c, nil
		}
	}
	return Currency{}, fmt.Errorf("%w: currency id %d", apperrors.ErrNotFound, id)
}

// FilterActive returns the active currencies, preserving order.
func FilterActive(currencies []Currency) []Currency {
	active := make([]Currency, 0, len(currencies))
	for _, c := range currencies {
		if c.IsActive {
			active = append(active, c)
		}
	}
	return active
}

// FindBase returns the single base currency of the list.
// Zero or several base currencies is an integrity violation of the upstream data and is reported, never resolved.
func FindBase(currencies []Currency) (Currency, error) {
	var (
		base  Currency
		count int
	)
	for _, c := range currencies {
		if c.IsBaseCurrency {
			base = c
			count++
		}
	}
	if count != 1 {
		return Currency{}, fmt.Errorf("%w: found %d base currencies", apperrors.ErrNoBaseCurrency, count)
	}
	return base, nil
}

// Rate is the in-memory staging entry an admin edits on the rate board.
// A zero BuyRate or SellRate means "not set".
type Rate struct {
	BaseCurrencyCode   string          `json:"baseCurrencyCode"`
	TargetCurrencyCode string          `json:"targetCurrencyCode"`
	BuyRate            decimal.Decimal `json:"buyRate"`
	SellRate           decimal.Decimal `json:"sellRate"`
}

// RateSubmission is one item of the rate batch sent upstream.
type RateSubmission struct {
	BaseCurrencyCode   string
	TargetCurrencyCode string
	BuyRate            decimal.Decimal
	SellRate           decimal.Decimal
	RateDate           string
}

// NewRateBoard stages one Rate per non-base active currency, pre-filled with the currently configured rates.
func NewRateBoard(currencies []Currency) ([]Rate, error) {
	active := FilterActive(currencies)
	base, err := FindBase(active)
	if err != nil {
		return nil, err
	}

	board := make([]Rate, 0, len(active))
	for _, c := range active {
		if c.IsBaseCurrency {
			continue
		}
		buy := decimal.Zero
		if c.BuyRate.Valid {
			buy = c.BuyRate.Decimal
		}
		board = append(board, Rate{
			BaseCurrencyCode:   base.Code,
			TargetCurrencyCode: c.Code,
			BuyRate:            buy,
			SellRate:           c.sellRateOrZero(),
		})
	}
	return board, nil
}

// ApplyRate updates the staged rate of the target currency on the board.
func ApplyRate(board []Rate, targetCode string, buy, sell decimal.Decimal) error {
	if buy.IsNegative() || sell.IsNegative() {
		return fmt.Errorf("%w: rates for %s must not be negative", apperrors.ErrValidation, targetCode)
	}
	for i := range board {
		if strings.EqualFold(board[i].TargetCurrencyCode, targetCode) {
			board[i].BuyRate = buy
			board[i].SellRate = sell
			return nil
		}
	}
	return fmt.Errorf("%w: %s is not an active non-base currency", apperrors.ErrValidation, targetCode)
}

// RatesToSubmit converts the board into a batch dated on the given day.
// Rates without a sell rate are left out.
func RatesToSubmit(board []Rate, day time.Time) []RateSubmission {
	date := day.Format(RateDateLayout)
	batch := make([]RateSubmission, 0, len(board))
	for _, r := range board {
		if !r.SellRate.IsPositive() {
			continue
		}
		batch = append(batch, RateSubmission{
			BaseCurrencyCode:   r.BaseCurrencyCode,
			TargetCurrencyCode: r.TargetCurrencyCode,
			BuyRate:            r.BuyRate,
			SellRate:           r.SellRate,
			RateDate:           date,
		})
	}
	return batch
}
