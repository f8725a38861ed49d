package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// InvalidDate is rendered in place of a date that cannot be parsed.
const InvalidDate = "Invalid date"

var (
	million  = decimal.NewFromInt(1_000_000)
	thousand = decimal.NewFromInt(1_000)

	datePrefix = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
)

// FormatAmount renders an amount compactly for list rows, e.g. "USD 1.5M", "AED 2.5K", "USD 1.50".
func FormatAmount(value decimal.Decimal, code string) string {
	switch {
	case value.GreaterThanOrEqual(million):
		return fmt.Sprintf("%s %sM", code, value.Div(million).StringFixed(1))
	case value.GreaterThanOrEqual(thousand):
		return fmt.Sprintf("%s %sK", code, value.Div(thousand).StringFixed(1))
	default:
		return fmt.Sprintf("%s %s", code, value.StringFixed(2))
	}
}

// FormatRate renders an exchange rate with six decimals.
func FormatRate(rate decimal.Decimal) string {
	return rate.StringFixed(6)
}

// FormatDate renders the YYYY-MM-DD prefix of s as a short month and day, e.g. "Sep 4".
// Anything else yields InvalidDate.
func FormatDate(s string, lang Language) string {
	m := datePrefix.FindStringSubmatch(s)
	if m == nil {
		return InvalidDate
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return InvalidDate
	}

	months, ok := shortMonths[lang]
	if !ok {
		months = shortMonths[LangEnglish]
	}
	if lang == LangArabic {
		return fmt.Sprintf("%d %s", day, months[month-1])
	}
	return fmt.Sprintf("%s %d", months[month-1], day)
}
