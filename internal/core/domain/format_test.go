package domain_test

import (
	"testing"

	"github.com/SscSPs/exchange_desk/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		value string
		code  string
		want  string
	}{
		{"1500000", "USD", "USD 1.5M"},
		{"2500", "AED", "AED 2.5K"},
		{"1000", "EUR", "EUR 1.0K"},
		{"999.5", "USD", "USD 999.50"},
		{"462500", "SDG", "SDG 462.5K"},
		{"1.5", "USD", "USD 1.50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.FormatAmount(decimal.RequireFromString(tt.value), tt.code))
	}
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "0.272480", domain.FormatRate(decimal.RequireFromString("0.2724795640326975")))
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		lang domain.Language
		want string
	}{
		{"2024-09-04T10:00:00Z", domain.LangEnglish, "Sep 4"},
		{"2025-09-04 03:12:10", domain.LangEnglish, "Sep 4"},
		{"2024-12-25", domain.LangArabic, "25 ديسمبر"},
		{"2024-02-30", domain.LangEnglish, domain.InvalidDate},
		{"yesterday", domain.LangEnglish, domain.InvalidDate},
		{"", domain.LangArabic, domain.InvalidDate},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.FormatDate(tt.in, tt.lang), tt.in)
	}
}

func TestParseLanguage(t *testing.T) {
	lang, err := domain.ParseLanguage(" EN ")
	assert.NoError(t, err)
	assert.Equal(t, domain.LangEnglish, lang)

	_, err = domain.ParseLanguage("fr")
	assert.Error(t, err)
}
