package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/exchange_desk/internal/apperrors"
)

// Language is a supported display language.
type Language string

const (
	LangArabic  Language = "ar"
	LangEnglish Language = "en"
)

// DefaultLanguage is used until a provider picks one.
const DefaultLanguage = LangArabic

// ParseLanguage validates a language code.
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case LangArabic:
		return LangArabic, nil
	case LangEnglish:
		return LangEnglish, nil
	}
	return "", fmt.Errorf("%w: unsupported language %q", apperrors.ErrValidation, s)
}

var translations = map[Language]map[string]string{
	LangEnglish: {
		"pending":    "Pending",
		"processing": "Processing",
		"completed":  "Completed",
		"cancelled":  "Cancelled",
		"rejected":   "Rejected",
	},
	LangArabic: {
		"pending":    "قيد الانتظار",
		"processing": "قيد المعالجة",
		"completed":  "مكتمل",
		"cancelled":  "ملغي",
		"rejected":   "مرفوض",
	},
}

var shortMonths = map[Language][12]string{
	LangEnglish: {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	LangArabic:  {"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو", "يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر"},
}

// T translates a key, falling back to the key itself.
func T(lang Language, key string) string {
	if table, ok := translations[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	return key
}
