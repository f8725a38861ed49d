package forms

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/SscSPs/exchange_desk/internal/apperrors"
	"github.com/SscSPs/exchange_desk/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// Field names as they appear in error maps and JSON.
const (
	FieldGuestName           = "guestName"
	FieldGuestEmail          = "guestEmail"
	FieldGuestPhone          = "guestPhone"
	FieldWhatsapp            = "whatsapp"
	FieldGuestIdentification = "guestIdentification"
	FieldPaymentMethod       = "paymentMethod"
)

var (
	phonePattern = regexp.MustCompile(`^[0-9 +\-()]+$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// RequestForm holds the user-editable fields of an exchange request draft.
type RequestForm struct {
	GuestName           string `json:"guestName" validate:"required,notblank"`
	GuestEmail          string `json:"guestEmail" validate:"omitempty,email_shape"`
	GuestPhone          string `json:"guestPhone" validate:"required,phone"`
	Whatsapp            string `json:"whatsapp" validate:"required,phone"`
	GuestIdentification string `json:"guestIdentification"`
	PaymentMethod       string `json:"paymentMethod" validate:"required,payment_method"`
}

var (
	validate   = newValidator()
	goFieldFor = jsonToGoFields(reflect.TypeOf(RequestForm{}))
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "email_shape", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "payment_method", func(fl validator.FieldLevel) bool {
		return domain.PaymentMethod(fl.Field().String()).IsValid()
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %s: %v", tag, err))
	}
}

func jsonToGoFields(t reflect.Type) map[string]string {
	m := make(map[string]string, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		m[strings.SplitN(f.Tag.Get("json"), ",", 2)[0]] = f.Name
	}
	return m
}

// Validate checks every field and returns the complete error map. An empty map means the form is valid.
func Validate(form RequestForm) apperrors.FieldErrors {
	return toFieldErrors(validate.Struct(form))
}

// ValidateFields checks only the named fields.
func ValidateFields(form RequestForm, fields ...string) apperrors.FieldErrors {
	goNames := make([]string, 0, len(fields))
	for _, f := range fields {
		if name, ok := goFieldFor[f]; ok {
			goNames = append(goNames, name)
		}
	}
	if len(goNames) == 0 {
		return apperrors.FieldErrors{}
	}
	return toFieldErrors(validate.StructPartial(form, goNames...))
}

// ValidateField gives immediate feedback on a single field. The message is empty when the field is valid.
func ValidateField(form RequestForm, field string) string {
	return ValidateFields(form, field)[field]
}

// KnownField reports whether the name is a form field.
func KnownField(field string) bool {
	_, ok := goFieldFor[field]
	return ok
}

func toFieldErrors(err error) apperrors.FieldErrors {
	out := apperrors.FieldErrors{}
	if err == nil {
		return out
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["form"] = err.Error()
		return out
	}
	for _, fe := range verrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", fe.Field())
	case "phone":
		return "phone number may only contain digits, spaces, +, - and parentheses"
	case "email_shape":
		return "email address must look like name@domain.tld"
	case "payment_method":
		return "payment method must be one of cash, bank_transfer, credit_card, mobile_wallet"
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}

// Set assigns a field by its JSON name.
func (f *RequestForm) Set(field, value string) error {
	switch field {
	case FieldGuestName:
		f.GuestName = value
	case FieldGuestEmail:
		f.GuestEmail = value
	case FieldGuestPhone:
		f.GuestPhone = value
	case FieldWhatsapp:
		f.Whatsapp = value
	case FieldGuestIdentification:
		f.GuestIdentification = value
	case FieldPaymentMethod:
		f.PaymentMethod = value
	default:
		return fmt.Errorf("%w: unknown field %q", apperrors.ErrValidation, field)
	}
	return nil
}
