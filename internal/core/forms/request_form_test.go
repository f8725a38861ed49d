package forms_test

import (
	"testing"

	"github.com/SscSPs/exchange_desk/internal/apperrors"
	"github.com/SscSPs/exchange_desk/internal/core/forms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() forms.RequestForm {
	return forms.RequestForm{
		GuestName:     "Sara Ali",
		GuestEmail:    "sara@example.com",
		GuestPhone:    "+971 (50) 123-4567",
		Whatsapp:      "0501234567",
		PaymentMethod: "cash",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(f *forms.RequestForm)
		wantField string
	}{
		{"valid", func(f *forms.RequestForm) {}, ""},
		{"blank name", func(f *forms.RequestForm) { f.GuestName = "   " }, forms.FieldGuestName},
		{"missing phone", func(f *forms.RequestForm) { f.GuestPhone = "" }, forms.FieldGuestPhone},
		{"letters in whatsapp", func(f *forms.RequestForm) { f.Whatsapp = "050-abc" }, forms.FieldWhatsapp},
		{"malformed email", func(f *forms.RequestForm) { f.GuestEmail = "sara@example" }, forms.FieldGuestEmail},
		{"empty email is fine", func(f *forms.RequestForm) { f.GuestEmail = "" }, ""},
		{"unknown payment method", func(f *forms.RequestForm) { f.PaymentMethod = "cheque" }, forms.FieldPaymentMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			errs := forms.Validate(form)
			if tt.wantField == "" {
				assert.Empty(t, errs)
				return
			}
			assert.Len(t, errs, 1)
			assert.NotEmpty(t, errs[tt.wantField])
		})
	}
}

func TestValidate_ReportsEveryField(t *testing.T) {
	errs := forms.Validate(forms.RequestForm{})

	assert.ElementsMatch(t,
		[]string{forms.FieldGuestName, forms.FieldGuestPhone, forms.FieldWhatsapp, forms.FieldPaymentMethod},
		errs.Fields())
}

func TestValidateField(t *testing.T) {
	form := validForm()
	form.GuestPhone = "not a phone"

	assert.NotEmpty(t, forms.ValidateField(form, forms.FieldGuestPhone))
	assert.Empty(t, forms.ValidateField(form, forms.FieldGuestName))
	assert.Empty(t, forms.ValidateField(form, "nickname"))
}

func TestRequestForm_Set(t *testing.T) {
	var form forms.RequestForm

	require.NoError(t, form.Set(forms.FieldGuestName, "Omar"))
	assert.Equal(t, "Omar", form.GuestName)

	err := form.Set("nickname", "O")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.False(t, forms.KnownField("nickname"))
	assert.True(t, forms.KnownField(forms.FieldWhatsapp))
}

func TestValidate_PermissivePhoneOnSubmit(t *testing.T) {
	form := forms.RequestForm{GuestPhone: "123", Whatsapp: "123"}

	errs := forms.Validate(form)
	assert.Equal(t, []string{forms.FieldGuestName, forms.FieldPaymentMethod}, errs.Fields())

	form.GuestName = "Sara"
	form.PaymentMethod = "mobile_wallet"
	assert.Empty(t, forms.Validate(form))
}
