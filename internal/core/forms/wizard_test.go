package forms_test

import (
	"testing"

	"github.com/SscSPs/exchange_desk/internal/core/domain"
	"github.com/SscSPs/exchange_desk/internal/core/forms"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWizard_Navigation(t *testing.T) {
	w := forms.NewWizard()
	assert.Equal(t, forms.StepContact, w.Step)

	w.Previous()
	assert.Equal(t, forms.StepContact, w.Step, "never moves before the contact step")

	errs := w.Next(forms.RequestForm{})
	assert.NotEmpty(t, errs)
	assert.Equal(t, forms.StepContact, w.Step, "blocked while contact fields are invalid")

	form := validForm()
	form.PaymentMethod = ""
	assert.Empty(t, w.Next(form))
	assert.Equal(t, forms.StepExchangeReview, w.Step)

	assert.Empty(t, w.Next(form), "review step has no editable fields")
	assert.Equal(t, forms.StepPayment, w.Step)
	assert.True(t, w.CanSubmit())

	errs = w.Next(form)
	assert.Contains(t, errs, forms.FieldPaymentMethod)

	form.PaymentMethod = "bank_transfer"
	assert.Empty(t, w.Next(form))
	assert.Equal(t, forms.StepPayment, w.Step, "never moves past the payment step")

	w.Previous()
	assert.Equal(t, forms.StepExchangeReview, w.Step)
	assert.False(t, w.CanSubmit())
}

func TestStep_String(t *testing.T) {
	assert.Equal(t, "contact", forms.StepContact.String())
	assert.Equal(t, "exchange_review", forms.StepExchangeReview.String())
	assert.Equal(t, "payment", forms.StepPayment.String())
	assert.Equal(t, "unknown", forms.Step(9).String())
}

func TestDraft_ValidateForSubmit(t *testing.T) {
	aed := domain.Currency{Code: "AED", DecimalPlaces: 2, IsActive: true, IsBaseCurrency: true}
	usd := domain.Currency{Code: "USD", DecimalPlaces: 2, IsActive: true,
		SellRate: decimal.NewNullDecimal(decimal.RequireFromString("3.65"))}

	pair, err := domain.NewExchangePair(usd, aed, "0")
	assert.NoError(t, err)

	d := forms.Draft{Wizard: forms.NewWizard(), Form: validForm(), Pair: pair}
	errs := d.ValidateForSubmit()
	assert.Equal(t, []string{forms.FieldFromAmount}, errs.Fields())

	d.Pair.SetFromAmount("100")
	assert.Empty(t, d.ValidateForSubmit())

	req := d.ToExchangeRequest()
	assert.Equal(t, "USD", req.FromCurrencyCode)
	assert.Equal(t, "AED", req.ToCurrencyCode)
	assert.True(t, req.BaseAmount.Equal(decimal.NewFromInt(100)))
	assert.True(t, req.TargetAmount.Equal(decimal.RequireFromString("365")))
	assert.Equal(t, domain.StatusPending, req.Status)
}
