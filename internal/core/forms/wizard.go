package forms

import "github.com/SscSPs/exchange_desk/internal/apperrors"

// Step is a page of the multi-step request flow.
type Step int

const (
	StepContact        Step = 1
	StepExchangeReview Step = 2
	StepPayment        Step = 3
)

func (s Step) String() string {
	switch s {
	case StepContact:
		return "contact"
	case StepExchangeReview:
		return "exchange_review"
	case StepPayment:
		return "payment"
	}
	return "unknown"
}

// stepFields are the fields that must be valid before leaving a step.
// The exchange review step only shows derived values.
var stepFields = map[Step][]string{
	StepContact: {FieldGuestName, FieldGuestEmail, FieldGuestPhone, FieldWhatsapp},
	StepPayment: {FieldPaymentMethod},
}

// Wizard tracks the current step of the request flow.
type Wizard struct {
	Step Step `json:"step"`
}

// NewWizard starts on the contact step.
func NewWizard() Wizard {
	return Wizard{Step: StepContact}
}

// Next advances one step when the current step has no errors. It never moves past the payment step.
func (w *Wizard) Next(form RequestForm) apperrors.FieldErrors {
	errs := ValidateFields(form, stepFields[w.Step]...)
	if len(errs) > 0 {
		return errs
	}
	if w.Step < StepPayment {
		w.Step++
	}
	return errs
}

// Previous retreats one step. It never moves before the contact step.
func (w *Wizard) Previous() {
	if w.Step > StepContact {
		w.Step--
	}
}

// CanSubmit reports whether the flow reached the payment step.
func (w Wizard) CanSubmit() bool {
	return w.Step == StepPayment
}
