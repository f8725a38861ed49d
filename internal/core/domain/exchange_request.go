package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how the guest settles an exchange.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentCreditCard   PaymentMethod = "credit_card"
	PaymentMobileWallet PaymentMethod = "mobile_wallet"
)

// PaymentMethods lists the accepted payment methods.
var PaymentMethods = []PaymentMethod{PaymentCash, PaymentBankTransfer, PaymentCreditCard, PaymentMobileWallet}

// IsValid reports whether the method belongs to the accepted set.
func (m PaymentMethod) IsValid() bool {
	for _, pm := range PaymentMethods {
		if m == pm {
			return true
		}
	}
	return false
}

// RequestStatus is the raw status of an exchange request, normalized to lower case.
type RequestStatus string

const (
	StatusPending    RequestStatus = "pending"
	StatusProcessing RequestStatus = "processing"
	StatusCompleted  RequestStatus = "completed"
	StatusSuccess    RequestStatus = "success"
	StatusCancelled  RequestStatus = "cancelled"
	StatusRejected   RequestStatus = "rejected"
)

// NormalizeStatus lower-cases and trims a status received from the outside.
func NormalizeStatus(s string) RequestStatus {
	return RequestStatus(strings.ToLower(strings.TrimSpace(s)))
}

// IsKnown reports whether the status is one of the known lifecycle values.
func (s RequestStatus) IsKnown() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusSuccess, StatusCancelled, StatusRejected:
		return true
	}
	return false
}

// ExchangeRequest is a guest's request to exchange currency with a provider.
// It is immutable once submitted; only the upstream API advances its status.
type ExchangeRequest struct {
	ReferenceNumber     string          `json:"referenceNumber"`
	GuestName           string          `json:"guestName"`
	GuestEmail          string          `json:"guestEmail,omitempty"`
	GuestPhone          string          `json:"guestPhone"`
	Whatsapp            string          `json:"whatsapp"`
	GuestIdentification string          `json:"guestIdentification,omitempty"`
	FromCurrencyCode    string          `json:"fromCurrencyCode"`
	ToCurrencyCode      string          `json:"toCurrencyCode"`
	BaseAmount          decimal.Decimal `json:"baseAmount"`
	TargetAmount        decimal.Decimal `json:"targetAmount"`
	ExchangeRate        decimal.Decimal `json:"exchangeRate"`
	PaymentMethod       PaymentMethod   `json:"paymentMethod"`
	Status              RequestStatus   `json:"status"`
	CreatedAt           string          `json:"createdAt"`
}

// ProviderUser is the account returned by provider verification.
type ProviderUser struct {
	ID         int64  `json:"id"`
	ProviderID string `json:"providerId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}
