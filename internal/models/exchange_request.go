package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ExchangeRequest is an exchange request as returned by the upstream API.
type ExchangeRequest struct {
	ReferenceNumber     string          `json:"reference_number"`
	GuestName           string          `json:"guest_name"`
	GuestEmail          string          `json:"guest_email"`
	GuestPhone          string          `json:"guest_phone"`
	Whatsapp            string          `json:"whatsapp"`
	GuestIdentification string          `json:"guest_identification"`
	FromCurrency        string          `json:"from_currency"`
	ToCurrency          string          `json:"to_currency"`
	BaseAmount          decimal.Decimal `json:"base_amount"`
	TargetAmount        decimal.Decimal `json:"target_amount"`
	ExchangeRate        decimal.Decimal `json:"exchange_rate"`
	PaymentMethod       string          `json:"payment_method"`
	Status              string          `json:"status"`
	CreatedAt           string          `json:"created_at"`
}

// NewExchangeRequest is the body posted to create a request. Amounts are sent as JSON numbers.
type NewExchangeRequest struct {
	GuestName           string      `json:"guest_name"`
	GuestEmail          string      `json:"guest_email,omitempty"`
	GuestPhone          string      `json:"guest_phone"`
	Whatsapp            string      `json:"whatsapp"`
	GuestIdentification string      `json:"guest_identification,omitempty"`
	FromCurrency        string      `json:"from_currency"`
	ToCurrency          string      `json:"to_currency"`
	BaseAmount          json.Number `json:"base_amount"`
	TargetAmount        json.Number `json:"target_amount"`
	ExchangeRate        json.Number `json:"exchange_rate"`
	PaymentMethod       string      `json:"payment_method"`
	Status              string      `json:"status"`
}

// UpdateRequestStatus is the body of a status change command.
type UpdateRequestStatus struct {
	ReferenceNumber string `json:"reference_number"`
	Status          string `json:"status"`
}
