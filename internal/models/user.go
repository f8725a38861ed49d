package models

import (
	"bytes"
	"encoding/json"
)

// FlexibleID accepts an identifier encoded either as a JSON string or a JSON number.
type FlexibleID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *FlexibleID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = FlexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = FlexibleID(n.String())
	return nil
}

// ProviderUser is the account returned by provider verification.
type ProviderUser struct {
	ID         int64      `json:"id"`
	ProviderID FlexibleID `json:"provider_id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
}

// VerifyProviderRequest is the body of a provider verification.
type VerifyProviderRequest struct {
	Email string `json:"email"`
}

// VerifyProviderResponse wraps the verified account.
type VerifyProviderResponse struct {
	User *ProviderUser `json:"user"`
}
