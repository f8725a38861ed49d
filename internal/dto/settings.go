package dto

// LanguageRequest sets the provider's display language.
type LanguageRequest struct {
	Language string `json:"language" binding:"required"`
}

// LanguageResponse is the provider's display language.
type LanguageResponse struct {
	Language string `json:"language"`
}
