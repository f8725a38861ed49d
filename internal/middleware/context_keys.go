package middleware

import "github.com/gin-gonic/gin"

// providerIDKey is the key used to store the authenticated provider's ID in the Gin context.
const providerIDKey = contextKey("providerID")

// GetProviderIDFromContext retrieves the authenticated provider ID from the Gin context.
// It returns the provider ID and a boolean indicating if it was found.
func GetProviderIDFromContext(c *gin.Context) (string, bool) {
	providerIDVal, exists := c.Get(string(providerIDKey))
	if !exists {
		// check in the request context as well
		if v, ok := c.Request.Context().Value(providerIDKey).(string); ok && v != "" {
			return v, true
		}
		return "", false
	}

	providerID, ok := providerIDVal.(string)
	if !ok || providerID == "" {
		return "", false
	}

	return providerID, true
}
