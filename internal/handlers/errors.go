package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/exchange_desk/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// ConfigurationMessage is shown when the provider's currencies cannot price a pair.
const ConfigurationMessage = "please configure active currencies"

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// respondError maps service errors to HTTP responses. failMsg is used for unexpected errors.
func respondError(c *gin.Context, logger *slog.Logger, err error, failMsg string) {
	if fields, ok := apperrors.AsFieldErrors(err); ok {
		logger.Info("Request failed validation", slog.Any("fields", fields.Fields()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Please fill in the required fields", Fields: fields})
		return
	}

	var appErr *apperrors.AppError
	switch {
	case apperrors.IsConfigurationError(err):
		logger.Warn("Currency configuration prevents pricing", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: ConfigurationMessage})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Info("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Info("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		logger.Info("Unauthorized", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, apperrors.ErrNetwork):
		logger.Error("Upstream exchange API failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "The exchange service is unavailable. Please try again."})
	case errors.As(err, &appErr):
		logger.Error(failMsg, slog.String("error", err.Error()))
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
	default:
		logger.Error(failMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: failMsg})
	}
}

// bindError answers a request whose body or query could not be bound.
func bindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
}
