package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/exchange_desk/internal/core/ports/services"
	"github.com/SscSPs/exchange_desk/internal/dto"
	"github.com/SscSPs/exchange_desk/internal/middleware"
	"github.com/SscSPs/exchange_desk/internal/platform/config"
	"github.com/gin-gonic/gin"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
)

// AuthHandler handles the provider sign-in flow.
type AuthHandler struct {
	authService portssvc.AuthSvc
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AuthSvc) *AuthHandler {
	return &AuthHandler{
		authService: as,
	}
}

// registerAuthRoutes sets up the sign-in routes. Both steps share a stricter per-IP limit.
func registerAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, authService portssvc.AuthSvc) error {
	h := NewAuthHandler(authService)

	ipLimiter, err := middleware.NewIPLimiter(cfg.AuthRateLimit)
	if err != nil {
		return fmt.Errorf("invalid auth rate limit: %w", err)
	}

	auth := rg.Group("/auth", limitergin.NewMiddleware(ipLimiter))
	{
		auth.POST("/verify", h.VerifyProvider)
		auth.POST("/otp", h.VerifyOTP)
	}
	return nil
}

// VerifyProvider godoc
// @Summary Start provider sign-in
// @Description Verifies the provider and email, then issues a one-time code challenge.
// @Tags auth
// @Accept json
// @Produce json
// @Param verify body dto.VerifyProviderRequest true "Provider and email"
// @Success 200 {object} dto.ChallengeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /auth/verify [post]
func (h *AuthHandler) VerifyProvider(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.VerifyProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	challenge, err := h.authService.StartSignIn(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to verify provider")
		return
	}

	logger.Info("Sign-in challenge issued", slog.String("provider_id", req.ProviderID))
	c.JSON(http.StatusOK, challenge)
}

// VerifyOTP godoc
// @Summary Complete provider sign-in
// @Description Checks the one-time code and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param otp body dto.VerifyOTPRequest true "Challenge and code"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/otp [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	session, err := h.authService.CompleteSignIn(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to complete sign-in")
		return
	}

	logger.Info("Provider signed in", slog.String("provider_id", session.User.ProviderID))
	c.JSON(http.StatusOK, session)
}
