package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/exchange_desk/internal/core/ports/services"
	"github.com/SscSPs/exchange_desk/internal/dto"
	"github.com/SscSPs/exchange_desk/internal/middleware"
	"github.com/gin-gonic/gin"
)

type settingsHandler struct {
	settingsService portssvc.SettingsSvc
}

func registerSettingsRoutes(admin *gin.RouterGroup, settingsService portssvc.SettingsSvc) {
	h := &settingsHandler{settingsService: settingsService}

	admin.GET("/settings/language", h.getLanguage)
	admin.PUT("/settings/language", h.setLanguage)
}

// getLanguage godoc
// @Summary Get the display language
// @Tags admin
// @Produce json
// @Success 200 {object} dto.LanguageResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/settings/language [get]
func (h *settingsHandler) getLanguage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	providerID, ok := middleware.GetProviderIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	lang, err := h.settingsService.GetLanguage(c.Request.Context(), providerID)
	if err != nil {
		respondError(c, logger, err, "Failed to load language")
		return
	}
	c.JSON(http.StatusOK, dto.LanguageResponse{Language: lang})
}

// setLanguage godoc
// @Summary Set the display language
// @Tags admin
// @Accept json
// @Produce json
// @Param language body dto.LanguageRequest true "Language (ar or en)"
// @Success 200 {object} dto.LanguageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/settings/language [put]
func (h *settingsHandler) setLanguage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	providerID, ok := middleware.GetProviderIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.LanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	lang, err := h.settingsService.SetLanguage(c.Request.Context(), providerID, req.Language)
	if err != nil {
		respondError(c, logger, err, "Failed to save language")
		return
	}
	c.JSON(http.StatusOK, dto.LanguageResponse{Language: lang})
}
