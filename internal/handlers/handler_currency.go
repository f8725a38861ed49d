package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/exchange_desk/internal/core/ports/services"
	"github.com/SscSPs/exchange_desk/internal/dto"
	"github.com/SscSPs/exchange_desk/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers the guest-facing currency routes under /providers/:providerID.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	provider := rg.Group("/providers/:providerID")
	{
		provider.GET("/currencies", h.listActiveCurrencies)
		provider.GET("/currencies/:code/targets", h.listTargets)
		provider.GET("/quote", h.quote)
	}
}

// registerCurrencyAdminRoutes registers the provider's catalog routes.
func registerCurrencyAdminRoutes(admin *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	admin.GET("/catalog", h.listCatalog)
	admin.PUT("/currencies/:currencyID/activation", h.setActivation)
}

// listActiveCurrencies godoc
// @Summary List a provider's active currencies
// @Description Active currencies with their buy and sell rates. refresh=true bypasses the snapshot cache.
// @Tags currencies
// @Produce json
// @Param providerID path string true "Provider ID"
// @Param refresh query bool false "Bypass the snapshot cache"
// @Success 200 {array} dto.CurrencyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /providers/{providerID}/currencies [get]
func (h *currencyHandler) listActiveCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	providerID := c.Param("providerID")
	refresh, _ := strconv.ParseBool(c.Query("refresh"))

	currencies, err := h.currencyService.ListActiveCurrencies(c.Request.Context(), providerID, refresh)
	if err != nil {
		respondError(c, logger, err, "Failed to list currencies")
		return
	}

	logger.Info("Currencies listed successfully", slog.Int("count", len(currencies)))
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// listTargets godoc
// @Summary List counterpart currencies
// @Description Currencies that can be exchanged against the given one.
// @Tags currencies
// @Produce json
// @Param providerID path string true "Provider ID"
// @Param code path string true "Currency code"
// @Success 200 {array} dto.CurrencyResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /providers/{providerID}/currencies/{code}/targets [get]
func (h *currencyHandler) listTargets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	targets, err := h.currencyService.ListTargets(c.Request.Context(), c.Param("providerID"), c.Param("code"))
	if err != nil {
		respondError(c, logger, err, "Failed to list target currencies")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(targets))
}

// quote godoc
// @Summary Price an exchange
// @Description Converts an amount between the base currency and another active currency.
// @Tags currencies
// @Produce json
// @Param providerID path string true "Provider ID"
// @Param from query string true "Source currency code"
// @Param to query string true "Target currency code"
// @Param amount query string false "Source amount"
// @Success 200 {object} dto.PairResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /providers/{providerID}/quote [get]
func (h *currencyHandler) quote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.QuoteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	pair, err := h.currencyService.Quote(c.Request.Context(), c.Param("providerID"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to price exchange")
		return
	}
	c.JSON(http.StatusOK, dto.ToPairResponse(*pair))
}

// listCatalog godoc
// @Summary List the currency catalog
// @Description Every currency the exchange service knows, for activation.
// @Tags admin
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/catalog [get]
func (h *currencyHandler) listCatalog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCatalog(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list currency catalog")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// setActivation godoc
// @Summary Activate or deactivate a currency
// @Tags admin
// @Accept json
// @Produce json
// @Param currencyID path int true "Currency ID"
// @Param activation body dto.ActivationRequest true "Activation"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/currencies/{currencyID}/activation [put]
func (h *currencyHandler) setActivation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	providerID, ok := middleware.GetProviderIDFromContext(c)
	if !ok {
		logger.Error("Provider ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	currencyID, err := strconv.ParseInt(c.Param("currencyID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Currency ID must be a number"})
		return
	}
	var req dto.ActivationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	if err := h.currencyService.SetActivation(c.Request.Context(), providerID, currencyID, *req.IsActive); err != nil {
		respondError(c, logger, err, "Failed to change currency activation")
		return
	}
	c.Status(http.StatusNoContent)
}
