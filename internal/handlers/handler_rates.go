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

type rateHandler struct {
	rateService portssvc.RateSvc
}

func newRateHandler(rs portssvc.RateSvc) *rateHandler {
	return &rateHandler{rateService: rs}
}

func registerRateRoutes(admin *gin.RouterGroup, rateService portssvc.RateSvc) {
	h := newRateHandler(rateService)

	rates := admin.Group("/rates")
	{
		rates.GET("", h.getRateBoard)
		rates.POST("", h.submitRates)
	}
}

// getRateBoard godoc
// @Summary Get the rate board
// @Description One row per non-base active currency, quoted against the base currency.
// @Tags admin
// @Produce json
// @Param refresh query bool false "Bypass the snapshot cache"
// @Success 200 {array} dto.RateResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/rates [get]
func (h *rateHandler) getRateBoard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	providerID, ok := middleware.GetProviderIDFromContext(c)
	if !ok {
		logger.Error("Provider ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	refresh, _ := strconv.ParseBool(c.Query("refresh"))

	board, err := h.rateService.GetRateBoard(c.Request.Context(), providerID, refresh)
	if err != nil {
		respondError(c, logger, err, "Failed to load rate board")
		return
	}
	c.JSON(http.StatusOK, dto.ToRateBoardResponse(board))
}

// submitRates godoc
// @Summary Submit today's rates
// @Description Only rows with a positive sell rate are sent upstream.
// @Tags admin
// @Accept json
// @Produce json
// @Param rates body dto.SubmitRatesRequest true "Rate rows"
// @Success 201 {object} dto.SubmitRatesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/rates [post]
func (h *rateHandler) submitRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	providerID, ok := middleware.GetProviderIDFromContext(c)
	if !ok {
		logger.Error("Provider ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SubmitRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	resp, err := h.rateService.SubmitRates(c.Request.Context(), providerID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to submit rates")
		return
	}

	logger.Info("Rates submitted", slog.Int("submitted", resp.Submitted))
	c.JSON(http.StatusCreated, resp)
}
