package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/exchange_desk/internal/core/ports/services"
	"github.com/SscSPs/exchange_desk/internal/dto"
	"github.com/SscSPs/exchange_desk/internal/middleware"
	"github.com/gin-gonic/gin"
)

type requestHandler struct {
	requestService portssvc.RequestSvc
}

func newRequestHandler(rs portssvc.RequestSvc) *requestHandler {
	return &requestHandler{requestService: rs}
}

func registerRequestRoutes(admin *gin.RouterGroup, requestService portssvc.RequestSvc) {
	h := newRequestHandler(requestService)

	requests := admin.Group("/requests")
	{
		requests.GET("", h.listRequests)
		requests.PUT("/:referenceNumber/status", h.updateStatus)
	}
}

// listRequests godoc
// @Summary List exchange requests
// @Description One page of the provider's requests, filtered and ordered by tab.
// @Tags admin
// @Produce json
// @Param tab query string false "recent, pending, completed, biggest_sell or biggest_buy"
// @Param pageToken query string false "Token from a previous page"
// @Param lang query string false "Display language (ar or en)"
// @Param refresh query bool false "Bypass the snapshot cache"
// @Success 200 {object} dto.ListRequestsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/requests [get]
func (h *requestHandler) listRequests(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	providerID, ok := middleware.GetProviderIDFromContext(c)
	if !ok {
		logger.Error("Provider ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListRequestsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	resp, err := h.requestService.ListRequests(c.Request.Context(), providerID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list requests")
		return
	}

	logger.Debug("Requests listed", slog.String("tab", resp.Tab), slog.Int("count", len(resp.Requests)))
	c.JSON(http.StatusOK, resp)
}

// updateStatus godoc
// @Summary Change a request's status
// @Tags admin
// @Accept json
// @Produce json
// @Param referenceNumber path string true "Request reference number"
// @Param status body dto.UpdateStatusRequest true "New status"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/requests/{referenceNumber}/status [put]
func (h *requestHandler) updateStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	providerID, ok := middleware.GetProviderIDFromContext(c)
	if !ok {
		logger.Error("Provider ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	reference := c.Param("referenceNumber")
	if err := h.requestService.UpdateStatus(c.Request.Context(), providerID, reference, req.Status); err != nil {
		respondError(c, logger, err, "Failed to update request status")
		return
	}

	logger.Info("Request status updated", slog.String("reference_number", reference), slog.String("status", req.Status))
	c.Status(http.StatusNoContent)
}
