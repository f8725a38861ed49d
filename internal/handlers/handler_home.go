package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthResponse is returned by the health check.
type HealthResponse struct {
	Status string `json:"status"`
}

func registerHomeRoutes(r *gin.Engine) {
	r.GET("/health", getHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// getHealth godoc
// @Summary Health check
// @Tags home
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "OK"})
}
