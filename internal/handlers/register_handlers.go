package handlers

import (
	"github.com/SscSPs/exchange_desk/cmd/docs"
	portssvc "github.com/SscSPs/exchange_desk/internal/core/ports/services"
	"github.com/SscSPs/exchange_desk/internal/middleware"
	"github.com/SscSPs/exchange_desk/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// It fails when a route group cannot be configured.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	registerHomeRoutes(r)

	v1 := r.Group("/api/v1")

	// Guest routes: provider pages, the request wizard and sign-in
	registerCurrencyRoutes(v1, services.Currency)
	registerDraftRoutes(v1, services.Draft)
	if err := registerAuthRoutes(v1, cfg, services.Auth); err != nil {
		return err
	}

	setupAdminRoutes(v1, cfg, services)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAdminRoutes configures the provider dashboard routes behind the session middleware.
func setupAdminRoutes(
	v1 *gin.RouterGroup,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	admin := v1.Group("/admin", middleware.AuthMiddleware(cfg.JWTSecret))

	registerCurrencyAdminRoutes(admin, services.Currency)
	registerRateRoutes(admin, services.Rate)
	registerRequestRoutes(admin, services.Request)
	registerSettingsRoutes(admin, services.Settings)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
