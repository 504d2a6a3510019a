package handlers

import (
	"github.com/BDF-Tech/BDF-Mobile/cmd/docs"
	portssvc "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/services"
	"github.com/BDF-Tech/BDF-Mobile/internal/middleware"
	"github.com/BDF-Tech/BDF-Mobile/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/", getHome)
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public routes: login and the device ingestion endpoint
	registerAuthRoutes(r, cfg, services.Auth)
	registerScaleRoutes(r, services.Scale)

	// Authenticated API surface
	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerCatalogRoutes(v1, services.Catalog, services.CustomerResolver)
	registerOrderRoutes(v1, services.Order, services.CustomerResolver)
	registerInvoiceRoutes(v1, services.Invoice, services.CustomerResolver)
	registerLedgerRoutes(v1, services.Ledger, services.CustomerResolver)
	registerProfileRoutes(v1, services.Profile)
	registerStockRoutes(v1, services.Stock)
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
