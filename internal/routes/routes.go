package routes

import (
	"seniorwork_backend/internal/handlers"
	"seniorwork_backend/internal/metrics"
	"seniorwork_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter builds the gin engine with the full middleware chain and all
// API routes mounted under /api/v1.
func SetupRouter(db *gorm.DB, appHandlers *handlers.AppHandlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	httpMetrics := metrics.NewHTTPMetrics("seniorwork_backend")

	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(httpMetrics.Middleware())
	r.Use(middleware.DBMiddleware(db))

	// Operational endpoints live outside the versioned API.
	appHandlers.Health.RegisterRoutes(&r.RouterGroup)
	r.GET("/metrics", gin.WrapH(metrics.GetPrometheusHandler()))

	api := r.Group("/api/v1")
	appHandlers.RegisterAll(api)

	return r
}
