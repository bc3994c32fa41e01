package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/webcraftstudio/webcraft/internal/api/middleware"
	"github.com/webcraftstudio/webcraft/internal/logging"
	"github.com/webcraftstudio/webcraft/internal/web"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware) {
	logger := logging.GetLogger()

	// Create base API v1 group
	v1 := router.Group("/api/v1")

	// Health and build info (no auth required)
	SetupHealthRoutes(router, v1, h.Health)

	// Contact routes (public)
	SetupContactRoutes(v1, h.Contact, m)

	// Admin routes (admin token required)
	SetupAdminRoutes(v1, h.Admin, m)

	// Server-rendered pages
	SetupPageRoutes(router, h.Pages, m)

	logger.Info("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, logger *logging.Logger, cfg GlobalConfig) {
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(cfg.Development, cfg.AllowedOrigins))
	router.Use(middleware.SecurityHeaders(!cfg.Development))
	router.Use(middleware.PreserveRequestBody(middleware.DefaultMaxBodySize))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit))

	router.StaticFS("/static", http.FS(web.StaticFS()))
}
