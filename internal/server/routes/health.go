package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/webcraftstudio/webcraft/internal/api/handlers"
)

// SetupHealthRoutes configures health check and version endpoints
func SetupHealthRoutes(router *gin.Engine, v1 *gin.RouterGroup, health *handlers.HealthHandler) {
	router.GET("/health", health.Check)
	v1.GET("/version", health.Version)
}
