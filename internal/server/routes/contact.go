package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/webcraftstudio/webcraft/internal/api/handlers"
	"github.com/webcraftstudio/webcraft/internal/api/middleware"
)

// SetupContactRoutes configures contact form routes
func SetupContactRoutes(router *gin.RouterGroup, contact *handlers.ContactHandler, m *Middleware) {
	public := router.Group("/contact")
	{
		// Public endpoint with its own per-client rate limit (no auth required)
		public.POST("/submit",
			middleware.RateLimitMiddleware(m.ContactRate),
			m.Validation.ValidateContactRequest(),
			contact.Submit,
		)
	}
}
