package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/webcraftstudio/webcraft/internal/api/handlers"
	"github.com/webcraftstudio/webcraft/internal/api/middleware"
)

// SetupPageRoutes configures the server-rendered site
func SetupPageRoutes(router *gin.Engine, pages *handlers.PagesHandler, m *Middleware) {
	site := router.Group("/")
	site.Use(middleware.IssueCSRFToken(m.CSRF, m.SecureCookies))
	{
		site.GET("/", pages.Home)
		site.GET("/about", pages.About)
		site.GET("/services", pages.Services)
		site.GET("/portfolio", pages.Portfolio)
		site.GET("/contact", pages.Contact)
		site.POST("/contact",
			middleware.CSRFMiddleware(m.CSRF),
			middleware.RateLimitMiddleware(m.ContactRate),
			pages.SubmitContact,
		)
	}

	router.NoRoute(middleware.IssueCSRFToken(m.CSRF, m.SecureCookies), pages.NotFound)
}
