package routes

import (
	"github.com/webcraftstudio/webcraft/internal/api/handlers"
	"github.com/webcraftstudio/webcraft/internal/api/middleware"
	"github.com/webcraftstudio/webcraft/internal/service"
)

// Handlers contains all the route handlers
type Handlers struct {
	Pages   *handlers.PagesHandler
	Contact *handlers.ContactHandler
	Health  *handlers.HealthHandler
	Admin   *handlers.AdminHandler
}

// Middleware contains all the middleware
type Middleware struct {
	Validation    *middleware.ValidationMiddleware
	Admin         *middleware.AdminMiddleware
	CSRF          service.CSRFService
	SecureCookies bool
	ContactRate   middleware.RateLimitConfig
}

// GlobalConfig tunes the middleware applied to every route
type GlobalConfig struct {
	Development    bool
	AllowedOrigins []string
	RateLimit      middleware.RateLimitConfig
}
