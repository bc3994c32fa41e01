package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/webcraftstudio/webcraft/internal/config"
	"github.com/webcraftstudio/webcraft/internal/db"
	"github.com/webcraftstudio/webcraft/internal/repository"
	"github.com/webcraftstudio/webcraft/internal/service"
	"github.com/webcraftstudio/webcraft/internal/site"
)

// Server represents the HTTP server
type Server struct {
	router     *gin.Engine
	cfg        *config.Config
	db         *db.Database
	httpServer *http.Server
}

// Repositories holds all repository instances
type Repositories struct {
	Lead repository.LeadRepository
}

// Services holds all service instances
type Services struct {
	Lead *service.LeadService
	CSRF service.CSRFService
}

// Option customizes a server before its routes are built
type Option func(*options)

type options struct {
	content     *site.Content
	telegramURL string
}

// WithContent renders pages from content instead of the bundled copy
func WithContent(c *site.Content) Option {
	return func(o *options) { o.content = c }
}

// WithTelegramAPI points lead forwarding at another Bot API base URL
func WithTelegramAPI(url string) Option {
	return func(o *options) { o.telegramURL = url }
}
