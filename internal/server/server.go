package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/webcraftstudio/webcraft/internal/api/handlers"
	"github.com/webcraftstudio/webcraft/internal/api/middleware"
	"github.com/webcraftstudio/webcraft/internal/config"
	"github.com/webcraftstudio/webcraft/internal/db"
	"github.com/webcraftstudio/webcraft/internal/logging"
	"github.com/webcraftstudio/webcraft/internal/repository"
	"github.com/webcraftstudio/webcraft/internal/server/routes"
	"github.com/webcraftstudio/webcraft/internal/service"
	"github.com/webcraftstudio/webcraft/internal/site"
	"github.com/webcraftstudio/webcraft/internal/web"
)

const shutdownTimeout = 10 * time.Second

// NewServer creates a new server instance with every route registered
func NewServer(cfg *config.Config, database *db.Database, opts ...Option) (*Server, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.content == nil {
		o.content = site.Default()
	}

	// Set release mode for production
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	// Create a new engine without default middleware
	router := gin.New()

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	// Create repositories
	repos := Repositories{
		Lead: repository.NewLeadRepository(database),
	}

	// Create services
	leadOpts := []service.LeadServiceOption{}
	if cfg.TelegramEnabled() {
		leadOpts = append(leadOpts, service.WithTelegram(
			service.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramChatID, o.telegramURL),
		))
	}
	if cfg.RecaptchaSecretKey != "" {
		leadOpts = append(leadOpts, service.WithRecaptcha(
			service.NewRecaptchaService(cfg.RecaptchaSecretKey, ""),
			cfg.RecaptchaMinScore,
		))
	}
	services := Services{
		Lead: service.NewLeadService(repos.Lead, cfg.Variant(), leadOpts...),
		CSRF: service.NewCSRFService(),
	}

	logger := logging.GetLogger()
	if cfg.OTLPEndpoint != "" {
		router.Use(otelgin.Middleware(cfg.ServiceName))
	}
	routes.SetupGlobalMiddleware(router, logger, routes.GlobalConfig{
		Development:    !cfg.IsProduction(),
		AllowedOrigins: cfg.AllowedOrigins,
		RateLimit: middleware.RateLimitConfig{
			RPS:       cfg.RateLimitRPS,
			Burst:     cfg.RateLimitBurst,
			PerClient: true,
		},
	})

	routes.Setup(router, &routes.Handlers{
		Pages:   handlers.NewPagesHandler(o.content, services.Lead),
		Contact: handlers.NewContactHandler(services.Lead),
		Health:  handlers.NewHealthHandler(database),
		Admin:   handlers.NewAdminHandler(services.Lead),
	}, &routes.Middleware{
		Validation:    middleware.NewValidationMiddleware(cfg.Variant()),
		Admin:         middleware.NewAdminMiddleware(cfg.AdminToken),
		CSRF:          services.CSRF,
		SecureCookies: cfg.IsProduction(),
		ContactRate: middleware.RateLimitConfig{
			RPS:       cfg.ContactRPS,
			Burst:     cfg.ContactBurst,
			PerClient: true,
		},
	})

	return &Server{
		router: router,
		cfg:    cfg,
		db:     database,
	}, nil
}

// Handler returns the root handler, trailing slashes already stripped
func (s *Server) Handler() http.Handler {
	return stripTrailingSlash(s.router)
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	logger := logging.GetLogger()

	s.httpServer = &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting %s on :%s (%s)", s.cfg.SiteName, s.cfg.Port, s.cfg.Environment)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}

// stripTrailingSlash removes the need for strict trailing slash matching.
// It runs before routing so "/about/" reaches the "/about" route.
func stripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if path := r.URL.Path; path != "/" && strings.HasSuffix(path, "/") {
			r.URL.Path = strings.TrimRight(path, "/")
			if r.URL.Path == "" {
				r.URL.Path = "/"
			}
			r.URL.RawPath = ""
		}
		next.ServeHTTP(w, r)
	})
}
