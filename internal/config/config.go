package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/webcraftstudio/webcraft/internal/contact"
	"github.com/webcraftstudio/webcraft/internal/logging"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development"`
	Port        string `env:"API_PORT" envDefault:"8080"`
	SiteName    string `env:"SITE_NAME" envDefault:"WebCraft"`
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`

	// Logging Configuration
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile       string `env:"LOG_FILE"`
	LogMaxSize    int    `env:"LOG_MAX_SIZE" envDefault:"100"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAge     int    `env:"LOG_MAX_AGE" envDefault:"7"`
	LogRequests   bool   `env:"LOG_REQUESTS" envDefault:"false"`

	// Database Configuration
	DatabaseURL string `env:"DATABASE_URL" envDefault:"sqlite://data/leads.db"`

	// Contact Form Configuration
	ContactVariant string        `env:"CONTACT_VARIANT" envDefault:"page"`
	SubmitDelay    time.Duration `env:"SUBMIT_DELAY" envDefault:"0s"`
	ContactRPS     int           `env:"CONTACT_RATE_RPS" envDefault:"1"`
	ContactBurst   int           `env:"CONTACT_RATE_BURST" envDefault:"5"`

	// LeadRetention deletes stored leads older than this; zero keeps them forever
	LeadRetention time.Duration `env:"LEAD_RETENTION" envDefault:"0s"`

	// Global rate limit
	RateLimitRPS   int `env:"RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst int `env:"RATE_LIMIT_BURST" envDefault:"20"`

	// CORS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// Telegram Configuration
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   string `env:"TELEGRAM_CHAT_ID"`

	// reCAPTCHA Configuration
	RecaptchaSecretKey string  `env:"RECAPTCHA_SECRET_KEY"`
	RecaptchaMinScore  float64 `env:"RECAPTCHA_MIN_SCORE" envDefault:"0.5"`

	// Operator access to stored leads; empty disables the admin API
	AdminToken string `env:"ADMIN_TOKEN"`

	// Telemetry Configuration
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"webcraft"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	envLocations := []string{
		"internal/config/env/.env.production",
		"internal/config/env/.env.development",
		".env",
	}

	// If ENV is set, try to load that specific file first
	envName := os.Getenv("ENV")
	if envName != "" {
		envLocations = append([]string{fmt.Sprintf("internal/config/env/.env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		// godotenv never overwrites variables that are already set
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	return Parse()
}

// Parse builds a Config from the current environment only
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.IsProduction() {
			cfg.LogFile = "/app/logs/webcraft.log"
		} else {
			cfg.LogFile = "./logs/webcraft.log"
		}
	}

	return cfg, nil
}

// Validate checks values env tags cannot express
func (c *Config) Validate() error {
	if _, err := contact.ParseVariant(c.ContactVariant); err != nil {
		return fmt.Errorf("invalid CONTACT_VARIANT: %w", err)
	}
	if c.SubmitDelay < 0 {
		return fmt.Errorf("SUBMIT_DELAY must not be negative")
	}
	if c.LeadRetention < 0 {
		return fmt.Errorf("LEAD_RETENTION must not be negative")
	}
	if c.ContactRPS <= 0 || c.RateLimitRPS <= 0 {
		return fmt.Errorf("rate limits must be positive")
	}
	return nil
}

// Variant returns the configured contact form variant
func (c *Config) Variant() contact.Variant {
	v, err := contact.ParseVariant(c.ContactVariant)
	if err != nil {
		return contact.VariantPage
	}
	return v
}

// IsProduction reports whether ENV is production
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// TelegramEnabled reports whether lead forwarding is configured
func (c *Config) TelegramEnabled() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != ""
}

// EnsureLogDir creates the directory holding LogFile
func (c *Config) EnsureLogDir() error {
	if err := os.MkdirAll(filepath.Dir(c.LogFile), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}

// LogConfig returns the logging settings
func (c *Config) LogConfig() *logging.Config {
	return &logging.Config{
		Level:       c.LogLevel,
		File:        c.LogFile,
		MaxSize:     c.LogMaxSize,
		MaxBackups:  c.LogMaxBackups,
		MaxAge:      c.LogMaxAge,
		LogRequests: c.LogRequests,
	}
}
