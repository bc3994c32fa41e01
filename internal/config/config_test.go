package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webcraftstudio/webcraft/internal/contact"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("LOG_FILE", "")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite://data/leads.db", cfg.DatabaseURL)
	assert.Equal(t, contact.VariantPage, cfg.Variant())
	assert.Equal(t, time.Duration(0), cfg.SubmitDelay)
	assert.Equal(t, "./logs/webcraft.log", cfg.LogFile)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.TelegramEnabled())
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("API_PORT", "9090")
	t.Setenv("CONTACT_VARIANT", "standalone")
	t.Setenv("SUBMIT_DELAY", "1500ms")
	t.Setenv("ALLOWED_ORIGINS", "https://webcraft.com,https://www.webcraft.com")
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("TELEGRAM_CHAT_ID", "42")
	t.Setenv("LOG_FILE", "")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, contact.VariantStandalone, cfg.Variant())
	assert.Equal(t, 1500*time.Millisecond, cfg.SubmitDelay)
	assert.Equal(t, []string{"https://webcraft.com", "https://www.webcraft.com"}, cfg.AllowedOrigins)
	assert.True(t, cfg.TelegramEnabled())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "/app/logs/webcraft.log", cfg.LogFile)
}

func TestParseRejectsUnknownVariant(t *testing.T) {
	t.Setenv("CONTACT_VARIANT", "popup")
	_, err := Parse()
	assert.Error(t, err)
}

func TestParseRejectsNegativeRetention(t *testing.T) {
	t.Setenv("LEAD_RETENTION", "-1h")
	_, err := Parse()
	assert.Error(t, err)
}

func TestLogConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FILE", "/tmp/webcraft.log")
	t.Setenv("LOG_REQUESTS", "true")
	t.Setenv("ADMIN_TOKEN", "s3cret")

	cfg, err := Parse()
	require.NoError(t, err)

	lc := cfg.LogConfig()
	assert.Equal(t, "debug", lc.Level)
	assert.Equal(t, "/tmp/webcraft.log", lc.File)
	assert.True(t, lc.LogRequests)
	assert.Equal(t, 100, lc.MaxSize)
	assert.Equal(t, "s3cret", cfg.AdminToken)
	assert.NoError(t, lc.Validate())
}
