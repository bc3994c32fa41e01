package server

import (
	"context"
	"fmt"

	"github.com/webcraftstudio/webcraft/internal/config"
	"github.com/webcraftstudio/webcraft/internal/db"
	"github.com/webcraftstudio/webcraft/internal/logging"
	"github.com/webcraftstudio/webcraft/internal/repository"
	"github.com/webcraftstudio/webcraft/internal/tasks"
	"github.com/webcraftstudio/webcraft/internal/telemetry"
)

// Run opens the lead store, starts tracing and serves until ctx is done.
// Logging must already be configured.
func Run(ctx context.Context, cfg *config.Config) error {
	logger := logging.GetLogger()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint:    cfg.OTLPEndpoint,
		ServiceName: cfg.ServiceName,
		Environment: cfg.Environment,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("Failed to flush traces: %v", err)
		}
	}()

	database, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()
	logger.Info("Lead store ready (%s)", database.Dialect)

	if cfg.LeadRetention > 0 {
		retention := tasks.NewLeadRetention(repository.NewLeadRepository(database), cfg.LeadRetention, tasks.DefaultRetentionInterval)
		retention.Start()
		defer retention.Stop()
	}

	srv, err := NewServer(cfg, database)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start(ctx)
}
