package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/webcraftstudio/webcraft/internal/config"
	"github.com/webcraftstudio/webcraft/internal/logging"
	"github.com/webcraftstudio/webcraft/internal/server"
	"github.com/webcraftstudio/webcraft/internal/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Configure and get logger
	logging.Configure(cfg.LogConfig())
	logger := logging.GetLogger()
	defer logger.Close()

	logger.Info("Starting server %s in %s mode", version.Info(), cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg); err != nil {
		logger.Error("Server exited: %v", err)
		os.Exit(1)
	}
}
