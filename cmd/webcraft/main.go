package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/webcraftstudio/webcraft/internal/config"
	"github.com/webcraftstudio/webcraft/internal/logging"
	"github.com/webcraftstudio/webcraft/internal/server"
)

var rootCmd = &cobra.Command{
	Use:   "webcraft",
	Short: "WebCraft site server and operator tools",
	Long: `WebCraft serves the agency website and its contact endpoint, and lets
operators send test enquiries and read stored leads.`,
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the website",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Port = port
		}

		logging.Configure(cfg.LogConfig())
		logger := logging.GetLogger()
		defer logger.Close()

		return server.Run(cmd.Context(), cfg)
	},
}

// loadConfig reads configuration for the operator commands and keeps their
// logs on stderr so stdout stays clean for results
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logging.SetLogger(logging.NewWriterLogger(os.Stderr, cfg.LogLevel))
	return cfg, nil
}

func init() {
	serveCmd.Flags().String("port", "", "Port to listen on (overrides API_PORT)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(contactCmd)
	rootCmd.AddCommand(leadsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
