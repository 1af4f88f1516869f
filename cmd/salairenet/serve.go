package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rgehrsitz/salairenet/internal/calculation"
	"github.com/rgehrsitz/salairenet/internal/config"
	"github.com/rgehrsitz/salairenet/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculator over HTTP",
	Long: `Serve the JSON API. Settings come from the environment:
  SALAIRENET_ADDR, SALAIRENET_ENV, SALAIRENET_MAX_BODY_BYTES,
  SALAIRENET_READ_HEADER_TIMEOUT, SALAIRENET_SHUTDOWN_TIMEOUT, SALAIRENET_DEBUG`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := config.LoadServerSettings()
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			settings.Addr = addr
		}

		level := slog.LevelInfo
		if settings.Debug {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.New(settings, calculation.NewSalaryEngine(), logger).Run(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides SALAIRENET_ADDR)")
}
