package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"launchdash/internal/config"
	"launchdash/internal/dataset"
	"launchdash/internal/logging"
	"launchdash/internal/metrics"
	"launchdash/internal/server"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the launch records dashboard",
		Long: `Serve loads the launch records once and starts the HTTP server.

Routes:
  /                     dashboard
  /charts               chart partial (htmx)
  /charts/pie.svg       success pie image
  /charts/scatter.svg   payload vs outcome image
  /api/v1/...           chart data as JSON
  /healthz, /readyz     probes
  /metrics              Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(os.Stdout, logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)
	slog.SetDefault(logger)

	dash, err := config.LoadDashboardConfig(cfg.ConfigFile)
	if err != nil {
		return err
	}

	ds, err := dataset.LoadFile(cfg.DataFile)
	if err != nil {
		logging.LogError(logger, "failed to load launch records", err, slog.String("file", cfg.DataFile))
		return fmt.Errorf("load launch records: %w", err)
	}

	bounds := ds.PayloadBounds()
	logger.Info("launch records loaded",
		slog.String("file", ds.Source()),
		slog.Int("records", ds.Len()),
		slog.Int("sites", len(ds.Sites())),
		slog.Float64("payload_min_kg", bounds.Min),
		slog.Float64("payload_max_kg", bounds.Max),
	)

	metrics.Init(ds)

	srv := server.New(cfg, dash, logger)
	srv.RegisterRoutes(ds)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	if err := srv.Shutdown(); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server exited")
	return nil
}
