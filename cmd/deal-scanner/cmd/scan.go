package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/deal-scanner/internal/telemetry"
	"github.com/donaldgifford/deal-scanner/pkg/logger"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run a single scan cycle and exit",
	Long: "Run one scan cycle over every saved search in the configured store and\n" +
		"deliver the deals found, without starting the scheduler, bot or API server.\n" +
		"Useful with a durable storage backend and an external scheduler.",
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, &cfg.Tracing, Version, log)
	if err != nil {
		return err
	}
	defer flushTraces(shutdownTracing, log)

	a, err := buildApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.close()

	report, err := a.engine.RunCycle(ctx)
	if err != nil {
		return fmt.Errorf("running scan cycle: %w", err)
	}
	if report == nil {
		log.Info("no searches registered")
		return nil
	}

	log.Info("scan complete",
		"searches", report.Searches,
		"evaluated", report.Evaluated,
		"deals", report.Deals,
		"delivered", report.Delivered,
		"duration", report.Duration,
	)
	return nil
}
