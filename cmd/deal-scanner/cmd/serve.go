package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/deal-scanner/internal/api"
	"github.com/donaldgifford/deal-scanner/internal/api/handlers"
	"github.com/donaldgifford/deal-scanner/internal/config"
	"github.com/donaldgifford/deal-scanner/internal/engine"
	"github.com/donaldgifford/deal-scanner/internal/telemetry"
	"github.com/donaldgifford/deal-scanner/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the scanner, Discord bot and API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the dotenv file and the YAML config. A missing token
// gets a dedicated diagnostic on stderr.
func loadConfig() (*config.Config, error) {
	if err := config.LoadDotEnv(envFile); err != nil {
		return nil, err
	}

	cfg, err := config.Load(cfgFile)
	if errors.Is(err, config.ErrMissingToken) {
		fmt.Fprintln(os.Stderr, "deal-scanner: no Discord bot token configured.")
		fmt.Fprintln(os.Stderr, "Set DISCORD_TOKEN in the environment or in "+envFile+",")
		fmt.Fprintln(os.Stderr, "or select notifications.sink: webhook or noop.")
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func runServe(_ *cobra.Command, _ []string) error {
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

	sched, err := engine.NewScheduler(a.engine, a.stores.seen, engine.SchedulerConfig{
		ScanInterval:  cfg.Schedule.ScanInterval,
		RunOnStart:    cfg.Schedule.RunOnStart,
		SeenTTL:       cfg.Dedup.TTL,
		PruneInterval: cfg.Dedup.PruneInterval,
	}, log)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	sched.Start()

	var (
		wg     sync.WaitGroup
		errMu  sync.Mutex
		runErr error
	)
	fail := func(err error) {
		errMu.Lock()
		runErr = errors.Join(runErr, err)
		errMu.Unlock()
		stop()
	}

	if a.discordBot != nil {
		wg.Go(func() {
			if err := a.discordBot.Run(ctx); err != nil {
				log.Error("discord bot failed", "error", err)
				fail(err)
			}
		})
	} else {
		log.Warn("no discord token configured, slash commands disabled")
	}

	var srv *http.Server
	if cfg.Server.IsEnabled() {
		e := api.NewRouter(api.Deps{
			Store:         a.stores,
			Registry:      a.stores.registry,
			Stats:         a.engine,
			Scanner:       a.engine,
			Logger:        log,
			SearchOptions: []handlers.SearchHandlerOption{handlers.WithSearchPolicy(a.policy)},
		})
		srv = &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:      e,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		}
		log.Info("starting server", "addr", srv.Addr)

		wg.Go(func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("server error", "error", err)
				fail(err)
			}
		})
	}

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	select {
	case <-sched.Stop().Done():
	case <-shutdownCtx.Done():
		log.Warn("scan cycle still running at shutdown deadline")
	}

	if srv != nil {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			fail(fmt.Errorf("shutting down server: %w", err))
		}
	}

	wg.Wait()
	log.Info("server stopped")
	return runErr
}

func flushTraces(shutdown telemetry.ShutdownFunc, log *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		log.Warn("flushing traces failed", "error", err)
	}
}
