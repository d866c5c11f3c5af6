package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/deal-scanner/internal/metrics"
	"github.com/donaldgifford/deal-scanner/internal/store"
)

// SchedulerConfig holds the cron intervals.
type SchedulerConfig struct {
	ScanInterval time.Duration
	RunOnStart   bool
	// SeenTTL of zero keeps seen keys forever and disables pruning.
	SeenTTL       time.Duration
	PruneInterval time.Duration
}

// Scheduler manages periodic scan cycles and seen-key pruning.
type Scheduler struct {
	cron       *cron.Cron
	engine     *Engine
	seen       store.SeenStore
	cfg        SchedulerConfig
	log        *slog.Logger
	ctx        context.Context
	cancel     context.CancelFunc
	runOnStart bool
	wg         sync.WaitGroup
}

// NewScheduler creates a Scheduler. Overlapping scan runs are skipped rather
// than queued.
func NewScheduler(
	eng *Engine,
	seen store.SeenStore,
	cfg SchedulerConfig,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New(cron.WithChain(
		cron.Recover(cronLogger{log}),
		cron.SkipIfStillRunning(cronLogger{log}),
	))

	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		cron:       c,
		engine:     eng,
		seen:       seen,
		cfg:        cfg,
		log:        log,
		ctx:        ctx,
		cancel:     cancel,
		runOnStart: cfg.RunOnStart,
	}

	if _, err := c.AddFunc("@every "+cfg.ScanInterval.String(), s.runCycle); err != nil {
		cancel()
		return nil, err
	}

	if cfg.SeenTTL > 0 && cfg.PruneInterval > 0 {
		if _, err := c.AddFunc("@every "+cfg.PruneInterval.String(), s.runPrune); err != nil {
			cancel()
			return nil, err
		}
	}

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started", "scan_interval", s.cfg.ScanInterval)
	s.cron.Start()
	if s.runOnStart {
		s.wg.Go(s.runCycle)
	}
}

// Stop cancels in-flight pacing and returns a context that is done once
// running jobs have returned.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	s.cancel()
	cronDone := s.cron.Stop()

	ctx, done := context.WithCancel(context.Background())
	go func() {
		<-cronDone.Done()
		s.wg.Wait()
		done()
	}()
	return ctx
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runCycle() {
	if _, err := s.engine.RunCycle(s.ctx); err != nil {
		if s.ctx.Err() != nil {
			s.log.Info("scan cycle interrupted by shutdown")
			return
		}
		s.log.Error("scheduled scan failed", "error", err)
	}
}

func (s *Scheduler) runPrune() {
	cutoff := time.Now().Add(-s.cfg.SeenTTL)
	n, err := s.seen.PruneSeen(s.ctx, cutoff)
	if err != nil {
		metrics.SeenStoreErrorsTotal.WithLabelValues("prune").Inc()
		s.log.Error("pruning seen items failed", "error", err)
		return
	}
	metrics.SeenPrunedTotal.Add(float64(n))
	s.log.Info("pruned seen items", "removed", n, "older_than", cutoff)
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
