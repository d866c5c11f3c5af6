// Package engine runs scan cycles: it walks the saved searches, fetches the
// newest listings, applies the profit rule and dispatches deals.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/deal-scanner/internal/metrics"
	"github.com/donaldgifford/deal-scanner/internal/notify"
	"github.com/donaldgifford/deal-scanner/internal/store"
	"github.com/donaldgifford/deal-scanner/internal/vinted"
	"github.com/donaldgifford/deal-scanner/pkg/profit"
	domain "github.com/donaldgifford/deal-scanner/pkg/types"
)

const (
	defaultMaxCandidates = 3
	defaultItemPacing    = time.Second
	defaultSearchPacing  = 2 * time.Second
)

// CycleReport summarizes one completed cycle.
type CycleReport struct {
	Scan      int64         `json:"scan"`
	Searches  int           `json:"searches"`
	Evaluated int           `json:"evaluated"`
	Deals     int           `json:"deals"`
	Delivered int           `json:"delivered"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
}

// Engine orchestrates fetching, evaluation and delivery.
type Engine struct {
	registry   store.SearchRegistry
	seen       store.SeenStore
	source     vinted.ListingSource
	evaluator  *profit.Evaluator
	dispatcher *Dispatcher
	log        *slog.Logger
	tracer     trace.Tracer

	maxCandidates int
	itemPacing    time.Duration
	searchPacing  time.Duration
	sleep         func(ctx context.Context, d time.Duration) error

	cycleMu sync.Mutex
	scans   atomic.Int64

	lastMu sync.RWMutex
	last   *CycleReport
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithEvaluator replaces the default profit evaluator.
func WithEvaluator(ev *profit.Evaluator) EngineOption {
	return func(e *Engine) {
		e.evaluator = ev
	}
}

// WithMaxCandidates caps how many listings per search are evaluated.
func WithMaxCandidates(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.maxCandidates = n
		}
	}
}

// WithPacing sets the pause after each dispatched deal and between searches.
func WithPacing(item, search time.Duration) EngineOption {
	return func(e *Engine) {
		e.itemPacing = item
		e.searchPacing = search
	}
}

// WithSleepFunc overrides the pacing implementation for testing.
func WithSleepFunc(f func(ctx context.Context, d time.Duration) error) EngineOption {
	return func(e *Engine) {
		e.sleep = f
	}
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	registry store.SearchRegistry,
	seen store.SeenStore,
	source vinted.ListingSource,
	sink notify.Notifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		registry:      registry,
		seen:          seen,
		source:        source,
		evaluator:     profit.NewEvaluator(profit.DefaultPolicy()),
		log:           slog.Default(),
		tracer:        defaultTracer(),
		maxCandidates: defaultMaxCandidates,
		itemPacing:    defaultItemPacing,
		searchPacing:  defaultSearchPacing,
		sleep:         vinted.SleepContext,
	}
	for _, opt := range opts {
		opt(eng)
	}
	eng.dispatcher = NewDispatcher(sink, seen, eng.log)
	eng.dispatcher.tracer = eng.tracer
	return eng
}

// RunCycle executes one pass over every saved search. Only one cycle runs at
// a time; a concurrent caller waits for the running one to finish. Source,
// lookup and delivery failures are logged and never abort the cycle. The
// returned report is nil when the registry was empty.
func (eng *Engine) RunCycle(ctx context.Context) (_ *CycleReport, err error) {
	eng.cycleMu.Lock()
	defer eng.cycleMu.Unlock()

	ctx, span := eng.tracer.Start(ctx, "scan.cycle")
	defer func() { finishSpan(span, err) }()

	specs, err := eng.registry.SnapshotSearches(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshotting searches: %w", err)
	}
	metrics.RegisteredSearches.Set(float64(len(specs)))
	span.SetAttributes(attribute.Int("scan.searches", len(specs)))

	if len(specs) == 0 {
		eng.log.Info("no searches configured, skipping cycle")
		return nil, nil
	}

	start := time.Now()
	report := &CycleReport{StartedAt: start}
	eng.log.Info("cycle starting", "scan", eng.scans.Load()+1, "searches", len(specs))

	for i := range specs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		spec := &specs[i]
		if err := eng.scanSearch(ctx, spec, report); err != nil {
			return nil, err
		}
		report.Searches++

		if i < len(specs)-1 {
			if err := eng.sleep(ctx, eng.searchPacing); err != nil {
				return nil, err
			}
		}
	}

	report.Scan = eng.scans.Add(1)
	report.Duration = time.Since(start)

	metrics.CyclesTotal.Inc()
	metrics.CycleDuration.Observe(report.Duration.Seconds())

	eng.lastMu.Lock()
	eng.last = report
	eng.lastMu.Unlock()

	span.SetAttributes(
		attribute.Int64("scan.number", report.Scan),
		attribute.Int("scan.evaluated", report.Evaluated),
		attribute.Int("scan.deals", report.Deals),
		attribute.Int("scan.delivered", report.Delivered),
	)

	eng.log.Info("cycle complete",
		"scan", report.Scan,
		"searches", report.Searches,
		"evaluated", report.Evaluated,
		"deals", report.Deals,
		"delivered", report.Delivered,
		"duration", report.Duration,
	)
	return report, nil
}

// scanSearch fetches and evaluates one search. It only returns an error when
// ctx was canceled during pacing.
func (eng *Engine) scanSearch(ctx context.Context, spec *domain.SearchSpec, report *CycleReport) (err error) {
	metrics.SearchesScannedTotal.Inc()

	ctx, span := eng.tracer.Start(ctx, "scan.search", trace.WithAttributes(
		attribute.String("search.id", spec.ID),
		attribute.String("search.name", spec.Name),
		attribute.String("owner.id", spec.OwnerID),
	))
	defer func() { finishSpan(span, err) }()

	listings, err := eng.source.Fetch(ctx, spec)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		span.RecordError(err)
		eng.log.Warn("fetching listings failed",
			"search", spec.Name,
			"owner", spec.OwnerID,
			"error", err,
		)
		return nil
	}
	eng.log.Debug("listings fetched", "search", spec.Name, "count", len(listings))
	span.SetAttributes(attribute.Int("search.listings", len(listings)))

	if len(listings) > eng.maxCandidates {
		listings = listings[:eng.maxCandidates]
	}

	for i := range listings {
		l := &listings[i]

		var seen bool
		if l.ParseErr == nil {
			var lookupErr error
			seen, lookupErr = eng.seen.IsSeen(ctx, l.DedupKey(eng.evaluator.KeyScheme()))
			if lookupErr != nil {
				metrics.SeenStoreErrorsTotal.WithLabelValues("lookup").Inc()
				eng.log.Warn("seen lookup failed, skipping listing",
					"search", spec.Name,
					"listing", l.ListingID,
					"error", lookupErr,
				)
				continue
			}
		} else {
			eng.log.Debug("unparsable listing", "search", spec.Name, "error", l.ParseErr)
		}

		res := eng.evaluator.Evaluate(l, spec, func(string) bool { return seen })
		report.Evaluated++
		metrics.ListingsEvaluatedTotal.WithLabelValues(string(res.Reason)).Inc()

		if res.Deal == nil {
			continue
		}

		report.Deals++
		metrics.DealsFoundTotal.Inc()
		eng.log.Info("deal found",
			"search", spec.Name,
			"listing", res.Deal.ListingID,
			"price", res.Deal.Price.String(),
			"profit", res.Deal.EstimatedProfit.StringFixed(1),
		)

		delivery, err := eng.dispatcher.Notify(ctx, res.Deal, spec.OwnerID)
		if err != nil {
			eng.log.Error("deal dropped", "owner", spec.OwnerID, "error", err)
		} else {
			report.Delivered++
			eng.log.Debug("deal delivered", "owner", spec.OwnerID, "route", delivery.Route)
		}

		if err := eng.sleep(ctx, eng.itemPacing); err != nil {
			return err
		}
	}

	return nil
}

// Scans returns the number of completed cycles.
func (eng *Engine) Scans() int64 {
	return eng.scans.Load()
}

// LastCycle returns a copy of the last completed cycle, or nil.
func (eng *Engine) LastCycle() *CycleReport {
	eng.lastMu.RLock()
	defer eng.lastMu.RUnlock()
	if eng.last == nil {
		return nil
	}
	r := *eng.last
	return &r
}

// Stats aggregates registry, seen-store and cycle counters.
func (eng *Engine) Stats(ctx context.Context) (*domain.Stats, error) {
	searches, owners, err := eng.registry.CountSearches(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting searches: %w", err)
	}

	seen, err := eng.seen.CountSeen(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting seen items: %w", err)
	}
	metrics.SeenItems.Set(float64(seen))

	stats := &domain.Stats{
		Owners:    owners,
		Searches:  searches,
		Scans:     eng.scans.Load(),
		SeenItems: seen,
	}
	if last := eng.LastCycle(); last != nil {
		at := last.StartedAt
		stats.DealsLastCycle = last.Deals
		stats.DeliveredLastCycle = last.Delivered
		stats.LastCycleAt = &at
	}
	return stats, nil
}
