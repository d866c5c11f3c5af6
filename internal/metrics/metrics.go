// Package metrics defines Prometheus metrics for the deal scanner.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ds"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 if the last /healthz check succeeded.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 if the last /readyz check succeeded.",
	})
)

// Scan cycle metrics.
var (
	CyclesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scan_cycles_total",
		Help:      "Total number of completed scan cycles.",
	})

	CycleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "scan_cycle_duration_seconds",
		Help:      "Duration of scan cycles in seconds.",
		Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600},
	})

	SearchesScannedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_scanned_total",
		Help:      "Total number of searches executed across all cycles.",
	})

	ListingsEvaluatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listings_evaluated_total",
		Help:      "Listings evaluated by outcome (deal, seen, over_budget, below_min_profit, unparsable).",
	}, []string{"outcome"})

	DealsFoundTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deals_found_total",
		Help:      "Total number of listings that passed the profit rule.",
	})

	RegisteredSearches = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "registered_searches",
		Help:      "Number of saved searches at the start of the last cycle.",
	})
)

// Listing source metrics.
var (
	SourceRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "source_requests_total",
		Help:      "Catalog requests by source kind and result (ok, error).",
	}, []string{"kind", "result"})

	SourceRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "source_request_duration_seconds",
		Help:      "Duration of catalog requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	SourceItemsSkippedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "source_items_skipped_total",
		Help:      "Catalog items dropped because they could not be parsed.",
	})

	SourceDailyUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "source_daily_usage",
		Help:      "Catalog requests made in the current 24h rate-limit window.",
	})

	SourceDailyLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "source_daily_limit_hits_total",
		Help:      "Times the daily catalog request budget was exhausted.",
	})
)

// Notification metrics.
var (
	NotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Delivered notifications by route (direct, fallback).",
	}, []string{"route"})

	NotificationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Deals dropped because neither route could deliver them.",
	})

	NotificationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_duration_seconds",
		Help:      "Time spent sending a single Discord message.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Seen-store metrics.
var (
	SeenStoreErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "seen_store_errors_total",
		Help:      "Seen-store failures by operation (lookup, mark, prune).",
	}, []string{"op"})

	SeenItems = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "seen_items",
		Help:      "Number of dedup keys held by the seen store.",
	})

	SeenPrunedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "seen_pruned_total",
		Help:      "Dedup keys removed by the prune job.",
	})
)

// Bot metrics.
var (
	CommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bot_commands_total",
		Help:      "Slash commands handled by name and result (ok, rejected, error).",
	}, []string{"command", "result"})
)
