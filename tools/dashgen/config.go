package main

import "errors"

// KnownMetrics is the set of metric names exported by deal-scanner plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"ds_http_request_duration_seconds": true,
	"ds_http_requests_total":           true,

	// Health metrics.
	"ds_healthz_up": true,
	"ds_readyz_up":  true,

	// Scan cycle metrics.
	"ds_scan_cycles_total":           true,
	"ds_scan_cycle_duration_seconds": true,
	"ds_searches_scanned_total":      true,
	"ds_listings_evaluated_total":    true,
	"ds_deals_found_total":           true,
	"ds_registered_searches":         true,

	// Listing source metrics.
	"ds_source_requests_total":           true,
	"ds_source_request_duration_seconds": true,
	"ds_source_items_skipped_total":      true,
	"ds_source_daily_usage":              true,
	"ds_source_daily_limit_hits_total":   true,

	// Notification metrics.
	"ds_notifications_total":           true,
	"ds_notification_failures_total":   true,
	"ds_notification_duration_seconds": true,

	// Seen-store metrics.
	"ds_seen_store_errors_total": true,
	"ds_seen_items":              true,
	"ds_seen_pruned_total":       true,

	// Bot metrics.
	"ds_bot_commands_total": true,

	// Recording rules.
	"ds:http_requests:rate5m":         true,
	"ds:http_errors:rate5m":           true,
	"ds:source_requests:rate5m":       true,
	"ds:source_errors:rate5m":         true,
	"ds:deals_found:rate5m":           true,
	"ds:seen_store_errors:rate5m":     true,
	"ds:notification_duration:p95_5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
