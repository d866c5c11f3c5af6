package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// SourceRequestRate returns a timeseries panel showing catalog requests per
// second split by result.
func SourceRequestRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Catalog Requests").
		Description("Catalog requests per second by source kind and result").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum by (kind, result) (rate(`+sel("ds_source_requests_total")+`[5m]))`,
			"{{kind}} {{result}}", "A",
		)).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SourceLatency returns a timeseries panel showing the p95 catalog request
// duration.
func SourceLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Catalog Latency (p95)").
		Description("95th percentile catalog request duration").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(`+sel("ds_source_request_duration_seconds_bucket")+`[5m])) by (le))`,
			"p95", "A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(2, 10)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// DailyUsage returns a timeseries panel showing requests made in the
// current 24h rate-limit window.
func DailyUsage() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Daily Usage").
		Description("Catalog requests in the current 24h window").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(sel("ds_source_daily_usage"), "usage", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// LimitHits returns a stat panel showing how often the daily budget ran out
// in the past 24 hours.
func LimitHits() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Limit Hits (24h)").
		Description("Times the daily catalog request budget was exhausted in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`increase(`+sel("ds_source_daily_limit_hits_total")+`[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 3)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// SkippedItems returns a stat panel showing catalog items dropped as
// unparseable in the past 24 hours.
func SkippedItems() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Skipped Items (24h)").
		Description("Catalog items that could not be parsed in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`increase(`+sel("ds_source_items_skipped_total")+`[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(10, 100)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
