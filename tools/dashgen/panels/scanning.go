package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RegisteredSearches returns a stat panel showing the number of saved
// searches at the start of the last cycle.
func RegisteredSearches() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Saved Searches").
		Description("Searches registered at the start of the last scan cycle").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(sel("ds_registered_searches"), "", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeArea)
}

// CycleDuration returns a timeseries panel showing the p95 scan cycle
// duration.
func CycleDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Cycle Duration (p95)").
		Description("95th percentile scan cycle duration").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(`+sel("ds_scan_cycle_duration_seconds_bucket")+`[30m])) by (le))`,
			"p95", "A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ListingOutcomes returns a timeseries panel showing evaluated
// listings per minute by outcome.
func ListingOutcomes() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Listings / min by Outcome").
		Description("Listings evaluated per minute (deal, seen, over_budget, below_min_profit, unparsable)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`sum by (outcome) (rate(`+sel("ds_listings_evaluated_total")+`[5m])) * 60`,
			"{{outcome}}", "A",
		)).
		FillOpacity(30).
		LineWidth(1).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// DealsRate returns a timeseries panel showing deals found per hour.
func DealsRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Deals / hour").
		Description("Listings that passed the profit rule, per hour").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`ds:deals_found:rate5m * 3600`, "deals/h", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
