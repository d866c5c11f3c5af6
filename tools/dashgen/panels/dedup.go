package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// SeenItems returns a timeseries panel showing the size of the seen set.
func SeenItems() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Seen Set Size").
		Description("Dedup keys held by the seen store").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(sel("ds_seen_items"), "keys", "A")).
		WithTarget(PromQuery(`increase(`+sel("ds_seen_pruned_total")+`[1h])`, "pruned/h", "B")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SeenStoreErrors returns a timeseries panel showing seen-store failures
// per minute by operation.
func SeenStoreErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Seen Store Errors / min").
		Description("Seen-store failures by operation (lookup, mark, prune)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`ds:seen_store_errors:rate5m * 60`, "{{op}}", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// CommandRate returns a timeseries panel showing slash commands handled per
// minute by command and result.
func CommandRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Slash Commands / min").
		Description("Discord slash commands by name and result (ok, rejected, error)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum by (command, result) (rate(`+sel("ds_bot_commands_total")+`[5m])) * 60`,
			"{{command}} {{result}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("sum")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
