// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/deal-scanner/tools/dashgen/panels"
)

// BuildOverview constructs the Deal Scanner overview dashboard.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Deal Scanner Overview").
		Uid("ds-overview").
		Tags([]string{"ds", "deal-scanner"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.DealHitGauge()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("Scanning").
		WithPanel(panels.RegisteredSearches()).
		WithPanel(panels.CycleDuration()).
		WithPanel(panels.ListingOutcomes()).
		WithPanel(panels.DealsRate()))

	b.WithRow(dashboard.NewRowBuilder("Catalog Source").
		WithPanel(panels.SourceRequestRate()).
		WithPanel(panels.SourceLatency()).
		WithPanel(panels.DailyUsage()).
		WithPanel(panels.LimitHits()).
		WithPanel(panels.SkippedItems()))

	b.WithRow(dashboard.NewRowBuilder("Notifications").
		WithPanel(panels.NotificationsByRoute()).
		WithPanel(panels.NotificationLatency()).
		WithPanel(panels.NotificationFailures()))

	b.WithRow(dashboard.NewRowBuilder("Dedup & Bot").
		WithPanel(panels.SeenItems()).
		WithPanel(panels.SeenStoreErrors()).
		WithPanel(panels.CommandRate()))

	b.WithRow(dashboard.NewRowBuilder("HTTP API").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
