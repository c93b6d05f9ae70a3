// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/streamforge/helixmod/tools/dashgen/panels"
)

// BuildOverview constructs the Helixmod Overview dashboard.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Helixmod Overview").
		Uid("helixmod-overview").
		Tags([]string{"helixmod", "helix"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: API traffic.
	b.WithRow(dashboard.NewRowBuilder("API").
		WithPanel(panels.APICallRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 2: Client internals.
	b.WithRow(dashboard.NewRowBuilder("Client").
		WithPanel(panels.DecodeFailures()).
		WithPanel(panels.RateLimitWaits()).
		WithPanel(panels.TokenRefreshes()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
