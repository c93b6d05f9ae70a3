package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// APICallRate returns a timeseries panel showing Helix API calls per second
// by endpoint.
func APICallRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("API Call Rate").
		Description("Helix API calls per second by endpoint").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`sum by (endpoint) (rate(helix_api_calls_total[5m]))`, "{{endpoint}}", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		Tooltip(MultiTooltip()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ErrorRate returns a timeseries panel showing the rate of non-200 Helix
// responses.
func ErrorRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Error Rate").
		Description("Helix API calls per second returning a non-200 status").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`helix:api_errors:rate5m`, "errors/s", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// LatencyPercentiles returns a timeseries panel with p50/p95/p99 request
// latency.
func LatencyPercentiles() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Request Latency").
		Description("Helix API request duration percentiles").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`histogram_quantile(0.50, sum by (le) (rate(helix_request_duration_seconds_bucket[5m])))`, "p50", "A")).
		WithTarget(PromQuery(`histogram_quantile(0.95, sum by (le) (rate(helix_request_duration_seconds_bucket[5m])))`, "p95", "B")).
		WithTarget(PromQuery(`histogram_quantile(0.99, sum by (le) (rate(helix_request_duration_seconds_bucket[5m])))`, "p99", "C")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		Tooltip(MultiTooltip()).
		DrawStyle(common.GraphDrawStyleLine)
}

// DecodeFailures returns a timeseries panel showing response schema decode
// failures by endpoint.
func DecodeFailures() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Decode Failures").
		Description("Responses that failed schema decoding, by endpoint").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`sum by (endpoint) (rate(helix_decode_failures_total[5m]))`, "{{endpoint}}", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.01, 0.1)).
		ColorScheme(ColorSchemeThresholds()).
		Tooltip(MultiTooltip()).
		DrawStyle(common.GraphDrawStyleLine)
}

// RateLimitWaits returns a timeseries panel showing calls passing through
// the client rate limiter.
func RateLimitWaits() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Rate Limiter Throughput").
		Description("API calls per second passing through the rate limiter").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`rate(helix_rate_limit_waits_total[5m])`, "calls/s", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// TokenRefreshes returns a stat panel with the OAuth token refresh count over
// the past 24 hours.
func TokenRefreshes() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Token Refreshes (24h)").
		Description("OAuth app token refreshes in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`increase(helix_token_refreshes_total[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(50, 200)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
