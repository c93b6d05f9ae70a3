package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by the helixmod dashboard.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "helixmod-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "helixmod-recording",
					Rules: []Rule{
						{
							Record: "helix:api_calls:rate5m",
							Expr:   `sum(rate(helix_api_calls_total[5m]))`,
						},
						{
							Record: "helix:api_errors:rate5m",
							Expr:   `sum(rate(helix_api_calls_total{status!="200"}[5m]))`,
						},
						{
							Record: "helix:decode_failures:rate5m",
							Expr:   `sum(rate(helix_decode_failures_total[5m]))`,
						},
					},
				},
			},
		},
	}
}
