package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata:   metadata("ds-recording-rules"),
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "ds-recording",
					Rules: []Rule{
						{
							Record: "ds:http_requests:rate5m",
							Expr:   `sum(rate(ds_http_requests_total[5m]))`,
						},
						{
							Record: "ds:http_errors:rate5m",
							Expr:   `sum(rate(ds_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "ds:source_requests:rate5m",
							Expr:   `sum(rate(ds_source_requests_total[5m]))`,
						},
						{
							Record: "ds:source_errors:rate5m",
							Expr:   `sum(rate(ds_source_requests_total{result="error"}[5m]))`,
						},
						{
							Record: "ds:deals_found:rate5m",
							Expr:   `rate(ds_deals_found_total[5m])`,
						},
						{
							Record: "ds:seen_store_errors:rate5m",
							Expr:   `sum by (op) (rate(ds_seen_store_errors_total[5m]))`,
						},
						{
							Record: "ds:notification_duration:p95_5m",
							Expr:   `histogram_quantile(0.95, sum(rate(ds_notification_duration_seconds_bucket[5m])) by (le))`,
						},
					},
				},
			},
		},
	}
}
