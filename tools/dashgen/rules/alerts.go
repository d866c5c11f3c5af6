package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// deal-scanner operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata:   metadata("ds-alerts"),
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "ds-alerts",
					Rules: []Rule{
						alert("DealScannerDown", `absent(up{job="deal-scanner"})`, "2m", "critical",
							"Deal scanner is down",
							"The deal-scanner job has been absent for more than 2 minutes."),
						alert("DealScannerReadinessDown", `ds_readyz_up == 0`, "2m", "critical",
							"Deal scanner readiness check is failing",
							"A configured store has been unreachable for more than 2 minutes."),
						alert("DealScannerHighErrorRate", `ds:http_errors:rate5m / ds:http_requests:rate5m > 0.05`, "5m", "warning",
							"High HTTP error rate on the deal scanner API",
							"More than 5% of API requests are returning 5xx errors over the last 5 minutes."),
						alert("DealScannerSourceErrors", `ds:source_errors:rate5m / ds:source_requests:rate5m > 0.5`, "15m", "warning",
							"Catalog requests are failing",
							"More than half of catalog requests have failed for 15 minutes. The marketplace may be blocking the scanner."),
						alert("DealScannerNoCycles", `increase(ds_scan_cycles_total[1h]) == 0 and ds_registered_searches > 0`, "15m", "warning",
							"No scan cycle completed in the last hour",
							"Searches are registered but the scheduler has not completed a cycle for an hour."),
						alert("DealScannerDailyLimitReached", `increase(ds_source_daily_limit_hits_total[5m]) > 0`, "0m", "critical",
							"Daily catalog request budget exhausted",
							"The daily request budget has been used up. Scanning is paused until the window resets."),
						alert("DealScannerNotificationFailures", `increase(ds_notification_failures_total[5m]) > 0`, "1m", "warning",
							"Deal notifications are being dropped",
							"One or more deals could be delivered neither by direct message nor to the fallback channel."),
						alert("DealScannerSeenStoreErrors", `sum(ds:seen_store_errors:rate5m) > 0`, "5m", "warning",
							"Seen store errors detected",
							"The seen store has been failing for 5 minutes. Listings may be skipped or notified twice."),
					},
				},
			},
		},
	}
}

func alert(name, expr, forDuration, severity, summary, description string) Rule {
	return Rule{
		Alert: name,
		Expr:  expr,
		For:   forDuration,
		Labels: map[string]string{
			"severity": severity,
		},
		Annotations: map[string]string{
			"summary":     summary,
			"description": description,
		},
	}
}
