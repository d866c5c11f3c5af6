// Package validate checks generated dashboards and rule files: every PromQL
// expression must parse and may only reference known metric names.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/deal-scanner/tools/dashgen/rules"
)

// histogramSuffixes are stripped before a series name is looked up, so a
// histogram is known once under its base name.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Result collects validation findings. Errors fail generation; warnings
// are reported only.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *Result) merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// Expr parses a single PromQL expression and checks the metric names it
// selects against known.
func Expr(where, expr string, known map[string]bool) Result {
	var r Result
	if strings.TrimSpace(expr) == "" {
		r.errorf("%s: empty expression", where)
		return r
	}

	node, err := parser.ParseExpr(expr)
	if err != nil {
		r.errorf("%s: %v", where, err)
		return r
	}

	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !isKnown(vs.Name, known) {
			r.errorf("%s: unknown metric %q", where, vs.Name)
		}
		return nil
	})
	return r
}

func isKnown(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}

// Dashboard validates every query target in dash. Panels are read from the
// JSON model so rows and nested panels are covered alike.
func Dashboard(dash *dashboard.Dashboard, known map[string]bool) Result {
	var r Result

	raw, err := json.Marshal(dash)
	if err != nil {
		r.errorf("marshaling dashboard: %v", err)
		return r
	}
	var model map[string]any
	if err := json.Unmarshal(raw, &model); err != nil {
		r.errorf("decoding dashboard: %v", err)
		return r
	}

	titles := make(map[string]int)
	walkPanels(model["panels"], func(title string, panel map[string]any) {
		titles[title]++
		targets, _ := panel["targets"].([]any)
		if len(targets) == 0 {
			r.warnf("panel %q has no queries", title)
		}
		for _, t := range targets {
			target, _ := t.(map[string]any)
			expr, _ := target["expr"].(string)
			ref, _ := target["refId"].(string)
			r.merge(Expr(fmt.Sprintf("panel %q target %s", title, ref), expr, known))
		}
	})

	for title, n := range titles {
		if n > 1 {
			r.warnf("panel title %q used %d times", title, n)
		}
	}
	return r
}

func walkPanels(v any, fn func(title string, panel map[string]any)) {
	list, _ := v.([]any)
	for _, item := range list {
		panel, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if panel["type"] == "row" {
			walkPanels(panel["panels"], fn)
			continue
		}
		title, _ := panel["title"].(string)
		fn(title, panel)
	}
}

// Rules validates every expression in cr. Recording rule names are checked
// for the level:metric:operation form.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var r Result
	for _, g := range cr.Spec.Groups {
		for _, rule := range g.Rules {
			name := rule.Alert
			if rule.Record != "" {
				name = rule.Record
				if strings.Count(rule.Record, ":") != 2 {
					r.warnf("recording rule %q does not follow level:metric:operation", rule.Record)
				}
			}
			r.merge(Expr(fmt.Sprintf("%s/%s", g.Name, name), rule.Expr, known))
		}
	}
	return r
}
