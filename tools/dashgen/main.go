package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/deal-scanner/tools/dashgen/dashboards"
	"github.com/donaldgifford/deal-scanner/tools/dashgen/rules"
	"github.com/donaldgifford/deal-scanner/tools/dashgen/validate"
)

const generatedHeader = "# Code generated by dashgen. DO NOT EDIT.\n"

func main() {
	validateOnly := flag.Bool("validate", false, "validate generated artifacts without writing files")
	outputDir := flag.String("output", "", "override output directory")
	flag.Parse()

	cfg := DefaultConfig()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// artifact is one generated file, relative to the output directory.
type artifact struct {
	path string
	data []byte
}

func run(cfg Config, validateOnly bool) error {
	artifacts, result, err := build(cfg)
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if !result.Ok() {
		return fmt.Errorf("validation failed:\n  %s", strings.Join(result.Errors, "\n  "))
	}

	if validateOnly {
		fmt.Println("validation passed")
		return nil
	}

	for _, a := range artifacts {
		path := filepath.Join(cfg.OutputDir, a.path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, a.data, 0o644); err != nil { //nolint:gosec // generated files are world-readable
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Printf("dashgen: wrote %s\n", path)
	}
	return nil
}

// build renders every enabled artifact and validates its queries.
func build(cfg Config) ([]artifact, validate.Result, error) {
	var (
		artifacts []artifact
		result    validate.Result
		errs      []error
	)

	if cfg.DashboardEnabled {
		dash, err := dashboards.BuildOverview().Build()
		if err != nil {
			return nil, result, fmt.Errorf("building overview dashboard: %w", err)
		}
		r := validate.Dashboard(&dash, KnownMetrics)
		result.Errors = append(result.Errors, r.Errors...)
		result.Warnings = append(result.Warnings, r.Warnings...)

		data, err := json.MarshalIndent(dash, "", "  ")
		errs = append(errs, err)
		artifacts = append(artifacts, artifact{
			path: filepath.Join("grafana", "data", "ds-overview.json"),
			data: append(data, '\n'),
		})
	}

	if cfg.RulesEnabled {
		for _, rf := range []struct {
			file string
			cr   rules.PrometheusRule
		}{
			{"ds-recording-rules.yaml", rules.RecordingRules()},
			{"ds-alerts.yaml", rules.AlertRules()},
		} {
			r := validate.Rules(rf.cr, KnownMetrics)
			result.Errors = append(result.Errors, r.Errors...)
			result.Warnings = append(result.Warnings, r.Warnings...)

			data, err := yaml.Marshal(rf.cr)
			errs = append(errs, err)
			artifacts = append(artifacts, artifact{
				path: filepath.Join("prometheus", rf.file),
				data: append([]byte(generatedHeader), data...),
			})
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, result, fmt.Errorf("encoding artifacts: %w", err)
	}
	return artifacts, result, nil
}
