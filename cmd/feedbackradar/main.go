package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spektr-org/feedbackradar/engine"
	"github.com/spektr-org/feedbackradar/helpers"
	"github.com/spektr-org/feedbackradar/radar"
	"github.com/spektr-org/feedbackradar/schema"
)

// ============================================================================
// FEEDBACKRADAR CLI — 360° survey export → radar charts
// ============================================================================

const version = "1.0.0"

// cliOptions are the flag values layered over the report config.
type cliOptions struct {
	ConfigPath   string
	File         string
	OutDir       string
	Format       string
	Tables       bool
	Manifest     bool
	MinResponses int
}

func main() {
	// ── Flags ─────────────────────────────────────────────────────────────
	var opts cliOptions
	flag.StringVar(&opts.ConfigPath, "config", "", "Path to YAML report config (default: built-in leadership 360 report)")
	flag.StringVar(&opts.File, "file", "", "Read responses from a local CSV instead of the spreadsheet")
	flag.StringVar(&opts.OutDir, "out", "", "Output directory (overrides output.dir)")
	flag.StringVar(&opts.Format, "format", "", "Image format: png, svg (overrides output.format)")
	flag.BoolVar(&opts.Tables, "tables", false, "Also write <prefix>_table.csv per chart")
	flag.BoolVar(&opts.Manifest, "manifest", false, "Also write "+helpers.ManifestFile)
	flag.IntVar(&opts.MinResponses, "min-responses", 1, "Drop (category, role) means backed by fewer responses")
	printConfig := flag.Bool("print-config", false, "Print the effective config as YAML and exit")
	quiet := flag.Bool("quiet", false, "Suppress progress logging")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `feedbackradar — 360° feedback radar charts

Usage:
  feedbackradar
  feedbackradar --file responses.csv --out charts --format svg
  feedbackradar --config report.yaml --tables --manifest
  feedbackradar --print-config > report.yaml

Flags:
`)
		flag.PrintDefaults()
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("feedbackradar %s\n", version)
		os.Exit(0)
	}
	if *quiet {
		log.SetOutput(io.Discard)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fatalf("%v", err)
	}

	if *printConfig {
		out, err := cfg.Marshal()
		if err != nil {
			fatalf("Failed to marshal config: %v", err)
		}
		os.Stdout.Write(out)
		return
	}

	if err := run(context.Background(), cfg, opts, os.Stdout); err != nil {
		fatalf("%v", err)
	}
}

// loadConfig reads the report config and applies flag overrides.
func loadConfig(opts cliOptions) (*schema.Config, error) {
	cfg := schema.Default()
	if opts.ConfigPath != "" {
		loaded, err := schema.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		log.Printf("📋 Loaded config: %s (%d charts)", cfg.Name, len(cfg.Charts))
	}

	if opts.File != "" {
		cfg.Source.File = opts.File
	}
	if opts.OutDir != "" {
		cfg.Output.Dir = opts.OutDir
	}
	if opts.Format != "" {
		cfg.Output.Format = opts.Format
	}
	cfg.Output.Tables = cfg.Output.Tables || opts.Tables
	cfg.Output.Manifest = cfg.Output.Manifest || opts.Manifest

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run loads the responses, prepares every view and writes the artifacts.
// A load failure stops the run before anything is rendered.
func run(ctx context.Context, cfg *schema.Config, opts cliOptions, stdout io.Writer) error {
	// ── Load ──────────────────────────────────────────────────────────────
	raw, err := helpers.LoadResponses(ctx, cfg.Source, cfg.Columns, helpers.NewClient())
	if err != nil {
		log.Printf("❌ %v", err)
		return err
	}

	// ── Prepare ───────────────────────────────────────────────────────────
	minResponses := opts.MinResponses
	if minResponses < 1 {
		minResponses = 1
	}
	result, err := engine.Execute(raw, cfg.Views(),
		engine.WithRoleMapping(cfg.Roles.Mapping),
		engine.WithMinResponses(minResponses),
	)
	if err != nil {
		return fmt.Errorf("preparation failed: %w", err)
	}
	for _, w := range result.Errors {
		log.Printf("⚠️  %s", w)
	}

	// ── Render ────────────────────────────────────────────────────────────
	r := radar.New(
		radar.WithOutputDir(cfg.Output.Dir),
		radar.WithFormat(cfg.Output.Format),
		radar.WithSuffix(cfg.Output.Suffix),
		radar.WithSize(cfg.Radar.Width, cfg.Radar.Height),
		radar.WithScale(cfg.Radar.ScaleMax),
		radar.WithLabelRadius(cfg.Radar.LabelRadius),
	)

	manifest := helpers.NewManifest(cfg.Name, cfg.Source.Describe(), result.Stats)
	manifest.Warnings = result.Errors

	for _, v := range result.Views {
		out, err := r.Render(v.Matrix, v.Spec.Title, v.Spec.FilePrefix)
		if err != nil {
			return err
		}
		entry := helpers.ChartEntry{
			Name:       v.Spec.Name,
			Title:      v.Spec.Title,
			Path:       out.Path,
			Skipped:    out.Skipped,
			Reason:     out.Reason,
			Categories: v.Matrix.Categories,
			Roles:      v.Matrix.Roles,
			Summary:    v.Summary,
		}
		if v.Summary != nil && v.Matrix.Rows() > 0 {
			log.Printf("📊 %s: %s", v.Spec.Name, v.Summary)
		}

		if cfg.Output.Tables && v.Matrix.Rows() > 0 {
			path, err := helpers.WriteTableCSV(cfg.Output.Dir, v.Spec.FilePrefix, v.TableData)
			if err != nil {
				return err
			}
			entry.Table = path
			log.Printf("📄 Table written to %s", path)
		}
		manifest.Add(entry)
	}

	if cfg.Output.Manifest {
		path, err := manifest.Write(cfg.Output.Dir)
		if err != nil {
			return err
		}
		log.Printf("📄 Manifest written to %s", path)
	}

	fmt.Fprintf(stdout, "Successfully generated %d radar charts\n", manifest.Generated())
	return nil
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
