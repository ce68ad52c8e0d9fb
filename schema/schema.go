package schema

import (
	"fmt"
	"net/url"

	"github.com/spektr-org/feedbackradar/engine"
)

// ============================================================================
// SCHEMA — Describes the survey export and the report built from it
// ============================================================================
// Default() reproduces the leadership 360 report. A YAML file loaded with
// Load() overrides any part of it. The engine only sees ViewSpecs and the
// role mapping; helpers only see Source and Columns.
// ============================================================================

// Config describes the complete report.
type Config struct {
	Name         string              `yaml:"name" json:"name"`
	Source       Source              `yaml:"source" json:"source"`
	Columns      Columns             `yaml:"columns" json:"columns"`
	Roles        Roles               `yaml:"roles" json:"roles"`
	CategorySets map[string][]string `yaml:"category_sets" json:"categorySets"`
	Charts       []Chart             `yaml:"charts" json:"charts"`
	Output       Output              `yaml:"output" json:"output"`
	Radar        Radar               `yaml:"radar" json:"radar"`
}

// Source locates the survey export. File wins over the spreadsheet when set.
type Source struct {
	SheetID string `yaml:"sheet_id" json:"sheetId"`
	GID     string `yaml:"gid" json:"gid"`
	URL     string `yaml:"url,omitempty" json:"url,omitempty"` // full export URL override
	File    string `yaml:"file,omitempty" json:"file,omitempty"`
}

// ExportURL returns the CSV export URL for the configured sheet tab.
func (s Source) ExportURL() string {
	if s.URL != "" {
		return s.URL
	}
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv&gid=%s",
		url.PathEscape(s.SheetID), url.QueryEscape(s.GID))
}

// Describe names the source for logs and the run manifest.
func (s Source) Describe() string {
	if s.File != "" {
		return s.File
	}
	return s.ExportURL()
}

// Columns names the CSV header cells holding each field.
type Columns struct {
	Category  string `yaml:"category" json:"category"`
	Responder string `yaml:"responder" json:"responder"`
	Score     string `yaml:"score" json:"score"`
}

// Roles holds the raw responder label → canonical role table.
type Roles struct {
	Mapping map[string]string `yaml:"mapping" json:"mapping"`
}

// Chart is one comparison view.
type Chart struct {
	Name       string            `yaml:"name" json:"name"`
	Title      string            `yaml:"title" json:"title"`
	FilePrefix string            `yaml:"file_prefix" json:"filePrefix"`
	Categories string            `yaml:"categories" json:"categories"` // key into CategorySets
	Roles      engine.RoleFilter `yaml:"roles" json:"roles"`
}

// Output controls where and how artifacts are written.
type Output struct {
	Dir      string `yaml:"dir" json:"dir"`
	Format   string `yaml:"format" json:"format"` // "png" or "svg"
	Suffix   string `yaml:"suffix" json:"suffix"`
	Tables   bool   `yaml:"tables" json:"tables"`
	Manifest bool   `yaml:"manifest" json:"manifest"`
}

// Radar holds canvas and scale settings.
type Radar struct {
	Width       int     `yaml:"width" json:"width"`
	Height      int     `yaml:"height" json:"height"`
	ScaleMax    float64 `yaml:"scale_max" json:"scaleMax"`
	LabelRadius float64 `yaml:"label_radius" json:"labelRadius"`
}

// Views converts the chart list into engine ViewSpecs.
// Call Validate first; unknown category sets yield empty views.
func (c Config) Views() []engine.ViewSpec {
	views := make([]engine.ViewSpec, 0, len(c.Charts))
	for _, ch := range c.Charts {
		views = append(views, engine.ViewSpec{
			Name:       ch.Name,
			Title:      ch.Title,
			FilePrefix: ch.FilePrefix,
			Categories: c.CategorySets[ch.Categories],
			Roles:      ch.Roles,
		})
	}
	return views
}
