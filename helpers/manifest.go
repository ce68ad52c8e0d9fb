package helpers

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/spektr-org/feedbackradar/engine"
)

// ManifestFile is the run manifest's file name inside the output dir.
const ManifestFile = "report_manifest.json"

// Manifest records what one run produced.
type Manifest struct {
	RunID       string            `json:"runId"`
	GeneratedAt time.Time         `json:"generatedAt"`
	Report      string            `json:"report"`
	Source      string            `json:"source"`
	Stats       engine.CleanStats `json:"stats"`
	Charts      []ChartEntry      `json:"charts"`
	Warnings    []string          `json:"warnings,omitempty"`
}

// ChartEntry is one view's outcome.
type ChartEntry struct {
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Path       string   `json:"path,omitempty"`
	Table      string   `json:"table,omitempty"`
	Skipped    bool     `json:"skipped"`
	Reason     string   `json:"reason,omitempty"`
	Categories []string `json:"categories"`
	Roles      []string `json:"roles"`

	Summary *engine.TextData `json:"summary,omitempty"`
}

// NewManifest starts a manifest with a fresh run id.
func NewManifest(report, source string, stats engine.CleanStats) *Manifest {
	return &Manifest{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Report:      report,
		Source:      source,
		Stats:       stats,
		Charts:      []ChartEntry{},
	}
}

// Add appends a chart outcome.
func (m *Manifest) Add(e ChartEntry) {
	m.Charts = append(m.Charts, e)
}

// Generated counts charts that produced an image.
func (m *Manifest) Generated() int {
	n := 0
	for _, c := range m.Charts {
		if !c.Skipped && c.Path != "" {
			n++
		}
	}
	return n
}

// Write stores the manifest as indented JSON in dir and returns its path.
func (m *Manifest) Write(dir string) (string, error) {
	out, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, ManifestFile)
	if err := os.WriteFile(path, append(out, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}
	return path, nil
}
