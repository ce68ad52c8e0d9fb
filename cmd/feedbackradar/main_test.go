package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spektr-org/feedbackradar/helpers"
	"github.com/spektr-org/feedbackradar/schema"
)

const (
	peer = "Someone who has worked as Richard's peer"
	sub  = "Someone who reports/reported to Richard - either directly or indirectly"
	self = "Me - Richard"
)

func writeExport(t *testing.T, dir string) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("Group,Responder,Score\n")
	for _, cat := range []string{"Coaching", "Innovation", "Role Modelling", "Vision"} {
		b.WriteString(cat + "," + peer + ",4\n")
		b.WriteString(cat + "," + self + ",3\n")
	}
	// Only two operational categories: those charts must be skipped.
	b.WriteString("Managing Stress,\"" + sub + "\",2\n")
	b.WriteString("Listening to Everyone,\"" + sub + "\",\n")
	b.WriteString("Seeing the Big Picture,\"" + sub + "\",5\n")

	path := filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func smallConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "report.yaml")
	require.NoError(t, os.WriteFile(path, []byte("radar:\n  width: 300\n  height: 300\n"), 0o644))
	return path
}

func TestRunGeneratesChartsTablesAndManifest(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "charts")
	opts := cliOptions{
		ConfigPath:   smallConfig(t, dir),
		File:         writeExport(t, dir),
		OutDir:       out,
		Tables:       true,
		Manifest:     true,
		MinResponses: 1,
	}
	cfg, err := loadConfig(opts)
	require.NoError(t, err)

	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, opts, &stdout))
	assert.Equal(t, "Successfully generated 2 radar charts\n", stdout.String())

	assert.FileExists(t, filepath.Join(out, "radar_strategic_no_me_unwrapped_radar_chart_unwrapped.png"))
	assert.FileExists(t, filepath.Join(out, "radar_strategic_sub_vs_me_unwrapped_radar_chart_unwrapped.png"))
	assert.NoFileExists(t, filepath.Join(out, "radar_operational_no_me_unwrapped_radar_chart_unwrapped.png"))
	assert.FileExists(t, filepath.Join(out, "radar_strategic_no_me_unwrapped_table.csv"))

	data, err := os.ReadFile(filepath.Join(out, helpers.ManifestFile))
	require.NoError(t, err)
	var m helpers.Manifest
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, 11, m.Stats.Input)
	assert.Equal(t, 1, m.Stats.Dropped)
	require.Len(t, m.Charts, 4)
	assert.Equal(t, 2, m.Generated())
	assert.True(t, m.Charts[1].Skipped)
	assert.Equal(t, "Only 2 categories found. Need at least 3.", m.Charts[1].Reason)

	require.NotNil(t, m.Charts[0].Summary)
	require.NotEmpty(t, m.Charts[0].Summary.RoleMeans)
	assert.Equal(t, 4.0, m.Charts[0].Summary.RoleMeans[0].Mean)
}

func TestRunStopsOnFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>Sign in</html>"))
	}))
	defer srv.Close()

	out := t.TempDir()
	cfg := schema.Default()
	cfg.Source.URL = srv.URL
	cfg.Output.Dir = out

	var stdout bytes.Buffer
	err := run(context.Background(), cfg, cliOptions{MinResponses: 1}, &stdout)
	var eb *errbuilder.ErrBuilder
	require.ErrorAs(t, err, &eb)
	assert.Equal(t, errbuilder.CodeUnavailable, eb.ErrCode())
	assert.Contains(t, eb.Msg, "Anyone with the link can view")
	assert.Empty(t, stdout.String())

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLoadConfigRejectsBadFormatOverride(t *testing.T) {
	_, err := loadConfig(cliOptions{Format: "gif"})
	require.Error(t, err)
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := loadConfig(cliOptions{File: "x.csv", OutDir: "charts", Format: "svg", Manifest: true})
	require.NoError(t, err)
	assert.Equal(t, "x.csv", cfg.Source.File)
	assert.Equal(t, "charts", cfg.Output.Dir)
	assert.Equal(t, "svg", cfg.Output.Format)
	assert.True(t, cfg.Output.Manifest)
	assert.False(t, cfg.Output.Tables)
}
