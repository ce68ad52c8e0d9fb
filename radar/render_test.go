package radar

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spektr-org/feedbackradar/engine"
)

func sampleMatrix() engine.Matrix {
	return engine.Matrix{
		Categories: []string{"Coaching", "Innovation", "Role Modelling", "Vision"},
		Roles:      []string{engine.RolePeer, engine.RoleSubordinate},
		Cells: [][]engine.Cell{
			{{Value: 3, Present: true}, {Value: 4.5, Present: true}},
			{{Value: 5, Present: true}, {}},
			{{Value: 1, Present: true}, {Value: 2, Present: true}},
			{{Value: 3, Present: true}, {Value: 3.25, Present: true}},
		},
	}
}

func TestRenderWritesPNG(t *testing.T) {
	dir := t.TempDir()
	r := New(WithOutputDir(dir), WithSize(600, 600))

	out, err := r.Render(sampleMatrix(), "Transformational Leadership View", "radar_strategic_no_me")
	require.NoError(t, err)
	require.False(t, out.Skipped)
	assert.Equal(t, filepath.Join(dir, "radar_strategic_no_me_radar_chart_unwrapped.png"), out.Path)

	data, err := os.ReadFile(out.Path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")))
}

func TestRenderWritesSVG(t *testing.T) {
	dir := t.TempDir()
	r := New(WithOutputDir(dir), WithFormat("svg"), WithSuffix(""))

	out, err := r.Render(sampleMatrix(), "Peers & Reports", "view")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "view.svg"), out.Path)

	data, err := os.ReadFile(out.Path)
	require.NoError(t, err)
	svg := string(data)
	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.Contains(t, svg, "Role Modelling")
	assert.Contains(t, svg, "Peers &amp; Reports")
	assert.Contains(t, svg, engine.RoleSubordinate)
}

func TestRenderSkipsBelowThreeCategories(t *testing.T) {
	dir := t.TempDir()
	m := engine.Matrix{
		Categories: []string{"Coaching", "Vision"},
		Roles:      []string{engine.RolePeer},
		Cells:      [][]engine.Cell{{{Value: 3, Present: true}}, {{Value: 4, Present: true}}},
	}

	out, err := New(WithOutputDir(dir)).Render(m, "Too Small", "small")
	require.NoError(t, err)
	assert.True(t, out.Skipped)
	assert.Empty(t, out.Path)
	assert.Equal(t, "Only 2 categories found. Need at least 3.", out.Reason)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRenderSkipsEmptyMatrix(t *testing.T) {
	out, err := New(WithOutputDir(t.TempDir())).Render(engine.Matrix{}, "Empty", "empty")
	require.NoError(t, err)
	assert.True(t, out.Skipped)
	assert.Contains(t, out.Reason, "Only 0 categories")
}

func TestRenderCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts", "2024")
	out, err := New(WithOutputDir(dir), WithSize(300, 300)).Render(sampleMatrix(), "Nested", "nested")
	require.NoError(t, err)
	assert.FileExists(t, out.Path)
}

func TestRenderPropagatesWriteFailure(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := New(WithOutputDir(filepath.Join(blocker, "sub")), WithSize(300, 300)).
		Render(sampleMatrix(), "Blocked", "blocked")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Blocked")
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	_, err := New(WithOutputDir(t.TempDir()), WithFormat("gif")).Render(sampleMatrix(), "Gif", "gif")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported image format")
}

func TestRenderIsolatesConsecutiveCharts(t *testing.T) {
	dir := t.TempDir()
	r := New(WithOutputDir(dir), WithFormat("svg"))

	first, err := r.Render(sampleMatrix(), "First Chart", "first")
	require.NoError(t, err)
	second, err := r.Render(sampleMatrix(), "Second Chart", "second")
	require.NoError(t, err)

	data, err := os.ReadFile(second.Path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "First Chart")
	assert.NotEqual(t, first.Path, second.Path)
}

func TestRenderChartHonoursGridAndLegendSwitches(t *testing.T) {
	dir := t.TempDir()
	r := New(WithOutputDir(dir), WithFormat("svg"))

	spec := engine.BuildRadarChart("Bare", sampleMatrix())
	require.NotNil(t, spec)
	spec.ShowGrid = false
	spec.ShowLegend = false

	out, err := r.RenderChart(spec, "bare")
	require.NoError(t, err)
	data, err := os.ReadFile(out.Path)
	require.NoError(t, err)
	svg := string(data)

	assert.Contains(t, svg, "Innovation")
	assert.NotContains(t, svg, engine.RoleSubordinate, "role names only appear in the legend")
	assert.NotContains(t, svg, ">5</text>", "tick labels belong to the grid")

	spec.ShowGrid = true
	spec.ShowLegend = true
	out, err = r.RenderChart(spec, "full")
	require.NoError(t, err)
	data, err = os.ReadFile(out.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), engine.RoleSubordinate)
	assert.Contains(t, string(data), ">5</text>")
}

func TestRenderChartSkipsDegenerateConfig(t *testing.T) {
	spec := &engine.ChartConfig{Title: "Two", Categories: []string{"A", "B"}}
	out, err := New(WithOutputDir(t.TempDir())).RenderChart(spec, "two")
	require.NoError(t, err)
	assert.True(t, out.Skipped)
	assert.Equal(t, "Only 2 categories found. Need at least 3.", out.Reason)
}
