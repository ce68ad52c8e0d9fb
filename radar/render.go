package radar

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/spektr-org/feedbackradar/engine"
)

// ============================================================================
// RENDERER — Matrix → radar chart image on disk
// ============================================================================
// Draw order: background, grid rings and spokes, tick labels, one filled
// polygon per role, category labels, legend, title. Each Render call owns
// its canvas from acquire to release, so charts never bleed into each other.
// ============================================================================

// Output describes the result of one Render call.
// A skipped chart has no Path and a Reason.
type Output struct {
	Path    string `json:"path,omitempty"`
	Skipped bool   `json:"skipped"`
	Reason  string `json:"reason,omitempty"`
}

// Renderer draws radar charts into OutputDir.
type Renderer struct {
	cfg *config
}

// New creates a Renderer. Defaults: 1200×1200 PNG, scale 0–5, labels at 5.3.
func New(opts ...Option) *Renderer {
	return &Renderer{cfg: applyOptions(opts)}
}

// FileName returns the path Render writes for prefix.
func (r *Renderer) FileName(prefix string) string {
	return filepath.Join(r.cfg.OutputDir, prefix+r.cfg.Suffix+"."+r.cfg.Format)
}

// Render draws m and writes it to FileName(prefix).
// Fewer than MinCategories rows is not an error: the chart is skipped and
// the returned Output says why.
func (r *Renderer) Render(m engine.Matrix, title, prefix string) (*Output, error) {
	if n := m.Rows(); n < MinCategories {
		return skip(title, fmt.Sprintf("Only %d categories found. Need at least %d.", n, MinCategories)), nil
	}
	spec := engine.BuildRadarChart(title, m)
	if spec == nil {
		return skip(title, "No roles to plot."), nil
	}
	return r.RenderChart(spec, prefix)
}

// RenderChart draws an already built radar ChartConfig. ShowGrid and
// ShowLegend switch the grid and the legend.
func (r *Renderer) RenderChart(spec *engine.ChartConfig, prefix string) (*Output, error) {
	if n := len(spec.Categories); n < MinCategories {
		return skip(spec.Title, fmt.Sprintf("Only %d categories found. Need at least %d.", n, MinCategories)), nil
	}
	if len(spec.Series) == 0 {
		return skip(spec.Title, "No roles to plot."), nil
	}

	c, err := acquireCanvas(r.cfg.Format, r.cfg.Width, r.cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("render %q: %w", spec.Title, err)
	}
	defer c.release()

	r.draw(c, spec)

	path := r.FileName(prefix)
	if err := writeImage(c, path); err != nil {
		return nil, fmt.Errorf("render %q: %w", spec.Title, err)
	}

	log.Printf("🖼️  Wrote %s", path)
	return &Output{Path: path}, nil
}

func skip(title, reason string) *Output {
	log.Printf("⚠️  Skipping radar chart '%s': %s", title, reason)
	return &Output{Skipped: true, Reason: reason}
}

func writeImage(c *canvas, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	if err := c.save(f); err != nil {
		f.Close()
		return fmt.Errorf("encode image: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close image: %w", err)
	}
	return nil
}

// ============================================================================
// DRAWING
// ============================================================================

const (
	titleFontSize  = 20.0
	labelFontSize  = 13.0
	tickFontSize   = 10.0
	legendFontSize = 12.0

	seriesStroke = 2.0
	seriesAlpha  = 26 // ≈ 0.1 opacity
)

var (
	gridColor  = chart.ColorAlternateLightGray
	spokeColor = chart.ColorLightGray
	tickColor  = chart.ColorAlternateGray
	textColor  = drawing.ColorBlack
)

// layoutFor centers the plot below the title and leaves room outside the
// label ring for the longest category names.
func (r *Renderer) layoutFor(width, height int) Layout {
	top := float64(height) * 0.08
	side := math.Min(float64(width), float64(height)-top)
	radius := side * 0.30 * r.cfg.ScaleMax / r.cfg.LabelRadius
	return Layout{
		CenterX:  float64(width) / 2,
		CenterY:  top + (float64(height)-top)/2,
		Radius:   radius,
		ScaleMax: r.cfg.ScaleMax,
	}
}

func (r *Renderer) draw(c *canvas, spec *engine.ChartConfig) {
	l := r.layoutFor(c.width, c.height)
	angles := Angles(len(spec.Categories))

	c.fillRect(0, 0, c.width, c.height, chart.ColorWhite, chart.ColorWhite)

	if spec.ShowGrid {
		r.drawGrid(c, l, angles)
	}

	// Series
	for _, s := range spec.Series {
		color := drawing.ColorFromHex(s.Color)
		c.polygon(l.Polygon(s.Values()), color, color.WithAlpha(seriesAlpha), seriesStroke)
	}

	// Category labels
	for _, lb := range l.Labels(spec.Categories, r.cfg.LabelRadius) {
		c.text(lb.Text, lb.At.X, lb.At.Y, lb.Align, labelFontSize, false, textColor)
	}

	if spec.ShowLegend {
		r.drawLegend(c, spec.Series)
	}

	c.text(spec.Title, float64(c.width)/2, float64(c.height)*0.04, AlignCenter, titleFontSize, true, textColor)
}

// drawGrid draws a ring per integer tick, a spoke per category and the tick
// values along the 0° spoke.
func (r *Renderer) drawGrid(c *canvas, l Layout, angles []float64) {
	center := Point{X: l.CenterX, Y: l.CenterY}
	for tick := 1; float64(tick) <= l.ScaleMax; tick++ {
		c.ring(center, float64(tick)/l.ScaleMax*l.Radius, gridColor, 1)
	}
	for _, a := range angles[:len(angles)-1] {
		c.line(center, l.Project(a, l.ScaleMax), spokeColor, 1)
	}
	for tick := 1; float64(tick) <= l.ScaleMax; tick++ {
		p := l.Project(0, float64(tick))
		c.text(fmt.Sprintf("%d", tick), p.X+6, p.Y, AlignLeft, tickFontSize, false, tickColor)
	}
}

// drawLegend puts a boxed role legend in the top-right corner.
func (r *Renderer) drawLegend(c *canvas, series []engine.ChartSeries) {
	if len(series) == 0 {
		return
	}
	const (
		pad    = 10
		swatch = 24
		gap    = 8
	)

	textW, rowH := 0, 0
	for _, s := range series {
		w, h := c.measure(s.Name, legendFontSize)
		textW = max(textW, w)
		rowH = max(rowH, h)
	}
	rowH += gap

	boxW := pad + swatch + gap + textW + pad
	boxH := pad + rowH*len(series) + pad - gap
	x1 := c.width - int(float64(c.width)*0.03)
	x0 := x1 - boxW
	y0 := int(float64(c.height) * 0.08)
	c.fillRect(x0, y0, x1, y0+boxH, chart.ColorWhite, gridColor)

	for i, s := range series {
		color := drawing.ColorFromHex(s.Color)
		midY := float64(y0 + pad + i*rowH + (rowH-gap)/2)
		left := float64(x0 + pad)
		c.line(Point{X: left, Y: midY}, Point{X: left + swatch, Y: midY}, color, seriesStroke+1)
		c.text(s.Name, left+swatch+gap, midY, AlignLeft, legendFontSize, false, textColor)
	}
}
