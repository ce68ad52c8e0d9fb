package radar

import (
	"fmt"
	"html"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ============================================================================
// CANVAS — One drawing surface per chart
// ============================================================================
// A canvas is acquired at the start of Render and released by a deferred
// call, so a failed draw or write never leaves a surface behind for the next
// chart.
// ============================================================================

// providers maps an output format to the go-chart renderer that draws it.
var providers = map[string]chart.RendererProvider{
	"png": chart.PNG,
	"svg": chart.SVG,
}

type canvas struct {
	r      chart.Renderer
	width  int
	height int
	fonts  *fontSet
	escape bool // go-chart writes SVG text bodies verbatim
}

func acquireCanvas(format string, width, height int) (*canvas, error) {
	provider, ok := providers[format]
	if !ok {
		return nil, fmt.Errorf("unsupported image format %q", format)
	}
	fs, err := loadFonts()
	if err != nil {
		return nil, err
	}
	r, err := provider(width, height)
	if err != nil {
		return nil, fmt.Errorf("create %s canvas: %w", format, err)
	}
	r.SetDPI(chart.DefaultDPI)
	return &canvas{r: r, width: width, height: height, fonts: fs, escape: format == "svg"}, nil
}

// release drops the renderer. Safe to call more than once.
func (c *canvas) release() {
	c.r = nil
}

func (c *canvas) save(w io.Writer) error {
	if c.r == nil {
		return fmt.Errorf("canvas already released")
	}
	return c.r.Save(w)
}

// ============================================================================
// PRIMITIVES
// ============================================================================

func (c *canvas) fillRect(x0, y0, x1, y1 int, fill, stroke drawing.Color) {
	c.r.ResetStyle()
	c.r.SetFillColor(fill)
	c.r.SetStrokeColor(stroke)
	c.r.SetStrokeWidth(1)
	c.r.MoveTo(x0, y0)
	c.r.LineTo(x1, y0)
	c.r.LineTo(x1, y1)
	c.r.LineTo(x0, y1)
	c.r.Close()
	c.r.FillStroke()
}

// ring strokes a circle as a closed polyline. The SVG renderer draws
// Circle immediately instead of adding it to the path, so both formats go
// through MoveTo/LineTo here.
func (c *canvas) ring(center Point, radius float64, stroke drawing.Color, width float64) {
	const segments = 120
	c.r.ResetStyle()
	c.r.SetStrokeColor(stroke)
	c.r.SetStrokeWidth(width)
	c.r.MoveTo(px(center.X), px(center.Y-radius))
	for i := 1; i <= segments; i++ {
		theta := float64(i) / segments * 2 * math.Pi
		c.r.LineTo(px(center.X+radius*math.Sin(theta)), px(center.Y-radius*math.Cos(theta)))
	}
	c.r.Stroke()
}

func (c *canvas) line(a, b Point, stroke drawing.Color, width float64) {
	c.r.ResetStyle()
	c.r.SetStrokeColor(stroke)
	c.r.SetStrokeWidth(width)
	c.r.MoveTo(px(a.X), px(a.Y))
	c.r.LineTo(px(b.X), px(b.Y))
	c.r.Stroke()
}

// polygon fills and outlines a closed point sequence.
func (c *canvas) polygon(points []Point, stroke, fill drawing.Color, width float64) {
	if len(points) < 2 {
		return
	}
	c.r.ResetStyle()
	c.r.SetStrokeColor(stroke)
	c.r.SetFillColor(fill)
	c.r.SetStrokeWidth(width)
	c.r.MoveTo(px(points[0].X), px(points[0].Y))
	for _, p := range points[1:] {
		c.r.LineTo(px(p.X), px(p.Y))
	}
	c.r.Close()
	c.r.FillStroke()
}

// text draws body anchored at (x, y). y is the vertical middle of the text.
func (c *canvas) text(body string, x, y float64, align Alignment, size float64, bold bool, color drawing.Color) {
	c.r.ResetStyle()
	if bold {
		c.r.SetFont(c.fonts.Bold)
	} else {
		c.r.SetFont(c.fonts.Regular)
	}
	c.r.SetFontSize(size)
	c.r.SetFontColor(color)

	box := c.r.MeasureText(body)
	left := x
	switch align {
	case AlignCenter:
		left = x - float64(box.Width())/2
	case AlignRight:
		left = x - float64(box.Width())
	}
	if c.escape {
		body = html.EscapeString(body)
	}
	c.r.Text(body, px(left), px(y+float64(box.Height())/2))
}

func (c *canvas) measure(body string, size float64) (int, int) {
	c.r.ResetStyle()
	c.r.SetFont(c.fonts.Regular)
	c.r.SetFontSize(size)
	box := c.r.MeasureText(body)
	return box.Width(), box.Height()
}

func px(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}
