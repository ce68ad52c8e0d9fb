package radar

import "math"

// ============================================================================
// LAYOUT — Angles, projection and label placement
// ============================================================================
// Angle 0 points straight up and angles grow clockwise. A point at angle θ
// and value v sits at
//
//	x = cx + r(v)·sin θ
//	y = cy − r(v)·cos θ
//
// where r(v) = v / ScaleMax × Radius. Nothing here touches a canvas, so the
// geometry can be checked without rendering.
// ============================================================================

// MinCategories is the smallest category count that makes a radar chart.
const MinCategories = 3

// Alignment is the horizontal anchor of a category label.
type Alignment int

const (
	AlignCenter Alignment = iota
	AlignLeft
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return "center"
	}
}

// Angles returns n evenly spaced angles i/n·2π for i in [0,n), followed by
// the first angle again to close the polygon.
func Angles(n int) []float64 {
	if n <= 0 {
		return nil
	}
	angles := make([]float64, 0, n+1)
	for i := 0; i < n; i++ {
		angles = append(angles, float64(i)/float64(n)*2*math.Pi)
	}
	return append(angles, angles[0])
}

// LabelAlignment picks a label's anchor from its angle.
// Labels on the right of the circle (0 < θ < π) hang off to the right of
// their anchor, labels on the left (π < θ < 2π) end at it, and the labels
// exactly at the top or bottom are centered.
func LabelAlignment(angle float64) Alignment {
	switch {
	case angle == 0 || angle == math.Pi:
		return AlignCenter
	case angle > 0 && angle < math.Pi:
		return AlignLeft
	default:
		return AlignRight
	}
}

// Point is a canvas position in pixels.
type Point struct {
	X, Y float64
}

// Layout maps (angle, value) pairs onto the canvas.
type Layout struct {
	CenterX  float64
	CenterY  float64
	Radius   float64 // pixel radius of ScaleMax
	ScaleMax float64
}

// Project converts a polar coordinate in value units to a canvas point.
func (l Layout) Project(angle, value float64) Point {
	r := value / l.ScaleMax * l.Radius
	return Point{
		X: l.CenterX + r*math.Sin(angle),
		Y: l.CenterY - r*math.Cos(angle),
	}
}

// Polygon projects a closed value sequence (n+1 values, last == first).
// Values are clipped to [0, ScaleMax], the visible part of the radial axis.
func (l Layout) Polygon(closed []float64) []Point {
	if len(closed) < 2 {
		return nil
	}
	angles := Angles(len(closed) - 1)
	points := make([]Point, len(closed))
	for i, v := range closed {
		points[i] = l.Project(angles[i], clip(v, 0, l.ScaleMax))
	}
	return points
}

// Label is a category name placed outside the plotted area.
type Label struct {
	Text  string
	Angle float64
	At    Point
	Align Alignment
}

// Labels places one label per category at labelRadius (value units).
func (l Layout) Labels(categories []string, labelRadius float64) []Label {
	angles := Angles(len(categories))
	labels := make([]Label, len(categories))
	for i, c := range categories {
		labels[i] = Label{
			Text:  c,
			Angle: angles[i],
			At:    l.Project(angles[i], labelRadius),
			Align: LabelAlignment(angles[i]),
		}
	}
	return labels
}

func clip(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
