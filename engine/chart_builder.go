package engine

// ============================================================================
// CHART BUILDER — Produces a radar ChartConfig from a Matrix
// ============================================================================
// One series per role. Each series holds N+1 points: the role's value for
// every category in row order (absent → 0) and a copy of the first point so
// the polygon closes. The zero-fill lives only here; aggregates are untouched.
// ============================================================================

// Default color palette for chart series.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// BuildRadarChart produces a radar ChartConfig from a matrix.
// Returns nil when the matrix has no rows or no roles.
func BuildRadarChart(title string, m Matrix) *ChartConfig {
	if m.Rows() == 0 || len(m.Roles) == 0 {
		return nil
	}

	config := &ChartConfig{
		ChartType:  "radar",
		Title:      title,
		Categories: append([]string(nil), m.Categories...),
		ShowLegend: true,
		ShowGrid:   true,
	}

	config.Series = make([]ChartSeries, 0, len(m.Roles))
	for i, role := range m.Roles {
		config.Series = append(config.Series, ChartSeries{
			Name:  role,
			Data:  closedPoints(m.Categories, m.Column(role)),
			Color: defaultColors[i%len(defaultColors)],
		})
	}

	return config
}

// ClosedValues returns values with the first one appended again.
func ClosedValues(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	out := make([]float64, 0, len(values)+1)
	out = append(out, values...)
	return append(out, values[0])
}

func closedPoints(labels []string, values []float64) []ChartPoint {
	closed := ClosedValues(values)
	points := make([]ChartPoint, len(closed))
	for i, v := range closed {
		points[i] = ChartPoint{
			Label: labels[i%len(labels)],
			Value: v,
		}
	}
	return points
}
