package engine

// ============================================================================
// FEEDBACK ENGINE TYPES — Responses, Aggregates, Matrices
// ============================================================================
// Raw rows come from a CSV export (helpers.ParseResponses). Everything after
// that is derived: cleaned responses → per-key means → category × role
// matrices → render-ready chart and table output.
//
// Dependency: engine has ZERO external dependencies.
// ============================================================================

// Canonical respondent roles produced by the default mapping.
const (
	RolePeer        = "Peer view"
	RoleSubordinate = "Subordinate view"
	RoleManager     = "Manager view"
	RoleSelf        = "My view"
)

// Record dimension/measure keys used when binding responses to a RecordView.
const (
	DimGroup     = "group"
	DimResponder = "responder"
	MeasureScore = "score"
)

// ============================================================================
// RESPONSES
// ============================================================================

// RawResponse is one survey row exactly as exported.
// Score stays text until Clean coerces it.
type RawResponse struct {
	Group     string `json:"group"`
	Responder string `json:"responder"`
	Score     string `json:"score"`
}

// Response is a cleaned row: canonical role, trimmed category, numeric score.
type Response struct {
	Category string  `json:"category"`
	Role     string  `json:"role"`
	Score    float64 `json:"score"`
}

// CleanStats reports how many rows survived coercion.
// Kept + Dropped == Input always holds.
type CleanStats struct {
	Input   int `json:"input"`
	Kept    int `json:"kept"`
	Dropped int `json:"dropped"`
}

// Aggregate is the mean score for one (category, role) key.
type Aggregate struct {
	Category string  `json:"category"`
	Role     string  `json:"role"`
	Mean     float64 `json:"mean"`
	Count    int     `json:"count"`
}

// ============================================================================
// VIEW SPEC — Which subset of the aggregates a chart shows
// ============================================================================

// RoleFilter restricts matrix columns.
// Include empty = every role. Exclude is applied after Include.
// Matching is exact.
type RoleFilter struct {
	Include []string `yaml:"include,omitempty" json:"include,omitempty"`
	Exclude []string `yaml:"exclude,omitempty" json:"exclude,omitempty"`
}

// ViewSpec describes one comparison view (one chart).
type ViewSpec struct {
	Name       string     `json:"name"`
	Title      string     `json:"title"`
	FilePrefix string     `json:"filePrefix"`
	Categories []string   `json:"categories"`
	Roles      RoleFilter `json:"roles"`
}

// ============================================================================
// MATRIX — Category × Role pivot with optional cells
// ============================================================================

// Cell holds an aggregated mean, or nothing when no responses exist for the pair.
type Cell struct {
	Value   float64 `json:"value"`
	Present bool    `json:"present"`
}

// Matrix is a category-indexed, role-columned table of means.
// Cells[i][j] belongs to Categories[i] and Roles[j].
type Matrix struct {
	Categories []string `json:"categories"`
	Roles      []string `json:"roles"`
	Cells      [][]Cell `json:"cells"`
}

// Rows returns the number of categories.
func (m Matrix) Rows() int { return len(m.Categories) }

// Cell returns the cell for a category/role pair and whether the pair exists
// in the matrix at all.
func (m Matrix) Cell(category, role string) (Cell, bool) {
	ri, ci := indexOf(m.Categories, category), indexOf(m.Roles, role)
	if ri < 0 || ci < 0 {
		return Cell{}, false
	}
	return m.Cells[ri][ci], true
}

// Column returns a role's values in row order, absent cells as 0.
// The substitution is for plotting only.
func (m Matrix) Column(role string) []float64 {
	ci := indexOf(m.Roles, role)
	if ci < 0 {
		return nil
	}
	values := make([]float64, len(m.Categories))
	for ri := range m.Categories {
		if c := m.Cells[ri][ci]; c.Present {
			values[ri] = c.Value
		}
	}
	return values
}

func indexOf(items []string, s string) int {
	for i, item := range items {
		if item == s {
			return i
		}
	}
	return -1
}

// ============================================================================
// RESULT — Render-ready output
// ============================================================================

// Result is the engine's output for one batch.
type Result struct {
	Success    bool         `json:"success"`
	Stats      CleanStats   `json:"stats"`
	Aggregates []Aggregate  `json:"aggregates"`
	Views      []ViewResult `json:"views"`
	Errors     []string     `json:"errors,omitempty"`
}

// ViewResult carries one view's matrix and its chart/table renditions.
type ViewResult struct {
	Spec        ViewSpec     `json:"spec"`
	Matrix      Matrix       `json:"matrix"`
	ChartConfig *ChartConfig `json:"chartConfig,omitempty"`
	TableData   *TableData   `json:"tableData,omitempty"`
	Summary     *TextData    `json:"summary,omitempty"`
}

// ============================================================================
// GROUP — Intermediate computation result
// ============================================================================

// Group represents a grouped/aggregated result.
type Group struct {
	Key       string     `json:"key"`
	Label     string     `json:"label"`
	Value     float64    `json:"value"`
	Count     int        `json:"count"`
	SubGroups []Group    `json:"subGroups,omitempty"`
	View      RecordView `json:"-"` // Sub-view for records in this group (zero-copy)
}

// ============================================================================
// CHART TYPES
// ============================================================================

// ChartConfig defines how to render a chart.
type ChartConfig struct {
	ChartType  string        `json:"chartType"`
	Title      string        `json:"title"`
	Categories []string      `json:"categories"`
	Series     []ChartSeries `json:"series"`
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`
}

// ChartSeries represents a data series in a chart.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint represents a single data point.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Values returns the series values in point order.
func (s ChartSeries) Values() []float64 {
	out := make([]float64, len(s.Data))
	for i, p := range s.Data {
		out[i] = p.Value
	}
	return out
}

// ============================================================================
// TABLE TYPES
// ============================================================================

// TableData defines how to render a table.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Summary *Summary   `json:"summary,omitempty"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number"
	Align string `json:"align"` // "left", "center", "right"
}

// Summary provides per-column aggregations for a table.
type Summary struct {
	Label  string            `json:"label"`
	Values map[string]string `json:"values"`
}

// ============================================================================
// TEXT TYPES
// ============================================================================

// TextData is a short structured summary of one view.
type TextData struct {
	Value      string      `json:"value"`
	Count      int         `json:"count"`
	RoleMeans  []RoleMean  `json:"roleMeans"`
	Top        []RoleMean  `json:"top,omitempty"`
	Comparison *Comparison `json:"comparison,omitempty"`
}

// RoleMean is a role's mean over the categories it has data for.
type RoleMean struct {
	Role     string  `json:"role"`
	Category string  `json:"category,omitempty"`
	Mean     float64 `json:"mean"`
}

// Comparison contrasts the first two roles of a view category by category.
type Comparison struct {
	Left        string  `json:"left"`
	Right       string  `json:"right"`
	LargestGap  float64 `json:"largestGap"`
	GapCategory string  `json:"gapCategory"`
}
