package engine

import (
	"fmt"
)

// ============================================================================
// TABLE BUILDER — Produces TableData from a Matrix
// ============================================================================
// First column is the category, then one column per role. Absent cells stay
// blank, never "0.00": a blank means "no responses", not a low score.
// ============================================================================

// BuildTable renders a matrix as a table with a per-role mean summary row.
func BuildTable(title string, m Matrix) *TableData {
	if m.Rows() == 0 {
		return &TableData{
			Title:   title,
			Columns: []Column{},
			Rows:    [][]string{},
		}
	}

	columns := make([]Column, 0, len(m.Roles)+1)
	columns = append(columns, Column{Key: DimGroup, Label: LabelForDimension(DimGroup), Type: "text", Align: "left"})
	for _, role := range m.Roles {
		columns = append(columns, Column{Key: role, Label: role, Type: "number", Align: "right"})
	}

	rows := make([][]string, 0, m.Rows())
	for ri, cat := range m.Categories {
		row := make([]string, 0, len(columns))
		row = append(row, cat)
		for ci := range m.Roles {
			row = append(row, FormatScore(m.Cells[ri][ci]))
		}
		rows = append(rows, row)
	}

	summary := &Summary{
		Label:  "Mean",
		Values: make(map[string]string, len(m.Roles)),
	}
	for _, rm := range roleMeans(m) {
		summary.Values[rm.Role] = fmt.Sprintf("%.2f", rm.Mean)
	}

	return &TableData{
		Title:   title,
		Columns: columns,
		Rows:    rows,
		Summary: summary,
	}
}

// Header returns the column labels in order.
func (t *TableData) Header() []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.Label
	}
	return out
}
