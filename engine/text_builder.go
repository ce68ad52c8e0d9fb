package engine

import (
	"fmt"
	"math"
	"strings"
)

// ============================================================================
// TEXT BUILDER — Produces a short TextData summary for a Matrix
// ============================================================================
// Only present cells count. A role with no data in the view gets no mean.
// ============================================================================

// BuildText summarizes a matrix: per-role means, each role's strongest
// category, and for two-role views the widest gap between them.
func BuildText(m Matrix) *TextData {
	td := &TextData{
		Value: fmt.Sprintf("%d categories × %d roles", m.Rows(), len(m.Roles)),
	}
	if m.Rows() == 0 {
		return td
	}

	for ri := range m.Categories {
		for ci := range m.Roles {
			if m.Cells[ri][ci].Present {
				td.Count++
			}
		}
	}

	td.RoleMeans = roleMeans(m)
	td.Top = topCategories(m)
	if len(m.Roles) == 2 {
		td.Comparison = compareRoles(m, m.Roles[0], m.Roles[1])
	}
	return td
}

func roleMeans(m Matrix) []RoleMean {
	var out []RoleMean
	for ci, role := range m.Roles {
		var sum float64
		var n int
		for ri := range m.Categories {
			if c := m.Cells[ri][ci]; c.Present {
				sum += c.Value
				n++
			}
		}
		if n == 0 {
			continue
		}
		out = append(out, RoleMean{Role: role, Mean: RoundTo2(sum / float64(n))})
	}
	return out
}

func topCategories(m Matrix) []RoleMean {
	var out []RoleMean
	for ci, role := range m.Roles {
		best := -1
		for ri := range m.Categories {
			c := m.Cells[ri][ci]
			if c.Present && (best < 0 || c.Value > m.Cells[best][ci].Value) {
				best = ri
			}
		}
		if best < 0 {
			continue
		}
		out = append(out, RoleMean{
			Role:     role,
			Category: m.Categories[best],
			Mean:     RoundTo2(m.Cells[best][ci].Value),
		})
	}
	return out
}

// compareRoles finds the category with the widest left−right gap. Ties keep
// the earlier category; the stored gap is rounded, the comparison is not.
func compareRoles(m Matrix, left, right string) *Comparison {
	cmp := &Comparison{Left: left, Right: right}
	best := math.Inf(-1)
	for _, cat := range m.Categories {
		l, _ := m.Cell(cat, left)
		r, _ := m.Cell(cat, right)
		if !l.Present || !r.Present {
			continue
		}
		gap := l.Value - r.Value
		if math.Abs(gap) > best {
			best = math.Abs(gap)
			cmp.LargestGap = RoundTo2(gap)
			cmp.GapCategory = cat
		}
	}
	if math.IsInf(best, -1) {
		return nil
	}
	return cmp
}

// String renders the summary as one log line, e.g.
// "4 categories × 2 roles; My view 4.50, Subordinate view 3.33; widest gap Coaching (+1.50)".
func (t *TextData) String() string {
	parts := []string{t.Value}
	if len(t.RoleMeans) > 0 {
		means := make([]string, len(t.RoleMeans))
		for i, rm := range t.RoleMeans {
			means[i] = fmt.Sprintf("%s %.2f", rm.Role, rm.Mean)
		}
		parts = append(parts, strings.Join(means, ", "))
	}
	if c := t.Comparison; c != nil {
		parts = append(parts, fmt.Sprintf("widest gap %s (%+.2f)", c.GapCategory, c.LargestGap))
	}
	return strings.Join(parts, "; ")
}
