package engine

import "sort"

// ============================================================================
// PIVOT — Aggregates → Category × Role Matrix
// ============================================================================
// Rows are the requested categories that have at least one admitted aggregate;
// columns are the admitted roles that appear among those rows. Both are sorted
// so the same aggregates always give the same matrix.
//
// Keys must be unique. Aggregate guarantees that; a caller that feeds raw,
// unaggregated pairs gets last-write-wins.
// ============================================================================

// Pivot builds the matrix for one category subset and role filter.
func Pivot(aggs []Aggregate, categories []string, roles RoleFilter) Matrix {
	wanted := toSet(categories)

	type key struct{ category, role string }
	values := make(map[key]float64)
	rowSeen := make(map[string]bool)
	colSeen := make(map[string]bool)

	for _, a := range aggs {
		if !wanted[a.Category] || !AllowedRole(a.Role, roles) {
			continue
		}
		values[key{a.Category, a.Role}] = a.Mean
		rowSeen[a.Category] = true
		colSeen[a.Role] = true
	}

	m := Matrix{
		Categories: sortedKeys(rowSeen),
		Roles:      sortedKeys(colSeen),
	}
	m.Cells = make([][]Cell, len(m.Categories))
	for ri, cat := range m.Categories {
		row := make([]Cell, len(m.Roles))
		for ci, role := range m.Roles {
			if v, ok := values[key{cat, role}]; ok {
				row[ci] = Cell{Value: v, Present: true}
			}
		}
		m.Cells[ri] = row
	}
	return m
}

// PivotView runs the filter → aggregate → pivot path for one view straight
// from cleaned responses. Means backed by fewer than minCount responses are
// left out; minCount <= 1 keeps every mean.
func PivotView(view RecordView, spec ViewSpec, minCount int) Matrix {
	filtered := ApplyFilters(view, ViewFilters(spec))
	aggs := DropThin(AggregateMeans(filtered), minCount)
	return Pivot(aggs, spec.Categories, spec.Roles)
}

// DropThin removes aggregates backed by fewer than minCount responses.
func DropThin(aggs []Aggregate, minCount int) []Aggregate {
	if minCount <= 1 {
		return aggs
	}
	kept := aggs[:0:0]
	for _, a := range aggs {
		if a.Count >= minCount {
			kept = append(kept, a)
		}
	}
	return kept
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
