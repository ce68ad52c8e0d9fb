package engine

// ============================================================================
// FILTERS — Dimension-Based Filtering via RecordView
// ============================================================================
// Single-pass filter: checks ALL dimension constraints per record in one loop.
// Returns a SubView (index list into parent) — zero data copy.
// Values are compared exactly; "Peer view" and "peer view" are different roles.
// ============================================================================

// Filters define which records to include.
// Keys are dimension names. OR within a dimension, AND across dimensions.
// Exclude drops a record whose dimension value is listed, after Include.
type Filters struct {
	Include map[string][]string `json:"include,omitempty"`
	Exclude map[string][]string `json:"exclude,omitempty"`
}

// IsEmpty returns true if no filters are set.
func (f Filters) IsEmpty() bool {
	for _, vals := range f.Include {
		if len(vals) > 0 {
			return false
		}
	}
	for _, vals := range f.Exclude {
		if len(vals) > 0 {
			return false
		}
	}
	return true
}

// ViewFilters converts a view's category list and role filter into Filters.
func ViewFilters(spec ViewSpec) Filters {
	f := Filters{
		Include: map[string][]string{DimGroup: spec.Categories},
	}
	if len(spec.Roles.Include) > 0 {
		f.Include[DimResponder] = spec.Roles.Include
	}
	if len(spec.Roles.Exclude) > 0 {
		f.Exclude = map[string][]string{DimResponder: spec.Roles.Exclude}
	}
	return f
}

// ApplyFilters returns a view of records matching all dimension filters.
// Empty filter = no restriction (returns original view).
func ApplyFilters(view RecordView, filters Filters) RecordView {
	if filters.IsEmpty() {
		return view
	}

	include := buildSets(filters.Include)
	exclude := buildSets(filters.Exclude)

	n := view.Len()
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if matches(view, i, include, exclude) {
			indices = append(indices, i)
		}
	}

	return newSubView(view, indices)
}

// AllowedRole reports whether a role passes a RoleFilter.
func AllowedRole(role string, rf RoleFilter) bool {
	if len(rf.Include) > 0 && !toSet(rf.Include)[role] {
		return false
	}
	return !toSet(rf.Exclude)[role]
}

func matches(view RecordView, i int, include, exclude map[string]map[string]bool) bool {
	for dim, set := range include {
		if !set[view.Dimension(i, dim)] {
			return false
		}
	}
	for dim, set := range exclude {
		if set[view.Dimension(i, dim)] {
			return false
		}
	}
	return true
}

func buildSets(dims map[string][]string) map[string]map[string]bool {
	sets := make(map[string]map[string]bool)
	for dim, vals := range dims {
		if len(vals) > 0 {
			sets[dim] = toSet(vals)
		}
	}
	return sets
}

// toSet converts a string slice to a lookup set.
func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
