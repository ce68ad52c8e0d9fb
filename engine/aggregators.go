package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// ============================================================================
// AGGREGATORS — Grouping and Averaging via RecordView
// ============================================================================
// All functions operate on RecordView — zero-copy access to any data source.
// Grouping produces SubViews (index lists into parent view).
// ============================================================================

// GroupAndAggregate is the main entry point for the aggregation pipeline.
// Pipeline: group by primary → sub-group by secondary → mean of measure →
// sort both levels by key.
func GroupAndAggregate(view RecordView, primary, secondary, measure string) []Group {
	if view.Len() == 0 {
		return nil
	}

	// 1. Group
	groups := groupBySingle(view, primary)
	for i := range groups {
		groups[i].SubGroups = groupBySingle(groups[i].View, secondary)
	}

	// 2. Aggregate
	for i := range groups {
		aggregateGroup(&groups[i], measure)
		for j := range groups[i].SubGroups {
			aggregateGroup(&groups[i].SubGroups[j], measure)
		}
	}

	// 3. Sort
	SortGroups(groups)
	for i := range groups {
		SortGroups(groups[i].SubGroups)
	}

	return groups
}

// AggregateMeans averages scores per (category, role).
// One Aggregate per distinct key, ordered by category then role.
func AggregateMeans(view RecordView) []Aggregate {
	groups := GroupAndAggregate(view, DimGroup, DimResponder, MeasureScore)

	var out []Aggregate
	for _, g := range groups {
		for _, sg := range g.SubGroups {
			out = append(out, Aggregate{
				Category: g.Key,
				Role:     sg.Key,
				Mean:     sg.Value,
				Count:    sg.Count,
			})
		}
	}
	return out
}

// ============================================================================
// GROUPING
// ============================================================================

func groupBySingle(view RecordView, dimension string) []Group {
	grouped := make(map[string][]int)
	order := make([]string, 0)

	for i := 0; i < view.Len(); i++ {
		key := view.Dimension(i, dimension)
		if _, exists := grouped[key]; !exists {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], i)
	}

	groups := make([]Group, 0, len(order))
	for _, key := range order {
		groups = append(groups, Group{
			Key:   key,
			Label: key,
			View:  newSubView(view, grouped[key]),
		})
	}
	return groups
}

// ============================================================================
// AGGREGATION
// ============================================================================

func aggregateGroup(group *Group, measure string) {
	group.Count = group.View.Len()
	if group.Count == 0 {
		return
	}
	group.Value = AvgMeasure(group.View, measure)
}

// SumMeasure sums a named measure across a view.
func SumMeasure(view RecordView, measure string) float64 {
	var total float64
	for i := 0; i < view.Len(); i++ {
		total += view.Measure(i, measure)
	}
	return total
}

// AvgMeasure computes the arithmetic mean of a named measure.
func AvgMeasure(view RecordView, measure string) float64 {
	n := view.Len()
	if n == 0 {
		return 0
	}
	return SumMeasure(view, measure) / float64(n)
}

// ============================================================================
// SORTING
// ============================================================================

// SortGroups orders groups by key. The comparison is byte-wise so output
// order never depends on locale.
func SortGroups(groups []Group) {
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
}

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

// RoundTo2 rounds to 2 decimal places.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatScore renders a mean for tables: "3.50", or "" when absent.
func FormatScore(c Cell) string {
	if !c.Present {
		return ""
	}
	return fmt.Sprintf("%.2f", c.Value)
}

// LabelForDimension returns a capitalized label for a dimension.
func LabelForDimension(dimension string) string {
	if len(dimension) == 0 {
		return ""
	}
	return strings.ToUpper(dimension[:1]) + dimension[1:]
}
