package engine

import (
	"fmt"
	"log"
)

// ============================================================================
// EXECUTOR — Raw rows → one Matrix per view
// ============================================================================
// Entry point: Execute(raw, views, opts...)
//
// Pipeline:
//   1. Clean rows (role mapping, category trim, score coercion, drop missing)
//   2. Bind cleaned rows as a RecordView
//   3. Aggregate means per (category, role) for the whole batch
//   4. Per view: filter → aggregate → pivot (PivotView) → Matrix
//   5. Attach chart, table and text renditions
//
// This function never performs I/O. Rendering is the radar package's job.
// ============================================================================

// Execute prepares every view from the same batch of raw rows.
func Execute(raw []RawResponse, views []ViewSpec, opts ...Option) (*Result, error) {
	if len(views) == 0 {
		return nil, fmt.Errorf("no views requested")
	}
	for _, v := range views {
		if len(v.Categories) == 0 {
			return nil, fmt.Errorf("view %q has no categories", v.Name)
		}
	}

	cfg := applyOptions(opts)

	// 1. Clean
	responses, stats := Clean(raw, cfg.RoleMapping)
	log.Printf("🧹 Cleaned %d rows: %d kept, %d dropped (missing or non-numeric score)",
		stats.Input, stats.Kept, stats.Dropped)

	// 2–3. Bind and aggregate
	view := BindResponses(responses)
	aggs := DropThin(AggregateMeans(view), cfg.MinCount)

	result := &Result{
		Success:    true,
		Stats:      stats,
		Aggregates: aggs,
		Views:      make([]ViewResult, 0, len(views)),
	}

	// 4–5. Pivot and build renditions
	for _, spec := range views {
		m := PivotView(view, spec, cfg.MinCount)
		vr := ViewResult{
			Spec:        spec,
			Matrix:      m,
			ChartConfig: BuildRadarChart(spec.Title, m),
			TableData:   BuildTable(spec.Title, m),
			Summary:     BuildText(m),
		}
		if missing := missingCategories(spec.Categories, m); len(missing) > 0 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("view %q: no data for %v", spec.Name, missing))
		}
		log.Printf("📊 View %q: %d categories × %d roles", spec.Name, m.Rows(), len(m.Roles))
		result.Views = append(result.Views, vr)
	}

	return result, nil
}

func missingCategories(requested []string, m Matrix) []string {
	var missing []string
	for _, c := range requested {
		if indexOf(m.Categories, c) < 0 {
			missing = append(missing, c)
		}
	}
	return missing
}
