// Package feedbackradar turns 360° feedback ratings into radar charts.
//
// Usage:
//
//	import (
//	    "github.com/spektr-org/feedbackradar/engine"
//	    "github.com/spektr-org/feedbackradar/radar"
//	)
//
//	result, err := engine.Execute(rawResponses, views,
//	    engine.WithRoleMapping(mapping),
//	)
//	r := radar.New(radar.WithOutputDir("charts"))
//	for _, v := range result.Views {
//	    out, err := r.Render(v.Matrix, v.Spec.Title, v.Spec.FilePrefix)
//	    ...
//	}
//
// The engine cleans rows (role canonicalization, category trimming, score
// coercion), averages scores per (category, role) and pivots them into one
// category × role Matrix per configured view. The radar package lays the
// matrix out around a circle and writes one image per view.
//
// Loading data (Google Sheets CSV export or a local file) lives in helpers,
// report layout in schema. The engine never performs I/O.
package feedbackradar
