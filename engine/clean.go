package engine

import (
	"math"
	"strconv"
	"strings"
)

// ============================================================================
// CLEANING — Role canonicalization, category trimming, score coercion
// ============================================================================
// Row-level defects are never errors. A row whose score does not parse as a
// finite number is dropped whole and only shows up in CleanStats.Dropped.
// ============================================================================

// DefaultRoleMapping maps the survey's raw responder answers to canonical roles.
func DefaultRoleMapping() map[string]string {
	return map[string]string{
		"Someone who has worked as Richard's peer":                                RolePeer,
		"Someone who reports/reported to Richard - either directly or indirectly": RoleSubordinate,
		"Someone who has managed Richard":                                         RoleManager,
		"Me - Richard":                                                            RoleSelf,
	}
}

// CanonicalRole looks a raw responder label up in mapping.
// Unknown labels are returned unchanged.
func CanonicalRole(raw string, mapping map[string]string) string {
	if canonical, ok := mapping[raw]; ok {
		return canonical
	}
	return raw
}

// ParseScore coerces a raw score. ok is false for empty, non-numeric,
// NaN and infinite values.
func ParseScore(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Clean normalizes raw rows and drops rows with a missing score.
func Clean(raw []RawResponse, mapping map[string]string) ([]Response, CleanStats) {
	stats := CleanStats{Input: len(raw)}
	out := make([]Response, 0, len(raw))

	for _, r := range raw {
		score, ok := ParseScore(r.Score)
		if !ok {
			stats.Dropped++
			continue
		}
		out = append(out, Response{
			Category: strings.TrimSpace(r.Group),
			Role:     CanonicalRole(r.Responder, mapping),
			Score:    score,
		})
	}

	stats.Kept = len(out)
	return out, stats
}
