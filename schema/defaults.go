package schema

import "github.com/spektr-org/feedbackradar/engine"

// Default spreadsheet holding the leadership 360 responses.
const (
	DefaultSheetID = "100Ert_y9Y5OrxzoBsmvvkH1xMjqiuUqBSIUS9jQbDr8"
	DefaultGID     = "1096843083"
)

// DefaultSuffix is appended to every chart's file prefix.
const DefaultSuffix = "_radar_chart_unwrapped"

// Default returns the leadership 360 report: two category sets, each shown
// once without the self-assessment and once as subordinate vs. self.
func Default() *Config {
	return &Config{
		Name: "Leadership 360",
		Source: Source{
			SheetID: DefaultSheetID,
			GID:     DefaultGID,
		},
		Columns: Columns{
			Category:  "Group",
			Responder: "Responder",
			Score:     "Score",
		},
		Roles: Roles{
			Mapping: engine.DefaultRoleMapping(),
		},
		CategorySets: map[string][]string{
			"strategic":   {"Coaching", "Innovation", "Role Modelling", "Vision"},
			"operational": {"Seeing the Big Picture", "Listening to Everyone", "Managing Stress", "Handing Responsibility to the Team"},
		},
		Charts: []Chart{
			{
				Name:       "strategic_no_me",
				Title:      "Transformational Leadership View",
				FilePrefix: "radar_strategic_no_me_unwrapped",
				Categories: "strategic",
				Roles:      engine.RoleFilter{Exclude: []string{engine.RoleSelf}},
			},
			{
				Name:       "operational_no_me",
				Title:      "Adaptive Leadership View",
				FilePrefix: "radar_operational_no_me_unwrapped",
				Categories: "operational",
				Roles:      engine.RoleFilter{Exclude: []string{engine.RoleSelf}},
			},
			{
				Name:       "strategic_sub_vs_me",
				Title:      "Transformational Leadership: Subordinate View vs. Self-Assessment",
				FilePrefix: "radar_strategic_sub_vs_me_unwrapped",
				Categories: "strategic",
				Roles:      engine.RoleFilter{Include: []string{engine.RoleSubordinate, engine.RoleSelf}},
			},
			{
				Name:       "operational_sub_vs_me",
				Title:      "Adaptive Leadership: Subordinate View vs. Self-Assessment",
				FilePrefix: "radar_operational_sub_vs_me_unwrapped",
				Categories: "operational",
				Roles:      engine.RoleFilter{Include: []string{engine.RoleSubordinate, engine.RoleSelf}},
			},
		},
		Output: Output{
			Dir:    ".",
			Format: "png",
			Suffix: DefaultSuffix,
		},
		Radar: Radar{
			Width:       1200,
			Height:      1200,
			ScaleMax:    5,
			LabelRadius: 5.3,
		},
	}
}
