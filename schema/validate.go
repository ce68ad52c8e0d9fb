package schema

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Supported output formats.
var formats = map[string]bool{"png": true, "svg": true}

// Validate checks that every chart can be built and rendered.
// All problems are reported together in one CodeInvalidArgument error.
func (c *Config) Validate() error {
	var problems []string

	if c.Columns.Category == "" || c.Columns.Responder == "" || c.Columns.Score == "" {
		problems = append(problems, "columns.category, columns.responder and columns.score must all be set")
	}
	if c.Source.File == "" && c.Source.URL == "" && (c.Source.SheetID == "" || c.Source.GID == "") {
		problems = append(problems, "source needs a file, a url, or both sheet_id and gid")
	}

	if len(c.Charts) == 0 {
		problems = append(problems, "at least one chart is required")
	}
	prefixes := make(map[string]string)
	for i, ch := range c.Charts {
		label := ch.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
		}
		if ch.FilePrefix == "" {
			problems = append(problems, fmt.Sprintf("chart %s: file_prefix is required", label))
		} else if other, dup := prefixes[ch.FilePrefix]; dup {
			problems = append(problems, fmt.Sprintf("chart %s: file_prefix %q already used by %s", label, ch.FilePrefix, other))
		} else {
			prefixes[ch.FilePrefix] = label
		}
		if len(c.CategorySets[ch.Categories]) == 0 {
			problems = append(problems, fmt.Sprintf("chart %s: unknown or empty category set %q", label, ch.Categories))
		}
	}

	if !formats[c.Output.Format] {
		problems = append(problems, fmt.Sprintf("output.format %q is not one of png, svg", c.Output.Format))
	}
	if c.Radar.Width <= 0 || c.Radar.Height <= 0 {
		problems = append(problems, "radar.width and radar.height must be positive")
	}
	if c.Radar.ScaleMax <= 0 {
		problems = append(problems, "radar.scale_max must be positive")
	}
	if c.Radar.LabelRadius <= c.Radar.ScaleMax {
		problems = append(problems, fmt.Sprintf("radar.label_radius (%.2f) must exceed radar.scale_max (%.2f)",
			c.Radar.LabelRadius, c.Radar.ScaleMax))
	}

	if len(problems) == 0 {
		return nil
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("invalid report config: " + strings.Join(problems, "; "))
}
