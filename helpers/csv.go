package helpers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/spektr-org/feedbackradar/engine"
	"github.com/spektr-org/feedbackradar/schema"
)

// ============================================================================
// CSV HELPER — Parses a survey export into []engine.RawResponse
// ============================================================================
// Columns are found by header name, so column order and extra columns in the
// export don't matter. Values are kept as raw text; engine.Clean does the
// coercion and decides what to drop.
// ============================================================================

// ParseResponses reads CSV bytes and extracts the three configured columns.
// A header missing any of them is a precondition failure. A row the CSV
// reader cannot parse becomes an empty response, so engine.Clean counts it
// as dropped.
func ParseResponses(data []byte, cols schema.Columns) ([]engine.RawResponse, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	// Read header
	headers, err := reader.Read()
	if err == io.EOF {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("CSV export is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	index := headerIndex(headers)
	var missing []string
	lookup := func(name string) int {
		i, ok := index[strings.TrimSpace(name)]
		if !ok {
			missing = append(missing, fmt.Sprintf("%q", name))
			return -1
		}
		return i
	}
	catIdx := lookup(cols.Category)
	respIdx := lookup(cols.Responder)
	scoreIdx := lookup(cols.Score)
	if len(missing) > 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("CSV export is missing column(s) " + strings.Join(missing, ", "))
	}

	// Read rows
	var out []engine.RawResponse
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			out = append(out, engine.RawResponse{})
			continue
		}
		out = append(out, engine.RawResponse{
			Group:     field(row, catIdx),
			Responder: field(row, respIdx),
			Score:     field(row, scoreIdx),
		})
	}
	return out, nil
}

// headerIndex maps trimmed header cells to their position. The first
// occurrence of a duplicated header wins.
func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		h = strings.TrimSpace(h)
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}
	return index
}

// field returns row[i] or "" when the row is short.
func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
