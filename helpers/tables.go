package helpers

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spektr-org/feedbackradar/engine"
)

// ============================================================================
// TABLE EXPORT — One view's matrix as a Sheets-ready CSV
// ============================================================================

// TableSuffix is appended to a view's file prefix for its table export.
const TableSuffix = "_table.csv"

// WriteTableCSV writes table to <dir>/<prefix>_table.csv and returns the path.
// Blank cells stay blank. The summary row, when present, comes last.
func WriteTableCSV(dir, prefix string, table *engine.TableData) (string, error) {
	if table == nil || len(table.Columns) == 0 {
		return "", fmt.Errorf("table %q has no columns", prefix)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(dir, prefix+TableSuffix)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create table file: %w", err)
	}

	cw := csv.NewWriter(f)
	cw.Write(table.Header())
	for _, row := range table.Rows {
		cw.Write(row)
	}
	if table.Summary != nil {
		row := make([]string, len(table.Columns))
		row[0] = table.Summary.Label
		for i, col := range table.Columns[1:] {
			row[i+1] = table.Summary.Values[col.Key]
		}
		cw.Write(row)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return "", fmt.Errorf("write table: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close table: %w", err)
	}
	return path, nil
}
