package helpers

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/spektr-org/feedbackradar/engine"
	"github.com/spektr-org/feedbackradar/schema"
)

// ============================================================================
// SHEETS — Fetches the survey export
// ============================================================================
// A sheet that isn't shared publicly doesn't fail with 403. Google answers
// 200 with its sign-in page, so an HTML body counts as a failed fetch too.
// ============================================================================

// SharingHint tells the user how to fix an unreadable spreadsheet.
const SharingHint = "ensure the spreadsheet's sharing setting is 'Anyone with the link can view'"

// DefaultTimeout bounds a single export download.
const DefaultTimeout = 30 * time.Second

// NewClient returns the HTTP client used for exports.
func NewClient() *http.Client {
	return &http.Client{Timeout: DefaultTimeout}
}

// FetchCSV downloads url and returns the body. Every failure comes back as
// an errbuilder error with CodeUnavailable whose message carries SharingHint.
func FetchCSV(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if client == nil {
		client = NewClient()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fetchError(fmt.Sprintf("invalid export URL %q", url), err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fetchError("HTTP request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fetchError("failed to read response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fetchError(fmt.Sprintf("export returned %d", resp.StatusCode), nil)
	}
	if strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		return nil, fetchError("export returned an HTML page instead of CSV", nil)
	}

	return body, nil
}

// LoadResponses reads the survey rows from src.File when set, otherwise from
// the spreadsheet export.
func LoadResponses(ctx context.Context, src schema.Source, cols schema.Columns, client *http.Client) ([]engine.RawResponse, error) {
	var (
		data []byte
		err  error
	)
	if src.File != "" {
		data, err = os.ReadFile(src.File)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
	} else {
		data, err = FetchCSV(ctx, client, src.ExportURL())
		if err != nil {
			return nil, err
		}
	}

	rows, err := ParseResponses(data, cols)
	if err != nil {
		return nil, err
	}
	log.Printf("📥 Loaded %d rows from %s", len(rows), src.Describe())
	return rows, nil
}

func fetchError(msg string, cause error) error {
	b := errbuilder.New().
		WithCode(errbuilder.CodeUnavailable).
		WithMsg("error loading data: " + msg + "; " + SharingHint)
	if cause != nil {
		b = b.WithCause(cause)
	}
	return b
}
