package helpers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spektr-org/feedbackradar/schema"
)

const sampleCSV = "Group,Responder,Score\nCoaching,Me - Richard,4\nVision,Me - Richard,5\n"

func csvServer(t *testing.T, status int, contentType, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func requireUnavailable(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var eb *errbuilder.ErrBuilder
	require.ErrorAs(t, err, &eb)
	assert.Equal(t, errbuilder.CodeUnavailable, eb.ErrCode())
	assert.Contains(t, eb.Msg, SharingHint)
}

func TestFetchCSVSuccess(t *testing.T) {
	srv := csvServer(t, http.StatusOK, "text/csv", sampleCSV)

	data, err := FetchCSV(context.Background(), srv.Client(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, sampleCSV, string(data))
}

func TestFetchCSVNotFound(t *testing.T) {
	srv := csvServer(t, http.StatusNotFound, "text/plain", "nope")

	_, err := FetchCSV(context.Background(), srv.Client(), srv.URL)
	requireUnavailable(t, err)
}

func TestFetchCSVSignInPage(t *testing.T) {
	srv := csvServer(t, http.StatusOK, "text/html; charset=utf-8", "<html>Sign in</html>")

	_, err := FetchCSV(context.Background(), srv.Client(), srv.URL)
	requireUnavailable(t, err)
}

func TestFetchCSVConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := FetchCSV(context.Background(), nil, url)
	requireUnavailable(t, err)
}

func TestFetchCSVCancelledContext(t *testing.T) {
	srv := csvServer(t, http.StatusOK, "text/csv", sampleCSV)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FetchCSV(ctx, srv.Client(), srv.URL)
	requireUnavailable(t, err)
}

func TestLoadResponsesFromSheet(t *testing.T) {
	srv := csvServer(t, http.StatusOK, "text/csv", sampleCSV)

	rows, err := LoadResponses(context.Background(), schema.Source{URL: srv.URL}, defaultCols, srv.Client())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Vision", rows[1].Group)
}

func TestLoadResponsesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	// The URL is never contacted when File is set.
	src := schema.Source{File: path, URL: "http://127.0.0.1:1/unreachable"}
	rows, err := LoadResponses(context.Background(), src, defaultCols, nil)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestLoadResponsesMissingFile(t *testing.T) {
	_, err := LoadResponses(context.Background(), schema.Source{File: filepath.Join(t.TempDir(), "absent.csv")}, defaultCols, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
