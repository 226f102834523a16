package bazarr

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	method string
	path   string
	query  string
	auth   string
	body   []byte
}

func newBackend(t *testing.T, status int, response string) (*Client, *captured) {
	t.Helper()
	got := &captured{}
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		got.query = r.URL.RawQuery
		got.auth = r.Header.Get("X-Api-Key")
		got.body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(backend.Close)
	return NewClient(backend.URL, "bazarr-key", false), got
}

func TestSeriesPagination(t *testing.T) {
	client, got := newBackend(t, http.StatusOK, `{"data":[],"total":0}`)

	raw, err := client.Series(context.Background(), 3, 10)
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, got.method)
	assert.Equal(t, "/api/series", got.path)
	assert.Equal(t, "page=3&pageSize=10", got.query)
	assert.Equal(t, "bazarr-key", got.auth)
	assert.JSONEq(t, `{"data":[],"total":0}`, string(raw))
}

func TestPaginationDefaults(t *testing.T) {
	client, got := newBackend(t, http.StatusOK, `{}`)

	_, err := client.Movies(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "page=1&pageSize=20", got.query)
}

func TestSearchSeriesSubtitles(t *testing.T) {
	t.Run("whole series", func(t *testing.T) {
		client, got := newBackend(t, http.StatusOK, `{}`)

		_, err := client.SearchSeriesSubtitles(context.Background(), 12, 0)
		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, got.method)
		assert.Equal(t, "/api/series/search", got.path)
		assert.JSONEq(t, `{"seriesId":12}`, string(got.body))
	})

	t.Run("single episode", func(t *testing.T) {
		client, got := newBackend(t, http.StatusOK, `{}`)

		_, err := client.SearchSeriesSubtitles(context.Background(), 12, 345)
		require.NoError(t, err)
		assert.Equal(t, "/api/episodes/search", got.path)
		assert.JSONEq(t, `{"episodeId":345}`, string(got.body))
	})
}

func TestDownloadMovieSubtitle(t *testing.T) {
	client, got := newBackend(t, http.StatusNoContent, "")

	raw, err := client.DownloadMovieSubtitle(context.Background(), DownloadMovieSubtitle{
		MovieID:  77,
		Language: "en",
		Forced:   false,
		HI:       true,
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/movies/subtitles", got.path)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(got.body, &payload))
	assert.Equal(t, float64(77), payload["movieId"])
	assert.Equal(t, "en", payload["language"])
	assert.Equal(t, true, payload["hi"])

	// Empty 204 responses map to the conventional success document.
	assert.JSONEq(t, `{"status": "success"}`, string(raw))
}

func TestBackendErrorSurfaced(t *testing.T) {
	client, _ := newBackend(t, http.StatusConflict, `{"message":"already searching"}`)

	_, err := client.SearchMovieSubtitles(context.Background(), 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error: 409")
	assert.Contains(t, err.Error(), "already searching")
}

func TestMovieSubtitlesPath(t *testing.T) {
	client, got := newBackend(t, http.StatusOK, `{}`)

	_, err := client.MovieSubtitles(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "/api/movies/9", got.path)
}

func TestSystemLogsDefaultLines(t *testing.T) {
	client, got := newBackend(t, http.StatusOK, `[]`)

	_, err := client.SystemLogs(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "lines=50", got.query)
}
