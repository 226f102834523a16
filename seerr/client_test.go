package seerr

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
	return NewClient(backend.URL, "seerr-key", false), got
}

func TestStatus(t *testing.T) {
	client, got := newBackend(t, http.StatusOK, `{"version":"2.0.0"}`)

	raw, err := client.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/status", got.path)
	assert.Equal(t, "seerr-key", got.auth)
	assert.JSONEq(t, `{"version":"2.0.0"}`, string(raw))
}

func TestCreateRequest(t *testing.T) {
	client, got := newBackend(t, http.StatusCreated, `{"id":1}`)

	_, err := client.CreateRequest(context.Background(), MediaRequest{
		MediaType: "tv",
		MediaID:   1399,
		Seasons:   []int{1, 2},
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/api/v1/request", got.path)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(got.body, &payload))
	assert.Equal(t, "tv", payload["mediaType"])
	assert.Equal(t, float64(1399), payload["mediaId"])
	assert.Equal(t, []any{float64(1), float64(2)}, payload["seasons"])
	// Unset optional fields stay out of the payload.
	assert.NotContains(t, payload, "rootFolder")
	assert.NotContains(t, payload, "serverId")
}

func TestRequestsDefaults(t *testing.T) {
	client, got := newBackend(t, http.StatusOK, `{"results":[]}`)

	_, err := client.Requests(context.Background(), RequestFilter{})
	require.NoError(t, err)
	assert.Equal(t, "skip=0&sort=added&take=20", got.query)

	_, err = client.Requests(context.Background(), RequestFilter{Take: 5, Skip: 10, Filter: "pending", Sort: "modified"})
	require.NoError(t, err)
	assert.Equal(t, "filter=pending&skip=10&sort=modified&take=5", got.query)
}

func TestApproveAndDecline(t *testing.T) {
	client, got := newBackend(t, http.StatusOK, `{"id":3,"status":2}`)

	_, err := client.ApproveRequest(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/api/v1/request/3/approve", got.path)

	_, err = client.DeclineRequest(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/request/3/decline", got.path)
}

func TestDeleteRequestEmptyResponse(t *testing.T) {
	client, got := newBackend(t, http.StatusNoContent, "")

	raw, err := client.DeleteRequest(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, got.method)
	assert.Equal(t, "/api/v1/request/8", got.path)
	assert.JSONEq(t, `{"status": "success"}`, string(raw))
}

func TestSearchDefaults(t *testing.T) {
	client, got := newBackend(t, http.StatusOK, `{"results":[]}`)

	_, err := client.Search(context.Background(), "dune", 0, "")
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/search", got.path)
	assert.Equal(t, "language=en&page=1&query=dune", got.query)
}

func TestBackendError(t *testing.T) {
	client, _ := newBackend(t, http.StatusForbidden, `{"message":"permission denied"}`)

	_, err := client.AuthMe(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error: 403")
	assert.Contains(t, err.Error(), "permission denied")
}
