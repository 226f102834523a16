package arrservice

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Knuckles-Team/arr-mcp/config"
)

func TestAuthStrategies(t *testing.T) {
	newReq := func() *http.Request {
		req, _ := http.NewRequest(http.MethodGet, "http://backend/api/v3/movie", nil)
		return req
	}

	t.Run("header", func(t *testing.T) {
		req := newReq()
		(&HeaderAuth{Header: "X-Api-Key", Key: "secret"}).Apply(req)
		assert.Equal(t, "secret", req.Header.Get("X-Api-Key"))
	})

	t.Run("query", func(t *testing.T) {
		req := newReq()
		(&QueryAuth{Param: "apikey", Key: "secret"}).Apply(req)
		assert.Equal(t, "secret", req.URL.Query().Get("apikey"))
	})

	t.Run("basic", func(t *testing.T) {
		req := newReq()
		(&BasicAuth{Username: "user", Password: "pass"}).Apply(req)
		user, pass, ok := req.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "user", user)
		assert.Equal(t, "pass", pass)
	})

	t.Run("none", func(t *testing.T) {
		req := newReq()
		NoAuth{}.Apply(req)
		assert.Empty(t, req.Header)
	})
}

func TestNewServiceAuthSelection(t *testing.T) {
	svc := NewService("radarr", config.ServiceConfig{URL: "http://r:7878/", APIKey: "k", AuthMethod: "header", AuthHeader: "X-Api-Key"})
	assert.IsType(t, &HeaderAuth{}, svc.Auth)
	assert.Equal(t, "http://r:7878", svc.BaseURL, "trailing slash trimmed")

	svc = NewService("bazarr", config.ServiceConfig{URL: "http://b:6767", APIKey: "k", AuthMethod: "query"})
	assert.IsType(t, &QueryAuth{}, svc.Auth)

	svc = NewService("x", config.ServiceConfig{URL: "http://x", APIKey: "k", AuthMethod: "basic"})
	assert.IsType(t, &BasicAuth{}, svc.Auth)

	svc = NewService("open", config.ServiceConfig{URL: "http://open"})
	assert.IsType(t, NoAuth{}, svc.Auth)
}

func TestDoRequest(t *testing.T) {
	var got *http.Request
	var gotBody []byte
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[{"id": 1}]`))
	}))
	defer backend.Close()

	svc := NewService("radarr", config.ServiceConfig{
		URL:        backend.URL,
		APIKey:     "secret",
		AuthMethod: "header",
		AuthHeader: "X-Api-Key",
	})

	query := url.Values{}
	query.Set("term", "dune part two")
	body, status, err := svc.DoRequest(context.Background(), http.MethodPost, "/api/v3/movie", query, []byte(`{"title":"Dune"}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[{"id": 1}]`, string(body))

	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/api/v3/movie", got.URL.Path)
	assert.Equal(t, "dune part two", got.URL.Query().Get("term"))
	assert.Equal(t, "secret", got.Header.Get("X-Api-Key"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, `{"title":"Dune"}`, string(gotBody))
}

func TestDoRequestPassesBackendErrors(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"NotFound"}`, http.StatusNotFound)
	}))
	defer backend.Close()

	svc := NewService("radarr", config.ServiceConfig{URL: backend.URL, APIKey: "k", AuthMethod: "header"})

	body, status, err := svc.DoRequest(context.Background(), http.MethodGet, "/api/v3/movie/99", nil, nil)
	require.NoError(t, err, "HTTP error statuses are not transport errors")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, string(body), "NotFound")
}

func TestDoRequestNoBodyOmitsContentType(t *testing.T) {
	var contentType string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	}))
	defer backend.Close()

	svc := NewService("sonarr", config.ServiceConfig{URL: backend.URL, APIKey: "k", AuthMethod: "header"})
	_, _, err := svc.DoRequest(context.Background(), http.MethodGet, "/api/v3/series", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, contentType)
}

func TestRegistry(t *testing.T) {
	cfg := &config.Config{Services: map[string]config.ServiceConfig{
		"radarr": {URL: "http://radarr:7878", APIKey: "k"},
		"sonarr": {URL: "http://sonarr:8989", APIKey: "k"},
		"lidarr": {}, // no URL: unconfigured
	}}

	r := NewRegistry(cfg)

	assert.True(t, r.Has("radarr"))
	assert.True(t, r.Has("sonarr"))
	assert.False(t, r.Has("lidarr"))
	assert.Equal(t, []string{"radarr", "sonarr"}, r.List())

	svc, err := r.Get("radarr")
	require.NoError(t, err)
	assert.Equal(t, "radarr", svc.Name)

	_, err = r.Get("prowlarr")
	assert.Error(t, err)
}
