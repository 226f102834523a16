package tools

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Knuckles-Team/arr-mcp/arrservice"
	"github.com/Knuckles-Team/arr-mcp/bazarr"
	"github.com/Knuckles-Team/arr-mcp/catalog"
	"github.com/Knuckles-Team/arr-mcp/config"
	"github.com/Knuckles-Team/arr-mcp/seerr"
)

// fakeServer captures tool registrations so handlers can be invoked directly.
type fakeServer struct {
	tools    map[string]mcp.Tool
	handlers map[string]server.ToolHandlerFunc
}

func newFakeServer() *fakeServer {
	return &fakeServer{
		tools:    make(map[string]mcp.Tool),
		handlers: make(map[string]server.ToolHandlerFunc),
	}
}

func (f *fakeServer) AddTool(tool mcp.Tool, handler server.ToolHandlerFunc) {
	f.tools[tool.Name] = tool
	f.handlers[tool.Name] = handler
}

func (f *fakeServer) call(t *testing.T, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	handler, ok := f.handlers[name]
	require.True(t, ok, "tool %s not registered", name)

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	result, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	var sb strings.Builder
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			sb.WriteString(tc.Text)
		}
	}
	return sb.String()
}

func testDeps(t *testing.T, backendURL string, services ...string) (Deps, *fakeServer) {
	t.Helper()
	cfg := &config.Config{
		Services:         make(map[string]config.ServiceConfig),
		AllowDestructive: true,
	}
	for _, name := range services {
		cfg.Services[name] = config.ServiceConfig{
			URL:        backendURL,
			APIKey:     "test-key",
			AuthMethod: "header",
			AuthHeader: "X-Api-Key",
		}
	}

	registry := arrservice.NewRegistry(cfg)

	indexed := make(map[string][]catalog.Endpoint)
	for name, endpoints := range catalog.Services() {
		if registry.Has(name) {
			indexed[name] = endpoints
		}
	}

	return Deps{
		Config:   cfg,
		Registry: registry,
		Index:    catalog.NewIndex(indexed),
	}, newFakeServer()
}

func TestRegisterAllOnlyConfiguredServices(t *testing.T) {
	deps, fs := testDeps(t, "http://radarr:7878", "radarr")
	RegisterAll(fs, deps)

	assert.Contains(t, fs.tools, "radarr_get_movie")
	assert.Contains(t, fs.tools, "radarr_lookup_movie")
	assert.Contains(t, fs.tools, "list_services")
	assert.Contains(t, fs.tools, "search_tools")

	// Sonarr is unconfigured so none of its tools exist.
	for name := range fs.tools {
		assert.False(t, strings.HasPrefix(name, "sonarr_"), name)
	}
	assert.NotContains(t, fs.tools, "bazarr_get_series")
	assert.NotContains(t, fs.tools, "seerr_get_status")
}

func TestRegisterAllSkipsDeleteWhenNotDestructive(t *testing.T) {
	deps, fs := testDeps(t, "http://radarr:7878", "radarr")
	deps.Config.AllowDestructive = false
	RegisterAll(fs, deps)

	assert.Contains(t, fs.tools, "radarr_get_movie_id")
	assert.NotContains(t, fs.tools, "radarr_delete_movie_id")
}

func TestForwardHandler(t *testing.T) {
	var gotPath, gotQuery, gotAuth string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("X-Api-Key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"title":"Dune","id":7}]`))
	}))
	defer backend.Close()

	deps, fs := testDeps(t, backend.URL, "radarr")
	RegisterAll(fs, deps)

	result := fs.call(t, "radarr_get_movie", map[string]any{"tmdbId": float64(438631)})
	assert.False(t, result.IsError)
	assert.JSONEq(t, `[{"title":"Dune","id":7}]`, resultText(t, result))
	assert.Equal(t, "/api/v3/movie", gotPath)
	assert.Equal(t, "tmdbId=438631", gotQuery)
	assert.Equal(t, "test-key", gotAuth)
}

func TestForwardHandlerPathParam(t *testing.T) {
	var gotPath string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"id":42}`))
	}))
	defer backend.Close()

	deps, fs := testDeps(t, backend.URL, "radarr")
	RegisterAll(fs, deps)

	result := fs.call(t, "radarr_get_movie_id", map[string]any{"id": float64(42)})
	assert.False(t, result.IsError)
	assert.Equal(t, "/api/v3/movie/42", gotPath)
}

func TestForwardHandlerBodyPassThrough(t *testing.T) {
	var gotBody []byte
	var gotMethod string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1}`))
	}))
	defer backend.Close()

	deps, fs := testDeps(t, backend.URL, "radarr")
	RegisterAll(fs, deps)

	result := fs.call(t, "radarr_post_movie", map[string]any{
		"data": map[string]any{"title": "Dune", "tmdbId": float64(438631)},
	})
	assert.False(t, result.IsError)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.JSONEq(t, `{"title":"Dune","tmdbId":438631}`, string(gotBody))
}

func TestForwardHandlerMissingRequiredSkipsNetwork(t *testing.T) {
	called := false
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
	}))
	defer backend.Close()

	deps, fs := testDeps(t, backend.URL, "radarr")
	RegisterAll(fs, deps)

	result := fs.call(t, "radarr_get_movie_id", map[string]any{})
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "missing required parameter")
	assert.False(t, called, "backend must not be hit on validation failure")
}

func TestForwardHandlerBackendError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"NotFound"}`))
	}))
	defer backend.Close()

	deps, fs := testDeps(t, backend.URL, "radarr")
	RegisterAll(fs, deps)

	result := fs.call(t, "radarr_get_movie_id", map[string]any{"id": float64(404)})
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "API error: 404")
	assert.Contains(t, resultText(t, result), "NotFound")
}

func TestForwardHandlerEmptyBody(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer backend.Close()

	deps, fs := testDeps(t, backend.URL, "radarr")
	RegisterAll(fs, deps)

	result := fs.call(t, "radarr_get_movie", nil)
	assert.False(t, result.IsError)
	assert.JSONEq(t, `{"status": "success"}`, resultText(t, result))
}

func TestAddMovieFlow(t *testing.T) {
	var addBody []byte
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/v3/movie/lookup":
			assert.Equal(t, "dune", r.URL.Query().Get("term"))
			_, _ = w.Write([]byte(`[{"title":"Dune","tmdbId":438631,"year":2021,"titleSlug":"dune-438631","images":[{"coverType":"poster"}]}]`))
		case r.URL.Path == "/api/v3/movie" && r.Method == http.MethodPost:
			addBody, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":10,"title":"Dune"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer backend.Close()

	deps, fs := testDeps(t, backend.URL, "radarr")
	RegisterAll(fs, deps)

	result := fs.call(t, "radarr_add_movie", map[string]any{
		"term":               "dune",
		"root_folder_path":   "/movies",
		"quality_profile_id": float64(4),
	})
	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), `"id":10`)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(addBody, &payload))
	assert.Equal(t, "Dune", payload["title"])
	assert.Equal(t, float64(438631), payload["tmdbId"])
	assert.Equal(t, float64(4), payload["qualityProfileId"])
	assert.Equal(t, "/movies", payload["rootFolderPath"])
	assert.Equal(t, true, payload["monitored"])
	addOptions, ok := payload["addOptions"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, addOptions["searchForMovie"])
}

func TestAddMovieNoResults(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer backend.Close()

	deps, fs := testDeps(t, backend.URL, "radarr")
	RegisterAll(fs, deps)

	result := fs.call(t, "radarr_add_movie", map[string]any{
		"term":               "zzzzz",
		"root_folder_path":   "/movies",
		"quality_profile_id": float64(1),
	})
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "no results found")
}

func TestSearchTools(t *testing.T) {
	deps, fs := testDeps(t, "http://radarr:7878", "radarr", "sonarr")
	RegisterAll(fs, deps)

	result := fs.call(t, "search_tools", map[string]any{"query": "calendar", "limit": float64(5)})
	assert.False(t, result.IsError)

	var summaries []catalog.Summary
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &summaries))
	assert.NotEmpty(t, summaries)
	assert.LessOrEqual(t, len(summaries), 5)
	for _, s := range summaries {
		assert.Contains(t, []string{"radarr", "sonarr"}, s.Service)
	}

	result = fs.call(t, "search_tools", map[string]any{})
	assert.True(t, result.IsError)
}

func TestListServices(t *testing.T) {
	deps, fs := testDeps(t, "http://radarr:7878", "radarr")
	RegisterAll(fs, deps)

	result := fs.call(t, "list_services", nil)
	assert.False(t, result.IsError)

	var services []map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &services))
	require.Len(t, services, len(config.KnownServices))

	byName := make(map[string]map[string]any)
	for _, s := range services {
		byName[s["name"].(string)] = s
	}
	assert.Equal(t, true, byName["radarr"]["configured"])
	assert.Greater(t, byName["radarr"]["tools"], float64(100))
	assert.Equal(t, false, byName["sonarr"]["configured"])
	assert.Equal(t, float64(8989), byName["sonarr"]["default_port"])
}

func TestListServicesCountsActualRegistrations(t *testing.T) {
	deps, fs := testDeps(t, "http://radarr:7878", "radarr", "bazarr")
	deps.Config.AllowDestructive = false
	deps.Bazarr = bazarr.NewClient("http://bazarr:6767", "key", false)
	RegisterAll(fs, deps)

	registered := make(map[string]int)
	for name := range fs.tools {
		if i := strings.Index(name, "_"); i > 0 {
			registered[name[:i]]++
		}
	}

	result := fs.call(t, "list_services", nil)
	var services []map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &services))

	byName := make(map[string]map[string]any)
	for _, s := range services {
		byName[s["name"].(string)] = s
	}

	// With destructive tools disabled the reported count must match what
	// was registered, not the raw catalog size.
	assert.Equal(t, float64(registered["radarr"]), byName["radarr"]["tools"])
	assert.Less(t, registered["radarr"], deps.Index.CountService("radarr"),
		"DELETE endpoints are skipped, so fewer tools than catalog entries")

	// Hand-written tools count too.
	assert.Equal(t, float64(registered["bazarr"]), byName["bazarr"]["tools"])
	assert.Greater(t, registered["bazarr"], 0)
}

type fakePromptServer struct {
	prompts  []string
	handlers map[string]server.PromptHandlerFunc
}

func newFakePromptServer() *fakePromptServer {
	return &fakePromptServer{handlers: make(map[string]server.PromptHandlerFunc)}
}

func (f *fakePromptServer) AddPrompt(prompt mcp.Prompt, handler server.PromptHandlerFunc) {
	f.prompts = append(f.prompts, prompt.Name)
	f.handlers[prompt.Name] = handler
}

func TestRegisterPrompts(t *testing.T) {
	deps, _ := testDeps(t, "http://backend", "radarr", "sonarr", "bazarr")
	deps.Bazarr = bazarr.NewClient("http://bazarr:6767", "key", false)

	ps := newFakePromptServer()
	RegisterPrompts(ps, deps)

	assert.Contains(t, ps.prompts, "search_movies")
	assert.Contains(t, ps.prompts, "movie_calendar")
	assert.Contains(t, ps.prompts, "search_series")
	assert.Contains(t, ps.prompts, "tv_calendar")
	assert.Contains(t, ps.prompts, "search_subtitles")

	// Unconfigured services register no prompts.
	assert.NotContains(t, ps.prompts, "search_artist")
	assert.NotContains(t, ps.prompts, "search_indexers")
	assert.NotContains(t, ps.prompts, "search_media")

	req := mcp.GetPromptRequest{}
	req.Params.Arguments = map[string]string{"query": "dune"}
	result, err := ps.handlers["search_subtitles"](context.Background(), req)
	require.NoError(t, err)
	require.Len(t, result.Messages, 1)
	text, ok := result.Messages[0].Content.(mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "Search for subtitles matching 'dune'", text.Text)
}

func TestBazarrTools(t *testing.T) {
	var gotPath string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer backend.Close()

	deps, fs := testDeps(t, "http://radarr:7878", "radarr")
	deps.Bazarr = bazarr.NewClient(backend.URL, "key", false)
	RegisterAll(fs, deps)

	result := fs.call(t, "bazarr_get_series", map[string]any{"page": float64(2)})
	assert.False(t, result.IsError)
	assert.Equal(t, "/api/series", gotPath)
	assert.JSONEq(t, `{"data":[]}`, resultText(t, result))
}

func TestSeerrTools(t *testing.T) {
	var gotPath, gotMethod string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		_, _ = w.Write([]byte(`{"id":3,"status":2}`))
	}))
	defer backend.Close()

	deps, fs := testDeps(t, "http://radarr:7878", "radarr")
	deps.Seerr = seerr.NewClient(backend.URL, "key", false)
	RegisterAll(fs, deps)

	result := fs.call(t, "seerr_approve_request", map[string]any{"request_id": float64(3)})
	assert.False(t, result.IsError)
	assert.Equal(t, "/api/v1/request/3/approve", gotPath)
	assert.Equal(t, http.MethodPost, gotMethod)
}

func TestArgAccessors(t *testing.T) {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{
		"s":    "value",
		"n":    float64(7),
		"ns":   "8",
		"b":    true,
		"bs":   "true",
		"list": []any{float64(1), "2", float64(3)},
	}

	assert.Equal(t, "value", argString(req, "s", "def"))
	assert.Equal(t, "def", argString(req, "missing", "def"))
	assert.Equal(t, 7, argInt(req, "n", 0))
	assert.Equal(t, 8, argInt(req, "ns", 0))
	assert.Equal(t, 9, argInt(req, "missing", 9))
	assert.True(t, argBool(req, "b", false))
	assert.True(t, argBool(req, "bs", false))
	assert.False(t, argBool(req, "missing", false))
	assert.Equal(t, []int{1, 2, 3}, argIntSlice(req, "list"))
	assert.Nil(t, argIntSlice(req, "missing"))
	assert.True(t, hasArg(req, "s"))
	assert.False(t, hasArg(req, "missing"))
}
