package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRequestMissingRequired(t *testing.T) {
	ep := Endpoint{
		Name:   "get_movie_id",
		Method: "GET",
		Path:   "/api/v3/movie/{id}",
		Params: []Param{p("id", Int)},
	}

	_, err := ep.BuildRequest(map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing required parameter "id"`)

	_, err = ep.BuildRequest(map[string]any{"id": nil})
	assert.Error(t, err)
}

func TestBuildRequestPathInterpolation(t *testing.T) {
	ep := Endpoint{
		Name:   "get_movie_id",
		Method: "GET",
		Path:   "/api/v3/movie/{id}",
		Params: []Param{p("id", Int)},
	}

	// JSON numbers decode to float64; integers must not gain a decimal.
	req, err := ep.BuildRequest(map[string]any{"id": float64(42)})
	require.NoError(t, err)
	assert.Equal(t, "/api/v3/movie/42", req.Path)
	assert.Equal(t, "GET", req.Method)
	assert.Nil(t, req.Body)
}

func TestBuildRequestPathEscaping(t *testing.T) {
	ep := Endpoint{
		Name:   "get_tag",
		Method: "GET",
		Path:   "/api/v3/tag/{label}",
		Params: []Param{p("label", String)},
	}

	req, err := ep.BuildRequest(map[string]any{"label": "a/b c"})
	require.NoError(t, err)
	assert.Equal(t, "/api/v3/tag/a%2Fb%20c", req.Path)
}

func TestBuildRequestQuery(t *testing.T) {
	ep := Endpoint{
		Name:   "get_movie",
		Method: "GET",
		Path:   "/api/v3/movie",
		Params: []Param{q("tmdbId", Int), q("excludeLocalCovers", Bool), q("term", String)},
	}

	req, err := ep.BuildRequest(map[string]any{
		"tmdbId":             float64(603),
		"excludeLocalCovers": true,
		"term":               "the matrix",
	})
	require.NoError(t, err)

	assert.Equal(t, "603", req.Query.Get("tmdbId"))
	assert.Equal(t, "true", req.Query.Get("excludeLocalCovers"))
	assert.Equal(t, "the matrix", req.Query.Get("term"))
}

func TestBuildRequestOptionalOmitted(t *testing.T) {
	ep := Endpoint{
		Name:   "get_history",
		Method: "GET",
		Path:   "/api/v3/history",
		Params: []Param{q("page", Int), q("pageSize", Int)},
	}

	req, err := ep.BuildRequest(map[string]any{"page": float64(2)})
	require.NoError(t, err)
	assert.Equal(t, "2", req.Query.Get("page"))
	assert.False(t, req.Query.Has("pageSize"))
}

func TestBuildRequestArrayQuery(t *testing.T) {
	ep := Endpoint{
		Name:   "get_queue",
		Method: "GET",
		Path:   "/api/v3/queue",
		Params: []Param{q("status", JSON)},
	}

	req, err := ep.BuildRequest(map[string]any{"status": []any{"queued", "paused"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"queued", "paused"}, req.Query["status"])

	// A JSON-encoded string is accepted too.
	req, err = ep.BuildRequest(map[string]any{"status": `["queued","paused"]`})
	require.NoError(t, err)
	assert.Equal(t, []string{"queued", "paused"}, req.Query["status"])
}

func TestBuildRequestBody(t *testing.T) {
	ep := Endpoint{
		Name:   "post_movie",
		Method: "POST",
		Path:   "/api/v3/movie",
		Params: []Param{body},
	}

	// Decoded object.
	req, err := ep.BuildRequest(map[string]any{"data": map[string]any{"title": "Dune"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Dune"}`, string(req.Body))

	// Pre-encoded string passes through byte-for-byte.
	req, err = ep.BuildRequest(map[string]any{"data": `{"title":"Dune","year":2021}`})
	require.NoError(t, err)
	assert.Equal(t, `{"title":"Dune","year":2021}`, string(req.Body))

	// Invalid JSON string is rejected before any request is made.
	_, err = ep.BuildRequest(map[string]any{"data": `{"title":`})
	assert.Error(t, err)
}

func TestParamFormat(t *testing.T) {
	prm := q("x", Number)

	s, err := prm.format(float64(1.5))
	require.NoError(t, err)
	assert.Equal(t, "1.5", s)

	s, err = prm.format(float64(7))
	require.NoError(t, err)
	assert.Equal(t, "7", s)

	s, err = prm.format(int64(9000000000))
	require.NoError(t, err)
	assert.Equal(t, "9000000000", s)

	_, err = prm.format(struct{}{})
	assert.Error(t, err)
}
