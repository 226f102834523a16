package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validMethods = map[string]bool{
	"GET": true, "POST": true, "PUT": true, "DELETE": true, "PATCH": true,
}

// The generated tables have to stay internally consistent: unique names per
// service, valid methods, and a declared path parameter for every
// placeholder in the path.
func TestTablesConsistent(t *testing.T) {
	for svc, endpoints := range Services() {
		t.Run(svc, func(t *testing.T) {
			require.NotEmpty(t, endpoints)

			seen := make(map[string]bool, len(endpoints))
			for _, ep := range endpoints {
				assert.False(t, seen[ep.Name], "duplicate tool name %s_%s", svc, ep.Name)
				seen[ep.Name] = true

				assert.True(t, validMethods[ep.Method], "%s_%s: bad method %q", svc, ep.Name, ep.Method)
				assert.True(t, strings.HasPrefix(ep.Path, "/"), "%s_%s: path %q", svc, ep.Name, ep.Path)

				declared := make(map[string]bool)
				bodies := 0
				for _, prm := range ep.Params {
					switch prm.In {
					case InPath:
						declared[prm.Name] = true
						assert.True(t, prm.Required, "%s_%s: path param %q must be required", svc, ep.Name, prm.Name)
					case InBody:
						bodies++
					}
				}
				assert.LessOrEqual(t, bodies, 1, "%s_%s: multiple body params", svc, ep.Name)

				for _, placeholder := range placeholders(ep.Path) {
					assert.True(t, declared[placeholder],
						"%s_%s: path placeholder {%s} has no declared parameter", svc, ep.Name, placeholder)
				}
			}
		})
	}
}

func placeholders(path string) []string {
	var out []string
	rest := path
	for {
		start := strings.Index(rest, "{")
		if start < 0 {
			return out
		}
		end := strings.Index(rest[start:], "}")
		if end < 0 {
			return out
		}
		out = append(out, rest[start+1:start+end])
		rest = rest[start+end+1:]
	}
}

func TestTableSizes(t *testing.T) {
	services := Services()
	for _, svc := range []string{"radarr", "sonarr", "lidarr", "prowlarr", "chaptarr"} {
		assert.Greater(t, len(services[svc]), 100, svc)
	}
}

func TestIndex(t *testing.T) {
	idx := NewIndex(map[string][]Endpoint{
		"radarr": {
			{Name: "get_movie", Method: "GET", Path: "/api/v3/movie", Tag: "catalog", Desc: "List movies."},
			{Name: "post_movie", Method: "POST", Path: "/api/v3/movie", Tag: "catalog", Desc: "Add a movie."},
			{Name: "get_health", Method: "GET", Path: "/api/v3/health", Tag: "system", Desc: "Health checks."},
		},
		"sonarr": {
			{Name: "get_series", Method: "GET", Path: "/api/v3/series", Tag: "catalog", Desc: "List series."},
		},
	})

	assert.Equal(t, 4, idx.Count())
	assert.Equal(t, 3, idx.CountService("radarr"))
	assert.Equal(t, 1, idx.CountService("sonarr"))
	assert.Equal(t, 0, idx.CountService("lidarr"))

	results := idx.Search("movie", "")
	require.Len(t, results, 2)
	assert.Equal(t, "radarr_get_movie", results[0].Tool)

	results = idx.Search("series", "sonarr")
	require.Len(t, results, 1)
	assert.Equal(t, "sonarr_get_series", results[0].Tool)

	assert.Empty(t, idx.Search("series", "radarr"))

	// Description text matches too.
	assert.Len(t, idx.Search("health checks", ""), 1)

	filtered := idx.Filter("radarr", "catalog", "get")
	require.Len(t, filtered, 1)
	assert.Equal(t, "radarr_get_movie", filtered[0].Tool)

	assert.Len(t, idx.Filter("", "", "GET"), 3)
	assert.Len(t, idx.Filter("", "system", ""), 1)
}
