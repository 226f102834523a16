package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/Knuckles-Team/arr-mcp/arrservice"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Curated convenience tools layered over the generated catalog: lookup-and-add
// flows for Radarr and Sonarr and a plain search for Prowlarr.
func registerCuratedTools(s Server, d Deps) {
	if svc, err := d.Registry.Get("radarr"); err == nil {
		s.AddTool(
			mcp.NewTool("radarr_lookup_movie",
				mcp.WithDescription("Search for a movie using the lookup endpoint"),
				mcp.WithString("term", mcp.Required(), mcp.Description("Search term for the movie")),
			),
			lookupHandler(svc, "/api/v3/movie/lookup"),
		)
		s.AddTool(
			mcp.NewTool("radarr_add_movie",
				mcp.WithDescription("Lookup a movie by term, pick the first result, and add it to Radarr"),
				mcp.WithString("term", mcp.Required(), mcp.Description("Search term for the movie")),
				mcp.WithString("root_folder_path", mcp.Required(), mcp.Description("Root folder path for the movie")),
				mcp.WithNumber("quality_profile_id", mcp.Required(), mcp.Description("Quality profile ID for the movie")),
				mcp.WithBoolean("monitored", mcp.Description("Monitor the movie (default true)")),
				mcp.WithBoolean("search_for_movie", mcp.Description("Search for the movie immediately (default true)")),
			),
			addMovieHandler(svc),
		)
	}

	if svc, err := d.Registry.Get("sonarr"); err == nil {
		s.AddTool(
			mcp.NewTool("sonarr_lookup_series",
				mcp.WithDescription("Search for a series using the lookup endpoint"),
				mcp.WithString("term", mcp.Required(), mcp.Description("Search term for the series")),
			),
			lookupHandler(svc, "/api/v3/series/lookup"),
		)
		s.AddTool(
			mcp.NewTool("sonarr_add_series",
				mcp.WithDescription("Lookup a series by term, pick the first result, and add it to Sonarr"),
				mcp.WithString("term", mcp.Required(), mcp.Description("Search term for the series")),
				mcp.WithString("root_folder_path", mcp.Required(), mcp.Description("Root folder path for the series")),
				mcp.WithNumber("quality_profile_id", mcp.Required(), mcp.Description("Quality profile ID for the series")),
				mcp.WithBoolean("monitored", mcp.Description("Monitor the series (default true)")),
				mcp.WithBoolean("search_for_missing_episodes", mcp.Description("Search for missing episodes immediately (default true)")),
			),
			addSeriesHandler(svc),
		)
	}

	if svc, err := d.Registry.Get("prowlarr"); err == nil {
		s.AddTool(
			mcp.NewTool("prowlarr_search",
				mcp.WithDescription("Search across the configured indexers"),
				mcp.WithString("query", mcp.Required(), mcp.Description("Search query")),
			),
			func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				query := argString(req, "query", "")
				if query == "" {
					return mcp.NewToolResultError("query is required"), nil
				}
				q := url.Values{}
				q.Set("query", query)
				respBody, status, err := svc.DoRequest(ctx, "GET", "/api/v1/search", q, nil)
				if err != nil {
					return mcp.NewToolResultError(fmt.Sprintf("request failed: %v", err)), nil
				}
				return backendResult(respBody, status), nil
			},
		)
	}
}

func lookupHandler(svc *arrservice.Service, path string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		term := argString(req, "term", "")
		if term == "" {
			return mcp.NewToolResultError("term is required"), nil
		}
		body, status, err := lookup(ctx, svc, path, term)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("request failed: %v", err)), nil
		}
		return backendResult(body, status), nil
	}
}

func lookup(ctx context.Context, svc *arrservice.Service, path, term string) ([]byte, int, error) {
	q := url.Values{}
	q.Set("term", term)
	return svc.DoRequest(ctx, "GET", path, q, nil)
}

func addMovieHandler(svc *arrservice.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		term := argString(req, "term", "")
		rootFolder := argString(req, "root_folder_path", "")
		if term == "" || rootFolder == "" {
			return mcp.NewToolResultError("term and root_folder_path are required"), nil
		}
		if !hasArg(req, "quality_profile_id") {
			return mcp.NewToolResultError("quality_profile_id is required"), nil
		}

		first, errResult := firstLookupResult(ctx, svc, "/api/v3/movie/lookup", term)
		if errResult != nil {
			return errResult, nil
		}

		payload := map[string]any{
			"title":            first["title"],
			"qualityProfileId": argInt(req, "quality_profile_id", 0),
			"rootFolderPath":   rootFolder,
			"monitored":        argBool(req, "monitored", true),
			"tmdbId":           first["tmdbId"],
			"year":             first["year"],
			"titleSlug":        first["titleSlug"],
			"images":           imagesOf(first),
			"addOptions": map[string]any{
				"searchForMovie": argBool(req, "search_for_movie", true),
			},
		}

		return postJSON(ctx, svc, "/api/v3/movie", payload)
	}
}

func addSeriesHandler(svc *arrservice.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		term := argString(req, "term", "")
		rootFolder := argString(req, "root_folder_path", "")
		if term == "" || rootFolder == "" {
			return mcp.NewToolResultError("term and root_folder_path are required"), nil
		}
		if !hasArg(req, "quality_profile_id") {
			return mcp.NewToolResultError("quality_profile_id is required"), nil
		}

		first, errResult := firstLookupResult(ctx, svc, "/api/v3/series/lookup", term)
		if errResult != nil {
			return errResult, nil
		}

		payload := map[string]any{
			"title":            first["title"],
			"qualityProfileId": argInt(req, "quality_profile_id", 0),
			"rootFolderPath":   rootFolder,
			"monitored":        argBool(req, "monitored", true),
			"tvdbId":           first["tvdbId"],
			"year":             first["year"],
			"titleSlug":        first["titleSlug"],
			"images":           imagesOf(first),
			"addOptions": map[string]any{
				"searchForMissingEpisodes": argBool(req, "search_for_missing_episodes", true),
			},
		}

		return postJSON(ctx, svc, "/api/v3/series", payload)
	}
}

// firstLookupResult runs a lookup and returns the first hit, or a ready-made
// error result when the lookup fails or matches nothing.
func firstLookupResult(ctx context.Context, svc *arrservice.Service, path, term string) (map[string]any, *mcp.CallToolResult) {
	body, status, err := lookup(ctx, svc, path, term)
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("lookup failed: %v", err))
	}
	if status >= 400 {
		return nil, mcp.NewToolResultError(fmt.Sprintf("API error: %d - %s", status, string(body)))
	}

	var results []map[string]any
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("unexpected lookup response: %v", err))
	}
	if len(results) == 0 {
		return nil, mcp.NewToolResultError(fmt.Sprintf("no results found for term: %s", term))
	}
	return results[0], nil
}

func imagesOf(result map[string]any) any {
	if imgs, ok := result["images"]; ok {
		return imgs
	}
	return []any{}
}

func postJSON(ctx context.Context, svc *arrservice.Service, path string, payload map[string]any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding request: %v", err)), nil
	}
	respBody, status, err := svc.DoRequest(ctx, "POST", path, nil, data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("request failed: %v", err)), nil
	}
	return backendResult(respBody, status), nil
}
