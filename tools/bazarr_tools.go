package tools

import (
	"context"
	"encoding/json"

	"github.com/Knuckles-Team/arr-mcp/bazarr"
	"github.com/mark3labs/mcp-go/mcp"
)

// Bazarr publishes no OpenAPI spec, so its tools are hand-written over the
// typed client instead of generated from a catalog.
func registerBazarrTools(s Server, client *bazarr.Client) {
	s.AddTool(
		mcp.NewTool("bazarr_get_series",
			mcp.WithDescription("Get all series managed by Bazarr"),
			mcp.WithNumber("page", mcp.Description("Page number (default 1)")),
			mcp.WithNumber("page_size", mcp.Description("Results per page (default 20)")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return rawResult(client.Series(ctx, argInt(req, "page", 1), argInt(req, "page_size", 20)))
		},
	)

	s.AddTool(
		mcp.NewTool("bazarr_get_series_subtitles",
			mcp.WithDescription("Get subtitle information for a specific series"),
			mcp.WithNumber("series_id", mcp.Required(), mcp.Description("Sonarr series ID")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if !hasArg(req, "series_id") {
				return mcp.NewToolResultError("series_id is required"), nil
			}
			return rawResult(client.SeriesSubtitles(ctx, argInt(req, "series_id", 0)))
		},
	)

	s.AddTool(
		mcp.NewTool("bazarr_get_episode_subtitles",
			mcp.WithDescription("Get subtitle information for a specific episode"),
			mcp.WithNumber("episode_id", mcp.Required(), mcp.Description("Sonarr episode ID")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if !hasArg(req, "episode_id") {
				return mcp.NewToolResultError("episode_id is required"), nil
			}
			return rawResult(client.EpisodeSubtitles(ctx, argInt(req, "episode_id", 0)))
		},
	)

	s.AddTool(
		mcp.NewTool("bazarr_search_series_subtitles",
			mcp.WithDescription("Search for subtitles for a series, or a single episode when episode_id is given"),
			mcp.WithNumber("series_id", mcp.Required(), mcp.Description("Sonarr series ID")),
			mcp.WithNumber("episode_id", mcp.Description("Sonarr episode ID (optional)")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if !hasArg(req, "series_id") {
				return mcp.NewToolResultError("series_id is required"), nil
			}
			return rawResult(client.SearchSeriesSubtitles(ctx, argInt(req, "series_id", 0), argInt(req, "episode_id", 0)))
		},
	)

	s.AddTool(
		mcp.NewTool("bazarr_download_series_subtitle",
			mcp.WithDescription("Download a subtitle for an episode"),
			mcp.WithNumber("episode_id", mcp.Required(), mcp.Description("Sonarr episode ID")),
			mcp.WithString("language", mcp.Required(), mcp.Description("Subtitle language code (e.g. en)")),
			mcp.WithBoolean("forced", mcp.Description("Forced subtitles only")),
			mcp.WithBoolean("hi", mcp.Description("Hearing-impaired subtitles")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if !hasArg(req, "episode_id") || argString(req, "language", "") == "" {
				return mcp.NewToolResultError("episode_id and language are required"), nil
			}
			return rawResult(client.DownloadSeriesSubtitle(ctx, bazarr.DownloadEpisodeSubtitle{
				EpisodeID: argInt(req, "episode_id", 0),
				Language:  argString(req, "language", ""),
				Forced:    argBool(req, "forced", false),
				HI:        argBool(req, "hi", false),
			}))
		},
	)

	s.AddTool(
		mcp.NewTool("bazarr_get_movies",
			mcp.WithDescription("Get all movies managed by Bazarr"),
			mcp.WithNumber("page", mcp.Description("Page number (default 1)")),
			mcp.WithNumber("page_size", mcp.Description("Results per page (default 20)")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return rawResult(client.Movies(ctx, argInt(req, "page", 1), argInt(req, "page_size", 20)))
		},
	)

	s.AddTool(
		mcp.NewTool("bazarr_get_movie_subtitles",
			mcp.WithDescription("Get subtitle information for a specific movie"),
			mcp.WithNumber("movie_id", mcp.Required(), mcp.Description("Radarr movie ID")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if !hasArg(req, "movie_id") {
				return mcp.NewToolResultError("movie_id is required"), nil
			}
			return rawResult(client.MovieSubtitles(ctx, argInt(req, "movie_id", 0)))
		},
	)

	s.AddTool(
		mcp.NewTool("bazarr_search_movie_subtitles",
			mcp.WithDescription("Search for subtitles for a movie"),
			mcp.WithNumber("movie_id", mcp.Required(), mcp.Description("Radarr movie ID")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if !hasArg(req, "movie_id") {
				return mcp.NewToolResultError("movie_id is required"), nil
			}
			return rawResult(client.SearchMovieSubtitles(ctx, argInt(req, "movie_id", 0)))
		},
	)

	s.AddTool(
		mcp.NewTool("bazarr_download_movie_subtitle",
			mcp.WithDescription("Download a subtitle for a movie"),
			mcp.WithNumber("movie_id", mcp.Required(), mcp.Description("Radarr movie ID")),
			mcp.WithString("language", mcp.Required(), mcp.Description("Subtitle language code (e.g. en)")),
			mcp.WithBoolean("forced", mcp.Description("Forced subtitles only")),
			mcp.WithBoolean("hi", mcp.Description("Hearing-impaired subtitles")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if !hasArg(req, "movie_id") || argString(req, "language", "") == "" {
				return mcp.NewToolResultError("movie_id and language are required"), nil
			}
			return rawResult(client.DownloadMovieSubtitle(ctx, bazarr.DownloadMovieSubtitle{
				MovieID:  argInt(req, "movie_id", 0),
				Language: argString(req, "language", ""),
				Forced:   argBool(req, "forced", false),
				HI:       argBool(req, "hi", false),
			}))
		},
	)

	s.AddTool(
		mcp.NewTool("bazarr_get_history",
			mcp.WithDescription("Get subtitle download history"),
			mcp.WithNumber("page", mcp.Description("Page number (default 1)")),
			mcp.WithNumber("page_size", mcp.Description("Results per page (default 20)")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return rawResult(client.History(ctx, argInt(req, "page", 1), argInt(req, "page_size", 20)))
		},
	)

	s.AddTool(
		mcp.NewTool("bazarr_get_system_status",
			mcp.WithDescription("Get Bazarr system status"),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return rawResult(client.SystemStatus(ctx))
		},
	)

	s.AddTool(
		mcp.NewTool("bazarr_get_system_health",
			mcp.WithDescription("Get Bazarr system health issues"),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return rawResult(client.SystemHealth(ctx))
		},
	)

	s.AddTool(
		mcp.NewTool("bazarr_get_system_logs",
			mcp.WithDescription("Get recent Bazarr log lines"),
			mcp.WithNumber("lines", mcp.Description("Number of lines (default 50)")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return rawResult(client.SystemLogs(ctx, argInt(req, "lines", 50)))
		},
	)

	s.AddTool(
		mcp.NewTool("bazarr_get_wanted_series",
			mcp.WithDescription("Get episodes with wanted or missing subtitles"),
			mcp.WithNumber("page", mcp.Description("Page number (default 1)")),
			mcp.WithNumber("page_size", mcp.Description("Results per page (default 20)")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return rawResult(client.WantedSeries(ctx, argInt(req, "page", 1), argInt(req, "page_size", 20)))
		},
	)

	s.AddTool(
		mcp.NewTool("bazarr_get_wanted_movies",
			mcp.WithDescription("Get movies with wanted or missing subtitles"),
			mcp.WithNumber("page", mcp.Description("Page number (default 1)")),
			mcp.WithNumber("page_size", mcp.Description("Results per page (default 20)")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return rawResult(client.WantedMovies(ctx, argInt(req, "page", 1), argInt(req, "page_size", 20)))
		},
	)

	s.AddTool(
		mcp.NewTool("bazarr_get_languages",
			mcp.WithDescription("Get available subtitle languages"),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return rawResult(client.Languages(ctx))
		},
	)

	s.AddTool(
		mcp.NewTool("bazarr_get_providers",
			mcp.WithDescription("Get subtitle providers"),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return rawResult(client.Providers(ctx))
		},
	)
}

// rawResult turns a typed-client response into a tool result. Client errors
// already carry the backend's status and body.
func rawResult(raw json.RawMessage, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(raw)), nil
}
