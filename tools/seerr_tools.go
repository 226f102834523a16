package tools

import (
	"context"

	"github.com/Knuckles-Team/arr-mcp/seerr"
	"github.com/mark3labs/mcp-go/mcp"
)

func registerSeerrTools(s Server, client *seerr.Client) {
	s.AddTool(
		mcp.NewTool("seerr_get_status",
			mcp.WithDescription("Get Seerr version and update status"),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return rawResult(client.Status(ctx))
		},
	)

	s.AddTool(
		mcp.NewTool("seerr_get_status_appdata",
			mcp.WithDescription("Get application data volume status"),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return rawResult(client.StatusAppData(ctx))
		},
	)

	s.AddTool(
		mcp.NewTool("seerr_get_auth_me",
			mcp.WithDescription("Get the logged-in user"),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return rawResult(client.AuthMe(ctx))
		},
	)

	s.AddTool(
		mcp.NewTool("seerr_create_request",
			mcp.WithDescription("Request a movie or TV show"),
			mcp.WithString("media_type", mcp.Required(), mcp.Description("mediaType (movie or tv)")),
			mcp.WithNumber("media_id", mcp.Required(), mcp.Description("mediaId (TMDB ID)")),
			mcp.WithArray("seasons", mcp.Description("Season numbers (for TV)")),
			mcp.WithBoolean("is4k", mcp.Description("Request the 4K version")),
			mcp.WithNumber("server_id", mcp.Description("Target server ID")),
			mcp.WithNumber("profile_id", mcp.Description("Quality profile ID")),
			mcp.WithString("root_folder", mcp.Description("Root folder override")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			mediaType := argString(req, "media_type", "")
			if mediaType == "" || !hasArg(req, "media_id") {
				return mcp.NewToolResultError("media_type and media_id are required"), nil
			}
			return rawResult(client.CreateRequest(ctx, seerr.MediaRequest{
				MediaType:  mediaType,
				MediaID:    argInt(req, "media_id", 0),
				Is4K:       argBool(req, "is4k", false),
				Seasons:    argIntSlice(req, "seasons"),
				ServerID:   argInt(req, "server_id", 0),
				ProfileID:  argInt(req, "profile_id", 0),
				RootFolder: argString(req, "root_folder", ""),
			}))
		},
	)

	s.AddTool(
		mcp.NewTool("seerr_get_requests",
			mcp.WithDescription("List media requests"),
			mcp.WithNumber("take", mcp.Description("Number of requests to return (default 20)")),
			mcp.WithNumber("skip", mcp.Description("Number of requests to skip")),
			mcp.WithString("filter", mcp.Description("Filter: all, approved, available, pending, processing, unavailable, failed")),
			mcp.WithString("sort", mcp.Description("Sort order: added or modified (default added)")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return rawResult(client.Requests(ctx, seerr.RequestFilter{
				Take:   argInt(req, "take", 20),
				Skip:   argInt(req, "skip", 0),
				Filter: argString(req, "filter", ""),
				Sort:   argString(req, "sort", "added"),
			}))
		},
	)

	s.AddTool(
		mcp.NewTool("seerr_get_request",
			mcp.WithDescription("Get a specific media request"),
			mcp.WithNumber("request_id", mcp.Required(), mcp.Description("Request ID")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if !hasArg(req, "request_id") {
				return mcp.NewToolResultError("request_id is required"), nil
			}
			return rawResult(client.Request(ctx, argInt(req, "request_id", 0)))
		},
	)

	s.AddTool(
		mcp.NewTool("seerr_update_request",
			mcp.WithDescription("Update an existing media request"),
			mcp.WithNumber("request_id", mcp.Required(), mcp.Description("Request ID")),
			mcp.WithString("media_type", mcp.Required(), mcp.Description("mediaType (movie or tv)")),
			mcp.WithArray("seasons", mcp.Description("Season numbers (for TV)")),
			mcp.WithNumber("server_id", mcp.Description("Target server ID")),
			mcp.WithNumber("profile_id", mcp.Description("Quality profile ID")),
			mcp.WithString("root_folder", mcp.Description("Root folder override")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			mediaType := argString(req, "media_type", "")
			if !hasArg(req, "request_id") || mediaType == "" {
				return mcp.NewToolResultError("request_id and media_type are required"), nil
			}
			return rawResult(client.UpdateRequest(ctx, argInt(req, "request_id", 0), seerr.RequestUpdate{
				MediaType:  mediaType,
				Seasons:    argIntSlice(req, "seasons"),
				ServerID:   argInt(req, "server_id", 0),
				ProfileID:  argInt(req, "profile_id", 0),
				RootFolder: argString(req, "root_folder", ""),
			}))
		},
	)

	s.AddTool(
		mcp.NewTool("seerr_delete_request",
			mcp.WithDescription("Delete a media request"),
			mcp.WithNumber("request_id", mcp.Required(), mcp.Description("Request ID")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if !hasArg(req, "request_id") {
				return mcp.NewToolResultError("request_id is required"), nil
			}
			return rawResult(client.DeleteRequest(ctx, argInt(req, "request_id", 0)))
		},
	)

	s.AddTool(
		mcp.NewTool("seerr_approve_request",
			mcp.WithDescription("Approve a pending media request"),
			mcp.WithNumber("request_id", mcp.Required(), mcp.Description("Request ID")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if !hasArg(req, "request_id") {
				return mcp.NewToolResultError("request_id is required"), nil
			}
			return rawResult(client.ApproveRequest(ctx, argInt(req, "request_id", 0)))
		},
	)

	s.AddTool(
		mcp.NewTool("seerr_decline_request",
			mcp.WithDescription("Decline a pending media request"),
			mcp.WithNumber("request_id", mcp.Required(), mcp.Description("Request ID")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if !hasArg(req, "request_id") {
				return mcp.NewToolResultError("request_id is required"), nil
			}
			return rawResult(client.DeclineRequest(ctx, argInt(req, "request_id", 0)))
		},
	)

	s.AddTool(
		mcp.NewTool("seerr_get_movie",
			mcp.WithDescription("Get movie details"),
			mcp.WithNumber("movie_id", mcp.Required(), mcp.Description("TMDB movie ID")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if !hasArg(req, "movie_id") {
				return mcp.NewToolResultError("movie_id is required"), nil
			}
			return rawResult(client.Movie(ctx, argInt(req, "movie_id", 0)))
		},
	)

	s.AddTool(
		mcp.NewTool("seerr_get_tv",
			mcp.WithDescription("Get TV series details"),
			mcp.WithNumber("tv_id", mcp.Required(), mcp.Description("TMDB series ID")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if !hasArg(req, "tv_id") {
				return mcp.NewToolResultError("tv_id is required"), nil
			}
			return rawResult(client.TV(ctx, argInt(req, "tv_id", 0)))
		},
	)

	s.AddTool(
		mcp.NewTool("seerr_search",
			mcp.WithDescription("Search for movies, TV shows, and people"),
			mcp.WithString("query", mcp.Required(), mcp.Description("Search query")),
			mcp.WithNumber("page", mcp.Description("Page number (default 1)")),
			mcp.WithString("language", mcp.Description("Result language (default en)")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			query := argString(req, "query", "")
			if query == "" {
				return mcp.NewToolResultError("query is required"), nil
			}
			return rawResult(client.Search(ctx, query, argInt(req, "page", 1), argString(req, "language", "en")))
		},
	)

	s.AddTool(
		mcp.NewTool("seerr_get_users",
			mcp.WithDescription("List Seerr users"),
			mcp.WithNumber("take", mcp.Description("Number of users to return (default 20)")),
			mcp.WithNumber("skip", mcp.Description("Number of users to skip")),
			mcp.WithString("sort", mcp.Description("Sort order: created, updated, requests, displayname")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return rawResult(client.Users(ctx, argInt(req, "take", 20), argInt(req, "skip", 0), argString(req, "sort", "created")))
		},
	)

	s.AddTool(
		mcp.NewTool("seerr_get_user",
			mcp.WithDescription("Get details for one Seerr user"),
			mcp.WithNumber("user_id", mcp.Required(), mcp.Description("User ID")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if !hasArg(req, "user_id") {
				return mcp.NewToolResultError("user_id is required"), nil
			}
			return rawResult(client.User(ctx, argInt(req, "user_id", 0)))
		},
	)
}
