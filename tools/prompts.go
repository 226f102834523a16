package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// PromptServer is the destination for prompt registrations.
// *server.MCPServer satisfies it.
type PromptServer interface {
	AddPrompt(prompt mcp.Prompt, handler server.PromptHandlerFunc)
}

// RegisterPrompts adds the per-service starter prompts.
func RegisterPrompts(s PromptServer, d Deps) {
	if d.Registry.Has("radarr") {
		addQueryPrompt(s, "search_movies", "Search for a movie to add or view.",
			"Please search for the movie '%s'")
		addStaticPrompt(s, "movie_calendar", "Check the upcoming movie schedule.",
			"Please check the upcoming movie schedule.")
	}
	if d.Registry.Has("sonarr") {
		addQueryPrompt(s, "search_series", "Search for a TV series to add or view.",
			"Please search for the TV series '%s'")
		addStaticPrompt(s, "tv_calendar", "Check the upcoming episode schedule.",
			"Please check the upcoming episode schedule.")
	}
	if d.Registry.Has("lidarr") {
		addQueryPrompt(s, "search_artist", "Search for an artist to add or view.",
			"Please search for the artist '%s'")
	}
	if d.Registry.Has("prowlarr") {
		addQueryPrompt(s, "search_indexers", "Search across the configured indexers.",
			"Please search the indexers for '%s'")
	}
	if d.Bazarr != nil {
		addQueryPrompt(s, "search_subtitles", "Search for subtitles for a movie or series.",
			"Search for subtitles matching '%s'")
	}
	if d.Registry.Has("seerr") {
		addQueryPrompt(s, "search_media", "Search for a movie or TV show to request.",
			"Please search for '%s' and show the title, year, and ID of each result")
	}
}

func addQueryPrompt(s PromptServer, name, desc, format string) {
	s.AddPrompt(
		mcp.NewPrompt(name,
			mcp.WithPromptDescription(desc),
			mcp.WithArgument("query",
				mcp.ArgumentDescription("Search query"),
				mcp.RequiredArgument(),
			),
		),
		func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
			query := req.Params.Arguments["query"]
			if query == "" {
				return nil, fmt.Errorf("query is required")
			}
			return mcp.NewGetPromptResult(desc, []mcp.PromptMessage{
				mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(fmt.Sprintf(format, query))),
			}), nil
		},
	)
}

func addStaticPrompt(s PromptServer, name, desc, text string) {
	s.AddPrompt(
		mcp.NewPrompt(name,
			mcp.WithPromptDescription(desc),
		),
		func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
			return mcp.NewGetPromptResult(desc, []mcp.PromptMessage{
				mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
			}), nil
		},
	)
}
