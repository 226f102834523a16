package tools

import (
	"context"
	"encoding/json"

	"github.com/Knuckles-Team/arr-mcp/config"
	"github.com/mark3labs/mcp-go/mcp"
)

// Meta tools help an agent navigate the large tool surface: with ~1100
// forwarding tools registered, discovery matters more than usual.
func registerMetaTools(s Server, d Deps, counts map[string]int) {
	s.AddTool(
		mcp.NewTool("list_services",
			mcp.WithDescription("List all backend services with their configuration status and tool counts"),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListServices(d, counts), nil
		},
	)

	s.AddTool(
		mcp.NewTool("search_tools",
			mcp.WithDescription("Full-text search across all registered forwarding tools by name, path, tag, or description"),
			mcp.WithString("query", mcp.Required(), mcp.Description("Search query")),
			mcp.WithString("service", mcp.Description("Limit to one service (e.g. radarr)")),
			mcp.WithNumber("limit", mcp.Description("Max results (default 25)")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			query := argString(req, "query", "")
			if query == "" {
				return mcp.NewToolResultError("query is required"), nil
			}
			results := d.Index.Search(query, argString(req, "service", ""))
			limit := argInt(req, "limit", 25)
			if limit > 0 && len(results) > limit {
				results = results[:limit]
			}
			if len(results) == 0 {
				return mcp.NewToolResultText("No tools match the query."), nil
			}
			data, _ := json.MarshalIndent(results, "", "  ")
			return mcp.NewToolResultText(string(data)), nil
		},
	)
}

func handleListServices(d Deps, counts map[string]int) *mcp.CallToolResult {
	type svcInfo struct {
		Name        string `json:"name"`
		Configured  bool   `json:"configured"`
		URL         string `json:"url,omitempty"`
		AuthMethod  string `json:"auth_method,omitempty"`
		Tools       int    `json:"tools,omitempty"`
		DefaultPort int    `json:"default_port,omitempty"`
	}

	var services []svcInfo
	for _, name := range config.KnownServices {
		info := svcInfo{Name: name}
		if svc, err := d.Registry.Get(name); err == nil {
			info.Configured = true
			info.URL = svc.Config.URL
			info.AuthMethod = svc.Config.AuthMethod
			info.Tools = counts[name]
		} else {
			info.DefaultPort = config.DefaultPorts[name]
		}
		services = append(services, info)
	}

	data, _ := json.MarshalIndent(services, "", "  ")
	return mcp.NewToolResultText(string(data))
}
