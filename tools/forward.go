package tools

import (
	"bytes"
	"context"
	"fmt"

	"github.com/Knuckles-Team/arr-mcp/arrservice"
	"github.com/Knuckles-Team/arr-mcp/catalog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerCatalogTools turns every catalog endpoint of every configured
// service into a named MCP tool. Each tool is a pure forwarding shim:
// arguments map onto the upstream path, query string, and body, and the
// backend's JSON comes back unmodified.
func registerCatalogTools(s Server, d Deps) {
	for svcName, endpoints := range catalog.Services() {
		svc, err := d.Registry.Get(svcName)
		if err != nil {
			continue
		}
		for _, ep := range endpoints {
			if ep.Method == "DELETE" && !d.Config.AllowDestructive {
				continue
			}
			s.AddTool(buildTool(svcName, ep), forwardHandler(svc, ep))
		}
	}
}

func buildTool(service string, ep catalog.Endpoint) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(fmt.Sprintf("%s (%s %s)", ep.Desc, ep.Method, ep.Path)),
	}
	for _, prm := range ep.Params {
		opts = append(opts, paramOption(prm))
	}
	return mcp.NewTool(service+"_"+ep.Name, opts...)
}

func paramOption(prm catalog.Param) mcp.ToolOption {
	var props []mcp.PropertyOption
	if prm.Required {
		props = append(props, mcp.Required())
	}

	if prm.In == catalog.InBody {
		props = append(props, mcp.Description("JSON request body, forwarded verbatim"))
		return mcp.WithObject(prm.Name, props...)
	}

	switch prm.Type {
	case catalog.Int, catalog.Number:
		return mcp.WithNumber(prm.Name, props...)
	case catalog.Bool:
		return mcp.WithBoolean(prm.Name, props...)
	case catalog.JSON:
		return mcp.WithArray(prm.Name, props...)
	default:
		return mcp.WithString(prm.Name, props...)
	}
}

func forwardHandler(svc *arrservice.Service, ep catalog.Endpoint) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		r, err := ep.BuildRequest(req.Params.Arguments)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		respBody, status, err := svc.DoRequest(ctx, r.Method, r.Path, r.Query, r.Body)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("request failed: %v", err)), nil
		}

		return backendResult(respBody, status), nil
	}
}

// backendResult surfaces the backend response without alteration: the body
// text for success, the original status and body for HTTP errors, and the
// conventional success document for empty 2xx responses.
func backendResult(body []byte, status int) *mcp.CallToolResult {
	if status >= 400 {
		return mcp.NewToolResultError(fmt.Sprintf("API error: %d - %s", status, string(body)))
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return mcp.NewToolResultText(`{"status": "success"}`)
	}
	return mcp.NewToolResultText(string(body))
}
