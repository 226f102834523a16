package tools

import (
	"strings"

	"github.com/Knuckles-Team/arr-mcp/arrservice"
	"github.com/Knuckles-Team/arr-mcp/bazarr"
	"github.com/Knuckles-Team/arr-mcp/catalog"
	"github.com/Knuckles-Team/arr-mcp/config"
	"github.com/Knuckles-Team/arr-mcp/seerr"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server is the destination for tool registrations. *server.MCPServer
// satisfies it; the chat agent registers the same tools into its own
// dispatcher.
type Server interface {
	AddTool(tool mcp.Tool, handler server.ToolHandlerFunc)
}

// Deps carries everything tool handlers need.
type Deps struct {
	Config   *config.Config
	Registry *arrservice.Registry
	Index    *catalog.Index
	Bazarr   *bazarr.Client
	Seerr    *seerr.Client
}

// RegisterAll registers every tool for the configured services.
func RegisterAll(s Server, d Deps) {
	cs := &countingServer{next: s, counts: make(map[string]int)}
	registerCatalogTools(cs, d)
	registerCuratedTools(cs, d)
	if d.Bazarr != nil {
		registerBazarrTools(cs, d.Bazarr)
	}
	if d.Seerr != nil {
		registerSeerrTools(cs, d.Seerr)
	}
	registerMetaTools(cs, d, cs.counts)
}

// countingServer tallies registrations per service so list_services reports
// what is actually callable, not the raw catalog size.
type countingServer struct {
	next   Server
	counts map[string]int
}

func (c *countingServer) AddTool(tool mcp.Tool, handler server.ToolHandlerFunc) {
	if i := strings.Index(tool.Name, "_"); i > 0 {
		if _, known := config.DefaultPorts[tool.Name[:i]]; known {
			c.counts[tool.Name[:i]]++
		}
	}
	c.next.AddTool(tool, handler)
}
