package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/openai/openai-go/v2"
)

// Dispatcher collects the same tool registrations the MCP server receives
// and executes them in-process for the chat agent. It satisfies
// tools.Server.
type Dispatcher struct {
	entries map[string]entry
	order   []string
}

type entry struct {
	tool    mcp.Tool
	handler server.ToolHandlerFunc
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{entries: make(map[string]entry)}
}

// AddTool registers a tool. Registration happens once at startup; the
// dispatcher is read-only afterwards.
func (d *Dispatcher) AddTool(tool mcp.Tool, handler server.ToolHandlerFunc) {
	if _, exists := d.entries[tool.Name]; !exists {
		d.order = append(d.order, tool.Name)
	}
	d.entries[tool.Name] = entry{tool: tool, handler: handler}
}

// Len returns the number of registered tools.
func (d *Dispatcher) Len() int {
	return len(d.entries)
}

// Definitions renders every registered tool as an OpenAI function tool.
func (d *Dispatcher) Definitions() []openai.ChatCompletionToolUnionParam {
	defs := make([]openai.ChatCompletionToolUnionParam, 0, len(d.order))
	for _, name := range d.order {
		e := d.entries[name]
		defs = append(defs, openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
			Name:        e.tool.Name,
			Description: openai.String(e.tool.Description),
			Parameters:  schemaOf(e.tool),
		}))
	}
	return defs
}

// schemaOf converts the MCP input schema into the OpenAI parameters map.
func schemaOf(tool mcp.Tool) openai.FunctionParameters {
	data, err := json.Marshal(tool.InputSchema)
	if err != nil {
		return openai.FunctionParameters{"type": "object"}
	}
	var params map[string]any
	if err := json.Unmarshal(data, &params); err != nil {
		return openai.FunctionParameters{"type": "object"}
	}
	return openai.FunctionParameters(params)
}

// Call executes a tool by name with JSON-encoded arguments and returns the
// textual result. Tool-level failures come back as errors so the model sees
// them as such.
func (d *Dispatcher) Call(ctx context.Context, name, arguments string) (string, error) {
	e, ok := d.entries[name]
	if !ok {
		return "", fmt.Errorf("unknown tool %q", name)
	}

	var args map[string]any
	if arguments != "" {
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return "", fmt.Errorf("invalid tool arguments: %w", err)
		}
	}

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	result, err := e.handler(ctx, req)
	if err != nil {
		return "", err
	}

	text := textOf(result)
	if result.IsError {
		return "", fmt.Errorf("%s", text)
	}
	return text, nil
}

func textOf(result *mcp.CallToolResult) string {
	var sb strings.Builder
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			sb.WriteString(tc.Text)
		}
	}
	return sb.String()
}
