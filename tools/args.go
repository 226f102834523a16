package tools

import (
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
)

// Argument accessors. JSON numbers arrive as float64; a few clients send
// numerics as strings, so both are accepted.

func argString(req mcp.CallToolRequest, name, def string) string {
	if v, ok := req.Params.Arguments[name].(string); ok && v != "" {
		return v
	}
	return def
}

func argInt(req mcp.CallToolRequest, name string, def int) int {
	switch v := req.Params.Arguments[name].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func argBool(req mcp.CallToolRequest, name string, def bool) bool {
	switch v := req.Params.Arguments[name].(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func argIntSlice(req mcp.CallToolRequest, name string) []int {
	raw, ok := req.Params.Arguments[name].([]any)
	if !ok {
		return nil
	}
	out := make([]int, 0, len(raw))
	for _, item := range raw {
		switch v := item.(type) {
		case float64:
			out = append(out, int(v))
		case int:
			out = append(out, v)
		case string:
			if n, err := strconv.Atoi(v); err == nil {
				out = append(out, n)
			}
		}
	}
	return out
}

func hasArg(req mcp.CallToolRequest, name string) bool {
	v, ok := req.Params.Arguments[name]
	return ok && v != nil
}
