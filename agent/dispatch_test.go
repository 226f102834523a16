package agent

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoDispatcher() *Dispatcher {
	d := NewDispatcher()
	d.AddTool(
		mcp.NewTool("echo",
			mcp.WithDescription("Echo the input text"),
			mcp.WithString("text", mcp.Required(), mcp.Description("Text to echo")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			text, _ := req.Params.Arguments["text"].(string)
			if text == "" {
				return mcp.NewToolResultError("text is required"), nil
			}
			return mcp.NewToolResultText("echo: " + text), nil
		},
	)
	return d
}

func TestDispatcherCall(t *testing.T) {
	d := echoDispatcher()
	require.Equal(t, 1, d.Len())

	out, err := d.Call(context.Background(), "echo", `{"text":"hello"}`)
	require.NoError(t, err)
	assert.Equal(t, "echo: hello", out)
}

func TestDispatcherCallUnknownTool(t *testing.T) {
	d := echoDispatcher()

	_, err := d.Call(context.Background(), "nope", "{}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown tool "nope"`)
}

func TestDispatcherCallInvalidArguments(t *testing.T) {
	d := echoDispatcher()

	_, err := d.Call(context.Background(), "echo", `{"text":`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid tool arguments")
}

func TestDispatcherCallToolError(t *testing.T) {
	d := echoDispatcher()

	// Tool-level errors surface as Go errors so the model sees a failure.
	_, err := d.Call(context.Background(), "echo", `{}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text is required")
}

func TestDispatcherDefinitions(t *testing.T) {
	d := echoDispatcher()

	defs := d.Definitions()
	require.Len(t, defs, 1)

	require.NotNil(t, defs[0].OfFunction)
	fn := defs[0].OfFunction.Function
	assert.Equal(t, "echo", fn.Name)

	params := map[string]any(fn.Parameters)
	assert.Equal(t, "object", params["type"])
	props, ok := params["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "text")
}

func TestDispatcherReRegistrationReplaces(t *testing.T) {
	d := echoDispatcher()
	d.AddTool(
		mcp.NewTool("echo", mcp.WithDescription("replacement")),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("replaced"), nil
		},
	)

	assert.Equal(t, 1, d.Len())
	out, err := d.Call(context.Background(), "echo", "{}")
	require.NoError(t, err)
	assert.Equal(t, "replaced", out)
}
