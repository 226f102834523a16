package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Knuckles-Team/arr-mcp/config"
)

// fakeLLM serves canned chat completions: a tool call first, then a final
// answer. It records every request body it sees.
type fakeLLM struct {
	server   *httptest.Server
	requests []map[string]any
}

func newFakeLLM(t *testing.T) *fakeLLM {
	t.Helper()
	f := &fakeLLM{}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		f.requests = append(f.requests, body)

		w.Header().Set("Content-Type", "application/json")
		if len(f.requests) == 1 {
			_, _ = w.Write([]byte(`{
				"id": "chatcmpl-1", "object": "chat.completion", "created": 1, "model": "test",
				"choices": [{"index": 0, "finish_reason": "tool_calls", "message": {
					"role": "assistant", "content": "",
					"tool_calls": [{"id": "call_1", "type": "function",
						"function": {"name": "echo", "arguments": "{\"text\":\"hi\"}"}}]
				}}]
			}`))
			return
		}
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-2", "object": "chat.completion", "created": 2, "model": "test",
			"choices": [{"index": 0, "finish_reason": "stop", "message": {
				"role": "assistant", "content": "the tool said: echo: hi"
			}}]
		}`))
	}))
	t.Cleanup(f.server.Close)
	return f
}

func testAgent(t *testing.T, llm *fakeLLM) *Agent {
	t.Helper()
	return New(config.AgentConfig{
		BaseURL:         llm.server.URL,
		APIKey:          "test-key",
		Model:           "test",
		MaxTokens:       256,
		Temperature:     0.1,
		TopP:            1.0,
		MaxIterations:   5,
		MaxToolResultKB: 50,
	}, echoDispatcher())
}

func TestAgentRunExecutesToolCalls(t *testing.T) {
	llm := newFakeLLM(t)
	a := testAgent(t, llm)

	reply, history, err := a.Run(context.Background(), nil, "say hi")
	require.NoError(t, err)
	assert.Equal(t, "the tool said: echo: hi", reply)

	// user, assistant tool call, tool result, final assistant
	assert.Len(t, history, 4)
	require.Len(t, llm.requests, 2)

	// The second model call carries the tool result.
	messages, ok := llm.requests[1]["messages"].([]any)
	require.True(t, ok)
	var sawToolResult bool
	for _, m := range messages {
		msg := m.(map[string]any)
		if msg["role"] == "tool" {
			sawToolResult = true
			assert.Equal(t, "call_1", msg["tool_call_id"])
			assert.Contains(t, msg["content"], "echo: hi")
		}
	}
	assert.True(t, sawToolResult)

	// Tool definitions go out with every model call.
	tools, ok := llm.requests[0]["tools"].([]any)
	require.True(t, ok)
	require.Len(t, tools, 1)
}

func TestChatEndpoint(t *testing.T) {
	llm := newFakeLLM(t)
	srv := NewServer(testAgent(t, llm))
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/chat", "application/json",
		bytes.NewBufferString(`{"message":"say hi"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out chatResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out.SessionID, "a session id is assigned when none is sent")
	assert.Equal(t, "the tool said: echo: hi", out.Reply)

	assert.Equal(t, 1, srv.sessions.Len())
	assert.NotEmpty(t, srv.sessions.Get(out.SessionID))
}

func TestChatEndpointValidation(t *testing.T) {
	llm := newFakeLLM(t)
	srv := NewServer(testAgent(t, llm))
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/chat", "application/json", bytes.NewBufferString(`{}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Post(ts.URL+"/chat", "application/json", bytes.NewBufferString(`not json`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	llm := newFakeLLM(t)
	srv := NewServer(testAgent(t, llm))
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
