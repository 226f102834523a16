package agent

import (
	"strings"
	"testing"

	"github.com/openai/openai-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	store := NewSessionStore()

	assert.Empty(t, store.Get("missing"))

	history := []openai.ChatCompletionMessageParamUnion{
		openai.UserMessage("hello"),
		openai.AssistantMessage("hi there"),
	}
	store.Set("s1", history)

	got := store.Get("s1")
	require.Len(t, got, 2)
	assert.Equal(t, 1, store.Len())
}

func TestSessionStoreIsolation(t *testing.T) {
	store := NewSessionStore()
	store.Set("a", []openai.ChatCompletionMessageParamUnion{openai.UserMessage("one")})
	store.Set("b", []openai.ChatCompletionMessageParamUnion{openai.UserMessage("two"), openai.AssistantMessage("ok")})

	assert.Len(t, store.Get("a"), 1)
	assert.Len(t, store.Get("b"), 2)
	assert.Equal(t, 2, store.Len())
}

func TestSessionStoreCapsHistory(t *testing.T) {
	store := NewSessionStore()

	history := make([]openai.ChatCompletionMessageParamUnion, 0, maxHistoryMessages+20)
	for i := 0; i < maxHistoryMessages+20; i++ {
		history = append(history, openai.UserMessage("msg"))
	}
	store.Set("s", history)

	assert.Len(t, store.Get("s"), maxHistoryMessages)
}

func TestSessionStoreCapNeverOrphansToolResults(t *testing.T) {
	store := NewSessionStore()

	// 152 messages arranged so the naive cut at len-100 would land exactly
	// on a tool result whose assistant tool-call turn gets dropped.
	var history []openai.ChatCompletionMessageParamUnion
	for i := 0; i < 51; i++ {
		history = append(history, openai.UserMessage("filler"))
	}
	history = append(history, openai.AssistantMessage("calling tool")) // index 51
	history = append(history, openai.ToolMessage("result", "call_1")) // index 52
	for i := 0; i < 99; i++ {
		history = append(history, openai.UserMessage("filler"))
	}
	require.Len(t, history, 152)

	store.Set("s", history)

	got := store.Get("s")
	require.NotEmpty(t, got)
	assert.Nil(t, got[0].OfTool, "retained history must not start with a tool result")
	assert.Len(t, got, 99, "the orphaned tool result is dropped along with the overflow")
}

func TestSessionStoreCapDropsParallelToolResults(t *testing.T) {
	store := NewSessionStore()

	// Parallel tool calls: two consecutive tool results straddle the cut.
	var history []openai.ChatCompletionMessageParamUnion
	for i := 0; i < 51; i++ {
		history = append(history, openai.UserMessage("filler"))
	}
	history = append(history, openai.AssistantMessage("calling tools")) // index 51
	history = append(history, openai.ToolMessage("result one", "call_1"))
	history = append(history, openai.ToolMessage("result two", "call_2"))
	for i := 0; i < 99; i++ {
		history = append(history, openai.UserMessage("filler"))
	}
	require.Len(t, history, 153)

	store.Set("s", history)

	got := store.Get("s")
	require.NotEmpty(t, got)
	assert.Nil(t, got[0].OfTool)
	assert.Len(t, got, 99)
}

func TestSessionStoreReturnsCopy(t *testing.T) {
	store := NewSessionStore()
	store.Set("s", []openai.ChatCompletionMessageParamUnion{openai.UserMessage("original")})

	got := store.Get("s")
	got[0] = openai.UserMessage("mutated")

	again := store.Get("s")
	require.Len(t, again, 1)
	assert.NotEqual(t, got[0], again[0])
}

func TestTruncateResult(t *testing.T) {
	long := strings.Repeat("x", 3*1024)

	out := truncateResult(long, 1)
	assert.Less(t, len(out), len(long))
	assert.True(t, strings.HasSuffix(out, "[truncated]"))

	// Under the cap: untouched.
	assert.Equal(t, "short", truncateResult("short", 1))

	// Zero disables the cap.
	assert.Equal(t, long, truncateResult(long, 0))
}
