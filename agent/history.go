package agent

import (
	"sync"

	"github.com/openai/openai-go/v2"
)

// maxHistoryMessages bounds how much conversation a session retains. Older
// messages fall off the front once the cap is exceeded.
const maxHistoryMessages = 100

// SessionStore keeps per-session conversation history in memory.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string][]openai.ChatCompletionMessageParamUnion
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string][]openai.ChatCompletionMessageParamUnion)}
}

func (s *SessionStore) Get(id string) []openai.ChatCompletionMessageParamUnion {
	s.mu.Lock()
	defer s.mu.Unlock()
	history := s.sessions[id]
	out := make([]openai.ChatCompletionMessageParamUnion, len(history))
	copy(out, history)
	return out
}

func (s *SessionStore) Set(id string, history []openai.ChatCompletionMessageParamUnion) {
	if len(history) > maxHistoryMessages {
		cut := len(history) - maxHistoryMessages
		// A tool message is only valid after the assistant turn that
		// requested it; if the cut lands inside such a pair, drop the
		// orphaned tool results too.
		for cut < len(history) && history[cut].OfTool != nil {
			cut++
		}
		history = history[cut:]
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = history
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// truncateResult caps a tool result at maxKB kilobytes so oversized API
// payloads do not blow up the model context. Zero or negative disables the
// cap.
func truncateResult(s string, maxKB int) string {
	if maxKB <= 0 {
		return s
	}
	limit := maxKB * 1024
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "\n... [truncated]"
}
