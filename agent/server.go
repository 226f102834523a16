package agent

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/Knuckles-Team/arr-mcp/internal"
)

// Server exposes the agent over HTTP.
type Server struct {
	agent    *Agent
	sessions *SessionStore
	log      zerolog.Logger
}

func NewServer(a *Agent) *Server {
	return &Server{
		agent:    a,
		sessions: NewSessionStore(),
		log:      internal.Component("agent-http"),
	}
}

type chatRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Message   string `json:"message"`
}

type chatResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(httprate.LimitByIP(60, time.Minute))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/chat", s.handleChat)

	return r
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	chatRequestsTotal.Inc()
	start := time.Now()

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	history := s.sessions.Get(sessionID)
	reply, updated, err := s.agent.Run(r.Context(), history, req.Message)
	if err != nil {
		chatErrorsTotal.Inc()
		s.log.Error().Err(err).Str("session", sessionID).Msg("chat failed")
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	s.sessions.Set(sessionID, updated)

	chatDuration.Observe(time.Since(start).Seconds())
	s.log.Info().
		Str("session", sessionID).
		Dur("elapsed", time.Since(start)).
		Msg("chat completed")

	writeJSON(w, http.StatusOK, chatResponse{SessionID: sessionID, Reply: reply})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
