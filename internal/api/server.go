// Package api exposes the running world over HTTP. Endpoints are
// read-only observation; nothing here mutates the simulation.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/talgya/social-practice/internal/sim"
)

// Server serves world snapshots over HTTP.
type Server struct {
	World *sim.World
	Eng   *sim.Engine
	Addr  string
	RunID string
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/characters", s.handleCharacters)
	mux.HandleFunc("/api/v1/events", s.handleEvents)
	return mux
}

// Start begins serving in a goroutine.
func (s *Server) Start() {
	go func() {
		slog.Info("api listening", "addr", s.Addr)
		if err := http.ListenAndServe(s.Addr, s.Handler()); err != nil {
			slog.Error("api server failed", "error", err)
		}
	}()
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	st := s.World.Status()
	writeJSON(w, map[string]any{
		"run_id":     s.RunID,
		"tick":       st.Tick,
		"characters": st.Characters,
		"practices":  st.Practices,
		"decisions":  st.Decisions,
		"speed":      s.Eng.Speed,
	})
}

func (s *Server) handleCharacters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.World.Characters())
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.World.Events())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}
