package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"MetalWatch/internal/model"
)

// SnapshotSource provides the most recent evaluation result. Returns nil
// before the first successful refresh.
type SnapshotSource interface {
	Latest() *model.SignalSnapshot
}

// Server exposes computed signals to the dashboard frontend as JSON.
type Server struct {
	source SnapshotSource
	http   *http.Server
}

// New creates the HTTP server with routes registered.
func New(addr string, source SnapshotSource) *Server {
	s := &Server{source: source}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/api/v1/signals", s.handleSignals)
	r.Get("/api/v1/signals/composite", s.handleComposite)

	s.http = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	log.Printf("[INFO] http server listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) handleSignals(w http.ResponseWriter, _ *http.Request) {
	snap := s.source.Latest()
	if snap == nil {
		writeError(w, http.StatusServiceUnavailable, "no signal data yet")
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleComposite(w http.ResponseWriter, _ *http.Request) {
	snap := s.source.Latest()
	if snap == nil {
		writeError(w, http.StatusServiceUnavailable, "no signal data yet")
		return
	}
	writeJSON(w, http.StatusOK, snap.Composite)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
