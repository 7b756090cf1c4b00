package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/wisdom/internal/wisdom"
)

// Reflector generates masters' commentary.
type Reflector interface {
	Reflect(ctx context.Context, entry wisdom.Entry) (*wisdom.Reflection, error)
	Followup(ctx context.Context, req wisdom.FollowupRequest) (string, error)
}

// ReflectionStore persists reflections.
type ReflectionStore interface {
	SaveReflection(ctx context.Context, ref *wisdom.Reflection) error
	GetReflection(ctx context.Context, id uuid.UUID) (*wisdom.Reflection, error)
}

// Publisher emits events to the bus.
type Publisher interface {
	Publish(subject string, data any) error
}

// Deps are the collaborators of the server. Store and Events are optional.
type Deps struct {
	Reflector Reflector
	Store     ReflectionStore
	Events    Publisher
	Logger    *slog.Logger
}

type Server struct {
	router *chi.Mux
	port   int
	deps   Deps
	logger *slog.Logger
}

func NewServer(port int, apiToken string, deps Deps) *Server {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		router: router,
		port:   port,
		deps:   deps,
		logger: logger,
	}

	router.Get("/health", s.health)
	router.Route("/api/v1", func(r chi.Router) {
		r.Use(BearerAuthMiddleware(apiToken))
		r.Get("/wisdom/status", s.status)
		r.Post("/wisdom", s.createReflection)
		r.Post("/wisdom/followup", s.followup)
		r.Get("/wisdom/{id}", s.getReflection)
		r.Get("/masters", s.listMasters)
		r.Post("/masters/normalize", s.normalizeMasters)
	})

	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service":     "wisdom",
		"status":      "ok",
		"persistence": s.deps.Store != nil,
		"events":      s.deps.Events != nil,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
