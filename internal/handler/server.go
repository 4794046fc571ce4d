// Package handler implements the HTTP handlers for the Pocket Ranger API.
// All handlers are methods on Server. Methods are split into files by
// concern (resolve.go, adventures.go, health.go) but share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/factor317/Pocket-Ranger-sub000/internal/domain"
	"github.com/factor317/Pocket-Ranger-sub000/spec"
)

// PlannerServicer defines the business operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a fake without touching the corpus or service layer.
type PlannerServicer interface {
	Plan(ctx context.Context, rawInput, hintedKey string) (domain.Adventure, error)
	List(ctx context.Context) ([]domain.Adventure, error)
	GetByKey(ctx context.Context, key string) (domain.Adventure, error)
}

// Server holds the dependencies shared by every handler method.
type Server struct {
	planner PlannerServicer
	log     *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(planner PlannerServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{planner: planner, log: log}
}

// Register mounts every route on the given router. Called once from main
// and from handler tests, so both wire the exact same surface.
func (s *Server) Register(r chi.Router) {
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Route("/api", func(r chi.Router) {
		r.Post("/adventure", s.PostAdventure)
		r.Get("/adventures", s.ListAdventures)
		r.Get("/adventures/{key}", s.GetAdventure)
	})
}

// GetOpenAPI serves the embedded OpenAPI document, so the spec published by
// a running server always matches its code.
func (s *Server) GetOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}
