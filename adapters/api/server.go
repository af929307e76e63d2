// Package api exposes dataset profiling over HTTP.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"tabprof/internal"
	"tabprof/ports"
)

// Config holds API server configuration
type Config struct {
	Port           string
	MaxUploadBytes int64
}

// Server routes profiling requests. The repository may be nil, in which case
// profiles are built and returned but not persisted.
type Server struct {
	router *chi.Mux
	repo   ports.ProfileRepository
	config Config
	log    *internal.Logger
}

// NewServer creates the API server
func NewServer(config Config, repo ports.ProfileRepository) *Server {
	s := &Server{
		router: chi.NewRouter(),
		repo:   repo,
		config: config,
		log:    internal.DefaultLogger,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)
	s.router.Route("/api/profiles", func(r chi.Router) {
		r.Post("/", s.handleCreateProfile)
		r.Get("/", s.handleListProfiles)
		r.Get("/{id}", s.handleGetProfile)
	})
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the HTTP server on the configured port.
func (s *Server) Start() error {
	addr := ":" + s.config.Port
	s.log.Info("[API] listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
