// Package api provides the HTTP API server and handlers for the flower library.
package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/flowerlibrary/flower-server/internal/ratelimit"
	"github.com/flowerlibrary/flower-server/internal/service"
	"github.com/flowerlibrary/flower-server/internal/store"
)

// Services groups the business logic services used by the API server.
type Services struct {
	Library *service.LibraryService
	Persons *service.PersonService
	Search  *service.SearchService
}

// Options holds optional HTTP surface settings.
type Options struct {
	StaticDir    string                      // Front-end build served with SPA fallback; empty disables
	CORSOrigins  []string                    // Allowed origins; empty allows all
	WriteLimiter *ratelimit.KeyedRateLimiter // Limits mutating /api requests; nil disables
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	store    store.Store
	services *Services
	opts     Options
	router   *chi.Mux
	api      huma.API
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(st store.Store, services *Services, opts Options, logger *slog.Logger) *Server {
	s := &Server{
		store:    st,
		services: services,
		opts:     opts,
		router:   chi.NewRouter(),
		logger:   logger,
	}

	s.setupMiddleware()
	s.api = humachi.New(s.router, newHumaConfig())
	RegisterErrorHandler()
	s.setupRoutes()

	return s
}

// newHumaConfig returns the huma configuration shared by the server and tests.
func newHumaConfig() huma.Config {
	cfg := huma.DefaultConfig("Flower Library API", "1.0.0")
	cfg.Info.Description = "Flower catalog and person roster with owned flowers."
	// Responses are plain JSON without $schema links.
	cfg.CreateHooks = nil
	return cfg
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger(s.logger))
	s.router.Use(middleware.Recoverer)

	origins := s.opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	s.router.Use(RateLimitMiddleware(s.opts.WriteLimiter, s.logger))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.registerHealthRoutes()
	s.registerLibraryRoutes()
	s.registerPersonRoutes()
	s.registerSearchRoutes()

	if s.opts.StaticDir != "" {
		s.router.NotFound(newSPAHandler(s.opts.StaticDir).ServeHTTP)
	} else {
		s.router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
			writeError(w, http.StatusNotFound, "not found")
		})
	}
	s.router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
}

// parseID parses a path id. Anything that is not an integer addresses no row.
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	return id, err == nil
}

// MessageResponse is a plain confirmation body.
type MessageResponse struct {
	Message string `json:"message" doc:"Confirmation message"`
}

// MessageOutput wraps a confirmation for Huma.
type MessageOutput struct {
	Body MessageResponse
}

func deletedOutput() *MessageOutput {
	return &MessageOutput{Body: MessageResponse{Message: "deleted"}}
}
