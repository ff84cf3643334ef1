// Package api provides the HTTP API server and handlers for the AgentDex
// registry browser.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/agentdex/agentdex-server/internal/config"
	"github.com/agentdex/agentdex-server/internal/service"
	"github.com/agentdex/agentdex-server/internal/store"
)

// APIVersion is the served API version, reported by the OpenAPI spec and
// the health endpoint.
const APIVersion = "1.0.0"

// Services groups the business logic services used by the API server.
type Services struct {
	Agent    *service.AgentService
	Taxonomy *service.TaxonomyService
	Bookmark *service.BookmarkService
	History  *service.HistoryService
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	store    *store.Store
	services *Services
	router   *chi.Mux
	api      huma.API
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(cfg *config.Config, st *store.Store, services *Services, logger *slog.Logger) *Server {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	humaConfig := huma.DefaultConfig("AgentDex API", APIVersion)
	api := humachi.New(router, humaConfig)
	RegisterErrorHandler()

	s := &Server{
		store:    st,
		services: services,
		router:   router,
		api:      api,
		logger:   logger,
	}

	s.registerHealthRoutes()
	s.registerAgentRoutes()
	s.registerTaxonomyRoutes()
	s.registerChainRoutes()
	s.registerBookmarkRoutes()
	s.registerHistoryRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
