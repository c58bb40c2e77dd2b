package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/pep299/just-news/internal/service"
	"github.com/pep299/just-news/internal/web"
)

// DigestRunner runs one digest pass
type DigestRunner interface {
	Run(ctx context.Context) error
}

// Server holds the HTTP routes and their dependencies
type Server struct {
	searcher service.Searcher
	renderer *web.Renderer
	log      *logrus.Logger
	version  string
	now      func() time.Time

	digest       DigestRunner
	triggerToken string
}

// NewServer creates a new HTTP server
func NewServer(searcher service.Searcher, renderer *web.Renderer, log *logrus.Logger, version string) *Server {
	return &Server{
		searcher: searcher,
		renderer: renderer,
		log:      log,
		version:  version,
		now:      time.Now,
	}
}

// WithDigest exposes POST /api/v1/digest, guarded by a bearer token.
// The route stays unregistered when either argument is empty.
func (s *Server) WithDigest(digest DigestRunner, token string) *Server {
	s.digest = digest
	s.triggerToken = token
	return s
}

// SetupRoutes configures HTTP routes
func (s *Server) SetupRoutes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.loggingMiddleware)

	// Search UI
	r.HandleFunc("/", s.indexHandler).Methods("GET")
	r.HandleFunc("/search", s.searchPageHandler).Methods("GET")

	// API routes
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(s.corsMiddleware)

	api.HandleFunc("/health", s.healthHandler).Methods("GET", "OPTIONS")
	api.HandleFunc("/search", s.searchAPIHandler).Methods("GET", "OPTIONS")

	if s.digest != nil && s.triggerToken != "" {
		api.Handle("/digest", s.authMiddleware(http.HandlerFunc(s.digestHandler))).Methods("POST")
	}

	return r
}

