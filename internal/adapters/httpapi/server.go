// Package httpapi exposes the hive and section services over a JSON REST API.
package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/example/hive/internal/metrics"
	"github.com/example/hive/internal/ports/primary"
	"github.com/example/hive/internal/version"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds the HTTP handler and the services it fronts.
type Server struct {
	hives    primary.HiveService
	sections primary.SectionService
	store    Pinger
	metrics  *metrics.Recorder
	logger   zerolog.Logger
	router   chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics serves the recorder's registry at /metrics.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(s *Server) {
		s.metrics = rec
	}
}

// New constructs a Server with its middleware stack and routes mounted.
func New(hives primary.HiveService, sections primary.SectionService, store Pinger, logger zerolog.Logger, opts ...Option) *Server {
	s := &Server{
		hives:    hives,
		sections: sections,
		store:    store,
		logger:   logger.With().Str("component", "httpapi").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.buildRouter()
	return s
}

// Router returns the underlying chi.Router so it can be used by http.Server.
func (s *Server) Router() chi.Router {
	return s.router
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(actorFromHeader)

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)
	r.Get("/version", s.handleVersion)
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/hives", func(r chi.Router) {
			r.Get("/", s.handleListHives)
			r.Post("/", s.handleCreateHive)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetHive)
				r.Put("/", s.handleUpdateHive)
				r.Delete("/", s.handleDeleteHive)
				r.Get("/sections", s.handleListHiveSections)
				r.Put("/status/{deleted}", s.handleSetHiveStatus)
			})
		})

		r.Route("/sections", func(r chi.Router) {
			r.Get("/", s.handleListSections)
			r.Post("/", s.handleCreateSection)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetSection)
				r.Put("/", s.handleUpdateSection)
				r.Delete("/", s.handleDeleteSection)
				r.Put("/status/{deleted}", s.handleSetSectionStatus)
			})
		})
	})

	return r
}

// handleHealth is the liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady is the readiness probe. It fails while the store is unreachable.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("store not reachable")
		respondProblem(w, r, http.StatusServiceUnavailable, "store is not reachable")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, version.Current())
}
