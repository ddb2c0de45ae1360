package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/fittracker/internal/ingest/sensor"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes caps request bodies; a package file is a few lines of numbers.
const maxBodyBytes = 1 << 20

// Server holds dependencies for HTTP handlers.
type Server struct {
	sensor *sensor.Provider
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured. An empty apiKey leaves
// the calculation endpoints open.
func New(sensorProvider *sensor.Provider, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		sensor: sensorProvider,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestID)
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/workout-types", s.handleWorkoutTypes)

		r.Group(func(r chi.Router) {
			if s.apiKey != "" {
				r.Use(APIKeyAuth(s.apiKey))
			}
			r.Post("/packages", s.handlePackage)
			r.Post("/batch", s.handleBatch)
		})
	})
}
