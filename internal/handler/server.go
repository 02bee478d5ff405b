// Package handler implements the HTTP handlers for the Tourbook API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, tour.go, etc.) but all share the same Server struct so they
// can access its dependencies. Routes are registered on chi in Routes.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/tourbook/backend/internal/domain"
)

// TourServicer defines the business operations the tour handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TourServicer interface {
	New() domain.Tour
	Create(ctx context.Context, tour domain.Tour) (domain.Tour, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Tour, error)
	ListPaged(ctx context.Context, params domain.ListParams) ([]domain.Tour, int64, error)
	Update(ctx context.Context, tour domain.Tour) (domain.Tour, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ItineraryServicer builds the published itinerary view of a tour.
type ItineraryServicer interface {
	Get(ctx context.Context, id uuid.UUID) (domain.ItineraryView, error)
}

// ExportServicer produces the flat export rows.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Server holds the dependencies shared by every handler.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	tours       TourServicer
	itineraries ItineraryServicer
	export      ExportServicer
	log         *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default().
func NewServer(tours TourServicer, itineraries ItineraryServicer, export ExportServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{tours: tours, itineraries: itineraries, export: export, log: log}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil)
}

// Routes returns a chi router with every API endpoint registered.
// Cross-cutting middleware (request IDs, logging, CORS, body limits) is applied
// by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/tours", func(r chi.Router) {
		r.Get("/", s.ListTours)
		r.Post("/", s.CreateTour)
		r.Get("/new", s.NewTour)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetTour)
			r.Put("/", s.UpdateTour)
			r.Delete("/", s.DeleteTour)
			r.Get("/itinerary", s.GetItinerary)
		})
	})

	r.Get("/export", s.GetExport)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed", nil)
	})
	return r
}
