package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/tourbook/backend/internal/dates"
	"github.com/pkordes/tourbook/backend/internal/domain"
	"github.com/pkordes/tourbook/backend/internal/tourform"
)

// tourRequest is the body of POST /tours and PUT /tours/{id}.
// Dates arrive as "YYYY-MM-DD" strings and are parsed here, so a malformed
// one is reported against its own field instead of failing the whole decode.
// Fields the admin UI keeps for its own state are ignored.
type tourRequest struct {
	domain.Tour
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

// tourPage is the body of GET /tours.
type tourPage struct {
	Data       []domain.Tour `json:"data"`
	Pagination pagination    `json:"pagination"`
}

type pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// CreateTour handles POST /tours.
func (s *Server) CreateTour(w http.ResponseWriter, r *http.Request) {
	tour, ok := s.decodeTour(w, r)
	if !ok {
		return
	}

	created, err := s.tours.Create(r.Context(), tour)
	if err != nil {
		s.writeServiceError(w, r, err, "tour not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListTours handles GET /tours.
// Supports ?page=, ?limit= (defaults: page=1, limit=20, max=100) and ?q=.
func (s *Server) ListTours(w http.ResponseWriter, r *http.Request) {
	var (
		page, limit *int
		q           *string
	)
	query := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "page", query, &page); err != nil {
		writeBadRequest(w, "invalid page parameter")
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", query, &limit); err != nil {
		writeBadRequest(w, "invalid limit parameter")
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "q", query, &q); err != nil {
		writeBadRequest(w, "invalid q parameter")
		return
	}

	search := ""
	if q != nil {
		search = *q
	}
	params := domain.NewListParams(page, limit, search)

	tours, total, err := s.tours.ListPaged(r.Context(), params)
	if err != nil {
		s.writeServiceError(w, r, err, "tour not found")
		return
	}
	writeJSON(w, http.StatusOK, tourPage{
		Data:       tours,
		Pagination: pagination{Page: params.Page, Limit: params.Limit, Total: total},
	})
}

// NewTour handles GET /tours/new with the defaults a blank form starts from.
func (s *Server) NewTour(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.tours.New())
}

// GetTour handles GET /tours/{id}.
func (s *Server) GetTour(w http.ResponseWriter, r *http.Request) {
	id, ok := tourID(w, r)
	if !ok {
		return
	}

	tour, err := s.tours.GetByID(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, "tour not found")
		return
	}
	writeJSON(w, http.StatusOK, tour)
}

// UpdateTour handles PUT /tours/{id}. The path ID wins over any ID in the body.
func (s *Server) UpdateTour(w http.ResponseWriter, r *http.Request) {
	id, ok := tourID(w, r)
	if !ok {
		return
	}
	tour, ok := s.decodeTour(w, r)
	if !ok {
		return
	}
	tour.ID = id

	updated, err := s.tours.Update(r.Context(), tour)
	if err != nil {
		s.writeServiceError(w, r, err, "tour not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteTour handles DELETE /tours/{id}.
func (s *Server) DeleteTour(w http.ResponseWriter, r *http.Request) {
	id, ok := tourID(w, r)
	if !ok {
		return
	}

	if err := s.tours.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err, "tour not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- request helpers --------------------------------------------------------

// tourID binds the {id} path parameter, writing a 400 when it is not a UUID.
func tourID(w http.ResponseWriter, r *http.Request) (openapi_types.UUID, bool) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		writeBadRequest(w, "id must be a UUID")
		return id, false
	}
	return id, true
}

// decodeTour reads a tourRequest body and converts it to a domain.Tour.
// It writes the error response itself and returns ok=false when the body is
// missing, too large or not JSON. A malformed date is left unset and the
// whole tour is validated, so the 422 lists it together with every other
// violation.
func (s *Server) decodeTour(w http.ResponseWriter, r *http.Request) (domain.Tour, bool) {
	var req tourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, "payload_too_large", "request body too large", nil)
			return domain.Tour{}, false
		}
		writeBadRequest(w, "request body must be a JSON tour")
		return domain.Tour{}, false
	}

	tour := req.Tour
	verr := &domain.ValidationError{}
	tour.StartDate = parseDate(verr, "startDate", "Start date must be a valid date", req.StartDate)
	tour.EndDate = parseDate(verr, "endDate", "End date must be a valid date", req.EndDate)
	if verr.ErrOrNil() != nil {
		_, err := tourform.ValidateInput(tour, verr)
		s.writeServiceError(w, r, err, "tour not found")
		return domain.Tour{}, false
	}
	return tour, true
}

// parseDate converts an optional StorageDateString. nil and "" are the absent
// date; the validator then reports the field as required.
func parseDate(verr *domain.ValidationError, field, message string, s *string) dates.CalendarDate {
	if s == nil {
		return dates.CalendarDate{}
	}
	d, err := dates.FromStorageString(*s)
	if err != nil {
		verr.Add(field, message)
		return dates.CalendarDate{}
	}
	return d
}
