package handler

import "net/http"

// GetItinerary handles GET /tours/{id}/itinerary.
func (s *Server) GetItinerary(w http.ResponseWriter, r *http.Request) {
	id, ok := tourID(w, r)
	if !ok {
		return
	}

	view, err := s.itineraries.Get(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, "tour not found")
		return
	}
	writeJSON(w, http.StatusOK, view)
}
