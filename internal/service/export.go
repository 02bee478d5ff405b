package service

import (
	"context"
	"fmt"

	"github.com/pkordes/tourbook/backend/internal/domain"
	"github.com/pkordes/tourbook/backend/internal/repo"
)

// ExportService assembles a full flat export of all tours and their days.
type ExportService struct {
	tours repo.TourRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(tours repo.TourRepo) *ExportService {
	return &ExportService{tours: tours}
}

// Export returns one ExportRow per itinerary day across all tours, newest
// tour first. Tours with no itinerary contribute one row with empty day fields.
// Dates are exported exactly as stored.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	tours, err := s.tours.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := []domain.ExportRow{}
	for _, t := range tours {
		base := domain.ExportRow{
			TourID:          t.ID.String(),
			TourTitle:       t.Title,
			StartDate:       t.StartDate,
			EndDate:         t.EndDate,
			BasePrice:       t.Price,
			MaxParticipants: t.MaxParticipants,
		}
		if len(t.Itinerary) == 0 {
			rows = append(rows, base)
			continue
		}
		for i, day := range t.Itinerary {
			r := base
			r.DayNumber = i + 1
			r.Location = day.Location
			r.DayTitle = day.Details.Title
			r.Activities = len(day.Activities)
			r.Notes = day.Notes
			rows = append(rows, r)
		}
	}
	return rows, nil
}
