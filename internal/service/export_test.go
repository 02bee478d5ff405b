package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tourbook/backend/internal/domain"
	"github.com/pkordes/tourbook/backend/internal/service"
)

func listRepo(rows ...domain.TourRow) *mockTourRepo {
	return &mockTourRepo{
		list: func(context.Context) ([]domain.TourRow, error) { return rows, nil },
	}
}

func TestExportService_Export_OneRowPerDay(t *testing.T) {
	tour := domain.TourRow{
		ID:              uuid.New(),
		Title:           "Bali Highlights",
		Price:           4500,
		MaxParticipants: 12,
		StartDate:       "2025-05-15",
		EndDate:         "2025-05-22",
		Itinerary: []domain.ItineraryDay{
			{Location: "Ubud", Notes: "Early start", Activities: []domain.Activity{{}, {}}, Details: domain.DayDetails{Title: "Arrival"}},
			{Location: "Amed"},
		},
	}
	svc := service.NewExportService(listRepo(tour))

	rows, err := svc.Export(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, domain.ExportRow{
		TourID:          tour.ID.String(),
		TourTitle:       "Bali Highlights",
		StartDate:       "2025-05-15",
		EndDate:         "2025-05-22",
		BasePrice:       4500,
		MaxParticipants: 12,
		DayNumber:       1,
		Location:        "Ubud",
		DayTitle:        "Arrival",
		Activities:      2,
		Notes:           "Early start",
	}, rows[0])
	assert.Equal(t, 2, rows[1].DayNumber)
	assert.Equal(t, "Amed", rows[1].Location)
	assert.Equal(t, "Bali Highlights", rows[1].TourTitle, "tour fields repeat on every day")
}

func TestExportService_Export_TourWithoutItinerary(t *testing.T) {
	svc := service.NewExportService(listRepo(domain.TourRow{ID: uuid.New(), Title: "Draft"}))

	rows, err := svc.Export(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Draft", rows[0].TourTitle)
	assert.Zero(t, rows[0].DayNumber)
	assert.Empty(t, rows[0].Location)
}

func TestExportService_Export_Empty(t *testing.T) {
	svc := service.NewExportService(listRepo())

	rows, err := svc.Export(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestExportService_Export_RepoError(t *testing.T) {
	dbErr := errors.New("boom")
	svc := service.NewExportService(&mockTourRepo{
		list: func(context.Context) ([]domain.TourRow, error) { return nil, dbErr },
	})

	_, err := svc.Export(context.Background())

	assert.ErrorIs(t, err, dbErr)
}
