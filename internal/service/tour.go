// Package service contains the business logic for the Tourbook API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pkordes/tourbook/backend/internal/domain"
	"github.com/pkordes/tourbook/backend/internal/repo"
	"github.com/pkordes/tourbook/backend/internal/tourform"
)

// TourService implements business logic for Tour operations.
type TourService struct {
	repo repo.TourRepo
	log  *slog.Logger
}

// NewTourService constructs a TourService backed by the provided TourRepo.
// A nil logger falls back to slog.Default().
func NewTourService(r repo.TourRepo, log *slog.Logger) *TourService {
	if log == nil {
		log = slog.Default()
	}
	return &TourService{repo: r, log: log}
}

// New returns the defaults a blank tour form starts from.
func (s *TourService) New() domain.Tour {
	return tourform.NewRecord()
}

// Create validates and persists a new tour.
// Returns a *domain.ValidationError (matching domain.ErrValidation) listing
// every failed rule when the tour is invalid; nothing is written in that case.
func (s *TourService) Create(ctx context.Context, tour domain.Tour) (domain.Tour, error) {
	valid, err := tourform.Validate(tour)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("service.TourService.Create: %w", err)
	}
	valid.ID = uuid.Nil

	row, err := s.repo.Create(ctx, tourform.ToRow(valid))
	if err != nil {
		return domain.Tour{}, fmt.Errorf("service.TourService.Create: %w", err)
	}
	return s.fromRow(row), nil
}

// GetByID returns a single tour by ID.
// Returns domain.ErrNotFound if the tour does not exist.
func (s *TourService) GetByID(ctx context.Context, id uuid.UUID) (domain.Tour, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("service.TourService.GetByID: %w", err)
	}
	return s.fromRow(row), nil
}

// ListPaged returns one page of tours and the total number matching params.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TourService) ListPaged(ctx context.Context, params domain.ListParams) ([]domain.Tour, int64, error) {
	rows, total, err := s.repo.ListPaged(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TourService.ListPaged: %w", err)
	}
	out := make([]domain.Tour, len(rows))
	for i, r := range rows {
		out[i] = s.fromRow(r)
	}
	return out, total, nil
}

// Update validates and persists changes to an existing tour.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// tour does not exist.
func (s *TourService) Update(ctx context.Context, tour domain.Tour) (domain.Tour, error) {
	valid, err := tourform.Validate(tour)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("service.TourService.Update: %w", err)
	}

	row, err := s.repo.Update(ctx, tourform.ToRow(valid))
	if err != nil {
		return domain.Tour{}, fmt.Errorf("service.TourService.Update: %w", err)
	}
	return s.fromRow(row), nil
}

// Delete removes a tour by ID.
// Returns domain.ErrNotFound if the tour does not exist.
func (s *TourService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TourService.Delete: %w", err)
	}
	return nil
}

// fromRow maps a stored row to a tour. A date column that fails to parse is
// logged and left unset so the tour can still be opened and corrected.
func (s *TourService) fromRow(row domain.TourRow) domain.Tour {
	tour, err := tourform.FromRow(row)
	if err != nil {
		s.log.Warn("stored tour has malformed dates",
			slog.String("tour_id", row.ID.String()),
			slog.String("start_date", row.StartDate),
			slog.String("end_date", row.EndDate),
			slog.String("error", err.Error()),
		)
	}
	return tour
}
