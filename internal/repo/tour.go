// Package repo contains all database access logic for the Tourbook API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/tourbook/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TourRepo defines the persistence operations for tours.
// The service layer depends on this interface, not the Postgres implementation.
type TourRepo interface {
	// Create inserts a new tour and returns the persisted row with the
	// DB-generated id, created_at and updated_at populated.
	Create(ctx context.Context, row domain.TourRow) (domain.TourRow, error)

	// GetByID retrieves a single tour. Returns domain.ErrNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (domain.TourRow, error)

	// List returns every tour, newest first.
	List(ctx context.Context) ([]domain.TourRow, error)

	// ListPaged returns one page of tours matching params.Search, newest first,
	// plus the total number of matching tours.
	ListPaged(ctx context.Context, params domain.ListParams) ([]domain.TourRow, int64, error)

	// Update overwrites the mutable columns of a tour and returns the stored
	// row. Returns domain.ErrNotFound if absent.
	Update(ctx context.Context, row domain.TourRow) (domain.TourRow, error)

	// Delete removes a tour. Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgTourRepo is the Postgres implementation of TourRepo.
type pgTourRepo struct {
	db db
}

// NewTourRepo constructs a TourRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTourRepo(db db) TourRepo {
	return &pgTourRepo{db: db}
}

// tourColumns is the select list scanTour expects. Dates come back as text so
// the rest of the application only ever sees "YYYY-MM-DD" strings.
const tourColumns = `
	id, title, description, price, deposit, deposit_type, duration_days,
	location, image_url, max_participants,
	start_date::text, end_date::text, terms_accepted,
	itinerary, inclusions, exclusions, travel_brief, locations,
	created_at, updated_at`

// Create inserts a new tour row and returns the full persisted record.
func (r *pgTourRepo) Create(ctx context.Context, row domain.TourRow) (domain.TourRow, error) {
	args, err := tourArgs(row)
	if err != nil {
		return domain.TourRow{}, fmt.Errorf("repo.TourRepo.Create: %w", err)
	}

	q := `
		INSERT INTO tours (
			title, description, price, deposit, deposit_type, duration_days,
			location, image_url, max_participants, start_date, end_date,
			terms_accepted, itinerary, inclusions, exclusions, travel_brief, locations)
		VALUES (
			@title, @description, @price, @deposit, @deposit_type, @duration_days,
			@location, @image_url, @max_participants, @start_date::date, @end_date::date,
			@terms_accepted, @itinerary, @inclusions, @exclusions, @travel_brief, @locations)
		RETURNING ` + tourColumns

	result, err := scanTour(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.TourRow{}, fmt.Errorf("repo.TourRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a tour by primary key.
func (r *pgTourRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.TourRow, error) {
	q := `SELECT ` + tourColumns + ` FROM tours WHERE id = @id`

	result, err := scanTour(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.TourRow{}, fmt.Errorf("repo.TourRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all tours, newest first.
func (r *pgTourRepo) List(ctx context.Context) ([]domain.TourRow, error) {
	q := `SELECT ` + tourColumns + ` FROM tours ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TourRepo.List: %w", err)
	}
	out, err := collectTours(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.TourRepo.List: %w", err)
	}
	return out, nil
}

// ListPaged returns a page of tours whose title or location contains
// params.Search (case-insensitive), and the total count of matches.
func (r *pgTourRepo) ListPaged(ctx context.Context, params domain.ListParams) ([]domain.TourRow, int64, error) {
	const filter = `
		WHERE @search = ''
		   OR title ILIKE '%' || @search || '%' ESCAPE '\'
		   OR location ILIKE '%' || @search || '%' ESCAPE '\'`

	args := pgx.NamedArgs{
		"search": escapeLike(params.Search),
		"limit":  params.Limit,
		"offset": params.Offset(),
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM tours`+filter, args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TourRepo.ListPaged: count: %w", err)
	}

	q := `SELECT ` + tourColumns + ` FROM tours` + filter + `
		ORDER BY created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TourRepo.ListPaged: %w", err)
	}
	out, err := collectTours(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TourRepo.ListPaged: %w", err)
	}
	return out, total, nil
}

// Update overwrites the mutable columns of a tour and returns the stored row.
func (r *pgTourRepo) Update(ctx context.Context, row domain.TourRow) (domain.TourRow, error) {
	args, err := tourArgs(row)
	if err != nil {
		return domain.TourRow{}, fmt.Errorf("repo.TourRepo.Update: %w", err)
	}
	args["id"] = row.ID

	q := `
		UPDATE tours
		SET title            = @title,
		    description      = @description,
		    price            = @price,
		    deposit          = @deposit,
		    deposit_type     = @deposit_type,
		    duration_days    = @duration_days,
		    location         = @location,
		    image_url        = @image_url,
		    max_participants = @max_participants,
		    start_date       = @start_date::date,
		    end_date         = @end_date::date,
		    terms_accepted   = @terms_accepted,
		    itinerary        = @itinerary,
		    inclusions       = @inclusions,
		    exclusions       = @exclusions,
		    travel_brief     = @travel_brief,
		    locations        = @locations,
		    updated_at       = now()
		WHERE id = @id
		RETURNING ` + tourColumns

	result, err := scanTour(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.TourRow{}, fmt.Errorf("repo.TourRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a tour by primary key.
func (r *pgTourRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tours WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TourRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TourRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// tourArgs builds the named arguments shared by Create and Update.
// JSONB columns are encoded here so a marshal failure is reported before the
// statement is sent.
func tourArgs(row domain.TourRow) (pgx.NamedArgs, error) {
	args := pgx.NamedArgs{
		"title":            row.Title,
		"description":      row.Description,
		"price":            row.Price,
		"deposit":          row.Deposit,
		"deposit_type":     row.DepositType,
		"duration_days":    row.DurationDays,
		"location":         row.Location,
		"image_url":        row.ImageURL,
		"max_participants": row.MaxParticipants,
		"start_date":       row.StartDate,
		"end_date":         row.EndDate,
		"terms_accepted":   row.TermsAccepted,
	}

	jsonCols := []struct {
		name  string
		value any
	}{
		{"itinerary", row.Itinerary},
		{"inclusions", row.Inclusions},
		{"exclusions", row.Exclusions},
		{"locations", row.Locations},
	}
	for _, c := range jsonCols {
		b, err := json.Marshal(c.value)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", c.name, err)
		}
		args[c.name] = b
	}

	// A nil travel brief is stored as SQL NULL, not JSON null.
	args["travel_brief"] = nil
	if row.TravelBrief != nil {
		b, err := json.Marshal(row.TravelBrief)
		if err != nil {
			return nil, fmt.Errorf("encode travel_brief: %w", err)
		}
		args["travel_brief"] = b
	}
	return args, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTour maps a single database row into a domain.TourRow, decoding the
// JSONB columns into their typed shapes.
func scanTour(s scanner) (domain.TourRow, error) {
	var (
		t                                                   domain.TourRow
		id                                                  pgtype.UUID
		itinerary, inclusions, exclusions, brief, locations []byte
	)

	err := s.Scan(
		&id, &t.Title, &t.Description, &t.Price, &t.Deposit, &t.DepositType, &t.DurationDays,
		&t.Location, &t.ImageURL, &t.MaxParticipants,
		&t.StartDate, &t.EndDate, &t.TermsAccepted,
		&itinerary, &inclusions, &exclusions, &brief, &locations,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TourRow{}, domain.ErrNotFound
		}
		return domain.TourRow{}, err
	}
	t.ID = uuid.UUID(id.Bytes)

	cols := []struct {
		name string
		raw  []byte
		dst  any
	}{
		{"itinerary", itinerary, &t.Itinerary},
		{"inclusions", inclusions, &t.Inclusions},
		{"exclusions", exclusions, &t.Exclusions},
		{"travel_brief", brief, &t.TravelBrief},
		{"locations", locations, &t.Locations},
	}
	for _, c := range cols {
		if len(c.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(c.raw, c.dst); err != nil {
			return domain.TourRow{}, fmt.Errorf("decode %s: %w", c.name, err)
		}
	}
	return t, nil
}

func collectTours(rows pgx.Rows) ([]domain.TourRow, error) {
	defer rows.Close()

	var out []domain.TourRow
	for rows.Next() {
		t, err := scanTour(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

// escapeLike escapes the ILIKE wildcards so a search for "100%" matches
// literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
