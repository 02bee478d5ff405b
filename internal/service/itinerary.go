package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pkordes/tourbook/backend/internal/dates"
	"github.com/pkordes/tourbook/backend/internal/domain"
	"github.com/pkordes/tourbook/backend/internal/repo"
	"github.com/pkordes/tourbook/backend/internal/tourform"
)

// ItineraryService builds the published, read-only view of a tour.
type ItineraryService struct {
	repo    repo.TourRepo
	loc     *time.Location
	log     *slog.Logger
	printer *message.Printer
	policy  *bluemonday.Policy
}

// NewItineraryService constructs an ItineraryService. loc is the zone the
// "last updated" date is read in; nil means UTC.
func NewItineraryService(r repo.TourRepo, loc *time.Location, log *slog.Logger) *ItineraryService {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = slog.Default()
	}
	return &ItineraryService{
		repo:    r,
		loc:     loc,
		log:     log,
		printer: message.NewPrinter(language.AmericanEnglish),
		policy:  bluemonday.UGCPolicy(),
	}
}

// Get returns the itinerary view of a tour.
// Returns domain.ErrNotFound if the tour does not exist.
func (s *ItineraryService) Get(ctx context.Context, id uuid.UUID) (domain.ItineraryView, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.ItineraryView{}, fmt.Errorf("service.ItineraryService.Get: %w", err)
	}

	tour, err := tourform.FromRow(row)
	if err != nil {
		s.log.Warn("itinerary shown without malformed dates",
			slog.String("tour_id", row.ID.String()),
			slog.String("error", err.Error()),
		)
	}
	return s.build(tour), nil
}

func (s *ItineraryService) build(t domain.Tour) domain.ItineraryView {
	duration := len(t.Itinerary)
	if duration == 0 && !t.StartDate.IsZero() && !t.EndDate.IsZero() {
		duration = dates.DaysBetween(t.StartDate, t.EndDate) + 1
	}

	v := domain.ItineraryView{
		ID:              t.ID,
		Title:           t.Title,
		Summary:         t.Summary,
		MapURL:          t.MapURL,
		ImageURL:        t.ImageURL,
		StartDate:       dates.FormatForDisplay(t.StartDate),
		EndDate:         dates.FormatForDisplay(t.EndDate),
		DateRange:       dateRange(t.StartDate, t.EndDate),
		DurationDays:    duration,
		Nights:          max(duration-1, 0),
		MaxParticipants: t.MaxParticipants,
		Price:           s.usd(t.BasePrice),
		Deposit:         s.usd(DepositAmount(t)),
		Days:            make([]domain.DayView, len(t.Itinerary)),
		Inclusions:      t.Inclusions,
		Exclusions:      t.Exclusions,
		TravelBrief:     t.TravelBrief,
		Locations:       t.Locations,
	}
	if !t.UpdatedAt.IsZero() {
		v.LastUpdated = dates.FormatForDisplay(dates.FromTime(t.UpdatedAt.In(s.loc)))
	}

	for i, day := range t.Itinerary {
		dv := domain.DayView{
			Number:          i + 1,
			Location:        day.Location,
			Title:           day.Details.Title,
			DescriptionHTML: s.renderMarkdown(day.Details.Description),
			Notes:           day.Notes,
			Activities:      day.Activities,
			Media:           day.Details.Media,
			Videos:          make([]domain.VideoView, 0, len(day.Details.Videos)),
		}
		if !t.StartDate.IsZero() {
			dv.Date = dates.FormatForDisplay(dates.AddDays(t.StartDate, i))
		}
		for _, vid := range day.Details.Videos {
			dv.Videos = append(dv.Videos, videoView(vid))
		}
		v.Days[i] = dv
	}
	return v
}

// DepositAmount returns the deposit in dollars: a share of the base price for
// percentage deposits, the stored amount for fixed ones.
func DepositAmount(t domain.Tour) float64 {
	if t.DepositType == domain.DepositFixed {
		return t.Deposit
	}
	return t.BasePrice * t.Deposit / 100
}

// usd formats amount as US dollars, e.g. "$4,500.00".
func (s *ItineraryService) usd(amount float64) string {
	return s.printer.Sprintf("$%.2f", amount)
}

// renderMarkdown converts a day description to HTML safe to embed in a page.
func (s *ItineraryService) renderMarkdown(md string) string {
	if md == "" {
		return ""
	}
	return string(s.policy.SanitizeBytes(blackfriday.Run([]byte(md))))
}

func dateRange(start, end dates.CalendarDate) string {
	switch {
	case start.IsZero():
		return dates.FormatForDisplay(end)
	case end.IsZero():
		return dates.FormatForDisplay(start)
	default:
		return dates.FormatForDisplay(start) + " - " + dates.FormatForDisplay(end)
	}
}

// videoView resolves the player URL for a stored video. Videos saved with
// only a URL get their ID parsed from it.
func videoView(v domain.VideoEmbed) domain.VideoView {
	if v.ID == "" {
		if parsed, ok := ParseVideoURL(v.URL); ok {
			v = parsed
		}
	}
	return domain.VideoView{Type: v.Type, URL: v.URL, EmbedURL: EmbedURL(v)}
}
