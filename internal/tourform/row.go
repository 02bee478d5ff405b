package tourform

import (
	"github.com/pkordes/tourbook/backend/internal/dates"
	"github.com/pkordes/tourbook/backend/internal/domain"
)

// NewRecord returns the defaults the admin form starts from for a new tour.
func NewRecord() domain.Tour {
	return domain.Tour{
		DepositType:     domain.DepositPercentage,
		MaxParticipants: 1,
		Itinerary:       []domain.ItineraryDay{},
		Inclusions:      []string{},
		Exclusions:      []string{},
		TravelBrief: &domain.TravelBrief{
			Flights:        &domain.Flights{},
			Accommodations: []domain.Accommodation{},
		},
	}
}

// ToRow translates a validated tour into the row handed to storage.
// Dates become StorageDateStrings built from their own components, the tour
// length is derived from the itinerary, and activities saved without an icon
// get domain.DefaultActivityIcon. t is not modified.
func ToRow(t domain.Tour) domain.TourRow {
	return domain.TourRow{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Summary,
		Price:           t.BasePrice,
		Deposit:         t.Deposit,
		DepositType:     string(t.DepositType),
		DurationDays:    len(t.Itinerary),
		Location:        t.MapURL,
		ImageURL:        t.ImageURL,
		MaxParticipants: t.MaxParticipants,
		StartDate:       dates.ToStorageString(t.StartDate),
		EndDate:         dates.ToStorageString(t.EndDate),
		TermsAccepted:   t.TermsAccepted,
		Itinerary:       itineraryForStorage(t.Itinerary),
		Inclusions:      nonNil(t.Inclusions),
		Exclusions:      nonNil(t.Exclusions),
		TravelBrief:     copyBrief(t.TravelBrief),
		Locations:       nonNil(t.Locations),
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// FromRow translates a stored row back into a tour for the edit form or the
// itinerary page.
//
// A date column that does not parse is left unset on the returned tour and
// reported in a *domain.ValidationError; the rest of the tour is still
// returned so the caller can show it alongside the message.
func FromRow(r domain.TourRow) (domain.Tour, error) {
	t := domain.Tour{
		ID:              r.ID,
		Title:           r.Title,
		Summary:         r.Description,
		MapURL:          r.Location,
		ImageURL:        r.ImageURL,
		BasePrice:       r.Price,
		Deposit:         r.Deposit,
		DepositType:     domain.DepositType(r.DepositType),
		MaxParticipants: r.MaxParticipants,
		TermsAccepted:   r.TermsAccepted,
		Itinerary:       nonNil(r.Itinerary),
		Inclusions:      nonNil(r.Inclusions),
		Exclusions:      nonNil(r.Exclusions),
		TravelBrief:     copyBrief(r.TravelBrief),
		Locations:       r.Locations,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if t.DepositType == "" {
		t.DepositType = domain.DepositPercentage
	}

	// Rows written before the travel brief existed only carry a description
	// and a map location.
	if t.TravelBrief == nil {
		t.TravelBrief = &domain.TravelBrief{
			Description:    r.Description,
			MapURL:         r.Location,
			Flights:        &domain.Flights{},
			Accommodations: []domain.Accommodation{},
		}
	}

	verr := &domain.ValidationError{}
	if d, err := dates.FromStorageString(r.StartDate); err != nil {
		verr.Add("startDate", err.Error())
	} else {
		t.StartDate = d
	}
	if d, err := dates.FromStorageString(r.EndDate); err != nil {
		verr.Add("endDate", err.Error())
	} else {
		t.EndDate = d
	}

	return t, verr.ErrOrNil()
}

func itineraryForStorage(days []domain.ItineraryDay) []domain.ItineraryDay {
	out := make([]domain.ItineraryDay, len(days))
	for i, day := range days {
		acts := make([]domain.Activity, len(day.Activities))
		for j, a := range day.Activities {
			if a.Icon == "" {
				a.Icon = domain.DefaultActivityIcon
			}
			acts[j] = a
		}
		day.Activities = acts
		day.Details.Media = nonNil(day.Details.Media)
		day.Details.Videos = nonNil(day.Details.Videos)
		out[i] = day
	}
	return out
}

func copyBrief(b *domain.TravelBrief) *domain.TravelBrief {
	if b == nil {
		return nil
	}
	c := *b
	if b.Flights != nil {
		f := *b.Flights
		c.Flights = &f
	}
	c.Accommodations = append([]domain.Accommodation{}, b.Accommodations...)
	return &c
}

// nonNil turns a nil slice into an empty one so JSON columns hold [] rather
// than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
