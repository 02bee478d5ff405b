package domain

import (
	"time"

	"github.com/google/uuid"
)

// TourRow mirrors one row of the tours table.
//
// Dates are StorageDateStrings ("YYYY-MM-DD"), exactly as the database returns
// them for start_date::text and end_date::text. The JSONB columns are decoded
// into typed values at the repo boundary, so a row never carries loosely-typed
// JSON into the rest of the application.
type TourRow struct {
	ID              uuid.UUID
	Title           string
	Description     string
	Price           float64
	Deposit         float64
	DepositType     string
	DurationDays    int
	Location        string
	ImageURL        string
	MaxParticipants int
	StartDate       string
	EndDate         string
	TermsAccepted   bool
	Itinerary       []ItineraryDay
	Inclusions      []string
	Exclusions      []string
	TravelBrief     *TravelBrief // nil when the column is NULL
	Locations       []MapLocation
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
