// Package domain contains the core data types for the Tourbook API.
// It depends only on internal/dates and uuid, and is imported by every other
// internal package (tourform, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/tourbook/backend/internal/dates"
)

// DepositType says how Tour.Deposit is interpreted.
type DepositType string

const (
	DepositPercentage DepositType = "percentage"
	DepositFixed      DepositType = "fixed"
)

// VideoType names a supported video host.
type VideoType string

const (
	VideoYouTube VideoType = "youtube"
	VideoVimeo   VideoType = "vimeo"
)

// DefaultActivityIcon is stored for activities saved without an icon.
const DefaultActivityIcon = "Other"

// Tour is a tour package as authored in the admin form.
// It owns its itinerary, inclusions and travel brief outright; none of the
// nested values are shared with another tour.
//
// The validate tags are the form rules; tourform.Validate enforces them.
type Tour struct {
	ID              uuid.UUID          `json:"id"`
	Title           string             `json:"title" validate:"min=5,max=100"`
	StartDate       dates.CalendarDate `json:"startDate" validate:"required,calendar_date"`
	EndDate         dates.CalendarDate `json:"endDate" validate:"required,calendar_date"`
	Summary         string             `json:"summary" validate:"min=10,max=500"`
	MapURL          string             `json:"mapUrl" validate:"required,url"`
	ImageURL        string             `json:"imageUrl,omitempty"`
	BasePrice       float64            `json:"basePrice" validate:"min=0"`
	Deposit         float64            `json:"deposit" validate:"min=0"`
	DepositType     DepositType        `json:"depositType" validate:"oneof=percentage fixed"`
	MaxParticipants int                `json:"maxParticipants" validate:"min=1"`
	TermsAccepted   bool               `json:"termsAccepted"`
	Itinerary       []ItineraryDay     `json:"itinerary" validate:"dive"`
	Inclusions      []string           `json:"inclusions" validate:"min=1"`
	Exclusions      []string           `json:"exclusions"`
	TravelBrief     *TravelBrief       `json:"travelBrief,omitempty"`
	Locations       []MapLocation      `json:"locations,omitempty" validate:"dive"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// ItineraryDay is one day of the itinerary, in travel order.
type ItineraryDay struct {
	Location   string     `json:"location"`
	Activities []Activity `json:"activities" validate:"dive"`
	Notes      string     `json:"notes"`
	Details    DayDetails `json:"details"`
}

// Activity is a scheduled item within a day. Empty strings are allowed.
type Activity struct {
	Time        string `json:"time"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Icon        string `json:"icon,omitempty"`
}

// DayDetails is the long-form content shown for a day on the itinerary page.
// Description is Markdown.
type DayDetails struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Media       []string     `json:"media"`
	Videos      []VideoEmbed `json:"videos" validate:"dive"`
}

// VideoEmbed references a hosted video by its provider-specific ID.
type VideoEmbed struct {
	ID   string    `json:"id"`
	URL  string    `json:"url"`
	Type VideoType `json:"type" validate:"oneof=youtube vimeo"`
}

// TravelBrief holds the logistics section of a tour.
type TravelBrief struct {
	Description    string          `json:"description"`
	MapURL         string          `json:"mapUrl"`
	Flights        *Flights        `json:"flights,omitempty"`
	Accommodations []Accommodation `json:"accommodations"`
}

// Flights is free text describing arrival and departure flights.
type Flights struct {
	Arrival   string `json:"arrival"`
	Departure string `json:"departure"`
	Notes     string `json:"notes"`
}

// Accommodation is one stay. Days is a human range such as "1-3".
type Accommodation struct {
	Days       string `json:"days"`
	Nights     int    `json:"nights"`
	Location   string `json:"location"`
	RoomType   string `json:"roomType"`
	BoardBasis string `json:"boardBasis"`
}

// MapLocation is a pin on the tour map.
type MapLocation struct {
	ID          string       `json:"id,omitempty"`
	Location    string       `json:"location"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}
