package domain

import "github.com/google/uuid"

// ItineraryView is the published, read-only rendering of a tour that
// travellers scroll through. Every date and amount is already formatted for
// display.
type ItineraryView struct {
	ID              uuid.UUID     `json:"id"`
	Title           string        `json:"title"`
	Summary         string        `json:"summary"`
	MapURL          string        `json:"mapUrl"`
	ImageURL        string        `json:"imageUrl,omitempty"`
	StartDate       string        `json:"startDate"`
	EndDate         string        `json:"endDate"`
	DateRange       string        `json:"dateRange"`
	DurationDays    int           `json:"durationDays"`
	Nights          int           `json:"nights"`
	MaxParticipants int           `json:"maxParticipants"`
	Price           string        `json:"price"`
	Deposit         string        `json:"deposit"`
	Days            []DayView     `json:"days"`
	Inclusions      []string      `json:"inclusions"`
	Exclusions      []string      `json:"exclusions"`
	TravelBrief     *TravelBrief  `json:"travelBrief,omitempty"`
	Locations       []MapLocation `json:"locations,omitempty"`
	LastUpdated     string        `json:"lastUpdated"`
}

// DayView is one itinerary day as displayed. DescriptionHTML is sanitized.
type DayView struct {
	Number          int         `json:"number"`
	Date            string      `json:"date"`
	Location        string      `json:"location"`
	Title           string      `json:"title"`
	DescriptionHTML string      `json:"descriptionHtml"`
	Notes           string      `json:"notes"`
	Activities      []Activity  `json:"activities"`
	Media           []string    `json:"media"`
	Videos          []VideoView `json:"videos"`
}

// VideoView is a video with the player URL the page embeds.
type VideoView struct {
	Type     VideoType `json:"type"`
	URL      string    `json:"url"`
	EmbedURL string    `json:"embedUrl"`
}
