package domain

// ExportRow is a single row in the full-data export.
// It is a flat, denormalized view: one row per itinerary day, with tour fields
// repeated for every day of that tour. Tours with no itinerary yield one row
// with zero values for all day fields.
type ExportRow struct {
	// Tour fields, repeated for every day of the tour.
	TourID          string
	TourTitle       string
	StartDate       string // "2006-01-02"
	EndDate         string
	BasePrice       float64
	MaxParticipants int

	// Day fields, zero values when the tour has no itinerary.
	DayNumber  int
	Location   string
	DayTitle   string
	Activities int
	Notes      string
}
