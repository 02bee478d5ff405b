package tourform

import (
	"fmt"
	"regexp"
)

var indexPattern = regexp.MustCompile(`\[\d+\]`)

// messages maps "<path without indices>.<tag>" to the text shown under the field.
var messages = map[string]string{
	"title.min":                             "Title must be at least 5 characters",
	"title.max":                             "Title must not exceed 100 characters",
	"summary.min":                           "Summary must be at least 10 characters",
	"summary.max":                           "Summary must not exceed 500 characters",
	"mapUrl.required":                       "Must be a valid URL",
	"mapUrl.url":                            "Must be a valid URL",
	"basePrice.min":                         "Price must be non-negative",
	"deposit.min":                           "Deposit must be non-negative",
	"depositType.oneof":                     "Deposit type must be one of: percentage, fixed",
	"maxParticipants.min":                   "Must have at least 1 participant",
	"startDate.required":                    "Start date is required",
	"startDate.calendar_date":               "Start date must be a valid date",
	"endDate.required":                      "End date is required",
	"endDate.calendar_date":                 "End date must be a valid date",
	"endDate.date_range":                    "End date must be after start date",
	"inclusions.min":                        "At least one inclusion is required",
	"itinerary.details.videos.type.oneof":   "Video type must be one of: youtube, vimeo",
	"locations.coordinates.lat.latitude":    "Latitude must be between -90 and 90",
	"locations.coordinates.lng.longitude":   "Longitude must be between -180 and 180",
}

func message(path, tag, param string) string {
	if msg, ok := messages[indexPattern.ReplaceAllString(path, "")+"."+tag]; ok {
		return msg
	}
	if param != "" {
		return fmt.Sprintf("failed %s=%s", tag, param)
	}
	return "failed " + tag
}
