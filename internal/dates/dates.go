// Package dates converts between day-granularity calendar dates and the
// "YYYY-MM-DD" strings stored in the tours table.
//
// Every conversion works on year/month/day components directly. An instant is
// never used as an intermediate: two different calendar days can map to the
// same UTC instant near a timezone boundary, and a date that passes through
// UTC on its way to storage can come back one day off.
//
// Timezones are always passed in explicitly. Nothing in this package reads
// time.Local.
package dates

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// storageLayout documents the wire shape; formatting is done by hand from
// components in ToStorageString.
const storageLayout = "YYYY-MM-DD"

// displayLayout renders a date as "May 15, 2025".
const displayLayout = "January 2, 2006"

// ErrFormat is matched by every *FormatError via errors.Is.
var ErrFormat = errors.New("invalid date format")

// FormatError reports a storage date string that is not "YYYY-MM-DD" or that
// names a day that does not exist.
type FormatError struct {
	Value  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid date %q: %s (expected %s)", e.Value, e.Reason, storageLayout)
}

// Unwrap lets callers test with errors.Is(err, dates.ErrFormat).
func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// CalendarDate is a day with no time-of-day and no timezone.
// The zero value means "no date" and is what FromStorageString returns for an
// empty string.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the CalendarDate for the given components.
// It does not validate; use IsValid when the components come from input.
func New(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{Year: year, Month: month, Day: day}
}

// FromTime returns the calendar day of t as observed in t's own location.
// Convert with t.In(loc) first to read the day in another timezone.
func FromTime(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// IsZero reports whether d is the absent date.
func (d CalendarDate) IsZero() bool {
	return d == CalendarDate{}
}

// IsValid reports whether d names a real day (no February 30th) in years
// 1 through 9999, the range a DATE column can hold in four digits.
func (d CalendarDate) IsValid() bool {
	if d.Year < 1 || d.Year > 9999 {
		return false
	}
	if d.Month < time.January || d.Month > time.December || d.Day < 1 {
		return false
	}
	// time.Date normalises overflow, so a round trip that changes the
	// components means the day did not exist.
	return FromTime(time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)) == d
}

// In returns local midnight of d in loc.
func (d CalendarDate) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Compare returns -1, 0 or +1 comparing d with other by year, month, then day.
func (d CalendarDate) Compare(other CalendarDate) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(int(d.Month), int(other.Month))
	default:
		return cmpInt(d.Day, other.Day)
	}
}

// Before reports whether d is an earlier day than other.
func (d CalendarDate) Before(other CalendarDate) bool {
	return d.Compare(other) < 0
}

// After reports whether d is a later day than other.
func (d CalendarDate) After(other CalendarDate) bool {
	return d.Compare(other) > 0
}

// String returns the storage form of d, or "" for the zero date.
func (d CalendarDate) String() string {
	return ToStorageString(d)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// ToStorageString formats d as "YYYY-MM-DD" from its own components, zero
// padding month and day. The absent date formats as "".
func ToStorageString(d CalendarDate) string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// FromStorageString parses a "YYYY-MM-DD" column value.
//
// An empty string returns the zero CalendarDate and a nil error: the column was
// empty and the caller decides what to show. Anything else that is not three
// dash-separated runs of digits naming a real day returns a *FormatError.
func FromStorageString(s string) (CalendarDate, error) {
	if s == "" {
		return CalendarDate{}, nil
	}

	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return CalendarDate{}, &FormatError{Value: s, Reason: fmt.Sprintf("want 3 segments, got %d", len(parts))}
	}

	var nums [3]int
	for i, p := range parts {
		n, err := parseDigits(p)
		if err != nil {
			return CalendarDate{}, &FormatError{Value: s, Reason: fmt.Sprintf("segment %q is not numeric", p)}
		}
		nums[i] = n
	}

	d := CalendarDate{Year: nums[0], Month: time.Month(nums[1]), Day: nums[2]}
	if !d.IsValid() {
		return CalendarDate{}, &FormatError{Value: s, Reason: "no such day"}
	}
	return d, nil
}

// parseDigits accepts only ASCII digits; strconv.Atoi alone would let "+5"
// and "-5" through.
func parseDigits(s string) (int, error) {
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}

// NormalizeToLocalMidnight returns midnight of the day t falls on in loc.
// t itself is not modified.
func NormalizeToLocalMidnight(t time.Time, loc *time.Location) time.Time {
	return FromTime(t.In(loc)).In(loc)
}

// FormatForDisplay renders d in long form, e.g. "May 15, 2025".
// The absent date renders as "".
func FormatForDisplay(d CalendarDate) string {
	if d.IsZero() {
		return ""
	}
	// UTC is safe here: the instant is only used to pick month names and is
	// built from, and read back as, the same components.
	return d.In(time.UTC).Format(displayLayout)
}

// FormatStorageForDisplay parses s with FromStorageString and renders the
// result with FormatForDisplay.
func FormatStorageForDisplay(s string) (string, error) {
	d, err := FromStorageString(s)
	if err != nil {
		return "", err
	}
	return FormatForDisplay(d), nil
}

// ValidateRange reports whether start is on or before end.
// Equal dates are a valid single-day range.
func ValidateRange(start, end CalendarDate) bool {
	return !end.Before(start)
}

// DaysBetween returns the number of whole days from a to b (negative when b
// is earlier). Both sides are built at UTC midnight so no DST transition can
// shorten or lengthen a day.
func DaysBetween(a, b CalendarDate) int {
	return int(b.In(time.UTC).Sub(a.In(time.UTC)).Hours() / 24)
}

// AddDays returns the date n days after d (before, for negative n).
func AddDays(d CalendarDate, n int) CalendarDate {
	return FromTime(d.In(time.UTC).AddDate(0, 0, n))
}
