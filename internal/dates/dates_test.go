package dates_test

import (
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tourbook/backend/internal/dates"
)

var (
	// Kiritimati is UTC+14, Baker Island UTC-12: the widest offsets in use.
	farEast = time.FixedZone("UTC+14", 14*60*60)
	farWest = time.FixedZone("UTC-12", -12*60*60)
)

func TestToStorageString(t *testing.T) {
	tests := []struct {
		name string
		in   dates.CalendarDate
		want string
	}{
		{"padded month and day", dates.New(2025, time.May, 5), "2025-05-05"},
		{"two digit month and day", dates.New(2025, time.December, 31), "2025-12-31"},
		{"leap day", dates.New(2024, time.February, 29), "2024-02-29"},
		{"absent date", dates.CalendarDate{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dates.ToStorageString(tt.in))
		})
	}
}

func TestToStorageString_FormatStable(t *testing.T) {
	shape := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	for _, year := range []int{1000, 1999, 2025, 9999} {
		for m := time.January; m <= time.December; m++ {
			s := dates.ToStorageString(dates.New(year, m, 1))
			assert.Len(t, s, 10)
			assert.Regexp(t, shape, s)
		}
	}
}

func TestFromStorageString(t *testing.T) {
	got, err := dates.FromStorageString("2025-05-15")

	require.NoError(t, err)
	assert.Equal(t, dates.New(2025, time.May, 15), got)
}

func TestFromStorageString_UnpaddedSegments(t *testing.T) {
	got, err := dates.FromStorageString("2025-5-1")

	require.NoError(t, err)
	assert.Equal(t, "2025-05-01", got.String())
}

// An empty column is "no date", not today.
func TestFromStorageString_Empty(t *testing.T) {
	got, err := dates.FromStorageString("")

	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestFromStorageString_Malformed(t *testing.T) {
	for _, in := range []string{
		"2025-05",
		"2025-05-15-01",
		"2025/05/15",
		"2025-May-15",
		"2025-05-1x",
		"2025--15",
		"2025-+5-15",
		"2025-02-30",
		"2025-13-01",
		"2025-00-10",
		"2025-05-00",
		" 2025-05-15",
		"0000-01-01",
		"10000-01-01",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := dates.FromStorageString(in)

			require.Error(t, err)
			assert.ErrorIs(t, err, dates.ErrFormat)
			var fe *dates.FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, in, fe.Value)
		})
	}
}

func TestRoundTrip_AcrossTimezones(t *testing.T) {
	for _, loc := range []*time.Location{farEast, farWest, time.UTC} {
		t.Run(loc.String(), func(t *testing.T) {
			// Late evening and just after midnight are where UTC conversion
			// would shift the day.
			for _, instant := range []time.Time{
				time.Date(2025, time.May, 15, 23, 59, 59, 0, loc),
				time.Date(2025, time.May, 15, 0, 0, 1, 0, loc),
				time.Date(2024, time.December, 31, 23, 30, 0, 0, loc),
			} {
				d := dates.FromTime(instant)

				back, err := dates.FromStorageString(dates.ToStorageString(d))

				require.NoError(t, err)
				assert.Equal(t, d, back)
				assert.Equal(t, instant.Day(), back.Day)
			}
		})
	}
}

func TestRoundTrip_StorageRowUnchanged(t *testing.T) {
	row := map[string]string{"start_date": "2025-05-15", "end_date": "2025-05-22"}

	out := map[string]string{}
	for k, v := range row {
		d, err := dates.FromStorageString(v)
		require.NoError(t, err)
		out[k] = dates.ToStorageString(d)
	}

	assert.Equal(t, row, out)
}

func TestNormalizeToLocalMidnight(t *testing.T) {
	in := time.Date(2025, time.May, 15, 22, 45, 10, 500, farWest)

	got := dates.NormalizeToLocalMidnight(in, farWest)

	assert.Equal(t, time.Date(2025, time.May, 15, 0, 0, 0, 0, farWest), got)
	// input untouched
	assert.Equal(t, 22, in.Hour())
}

// The same instant is a different calendar day in different zones.
func TestNormalizeToLocalMidnight_UsesGivenLocation(t *testing.T) {
	instant := time.Date(2025, time.May, 15, 20, 0, 0, 0, time.UTC)

	east := dates.NormalizeToLocalMidnight(instant, farEast)
	west := dates.NormalizeToLocalMidnight(instant, farWest)

	assert.Equal(t, dates.New(2025, time.May, 16), dates.FromTime(east))
	assert.Equal(t, dates.New(2025, time.May, 15), dates.FromTime(west))
}

func TestNormalizeToLocalMidnight_Idempotent(t *testing.T) {
	for _, loc := range []*time.Location{farEast, farWest} {
		in := time.Date(2025, time.March, 9, 13, 7, 0, 0, time.UTC)

		once := dates.NormalizeToLocalMidnight(in, loc)
		twice := dates.NormalizeToLocalMidnight(once, loc)

		assert.True(t, once.Equal(twice))
	}
}

func TestFormatForDisplay(t *testing.T) {
	assert.Equal(t, "May 15, 2025", dates.FormatForDisplay(dates.New(2025, time.May, 15)))
	assert.Equal(t, "", dates.FormatForDisplay(dates.CalendarDate{}))
}

func TestFormatStorageForDisplay(t *testing.T) {
	got, err := dates.FormatStorageForDisplay("2025-01-02")
	require.NoError(t, err)
	assert.Equal(t, "January 2, 2025", got)

	_, err = dates.FormatStorageForDisplay("not-a-date")
	assert.ErrorIs(t, err, dates.ErrFormat)
}

func TestValidateRange(t *testing.T) {
	d := dates.New(2025, time.May, 15)

	assert.True(t, dates.ValidateRange(d, d), "equal dates are a valid range")
	assert.True(t, dates.ValidateRange(d, dates.New(2025, time.May, 22)))
	assert.False(t, dates.ValidateRange(dates.New(2025, time.May, 20), d))
	assert.False(t, dates.ValidateRange(dates.New(2026, time.January, 1), dates.New(2025, time.December, 31)))
}

func TestIsValid(t *testing.T) {
	assert.True(t, dates.New(2024, time.February, 29).IsValid())
	assert.False(t, dates.New(2025, time.February, 29).IsValid())
	assert.False(t, dates.New(2025, time.April, 31).IsValid())
	assert.False(t, dates.CalendarDate{}.IsValid())
	assert.False(t, dates.New(0, time.January, 1).IsValid(), "there is no year 0")
	assert.True(t, dates.New(1, time.January, 1).IsValid())
	assert.True(t, dates.New(9999, time.December, 31).IsValid())
	assert.False(t, dates.New(10000, time.January, 1).IsValid())
}

func TestBeforeAfter(t *testing.T) {
	may15 := dates.New(2025, time.May, 15)
	may22 := dates.New(2025, time.May, 22)
	nextYear := dates.New(2026, time.January, 1)

	assert.True(t, may15.Before(may22))
	assert.False(t, may22.Before(may15))
	assert.False(t, may15.Before(may15))
	assert.True(t, nextYear.After(may22), "year outranks month and day")
	assert.False(t, may15.After(may15))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 7, dates.DaysBetween(dates.New(2025, time.May, 15), dates.New(2025, time.May, 22)))
	assert.Equal(t, 0, dates.DaysBetween(dates.New(2025, time.May, 15), dates.New(2025, time.May, 15)))
	assert.Equal(t, 2, dates.DaysBetween(dates.New(2024, time.February, 28), dates.New(2024, time.March, 1)))
	assert.Equal(t, -1, dates.DaysBetween(dates.New(2025, time.January, 1), dates.New(2024, time.December, 31)))
}

func TestCalendarDate_JSON(t *testing.T) {
	type payload struct {
		Start dates.CalendarDate `json:"start"`
		End   dates.CalendarDate `json:"end"`
	}

	b, err := json.Marshal(payload{Start: dates.New(2025, time.May, 15)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2025-05-15","end":null}`, string(b))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"start":"2025-05-15","end":""}`), &p))
	assert.Equal(t, dates.New(2025, time.May, 15), p.Start)
	assert.True(t, p.End.IsZero())

	err = json.Unmarshal([]byte(`{"start":"15/05/2025"}`), &p)
	assert.ErrorIs(t, err, dates.ErrFormat)
}

func TestAddDays(t *testing.T) {
	assert.Equal(t, dates.New(2025, time.March, 1), dates.AddDays(dates.New(2025, time.February, 28), 1))
	assert.Equal(t, dates.New(2024, time.December, 31), dates.AddDays(dates.New(2025, time.January, 1), -1))
	assert.Equal(t, dates.New(2025, time.May, 15), dates.AddDays(dates.New(2025, time.May, 15), 0))
}
