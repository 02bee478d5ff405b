package dates

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON encodes d as a "YYYY-MM-DD" string, or null when d is zero.
func (d CalendarDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(ToStorageString(d))
}

// UnmarshalJSON accepts null, "" or a "YYYY-MM-DD" string.
// Malformed strings surface as *FormatError.
func (d *CalendarDate) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = CalendarDate{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := FromStorageString(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
