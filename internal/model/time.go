package model

import (
	"fmt"
	"strings"
	"time"
)

// wireFormat is what the API emits and accepts: ISO-8601 without a zone
// suffix, interpreted as UTC.
const wireFormat = "2006-01-02T15:04:05"

// Time wraps time.Time with the API's timestamp encoding. The server emits
// naive ISO-8601 ("2025-01-01T10:00:00", sometimes with fractional seconds)
// and rejects a trailing "Z" on input, so stock RFC 3339 handling does not
// round-trip.
type Time struct {
	time.Time
}

// NewTime returns t converted to UTC and wrapped for wire encoding.
func NewTime(t time.Time) Time {
	return Time{t.UTC()}
}

func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(wireFormat) + `"`), nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{
		time.RFC3339Nano,
		wireFormat + ".999999",
		wireFormat,
		"2006-01-02T15:04",
	} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("parse api timestamp %q", s)
}
