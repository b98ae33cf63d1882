package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimeUnmarshalVariants(t *testing.T) {
	want := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		in   string
	}{
		{"naive", `"2025-01-01T10:00:00"`},
		{"fractional", `"2025-01-01T10:00:00.000123"`},
		{"no seconds", `"2025-01-01T10:00"`},
		{"rfc3339", `"2025-01-01T10:00:00Z"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got Time
			if err := json.Unmarshal([]byte(tc.in), &got); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.in, err)
			}
			if !got.Equal(want) {
				t.Errorf("got %v, want %v", got.Time, want)
			}
		})
	}
}

func TestTimeMarshalNaive(t *testing.T) {
	in := NewTime(time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC))
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2025-01-01T10:00:00"` {
		t.Errorf("marshal = %s", data)
	}
}

func TestTimeMarshalConvertsToUTC(t *testing.T) {
	zone := time.FixedZone("EST", -5*60*60)
	in := NewTime(time.Date(2025, 1, 1, 5, 0, 0, 0, zone))
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2025-01-01T10:00:00"` {
		t.Errorf("marshal = %s", data)
	}
}

func TestTimeUnmarshalNull(t *testing.T) {
	var got Time
	if err := json.Unmarshal([]byte("null"), &got); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !got.IsZero() {
		t.Errorf("got %v, want zero", got.Time)
	}
}

func TestTimeUnmarshalGarbage(t *testing.T) {
	var got Time
	if err := json.Unmarshal([]byte(`"next tuesday"`), &got); err == nil {
		t.Error("expected parse error")
	}
}

func TestRSVPStatusValid(t *testing.T) {
	for _, s := range []RSVPStatus{RSVPGoing, RSVPMaybe, RSVPNotGoing} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if RSVPStatus("attending").Valid() {
		t.Error("unknown status should be invalid")
	}
}
