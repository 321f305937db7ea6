package timetable

import (
	"testing"
	"time"
)

// at returns Wednesday 2026-03-04 at hh:mm in UTC.
func at(hh, mm int) time.Time {
	return time.Date(2026, 3, 4, hh, mm, 0, 0, time.UTC)
}

func TestClassify_Boundaries(t *testing.T) {
	e := rangeEntry("10:00", "11:00", "CS101", 1, 10)

	tests := []struct {
		name string
		now  time.Time
		want Status
	}{
		{"at start", at(10, 0), StatusActive},
		{"mid class", at(10, 30), StatusActive},
		{"at end", at(11, 0), StatusPast},
		{"after end", at(15, 0), StatusPast},
		{"30 minutes before", at(9, 30), StatusNext},
		{"1 minute before", at(9, 59), StatusNext},
		{"31 minutes before", at(9, 29), StatusUpcoming},
		{"early morning", at(7, 0), StatusUpcoming},
	}

	for _, tc := range tests {
		got, err := Classify(e, tc.now)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestClassifyAll_OnlyToday(t *testing.T) {
	tt := Timetable{
		rangeEntry("08:00", "09:00", "A", 1, 10),
		rangeEntry("10:00", "11:00", "B", 1, 10),
	}
	now := at(8, 15) // a Wednesday

	statuses, err := ClassifyAll(tt, "wednesday", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(statuses) != 2 || statuses[0] != StatusActive || statuses[1] != StatusUpcoming {
		t.Errorf("unexpected statuses: %v", statuses)
	}

	statuses, err = ClassifyAll(tt, "monday", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if statuses != nil {
		t.Errorf("expected no statuses for another day, got %v", statuses)
	}
}

func TestDefaultDay(t *testing.T) {
	if got := DefaultDay(at(9, 0)); got != "wednesday" {
		t.Errorf("expected wednesday, got %s", got)
	}

	saturday := time.Date(2026, 3, 7, 9, 0, 0, 0, time.UTC)
	if got := DefaultDay(saturday); got != "monday" {
		t.Errorf("expected weekend to fall back to monday, got %s", got)
	}
	if IsToday("saturday", saturday) {
		t.Errorf("weekends never match a dataset day")
	}
}

func TestParseClock_Normalisation(t *testing.T) {
	tests := map[string]Clock{
		"09:30": 570,
		"9:30":  570,
		" 8:05": 485,
		"23:59": 1439,
		"00:00": 0,
	}
	for in, want := range tests {
		got, err := ParseClock(in)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("%q: expected %d, got %d", in, want, got)
		}
	}

	for _, bad := range []string{"", "930", "24:00", "12:60", "ab:cd", "1:2"} {
		if _, err := ParseClock(bad); err == nil {
			t.Errorf("%q: expected an error", bad)
		}
	}
}
