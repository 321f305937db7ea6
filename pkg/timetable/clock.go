package timetable

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock is a time of day expressed as minutes since midnight.
type Clock int

// NormalizeClock pads a single-digit hour so "9:30" becomes "09:30".
// Anything else is returned trimmed but otherwise untouched.
func NormalizeClock(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 1 && s[1] == ':' {
		return "0" + s
	}
	return s
}

// ParseClock parses an "HH:MM" string into a Clock.
func ParseClock(s string) (Clock, error) {
	norm := NormalizeClock(s)
	parts := strings.Split(norm, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: malformed time %q", ErrInvalidArgument, s)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: malformed hour in %q", ErrInvalidArgument, s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: malformed minute in %q", ErrInvalidArgument, s)
	}

	return Clock(h*60 + m), nil
}

// ClockOf returns the wall-clock time of day of t in t's own location.
func ClockOf(t time.Time) Clock {
	return Clock(t.Hour()*60 + t.Minute())
}

// Hour returns the hour component.
func (c Clock) Hour() int { return int(c) / 60 }

// Minute returns the minute component.
func (c Clock) Minute() int { return int(c) % 60 }

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// On places the clock on the calendar day of t, in t's location.
func (c Clock) On(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), c.Hour(), c.Minute(), 0, 0, t.Location())
}
