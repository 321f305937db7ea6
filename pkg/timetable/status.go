package timetable

import (
	"strings"
	"time"
)

// Status is where an entry sits relative to the current time of day.
type Status string

const (
	StatusActive   Status = "active"
	StatusNext     Status = "next"
	StatusUpcoming Status = "upcoming"
	StatusPast     Status = "past"
)

// nextWindow is how close a class must be to count as "next".
const nextWindow = 30

// Classify places e relative to now's time of day. The answer only makes
// sense when the timetable is for now's weekday; see IsToday.
func Classify(e Entry, now time.Time) (Status, error) {
	start, err := e.StartClock()
	if err != nil {
		return "", err
	}
	end, err := e.EndClock()
	if err != nil {
		return "", err
	}

	cur := ClockOf(now)
	switch {
	case cur >= start && cur < end:
		return StatusActive, nil
	case cur < start && start-cur <= nextWindow:
		return StatusNext, nil
	case cur < start:
		return StatusUpcoming, nil
	default:
		return StatusPast, nil
	}
}

// ClassifyAll classifies every entry of tt. It returns nil when day is not
// now's weekday, since live status is meaningless for other days.
func ClassifyAll(tt Timetable, day string, now time.Time) ([]Status, error) {
	if !IsToday(day, now) {
		return nil, nil
	}

	out := make([]Status, len(tt))
	for i, e := range tt {
		st, err := Classify(e, now)
		if err != nil {
			return nil, err
		}
		out[i] = st
	}
	return out, nil
}

// Weekdays are the dataset's day keys in calendar order.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday"}

// DayKey returns the dataset key for a weekday, or "" on weekends.
func DayKey(d time.Weekday) string {
	if d < time.Monday || d > time.Friday {
		return ""
	}
	return Weekdays[d-time.Monday]
}

// IsToday reports whether day (case-insensitive) is now's weekday.
func IsToday(day string, now time.Time) bool {
	key := DayKey(now.Weekday())
	return key != "" && strings.EqualFold(day, key)
}

// DefaultDay is today's key on weekdays and "monday" on weekends.
func DefaultDay(now time.Time) string {
	if key := DayKey(now.Weekday()); key != "" {
		return key
	}
	return Weekdays[0]
}

// ValidDay reports whether day names one of Weekdays.
func ValidDay(day string) bool {
	for _, d := range Weekdays {
		if strings.EqualFold(d, day) {
			return true
		}
	}
	return false
}
