package timetable

import (
	"fmt"
	"time"
)

// Countdown is the time left until the next exam.
type Countdown struct {
	Exam      ExamResult
	StartsAt  time.Time
	Remaining time.Duration
	Days      int
	Hours     int
	Minutes   int

	// CalendarDays is the number of dates between now and the exam day.
	CalendarDays int
}

// NextExam returns the earliest exam starting at or after now. Dates and
// times are read in now's location. The bool is false when every exam is
// already in the past.
func NextExam(results []ExamResult, now time.Time) (Countdown, bool, error) {
	var best ExamResult
	var bestAt time.Time
	found := false

	for _, r := range results {
		day, err := ParseExamDate(r.Date, now.Location())
		if err != nil {
			return Countdown{}, false, err
		}

		start := r.Start
		if start == "" {
			start = "00:00"
		}
		clock, err := ParseClock(start)
		if err != nil {
			return Countdown{}, false, fmt.Errorf("exam %s: %w", r.Course, err)
		}

		at := clock.On(day)
		if at.Before(now) {
			continue
		}
		if !found || at.Before(bestAt) {
			best, bestAt, found = r, at, true
		}
	}
	if !found {
		return Countdown{}, false, nil
	}

	left := bestAt.Sub(now)
	return Countdown{
		Exam:         best,
		StartsAt:     bestAt,
		Remaining:    left,
		Days:         int(left / (24 * time.Hour)),
		Hours:        int(left%(24*time.Hour)) / int(time.Hour),
		Minutes:      int(left%time.Hour) / int(time.Minute),
		CalendarDays: calendarDays(now, bestAt),
	}, true, nil
}

// calendarDays counts date changes between from and to, ignoring the time of
// day: an exam tomorrow morning is one day away even at 23:00.
func calendarDays(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}
