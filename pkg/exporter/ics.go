package exporter

import (
	"fmt"
	"io"
	"time"

	"schedfinder/pkg/timetable"
	"schedfinder/pkg/view"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

// uidSpace namespaces event UIDs so re-importing an export updates events
// instead of duplicating them.
var uidSpace = uuid.MustParse("8a3f1f7e-4b52-4c1e-9d8e-6f0c2b7a9e11")

func eventUID(parts ...string) string {
	key := ""
	for _, p := range parts {
		key += p + "\x00"
	}
	return uuid.NewSHA1(uidSpace, []byte(key)).String()
}

func newCalendar(name string) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//schedfinder//EN")
	cal.SetName(name)
	return cal
}

func addEvent(cal *ics.Calendar, uid string, start, end time.Time, summary, location, description string) {
	now := time.Now()
	event := cal.AddEvent(uid)
	event.SetCreatedTime(now)
	event.SetDtStampTime(now)
	event.SetModifiedAt(now)
	event.SetStartAt(start)
	event.SetEndAt(end)
	event.SetSummary(summary)
	if location != "" {
		event.SetLocation(location)
	}
	event.SetDescription(description)
}

// weekStart returns midnight of the Monday on or before t.
func weekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	d := t.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}

// GenerateTimetableICS writes a calendar with one event per class for the
// given number of weeks, starting with the week that contains from. The week
// maps weekday keys ("monday") to resolved timetables. Times are read in
// from's location.
func GenerateTimetableICS(week map[string]timetable.Timetable, from time.Time, weeks int, w io.Writer) error {
	if weeks < 1 {
		return fmt.Errorf("%w: weeks must be at least 1, got %d", timetable.ErrInvalidArgument, weeks)
	}

	cal := newCalendar("Timetable")
	monday := weekStart(from)

	for n := 0; n < weeks; n++ {
		for i, day := range timetable.Weekdays {
			date := monday.AddDate(0, 0, 7*n+i)
			for _, e := range week[day] {
				start, err := e.StartClock()
				if err != nil {
					return err
				}
				end, err := e.EndClock()
				if err != nil {
					return err
				}

				description := fmt.Sprintf("Group: %s", view.GroupLabel(e))
				addEvent(cal,
					eventUID("class", date.Format("2006-01-02"), e.Start, e.Course),
					start.On(date), end.On(date),
					e.Course, e.Location, description)
			}
		}
	}

	return cal.SerializeTo(w)
}

// GenerateExamICS writes a calendar with one event per exam. Exam dates are
// read in loc.
func GenerateExamICS(results []timetable.ExamResult, loc *time.Location, w io.Writer) error {
	cal := newCalendar("Exams")

	for _, r := range results {
		day, err := timetable.ParseExamDate(r.Date, loc)
		if err != nil {
			return err
		}
		start, err := timetable.ParseClock(r.Start)
		if err != nil {
			return fmt.Errorf("exam %s: %w", r.Course, err)
		}
		end, err := timetable.ParseClock(r.End)
		if err != nil {
			return fmt.Errorf("exam %s: %w", r.Course, err)
		}

		addEvent(cal,
			eventUID("exam", r.Date, r.Course),
			start.On(day), end.On(day),
			r.Course+" exam", r.Location, fmt.Sprintf("%s, %s", r.Day, r.Time))
	}

	return cal.SerializeTo(w)
}
