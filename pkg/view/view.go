// Package view turns engine results into the strings every front end shows.
package view

import (
	"fmt"
	"strings"
	"time"

	"schedfinder/pkg/timetable"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Clock12 renders "13:05" as "1:05 PM". Unparseable input is returned as is.
func Clock12(s string) string {
	c, err := timetable.ParseClock(s)
	if err != nil {
		return s
	}

	h := c.Hour()
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, c.Minute(), suffix)
}

// Span renders an entry's time as "9:00 AM - 10:00 AM".
func Span(e timetable.Entry) string {
	return Clock12(e.Start) + " - " + Clock12(e.End)
}

// GroupLabel is "1 to 60" for range entries and "Special" for name-listed ones.
func GroupLabel(e timetable.Entry) string {
	if r, ok := e.Range(); ok {
		return r.String()
	}
	return "Special"
}

// Duration renders minutes as "1h 20m", "2h" or "45m".
func Duration(minutes int) string {
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// StatusLabel is the badge shown next to a class.
func StatusLabel(s timetable.Status) string {
	switch s {
	case timetable.StatusActive:
		return "Now"
	case timetable.StatusNext:
		return "Next"
	case timetable.StatusPast:
		return "Done"
	case timetable.StatusUpcoming:
		return "Later"
	}
	return ""
}

// DayTitle renders a dataset day key ("monday") for display.
func DayTitle(day string) string {
	return titleCaser.String(strings.ToLower(day))
}

// CountdownLine renders "3 days to MA102 on 12-03-2026", counting calendar
// days so an exam tomorrow morning reads "1 day" the evening before.
func CountdownLine(cd timetable.Countdown) string {
	unit := "days"
	if cd.CalendarDays == 1 {
		unit = "day"
	}
	return fmt.Sprintf("%d %s to %s on %s", cd.CalendarDays, unit, cd.Exam.Course, cd.Exam.Date)
}

// Row is one rendered line of a timetable.
type Row struct {
	Time     string `json:"time"`
	Course   string `json:"course"`
	Location string `json:"location,omitempty"`
	Group    string `json:"group"`
	Status   string `json:"status,omitempty"`
}

// Free is one rendered free slot.
type Free struct {
	After    string `json:"after"`
	Duration string `json:"duration"`
}

// Day is a fully rendered timetable for one day.
type Day struct {
	Key   string `json:"day"`
	Title string `json:"title"`
	Today bool   `json:"today"`
	Rows  []Row  `json:"entries"`
	Free  []Free `json:"free"`
}

// BuildDay derives statuses and free slots for tt and renders them. Statuses
// are only filled in when day is now's weekday.
func BuildDay(tt timetable.Timetable, day string, now time.Time) (Day, error) {
	statuses, err := timetable.ClassifyAll(tt, day, now)
	if err != nil {
		return Day{}, err
	}
	slots, err := timetable.FreeSlots(tt)
	if err != nil {
		return Day{}, err
	}

	d := Day{
		Key:   day,
		Title: DayTitle(day),
		Today: timetable.IsToday(day, now),
		Rows:  make([]Row, 0, len(tt)),
		Free:  make([]Free, 0, len(slots)),
	}
	for i, e := range tt {
		row := Row{
			Time:     Span(e),
			Course:   e.Course,
			Location: e.Location,
			Group:    GroupLabel(e),
		}
		if statuses != nil {
			row.Status = StatusLabel(statuses[i])
		}
		d.Rows = append(d.Rows, row)
	}
	for _, s := range slots {
		d.Free = append(d.Free, Free{After: s.AfterCourse, Duration: Duration(s.Minutes)})
	}
	return d, nil
}

// Text renders d as plain text, one class per line.
func (d Day) Text() string {
	if len(d.Rows) == 0 {
		return "No classes on " + d.Title + "."
	}

	var b strings.Builder
	for _, r := range d.Rows {
		fmt.Fprintf(&b, "%s  %s", r.Time, r.Course)
		if r.Location != "" {
			fmt.Fprintf(&b, " (%s)", r.Location)
		}
		if r.Group == "Special" {
			b.WriteString(" [Special]")
		}
		if r.Status != "" {
			fmt.Fprintf(&b, " - %s", r.Status)
		}
		b.WriteByte('\n')
	}
	for _, f := range d.Free {
		fmt.Fprintf(&b, "Free %s after %s\n", f.Duration, f.After)
	}
	return strings.TrimRight(b.String(), "\n")
}
