package bot

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"schedfinder/pkg/dataset"
	"schedfinder/pkg/lookup"
	"schedfinder/pkg/timetable"
	"schedfinder/pkg/view"
)

const helpText = `Commands:
/today <name> - today's classes (Monday on weekends)
/day <weekday> <name> - classes on a given weekday
/compare <name>; <name>[; ...] - classes shared by everyone today
/find <part of a name> - search the directory
/midsem <roll> - midsem exam timetable
/endsem <roll> - endsem exam timetable
/countdown <midsem|endsem> <roll> - time left until the next exam`

// Replies builds the text of every bot answer. It never talks to Telegram,
// which keeps it testable.
type Replies struct {
	svc *lookup.Service
	now func() time.Time
}

// NewReplies creates a Replies answering at now().
func NewReplies(svc *lookup.Service, now func() time.Time) *Replies {
	if now == nil {
		now = time.Now
	}
	return &Replies{svc: svc, now: now}
}

// Help lists the commands.
func (r *Replies) Help() string {
	return helpText
}

// failure turns an error into something a user can act on.
func failure(err error) string {
	switch {
	case errors.Is(err, lookup.ErrUnknownStudent):
		return "I couldn't find that name. Try /find with part of it."
	case errors.Is(err, lookup.ErrRollRequired):
		return "Please send a roll number, e.g. /midsem 2301CS01"
	case errors.Is(err, timetable.ErrPreconditionViolation):
		return "Give me at least two names separated by ';'."
	case errors.Is(err, timetable.ErrInvalidArgument):
		return "That doesn't look right: " + err.Error()
	}
	log.Printf("bot: %v", err)
	return "Something went wrong, please try again later."
}

func (r *Replies) renderDay(title string, tt timetable.Timetable, day string) string {
	d, err := view.BuildDay(tt, day, r.now())
	if err != nil {
		return failure(err)
	}
	return title + "\n\n" + d.Text()
}

// Today answers /today <name>.
func (r *Replies) Today(payload string) string {
	if strings.TrimSpace(payload) == "" {
		return "Usage: /today <name>"
	}
	return r.Day(timetable.DefaultDay(r.now()) + " " + payload)
}

// Day answers /day <weekday> <name>.
func (r *Replies) Day(payload string) string {
	fields := strings.Fields(payload)
	if len(fields) < 2 {
		return "Usage: /day <weekday> <name>"
	}

	day := strings.ToLower(fields[0])
	name := strings.Join(fields[1:], " ")
	st, tt, err := r.svc.Timetable(name, day)
	if err != nil {
		return failure(err)
	}

	title := fmt.Sprintf("%s (group %d), %s", st.Name, st.Group, view.DayTitle(day))
	return r.renderDay(title, tt, day)
}

// Compare answers /compare <name>; <name>... for today.
func (r *Replies) Compare(payload string) string {
	var names []string
	for _, n := range strings.Split(payload, ";") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}

	day := timetable.DefaultDay(r.now())
	students, tt, err := r.svc.Compare(names, day)
	if err != nil {
		return failure(err)
	}

	who := make([]string, len(students))
	for i, st := range students {
		who[i] = st.Name
	}
	title := fmt.Sprintf("Shared classes on %s: %s", view.DayTitle(day), strings.Join(who, ", "))
	return r.renderDay(title, tt, day)
}

// Find answers /find <query>.
func (r *Replies) Find(payload string) string {
	found, err := r.svc.Search(payload)
	if err != nil {
		return failure(err)
	}
	if len(found) == 0 {
		return "No matching names."
	}

	var b strings.Builder
	for _, st := range found {
		fmt.Fprintf(&b, "%s (%s)\n", st.Name, st.RollNumber)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Exams answers /midsem <roll> and /endsem <roll>.
func (r *Replies) Exams(cycle dataset.Cycle, payload string) string {
	results, err := r.svc.Exams(cycle, payload)
	if err != nil {
		return failure(err)
	}
	if len(results) == 0 {
		return fmt.Sprintf("No %s exams found for %s.", cycle, timetable.NormalizeRoll(payload))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s exams for %s\n\n", view.DayTitle(string(cycle)), timetable.NormalizeRoll(payload))
	for _, e := range results {
		fmt.Fprintf(&b, "%s %s, %s: %s in %s\n", e.Day, e.Date, e.Time, e.Course, e.Location)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Countdown answers /countdown <cycle> <roll>.
func (r *Replies) Countdown(payload string) string {
	fields := strings.Fields(payload)
	if len(fields) != 2 {
		return "Usage: /countdown <midsem|endsem> <roll>"
	}
	cycle, err := dataset.ParseCycle(fields[0])
	if err != nil {
		return "Usage: /countdown <midsem|endsem> <roll>"
	}

	results, err := r.svc.Exams(cycle, fields[1])
	if err != nil {
		return failure(err)
	}
	cd, ok, err := timetable.NextExam(results, r.now())
	if err != nil {
		return failure(err)
	}
	if !ok {
		return "No upcoming exams. Enjoy!"
	}
	return fmt.Sprintf("%s (%dh %dm more)", view.CountdownLine(cd), cd.Hours, cd.Minutes)
}
