package timetable

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Shift is the coarse exam time bucket used by the exam datasets.
type Shift string

const (
	ShiftMorning Shift = "Morning"
	ShiftEvening Shift = "Evening"
)

// TimeRange is a wall-clock window such as 10:30–12:30.
type TimeRange struct {
	Start string
	End   string
}

func (r TimeRange) String() string {
	return r.Start + " - " + r.End
}

// ShiftTable maps each shift to its wall-clock window.
type ShiftTable map[Shift]TimeRange

var (
	// DefaultShifts is the two-hour mapping used by most exam cycles.
	DefaultShifts = ShiftTable{
		ShiftMorning: {Start: "10:30", End: "12:30"},
		ShiftEvening: {Start: "15:30", End: "17:30"},
	}

	// ExtendedShifts has the three-hour evening block seen in some cycles.
	ExtendedShifts = ShiftTable{
		ShiftMorning: {Start: "10:30", End: "12:30"},
		ShiftEvening: {Start: "15:00", End: "18:00"},
	}
)

// Lookup finds the window for a shift, ignoring case and surrounding space.
func (t ShiftTable) Lookup(s Shift) (TimeRange, bool) {
	want := strings.TrimSpace(string(s))
	for k, r := range t {
		if strings.EqualFold(string(k), want) {
			return r, true
		}
	}
	return TimeRange{}, false
}

// ExamSlot is one (date, shift, room, course) sitting with its enrolled
// roll numbers.
type ExamSlot struct {
	Date        string // "DD-MM-YYYY"
	Day         string
	Shift       Shift
	Room        string
	CourseCode  string
	RollNumbers []string
}

// ExamResult is one exam on a student's exam timetable.
type ExamResult struct {
	Date     string `json:"date"`
	Day      string `json:"day"`
	Time     string `json:"time"`
	Start    string `json:"-"`
	End      string `json:"-"`
	Course   string `json:"course"`
	Location string `json:"location"`
}

const examDateLayout = "02-01-2006"

// ParseExamDate parses a DD-MM-YYYY date in loc.
func ParseExamDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(examDateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: malformed exam date %q", ErrInvalidArgument, s)
	}
	return t, nil
}

// NormalizeRoll canonicalises a roll number for matching.
func NormalizeRoll(roll string) string {
	return strings.ToUpper(strings.TrimSpace(roll))
}

// LookupExams returns the exams roll is enrolled in, ordered by date and
// then by shift start.
// An empty or unknown roll number yields an empty result.
func LookupExams(slots []ExamSlot, roll string, shifts ShiftTable) ([]ExamResult, error) {
	roll = NormalizeRoll(roll)
	if roll == "" {
		return nil, nil
	}

	var results []ExamResult
	var starts []time.Time
	for _, slot := range slots {
		if !enrolled(slot, roll) {
			continue
		}

		window, ok := shifts.Lookup(slot.Shift)
		if !ok {
			return nil, fmt.Errorf("%w: unknown shift %q for %s on %s", ErrInvalidArgument, slot.Shift, slot.CourseCode, slot.Date)
		}
		date, err := ParseExamDate(slot.Date, time.UTC)
		if err != nil {
			return nil, err
		}
		start, err := ParseClock(window.Start)
		if err != nil {
			return nil, fmt.Errorf("shift %s: %w", slot.Shift, err)
		}

		results = append(results, ExamResult{
			Date:     slot.Date,
			Day:      slot.Day,
			Time:     window.String(),
			Start:    window.Start,
			End:      window.End,
			Course:   slot.CourseCode,
			Location: slot.Room,
		})
		starts = append(starts, start.On(date))
	}

	idx := make([]int, len(results))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return starts[idx[a]].Before(starts[idx[b]])
	})

	sorted := make([]ExamResult, len(results))
	for i, j := range idx {
		sorted[i] = results[j]
	}
	return sorted, nil
}

func enrolled(slot ExamSlot, roll string) bool {
	for _, r := range slot.RollNumbers {
		if NormalizeRoll(r) == roll {
			return true
		}
	}
	return false
}
