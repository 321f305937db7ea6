package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"schedfinder/pkg/timetable"
)

// flexString accepts either a JSON string or a JSON number. The published
// datasets are hand-edited and use both for group numbers.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", string(b))
	}
	*f = flexString(n.String())
	return nil
}

func (f flexString) Int() (int, error) {
	return strconv.Atoi(strings.TrimSpace(string(f)))
}

// ScheduleRecord is one regular class as stored in schedule.json.
type ScheduleRecord struct {
	TimeStart  string     `json:"timeStart"`
	TimeEnd    string     `json:"timeEnd"`
	CourseName string     `json:"CourseName"`
	GroupStart flexString `json:"GroupStart"`
	GroupEnd   flexString `json:"GroupEnd"`
	Type       string     `json:"type"`
}

// SpecialRecord is one elective-style class with an explicit enrolment list.
type SpecialRecord struct {
	TimeStart  string   `json:"timeStart"`
	TimeEnd    string   `json:"timeEnd"`
	Names      []string `json:"names"`
	CourseName string   `json:"CourseName"`
	Type       string   `json:"type"`
}

// DayRecord holds one weekday of schedule.json.
type DayRecord struct {
	Schedule []ScheduleRecord `json:"Schedule"`
	Special  []SpecialRecord  `json:"Special"`
}

// ExamRecord is one sitting as stored in the midsem/endsem JSON files.
type ExamRecord struct {
	Date       string   `json:"date"`
	Day        string   `json:"day"`
	Shift      string   `json:"shift"`
	RoomNo     string   `json:"roomno"`
	CourseCode string   `json:"coursecode"`
	RollNoList []string `json:"rollnolist"`
}

// Entry converts the record, validating its group range.
func (r ScheduleRecord) Entry() (timetable.Entry, error) {
	start, err := r.GroupStart.Int()
	if err != nil {
		return timetable.Entry{}, fmt.Errorf("%s: bad GroupStart %q", r.CourseName, r.GroupStart)
	}
	end, err := r.GroupEnd.Int()
	if err != nil {
		return timetable.Entry{}, fmt.Errorf("%s: bad GroupEnd %q", r.CourseName, r.GroupEnd)
	}
	if start > end {
		return timetable.Entry{}, fmt.Errorf("%s: group range %d-%d is inverted", r.CourseName, start, end)
	}

	return timetable.Entry{
		Start:       timetable.NormalizeClock(r.TimeStart),
		End:         timetable.NormalizeClock(r.TimeEnd),
		Course:      strings.TrimSpace(r.CourseName),
		Location:    strings.TrimSpace(r.Type),
		Eligibility: timetable.GroupRange{Start: start, End: end},
	}, nil
}

// Entry converts the record into a name-list entry.
func (r SpecialRecord) Entry() timetable.Entry {
	return timetable.Entry{
		Start:       timetable.NormalizeClock(r.TimeStart),
		End:         timetable.NormalizeClock(r.TimeEnd),
		Course:      strings.TrimSpace(r.CourseName),
		Location:    strings.TrimSpace(r.Type),
		Eligibility: timetable.NewNameList(r.Names...),
	}
}

// Slot converts the record into the engine's exam slot.
func (r ExamRecord) Slot() timetable.ExamSlot {
	return timetable.ExamSlot{
		Date:        strings.TrimSpace(r.Date),
		Day:         strings.TrimSpace(r.Day),
		Shift:       timetable.Shift(strings.TrimSpace(r.Shift)),
		Room:        strings.TrimSpace(r.RoomNo),
		CourseCode:  strings.TrimSpace(r.CourseCode),
		RollNumbers: r.RollNoList,
	}
}

// Day is one weekday's entries after conversion.
type Day struct {
	Regular []timetable.Entry
	Special []timetable.Entry
}

// Week maps lowercase weekday keys ("monday") to their schedule.
type Week map[string]Day

// Day returns the schedule for a weekday key, ignoring case.
func (w Week) Day(name string) (Day, bool) {
	d, ok := w[strings.ToLower(strings.TrimSpace(name))]
	return d, ok
}

// Cycle identifies an exam season.
type Cycle string

const (
	CycleMidsem Cycle = "midsem"
	CycleEndsem Cycle = "endsem"
)

// Cycles lists the known exam seasons.
var Cycles = []Cycle{CycleMidsem, CycleEndsem}

// ParseCycle validates a cycle name.
func ParseCycle(s string) (Cycle, error) {
	c := Cycle(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Cycles {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown exam cycle %q (expected midsem or endsem)", s)
}
