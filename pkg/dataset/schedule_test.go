package dataset

import (
	"strings"
	"testing"

	"schedfinder/pkg/timetable"
)

const weekJSON = `{
	"Monday": {
		"Schedule": [
			{"timeStart": "9:00", "timeEnd": "10:00", "CourseName": "CS101", "GroupStart": "1", "GroupEnd": "30", "type": "LT-1"},
			{"timeStart": "10:00", "timeEnd": "11:00", "CourseName": "MA102", "GroupStart": 31, "GroupEnd": 60, "type": "LT-2"}
		],
		"Special": [
			{"timeStart": "14:00", "timeEnd": "15:00", "names": ["Asha Rao"], "CourseName": "Elective A", "type": "Lab"}
		]
	}
}`

func TestParseWeek(t *testing.T) {
	week, err := ParseWeek(strings.NewReader(weekJSON))
	if err != nil {
		t.Fatalf("ParseWeek failed: %v", err)
	}

	day, ok := week.Day("MONDAY")
	if !ok {
		t.Fatalf("expected monday to be present, got keys %v", week)
	}
	if len(day.Regular) != 2 || len(day.Special) != 1 {
		t.Fatalf("expected 2 regular and 1 special entry, got %d and %d", len(day.Regular), len(day.Special))
	}

	cs := day.Regular[0]
	if cs.Start != "09:00" {
		t.Errorf("expected start to be normalised to 09:00, got %s", cs.Start)
	}
	r, ok := cs.Range()
	if !ok || r.Start != 1 || r.End != 30 {
		t.Errorf("expected range 1-30, got %+v", cs.Eligibility)
	}

	ma, _ := day.Regular[1].Range()
	if ma.Start != 31 || ma.End != 60 {
		t.Errorf("expected numeric groups to parse, got %+v", ma)
	}

	if !day.Special[0].IsSpecial() || !day.Special[0].AppliesTo(timetable.Student{Name: "Asha Rao"}) {
		t.Errorf("expected elective to apply to Asha Rao by name")
	}
}

func TestParseWeek_InvertedRange(t *testing.T) {
	bad := `{"tuesday":{"Schedule":[{"timeStart":"09:00","timeEnd":"10:00","CourseName":"X","GroupStart":"40","GroupEnd":"10","type":"LT"}]}}`
	if _, err := ParseWeek(strings.NewReader(bad)); err == nil {
		t.Errorf("expected an inverted group range to be rejected")
	}

	notNumeric := `{"tuesday":{"Schedule":[{"timeStart":"09:00","timeEnd":"10:00","CourseName":"X","GroupStart":"SPECIAL","GroupEnd":"SPECIAL","type":"LT"}]}}`
	if _, err := ParseWeek(strings.NewReader(notNumeric)); err == nil {
		t.Errorf("expected a non-numeric group range to be rejected")
	}
}

func TestParseDirectory(t *testing.T) {
	raw := `{"Asha Rao": ["12", "2301cs01"], "Ravi Kumar": [35, "2301CS02"]}`

	dir, err := ParseDirectory(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("ParseDirectory failed: %v", err)
	}
	if dir.Len() != 2 {
		t.Fatalf("expected 2 students, got %d", dir.Len())
	}

	asha, ok := dir.Lookup("Asha Rao")
	if !ok {
		t.Fatalf("expected to find Asha Rao")
	}
	if asha.Group != 12 || asha.RollNumber != "2301CS01" {
		t.Errorf("unexpected student: %+v", asha)
	}

	ravi, ok := dir.Lookup("ravi kumar")
	if !ok || ravi.Group != 35 {
		t.Errorf("expected case-insensitive lookup to find Ravi Kumar in group 35, got %+v", ravi)
	}
}

func TestParseExams(t *testing.T) {
	raw := `[{"date":"03-12-2025","day":"Wednesday","shift":"Morning","roomno":"R-202","coursecode":"MA201","rollnolist":["2301CS01"]}]`

	slots, err := ParseExams(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("ParseExams failed: %v", err)
	}
	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(slots))
	}
	if slots[0].Shift != timetable.ShiftMorning || slots[0].Room != "R-202" {
		t.Errorf("unexpected slot: %+v", slots[0])
	}
}
