package lookup

import (
	"errors"
	"reflect"
	"testing"

	"schedfinder/pkg/config"
	"schedfinder/pkg/dataset"
	"schedfinder/pkg/timetable"
)

func newTestService(opts ...Option) *Service {
	dir := dataset.NewDirectory([]timetable.Student{
		{Name: "Asha Rao", Group: 12, RollNumber: "2301CS01"},
		{Name: "Ravi Kumar", Group: 35, RollNumber: "2301CS02"},
		{Name: "Meera Iyer", Group: 12, RollNumber: "2301AI07"},
	})
	week := dataset.Week{
		"monday": {
			Regular: []timetable.Entry{
				{Start: "10:00", End: "11:00", Course: "MA102", Eligibility: timetable.GroupRange{Start: 1, End: 60}},
				{Start: "9:00", End: "10:00", Course: "CS101", Eligibility: timetable.GroupRange{Start: 1, End: 30}},
				{Start: "14:00", End: "15:00", Course: "HSS", Eligibility: timetable.GroupRange{Start: 1, End: 60}},
			},
			Special: []timetable.Entry{
				{Start: "12:00", End: "13:00", Course: "Japanese I", Eligibility: timetable.NewNameList("Asha Rao")},
			},
		},
	}
	exams := map[dataset.Cycle][]timetable.ExamSlot{
		dataset.CycleEndsem: {
			{Date: "20-04-2026", Day: "Monday", Shift: timetable.ShiftEvening, Room: "LH-2", CourseCode: "CS101", RollNumbers: []string{"2301CS01"}},
			{Date: "15-04-2026", Day: "Wednesday", Shift: timetable.ShiftMorning, Room: "LH-1", CourseCode: "MA102", RollNumbers: []string{"2301CS01", "2501EC15"}},
		},
	}
	return New(dataset.NewStaticStore(dir, week, exams), opts...)
}

func TestTimetable(t *testing.T) {
	svc := newTestService()

	st, tt, err := svc.Timetable("asha rao", " Monday ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.RollNumber != "2301CS01" {
		t.Errorf("unexpected student %+v", st)
	}

	var got []string
	for _, e := range tt {
		got = append(got, e.Course)
	}
	want := []string{"CS101", "MA102", "Japanese I"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if _, _, err := svc.Timetable("Nobody", "monday"); !errors.Is(err, ErrUnknownStudent) {
		t.Errorf("expected ErrUnknownStudent, got %v", err)
	}
	if _, _, err := svc.Timetable("Asha Rao", "sunday"); !errors.Is(err, timetable.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for weekend, got %v", err)
	}
}

func TestWeek(t *testing.T) {
	_, week, err := newTestService().Week("Ravi Kumar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(week) != len(timetable.Weekdays) {
		t.Errorf("expected all weekdays, got %d", len(week))
	}
	if len(week["monday"]) != 1 || week["monday"][0].Course != "MA102" {
		t.Errorf("unexpected monday for Ravi: %+v", week["monday"])
	}
	if len(week["tuesday"]) != 0 {
		t.Errorf("expected empty tuesday, got %+v", week["tuesday"])
	}
}

func TestCompare(t *testing.T) {
	svc := newTestService()

	_, tt, err := svc.Compare([]string{"Asha Rao", "Meera Iyer"}, "monday")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tt) != 2 || tt[0].Course != "CS101" || tt[1].Course != "MA102" {
		t.Errorf("unexpected shared classes: %+v", tt)
	}

	_, tt, err = svc.Compare([]string{"Asha Rao", "Ravi Kumar"}, "monday")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tt) != 1 || tt[0].Course != "MA102" {
		t.Errorf("unexpected shared classes: %+v", tt)
	}

	if _, _, err := svc.Compare([]string{"Asha Rao", ""}, "monday"); !errors.Is(err, timetable.ErrPreconditionViolation) {
		t.Errorf("expected ErrPreconditionViolation, got %v", err)
	}

	students, _, err := svc.Compare([]string{"Asha Rao", "asha rao", " ASHA RAO "}, "monday")
	if !errors.Is(err, timetable.ErrPreconditionViolation) {
		t.Errorf("expected one student named three ways to fail the precondition, got %v", err)
	}
	if len(students) != 1 {
		t.Errorf("expected duplicates to collapse to one student, got %+v", students)
	}
}

func TestExams(t *testing.T) {
	svc := newTestService(
		WithShifts(dataset.CycleEndsem, timetable.ExtendedShifts),
		WithOptOut(func(roll string) bool { return roll == "2501EC15" }),
	)

	results, err := svc.Exams(dataset.CycleEndsem, " 2301cs01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 || results[0].Course != "MA102" {
		t.Fatalf("expected MA102 first, got %+v", results)
	}
	if results[1].Time != "15:00 - 18:00" {
		t.Errorf("expected extended evening shift, got %s", results[1].Time)
	}

	if _, err := svc.Exams(dataset.CycleEndsem, ""); !errors.Is(err, ErrRollRequired) {
		t.Errorf("expected ErrRollRequired for empty roll, got %v", err)
	}
	if _, err := svc.Exams(dataset.CycleEndsem, "2501ec15"); !errors.Is(err, ErrRollRequired) {
		t.Errorf("expected ErrRollRequired for opted-out roll, got %v", err)
	}

	none, err := svc.Exams(dataset.CycleEndsem, "2301EE99")
	if err != nil || len(none) != 0 {
		t.Errorf("expected empty result for unknown roll, got %v, %v", none, err)
	}

	if _, err := svc.Exams(dataset.CycleMidsem, "2301CS01"); err == nil {
		t.Errorf("expected an error for a cycle with no dataset")
	}
}

func TestFromConfig(t *testing.T) {
	t.Setenv("SCHEDFINDER_DATA_DIR", "")

	cfg := &config.AppConfig{
		DataDir:     "../../data",
		OptOutRolls: []string{"2301CS02"},
		ExamShifts:  map[string]map[string]string{"endsem": {"Evening": "15:00-18:00"}},
	}
	svc, err := FromConfig(cfg, dataset.NewClient())
	if err != nil {
		t.Fatalf("FromConfig failed: %v", err)
	}

	if _, err := svc.Exams(dataset.CycleEndsem, "2301CS02"); !errors.Is(err, ErrRollRequired) {
		t.Errorf("expected configured opt-out to apply, got %v", err)
	}
	if got := svc.shifts[dataset.CycleEndsem][timetable.ShiftEvening].Start; got != "15:00" {
		t.Errorf("expected configured evening shift, got %s", got)
	}

	cfg.ExamShifts = map[string]map[string]string{"midsem": {"Morning": "late"}}
	if _, err := FromConfig(cfg, nil); err == nil {
		t.Errorf("expected malformed shift window to fail")
	}
}
