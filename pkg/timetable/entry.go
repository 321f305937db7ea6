package timetable

import (
	"fmt"
	"strings"
)

// Eligibility decides who an entry applies to. It is either a GroupRange or
// a NameList.
type Eligibility interface {
	appliesTo(s Student) bool
}

// GroupRange makes an entry apply to every group in [Start, End].
type GroupRange struct {
	Start int
	End   int
}

func (r GroupRange) appliesTo(s Student) bool {
	return r.Contains(s.Group)
}

// Contains reports whether group lies inside the inclusive range.
func (r GroupRange) Contains(group int) bool {
	return group >= r.Start && group <= r.End
}

func (r GroupRange) String() string {
	return fmt.Sprintf("%d to %d", r.Start, r.End)
}

// NameList makes an entry apply only to explicitly enrolled students
// (electives and other special entries).
type NameList struct {
	Names map[string]struct{}
}

// NewNameList builds a NameList from a slice of student names.
func NewNameList(names ...string) NameList {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return NameList{Names: set}
}

func (l NameList) appliesTo(s Student) bool {
	return l.Has(s.Name)
}

// Has reports whether name is enrolled.
func (l NameList) Has(name string) bool {
	_, ok := l.Names[name]
	return ok
}

// Student is one row of the name directory.
type Student struct {
	Name       string
	Group      int
	RollNumber string
}

// Entry is a single class in a day's schedule.
type Entry struct {
	Start       string // "08:00", occasionally "8:00" in the raw data
	End         string
	Course      string
	Location    string // room or session type, e.g. "LT-1" or "Lab"
	Eligibility Eligibility
}

// IsSpecial reports whether the entry applies by explicit enrolment.
func (e Entry) IsSpecial() bool {
	_, ok := e.Eligibility.(NameList)
	return ok
}

// Range returns the entry's group range, if it has one.
func (e Entry) Range() (GroupRange, bool) {
	r, ok := e.Eligibility.(GroupRange)
	return r, ok
}

// AppliesTo reports whether the entry is on s's timetable.
func (e Entry) AppliesTo(s Student) bool {
	if e.Eligibility == nil {
		return false
	}
	return e.Eligibility.appliesTo(s)
}

// StartClock parses the start time.
func (e Entry) StartClock() (Clock, error) {
	c, err := ParseClock(e.Start)
	if err != nil {
		return 0, fmt.Errorf("start of %s: %w", e.Course, err)
	}
	return c, nil
}

// EndClock parses the end time.
func (e Entry) EndClock() (Clock, error) {
	c, err := ParseClock(e.End)
	if err != nil {
		return 0, fmt.Errorf("end of %s: %w", e.Course, err)
	}
	return c, nil
}

// excludedCourse is never shown on a timetable regardless of group.
const excludedCourse = "HSS"

func isExcluded(e Entry) bool {
	return strings.EqualFold(strings.TrimSpace(e.Course), excludedCourse)
}

// Timetable is a chronologically ordered list of entries for one student
// (or one set of students) on one day.
type Timetable []Entry
