// Package lookup answers the questions every front end asks (whose
// timetable, which exams) on top of a dataset store.
package lookup

import (
	"errors"
	"fmt"
	"strings"

	"schedfinder/pkg/dataset"
	"schedfinder/pkg/timetable"
)

var (
	// ErrUnknownStudent is returned when a name is not in the directory.
	ErrUnknownStudent = errors.New("student not found")
	// ErrRollRequired is returned for an empty or opted-out roll number.
	ErrRollRequired = errors.New("q (roll) required")
)

// Service wires the store to the engine.
type Service struct {
	store  *dataset.Store
	shifts map[dataset.Cycle]timetable.ShiftTable
	optOut func(roll string) bool
}

// Option configures a Service.
type Option func(*Service)

// WithShifts sets the shift table for one exam cycle.
func WithShifts(c dataset.Cycle, t timetable.ShiftTable) Option {
	return func(s *Service) { s.shifts[c] = t }
}

// WithOptOut hides the exams of roll numbers for which f returns true.
func WithOptOut(f func(roll string) bool) Option {
	return func(s *Service) { s.optOut = f }
}

// New creates a Service. Cycles without a shift table use the defaults.
func New(store *dataset.Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		shifts: make(map[dataset.Cycle]timetable.ShiftTable),
		optOut: func(string) bool { return false },
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Store exposes the underlying dataset store.
func (s *Service) Store() *dataset.Store {
	return s.store
}

// Search returns directory names matching query.
func (s *Service) Search(query string) ([]timetable.Student, error) {
	dir, err := s.store.Directory()
	if err != nil {
		return nil, err
	}
	return dir.Search(query, dataset.SearchLimit), nil
}

// Student looks up a student by name.
func (s *Service) Student(name string) (timetable.Student, error) {
	dir, err := s.store.Directory()
	if err != nil {
		return timetable.Student{}, err
	}
	st, ok := dir.Lookup(strings.TrimSpace(name))
	if !ok {
		return timetable.Student{}, fmt.Errorf("%w: %q", ErrUnknownStudent, name)
	}
	return st, nil
}

func (s *Service) day(day string) (dataset.Day, error) {
	day = strings.ToLower(strings.TrimSpace(day))
	if !timetable.ValidDay(day) {
		return dataset.Day{}, fmt.Errorf("%w: unknown day %q", timetable.ErrInvalidArgument, day)
	}
	week, err := s.store.Week()
	if err != nil {
		return dataset.Day{}, err
	}
	d, _ := week.Day(day)
	return d, nil
}

// Timetable resolves one student's classes on day.
func (s *Service) Timetable(name, day string) (timetable.Student, timetable.Timetable, error) {
	st, err := s.Student(name)
	if err != nil {
		return timetable.Student{}, nil, err
	}
	d, err := s.day(day)
	if err != nil {
		return st, nil, err
	}
	tt, err := timetable.ResolveStudent(d.Regular, d.Special, st)
	return st, tt, err
}

// Week resolves one student's classes for every weekday.
func (s *Service) Week(name string) (timetable.Student, map[string]timetable.Timetable, error) {
	st, err := s.Student(name)
	if err != nil {
		return timetable.Student{}, nil, err
	}

	out := make(map[string]timetable.Timetable, len(timetable.Weekdays))
	for _, day := range timetable.Weekdays {
		d, err := s.day(day)
		if err != nil {
			return st, nil, err
		}
		tt, err := timetable.ResolveStudent(d.Regular, d.Special, st)
		if err != nil {
			return st, nil, fmt.Errorf("%s: %w", day, err)
		}
		out[day] = tt
	}
	return st, out, nil
}

// Compare returns the classes shared by every named student on day.
// Names resolving to the same student count once.
func (s *Service) Compare(names []string, day string) ([]timetable.Student, timetable.Timetable, error) {
	students := make([]timetable.Student, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		st, err := s.Student(n)
		if err != nil {
			return nil, nil, err
		}
		// The same student named twice is one student.
		if seen[st.Name] {
			continue
		}
		seen[st.Name] = true
		students = append(students, st)
	}

	d, err := s.day(day)
	if err != nil {
		return students, nil, err
	}
	tt, err := timetable.CompareAll(d.Regular, students)
	return students, tt, err
}

// Exams returns a roll number's exams for one cycle in date order.
func (s *Service) Exams(c dataset.Cycle, roll string) ([]timetable.ExamResult, error) {
	roll = timetable.NormalizeRoll(roll)
	if roll == "" || s.optOut(roll) {
		return nil, ErrRollRequired
	}

	slots, err := s.store.Exams(c)
	if err != nil {
		return nil, err
	}

	shifts, ok := s.shifts[c]
	if !ok {
		shifts = timetable.DefaultShifts
	}
	return timetable.LookupExams(slots, roll, shifts)
}
