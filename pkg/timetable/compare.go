package timetable

import "fmt"

// CompareAll returns the classes every one of students attends.
//
// Only group-range entries take part; special (name-list) entries are never
// common classes. At least two students are required.
func CompareAll(entries []Entry, students []Student) (Timetable, error) {
	if len(students) < 2 {
		return nil, fmt.Errorf("%w: comparison needs at least 2 students, got %d", ErrPreconditionViolation, len(students))
	}

	var common Timetable
	for _, e := range entries {
		r, ok := e.Range()
		if !ok || isExcluded(e) {
			continue
		}

		shared := true
		for _, s := range students {
			if !r.Contains(s.Group) {
				shared = false
				break
			}
		}
		if shared {
			common = append(common, e)
		}
	}

	if err := SortByStart(common); err != nil {
		return nil, err
	}
	return common, nil
}
