package timetable

import "sort"

// Resolve builds one student's timetable for a day.
//
// Regular entries are kept when their group range contains group (HSS is
// always dropped); special entries are kept when name is enrolled. The merged
// list is sorted by start time, keeping input order for equal starts.
func Resolve(regular, special []Entry, group int, name string) (Timetable, error) {
	student := Student{Name: name, Group: group}

	var out Timetable
	for _, e := range regular {
		r, ok := e.Range()
		if !ok || !r.Contains(group) || isExcluded(e) {
			continue
		}
		out = append(out, e)
	}

	for _, e := range special {
		if e.IsSpecial() && e.AppliesTo(student) {
			out = append(out, e)
		}
	}

	if err := SortByStart(out); err != nil {
		return nil, err
	}
	return out, nil
}

// ResolveStudent is Resolve for a directory Student.
func ResolveStudent(regular, special []Entry, s Student) (Timetable, error) {
	return Resolve(regular, special, s.Group, s.Name)
}

// SortByStart stably sorts entries by parsed start time in place. It fails
// without touching the slice if any start time is malformed.
func SortByStart(entries []Entry) error {
	keys := make([]Clock, len(entries))
	for i, e := range entries {
		c, err := e.StartClock()
		if err != nil {
			return err
		}
		keys[i] = c
	}

	idx := make([]int, len(entries))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return keys[idx[a]] < keys[idx[b]]
	})

	sorted := make([]Entry, len(entries))
	for i, j := range idx {
		sorted[i] = entries[j]
	}
	copy(entries, sorted)
	return nil
}
