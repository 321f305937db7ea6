package dataset

import (
	"sort"
	"strings"

	"schedfinder/pkg/timetable"
)

// SearchLimit caps the number of suggestions returned by Search.
const SearchLimit = 50

// Directory is the read-only name → (group, roll number) lookup.
type Directory struct {
	byName map[string]timetable.Student
	names  []string
}

// NewDirectory indexes students by name. Later duplicates win.
func NewDirectory(students []timetable.Student) *Directory {
	d := &Directory{byName: make(map[string]timetable.Student, len(students))}
	for _, s := range students {
		if _, seen := d.byName[s.Name]; !seen {
			d.names = append(d.names, s.Name)
		}
		d.byName[s.Name] = s
	}
	sort.Strings(d.names)
	return d
}

// Len returns the number of students.
func (d *Directory) Len() int {
	return len(d.names)
}

// Lookup finds a student by exact name, falling back to a case-insensitive
// match.
func (d *Directory) Lookup(name string) (timetable.Student, bool) {
	name = strings.TrimSpace(name)
	if s, ok := d.byName[name]; ok {
		return s, true
	}
	for _, n := range d.names {
		if strings.EqualFold(n, name) {
			return d.byName[n], true
		}
	}
	return timetable.Student{}, false
}

// Search returns students whose name contains query, case-insensitively,
// in name order. A blank query matches nothing.
func (d *Directory) Search(query string, limit int) []timetable.Student {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	if limit <= 0 {
		limit = SearchLimit
	}

	var out []timetable.Student
	for _, n := range d.names {
		if strings.Contains(strings.ToLower(n), q) {
			out = append(out, d.byName[n])
			if len(out) == limit {
				break
			}
		}
	}
	return out
}
