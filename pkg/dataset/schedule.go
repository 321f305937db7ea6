package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"schedfinder/pkg/timetable"
)

// ParseWeek decodes schedule.json: weekday keys mapping to regular and
// special entries.
func ParseWeek(r io.Reader) (Week, error) {
	var raw map[string]DayRecord
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode schedule JSON: %w", err)
	}

	week := make(Week, len(raw))
	for key, rec := range raw {
		day := Day{}
		for _, sr := range rec.Schedule {
			e, err := sr.Entry()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			day.Regular = append(day.Regular, e)
		}
		for _, sp := range rec.Special {
			day.Special = append(day.Special, sp.Entry())
		}
		week[strings.ToLower(strings.TrimSpace(key))] = day
	}

	return week, nil
}

// ParseDirectory decodes nameMap.json, which maps each student name to a
// two-element [group, roll number] array.
func ParseDirectory(r io.Reader) (*Directory, error) {
	var raw map[string][]flexString
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode directory JSON: %w", err)
	}

	students := make([]timetable.Student, 0, len(raw))
	for name, vals := range raw {
		if len(vals) < 1 {
			return nil, fmt.Errorf("directory entry %q has no group", name)
		}
		group, err := vals[0].Int()
		if err != nil {
			return nil, fmt.Errorf("directory entry %q: bad group %q", name, vals[0])
		}

		var roll string
		if len(vals) > 1 {
			roll = timetable.NormalizeRoll(string(vals[1]))
		}

		students = append(students, timetable.Student{
			Name:       strings.TrimSpace(name),
			Group:      group,
			RollNumber: roll,
		})
	}

	return NewDirectory(students), nil
}

// ParseExams decodes a midsem/endsem exam file.
func ParseExams(r io.Reader) ([]timetable.ExamSlot, error) {
	var records []ExamRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode exam JSON: %w", err)
	}

	slots := make([]timetable.ExamSlot, 0, len(records))
	for _, rec := range records {
		slots = append(slots, rec.Slot())
	}
	return slots, nil
}

// WriteExams encodes exam records in the same shape ParseExams reads.
func WriteExams(w io.Writer, records []ExamRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to serialize exams: %w", err)
	}
	return nil
}
