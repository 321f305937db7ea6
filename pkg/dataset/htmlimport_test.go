package dataset

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

const seatingPlan = `<html><body>
<table>
  <tr><th>Date</th><th>Day</th><th>Shift</th><th>Room</th><th>Course</th><th>Roll Numbers</th></tr>
  <tr><td>03-12-2025</td><td>Wednesday</td><td>Morning</td><td>R-202</td><td>MA201</td><td>2301cs01, 2301CS02;2301CS03</td></tr>
  <tr><td colspan="6">Lunch break</td></tr>
  <tr><td>05-12-2025</td><td>Friday</td><td>Evening</td><td>R-101</td><td>CS301</td><td>
      2301CS01
      2301CS04
  </td></tr>
</table>
</body></html>`

func TestParseExamTable(t *testing.T) {
	records, err := ParseExamTable(strings.NewReader(seatingPlan))
	if err != nil {
		t.Fatalf("ParseExamTable failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 sittings, got %d: %+v", len(records), records)
	}

	first := records[0]
	if first.CourseCode != "MA201" || first.Shift != "Morning" || first.RoomNo != "R-202" {
		t.Errorf("unexpected first record: %+v", first)
	}
	wantRolls := []string{"2301CS01", "2301CS02", "2301CS03"}
	if !reflect.DeepEqual(first.RollNoList, wantRolls) {
		t.Errorf("expected rolls %v, got %v", wantRolls, first.RollNoList)
	}

	if !reflect.DeepEqual(records[1].RollNoList, []string{"2301CS01", "2301CS04"}) {
		t.Errorf("expected newline separated rolls to split, got %v", records[1].RollNoList)
	}
}

func TestParseExamTable_RoundTripsThroughJSON(t *testing.T) {
	records, err := ParseExamTable(strings.NewReader(seatingPlan))
	if err != nil {
		t.Fatalf("ParseExamTable failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteExams(&buf, records); err != nil {
		t.Fatalf("WriteExams failed: %v", err)
	}

	slots, err := ParseExams(&buf)
	if err != nil {
		t.Fatalf("ParseExams failed: %v", err)
	}
	if len(slots) != 2 || slots[1].CourseCode != "CS301" {
		t.Errorf("unexpected slots after import: %+v", slots)
	}
}
