package timetable

import (
	"reflect"
	"testing"
)

func TestFreeSlots_GapPolicy(t *testing.T) {
	tt := Timetable{
		rangeEntry("08:00", "09:00", "A", 1, 10),
		rangeEntry("09:05", "10:00", "B", 1, 10), // 5 minute gap
		rangeEntry("10:06", "11:00", "C", 1, 10), // 6 minute gap
		rangeEntry("14:00", "15:00", "D", 1, 10), // 3 hours
	}

	slots, err := FreeSlots(tt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []FreeSlot{
		{AfterCourse: "B", Minutes: 6},
		{AfterCourse: "C", Minutes: 180},
	}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("expected %+v, got %+v", want, slots)
	}
}

func TestFreeSlots_ShortTimetables(t *testing.T) {
	for _, tt := range []Timetable{nil, {rangeEntry("08:00", "09:00", "A", 1, 10)}} {
		slots, err := FreeSlots(tt)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(slots) != 0 {
			t.Errorf("expected no free slots for %d entries, got %+v", len(tt), slots)
		}
	}
}
