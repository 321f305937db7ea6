package timetable

// FreeSlot is a gap between two consecutive classes.
type FreeSlot struct {
	AfterCourse string
	Minutes     int
}

// minFreeGap is the largest gap still treated as a changeover buffer.
const minFreeGap = 5

// FreeSlots lists gaps longer than five minutes between consecutive entries
// of an already sorted timetable.
func FreeSlots(tt Timetable) ([]FreeSlot, error) {
	var slots []FreeSlot
	for i := 0; i+1 < len(tt); i++ {
		end, err := tt[i].EndClock()
		if err != nil {
			return nil, err
		}
		next, err := tt[i+1].StartClock()
		if err != nil {
			return nil, err
		}

		gap := int(next - end)
		if gap > minFreeGap {
			slots = append(slots, FreeSlot{AfterCourse: tt[i].Course, Minutes: gap})
		}
	}
	return slots, nil
}
