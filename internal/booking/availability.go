package booking

import "sort"

// TimeSlot is a bookable gap within a court's operating hours.
type TimeSlot struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// FreeSlots computes the open intervals of a day given the venue's operating
// hours and the court's active bookings. Bookings outside the operating
// window are clamped to it; back-to-back bookings produce no zero-length
// gap between them.
func FreeSlots(open, close TimeOfDay, bookings []*Booking) []TimeSlot {
	if open >= close {
		return []TimeSlot{}
	}

	busy := make([]TimeSlot, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == StatusCancelled {
			continue
		}
		start, end := b.StartTime, b.EndTime
		if start < open {
			start = open
		}
		if end > close {
			end = close
		}
		if start >= end {
			continue
		}
		busy = append(busy, TimeSlot{Start: start, End: end})
	}

	sort.Slice(busy, func(i, j int) bool { return busy[i].Start < busy[j].Start })

	free := []TimeSlot{}
	cursor := open
	for _, slot := range busy {
		if slot.Start > cursor {
			free = append(free, TimeSlot{Start: cursor, End: slot.Start})
		}
		if slot.End > cursor {
			cursor = slot.End
		}
	}
	if cursor < close {
		free = append(free, TimeSlot{Start: cursor, End: close})
	}

	return free
}
