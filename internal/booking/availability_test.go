package booking

import (
	"reflect"
	"testing"
)

func mustClock(t *testing.T, s string) TimeOfDay {
	t.Helper()
	v, err := ParseTimeOfDay(s)
	if err != nil {
		t.Fatalf("bad clock %q: %v", s, err)
	}
	return v
}

func booked(t *testing.T, start, end string, status Status) *Booking {
	t.Helper()
	return &Booking{
		StartTime: mustClock(t, start),
		EndTime:   mustClock(t, end),
		Status:    status,
	}
}

func TestFreeSlots(t *testing.T) {
	tests := []struct {
		name     string
		open     string
		close    string
		bookings []*Booking
		want     []TimeSlot
	}{
		{
			name:  "empty day",
			open:  "08:00",
			close: "22:00",
			want:  []TimeSlot{slotLit(480, 1320)},
		},
		{
			name:  "single booking in the middle",
			open:  "08:00",
			close: "22:00",
			bookings: []*Booking{
				booked(t, "14:00", "15:00", StatusConfirmed),
			},
			want: []TimeSlot{slotLit(480, 840), slotLit(900, 1320)},
		},
		{
			name:  "back to back bookings leave no gap",
			open:  "08:00",
			close: "22:00",
			bookings: []*Booking{
				booked(t, "14:00", "15:00", StatusConfirmed),
				booked(t, "15:00", "16:00", StatusConfirmed),
			},
			want: []TimeSlot{slotLit(480, 840), slotLit(960, 1320)},
		},
		{
			name:  "cancelled booking is ignored",
			open:  "08:00",
			close: "22:00",
			bookings: []*Booking{
				booked(t, "14:00", "15:00", StatusCancelled),
			},
			want: []TimeSlot{slotLit(480, 1320)},
		},
		{
			name:  "booking at opening edge",
			open:  "08:00",
			close: "22:00",
			bookings: []*Booking{
				booked(t, "08:00", "10:00", StatusConfirmed),
			},
			want: []TimeSlot{slotLit(600, 1320)},
		},
		{
			name:  "booking at closing edge",
			open:  "08:00",
			close: "22:00",
			bookings: []*Booking{
				booked(t, "20:00", "22:00", StatusCompleted),
			},
			want: []TimeSlot{slotLit(480, 1200)},
		},
		{
			name:  "booking outside hours is clamped",
			open:  "08:00",
			close: "22:00",
			bookings: []*Booking{
				booked(t, "06:00", "09:00", StatusConfirmed),
			},
			want: []TimeSlot{slotLit(540, 1320)},
		},
		{
			name:  "unsorted overlapping bookings merge",
			open:  "08:00",
			close: "22:00",
			bookings: []*Booking{
				booked(t, "16:00", "18:00", StatusConfirmed),
				booked(t, "09:00", "11:00", StatusConfirmed),
				booked(t, "10:00", "12:00", StatusConfirmed),
			},
			want: []TimeSlot{slotLit(480, 540), slotLit(720, 960), slotLit(1080, 1320)},
		},
		{
			name:  "fully booked day",
			open:  "08:00",
			close: "22:00",
			bookings: []*Booking{
				booked(t, "08:00", "22:00", StatusConfirmed),
			},
			want: []TimeSlot{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FreeSlots(mustClock(t, tt.open), mustClock(t, tt.close), tt.bookings)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FreeSlots() = %v, want %v", got, tt.want)
			}
		})
	}
}

func slotLit(start, end TimeOfDay) TimeSlot {
	return TimeSlot{Start: start, End: end}
}
