package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveStatus(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name   string
		date   string
		status Status
		want   Status
	}{
		{"future confirmed stays confirmed", "2025-03-11", StatusConfirmed, StatusConfirmed},
		{"same day confirmed stays confirmed", "2025-03-10", StatusConfirmed, StatusConfirmed},
		{"past confirmed reads completed", "2025-03-09", StatusConfirmed, StatusCompleted},
		{"past cancelled stays cancelled", "2025-03-09", StatusCancelled, StatusCancelled},
		{"stored completed stays completed", "2025-03-01", StatusCompleted, StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Date: tt.date, Status: tt.status}
			assert.Equal(t, tt.want, b.EffectiveStatus(now))
		})
	}
}

func TestStartsAt(t *testing.T) {
	b := &Booking{Date: "2025-03-10", StartTime: mustParse("14:00")}

	got, err := b.StartsAt(time.Local)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 14, 0, 0, 0, time.Local), got)
}
