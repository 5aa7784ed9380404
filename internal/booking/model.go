package booking

import (
	"net/http"
	"time"

	"github.com/courtsidehq/venue-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "booking not found")
	ErrAccessDenied       = apperror.New(http.StatusForbidden, "access denied")
	ErrCourtUnavailable   = apperror.New(http.StatusBadRequest, "court not available")
	ErrSlotUnavailable    = apperror.New(http.StatusConflict, "time slot not available")
	ErrCannotCancel       = apperror.New(http.StatusBadRequest, "cannot cancel this booking")
	ErrCancelWindowClosed = apperror.New(http.StatusBadRequest, "cancellation window has closed")

	ErrInvalidDate      = apperror.New(http.StatusBadRequest, "date must be a valid calendar date (YYYY-MM-DD)")
	ErrInvalidTime      = apperror.New(http.StatusBadRequest, "times must be zero-padded 24-hour HH:MM")
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrInvalidDuration  = apperror.New(http.StatusBadRequest, "duration must be between 1 and 8 hours")
	ErrInvalidPrice     = apperror.New(http.StatusBadRequest, "total price does not match the court rate")
)

// DateLayout is the calendar-day format used throughout the booking core.
const DateLayout = "2006-01-02"

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

// Booking is a reservation of one court for a time interval on one day.
//
// Invariant: for a fixed court and date, no two bookings whose status is
// CONFIRMED or COMPLETED may have overlapping [StartTime, EndTime)
// intervals. Repository.CreateIfFree is the only write path for new
// bookings and upholds this under concurrency.
type Booking struct {
	ID            string
	UserID        string
	VenueID       string
	CourtID       string
	Date          string // YYYY-MM-DD, local to the venue
	StartTime     TimeOfDay
	EndTime       TimeOfDay
	DurationHours int
	TotalPrice    float64
	Status        Status
	Notes         *string
	CreatedAt     time.Time
	CancelledAt   *time.Time

	// Joined fields populated on reads for display.
	UserName     string
	VenueName    string
	VenueAddress string
	VenueCity    string
	CourtName    string
}

// EffectiveStatus derives the reported status at the given instant.
// A CONFIRMED booking whose date has fully passed reads as COMPLETED;
// nothing ever writes COMPLETED to the store.
func (b *Booking) EffectiveStatus(now time.Time) Status {
	if b.Status != StatusConfirmed {
		return b.Status
	}
	day, err := time.ParseInLocation(DateLayout, b.Date, now.Location())
	if err != nil {
		return b.Status
	}
	if day.AddDate(0, 0, 1).After(now) {
		return StatusConfirmed
	}
	return StatusCompleted
}

// StartsAt composes the booking's date and start time into an instant in
// the given location.
func (b *Booking) StartsAt(loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, b.Date, loc)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(b.StartTime.Minutes()) * time.Minute), nil
}

// Active reports whether the booking holds its time slot against new
// reservations. Cancelled bookings never conflict.
func (b *Booking) Active() bool {
	return b.Status == StatusConfirmed || b.Status == StatusCompleted
}

// Filter defines parameters for listing bookings.
type Filter struct {
	UserID   string
	VenueID  string
	CourtID  string
	Status   string
	Page     int
	PageSize int
}
