package court

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("court not found")
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrInvalidPrice     = errors.New("price per hour must not be negative")
	ErrInvalidStatus    = errors.New("invalid court status")
	ErrInvalidVenue     = errors.New("invalid venue_id")
	ErrInvalidSport     = errors.New("invalid sport_id")
	ErrPermissionDenied = errors.New("permission denied")
)

// Status tells whether a court can currently take bookings.
type Status string

const (
	StatusActive      Status = "ACTIVE"
	StatusMaintenance Status = "MAINTENANCE"
	StatusInactive    Status = "INACTIVE"
)

// ValidStatus reports whether s is one of the known court statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusActive, StatusMaintenance, StatusInactive:
		return true
	}
	return false
}

// Court represents a bookable unit inside a venue (e.g., Court A).
// Only ACTIVE courts may be booked.
type Court struct {
	ID           string
	VenueID      string
	SportID      string
	Name         string
	PricePerHour float64
	Status       Status
	CreatedAt    time.Time

	// Joined fields populated on reads.
	SportName string
	VenueName string
}

// Bookable reports whether the court can take new bookings.
func (c *Court) Bookable() bool {
	return c.Status == StatusActive
}

// Filter defines parameters for listing courts.
type Filter struct {
	VenueID    string
	SportID    string
	OnlyActive bool
}
