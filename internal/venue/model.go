package venue

import (
	"net/http"
	"time"

	"github.com/courtsidehq/venue-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "venue not found")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
	ErrInvalidStatus    = apperror.New(http.StatusBadRequest, "invalid venue status")
	ErrEmptyName        = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrInvalidHours     = apperror.New(http.StatusBadRequest, "invalid opening hours")
)

// Status is the moderation state of a venue listing.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Venue is a sports facility owned by a facility owner.
// Only APPROVED venues appear in public listings.
type Venue struct {
	ID          string
	OwnerID     string
	Name        string
	Description string
	Address     string
	City        string
	Phone       *string
	Status      Status

	// Daily opening hours, "HH:MM" local to the venue. Used to bound the
	// free-slot calculation for its courts.
	OpeningTime string
	ClosingTime string

	CreatedAt time.Time

	// Derived fields populated on reads.
	Rating      float64
	ReviewCount int
	CourtCount  int
	MinPrice    float64
	MaxPrice    float64
}

// Filter defines parameters for listing venues.
type Filter struct {
	SportID  string
	City     string
	MinPrice *float64
	MaxPrice *float64
	OwnerID  string
	Status   string
	Page     int
	PageSize int
}
