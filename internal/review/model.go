package review

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("review not found")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrInvalidVenue    = errors.New("venue not found")
	ErrAlreadyReviewed = errors.New("venue already reviewed by this user")
	ErrAccessDenied    = errors.New("not the author of this review")
)

type Review struct {
	ID        string
	VenueID   string
	UserID    string
	Rating    int
	Comment   string
	CreatedAt time.Time

	// Joined field
	UserName string
}
