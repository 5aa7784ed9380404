package sport

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("sport not found")
)

// Sport is a category of activity a court can host (e.g., Badminton, Futsal).
type Sport struct {
	ID        string
	Name      string
	Icon      *string
	CreatedAt time.Time
}
