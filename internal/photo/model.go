package photo

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("photo not found")
	ErrInvalidVenue     = errors.New("venue not found")
	ErrPermissionDenied = errors.New("not the owner of this venue")
	ErrUnsupportedType  = errors.New("unsupported image type")
	ErrTooLarge         = errors.New("image exceeds size limit")
)

// MaxUploadBytes caps a single photo upload at 10 MiB.
const MaxUploadBytes = 10 << 20

type Photo struct {
	ID          string
	VenueID     string
	Path        string
	ThumbPath   string
	ContentType string
	SizeBytes   int64
	CreatedAt   time.Time
}
