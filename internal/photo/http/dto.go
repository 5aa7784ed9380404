package http

import (
	"fmt"
	"time"

	"github.com/courtsidehq/venue-booking-backend/internal/photo"
)

type PhotoResponse struct {
	ID        string    `json:"id"`
	VenueID   string    `json:"venue_id"`
	URL       string    `json:"url"`
	ThumbURL  string    `json:"thumb_url"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}

func NewPhotoResponse(p *photo.Photo) PhotoResponse {
	return PhotoResponse{
		ID:        p.ID,
		VenueID:   p.VenueID,
		URL:       fmt.Sprintf("/v1/photos/%s", p.ID),
		ThumbURL:  fmt.Sprintf("/v1/photos/%s?thumb=true", p.ID),
		SizeBytes: p.SizeBytes,
		CreatedAt: p.CreatedAt,
	}
}
