package http

import (
	"time"

	"github.com/courtsidehq/venue-booking-backend/internal/court"
	sportHttp "github.com/courtsidehq/venue-booking-backend/internal/sport/http"
)

type CourtResponse struct {
	ID           string             `json:"id"`
	VenueID      string             `json:"venue_id"`
	Name         string             `json:"name"`
	Sport        sportHttp.SportTag `json:"sport"`
	PricePerHour float64            `json:"price_per_hour"`
	Status       string             `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
}

func NewCourtResponse(c *court.Court) CourtResponse {
	return CourtResponse{
		ID:           c.ID,
		VenueID:      c.VenueID,
		Name:         c.Name,
		Sport:        sportHttp.SportTag{ID: c.SportID, Name: c.SportName},
		PricePerHour: c.PricePerHour,
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
	}
}

// CourtTag is a brief representation of a court for embedding in other responses.
type CourtTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateCourtRequest struct {
	SportID      string  `json:"sport_id" binding:"required,uuid"`
	Name         string  `json:"name" binding:"required,min=1,max=100"`
	PricePerHour float64 `json:"price_per_hour" binding:"required,min=0"`
}

type UpdateCourtRequest struct {
	Name         *string  `json:"name" binding:"omitempty,min=1,max=100"`
	PricePerHour *float64 `json:"price_per_hour" binding:"omitempty,min=0"`
	Status       *string  `json:"status" binding:"omitempty,oneof=ACTIVE MAINTENANCE INACTIVE"`
	SportID      *string  `json:"sport_id" binding:"omitempty,uuid"`
}
