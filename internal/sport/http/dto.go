package http

import (
	"github.com/courtsidehq/venue-booking-backend/internal/sport"
)

type SportResponse struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Icon *string `json:"icon,omitempty"`
}

func NewSportResponse(s *sport.Sport) SportResponse {
	return SportResponse{
		ID:   s.ID,
		Name: s.Name,
		Icon: s.Icon,
	}
}

// SportTag is a brief representation of a sport for embedding in other responses.
type SportTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
