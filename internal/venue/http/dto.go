package http

import (
	"time"

	"github.com/courtsidehq/venue-booking-backend/internal/pkg/request"
	"github.com/courtsidehq/venue-booking-backend/internal/venue"
)

// ListVenuesRequest defines query parameters for the public venue listing.
type ListVenuesRequest struct {
	request.ListParams
	Sport    string   `form:"sport" binding:"omitempty,uuid"`
	City     string   `form:"city" binding:"omitempty,max=100"`
	MinPrice *float64 `form:"min_price" binding:"omitempty,min=0"`
	MaxPrice *float64 `form:"max_price" binding:"omitempty,min=0"`
}

type VenueResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Phone       *string   `json:"phone,omitempty"`
	Status      string    `json:"status"`
	OpeningTime string    `json:"opening_time"`
	ClosingTime string    `json:"closing_time"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"review_count"`
	CourtCount  int       `json:"court_count"`
	MinPrice    float64   `json:"min_price"`
	MaxPrice    float64   `json:"max_price"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewVenueResponse(v *venue.Venue) VenueResponse {
	return VenueResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Address:     v.Address,
		City:        v.City,
		Phone:       v.Phone,
		Status:      string(v.Status),
		OpeningTime: v.OpeningTime,
		ClosingTime: v.ClosingTime,
		Rating:      v.Rating,
		ReviewCount: v.ReviewCount,
		CourtCount:  v.CourtCount,
		MinPrice:    v.MinPrice,
		MaxPrice:    v.MaxPrice,
		CreatedAt:   v.CreatedAt,
	}
}

// VenueTag is a brief representation of a venue for embedding in other responses.
type VenueTag struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
}

type CreateVenueRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=200"`
	Description string  `json:"description" binding:"omitempty,max=2000"`
	Address     string  `json:"address" binding:"required,max=300"`
	City        string  `json:"city" binding:"required,max=100"`
	Phone       *string `json:"phone" binding:"omitempty,max=30"`
	OpeningTime string  `json:"opening_time" binding:"required,len=5"`
	ClosingTime string  `json:"closing_time" binding:"required,len=5"`
}

type UpdateVenueRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Address     *string `json:"address" binding:"omitempty,max=300"`
	City        *string `json:"city" binding:"omitempty,max=100"`
	Phone       *string `json:"phone" binding:"omitempty,max=30"`
	OpeningTime *string `json:"opening_time" binding:"omitempty,len=5"`
	ClosingTime *string `json:"closing_time" binding:"omitempty,len=5"`
}

type SetVenueStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING APPROVED REJECTED"`
}
