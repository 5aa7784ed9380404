package http

import (
	"time"

	"github.com/courtsidehq/venue-booking-backend/internal/booking"
	courtHttp "github.com/courtsidehq/venue-booking-backend/internal/court/http"
	"github.com/courtsidehq/venue-booking-backend/internal/pkg/request"
	userHttp "github.com/courtsidehq/venue-booking-backend/internal/user/http"
	venueHttp "github.com/courtsidehq/venue-booking-backend/internal/venue/http"
)

type CreateBookingRequest struct {
	VenueID    string  `json:"venue_id" binding:"required,uuid"`
	CourtID    string  `json:"court_id" binding:"required,uuid"`
	Date       string  `json:"date" binding:"required,len=10"`
	StartTime  string  `json:"start_time" binding:"required,len=5"`
	EndTime    string  `json:"end_time" binding:"required,len=5"`
	Duration   int     `json:"duration" binding:"required,min=1,max=8"`
	TotalPrice float64 `json:"total_price" binding:"gte=0"`
	Notes      *string `json:"notes" binding:"omitempty,max=500"`
}

type ListBookingsRequest struct {
	request.ListParams
	Status string `form:"status" binding:"omitempty,oneof=CONFIRMED CANCELLED COMPLETED"`
	UserID string `form:"user_id" binding:"omitempty,uuid"`
}

type AvailabilityRequest struct {
	Date string `form:"date" binding:"required,len=10"`
}

type BookingResponse struct {
	ID          string              `json:"id"`
	User        userHttp.UserTag    `json:"user"`
	Venue       venueHttp.VenueTag  `json:"venue"`
	Court       courtHttp.CourtTag  `json:"court"`
	Date        string              `json:"date"`
	StartTime   string              `json:"start_time"`
	EndTime     string              `json:"end_time"`
	Duration    int                 `json:"duration"`
	TotalPrice  float64             `json:"total_price"`
	Status      string              `json:"status"`
	Notes       *string             `json:"notes,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	CancelledAt *time.Time          `json:"cancelled_at,omitempty"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID: b.ID,
		User: userHttp.UserTag{
			ID:   b.UserID,
			Name: b.UserName,
		},
		Venue: venueHttp.VenueTag{
			ID:      b.VenueID,
			Name:    b.VenueName,
			Address: b.VenueAddress,
			City:    b.VenueCity,
		},
		Court: courtHttp.CourtTag{
			ID:   b.CourtID,
			Name: b.CourtName,
		},
		Date:        b.Date,
		StartTime:   b.StartTime.String(),
		EndTime:     b.EndTime.String(),
		Duration:    b.DurationHours,
		TotalPrice:  b.TotalPrice,
		Status:      string(b.EffectiveStatus(time.Now())),
		Notes:       b.Notes,
		CreatedAt:   b.CreatedAt,
		CancelledAt: b.CancelledAt,
	}
}

type SlotResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
