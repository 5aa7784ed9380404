package http

import (
	"time"

	"github.com/courtsidehq/venue-booking-backend/internal/pkg/request"
	"github.com/courtsidehq/venue-booking-backend/internal/review"
	userHttp "github.com/courtsidehq/venue-booking-backend/internal/user/http"
)

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"omitempty,max=1000"`
}

type ListReviewsRequest struct {
	request.ListParams
}

type ReviewResponse struct {
	ID        string           `json:"id"`
	VenueID   string           `json:"venue_id"`
	User      userHttp.UserTag `json:"user"`
	Rating    int              `json:"rating"`
	Comment   string           `json:"comment,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

func NewReviewResponse(r *review.Review) ReviewResponse {
	return ReviewResponse{
		ID:      r.ID,
		VenueID: r.VenueID,
		User: userHttp.UserTag{
			ID:   r.UserID,
			Name: r.UserName,
		},
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}
