package http

import (
	"time"

	"github.com/courtsidehq/venue-booking-backend/internal/user"
)

// UserResponse is the public representation of an account.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

// UserTag is a brief representation of a user for embedding in other responses.
type UserTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UpdateProfileRequest is the body for PATCH /users/me.
type UpdateProfileRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=100"`
	Phone *string `json:"phone" binding:"omitempty,max=30"`
}
