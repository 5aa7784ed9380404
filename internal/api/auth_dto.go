package api

import (
	userHttp "github.com/courtsidehq/venue-booking-backend/internal/user/http"
)

type RegisterRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8,max=72"`
	Name     string  `json:"name" binding:"required,min=1,max=100"`
	Phone    *string `json:"phone" binding:"omitempty,max=30"`
	Role     string  `json:"role" binding:"omitempty,oneof=CUSTOMER FACILITY_OWNER"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string                `json:"token"`
	User  userHttp.UserResponse `json:"user"`
}
