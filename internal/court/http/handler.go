package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/courtsidehq/venue-booking-backend/internal/auth"
	"github.com/courtsidehq/venue-booking-backend/internal/court"
	"github.com/courtsidehq/venue-booking-backend/internal/user"
)

type Handler struct {
	service court.Service
}

func NewHandler(service court.Service) *Handler {
	return &Handler{service: service}
}

func writeCourtError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, court.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, court.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, court.ErrEmptyName),
		errors.Is(err, court.ErrInvalidPrice),
		errors.Is(err, court.ErrInvalidStatus),
		errors.Is(err, court.ErrInvalidVenue),
		errors.Is(err, court.ErrInvalidSport):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// ListByVenue returns the ACTIVE courts of a venue.
func (h *Handler) ListByVenue(c *gin.Context) {
	venueID := c.Param("id")
	if _, err := uuid.Parse(venueID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	courts, err := h.service.ListByVenue(c.Request.Context(), venueID, true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list courts"})
		return
	}

	items := make([]CourtResponse, len(courts))
	for i, crt := range courts {
		items[i] = NewCourtResponse(crt)
	}

	c.JSON(http.StatusOK, gin.H{"courts": items})
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	crt, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeCourtError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewCourtResponse(crt))
}

// Create adds a court under a venue. Owner or admin only.
func (h *Handler) Create(c *gin.Context) {
	venueID := c.Param("id")
	if _, err := uuid.Parse(venueID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body CreateCourtRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	isAdmin := auth.GetUserRole(c) == string(user.RoleAdmin)

	crt, err := h.service.Create(c.Request.Context(), court.CreateRequest{
		VenueID:      venueID,
		SportID:      body.SportID,
		Name:         body.Name,
		PricePerHour: body.PricePerHour,
	}, auth.GetUserID(c), isAdmin)
	if err != nil {
		writeCourtError(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewCourtResponse(crt))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateCourtRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	isAdmin := auth.GetUserRole(c) == string(user.RoleAdmin)

	crt, err := h.service.Update(c.Request.Context(), id, court.UpdateRequest{
		Name:         body.Name,
		PricePerHour: body.PricePerHour,
		Status:       body.Status,
		SportID:      body.SportID,
	}, auth.GetUserID(c), isAdmin)
	if err != nil {
		writeCourtError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewCourtResponse(crt))
}
