package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courtsidehq/venue-booking-backend/internal/sport"
)

type Handler struct {
	service sport.Service
}

func NewHandler(service sport.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	sports, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sports"})
		return
	}

	items := make([]SportResponse, len(sports))
	for i, s := range sports {
		items[i] = NewSportResponse(s)
	}

	c.JSON(http.StatusOK, gin.H{"sports": items})
}
