package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courtsidehq/venue-booking-backend/internal/auth"
	"github.com/courtsidehq/venue-booking-backend/internal/dashboard"
	"github.com/courtsidehq/venue-booking-backend/internal/user"
)

type Handler struct {
	service dashboard.Service
}

func NewHandler(service dashboard.Service) *Handler {
	return &Handler{service: service}
}

// Stats returns the dashboard block for the caller's role.
func (h *Handler) Stats(c *gin.Context) {
	role := user.Role(auth.GetUserRole(c))

	stats, err := h.service.StatsFor(c.Request.Context(), auth.GetUserID(c), role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"role": string(role), "stats": stats})
}

// RegisterRoutes registers the dashboard route.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	g.GET("/dashboard/stats", authMiddleware, h.Stats)
}
