package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers review routes nested under the reviewed venue.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	// === Public Routes ===
	g.GET("/venues/:id/reviews", h.ListByVenue)

	// === Authenticated Routes ===
	g.POST("/venues/:id/reviews", authMiddleware, h.Create)
	g.DELETE("/reviews/:id", authMiddleware, h.Delete)
}
