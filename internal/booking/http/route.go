package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers booking routes. Availability is public so
// customers can browse before signing in; everything else requires auth.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	// === Public Routes ===
	g.GET("/courts/:id/availability", h.Availability)

	// === Authenticated Routes ===
	bookings := g.Group("/bookings", authMiddleware)
	bookings.GET("", h.List)
	bookings.POST("", h.Create)
	bookings.GET("/:id", h.Get)
	bookings.PATCH("/:id/cancel", h.Cancel)
	bookings.GET("/:id/receipt", h.Receipt)
}
