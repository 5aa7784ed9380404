package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers court routes. Court listing and creation are
// nested under the owning venue; direct access is by court ID.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	// === Public Routes ===
	g.GET("/venues/:id/courts", h.ListByVenue)
	g.GET("/courts/:id", h.Get)

	// === Authenticated Routes ===
	g.POST("/venues/:id/courts", authMiddleware, h.Create)
	g.PATCH("/courts/:id", authMiddleware, h.Update)
}
