package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers photo routes. Listing and serving are public so
// venue pages can render images without a session.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	// === Public Routes ===
	g.GET("/venues/:id/photos", h.ListByVenue)
	g.GET("/photos/:id", h.Serve)

	// === Authenticated Routes ===
	g.POST("/venues/:id/photos", authMiddleware, h.Upload)
	g.DELETE("/photos/:id", authMiddleware, h.Delete)
}
