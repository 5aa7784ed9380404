package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers sport catalog routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/sports")

	// === Public Routes ===
	group.GET("", h.List)
}
