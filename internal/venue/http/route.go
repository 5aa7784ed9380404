package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers venue routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/venues")

	// === Public Routes ===
	group.GET("", h.List)
	group.GET("/:id", h.Get)

	// === Authenticated Routes ===
	group.GET("/mine", authMiddleware, h.ListMine)
	group.POST("", authMiddleware, h.Create)
	group.PATCH("/:id", authMiddleware, h.Update)

	// === Admin Routes ===
	group.PATCH("/:id/status", authMiddleware, adminMiddleware, h.SetStatus)
}
