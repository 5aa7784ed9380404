package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers user profile routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/users")

	// === Authenticated Routes ===
	group.Use(authMiddleware)
	{
		group.GET("/me", h.Me)
		group.PATCH("/me", h.UpdateMe)
	}
}
