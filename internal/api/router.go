package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/courtsidehq/venue-booking-backend/internal/auth"
	bookingHttp "github.com/courtsidehq/venue-booking-backend/internal/booking/http"
	courtHttp "github.com/courtsidehq/venue-booking-backend/internal/court/http"
	dashboardHttp "github.com/courtsidehq/venue-booking-backend/internal/dashboard/http"
	photoHttp "github.com/courtsidehq/venue-booking-backend/internal/photo/http"
	reviewHttp "github.com/courtsidehq/venue-booking-backend/internal/review/http"
	sportHttp "github.com/courtsidehq/venue-booking-backend/internal/sport/http"
	userHttp "github.com/courtsidehq/venue-booking-backend/internal/user/http"
	venueHttp "github.com/courtsidehq/venue-booking-backend/internal/venue/http"
)

// Config collects everything the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  []string

	JWTManager *auth.JWTManager

	AuthHandler      *AuthHandler
	UserHandler      *userHttp.Handler
	SportHandler     *sportHttp.Handler
	VenueHandler     *venueHttp.Handler
	CourtHandler     *courtHttp.Handler
	BookingHandler   *bookingHttp.Handler
	ReviewHandler    *reviewHttp.Handler
	PhotoHandler     *photoHttp.Handler
	DashboardHandler *dashboardHttp.Handler
}

// NewRouter builds the gin engine with all routes mounted under /v1.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = cfg.ProdOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	corsConfig.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	adminMiddleware := RequireAdmin()

	v1 := r.Group("/v1")
	{
		v1.POST("/auth/register", cfg.AuthHandler.Register)
		v1.POST("/auth/login", cfg.AuthHandler.Login)

		userHttp.RegisterRoutes(v1, cfg.UserHandler, authMiddleware)
		sportHttp.RegisterRoutes(v1, cfg.SportHandler)
		venueHttp.RegisterRoutes(v1, cfg.VenueHandler, authMiddleware, adminMiddleware)
		courtHttp.RegisterRoutes(v1, cfg.CourtHandler, authMiddleware)
		bookingHttp.RegisterRoutes(v1, cfg.BookingHandler, authMiddleware)
		reviewHttp.RegisterRoutes(v1, cfg.ReviewHandler, authMiddleware)
		photoHttp.RegisterRoutes(v1, cfg.PhotoHandler, authMiddleware)
		dashboardHttp.RegisterRoutes(v1, cfg.DashboardHandler, authMiddleware)
	}

	return r
}
