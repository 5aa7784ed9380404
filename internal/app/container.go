// Package app wires repositories, services and handlers together.
package app

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/courtsidehq/venue-booking-backend/internal/api"
	"github.com/courtsidehq/venue-booking-backend/internal/auth"
	"github.com/courtsidehq/venue-booking-backend/internal/booking"
	bookingHttp "github.com/courtsidehq/venue-booking-backend/internal/booking/http"
	"github.com/courtsidehq/venue-booking-backend/internal/court"
	courtHttp "github.com/courtsidehq/venue-booking-backend/internal/court/http"
	"github.com/courtsidehq/venue-booking-backend/internal/dashboard"
	dashboardHttp "github.com/courtsidehq/venue-booking-backend/internal/dashboard/http"
	"github.com/courtsidehq/venue-booking-backend/internal/photo"
	photoHttp "github.com/courtsidehq/venue-booking-backend/internal/photo/http"
	"github.com/courtsidehq/venue-booking-backend/internal/pkg/storage"
	"github.com/courtsidehq/venue-booking-backend/internal/review"
	reviewHttp "github.com/courtsidehq/venue-booking-backend/internal/review/http"
	"github.com/courtsidehq/venue-booking-backend/internal/sport"
	sportHttp "github.com/courtsidehq/venue-booking-backend/internal/sport/http"
	"github.com/courtsidehq/venue-booking-backend/internal/user"
	userHttp "github.com/courtsidehq/venue-booking-backend/internal/user/http"
	"github.com/courtsidehq/venue-booking-backend/internal/venue"
	venueHttp "github.com/courtsidehq/venue-booking-backend/internal/venue/http"
)

// Config carries the external resources the container depends on.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	DBPool *pgxpool.Pool

	JWTSecret string
	JWTTTL    time.Duration

	BcryptCost int

	Storage storage.Storage

	// Publisher may be nil; booking events are then skipped.
	Publisher booking.EventPublisher

	CancelCutoff time.Duration
}

type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// New builds the full dependency graph.
func New(cfg Config) *Container {
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	hasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	images := storage.NewImageProcessor()

	// Repositories
	userRepo := user.NewPgxRepository(cfg.DBPool)
	sportRepo := sport.NewPgxRepository(cfg.DBPool)
	venueRepo := venue.NewPgxRepository(cfg.DBPool)
	courtRepo := court.NewPgxRepository(cfg.DBPool)
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	reviewRepo := review.NewPgxRepository(cfg.DBPool)
	photoRepo := photo.NewPgxRepository(cfg.DBPool)
	dashboardRepo := dashboard.NewPgxRepository(cfg.DBPool)

	// Services
	userService := user.NewService(userRepo, hasher)
	sportService := sport.NewService(sportRepo)
	venueService := venue.NewService(venueRepo)
	courtService := court.NewService(courtRepo, venueService, sportService)
	bookingService := booking.NewService(bookingRepo, courtService, venueService, cfg.Publisher, cfg.CancelCutoff)
	reviewService := review.NewService(reviewRepo, venueService)
	photoService := photo.NewService(photoRepo, venueService, cfg.Storage, images)
	dashboardService := dashboard.NewService(dashboardRepo)

	router := api.NewRouter(api.Config{
		IsProduction: cfg.IsProduction,
		ProdOrigins:  splitOrigins(cfg.ProdOrigins),
		JWTManager:   jwtManager,

		AuthHandler:      api.NewAuthHandler(userService, jwtManager),
		UserHandler:      userHttp.NewHandler(userService),
		SportHandler:     sportHttp.NewHandler(sportService),
		VenueHandler:     venueHttp.NewHandler(venueService),
		CourtHandler:     courtHttp.NewHandler(courtService),
		BookingHandler:   bookingHttp.NewHandler(bookingService),
		ReviewHandler:    reviewHttp.NewHandler(reviewService),
		PhotoHandler:     photoHttp.NewHandler(photoService),
		DashboardHandler: dashboardHttp.NewHandler(dashboardService),
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}
}

func splitOrigins(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
