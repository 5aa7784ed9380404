package booking

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"github.com/courtsidehq/venue-booking-backend/internal/court"
	"github.com/courtsidehq/venue-booking-backend/internal/venue"
)

// EventPublisher emits domain events for downstream consumers. A nil
// publisher disables events.
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

type CreateRequest struct {
	UserID        string
	VenueID       string
	CourtID       string
	Date          string
	StartTime     string
	EndTime       string
	DurationHours int
	TotalPrice    float64
	Notes         *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	Cancel(ctx context.Context, id, callerUserID string) (*Booking, error)
	GetByID(ctx context.Context, id, callerUserID string, isAdmin bool) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	DayAvailability(ctx context.Context, courtID, date string) ([]TimeSlot, error)
}

type service struct {
	repo         Repository
	courtService court.Service
	venueService venue.Service
	publisher    EventPublisher
	cancelCutoff time.Duration
	now          func() time.Time
}

func NewService(
	repo Repository,
	courtService court.Service,
	venueService venue.Service,
	publisher EventPublisher,
	cancelCutoff time.Duration,
) Service {
	return &service{
		repo:         repo,
		courtService: courtService,
		venueService: venueService,
		publisher:    publisher,
		cancelCutoff: cancelCutoff,
		now:          time.Now,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if _, err := time.Parse(DateLayout, req.Date); err != nil {
		return nil, ErrInvalidDate
	}

	start, err := ParseTimeOfDay(req.StartTime)
	if err != nil {
		return nil, ErrInvalidTime
	}
	end, err := ParseTimeOfDay(req.EndTime)
	if err != nil {
		return nil, ErrInvalidTime
	}
	if start >= end {
		return nil, ErrInvalidTimeRange
	}
	if req.DurationHours < 1 || req.DurationHours > 8 {
		return nil, ErrInvalidDuration
	}
	if req.TotalPrice < 0 {
		return nil, ErrInvalidPrice
	}

	c, err := s.courtService.GetByID(ctx, req.CourtID)
	if err != nil {
		// Only a missing court is a business rejection; anything else is
		// an infrastructure failure and must keep its cause.
		if errors.Is(err, court.ErrNotFound) {
			return nil, ErrCourtUnavailable
		}
		return nil, err
	}
	if !c.Bookable() || c.VenueID != req.VenueID {
		return nil, ErrCourtUnavailable
	}

	// The client computes the total, but it must agree with the court's
	// hourly rate.
	if math.Abs(req.TotalPrice-c.PricePerHour*float64(req.DurationHours)) > 0.01 {
		return nil, ErrInvalidPrice
	}

	b := &Booking{
		UserID:        req.UserID,
		VenueID:       req.VenueID,
		CourtID:       req.CourtID,
		Date:          req.Date,
		StartTime:     start,
		EndTime:       end,
		DurationHours: req.DurationHours,
		TotalPrice:    req.TotalPrice,
		Status:        StatusConfirmed,
		Notes:         req.Notes,
	}

	if err := s.repo.CreateIfFree(ctx, b); err != nil {
		return nil, err
	}

	b.CourtName = c.Name
	b.VenueName = c.VenueName

	s.publish(ctx, "booking.created", b)
	return b, nil
}

func (s *service) Cancel(ctx context.Context, id, callerUserID string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.UserID != callerUserID {
		return nil, ErrAccessDenied
	}
	if b.Status != StatusConfirmed {
		return nil, ErrCannotCancel
	}

	now := s.now()
	if s.cancelCutoff > 0 {
		startsAt, err := b.StartsAt(time.Local)
		if err != nil {
			return nil, ErrInvalidDate
		}
		if now.After(startsAt.Add(-s.cancelCutoff)) {
			return nil, ErrCancelWindowClosed
		}
	}

	if err := s.repo.MarkCancelled(ctx, id, now); err != nil {
		return nil, err
	}

	b.Status = StatusCancelled
	b.CancelledAt = &now

	s.publish(ctx, "booking.cancelled", b)
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id, callerUserID string, isAdmin bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && b.UserID != callerUserID {
		return nil, ErrAccessDenied
	}
	return b, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) DayAvailability(ctx context.Context, courtID, date string) ([]TimeSlot, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}

	c, err := s.courtService.GetByID(ctx, courtID)
	if err != nil {
		if errors.Is(err, court.ErrNotFound) {
			return nil, ErrCourtUnavailable
		}
		return nil, err
	}

	v, err := s.venueService.GetByID(ctx, c.VenueID)
	if err != nil {
		if errors.Is(err, venue.ErrNotFound) {
			return nil, ErrCourtUnavailable
		}
		return nil, err
	}

	open, err := ParseTimeOfDay(v.OpeningTime)
	if err != nil {
		return nil, ErrInvalidTime
	}
	close, err := ParseTimeOfDay(v.ClosingTime)
	if err != nil {
		return nil, ErrInvalidTime
	}

	bookings, err := s.repo.ListActiveForDay(ctx, courtID, date)
	if err != nil {
		return nil, err
	}

	return FreeSlots(open, close, bookings), nil
}

func (s *service) publish(ctx context.Context, key string, b *Booking) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishJSON(ctx, key, b); err != nil {
		log.Printf("publish %s event failed: %v", key, err)
	}
}
