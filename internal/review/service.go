package review

import (
	"context"
	"strings"

	"github.com/courtsidehq/venue-booking-backend/internal/venue"
)

type CreateRequest struct {
	VenueID string
	UserID  string
	Rating  int
	Comment string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Review, error)
	ListByVenue(ctx context.Context, venueID string, page, pageSize int) ([]*Review, int, error)
	Delete(ctx context.Context, id, callerUserID string, isAdmin bool) error
}

type service struct {
	repo         Repository
	venueService venue.Service
}

func NewService(repo Repository, venueService venue.Service) Service {
	return &service{repo: repo, venueService: venueService}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := s.venueService.GetByID(ctx, req.VenueID); err != nil {
		return nil, ErrInvalidVenue
	}

	rv := &Review{
		VenueID: req.VenueID,
		UserID:  req.UserID,
		Rating:  req.Rating,
		Comment: strings.TrimSpace(req.Comment),
	}
	if err := s.repo.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *service) ListByVenue(ctx context.Context, venueID string, page, pageSize int) ([]*Review, int, error) {
	return s.repo.ListByVenue(ctx, venueID, page, pageSize)
}

func (s *service) Delete(ctx context.Context, id, callerUserID string, isAdmin bool) error {
	rv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && rv.UserID != callerUserID {
		return ErrAccessDenied
	}
	return s.repo.Delete(ctx, id)
}
