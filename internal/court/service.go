package court

import (
	"context"
	"errors"
	"strings"

	"github.com/courtsidehq/venue-booking-backend/internal/sport"
	"github.com/courtsidehq/venue-booking-backend/internal/venue"
)

type CreateRequest struct {
	VenueID      string
	SportID      string
	Name         string
	PricePerHour float64
}

type UpdateRequest struct {
	Name         *string
	PricePerHour *float64
	Status       *string
	SportID      *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest, creatorUserID string, isAdmin bool) (*Court, error)
	GetByID(ctx context.Context, id string) (*Court, error)
	ListByVenue(ctx context.Context, venueID string, onlyActive bool) ([]*Court, error)
	Update(ctx context.Context, id string, req UpdateRequest, updaterUserID string, isAdmin bool) (*Court, error)
}

type service struct {
	repo         Repository
	venueService venue.Service
	sportService sport.Service
}

func NewService(repo Repository, venueService venue.Service, sportService sport.Service) Service {
	return &service{
		repo:         repo,
		venueService: venueService,
		sportService: sportService,
	}
}

// ownsVenue checks the caller may manage courts under the venue.
func (s *service) ownsVenue(ctx context.Context, venueID, userID string, isAdmin bool) error {
	v, err := s.venueService.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, venue.ErrNotFound) {
			return ErrInvalidVenue
		}
		return err
	}
	if !isAdmin && v.OwnerID != userID {
		return ErrPermissionDenied
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest, creatorUserID string, isAdmin bool) (*Court, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.PricePerHour < 0 {
		return nil, ErrInvalidPrice
	}

	if err := s.ownsVenue(ctx, req.VenueID, creatorUserID, isAdmin); err != nil {
		return nil, err
	}

	if _, err := s.sportService.GetByID(ctx, req.SportID); err != nil {
		if errors.Is(err, sport.ErrNotFound) {
			return nil, ErrInvalidSport
		}
		return nil, err
	}

	c := &Court{
		VenueID:      req.VenueID,
		SportID:      req.SportID,
		Name:         strings.TrimSpace(req.Name),
		PricePerHour: req.PricePerHour,
		Status:       StatusActive,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Court, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByVenue(ctx context.Context, venueID string, onlyActive bool) ([]*Court, error) {
	return s.repo.List(ctx, Filter{VenueID: venueID, OnlyActive: onlyActive})
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, updaterUserID string, isAdmin bool) (*Court, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.ownsVenue(ctx, c.VenueID, updaterUserID, isAdmin); err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		c.Name = strings.TrimSpace(*req.Name)
	}
	if req.PricePerHour != nil {
		if *req.PricePerHour < 0 {
			return nil, ErrInvalidPrice
		}
		c.PricePerHour = *req.PricePerHour
	}
	if req.Status != nil {
		st := Status(*req.Status)
		if !ValidStatus(st) {
			return nil, ErrInvalidStatus
		}
		c.Status = st
	}
	if req.SportID != nil {
		if _, err := s.sportService.GetByID(ctx, *req.SportID); err != nil {
			if errors.Is(err, sport.ErrNotFound) {
				return nil, ErrInvalidSport
			}
			return nil, err
		}
		c.SportID = *req.SportID
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
