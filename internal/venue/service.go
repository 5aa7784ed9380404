package venue

import (
	"context"
	"strings"
)

type CreateRequest struct {
	OwnerID     string
	Name        string
	Description string
	Address     string
	City        string
	Phone       *string
	OpeningTime string
	ClosingTime string
}

type UpdateRequest struct {
	Name        *string
	Description *string
	Address     *string
	City        *string
	Phone       *string
	OpeningTime *string
	ClosingTime *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Venue, error)
	GetByID(ctx context.Context, id string) (*Venue, error)
	List(ctx context.Context, filter Filter) ([]*Venue, int, error)
	Update(ctx context.Context, id string, req UpdateRequest, updaterUserID string, isAdmin bool) (*Venue, error)
	SetStatus(ctx context.Context, id string, status Status) (*Venue, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Venue, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if !validClock(req.OpeningTime) || !validClock(req.ClosingTime) || req.OpeningTime >= req.ClosingTime {
		return nil, ErrInvalidHours
	}

	v := &Venue{
		OwnerID:     req.OwnerID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		Phone:       req.Phone,
		Status:      StatusPending, // Listings go live after admin approval
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Venue, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Venue, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, updaterUserID string, isAdmin bool) (*Venue, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isAdmin && v.OwnerID != updaterUserID {
		return nil, ErrPermissionDenied
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		v.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		v.Description = *req.Description
	}
	if req.Address != nil {
		v.Address = *req.Address
	}
	if req.City != nil {
		v.City = *req.City
	}
	if req.Phone != nil {
		v.Phone = req.Phone
	}

	openingTime := v.OpeningTime
	closingTime := v.ClosingTime
	if req.OpeningTime != nil {
		openingTime = *req.OpeningTime
	}
	if req.ClosingTime != nil {
		closingTime = *req.ClosingTime
	}
	if req.OpeningTime != nil || req.ClosingTime != nil {
		if !validClock(openingTime) || !validClock(closingTime) || openingTime >= closingTime {
			return nil, ErrInvalidHours
		}
		v.OpeningTime = openingTime
		v.ClosingTime = closingTime
	}

	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) SetStatus(ctx context.Context, id string, status Status) (*Venue, error) {
	if status != StatusPending && status != StatusApproved && status != StatusRejected {
		return nil, ErrInvalidStatus
	}

	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	v.Status = status
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// validClock reports whether s is a zero-padded 24-hour "HH:MM" string.
// Lexicographic comparison of two valid clock strings matches time order.
func validClock(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	hh := int(s[0]-'0')*10 + int(s[1]-'0')
	mm := int(s[3]-'0')*10 + int(s[4]-'0')
	return hh <= 23 && mm <= 59
}
