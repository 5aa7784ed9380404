package dashboard

import (
	"context"

	"github.com/courtsidehq/venue-booking-backend/internal/user"
)

type Service interface {
	// StatsFor returns the stats block matching the caller's role.
	StatsFor(ctx context.Context, userID string, role user.Role) (any, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) StatsFor(ctx context.Context, userID string, role user.Role) (any, error) {
	switch role {
	case user.RoleAdmin:
		return s.repo.AdminStats(ctx)
	case user.RoleFacilityOwner:
		return s.repo.OwnerStats(ctx, userID)
	default:
		return s.repo.CustomerStats(ctx, userID)
	}
}
