package dashboard

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	CustomerStats(ctx context.Context, userID string) (*CustomerStats, error)
	OwnerStats(ctx context.Context, ownerID string) (*OwnerStats, error)
	AdminStats(ctx context.Context) (*AdminStats, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) CustomerStats(ctx context.Context, userID string) (*CustomerStats, error) {
	// Spend counts only non-cancelled bookings; upcoming means a CONFIRMED
	// booking on a future day.
	const query = `
		SELECT
			count(*),
			count(*) FILTER (WHERE status = 'CONFIRMED' AND date >= current_date),
			count(*) FILTER (WHERE status = 'CANCELLED'),
			COALESCE(sum(total_price) FILTER (WHERE status <> 'CANCELLED'), 0)
		FROM public.bookings
		WHERE user_id = $1
	`

	var s CustomerStats
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&s.TotalBookings, &s.UpcomingBookings, &s.CancelledCount, &s.TotalSpent,
	)
	if err != nil {
		return nil, fmt.Errorf("customer stats failed: %w", err)
	}
	return &s, nil
}

func (r *pgxRepository) OwnerStats(ctx context.Context, ownerID string) (*OwnerStats, error) {
	const query = `
		SELECT
			(SELECT count(*) FROM public.venues WHERE owner_id = $1),
			(SELECT count(*) FROM public.courts c
				JOIN public.venues v ON c.venue_id = v.id
				WHERE v.owner_id = $1),
			(SELECT count(*) FROM public.bookings b
				JOIN public.venues v ON b.venue_id = v.id
				WHERE v.owner_id = $1),
			(SELECT COALESCE(sum(b.total_price), 0) FROM public.bookings b
				JOIN public.venues v ON b.venue_id = v.id
				WHERE v.owner_id = $1 AND b.status <> 'CANCELLED')
	`

	var s OwnerStats
	err := r.pool.QueryRow(ctx, query, ownerID).Scan(
		&s.VenueCount, &s.CourtCount, &s.TotalBookings, &s.TotalRevenue,
	)
	if err != nil {
		return nil, fmt.Errorf("owner stats failed: %w", err)
	}
	return &s, nil
}

func (r *pgxRepository) AdminStats(ctx context.Context) (*AdminStats, error) {
	const query = `
		SELECT
			(SELECT count(*) FROM public.users),
			(SELECT count(*) FROM public.venues),
			(SELECT count(*) FROM public.venues WHERE status = 'PENDING'),
			(SELECT count(*) FROM public.bookings),
			(SELECT COALESCE(sum(total_price), 0) FROM public.bookings
				WHERE status <> 'CANCELLED')
	`

	var s AdminStats
	err := r.pool.QueryRow(ctx, query).Scan(
		&s.TotalUsers, &s.TotalVenues, &s.PendingVenues, &s.TotalBookings, &s.TotalRevenue,
	)
	if err != nil {
		return nil, fmt.Errorf("admin stats failed: %w", err)
	}
	return &s, nil
}
