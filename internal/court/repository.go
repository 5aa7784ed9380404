package court

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, c *Court) error
	GetByID(ctx context.Context, id string) (*Court, error)
	List(ctx context.Context, filter Filter) ([]*Court, error)
	Update(ctx context.Context, c *Court) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, c *Court) error {
	const query = `
		INSERT INTO public.courts (venue_id, sport_id, name, price_per_hour, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query, c.VenueID, c.SportID, c.Name, c.PricePerHour, c.Status).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("create court failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Court, error) {
	const query = `
		SELECT c.id, c.venue_id, c.sport_id, c.name, c.price_per_hour, c.status, c.created_at,
		       s.name, v.name
		FROM public.courts c
		JOIN public.sports s ON c.sport_id = s.id
		JOIN public.venues v ON c.venue_id = v.id
		WHERE c.id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var c Court
	if err := row.Scan(
		&c.ID, &c.VenueID, &c.SportID, &c.Name, &c.PricePerHour, &c.Status, &c.CreatedAt,
		&c.SportName, &c.VenueName,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get court failed: %w", err)
	}
	return &c, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Court, error) {
	queryBase := `
		SELECT c.id, c.venue_id, c.sport_id, c.name, c.price_per_hour, c.status, c.created_at,
		       s.name, v.name
		FROM public.courts c
		JOIN public.sports s ON c.sport_id = s.id
		JOIN public.venues v ON c.venue_id = v.id
		WHERE 1=1
	`
	var args []interface{}

	if filter.VenueID != "" {
		args = append(args, filter.VenueID)
		queryBase += fmt.Sprintf(" AND c.venue_id = $%d", len(args))
	}
	if filter.SportID != "" {
		args = append(args, filter.SportID)
		queryBase += fmt.Sprintf(" AND c.sport_id = $%d", len(args))
	}
	if filter.OnlyActive {
		args = append(args, StatusActive)
		queryBase += fmt.Sprintf(" AND c.status = $%d", len(args))
	}

	queryBase += " ORDER BY c.name ASC"

	rows, err := r.pool.Query(ctx, queryBase, args...)
	if err != nil {
		return nil, fmt.Errorf("list courts failed: %w", err)
	}
	defer rows.Close()

	var courts []*Court
	for rows.Next() {
		var c Court
		if err := rows.Scan(
			&c.ID, &c.VenueID, &c.SportID, &c.Name, &c.PricePerHour, &c.Status, &c.CreatedAt,
			&c.SportName, &c.VenueName,
		); err != nil {
			return nil, fmt.Errorf("scan court failed: %w", err)
		}
		courts = append(courts, &c)
	}

	return courts, rows.Err()
}

func (r *pgxRepository) Update(ctx context.Context, c *Court) error {
	const query = `
		UPDATE public.courts
		SET name = $1, price_per_hour = $2, status = $3, sport_id = $4
		WHERE id = $5
	`
	ct, err := r.pool.Exec(ctx, query, c.Name, c.PricePerHour, c.Status, c.SportID, c.ID)
	if err != nil {
		return fmt.Errorf("update court failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
