package sport

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	List(ctx context.Context) ([]*Sport, error)
	GetByID(ctx context.Context, id string) (*Sport, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) List(ctx context.Context) ([]*Sport, error) {
	const query = `
		SELECT id, name, icon, created_at
		FROM public.sports
		ORDER BY name ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sports failed: %w", err)
	}
	defer rows.Close()

	var sports []*Sport
	for rows.Next() {
		var s Sport
		if err := rows.Scan(&s.ID, &s.Name, &s.Icon, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sport failed: %w", err)
		}
		sports = append(sports, &s)
	}

	return sports, rows.Err()
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Sport, error) {
	const query = `
		SELECT id, name, icon, created_at
		FROM public.sports
		WHERE id = $1
	`

	var s Sport
	if err := r.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.Icon, &s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get sport failed: %w", err)
	}
	return &s, nil
}
