package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, r *Review) error
	GetByID(ctx context.Context, id string) (*Review, error)
	ListByVenue(ctx context.Context, venueID string, page, pageSize int) ([]*Review, int, error)
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, rv *Review) error {
	const query = `
		INSERT INTO public.reviews (venue_id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query, rv.VenueID, rv.UserID, rv.Rating, rv.Comment).
		Scan(&rv.ID, &rv.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			// One review per user per venue.
			if pgErr.Code == pgerrcode.UniqueViolation {
				return ErrAlreadyReviewed
			}
			if pgErr.Code == pgerrcode.ForeignKeyViolation {
				return ErrInvalidVenue
			}
		}
		return fmt.Errorf("create review failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Review, error) {
	const query = `
		SELECT r.id, r.venue_id, r.user_id, r.rating, r.comment, r.created_at, u.name
		FROM public.reviews r
		JOIN public.users u ON r.user_id = u.id
		WHERE r.id = $1
	`

	var rv Review
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rv.ID, &rv.VenueID, &rv.UserID, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UserName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get review failed: %w", err)
	}
	return &rv, nil
}

func (r *pgxRepository) ListByVenue(ctx context.Context, venueID string, page, pageSize int) ([]*Review, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select(
		"r.id", "r.venue_id", "r.user_id", "r.rating", "r.comment", "r.created_at", "u.name",
		"count(*) OVER() AS total_count",
	).
		From("public.reviews r").
		Join("public.users u ON r.user_id = u.id").
		Where(squirrel.Eq{"r.venue_id": venueID}).
		OrderBy("r.created_at DESC").
		Limit(uint64(pageSize)).
		Offset(uint64((page - 1) * pageSize)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list reviews query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reviews failed: %w", err)
	}
	defer rows.Close()

	var reviews []*Review
	var total int

	for rows.Next() {
		var rv Review
		if err := rows.Scan(
			&rv.ID, &rv.VenueID, &rv.UserID, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UserName,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan review failed: %w", err)
		}
		reviews = append(reviews, &rv)
	}

	return reviews, total, rows.Err()
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM public.reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete review failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
