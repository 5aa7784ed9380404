package venue

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, v *Venue) error
	GetByID(ctx context.Context, id string) (*Venue, error)
	List(ctx context.Context, filter Filter) ([]*Venue, int, error)
	Update(ctx context.Context, v *Venue) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// Derived columns computed per venue. Rating and prices come from the
// reviews and courts tables so listings stay consistent without a
// denormalized counter to maintain.
const derivedColumns = `
	COALESCE((SELECT avg(rating) FROM public.reviews rv WHERE rv.venue_id = v.id), 0) AS rating,
	COALESCE((SELECT count(*) FROM public.reviews rv WHERE rv.venue_id = v.id), 0) AS review_count,
	COALESCE((SELECT count(*) FROM public.courts c WHERE c.venue_id = v.id AND c.status = 'ACTIVE'), 0) AS court_count,
	COALESCE((SELECT min(price_per_hour) FROM public.courts c WHERE c.venue_id = v.id AND c.status = 'ACTIVE'), 0) AS min_price,
	COALESCE((SELECT max(price_per_hour) FROM public.courts c WHERE c.venue_id = v.id AND c.status = 'ACTIVE'), 0) AS max_price
`

func (r *pgxRepository) Create(ctx context.Context, v *Venue) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.venues").
		Columns(
			"owner_id", "name", "description", "address", "city", "phone",
			"status", "opening_time", "closing_time",
		).
		Values(
			v.OwnerID, v.Name, v.Description, v.Address, v.City, v.Phone,
			v.Status, v.OpeningTime, v.ClosingTime,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create venue query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&v.ID, &v.CreatedAt); err != nil {
		return fmt.Errorf("create venue failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Venue, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"v.id", "v.owner_id", "v.name", "v.description", "v.address", "v.city",
		"v.phone", "v.status", "v.opening_time", "v.closing_time", "v.created_at",
		derivedColumns,
	).
		From("public.venues v").
		Where(squirrel.Eq{"v.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get venue query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var v Venue
	if err := row.Scan(
		&v.ID, &v.OwnerID, &v.Name, &v.Description, &v.Address, &v.City,
		&v.Phone, &v.Status, &v.OpeningTime, &v.ClosingTime, &v.CreatedAt,
		&v.Rating, &v.ReviewCount, &v.CourtCount, &v.MinPrice, &v.MaxPrice,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get venue failed: %w", err)
	}
	return &v, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Venue, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"v.id", "v.owner_id", "v.name", "v.description", "v.address", "v.city",
		"v.phone", "v.status", "v.opening_time", "v.closing_time", "v.created_at",
		derivedColumns,
		"count(*) OVER() AS total_count",
	).
		From("public.venues v")

	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"v.status": filter.Status})
	}
	if filter.OwnerID != "" {
		query = query.Where(squirrel.Eq{"v.owner_id": filter.OwnerID})
	}
	if filter.City != "" {
		query = query.Where(squirrel.ILike{"v.city": "%" + filter.City + "%"})
	}
	if filter.SportID != "" {
		query = query.Where(
			"EXISTS (SELECT 1 FROM public.courts c WHERE c.venue_id = v.id AND c.sport_id = ? AND c.status = 'ACTIVE')",
			filter.SportID,
		)
	}
	if filter.MinPrice != nil {
		query = query.Where(
			"EXISTS (SELECT 1 FROM public.courts c WHERE c.venue_id = v.id AND c.status = 'ACTIVE' AND c.price_per_hour >= ?)",
			*filter.MinPrice,
		)
	}
	if filter.MaxPrice != nil {
		query = query.Where(
			"EXISTS (SELECT 1 FROM public.courts c WHERE c.venue_id = v.id AND c.status = 'ACTIVE' AND c.price_per_hour <= ?)",
			*filter.MaxPrice,
		)
	}

	query = query.OrderBy("rating DESC, v.created_at DESC")

	// Pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list venues query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list venues failed: %w", err)
	}
	defer rows.Close()

	var venues []*Venue
	var total int

	for rows.Next() {
		var v Venue
		if err := rows.Scan(
			&v.ID, &v.OwnerID, &v.Name, &v.Description, &v.Address, &v.City,
			&v.Phone, &v.Status, &v.OpeningTime, &v.ClosingTime, &v.CreatedAt,
			&v.Rating, &v.ReviewCount, &v.CourtCount, &v.MinPrice, &v.MaxPrice,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan venue failed: %w", err)
		}
		venues = append(venues, &v)
	}

	return venues, total, rows.Err()
}

func (r *pgxRepository) Update(ctx context.Context, v *Venue) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.venues").
		Set("name", v.Name).
		Set("description", v.Description).
		Set("address", v.Address).
		Set("city", v.City).
		Set("phone", v.Phone).
		Set("status", v.Status).
		Set("opening_time", v.OpeningTime).
		Set("closing_time", v.ClosingTime).
		Where(squirrel.Eq{"id": v.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update venue query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update venue failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
