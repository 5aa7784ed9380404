package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// CreateIfFree atomically checks that no active booking on the same
	// court and date overlaps [b.StartTime, b.EndTime) and inserts b.
	// Of any two concurrent calls with overlapping intervals, at most one
	// succeeds; the loser gets ErrSlotUnavailable.
	CreateIfFree(ctx context.Context, b *Booking) error

	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)

	// ListActiveForDay returns the CONFIRMED/COMPLETED bookings of a court
	// on a date, ordered by start time.
	ListActiveForDay(ctx context.Context, courtID, date string) ([]*Booking, error)

	// MarkCancelled flips a CONFIRMED booking to CANCELLED. If the booking
	// is no longer CONFIRMED (raced with another cancel) it returns
	// ErrCannotCancel.
	MarkCancelled(ctx context.Context, id string, at time.Time) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const bookingColumns = `
	b.id, b.user_id, b.venue_id, b.court_id, b.date::text,
	b.start_minute, b.end_minute, b.duration_hours, b.total_price,
	b.status, b.notes, b.created_at, b.cancelled_at,
	u.name, v.name, v.address, v.city, c.name
`

const bookingJoins = `
	FROM public.bookings b
	JOIN public.users u ON b.user_id = u.id
	JOIN public.venues v ON b.venue_id = v.id
	JOIN public.courts c ON b.court_id = c.id
`

func scanBooking(row pgx.Row, extra ...any) (*Booking, error) {
	var b Booking
	dest := []any{
		&b.ID, &b.UserID, &b.VenueID, &b.CourtID, &b.Date,
		&b.StartTime, &b.EndTime, &b.DurationHours, &b.TotalPrice,
		&b.Status, &b.Notes, &b.CreatedAt, &b.CancelledAt,
		&b.UserName, &b.VenueName, &b.VenueAddress, &b.VenueCity, &b.CourtName,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *pgxRepository) CreateIfFree(ctx context.Context, b *Booking) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	// Serialize concurrent creates on the same (court, date). The advisory
	// lock is released automatically at commit or rollback, so the conflict
	// check below cannot interleave with another create for this key.
	if _, err := tx.Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtext($1 || ':' || $2))`,
		b.CourtID, b.Date,
	); err != nil {
		return fmt.Errorf("acquire slot lock failed: %w", err)
	}

	// Canonical overlap rule: two half-open intervals conflict iff
	// newStart < existingEnd AND existingStart < newEnd.
	var conflict bool
	if err := tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM public.bookings
			WHERE court_id = $1
			  AND date = $2::date
			  AND status IN ('CONFIRMED', 'COMPLETED')
			  AND start_minute < $4
			  AND end_minute > $3
		)`,
		b.CourtID, b.Date, b.StartTime.Minutes(), b.EndTime.Minutes(),
	).Scan(&conflict); err != nil {
		return fmt.Errorf("check slot conflict failed: %w", err)
	}
	if conflict {
		return ErrSlotUnavailable
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns(
			"user_id", "venue_id", "court_id", "date",
			"start_minute", "end_minute", "duration_hours", "total_price",
			"status", "notes",
		).
		Values(
			b.UserID, b.VenueID, b.CourtID, b.Date,
			b.StartTime.Minutes(), b.EndTime.Minutes(), b.DurationHours, b.TotalPrice,
			b.Status, b.Notes,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt); err != nil {
		// Backstop: the bookings table carries an exclusion constraint over
		// (court_id, date, [start_minute, end_minute)) for active rows, so a
		// write that somehow bypasses the lock still cannot double-book.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
			return ErrSlotUnavailable
		}
		return fmt.Errorf("create booking failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking tx failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query := `SELECT` + bookingColumns + bookingJoins + `WHERE b.id = $1`

	b, err := scanBooking(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"b.id", "b.user_id", "b.venue_id", "b.court_id", "b.date::text",
		"b.start_minute", "b.end_minute", "b.duration_hours", "b.total_price",
		"b.status", "b.notes", "b.created_at", "b.cancelled_at",
		"u.name", "v.name", "v.address", "v.city", "c.name",
		"count(*) OVER() AS total_count",
	).
		From("public.bookings b").
		Join("public.users u ON b.user_id = u.id").
		Join("public.venues v ON b.venue_id = v.id").
		Join("public.courts c ON b.court_id = c.id")

	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"b.user_id": filter.UserID})
	}
	if filter.VenueID != "" {
		query = query.Where(squirrel.Eq{"b.venue_id": filter.VenueID})
	}
	if filter.CourtID != "" {
		query = query.Where(squirrel.Eq{"b.court_id": filter.CourtID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}

	query = query.OrderBy("b.created_at DESC")

	// Pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		b, err := scanBooking(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, total, rows.Err()
}

func (r *pgxRepository) ListActiveForDay(ctx context.Context, courtID, date string) ([]*Booking, error) {
	query := `SELECT` + bookingColumns + bookingJoins + `
		WHERE b.court_id = $1
		  AND b.date = $2::date
		  AND b.status IN ('CONFIRMED', 'COMPLETED')
		ORDER BY b.start_minute ASC
	`

	rows, err := r.pool.Query(ctx, query, courtID, date)
	if err != nil {
		return nil, fmt.Errorf("list day bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

func (r *pgxRepository) MarkCancelled(ctx context.Context, id string, at time.Time) error {
	const query = `
		UPDATE public.bookings
		SET status = 'CANCELLED', cancelled_at = $1
		WHERE id = $2 AND status = 'CONFIRMED'
	`

	ct, err := r.pool.Exec(ctx, query, at, id)
	if err != nil {
		return fmt.Errorf("cancel booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		// Either the row is gone or its status changed under us.
		return ErrCannotCancel
	}
	return nil
}
