package readstore

import (
	"context"
	"time"

	"doglivebot/internal/domain/schedule"
	"doglivebot/internal/infra"
	"doglivebot/internal/infra/db"
	"doglivebot/internal/pkg/pgconv"
	"doglivebot/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	userExistsSQL = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`

	dogsByUserSQL = `
SELECT id, name
FROM dogs
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY id`

	bookingsByUserSQL = `
SELECT b.id, d.name, s.slot_date, s.day_of_week, s.start_time, s.end_time, b.status, b.booked_at
FROM bookings b
JOIN dogs d ON d.id = b.dog_id
JOIN available_slots s ON s.id = b.slot_id
WHERE b.user_id = $1 AND s.slot_date >= $2 AND b.status <> 'cancelled'
ORDER BY s.slot_date, s.start_time`
)

type AccountReadStore struct {
	db db.DBTX
}

func NewAccountReadStore(db db.DBTX) *AccountReadStore {
	return &AccountReadStore{db: db}
}

func (r *AccountReadStore) UserExists(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, userExistsSQL, userID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check user", err)
	}
	return exists, nil
}

func (r *AccountReadStore) DogsByUser(ctx context.Context, userID int64) ([]*queries.DogView, error) {
	rows, err := r.db.Query(ctx, dogsByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list dogs", err)
	}
	dogs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.DogView, error) {
		var v queries.DogView
		err := row.Scan(&v.ID, &v.Name)
		return &v, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan dogs", err)
	}
	return dogs, nil
}

func (r *AccountReadStore) BookingsByUser(ctx context.Context, userID int64, since time.Time) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, bookingsByUserSQL, userID, pgconv.DateToPgtype(since))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	bookings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.BookingView, error) {
		var (
			v          queries.BookingView
			date       pgtype.Date
			day        int16
			start, end pgtype.Time
			bookedAt   pgtype.Timestamptz
		)
		if err := row.Scan(&v.ID, &v.DogName, &date, &day, &start, &end, &v.Status, &bookedAt); err != nil {
			return nil, err
		}
		v.Date = pgconv.DateFromPgtype(date)
		v.Day = schedule.Weekday(day)
		v.Start = schedule.Clock(pgconv.ClockFromPgtype(start))
		v.End = schedule.Clock(pgconv.ClockFromPgtype(end))
		v.BookedAt = pgconv.TimeFromPgtype(bookedAt)
		return &v, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan bookings", err)
	}
	return bookings, nil
}
