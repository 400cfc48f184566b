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
	activeWeekSQL = `
SELECT sc.id, sc.week_start, sc.week_end, sc.created_at,
       count(s.id), count(s.id) FILTER (WHERE s.is_reserved)
FROM schedules sc
LEFT JOIN available_slots s ON s.schedule_id = sc.id
WHERE sc.is_active AND sc.deleted_at IS NULL
GROUP BY sc.id
ORDER BY sc.id DESC
LIMIT 1`

	// $1 = today's date, $2 = current time of day; slots that already started are excluded.
	availableDaysSQL = `
SELECT DISTINCT s.day_of_week
FROM available_slots s
JOIN schedules sc ON sc.id = s.schedule_id
WHERE sc.is_active AND sc.deleted_at IS NULL
  AND NOT s.is_reserved
  AND (s.slot_date > $1 OR (s.slot_date = $1 AND s.start_time > $2))
ORDER BY s.day_of_week`

	freeSlotsSQL = `
SELECT s.id, s.schedule_id, s.slot_date, s.day_of_week, s.start_time, s.end_time, s.is_reserved
FROM available_slots s
JOIN schedules sc ON sc.id = s.schedule_id
WHERE sc.is_active AND sc.deleted_at IS NULL
  AND s.day_of_week = $3
  AND NOT s.is_reserved
  AND (s.slot_date > $1 OR (s.slot_date = $1 AND s.start_time > $2))
ORDER BY s.start_time`

	// Slots that already started are treated as missing so stale buttons restart the flow.
	findSlotSQL = `
SELECT s.id, s.schedule_id, s.slot_date, s.day_of_week, s.start_time, s.end_time, s.is_reserved
FROM available_slots s
JOIN schedules sc ON sc.id = s.schedule_id
WHERE sc.is_active AND sc.deleted_at IS NULL
  AND s.day_of_week = $1
  AND s.id = $2
  AND (s.slot_date > $3 OR (s.slot_date = $3 AND s.start_time > $4))`
)

type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(db db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: db}
}

func (r *AvailabilityReadStore) ActiveWeek(ctx context.Context) (*queries.WeekView, error) {
	var (
		v                   queries.WeekView
		weekStart           pgtype.Date
		weekEnd, createdAt  pgtype.Timestamptz
		total, reservedSlot int64
	)
	err := r.db.QueryRow(ctx, activeWeekSQL).Scan(&v.ScheduleID, &weekStart, &weekEnd, &createdAt, &total, &reservedSlot)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("active schedule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load active schedule", err)
	}
	v.WeekStart = pgconv.DateFromPgtype(weekStart)
	v.WeekEnd = pgconv.TimeFromPgtype(weekEnd)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.TotalSlots = int(total)
	v.ReservedSlots = int(reservedSlot)
	return &v, nil
}

func (r *AvailabilityReadStore) AvailableDays(ctx context.Context, now time.Time) ([]schedule.Weekday, error) {
	today, clock := splitNow(now)
	rows, err := r.db.Query(ctx, availableDaysSQL, today, clock)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available days", err)
	}
	days, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (schedule.Weekday, error) {
		var d int16
		err := row.Scan(&d)
		return schedule.Weekday(d), err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan available days", err)
	}
	return days, nil
}

func (r *AvailabilityReadStore) FreeSlots(ctx context.Context, day schedule.Weekday, now time.Time) ([]*queries.SlotView, error) {
	today, clock := splitNow(now)
	rows, err := r.db.Query(ctx, freeSlotsSQL, today, clock, int16(day))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list free slots", err)
	}
	slots, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.SlotView, error) {
		return scanSlotView(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan free slots", err)
	}
	return slots, nil
}

func (r *AvailabilityReadStore) FindSlot(ctx context.Context, day schedule.Weekday, slotID int64, now time.Time) (*queries.SlotView, error) {
	today, clock := splitNow(now)
	v, err := scanSlotView(r.db.QueryRow(ctx, findSlotSQL, int16(day), slotID, today, clock))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot", err)
	}
	return v, nil
}

func scanSlotView(row pgx.Row) (*queries.SlotView, error) {
	var (
		v          queries.SlotView
		date       pgtype.Date
		day        int16
		start, end pgtype.Time
	)
	if err := row.Scan(&v.ID, &v.ScheduleID, &date, &day, &start, &end, &v.IsReserved); err != nil {
		return nil, err
	}
	v.Date = pgconv.DateFromPgtype(date)
	v.Day = schedule.Weekday(day)
	v.Start = schedule.Clock(pgconv.ClockFromPgtype(start))
	v.End = schedule.Clock(pgconv.ClockFromPgtype(end))
	return &v, nil
}

func splitNow(now time.Time) (pgtype.Date, pgtype.Time) {
	now = now.UTC()
	midnight := now.Truncate(24 * time.Hour)
	return pgconv.DateToPgtype(midnight), pgconv.ClockToPgtype(now.Sub(midnight))
}
