package repository

import (
	"context"

	"doglivebot/internal/domain/schedule"
	"doglivebot/internal/infra"
	"doglivebot/internal/infra/db"
	"doglivebot/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// rolloverLockKey namespaces the advisory lock taken by weekly rollovers.
const rolloverLockKey int64 = 0x646f676c697665 // "doglive"

const (
	lockRolloverSQL = `SELECT pg_advisory_xact_lock($1)`

	findActiveScheduleSQL = `
SELECT id, week_start, week_end, is_active, created_at
FROM schedules
WHERE is_active AND deleted_at IS NULL
ORDER BY id DESC
LIMIT 1`

	deactivateSchedulesSQL = `
UPDATE schedules
SET is_active = false
WHERE is_active AND deleted_at IS NULL`

	createScheduleSQL = `
INSERT INTO schedules (week_start, week_end, is_active, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id`
)

type ScheduleRepository struct{}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{}
}

func (r *ScheduleRepository) LockRollover(ctx context.Context, tx db.DBTX) error {
	if _, err := tx.Exec(ctx, lockRolloverSQL, rolloverLockKey); err != nil {
		return infra.WrapRepoErr("failed to acquire rollover lock", err)
	}
	return nil
}

func (r *ScheduleRepository) FindActive(ctx context.Context, tx db.DBTX) (*schedule.Schedule, error) {
	return scanSchedule(tx.QueryRow(ctx, findActiveScheduleSQL))
}

func (r *ScheduleRepository) DeactivateAll(ctx context.Context, tx db.DBTX) (int64, error) {
	tag, err := tx.Exec(ctx, deactivateSchedulesSQL)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to deactivate schedules", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ScheduleRepository) Create(ctx context.Context, tx db.DBTX, s *schedule.Schedule) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, createScheduleSQL,
		pgconv.DateToPgtype(s.WeekStart()),
		pgconv.TimeToPgtype(s.WeekEnd()),
		s.IsActive(),
		pgconv.TimeToPgtype(s.CreatedAt()),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create schedule", err)
	}
	return id, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSchedule(row rowScanner) (*schedule.Schedule, error) {
	var (
		id        int64
		weekStart pgtype.Date
		weekEnd   pgtype.Timestamptz
		isActive  bool
		createdAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &weekStart, &weekEnd, &isActive, &createdAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("active schedule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active schedule", err)
	}
	return schedule.ReconstructSchedule(
		id,
		pgconv.DateFromPgtype(weekStart),
		pgconv.TimeFromPgtype(weekEnd),
		isActive,
		pgconv.TimeFromPgtype(createdAt),
	), nil
}
