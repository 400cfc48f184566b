package repository

import (
	"context"

	"doglivebot/internal/domain/schedule"
	"doglivebot/internal/infra"
	"doglivebot/internal/infra/db"
	"doglivebot/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var slotColumns = []string{"schedule_id", "slot_date", "day_of_week", "start_time", "end_time", "is_reserved", "version"}

const (
	findSlotForUpdateSQL = `
SELECT id, schedule_id, slot_date, day_of_week, start_time, end_time, is_reserved, version
FROM available_slots
WHERE schedule_id = $1 AND day_of_week = $2 AND id = $3
FOR UPDATE`

	markSlotReservedSQL = `
UPDATE available_slots
SET is_reserved = true, version = version + 1
WHERE id = $1 AND NOT is_reserved AND version = $2`
)

type SlotRepository struct{}

func NewSlotRepository() *SlotRepository {
	return &SlotRepository{}
}

func (r *SlotRepository) CreateBatch(ctx context.Context, tx db.DBTX, scheduleID int64, drafts []schedule.SlotDraft) (int64, error) {
	n, err := tx.CopyFrom(ctx, pgx.Identifier{"available_slots"}, slotColumns,
		pgx.CopyFromSlice(len(drafts), func(i int) ([]any, error) {
			d := drafts[i]
			return []any{
				scheduleID,
				pgconv.DateToPgtype(d.Date),
				int16(d.Day),
				pgconv.ClockToPgtype(d.Start.Duration()),
				pgconv.ClockToPgtype(d.End.Duration()),
				false,
				int32(0),
			}, nil
		}),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert slots", err)
	}
	return n, nil
}

func (r *SlotRepository) FindForUpdate(ctx context.Context, tx db.DBTX, scheduleID int64, day schedule.Weekday, slotID int64) (*schedule.Slot, error) {
	return scanSlot(tx.QueryRow(ctx, findSlotForUpdateSQL, scheduleID, int16(day), slotID))
}

func (r *SlotRepository) MarkReserved(ctx context.Context, tx db.DBTX, slotID int64, version int32) (bool, error) {
	tag, err := tx.Exec(ctx, markSlotReservedSQL, slotID, version)
	if err != nil {
		return false, infra.WrapRepoErr("failed to reserve slot", err)
	}
	return tag.RowsAffected() == 1, nil
}

func scanSlot(row rowScanner) (*schedule.Slot, error) {
	var (
		id, scheduleID int64
		date           pgtype.Date
		day            int16
		start, end     pgtype.Time
		isReserved     bool
		version        int32
	)
	if err := row.Scan(&id, &scheduleID, &date, &day, &start, &end, &isReserved, &version); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan slot", err)
	}
	return schedule.ReconstructSlot(
		id,
		scheduleID,
		pgconv.DateFromPgtype(date),
		schedule.Weekday(day),
		schedule.Clock(pgconv.ClockFromPgtype(start)),
		schedule.Clock(pgconv.ClockFromPgtype(end)),
		isReserved,
		version,
	), nil
}
