package queries

import (
	"context"
	"time"

	"doglivebot/internal/domain/schedule"
	"doglivebot/internal/infra"
	"doglivebot/internal/pkg/clock"
	"doglivebot/internal/pkg/errs"
)

var (
	ErrNoActiveSchedule = errs.New("no active schedule")
	ErrSlotNotFound     = errs.New("slot not found in active schedule")
)

// AvailabilityReadStore only ever looks at the active schedule; with none, lists are empty.
type AvailabilityReadStore interface {
	ActiveWeek(ctx context.Context) (*WeekView, error)
	AvailableDays(ctx context.Context, now time.Time) ([]schedule.Weekday, error)
	FreeSlots(ctx context.Context, day schedule.Weekday, now time.Time) ([]*SlotView, error)
	FindSlot(ctx context.Context, day schedule.Weekday, slotID int64, now time.Time) (*SlotView, error)
}

type AvailabilityQueries interface {
	// AvailableDays lists days that still have a free slot starting after now.
	AvailableDays(ctx context.Context) ([]schedule.Weekday, error)
	FreeSlots(ctx context.Context, day schedule.Weekday) ([]*SlotView, error)
	// FindSlot returns the slot whether or not it is reserved. A slot that
	// already started is reported as ErrSlotNotFound.
	FindSlot(ctx context.Context, day schedule.Weekday, slotID int64) (*SlotView, error)
	CurrentWeek(ctx context.Context) (*WeekView, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
	clock clock.Clock
}

func NewAvailabilityQueries(store AvailabilityReadStore, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store, clock: clk}
}

func (q *availabilityQueriesImpl) AvailableDays(ctx context.Context) ([]schedule.Weekday, error) {
	days, err := q.store.AvailableDays(ctx, q.clock.Now())
	if err != nil {
		return nil, errs.Wrap(err, "list available days")
	}
	return days, nil
}

func (q *availabilityQueriesImpl) FreeSlots(ctx context.Context, day schedule.Weekday) ([]*SlotView, error) {
	if !day.Valid() {
		return nil, schedule.ErrInvalidWeekday
	}
	slots, err := q.store.FreeSlots(ctx, day, q.clock.Now())
	if err != nil {
		return nil, errs.Wrapf(err, "list free slots for %s", day)
	}
	return slots, nil
}

func (q *availabilityQueriesImpl) FindSlot(ctx context.Context, day schedule.Weekday, slotID int64) (*SlotView, error) {
	slot, err := q.store.FindSlot(ctx, day, slotID, q.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrSlotNotFound)
		}
		return nil, err
	}
	return slot, nil
}

func (q *availabilityQueriesImpl) CurrentWeek(ctx context.Context) (*WeekView, error) {
	week, err := q.store.ActiveWeek(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrNoActiveSchedule)
		}
		return nil, err
	}
	return week, nil
}
