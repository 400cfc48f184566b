//go:build unit || e2e

package builder

import (
	"time"

	"doglivebot/internal/domain/schedule"
	"doglivebot/internal/usecase/queries"
)

type SlotBuilder struct {
	ID         int64
	ScheduleID int64
	Date       time.Time
	Day        schedule.Weekday
	Start      schedule.Clock
	End        schedule.Clock
	IsReserved bool
}

// NewSlotBuilder defaults to Thursday 2026-10-22 10:00-11:00.
func NewSlotBuilder() *SlotBuilder {
	return &SlotBuilder{
		ID:         42,
		ScheduleID: 1,
		Date:       time.Date(2026, 10, 22, 0, 0, 0, 0, time.UTC),
		Day:        schedule.Thursday,
		Start:      schedule.NewClock(10, 0),
		End:        schedule.NewClock(11, 0),
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

func (b *SlotBuilder) BuildView() *queries.SlotView {
	return &queries.SlotView{
		ID:         b.ID,
		ScheduleID: b.ScheduleID,
		Date:       b.Date,
		Day:        b.Day,
		Start:      b.Start,
		End:        b.End,
		IsReserved: b.IsReserved,
	}
}

func Dogs(names ...string) []*queries.DogView {
	out := make([]*queries.DogView, 0, len(names))
	for i, n := range names {
		out = append(out, &queries.DogView{ID: int64(i + 1), Name: n})
	}
	return out
}

type WeekBuilder struct {
	ScheduleID    int64
	WeekStart     time.Time
	TotalSlots    int
	ReservedSlots int
	CreatedAt     time.Time
}

func NewWeekBuilder() *WeekBuilder {
	start := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	return &WeekBuilder{
		ScheduleID: 1,
		WeekStart:  start,
		TotalSlots: 84,
		CreatedAt:  start,
	}
}

func (b *WeekBuilder) With(mutate func(*WeekBuilder)) *WeekBuilder {
	mutate(b)
	return b
}

func (b *WeekBuilder) BuildView() *queries.WeekView {
	return &queries.WeekView{
		ScheduleID:    b.ScheduleID,
		WeekStart:     b.WeekStart,
		WeekEnd:       b.WeekStart.AddDate(0, 0, 7).Add(-time.Second),
		TotalSlots:    b.TotalSlots,
		ReservedSlots: b.ReservedSlots,
		CreatedAt:     b.CreatedAt,
	}
}
