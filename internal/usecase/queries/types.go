package queries

import (
	"time"

	"doglivebot/internal/domain/schedule"
)

type SlotView struct {
	ID         int64
	ScheduleID int64
	Date       time.Time
	Day        schedule.Weekday
	Start      schedule.Clock
	End        schedule.Clock
	IsReserved bool
}

// Label renders the slot as "09:00-10:00".
func (v *SlotView) Label() string { return v.Start.String() + "-" + v.End.String() }

type WeekView struct {
	ScheduleID    int64
	WeekStart     time.Time
	WeekEnd       time.Time
	TotalSlots    int
	ReservedSlots int
	CreatedAt     time.Time
}

type DogView struct {
	ID   int64
	Name string
}

type BookingView struct {
	ID       int64
	DogName  string
	Date     time.Time
	Day      schedule.Weekday
	Start    schedule.Clock
	End      schedule.Clock
	Status   string
	BookedAt time.Time
}
