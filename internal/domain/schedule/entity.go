package schedule

import "time"

type Schedule struct {
	id        int64
	weekStart time.Time
	weekEnd   time.Time
	isActive  bool
	createdAt time.Time
}

// NewWeeklySchedule builds the active schedule for the week containing now.
func NewWeeklySchedule(now time.Time) *Schedule {
	start, end := WeekBounds(now)
	return &Schedule{
		weekStart: start,
		weekEnd:   end,
		isActive:  true,
		createdAt: now.UTC(),
	}
}

func ReconstructSchedule(id int64, weekStart, weekEnd time.Time, isActive bool, createdAt time.Time) *Schedule {
	return &Schedule{
		id:        id,
		weekStart: weekStart,
		weekEnd:   weekEnd,
		isActive:  isActive,
		createdAt: createdAt,
	}
}

func (s *Schedule) ID() int64            { return s.id }
func (s *Schedule) WeekStart() time.Time { return s.weekStart }
func (s *Schedule) WeekEnd() time.Time   { return s.weekEnd }
func (s *Schedule) IsActive() bool       { return s.isActive }
func (s *Schedule) CreatedAt() time.Time { return s.createdAt }

// Covers reports whether now falls inside [WeekStart, WeekEnd].
func (s *Schedule) Covers(now time.Time) bool {
	return !now.Before(s.weekStart) && !now.After(s.weekEnd)
}

type Slot struct {
	id         int64
	scheduleID int64
	date       time.Time
	day        Weekday
	start      Clock
	end        Clock
	isReserved bool
	version    int32
}

func ReconstructSlot(id, scheduleID int64, date time.Time, day Weekday, start, end Clock, isReserved bool, version int32) *Slot {
	return &Slot{
		id:         id,
		scheduleID: scheduleID,
		date:       date,
		day:        day,
		start:      start,
		end:        end,
		isReserved: isReserved,
		version:    version,
	}
}

func (s *Slot) ID() int64         { return s.id }
func (s *Slot) ScheduleID() int64 { return s.scheduleID }
func (s *Slot) Date() time.Time   { return s.date }
func (s *Slot) Day() Weekday      { return s.day }
func (s *Slot) Start() Clock      { return s.start }
func (s *Slot) End() Clock        { return s.end }
func (s *Slot) IsReserved() bool  { return s.isReserved }
func (s *Slot) Version() int32    { return s.version }

func (s *Slot) StartsAt() time.Time { return s.date.Add(s.start.Duration()) }

// Label renders the slot as "09:00-10:00".
func (s *Slot) Label() string { return s.start.String() + "-" + s.end.String() }
