package schedule

import (
	"fmt"
	"time"
)

// Weekday is an ISO-8601 day of week: Monday = 1 … Sunday = 7.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

func NewWeekday(v int) (Weekday, error) {
	d := Weekday(v)
	if !d.Valid() {
		return 0, ErrInvalidWeekday
	}
	return d, nil
}

func WeekdayOf(t time.Time) Weekday {
	wd := t.Weekday()
	if wd == time.Sunday {
		return Sunday
	}
	return Weekday(wd)
}

func (d Weekday) Valid() bool { return d >= Monday && d <= Sunday }

func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// Clock is a wall-clock time of day, stored as an offset from midnight.
type Clock time.Duration

func NewClock(hour, minute int) Clock {
	return Clock(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func (c Clock) Duration() time.Duration { return time.Duration(c) }

func (c Clock) String() string {
	d := time.Duration(c)
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}

// Hours describes one day of classes: slots of Interval length from DayStart to DayEnd.
type Hours struct {
	DayStart time.Duration
	DayEnd   time.Duration
	Interval time.Duration
}

func (h Hours) Validate() error {
	switch {
	case h.Interval <= 0:
		return ErrInvalidHours
	case h.DayStart < 0 || h.DayEnd > 24*time.Hour:
		return ErrInvalidHours
	case h.DayStart >= h.DayEnd:
		return ErrInvalidHours
	}
	return nil
}

// SlotsPerDay is the number of whole intervals that fit in the day.
func (h Hours) SlotsPerDay() int {
	if h.Validate() != nil {
		return 0
	}
	return int((h.DayEnd - h.DayStart) / h.Interval)
}
