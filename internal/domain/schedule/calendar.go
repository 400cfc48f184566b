package schedule

import "time"

// SlotDraft is a generated slot that has not been persisted yet.
type SlotDraft struct {
	Date  time.Time
	Day   Weekday
	Start Clock
	End   Clock
}

// WeekBounds returns Monday 00:00:00 and Sunday 23:59:59 UTC of the week containing now.
func WeekBounds(now time.Time) (start, end time.Time) {
	now = now.UTC()
	y, m, d := now.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	start = midnight.AddDate(0, 0, -int(WeekdayOf(now)-Monday))
	end = start.AddDate(0, 0, DaysPerWeek).Add(-time.Second)
	return start, end
}

// GenerateWeek emits every slot for the seven days from weekStart. A trailing
// interval that would run past DayEnd is not emitted.
func GenerateWeek(weekStart time.Time, hours Hours) ([]SlotDraft, error) {
	if err := hours.Validate(); err != nil {
		return nil, err
	}
	weekStart = weekStart.UTC()
	if WeekdayOf(weekStart) != Monday || !weekStart.Equal(weekStart.Truncate(24*time.Hour)) {
		return nil, ErrInvalidWeek
	}

	drafts := make([]SlotDraft, 0, DaysPerWeek*hours.SlotsPerDay())
	for i := range DaysPerWeek {
		date := weekStart.AddDate(0, 0, i)
		day := WeekdayOf(date)
		for start := hours.DayStart; start+hours.Interval <= hours.DayEnd; start += hours.Interval {
			drafts = append(drafts, SlotDraft{
				Date:  date,
				Day:   day,
				Start: Clock(start),
				End:   Clock(start + hours.Interval),
			})
		}
	}
	return drafts, nil
}
