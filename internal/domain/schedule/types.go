package schedule

import "doglivebot/internal/pkg/errs"

const DaysPerWeek = 7

var (
	ErrInvalidHours   = errs.New("invalid class hours configuration")
	ErrInvalidWeekday = errs.New("invalid day of week")
	ErrInvalidWeek    = errs.New("week must start on a Monday at midnight UTC")
)
