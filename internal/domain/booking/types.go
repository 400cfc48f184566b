package booking

import "doglivebot/internal/pkg/errs"

type Status string

const (
	StatusAwaiting  Status = "awaiting"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAwaiting, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

var (
	ErrInvalidStatus  = errs.New("invalid booking status")
	ErrInvalidBooking = errs.New("booking requires user, dog and slot")
)
