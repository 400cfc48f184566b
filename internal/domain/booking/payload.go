package booking

import "doglivebot/internal/domain/schedule"

// Payload accumulates a user's choices while booking. A zero field is unset.
type Payload struct {
	Day    schedule.Weekday
	SlotID int64
	DogID  int64
}

// Step is the booking state implied by which payload fields are set.
type Step int

const (
	StepRestart Step = iota
	StepSelectTime
	StepSelectDog
	StepReserve
)

func (s Step) String() string {
	switch s {
	case StepRestart:
		return "restart"
	case StepSelectTime:
		return "select_time"
	case StepSelectDog:
		return "select_dog"
	case StepReserve:
		return "reserve"
	}
	return "unknown"
}

// Step resolves fields in order day, slot, dog; a later field without the
// earlier ones does not advance the flow.
func (p Payload) Step() Step {
	switch {
	case !p.Day.Valid():
		return StepRestart
	case p.SlotID <= 0:
		return StepSelectTime
	case p.DogID <= 0:
		return StepSelectDog
	default:
		return StepReserve
	}
}
