package booking

import "time"

type Booking struct {
	id       int64
	userID   int64
	dogID    int64
	slotID   int64
	status   Status
	bookedAt time.Time
}

// NewConfirmed returns a booking for a slot that has just been reserved.
func NewConfirmed(userID, dogID, slotID int64, now time.Time) (*Booking, error) {
	if userID == 0 || dogID == 0 || slotID == 0 {
		return nil, ErrInvalidBooking
	}
	return &Booking{
		userID:   userID,
		dogID:    dogID,
		slotID:   slotID,
		status:   StatusConfirmed,
		bookedAt: now.UTC(),
	}, nil
}

func Reconstruct(id, userID, dogID, slotID int64, status Status, bookedAt time.Time) (*Booking, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return &Booking{
		id:       id,
		userID:   userID,
		dogID:    dogID,
		slotID:   slotID,
		status:   status,
		bookedAt: bookedAt,
	}, nil
}

func (b *Booking) ID() int64           { return b.id }
func (b *Booking) UserID() int64       { return b.userID }
func (b *Booking) DogID() int64        { return b.dogID }
func (b *Booking) SlotID() int64       { return b.slotID }
func (b *Booking) Status() Status      { return b.status }
func (b *Booking) BookedAt() time.Time { return b.bookedAt }
