package shared

import (
	"context"
	"time"

	"doglivebot/internal/domain/booking"
	"doglivebot/internal/domain/navigation"
	"doglivebot/internal/domain/schedule"
	"doglivebot/internal/domain/user"
	"doglivebot/internal/infra/db"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Schedules() ScheduleRepository
	Slots() SlotRepository
	Bookings() BookingRepository
	Users() UserRepository
	Dogs() DogRepository
	Conversations() ConversationRepository
	DB() db.DBTX
}

type ScheduleRepository interface {
	// LockRollover serializes rollovers until the surrounding transaction ends.
	LockRollover(ctx context.Context, tx db.DBTX) error
	FindActive(ctx context.Context, tx db.DBTX) (*schedule.Schedule, error)
	DeactivateAll(ctx context.Context, tx db.DBTX) (int64, error)
	Create(ctx context.Context, tx db.DBTX, s *schedule.Schedule) (int64, error)
}

type SlotRepository interface {
	CreateBatch(ctx context.Context, tx db.DBTX, scheduleID int64, drafts []schedule.SlotDraft) (int64, error)
	// FindForUpdate row-locks the slot identified by schedule, day and id.
	FindForUpdate(ctx context.Context, tx db.DBTX, scheduleID int64, day schedule.Weekday, slotID int64) (*schedule.Slot, error)
	// MarkReserved flips is_reserved only if the slot is still free at the given version.
	MarkReserved(ctx context.Context, tx db.DBTX, slotID int64, version int32) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (int64, error)
}

type UserRepository interface {
	Upsert(ctx context.Context, tx db.DBTX, u *user.User) error
}

type DogRepository interface {
	Create(ctx context.Context, tx db.DBTX, d *user.Dog) (int64, error)
}

type ConversationRepository interface {
	Upsert(ctx context.Context, tx db.DBTX, userID int64, cmd navigation.Command, at time.Time) error
	Find(ctx context.Context, tx db.DBTX, userID int64) (*navigation.Record, error)
}
