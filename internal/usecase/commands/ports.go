package commands

import (
	"context"
	"log/slog"
	"time"

	"doglivebot/internal/domain/schedule"
)

const publishTimeout = 5 * time.Second

// EventPublisher delivers integration events after a transaction commits.
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

const (
	EventBookingReserved    = "booking.reserved"
	EventScheduleRolledOver = "schedule.rolled_over"
)

type BookingReservedEvent struct {
	BookingID int64            `json:"booking_id"`
	UserID    int64            `json:"user_id"`
	DogID     int64            `json:"dog_id"`
	SlotID    int64            `json:"slot_id"`
	Day       schedule.Weekday `json:"day"`
	BookedAt  time.Time        `json:"booked_at"`
}

type ScheduleRolledOverEvent struct {
	ScheduleID int64     `json:"schedule_id"`
	WeekStart  time.Time `json:"week_start"`
	WeekEnd    time.Time `json:"week_end"`
	SlotCount  int64     `json:"slot_count"`
}

// publish is best effort: a lost event never undoes a committed change.
func publish(ctx context.Context, logger *slog.Logger, p EventPublisher, key string, v any) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := p.PublishJSON(ctx, key, v); err != nil {
		logger.Warn("failed to publish event", "key", key, "error", err)
	}
}
