package commands

import (
	"context"
	"log/slog"
	"time"

	"doglivebot/internal/domain/booking"
	"doglivebot/internal/domain/schedule"
	"doglivebot/internal/infra"
	"doglivebot/internal/pkg/clock"
	"doglivebot/internal/pkg/errs"
	"doglivebot/internal/pkg/metrics"
	"doglivebot/internal/usecase/shared"
)

var (
	ErrSlotUnavailable  = errs.New("slot unavailable")
	ErrNoActiveSchedule = errs.New("no active schedule")
)

type ReservationCommands interface {
	// TryReserveSlot books the slot for the dog. It never returns an error:
	// any failure rolls back and reports false.
	TryReserveSlot(ctx context.Context, userID, dogID int64, day schedule.Weekday, slotID int64) bool
}

type reservationUseCaseImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	publisher EventPublisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	clk clock.Clock,
	publisher EventPublisher,
	m *metrics.Metrics,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:       uow,
		clock:     clk,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
}

func (uc *reservationUseCaseImpl) TryReserveSlot(ctx context.Context, userID, dogID int64, day schedule.Weekday, slotID int64) bool {
	log := uc.logger.With("user_id", userID, "dog_id", dogID, "day", day, "slot_id", slotID)

	if !day.Valid() || slotID <= 0 || dogID <= 0 {
		log.Warn("reservation rejected: incomplete booking payload")
		uc.metrics.ObserveReservation(metrics.ReservationUnavailable)
		return false
	}

	var created *booking.Booking
	var bookingID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		active, err := tx.Schedules().FindActive(ctx, tx.DB())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrNoActiveSchedule)
			}
			return err
		}

		slot, err := tx.Slots().FindForUpdate(ctx, tx.DB(), active.ID(), day, slotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrSlotUnavailable)
			}
			return err
		}
		if slot.IsReserved() {
			return ErrSlotUnavailable
		}
		if now := uc.clock.Now(); !slot.StartsAt().After(now) {
			return errs.Wrapf(ErrSlotUnavailable, "slot started at %s", slot.StartsAt().Format(time.RFC3339))
		}

		ok, err := tx.Slots().MarkReserved(ctx, tx.DB(), slot.ID(), slot.Version())
		if err != nil {
			return err
		}
		if !ok {
			return ErrSlotUnavailable
		}

		b, err := booking.NewConfirmed(userID, dogID, slot.ID(), uc.clock.Now())
		if err != nil {
			return err
		}
		id, err := tx.Bookings().Create(ctx, tx.DB(), b)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrSlotUnavailable)
			}
			return err
		}

		created, bookingID = b, id
		return nil
	})
	if err != nil {
		uc.metrics.ObserveReservation(metrics.ReservationUnavailable)
		if errs.Is(err, ErrSlotUnavailable) || errs.Is(err, ErrNoActiveSchedule) {
			log.Info("slot could not be reserved", "reason", err.Error())
		} else {
			log.Error("reservation transaction failed", "error", err)
		}
		return false
	}

	uc.metrics.ObserveReservation(metrics.ReservationReserved)
	log.Info("slot reserved", "booking_id", bookingID)

	publish(ctx, uc.logger, uc.publisher, EventBookingReserved, BookingReservedEvent{
		BookingID: bookingID,
		UserID:    created.UserID(),
		DogID:     created.DogID(),
		SlotID:    created.SlotID(),
		Day:       day,
		BookedAt:  created.BookedAt(),
	})
	return true
}
