package repository

import (
	"context"

	"doglivebot/internal/domain/booking"
	"doglivebot/internal/infra"
	"doglivebot/internal/infra/db"
	"doglivebot/internal/pkg/pgconv"
)

const createBookingSQL = `
INSERT INTO bookings (user_id, dog_id, slot_id, status, booked_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, createBookingSQL,
		b.UserID(), b.DogID(), b.SlotID(), string(b.Status()), pgconv.TimeToPgtype(b.BookedAt()),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}
