package queries

import (
	"context"
	"time"

	"doglivebot/internal/pkg/clock"
)

type AccountReadStore interface {
	UserExists(ctx context.Context, userID int64) (bool, error)
	DogsByUser(ctx context.Context, userID int64) ([]*DogView, error)
	BookingsByUser(ctx context.Context, userID int64, since time.Time) ([]*BookingView, error)
}

type AccountQueries interface {
	IsRegistered(ctx context.Context, userID int64) (bool, error)
	ListDogs(ctx context.Context, userID int64) ([]*DogView, error)
	// ListBookings returns bookings for today onwards.
	ListBookings(ctx context.Context, userID int64) ([]*BookingView, error)
}

type accountQueriesImpl struct {
	store AccountReadStore
	clock clock.Clock
}

func NewAccountQueries(store AccountReadStore, clk clock.Clock) AccountQueries {
	return &accountQueriesImpl{store: store, clock: clk}
}

func (q *accountQueriesImpl) IsRegistered(ctx context.Context, userID int64) (bool, error) {
	return q.store.UserExists(ctx, userID)
}

func (q *accountQueriesImpl) ListDogs(ctx context.Context, userID int64) ([]*DogView, error) {
	return q.store.DogsByUser(ctx, userID)
}

func (q *accountQueriesImpl) ListBookings(ctx context.Context, userID int64) ([]*BookingView, error) {
	return q.store.BookingsByUser(ctx, userID, q.clock.Now().Truncate(24*time.Hour))
}
