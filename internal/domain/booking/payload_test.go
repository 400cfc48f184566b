//go:build unit

package booking_test

import (
	"testing"
	"time"

	"doglivebot/internal/domain/booking"
	"doglivebot/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayload_Step(t *testing.T) {
	cases := []struct {
		name    string
		payload booking.Payload
		want    booking.Step
	}{
		{name: "empty payload restarts", payload: booking.Payload{}, want: booking.StepRestart},
		{name: "day only selects time", payload: booking.Payload{Day: schedule.Tuesday}, want: booking.StepSelectTime},
		{name: "day and slot selects dog", payload: booking.Payload{Day: schedule.Tuesday, SlotID: 42}, want: booking.StepSelectDog},
		{name: "all fields reserve", payload: booking.Payload{Day: schedule.Tuesday, SlotID: 42, DogID: 7}, want: booking.StepReserve},
		{name: "slot without day restarts", payload: booking.Payload{SlotID: 42}, want: booking.StepRestart},
		{name: "out of range day restarts", payload: booking.Payload{Day: 9, SlotID: 42, DogID: 7}, want: booking.StepRestart},
		{name: "dog without slot selects time", payload: booking.Payload{Day: schedule.Friday, DogID: 7}, want: booking.StepSelectTime},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.payload.Step())
		})
	}
}

func TestNewConfirmed(t *testing.T) {
	now := time.Date(2024, time.January, 2, 9, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		b, err := booking.NewConfirmed(1, 2, 3, now)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, int64(3), b.SlotID())
		assert.Equal(t, now, b.BookedAt())
	})

	t.Run("missing references", func(t *testing.T) {
		for _, ids := range [][3]int64{{0, 2, 3}, {1, 0, 3}, {1, 2, 0}} {
			b, err := booking.NewConfirmed(ids[0], ids[1], ids[2], now)
			require.ErrorIs(t, err, booking.ErrInvalidBooking)
			assert.Nil(t, b)
		}
	})

	t.Run("reconstruct rejects unknown status", func(t *testing.T) {
		_, err := booking.Reconstruct(1, 1, 1, 1, booking.Status("pending"), now)
		require.ErrorIs(t, err, booking.ErrInvalidStatus)
	})
}
