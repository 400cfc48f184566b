//go:build unit

package callback_test

import (
	"math"
	"testing"

	"doglivebot/internal/domain/booking"
	"doglivebot/internal/domain/callback"
	"doglivebot/internal/domain/navigation"
	"doglivebot/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestData_Encode(t *testing.T) {
	t.Run("short keys and omitted zero fields", func(t *testing.T) {
		raw, err := callback.New(navigation.CommandSelectTime, booking.Payload{Day: schedule.Wednesday}).Encode()
		require.NoError(t, err)
		assert.JSONEq(t, `{"c":3,"d":3}`, raw)
	})

	t.Run("largest payload fits the Telegram limit", func(t *testing.T) {
		d := callback.Data{
			Command: navigation.CommandReserve,
			Day:     schedule.Sunday,
			SlotID:  math.MaxInt64,
			DogID:   math.MaxInt64,
		}
		raw, err := d.Encode()
		require.NoError(t, err)
		assert.LessOrEqual(t, len(raw), callback.MaxSize)

		decoded, err := callback.Decode(raw)
		require.NoError(t, err)
		assert.Equal(t, d, decoded)
	})
}

func TestDecode(t *testing.T) {
	t.Run("payload fields survive", func(t *testing.T) {
		d, err := callback.Decode(`{"c":5,"d":2,"s":42,"g":7}`)
		require.NoError(t, err)
		assert.Equal(t, navigation.CommandReserve, d.Command)
		assert.Equal(t, booking.Payload{Day: schedule.Tuesday, SlotID: 42, DogID: 7}, d.Payload())
		assert.Equal(t, booking.StepReserve, d.Payload().Step())
	})

	malformed := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "not json", raw: "select_day_3"},
		{name: "unknown command", raw: `{"c":99}`},
		{name: "missing command", raw: `{"d":3}`},
		{name: "day out of range", raw: `{"c":3,"d":8}`},
		{name: "negative slot", raw: `{"c":4,"d":3,"s":-1}`},
		{name: "string slot", raw: `{"c":4,"d":3,"s":"42"}`},
		{name: "oversized", raw: `{"c":4,"d":3,"s":42,"g":7,"padding":"xxxxxxxxxxxxxxxxxxxxxxxxxxxx"}`},
	}
	for _, tc := range malformed {
		t.Run(tc.name, func(t *testing.T) {
			_, err := callback.Decode(tc.raw)
			require.ErrorIs(t, err, callback.ErrMalformed)
		})
	}
}
