//go:build unit

package relay_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"doglivebot/internal/handler/relay"
	"doglivebot/internal/infra/mq"
	"doglivebot/tests/common/testutil"
	commandsmock "doglivebot/tests/mock/commands"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeAck struct {
	acked   int
	nacked  int
	requeue bool
}

func (a *fakeAck) Ack(bool) error { a.acked++; return nil }

func (a *fakeAck) Nack(_, requeue bool) error {
	a.nacked++
	a.requeue = requeue
	return nil
}

type chanSource struct {
	ch  chan amqp.Delivery
	err error
}

func (s chanSource) Deliveries(context.Context) (<-chan amqp.Delivery, error) {
	return s.ch, s.err
}

func TestScheduleRelay_Handle(t *testing.T) {
	tests := []struct {
		name        string
		key         string
		rolloverErr error
		calls       int
		wantAck     int
		wantNack    int
	}{
		{name: "rollover succeeds", key: mq.KeyScheduleGenerate, calls: 1, wantAck: 1},
		{name: "rollover fails is dropped without requeue", key: mq.KeyScheduleGenerate, rolloverErr: errors.New("db down"), calls: 1, wantNack: 1},
		{name: "unknown key is dropped", key: "booking.reserved", wantAck: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds := commandsmock.NewMockScheduleCommands(gomock.NewController(t))
			cmds.EXPECT().EnsureCurrentWeekScheduled(gomock.Any()).Return(tt.rolloverErr).Times(tt.calls)
			r := relay.NewScheduleRelay(chanSource{}, cmds, testutil.DiscardLogger())
			ack := &fakeAck{}

			r.Handle(context.Background(), tt.key, ack)

			assert.Equal(t, tt.wantAck, ack.acked)
			assert.Equal(t, tt.wantNack, ack.nacked)
			assert.False(t, ack.requeue)
		})
	}
}

func TestScheduleRelay_RunStopsWhenChannelCloses(t *testing.T) {
	cmds := commandsmock.NewMockScheduleCommands(gomock.NewController(t))
	ch := make(chan amqp.Delivery)
	close(ch)
	r := relay.NewScheduleRelay(chanSource{ch: ch}, cmds, testutil.DiscardLogger())

	done := make(chan error, 1)
	go func() { done <- r.Run(context.Background()) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("relay did not stop")
	}
}

func TestScheduleRelay_RunReturnsSourceError(t *testing.T) {
	cmds := commandsmock.NewMockScheduleCommands(gomock.NewController(t))
	boom := errors.New("channel closed")
	r := relay.NewScheduleRelay(chanSource{err: boom}, cmds, testutil.DiscardLogger())

	assert.ErrorIs(t, r.Run(context.Background()), boom)
}

func TestScheduleRelay_RunStopsOnCancel(t *testing.T) {
	cmds := commandsmock.NewMockScheduleCommands(gomock.NewController(t))
	r := relay.NewScheduleRelay(chanSource{ch: make(chan amqp.Delivery)}, cmds, testutil.DiscardLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, r.Run(ctx))
}
