//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"doglivebot/internal/domain/schedule"
	"doglivebot/internal/pkg/clock"
	"doglivebot/internal/pkg/errs"
	"doglivebot/internal/pkg/metrics"
	"doglivebot/internal/usecase/commands"
	"doglivebot/tests/common/memstore"
	"doglivebot/tests/common/testutil"
	commandsmock "doglivebot/tests/mock/commands"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var defaultHours = schedule.Hours{DayStart: 9 * time.Hour, DayEnd: 21 * time.Hour, Interval: time.Hour}

// Wednesday of the week starting Monday 2026-10-19.
var wednesday = time.Date(2026, 10, 21, 10, 0, 0, 0, time.UTC)

type rolloverFixture struct {
	store   *memstore.Store
	clock   *clock.MockClock
	pub     *commandsmock.MockEventPublisher
	metrics *metrics.Metrics
	cmds    commands.ScheduleCommands
}

func newRolloverFixture(t *testing.T, now time.Time) *rolloverFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &rolloverFixture{
		store:   memstore.New(),
		clock:   clock.NewMockClock(now),
		pub:     commandsmock.NewMockEventPublisher(ctrl),
		metrics: testutil.NewMetrics(),
	}
	f.cmds = commands.NewScheduleCommands(f.store, f.clock, defaultHours, f.pub, f.metrics, testutil.DiscardLogger())
	return f
}

func TestEnsureCurrentWeekScheduled_CreatesWeekWhenNoneActive(t *testing.T) {
	f := newRolloverFixture(t, wednesday)
	f.pub.EXPECT().PublishJSON(gomock.Any(), commands.EventScheduleRolledOver, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, v any) error {
			ev, ok := v.(commands.ScheduleRolledOverEvent)
			require.True(t, ok)
			assert.Equal(t, int64(84), ev.SlotCount)
			return nil
		})

	require.NoError(t, f.cmds.EnsureCurrentWeekScheduled(context.Background()))

	active := f.store.ActiveSchedules()
	require.Len(t, active, 1)
	assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), active[0].WeekStart)
	assert.Equal(t, time.Date(2026, 10, 25, 23, 59, 59, 0, time.UTC), active[0].WeekEnd)

	slots := f.store.Slots(active[0].ID)
	assert.Len(t, slots, 7*12)
	for _, s := range slots {
		assert.False(t, s.Reserved)
		assert.Equal(t, schedule.WeekdayOf(s.Date), s.Day)
	}
	assert.Equal(t, 1.0, promtest.ToFloat64(f.metrics.RolloversTotal.WithLabelValues(metrics.RolloverCreated)))
}

func TestEnsureCurrentWeekScheduled_IsIdempotentWithinWeek(t *testing.T) {
	f := newRolloverFixture(t, wednesday)
	f.pub.EXPECT().PublishJSON(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	ctx := context.Background()
	require.NoError(t, f.cmds.EnsureCurrentWeekScheduled(ctx))
	first := f.store.ActiveSchedules()

	for _, offset := range []time.Duration{time.Hour, 24 * time.Hour, 4*24*time.Hour + 13*time.Hour} {
		f.clock.Set(wednesday.Add(offset))
		result, err := f.cmds.RollOver(ctx)
		require.NoError(t, err)
		assert.False(t, result.Created)
	}

	assert.Equal(t, first, f.store.ActiveSchedules())
	assert.Len(t, f.store.Schedules(), 1)
	assert.Len(t, f.store.Slots(first[0].ID), 84)
	assert.Equal(t, 3.0, promtest.ToFloat64(f.metrics.RolloversTotal.WithLabelValues(metrics.RolloverNoop)))
}

func TestEnsureCurrentWeekScheduled_ReplacesStaleWeek(t *testing.T) {
	f := newRolloverFixture(t, wednesday)
	f.pub.EXPECT().PublishJSON(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	ctx := context.Background()
	require.NoError(t, f.cmds.EnsureCurrentWeekScheduled(ctx))
	old := f.store.ActiveSchedules()[0]

	f.clock.Set(time.Date(2026, 10, 26, 0, 0, 1, 0, time.UTC))
	require.NoError(t, f.cmds.EnsureCurrentWeekScheduled(ctx))

	all := f.store.Schedules()
	require.Len(t, all, 2)
	active := f.store.ActiveSchedules()
	require.Len(t, active, 1)
	assert.NotEqual(t, old.ID, active[0].ID)
	assert.Equal(t, time.Date(2026, 10, 26, 0, 0, 0, 0, time.UTC), active[0].WeekStart)

	// The superseded week is kept, only deactivated.
	assert.False(t, all[0].Active)
	assert.Len(t, f.store.Slots(old.ID), 84)
}

func TestEnsureCurrentWeekScheduled_FailureKeepsPriorSchedule(t *testing.T) {
	f := newRolloverFixture(t, wednesday)
	f.pub.EXPECT().PublishJSON(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	ctx := context.Background()
	require.NoError(t, f.cmds.EnsureCurrentWeekScheduled(ctx))
	prior := f.store.ActiveSchedules()[0]

	f.clock.Set(wednesday.Add(7 * 24 * time.Hour))
	f.store.Fail(memstore.OpCreateSlots, errors.New("disk full"))

	err := f.cmds.EnsureCurrentWeekScheduled(ctx)
	require.Error(t, err)
	assert.True(t, errs.Is(err, commands.ErrRolloverFailed))

	active := f.store.ActiveSchedules()
	require.Len(t, active, 1)
	assert.Equal(t, prior.ID, active[0].ID)
	assert.Len(t, f.store.Schedules(), 1)
	assert.Equal(t, 1.0, promtest.ToFloat64(f.metrics.RolloversTotal.WithLabelValues(metrics.RolloverFailed)))

	// The next tick succeeds once the store recovers.
	f.store.Fail(memstore.OpCreateSlots, nil)
	f.pub.EXPECT().PublishJSON(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
	require.NoError(t, f.cmds.EnsureCurrentWeekScheduled(ctx))
	assert.NotEqual(t, prior.ID, f.store.ActiveSchedules()[0].ID)
}

func TestEnsureCurrentWeekScheduled_ConcurrentCallsCreateOneSchedule(t *testing.T) {
	f := newRolloverFixture(t, wednesday)
	f.pub.EXPECT().PublishJSON(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, f.cmds.EnsureCurrentWeekScheduled(context.Background()))
		}()
	}
	wg.Wait()

	assert.Len(t, f.store.Schedules(), 1)
	assert.Len(t, f.store.ActiveSchedules(), 1)
}

func TestEnsureCurrentWeekScheduled_PublishFailureIsNotAnError(t *testing.T) {
	f := newRolloverFixture(t, wednesday)
	f.pub.EXPECT().PublishJSON(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	require.NoError(t, f.cmds.EnsureCurrentWeekScheduled(context.Background()))
	assert.Len(t, f.store.ActiveSchedules(), 1)
}
