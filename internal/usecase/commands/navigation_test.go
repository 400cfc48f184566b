//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"doglivebot/internal/domain/navigation"
	"doglivebot/internal/pkg/clock"
	"doglivebot/internal/pkg/errs"
	"doglivebot/internal/usecase/commands"
	"doglivebot/tests/common/memstore"
	"doglivebot/tests/common/testutil"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigationRecord(t *testing.T) {
	tests := []struct {
		name     string
		cmd      navigation.Command
		recorded bool
	}{
		{name: "menu command", cmd: navigation.CommandMainMenu, recorded: true},
		{name: "booking step", cmd: navigation.CommandSelectTime, recorded: true},
		{name: "back is not recorded", cmd: navigation.CommandBack},
		{name: "unknown is not recorded", cmd: navigation.CommandUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memstore.New()
			clk := clock.NewMockClock(wednesday)
			nav := commands.NewNavigationCommands(store, clk, testutil.NewMetrics(), testutil.DiscardLogger())

			require.NoError(t, nav.Record(context.Background(), 7, tt.cmd))

			rec, ok := store.Record(7)
			assert.Equal(t, tt.recorded, ok)
			if tt.recorded {
				assert.Equal(t, tt.cmd, rec.Command)
				assert.Equal(t, wednesday, rec.UpdatedAt)
			}
		})
	}
}

func TestNavigationRecord_KeepsOnlyLatest(t *testing.T) {
	store := memstore.New()
	clk := clock.NewMockClock(wednesday)
	nav := commands.NewNavigationCommands(store, clk, testutil.NewMetrics(), testutil.DiscardLogger())
	ctx := context.Background()

	require.NoError(t, nav.Record(ctx, 7, navigation.CommandBookClass))
	clk.Add(time.Minute)
	require.NoError(t, nav.Record(ctx, 7, navigation.CommandMyDogs))
	require.NoError(t, nav.Record(ctx, 7, navigation.CommandBack))

	rec, ok := store.Record(7)
	require.True(t, ok)
	assert.Equal(t, navigation.CommandMyDogs, rec.Command)
	assert.Equal(t, wednesday.Add(time.Minute), rec.UpdatedAt)
}

func TestNavigationBackTarget_WalksUpTheBookingFlow(t *testing.T) {
	store := memstore.New()
	nav := commands.NewNavigationCommands(store, clock.NewMockClock(wednesday), testutil.NewMetrics(), testutil.DiscardLogger())
	ctx := context.Background()

	require.NoError(t, nav.Record(ctx, 7, navigation.CommandSelectDog))

	want := []navigation.Command{
		navigation.CommandSelectTime,
		navigation.CommandBookClass,
		navigation.CommandMainMenu,
		navigation.CommandMainMenu,
	}
	for _, w := range want {
		got, err := nav.BackTarget(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, w, got)

		rec, ok := store.Record(7)
		require.True(t, ok)
		assert.Equal(t, w, rec.Command)
	}
}

func TestNavigationBackTarget_UsersAreIsolated(t *testing.T) {
	store := memstore.New()
	nav := commands.NewNavigationCommands(store, clock.NewMockClock(wednesday), testutil.NewMetrics(), testutil.DiscardLogger())
	ctx := context.Background()

	require.NoError(t, nav.Record(ctx, 1, navigation.CommandMyDogs))
	require.NoError(t, nav.Record(ctx, 2, navigation.CommandSelectDog))

	got, err := nav.BackTarget(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, navigation.CommandSelectTime, got)

	rec, _ := store.Record(1)
	assert.Equal(t, navigation.CommandMyDogs, rec.Command)
}

func TestNavigationBackTarget_Errors(t *testing.T) {
	tests := []struct {
		name   string
		fault  error
		wantIs error
	}{
		{name: "no recorded command", wantIs: commands.ErrNoConversation},
		{name: "storage failure", fault: errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memstore.New()
			m := testutil.NewMetrics()
			nav := commands.NewNavigationCommands(store, clock.NewMockClock(wednesday), m, testutil.DiscardLogger())
			if tt.fault != nil {
				require.NoError(t, nav.Record(context.Background(), 7, navigation.CommandMyDogs))
				store.Fail(memstore.OpFindRecord, tt.fault)
			}

			got, err := nav.BackTarget(context.Background(), 7)

			require.Error(t, err)
			assert.Equal(t, navigation.CommandUnknown, got)
			if tt.wantIs != nil {
				assert.True(t, errs.Is(err, tt.wantIs))
			} else {
				assert.False(t, errs.Is(err, commands.ErrNoConversation))
			}
			assert.Equal(t, 1.0, promtest.ToFloat64(m.NavigationErrorsTotal))
		})
	}
}
