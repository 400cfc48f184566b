//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"doglivebot/internal/domain/booking"
	"doglivebot/internal/domain/navigation"
	"doglivebot/internal/domain/schedule"
	"doglivebot/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

func (m *MockDBTX) CopyFrom(ctx context.Context, table pgx.Identifier, columns []string, src pgx.CopyFromSource) (int64, error) {
	mockArgs := m.Called(ctx, table, columns, src)
	return mockArgs.Get(0).(int64), mockArgs.Error(1)
}

type fakeRow struct {
	scan func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error { return r.scan(dest...) }

func errRow(err error) fakeRow {
	return fakeRow{scan: func(...any) error { return err }}
}

func TestSlotRepository_MarkReserved(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		err     error
		want    bool
		wantErr bool
	}{
		{name: "row updated", tag: "UPDATE 1", want: true},
		{name: "version moved on", tag: "UPDATE 0", want: false},
		{name: "database error", err: assert.AnError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbtx := new(MockDBTX)
			dbtx.On("Exec", mock.Anything, markSlotReservedSQL, []any{int64(42), int32(3)}).
				Return(pgconn.NewCommandTag(tt.tag), tt.err)

			ok, err := NewSlotRepository().MarkReserved(context.Background(), dbtx, 42, 3)

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, ok)
			dbtx.AssertExpectations(t)
		})
	}
}

func TestSlotRepository_FindForUpdate(t *testing.T) {
	t.Run("scans slot", func(t *testing.T) {
		dbtx := new(MockDBTX)
		date := time.Date(2026, 10, 22, 0, 0, 0, 0, time.UTC)
		row := fakeRow{scan: func(dest ...any) error {
			*dest[0].(*int64) = 42
			*dest[1].(*int64) = 7
			*dest[2].(*pgtype.Date) = pgtype.Date{Time: date, Valid: true}
			*dest[3].(*int16) = int16(schedule.Thursday)
			*dest[4].(*pgtype.Time) = pgtype.Time{Microseconds: (10 * time.Hour).Microseconds(), Valid: true}
			*dest[5].(*pgtype.Time) = pgtype.Time{Microseconds: (11 * time.Hour).Microseconds(), Valid: true}
			*dest[6].(*bool) = false
			*dest[7].(*int32) = 2
			return nil
		}}
		dbtx.On("QueryRow", mock.Anything, findSlotForUpdateSQL, []any{int64(7), int16(schedule.Thursday), int64(42)}).Return(row)

		slot, err := NewSlotRepository().FindForUpdate(context.Background(), dbtx, 7, schedule.Thursday, 42)

		require.NoError(t, err)
		assert.Equal(t, int64(42), slot.ID())
		assert.Equal(t, schedule.Thursday, slot.Day())
		assert.Equal(t, "10:00-11:00", slot.Label())
		assert.Equal(t, int32(2), slot.Version())
		assert.Equal(t, date.Add(10*time.Hour), slot.StartsAt())
	})

	t.Run("missing slot is not found", func(t *testing.T) {
		dbtx := new(MockDBTX)
		dbtx.On("QueryRow", mock.Anything, findSlotForUpdateSQL, mock.Anything).Return(errRow(pgx.ErrNoRows))

		_, err := NewSlotRepository().FindForUpdate(context.Background(), dbtx, 7, schedule.Thursday, 42)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestSlotRepository_CreateBatch(t *testing.T) {
	drafts, err := schedule.GenerateWeek(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
		schedule.Hours{DayStart: 9 * time.Hour, DayEnd: 21 * time.Hour, Interval: time.Hour})
	require.NoError(t, err)

	dbtx := new(MockDBTX)
	dbtx.On("CopyFrom", mock.Anything, pgx.Identifier{"available_slots"}, slotColumns, mock.Anything).
		Return(int64(len(drafts)), nil)

	n, err := NewSlotRepository().CreateBatch(context.Background(), dbtx, 1, drafts)

	require.NoError(t, err)
	assert.Equal(t, int64(84), n)
}

func TestBookingRepository_Create(t *testing.T) {
	b, err := booking.NewConfirmed(1, 2, 3, time.Date(2026, 10, 21, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	tests := []struct {
		name     string
		scanErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "slot already booked", scanErr: &pgconn.PgError{Code: "23505"}, wantKind: infra.KindDuplicateKey},
		{name: "unknown dog", scanErr: &pgconn.PgError{Code: "23503"}, wantKind: infra.KindForeignKeyViolated},
		{name: "connection lost", scanErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbtx := new(MockDBTX)
			row := fakeRow{scan: func(dest ...any) error {
				if tt.scanErr != nil {
					return tt.scanErr
				}
				*dest[0].(*int64) = 99
				return nil
			}}
			dbtx.On("QueryRow", mock.Anything, createBookingSQL, mock.Anything).Return(row)

			id, err := NewBookingRepository().Create(context.Background(), dbtx, b)

			if tt.wantKind == "" {
				require.NoError(t, err)
				assert.Equal(t, int64(99), id)
				return
			}
			assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
		})
	}
}

func TestConversationRepository_Find(t *testing.T) {
	at := time.Date(2026, 10, 21, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		desc     string
		scanErr  error
		want     navigation.Command
		wantKind infra.RepositoryErrorKind
	}{
		{name: "known command", desc: "select_dog", want: navigation.CommandSelectDog},
		{name: "no record", scanErr: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "unrecognised command", desc: "pay_now", wantKind: infra.KindConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbtx := new(MockDBTX)
			row := fakeRow{scan: func(dest ...any) error {
				if tt.scanErr != nil {
					return tt.scanErr
				}
				*dest[0].(*int64) = 7
				*dest[1].(*string) = tt.desc
				*dest[2].(*pgtype.Timestamptz) = pgtype.Timestamptz{Time: at, Valid: true}
				return nil
			}}
			dbtx.On("QueryRow", mock.Anything, findLastCallbackSQL, []any{int64(7)}).Return(row)

			rec, err := NewConversationRepository().Find(context.Background(), dbtx, 7)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, rec.Command)
			assert.Equal(t, at, rec.UpdatedAt)
		})
	}
}

func TestConversationRepository_UpsertStoresDescription(t *testing.T) {
	dbtx := new(MockDBTX)
	dbtx.On("Exec", mock.Anything, upsertLastCallbackSQL, mock.MatchedBy(func(args []any) bool {
		return len(args) == 3 && args[0] == int64(7) && args[1] == "book_class"
	})).Return(pgconn.NewCommandTag("INSERT 0 1"), nil)

	err := NewConversationRepository().Upsert(context.Background(), dbtx, 7, navigation.CommandBookClass, time.Now())

	require.NoError(t, err)
	dbtx.AssertExpectations(t)
}

func TestScheduleRepository_FindActiveNotFound(t *testing.T) {
	dbtx := new(MockDBTX)
	dbtx.On("QueryRow", mock.Anything, findActiveScheduleSQL, mock.Anything).Return(errRow(pgx.ErrNoRows))

	_, err := NewScheduleRepository().FindActive(context.Background(), dbtx)

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestScheduleRepository_LockRolloverUsesAdvisoryKey(t *testing.T) {
	dbtx := new(MockDBTX)
	dbtx.On("Exec", mock.Anything, lockRolloverSQL, []any{rolloverLockKey}).Return(pgconn.NewCommandTag("SELECT 1"), nil)

	require.NoError(t, NewScheduleRepository().LockRollover(context.Background(), dbtx))
	dbtx.AssertExpectations(t)
}
