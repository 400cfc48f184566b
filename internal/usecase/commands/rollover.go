package commands

import (
	"context"
	"log/slog"
	"time"

	"doglivebot/internal/domain/schedule"
	"doglivebot/internal/infra"
	"doglivebot/internal/pkg/clock"
	"doglivebot/internal/pkg/errs"
	"doglivebot/internal/pkg/metrics"
	"doglivebot/internal/usecase/shared"
)

var ErrRolloverFailed = errs.New("schedule rollover failed")

type RolloverResult struct {
	Created    bool
	ScheduleID int64
	WeekStart  time.Time
	WeekEnd    time.Time
	SlotCount  int64
}

type ScheduleCommands interface {
	// EnsureCurrentWeekScheduled makes sure the active schedule covers now. Safe to call repeatedly.
	EnsureCurrentWeekScheduled(ctx context.Context) error
	RollOver(ctx context.Context) (*RolloverResult, error)
}

type scheduleUseCaseImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	hours     schedule.Hours
	publisher EventPublisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

func NewScheduleCommands(
	uow shared.UnitOfWork,
	clk clock.Clock,
	hours schedule.Hours,
	publisher EventPublisher,
	m *metrics.Metrics,
	logger *slog.Logger,
) ScheduleCommands {
	return &scheduleUseCaseImpl{
		uow:       uow,
		clock:     clk,
		hours:     hours,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
}

func (uc *scheduleUseCaseImpl) EnsureCurrentWeekScheduled(ctx context.Context) error {
	_, err := uc.RollOver(ctx)
	return err
}

func (uc *scheduleUseCaseImpl) RollOver(ctx context.Context) (*RolloverResult, error) {
	now := uc.clock.Now()

	var result RolloverResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = RolloverResult{}

		if err := tx.Schedules().LockRollover(ctx, tx.DB()); err != nil {
			return err
		}

		active, err := tx.Schedules().FindActive(ctx, tx.DB())
		switch {
		case err == nil && active.Covers(now):
			result = RolloverResult{
				ScheduleID: active.ID(),
				WeekStart:  active.WeekStart(),
				WeekEnd:    active.WeekEnd(),
			}
			return nil
		case err != nil && !infra.IsKind(err, infra.KindNotFound):
			return err
		}

		next := schedule.NewWeeklySchedule(now)
		drafts, err := schedule.GenerateWeek(next.WeekStart(), uc.hours)
		if err != nil {
			return err
		}

		if _, err := tx.Schedules().DeactivateAll(ctx, tx.DB()); err != nil {
			return err
		}

		id, err := tx.Schedules().Create(ctx, tx.DB(), next)
		if err != nil {
			return err
		}

		n, err := tx.Slots().CreateBatch(ctx, tx.DB(), id, drafts)
		if err != nil {
			return err
		}

		result = RolloverResult{
			Created:    true,
			ScheduleID: id,
			WeekStart:  next.WeekStart(),
			WeekEnd:    next.WeekEnd(),
			SlotCount:  n,
		}
		return nil
	})
	if err != nil {
		uc.metrics.ObserveRollover(metrics.RolloverFailed)
		uc.logger.Error("weekly schedule rollover failed", "error", err, "now", now)
		return nil, errs.Mark(err, ErrRolloverFailed)
	}

	if !result.Created {
		uc.metrics.ObserveRollover(metrics.RolloverNoop)
		uc.logger.Debug("active schedule already covers current week", "schedule_id", result.ScheduleID)
		return &result, nil
	}

	uc.metrics.ObserveRollover(metrics.RolloverCreated)
	uc.logger.Info("weekly schedule created",
		"schedule_id", result.ScheduleID,
		"week_start", result.WeekStart,
		"slots", result.SlotCount)

	publish(ctx, uc.logger, uc.publisher, EventScheduleRolledOver, ScheduleRolledOverEvent{
		ScheduleID: result.ScheduleID,
		WeekStart:  result.WeekStart,
		WeekEnd:    result.WeekEnd,
		SlotCount:  result.SlotCount,
	})
	return &result, nil
}
