package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"doglivebot/internal/pkg/config"
	"doglivebot/internal/usecase/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

const rolloverTimeout = time.Minute

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(startRolloverScheduler),
)

func startRolloverScheduler(lc fx.Lifecycle, cfg config.Config, cmds commands.ScheduleCommands, logger *slog.Logger) error {
	cl := cronLogger{logger: logger.With("component", "cron")}
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(cl),
		cron.WithChain(cron.SkipIfStillRunning(cl)),
	)

	rollover := func() {
		ctx, cancel := context.WithTimeout(context.Background(), rolloverTimeout)
		defer cancel()
		// Errors are already logged; the next tick retries.
		_ = cmds.EnsureCurrentWeekScheduled(ctx)
	}

	if _, err := c.AddFunc(cfg.Schedule.RolloverCron, rollover); err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			if cfg.Schedule.RolloverOnBoot {
				rollover()
			}
			c.Start()
			logger.Info("rollover scheduler started", "spec", cfg.Schedule.RolloverCron)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			select {
			case <-c.Stop().Done():
			case <-ctx.Done():
			}
			return nil
		},
	})
	return nil
}

// cronLogger routes cron's own messages into slog.
type cronLogger struct {
	logger *slog.Logger
}

// Info carries cron's scheduling chatter, so it goes out at debug.
func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
