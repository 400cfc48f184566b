package relay

import (
	"context"
	"log/slog"

	"doglivebot/internal/infra/mq"
	"doglivebot/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DeliverySource yields broker deliveries until ctx ends.
type DeliverySource interface {
	Deliveries(ctx context.Context) (<-chan amqp.Delivery, error)
}

// Acknowledger is the subset of amqp.Delivery the consumer settles messages with.
type Acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

// ScheduleRelay runs the weekly rollover whenever a schedule.generate message arrives.
type ScheduleRelay struct {
	source DeliverySource
	cmds   commands.ScheduleCommands
	logger *slog.Logger
}

func NewScheduleRelay(source DeliverySource, cmds commands.ScheduleCommands, logger *slog.Logger) *ScheduleRelay {
	return &ScheduleRelay{source: source, cmds: cmds, logger: logger}
}

func (r *ScheduleRelay) Run(ctx context.Context) error {
	msgs, err := r.source.Deliveries(ctx)
	if err != nil {
		return err
	}
	r.logger.Info("schedule relay consuming", "key", mq.KeyScheduleGenerate)

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			r.Handle(ctx, d.RoutingKey, &d)
		}
	}
}

// Handle drops the message when the rollover fails; the cron trigger retries on its next tick.
func (r *ScheduleRelay) Handle(ctx context.Context, key string, ack Acknowledger) {
	if key != mq.KeyScheduleGenerate {
		r.logger.Warn("schedule relay skipping unknown key", "key", key)
		_ = ack.Ack(false)
		return
	}

	if err := r.cmds.EnsureCurrentWeekScheduled(ctx); err != nil {
		r.logger.Error("schedule relay rollover failed, leaving retry to cron", "error", err)
		_ = ack.Nack(false, false)
		return
	}
	_ = ack.Ack(false)
}
