package bootstrap

import (
	"context"
	"log/slog"

	"doglivebot/internal/handler/relay"
	"doglivebot/internal/infra/mq"
	"doglivebot/internal/pkg/config"
	"doglivebot/internal/usecase/commands"

	"go.uber.org/fx"
)

var MQModule = fx.Module("mq",
	fx.Provide(
		NewEventPublisher,
	),
	fx.Invoke(startScheduleRelay),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.EventPublisher, error) {
	if cfg.AMQP.URL == "" {
		logger.Info("AMQP_URL not set, events are not published")
		return mq.NopPublisher{}, nil
	}

	pub, err := mq.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}

func startScheduleRelay(lc fx.Lifecycle, cfg config.Config, cmds commands.ScheduleCommands, logger *slog.Logger) {
	if cfg.AMQP.URL == "" {
		return
	}

	var consumer *mq.Consumer
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			var err error
			consumer, err = mq.NewConsumer(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.RelayQueue, []string{mq.KeyScheduleGenerate})
			if err != nil {
				cancel()
				return err
			}
			r := relay.NewScheduleRelay(consumer, cmds, logger)
			go func() {
				defer close(done)
				if err := r.Run(ctx); err != nil {
					logger.Error("schedule relay stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return consumer.Close()
		},
	})
}
