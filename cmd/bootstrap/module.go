package bootstrap

import (
	"doglivebot/cmd/bootstrap/components"
	"doglivebot/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)

// Module wires the whole bot: ops HTTP API, Telegram poller, rollover cron and relay consumer.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	DBModule,
	RedisModule,
	MQModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
	SchedulerModule,
	TelegramModule,
)
