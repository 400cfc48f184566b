package bootstrap

import (
	"context"
	"log/slog"

	"doglivebot/internal/infra/cache"
	"doglivebot/internal/pkg/config"
	"doglivebot/internal/usecase"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
		fx.Annotate(
			NewFlowCache,
			fx.As(new(usecase.FlowStore)),
		),
	),
)

// NewRedis does not fail startup when Redis is down; the booking flow only loses back-to-time-picker resumption.
func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	client := cache.NewRedisClient(cfg.Redis)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := cache.Ping(ctx, client); err != nil {
				logger.Warn("redis unavailable, booking flow cache degraded", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return cache.Close(client)
		},
	})

	return client
}

func NewFlowCache(client *redis.Client, cfg config.Config) *cache.FlowCache {
	return cache.NewFlowCache(client, cfg.Booking.FlowTTL)
}
