package bootstrap

import (
	"context"
	"log/slog"

	"doglivebot/internal/infra/db"
	"doglivebot/internal/pkg/config"
	"doglivebot/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
		NewDBTX,
	),
)

var errSchemaMissing = errs.New("booking schema not found, apply migrations/001_initial_schema.sql")

// NewDB opens the pool and refuses to start against a database without the booking tables.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var present bool
			err := pool.QueryRow(ctx,
				`SELECT to_regclass('public.available_slots') IS NOT NULL AND to_regclass('public.last_callbacks') IS NOT NULL`,
			).Scan(&present)
			if err != nil {
				return err
			}
			if !present {
				return errSchemaMissing
			}
			logger.Info("database ready", "host", cfg.DB.Host, "db", cfg.DB.DBName, "max_conns", cfg.DB.MaxConns)
			return nil
		},
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
