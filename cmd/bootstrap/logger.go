package bootstrap

import (
	"log/slog"

	"doglivebot/internal/handler/middleware"
	"doglivebot/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		NewSlogLogger,
	),
)

func NewLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

// NewSlogLogger is the logger handed to use cases and workers; every line carries the service name.
func NewSlogLogger(l *middleware.Logger) *slog.Logger {
	return l.GetSlogLogger().With("service", "doglivebot")
}
