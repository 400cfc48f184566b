package components

import (
	"doglivebot/internal/handler"
	"doglivebot/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewScheduleHandler,
	),
	fx.Invoke(handler.NewRouter),
)
