package components

import (
	"doglivebot/internal/domain/schedule"
	"doglivebot/internal/pkg/clock"
	"doglivebot/internal/pkg/config"
	"doglivebot/internal/usecase"
	"doglivebot/internal/usecase/commands"
	"doglivebot/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	usecaseFlowModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewScheduleHours,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewScheduleCommands,
		commands.NewReservationCommands,
		commands.NewNavigationCommands,
		commands.NewRegistrationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewAccountQueries,
	),
)

var usecaseFlowModule = fx.Module("usecase/flow",
	fx.Provide(
		usecase.NewBookingFlow,
	),
)

// NewScheduleHours rejects bad class hours at startup instead of at the first rollover.
func NewScheduleHours(cfg config.Config) (schedule.Hours, error) {
	h := schedule.Hours{
		DayStart: cfg.Schedule.DayStart,
		DayEnd:   cfg.Schedule.DayEnd,
		Interval: cfg.Schedule.SlotInterval,
	}
	if err := h.Validate(); err != nil {
		return schedule.Hours{}, err
	}
	return h, nil
}
