package components

import (
	"doglivebot/internal/infra/readstore"
	"doglivebot/internal/infra/uow"
	"doglivebot/internal/usecase/queries"

	"go.uber.org/fx"
)

// Write repositories are created per transaction by the unit of work.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityReadStore)),
		),
		fx.Annotate(
			readstore.NewAccountReadStore,
			fx.As(new(queries.AccountReadStore)),
		),
	),
)
