package components

import (
	"fleet-workflow/internal/pkg/clock"
	"fleet-workflow/internal/pkg/config"
	"fleet-workflow/internal/usecase"
	"fleet-workflow/internal/usecase/commands"
	"fleet-workflow/internal/usecase/events"
	"fleet-workflow/internal/usecase/queries"
	"fleet-workflow/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseEventsModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	func(cfg config.Config) clock.Clock {
		return clock.NewRealClock(cfg.Workflow.Location())
	},
	func(cfg config.Config) commands.ExpiryPolicy {
		return commands.ExpiryPolicy{Threshold: cfg.Workflow.ExpiryThreshold}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewWorkOrderUseCase,
		commands.NewInventoryUseCase,
		commands.NewVehicleUseCase,
		commands.NewNotificationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewWorkOrderQueries,
		queries.NewInventoryQueries,
		queries.NewReportQueries,
		queries.NewNotificationQueries,
	),
)

var usecaseEventsModule = fx.Module("usecase/events",
	fx.Provide(
		fx.Annotate(
			events.NewPublisher,
			fx.As(new(shared.TransitionPublisher)),
		),
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
