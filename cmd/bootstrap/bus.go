package bootstrap

import (
	"context"
	"log/slog"

	"fleet-workflow/internal/infra/bus"
	"fleet-workflow/internal/pkg/config"
	"fleet-workflow/internal/usecase/shared"

	"go.uber.org/fx"
)

var BusModule = fx.Module("bus",
	fx.Provide(
		fx.Annotate(
			NewBus,
			fx.As(new(shared.MessageBus)),
			fx.As(new(shared.MessageSource)),
		),
	),
)

func NewBus(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *bus.Router {
	router := bus.NewRouter(
		bus.WithLogger(logger),
		bus.WithSubscriberCapacity(cfg.Bus.SubscriberCapacity),
	)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			router.Close()
			return nil
		},
	})

	return router
}
