package components

import (
	"fleet-workflow/internal/handler"
	"fleet-workflow/internal/handler/api"
	"fleet-workflow/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewWorkOrderHandler,
		api.NewInventoryHandler,
		api.NewVehicleHandler,
		api.NewReportHandler,
		api.NewNotificationHandler,
		api.NewSubscriptionHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth           *api.AuthHandler
	WorkOrder      *api.WorkOrderHandler
	Inventory      *api.InventoryHandler
	Vehicle        *api.VehicleHandler
	Report         *api.ReportHandler
	Notification   *api.NotificationHandler
	Subscription   *api.SubscriptionHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:           p.Auth,
		WorkOrder:      p.WorkOrder,
		Inventory:      p.Inventory,
		Vehicle:        p.Vehicle,
		Report:         p.Report,
		Notification:   p.Notification,
		Subscription:   p.Subscription,
		AuthMiddleware: p.AuthMiddleware,
	}
}
