package bootstrap

import (
	"fleet-workflow/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	BusModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	JobModule,
)
