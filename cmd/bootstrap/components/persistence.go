package components

import (
	"fleet-workflow/internal/infra/readstore"
	"fleet-workflow/internal/infra/repository"
	sqlc "fleet-workflow/internal/infra/sqlc/generated"
	"fleet-workflow/internal/infra/uow"
	"fleet-workflow/internal/usecase/queries"
	"fleet-workflow/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// WorkOrder
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.WorkOrderReadQueries)),
		),
		fx.Annotate(
			readstore.NewWorkOrderReadStore,
			fx.As(new(queries.WorkOrderReadStore)),
		),
		// Inventory
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.InventoryReadQueries)),
		),
		fx.Annotate(
			readstore.NewInventoryReadStore,
			fx.As(new(queries.InventoryReadStore)),
		),
	),
)

// Work order and inventory repositories are built per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Vehicle
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.VehicleQueries)),
		),
		fx.Annotate(
			repository.NewVehicleRegistry,
			fx.As(new(shared.VehicleRegistry)),
			fx.As(new(queries.VehicleReader)),
		),
		// Notification
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.NotificationQueries)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(shared.NotificationStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
