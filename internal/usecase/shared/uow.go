package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

import (
	"context"
	"time"

	"fleet-workflow/internal/domain/inventory"
	"fleet-workflow/internal/domain/workorder"
	sqlc "fleet-workflow/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	WorkOrders() WorkOrderRepository
	Inventory() InventoryRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	// StaleWorkOrderIDs lists non-terminal orders scheduled before the cutoff.
	StaleWorkOrderIDs(ctx context.Context, before time.Time) ([]uuid.UUID, error)
}

type WorkOrderRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, w *workorder.WorkOrder) error
	// FindForUpdate loads the order and holds its row lock until the transaction ends.
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*workorder.WorkOrder, error)
	// Update persists w if nobody changed it since it was loaded.
	Update(ctx context.Context, tx sqlc.DBTX, w *workorder.WorkOrder) error
}

// InventoryRepository moves stock between available, reserved and consumed.
// Every method must run inside the caller's transaction.
type InventoryRepository interface {
	VerifyAndReserve(ctx context.Context, tx sqlc.DBTX, parts workorder.PartList) error
	Release(ctx context.Context, tx sqlc.DBTX, parts workorder.PartList) error
	FinalizeConsumption(ctx context.Context, tx sqlc.DBTX, parts workorder.PartList) error
	CreatePart(ctx context.Context, tx sqlc.DBTX, stock inventory.Stock) (inventory.Stock, error)
	Restock(ctx context.Context, tx sqlc.DBTX, id string, quantity int) (inventory.Stock, error)
}
