package repository

//go:generate mockgen -source=workorder.go -destination=../../../tests/mock/repository/workorder.go -package=repositorymock

import (
	"context"

	"fleet-workflow/internal/domain/workorder"
	"fleet-workflow/internal/infra"
	"fleet-workflow/internal/infra/repository/converter"
	sqlc "fleet-workflow/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type WorkOrderWriteQueries interface {
	CreateWorkOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateWorkOrderParams) error
	GetWorkOrderForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.WorkOrders, error)
	UpdateWorkOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateWorkOrderParams) (int64, error)
	ListWorkOrderParts(ctx context.Context, db sqlc.DBTX, workOrderIds []uuid.UUID) ([]sqlc.WorkOrderParts, error)
	DeleteWorkOrderParts(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteWorkOrderPartsParams) error
	InsertWorkOrderPart(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertWorkOrderPartParams) error
}

type WorkOrderRepository struct {
	queries WorkOrderWriteQueries
	db      sqlc.DBTX
}

func NewWorkOrderRepository(queries WorkOrderWriteQueries, db sqlc.DBTX) *WorkOrderRepository {
	return &WorkOrderRepository{
		queries: queries,
		db:      db,
	}
}

func (r *WorkOrderRepository) Create(ctx context.Context, tx sqlc.DBTX, w *workorder.WorkOrder) error {
	if err := r.queries.CreateWorkOrder(ctx, tx, converter.WorkOrderToCreateParams(w)); err != nil {
		return infra.WrapRepoErr("failed to create work order", err)
	}
	if err := r.insertLine(ctx, tx, w.ID(), converter.LineRequested, w.Requested()); err != nil {
		return err
	}
	return r.insertLine(ctx, tx, w.ID(), converter.LineAdjusted, w.Adjusted())
}

func (r *WorkOrderRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*workorder.WorkOrder, error) {
	row, err := r.queries.GetWorkOrderForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock work order", err)
	}
	parts, err := r.queries.ListWorkOrderParts(ctx, tx, []uuid.UUID{id})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load work order parts", err)
	}
	return converter.WorkOrderToDomain(row, parts), nil
}

// Update writes the order only if its version still matches; both part lines
// are rewritten.
func (r *WorkOrderRepository) Update(ctx context.Context, tx sqlc.DBTX, w *workorder.WorkOrder) error {
	affected, err := r.queries.UpdateWorkOrder(ctx, tx, converter.WorkOrderToUpdateParams(w))
	if err != nil {
		return infra.WrapRepoErr("failed to update work order", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("work order was modified concurrently", nil, infra.KindConflict)
	}

	for _, line := range []struct {
		name  string
		parts workorder.PartList
	}{
		{converter.LineRequested, w.Requested()},
		{converter.LineAdjusted, w.Adjusted()},
	} {
		arg := sqlc.DeleteWorkOrderPartsParams{WorkOrderID: w.ID(), Line: line.name}
		if err := r.queries.DeleteWorkOrderParts(ctx, tx, arg); err != nil {
			return infra.WrapRepoErr("failed to clear work order parts", err)
		}
		if err := r.insertLine(ctx, tx, w.ID(), line.name, line.parts); err != nil {
			return err
		}
	}
	return nil
}

func (r *WorkOrderRepository) insertLine(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, line string, parts workorder.PartList) error {
	for _, arg := range converter.PartLineToParams(id, line, parts) {
		if err := r.queries.InsertWorkOrderPart(ctx, tx, arg); err != nil {
			return infra.WrapRepoErr("failed to store work order part", err)
		}
	}
	return nil
}
