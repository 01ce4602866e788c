package readstore

//go:generate mockgen -source=workorder.go -destination=../../../tests/mock/readstore/workorder.go -package=readstoremock

import (
	"context"

	"fleet-workflow/internal/infra"
	"fleet-workflow/internal/infra/repository/converter"
	sqlc "fleet-workflow/internal/infra/sqlc/generated"
	"fleet-workflow/internal/pkg/pgconv"
	"fleet-workflow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type WorkOrderReadQueries interface {
	GetWorkOrder(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.WorkOrders, error)
	ListWorkOrders(ctx context.Context, db sqlc.DBTX, arg sqlc.ListWorkOrdersParams) ([]sqlc.WorkOrders, error)
	ListWorkOrderParts(ctx context.Context, db sqlc.DBTX, workOrderIds []uuid.UUID) ([]sqlc.WorkOrderParts, error)
	SearchCompletedWorkOrders(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchCompletedWorkOrdersParams) ([]sqlc.WorkOrders, error)
	CountCompletedWorkOrders(ctx context.Context, db sqlc.DBTX, arg sqlc.CountCompletedWorkOrdersParams) (int64, error)
}

type WorkOrderReadStore struct {
	queries WorkOrderReadQueries
	db      sqlc.DBTX
}

func NewWorkOrderReadStore(queries WorkOrderReadQueries, db sqlc.DBTX) *WorkOrderReadStore {
	return &WorkOrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *WorkOrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.WorkOrderView, error) {
	row, err := s.queries.GetWorkOrder(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("work order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get work order", err)
	}
	views, err := s.withParts(ctx, []sqlc.WorkOrders{row})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (s *WorkOrderReadStore) List(ctx context.Context, filter queries.WorkOrderFilter) ([]*queries.WorkOrderView, error) {
	statuses := filter.Statuses
	if statuses == nil {
		statuses = []string{}
	}
	rows, err := s.queries.ListWorkOrders(ctx, s.db, sqlc.ListWorkOrdersParams{
		Plate:    pgconv.OptionalStringToPgtype(filter.Plate),
		Statuses: statuses,
		From:     pgconv.TimePtrToPgtype(filter.From),
		To:       pgconv.TimePtrToPgtype(filter.To),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list work orders", err)
	}
	return s.withParts(ctx, rows)
}

func (s *WorkOrderReadStore) SearchCompleted(ctx context.Context, filter queries.HistoryFilter, limit, offset int) ([]*queries.WorkOrderView, error) {
	plate, kind, from, to := historyParams(filter)
	rows, err := s.queries.SearchCompletedWorkOrders(ctx, s.db, sqlc.SearchCompletedWorkOrdersParams{
		Plate:      plate,
		Kind:       kind,
		From:       from,
		To:         to,
		PageLimit:  pgconv.IntToInt32(limit),
		PageOffset: pgconv.IntToInt32(offset),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search completed work orders", err)
	}
	return s.withParts(ctx, rows)
}

func (s *WorkOrderReadStore) CountCompleted(ctx context.Context, filter queries.HistoryFilter) (int, error) {
	plate, kind, from, to := historyParams(filter)
	n, err := s.queries.CountCompletedWorkOrders(ctx, s.db, sqlc.CountCompletedWorkOrdersParams{
		Plate: plate,
		Kind:  kind,
		From:  from,
		To:    to,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count completed work orders", err)
	}
	return int(n), nil
}

func historyParams(f queries.HistoryFilter) (plate, kind pgtype.Text, from, to pgtype.Timestamptz) {
	return pgconv.OptionalStringToPgtype(f.Plate),
		pgconv.OptionalStringToPgtype(f.Kind),
		pgconv.TimePtrToPgtype(f.From),
		pgconv.TimePtrToPgtype(f.To)
}

// withParts loads the part lines of every row in one query and keeps the row order.
func (s *WorkOrderReadStore) withParts(ctx context.Context, rows []sqlc.WorkOrders) ([]*queries.WorkOrderView, error) {
	views := make([]*queries.WorkOrderView, len(rows))
	if len(rows) == 0 {
		return views, nil
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	parts, err := s.queries.ListWorkOrderParts(ctx, s.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list work order parts", err)
	}
	byOrder := make(map[uuid.UUID][]sqlc.WorkOrderParts, len(rows))
	for _, p := range parts {
		byOrder[p.WorkOrderID] = append(byOrder[p.WorkOrderID], p)
	}

	for i, row := range rows {
		views[i] = toWorkOrderView(row, byOrder[row.ID])
	}
	return views, nil
}

func toWorkOrderView(row sqlc.WorkOrders, parts []sqlc.WorkOrderParts) *queries.WorkOrderView {
	view := &queries.WorkOrderView{
		ID:               row.ID,
		Plate:            row.Plate,
		Kind:             row.Kind,
		Status:           row.Status,
		ScheduledAt:      pgconv.TimeFromPgtype(row.ScheduledAt),
		StartedAt:        pgconv.TimePtrFromPgtype(row.StartedAt),
		EndedAt:          pgconv.TimePtrFromPgtype(row.EndedAt),
		Diagnosis:        pgconv.StringFromPgtype(row.Diagnosis),
		RequestedChanges: pgconv.StringFromPgtype(row.RequestedChanges),
		MeasuredKm:       row.MeasuredKm,
		PreviousKm:       row.PreviousKm,
		Requested:        []queries.PartView{},
		Adjusted:         []queries.PartView{},
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	for _, p := range parts {
		pv := queries.PartView{
			ID:       p.PartID,
			Brand:    p.Brand,
			Product:  p.Product,
			Quantity: int(p.Quantity),
		}
		if p.UnitPrice.Valid {
			price := p.UnitPrice.Decimal
			pv.UnitPrice = &price
		}
		switch p.Line {
		case converter.LineRequested:
			view.Requested = append(view.Requested, pv)
		case converter.LineAdjusted:
			view.Adjusted = append(view.Adjusted, pv)
		}
	}
	return view
}
