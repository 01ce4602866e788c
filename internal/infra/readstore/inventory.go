package readstore

//go:generate mockgen -source=inventory.go -destination=../../../tests/mock/readstore/inventory.go -package=readstoremock

import (
	"context"

	"fleet-workflow/internal/infra"
	sqlc "fleet-workflow/internal/infra/sqlc/generated"
	"fleet-workflow/internal/pkg/pgconv"
	"fleet-workflow/internal/usecase/queries"
)

type InventoryReadQueries interface {
	GetPart(ctx context.Context, db sqlc.DBTX, id string) (sqlc.Parts, error)
	ListParts(ctx context.Context, db sqlc.DBTX) ([]sqlc.Parts, error)
}

type InventoryReadStore struct {
	queries InventoryReadQueries
	db      sqlc.DBTX
}

func NewInventoryReadStore(queries InventoryReadQueries, db sqlc.DBTX) *InventoryReadStore {
	return &InventoryReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *InventoryReadStore) FindPart(ctx context.Context, id string) (*queries.PartStockView, error) {
	row, err := s.queries.GetPart(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("part not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get part", err)
	}
	return toPartStockView(row), nil
}

func (s *InventoryReadStore) ListParts(ctx context.Context) ([]*queries.PartStockView, error) {
	rows, err := s.queries.ListParts(ctx, s.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list parts", err)
	}
	result := make([]*queries.PartStockView, len(rows))
	for i, row := range rows {
		result[i] = toPartStockView(row)
	}
	return result, nil
}

func toPartStockView(row sqlc.Parts) *queries.PartStockView {
	return &queries.PartStockView{
		ID:        row.ID,
		Brand:     row.Brand,
		Product:   row.Product,
		Available: int(row.Available),
		Reserved:  int(row.Reserved),
		Consumed:  int(row.Consumed),
		Total:     int(row.Available + row.Reserved + row.Consumed),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
