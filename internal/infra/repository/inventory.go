package repository

//go:generate mockgen -source=inventory.go -destination=../../../tests/mock/repository/inventory.go -package=repositorymock

import (
	"context"
	"fmt"
	"sort"

	"fleet-workflow/internal/domain/inventory"
	"fleet-workflow/internal/domain/workorder"
	"fleet-workflow/internal/infra"
	"fleet-workflow/internal/infra/repository/converter"
	sqlc "fleet-workflow/internal/infra/sqlc/generated"
	"fleet-workflow/internal/pkg/errs"
	"fleet-workflow/internal/pkg/pgconv"
)

type InventoryWriteQueries interface {
	CreatePart(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePartParams) (sqlc.Parts, error)
	LockPartForUpdate(ctx context.Context, db sqlc.DBTX, id string) (sqlc.Parts, error)
	LockPartsForUpdate(ctx context.Context, db sqlc.DBTX, ids []string) ([]sqlc.Parts, error)
	UpdatePartQuantities(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePartQuantitiesParams) (int64, error)
}

// InventoryRepository applies reservation movements. Every movement locks the
// affected SKU rows in id order, computes the new counters in the domain and
// writes them back, so two orders never interleave on the same SKU.
type InventoryRepository struct {
	queries InventoryWriteQueries
	db      sqlc.DBTX
}

func NewInventoryRepository(queries InventoryWriteQueries, db sqlc.DBTX) *InventoryRepository {
	return &InventoryRepository{
		queries: queries,
		db:      db,
	}
}

// VerifyAndReserve reserves every part or none. Availability is checked for
// the whole list before any row is written.
func (r *InventoryRepository) VerifyAndReserve(ctx context.Context, tx sqlc.DBTX, parts workorder.PartList) error {
	if _, err := workorder.NewPartList(parts...); err != nil {
		return err
	}
	return r.move(ctx, tx, parts, func(s inventory.Stock, q int) (inventory.Stock, error) {
		return s.Reserve(q)
	})
}

func (r *InventoryRepository) Release(ctx context.Context, tx sqlc.DBTX, parts workorder.PartList) error {
	return r.move(ctx, tx, parts, func(s inventory.Stock, q int) (inventory.Stock, error) {
		return s.Release(q), nil
	})
}

func (r *InventoryRepository) FinalizeConsumption(ctx context.Context, tx sqlc.DBTX, parts workorder.PartList) error {
	return r.move(ctx, tx, parts, func(s inventory.Stock, q int) (inventory.Stock, error) {
		return s.Finalize(q), nil
	})
}

func (r *InventoryRepository) CreatePart(ctx context.Context, tx sqlc.DBTX, stock inventory.Stock) (inventory.Stock, error) {
	row, err := r.queries.CreatePart(ctx, tx, sqlc.CreatePartParams{
		ID:        stock.ID(),
		Brand:     stock.Brand(),
		Product:   stock.Product(),
		Available: pgconv.IntToInt32(stock.Available()),
	})
	if err != nil {
		return inventory.Stock{}, infra.WrapRepoErr("failed to create part", err)
	}
	return converter.StockToDomain(row), nil
}

func (r *InventoryRepository) Restock(ctx context.Context, tx sqlc.DBTX, id string, quantity int) (inventory.Stock, error) {
	row, err := r.queries.LockPartForUpdate(ctx, tx, id)
	if err != nil {
		return inventory.Stock{}, infra.WrapRepoErr(fmt.Sprintf("failed to lock part %s", id), err)
	}
	stock, err := converter.StockToDomain(row).Restock(quantity)
	if err != nil {
		return inventory.Stock{}, err
	}
	if err := r.save(ctx, tx, stock); err != nil {
		return inventory.Stock{}, err
	}
	return stock, nil
}

type movement func(s inventory.Stock, quantity int) (inventory.Stock, error)

func (r *InventoryRepository) move(ctx context.Context, tx sqlc.DBTX, parts workorder.PartList, apply movement) error {
	parts = parts.NonZero()
	if parts.Len() == 0 {
		return nil
	}

	ids := parts.IDs()
	sort.Strings(ids)
	rows, err := r.queries.LockPartsForUpdate(ctx, tx, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to lock parts", err)
	}

	locked := make(map[string]inventory.Stock, len(rows))
	for _, row := range rows {
		locked[row.ID] = converter.StockToDomain(row)
	}

	next := make([]inventory.Stock, 0, parts.Len())
	for _, p := range parts.SortedByID() {
		stock, ok := locked[p.ID()]
		if !ok {
			return errs.WithDetail(
				errs.Wrapf(errs.ErrNotFound, "part %s does not exist", p.ID()),
				fmt.Sprintf("unknown part %s", p.ID()),
			)
		}
		moved, err := apply(stock, p.Quantity())
		if err != nil {
			return err
		}
		next = append(next, moved)
	}

	for _, stock := range next {
		if err := r.save(ctx, tx, stock); err != nil {
			return err
		}
	}
	return nil
}

func (r *InventoryRepository) save(ctx context.Context, tx sqlc.DBTX, stock inventory.Stock) error {
	affected, err := r.queries.UpdatePartQuantities(ctx, tx, converter.StockToUpdateParams(stock))
	if err != nil {
		return infra.WrapRepoErr(fmt.Sprintf("failed to update part %s", stock.ID()), err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(fmt.Sprintf("part %s disappeared", stock.ID()), nil, infra.KindNotFound)
	}
	return nil
}
