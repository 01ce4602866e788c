package queries

//go:generate mockgen -source=inventory.go -destination=../../../tests/mock/queries/inventory.go -package=queriesmock

import (
	"context"
	"strings"
)

type InventoryReadStore interface {
	FindPart(ctx context.Context, id string) (*PartStockView, error)
	ListParts(ctx context.Context) ([]*PartStockView, error)
}

type InventoryQueries interface {
	GetPart(ctx context.Context, id string) (*PartStockView, error)
	ListParts(ctx context.Context) ([]*PartStockView, error)
}

type inventoryQueriesImpl struct {
	store InventoryReadStore
}

func NewInventoryQueries(store InventoryReadStore) InventoryQueries {
	return &inventoryQueriesImpl{store: store}
}

func (q *inventoryQueriesImpl) GetPart(ctx context.Context, id string) (*PartStockView, error) {
	return q.store.FindPart(ctx, strings.TrimSpace(id))
}

func (q *inventoryQueriesImpl) ListParts(ctx context.Context) ([]*PartStockView, error) {
	return q.store.ListParts(ctx)
}
