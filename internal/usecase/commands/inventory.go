package commands

//go:generate mockgen -source=inventory.go -destination=../../../tests/mock/commands/inventory.go -package=commandsmock

import (
	"context"
	"strings"

	"fleet-workflow/internal/domain/inventory"
	"fleet-workflow/internal/usecase/shared"
)

type CreatePartRequest struct {
	ID        string
	Brand     string
	Product   string
	Available int
}

type InventoryCommands interface {
	CreatePart(ctx context.Context, req CreatePartRequest) (inventory.Stock, error)
	Restock(ctx context.Context, id string, quantity int) (inventory.Stock, error)
}

type inventoryUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewInventoryUseCase(uow shared.UnitOfWork) InventoryCommands {
	return &inventoryUseCaseImpl{uow: uow}
}

func (uc *inventoryUseCaseImpl) CreatePart(ctx context.Context, req CreatePartRequest) (inventory.Stock, error) {
	stock, err := inventory.NewStock(req.ID, req.Brand, req.Product, req.Available)
	if err != nil {
		return inventory.Stock{}, err
	}

	var created inventory.Stock
	err = uc.uow.Within(context.WithoutCancel(ctx), func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Inventory().CreatePart(ctx, tx.DB(), stock)
		if err != nil {
			return err
		}
		created = s
		return nil
	})
	if err != nil {
		return inventory.Stock{}, err
	}
	return created, nil
}

func (uc *inventoryUseCaseImpl) Restock(ctx context.Context, id string, quantity int) (inventory.Stock, error) {
	if quantity <= 0 {
		return inventory.Stock{}, inventory.ErrInvalidQuantity
	}

	var updated inventory.Stock
	err := uc.uow.Within(context.WithoutCancel(ctx), func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Inventory().Restock(ctx, tx.DB(), strings.TrimSpace(id), quantity)
		if err != nil {
			return err
		}
		updated = s
		return nil
	})
	if err != nil {
		return inventory.Stock{}, err
	}
	return updated, nil
}
