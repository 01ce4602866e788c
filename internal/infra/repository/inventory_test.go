//go:build unit

package repository_test

import (
	"context"
	"testing"

	"fleet-workflow/internal/domain/inventory"
	"fleet-workflow/internal/infra"
	"fleet-workflow/internal/infra/repository"
	sqlc "fleet-workflow/internal/infra/sqlc/generated"
	"fleet-workflow/internal/pkg/errs"
	"fleet-workflow/tests/common/builder"
	repositorymock "fleet-workflow/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func stockRow(id string, available, reserved, consumed int) sqlc.Parts {
	return builder.NewStockBuilder().With(func(b *builder.StockBuilder) {
		b.ID = id
		b.Available = available
		b.Reserved = reserved
		b.Consumed = consumed
	}).BuildInfra()
}

func newInventoryRepo(t *testing.T) (*repository.InventoryRepository, *repositorymock.MockInventoryWriteQueries, sqlc.DBTX) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockInventoryWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	return repository.NewInventoryRepository(mockQueries, mockDB), mockQueries, mockDB
}

// =============================================================================
// VerifyAndReserve Tests
// =============================================================================

func TestInventoryRepository_VerifyAndReserve(t *testing.T) {
	ctx := context.Background()

	t.Run("success: rows locked in id order and moved to reserved", func(t *testing.T) {
		repo, mockQueries, mockDB := newInventoryRepo(t)
		parts := builder.BuildParts(
			builder.PartSpec{ID: "P2", Quantity: 1},
			builder.PartSpec{ID: "P1", Quantity: 2},
		)

		mockQueries.EXPECT().LockPartsForUpdate(ctx, mockDB, []string{"P1", "P2"}).
			Return([]sqlc.Parts{stockRow("P1", 5, 0, 0), stockRow("P2", 1, 0, 0)}, nil)
		gomock.InOrder(
			mockQueries.EXPECT().UpdatePartQuantities(ctx, mockDB, sqlc.UpdatePartQuantitiesParams{ID: "P1", Available: 3, Reserved: 2}).Return(int64(1), nil),
			mockQueries.EXPECT().UpdatePartQuantities(ctx, mockDB, sqlc.UpdatePartQuantitiesParams{ID: "P2", Available: 0, Reserved: 1}).Return(int64(1), nil),
		)

		require.NoError(t, repo.VerifyAndReserve(ctx, mockDB, parts))
	})

	t.Run("error: shortfall on any part writes nothing", func(t *testing.T) {
		repo, mockQueries, mockDB := newInventoryRepo(t)
		parts := builder.BuildParts(
			builder.PartSpec{ID: "P1", Quantity: 2},
			builder.PartSpec{ID: "P2", Quantity: 3},
		)

		mockQueries.EXPECT().LockPartsForUpdate(ctx, mockDB, []string{"P1", "P2"}).
			Return([]sqlc.Parts{stockRow("P1", 5, 0, 0), stockRow("P2", 1, 0, 0)}, nil)

		err := repo.VerifyAndReserve(ctx, mockDB, parts)
		require.Error(t, err)
		assert.Equal(t, errs.KindInsufficientStock, errs.KindOf(err))
		assert.Contains(t, errs.Details(err), "insufficient stock for part P2")
	})

	t.Run("error: unknown part is not found", func(t *testing.T) {
		repo, mockQueries, mockDB := newInventoryRepo(t)
		parts := builder.BuildParts(builder.PartSpec{ID: "P9", Quantity: 1})

		mockQueries.EXPECT().LockPartsForUpdate(ctx, mockDB, []string{"P9"}).Return(nil, nil)

		err := repo.VerifyAndReserve(ctx, mockDB, parts)
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})

	t.Run("error: empty list is rejected before locking", func(t *testing.T) {
		repo, _, mockDB := newInventoryRepo(t)

		err := repo.VerifyAndReserve(ctx, mockDB, nil)
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	})

	t.Run("error: duplicate ids are rejected before locking", func(t *testing.T) {
		repo, _, mockDB := newInventoryRepo(t)
		parts := builder.BuildParts(
			builder.PartSpec{ID: "P1", Quantity: 1},
			builder.PartSpec{ID: "P1", Quantity: 1},
		)

		err := repo.VerifyAndReserve(ctx, mockDB, parts)
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	})
}

// =============================================================================
// Release / FinalizeConsumption Tests
// =============================================================================

func TestInventoryRepository_Release(t *testing.T) {
	ctx := context.Background()
	repo, mockQueries, mockDB := newInventoryRepo(t)

	mockQueries.EXPECT().LockPartsForUpdate(ctx, mockDB, []string{"P1"}).Return([]sqlc.Parts{stockRow("P1", 3, 2, 0)}, nil)
	mockQueries.EXPECT().UpdatePartQuantities(ctx, mockDB, sqlc.UpdatePartQuantitiesParams{ID: "P1", Available: 5}).Return(int64(1), nil)

	require.NoError(t, repo.Release(ctx, mockDB, builder.BuildParts(builder.PartSpec{ID: "P1", Quantity: 2})))
}

func TestInventoryRepository_FinalizeConsumption(t *testing.T) {
	ctx := context.Background()
	repo, mockQueries, mockDB := newInventoryRepo(t)

	mockQueries.EXPECT().LockPartsForUpdate(ctx, mockDB, []string{"P1"}).Return([]sqlc.Parts{stockRow("P1", 3, 2, 0)}, nil)
	mockQueries.EXPECT().UpdatePartQuantities(ctx, mockDB, sqlc.UpdatePartQuantitiesParams{ID: "P1", Available: 3, Reserved: 1, Consumed: 1}).Return(int64(1), nil)

	require.NoError(t, repo.FinalizeConsumption(ctx, mockDB, builder.BuildParts(builder.PartSpec{ID: "P1", Quantity: 1})))
}

func TestInventoryRepository_EmptyMovementIsNoop(t *testing.T) {
	repo, _, mockDB := newInventoryRepo(t)

	assert.NoError(t, repo.Release(context.Background(), mockDB, nil))
	assert.NoError(t, repo.FinalizeConsumption(context.Background(), mockDB, builder.BuildParts(builder.PartSpec{ID: "P1", Quantity: 0})))
}

// =============================================================================
// Restock Tests
// =============================================================================

func TestInventoryRepository_Restock(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo, mockQueries, mockDB := newInventoryRepo(t)

		mockQueries.EXPECT().LockPartForUpdate(ctx, mockDB, "P1").Return(stockRow("P1", 1, 2, 3), nil)
		mockQueries.EXPECT().UpdatePartQuantities(ctx, mockDB, sqlc.UpdatePartQuantitiesParams{ID: "P1", Available: 5, Reserved: 2, Consumed: 3}).Return(int64(1), nil)

		stock, err := repo.Restock(ctx, mockDB, "P1", 4)
		require.NoError(t, err)
		assert.Equal(t, 5, stock.Available())
	})

	t.Run("error: unknown part", func(t *testing.T) {
		repo, mockQueries, mockDB := newInventoryRepo(t)

		mockQueries.EXPECT().LockPartForUpdate(ctx, mockDB, "P9").Return(sqlc.Parts{}, pgx.ErrNoRows)

		_, err := repo.Restock(ctx, mockDB, "P9", 4)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: quantity past the column range writes nothing", func(t *testing.T) {
		repo, mockQueries, mockDB := newInventoryRepo(t)

		mockQueries.EXPECT().LockPartForUpdate(ctx, mockDB, "P1").Return(stockRow("P1", 5, 0, 0), nil)

		require.NotPanics(t, func() {
			_, err := repo.Restock(ctx, mockDB, "P1", inventory.MaxQuantity)
			assert.True(t, errs.Is(err, inventory.ErrQuantityTooLarge))
			assert.Equal(t, errs.KindValidation, errs.KindOf(err))
		})
	})
}
