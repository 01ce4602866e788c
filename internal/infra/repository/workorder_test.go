//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"fleet-workflow/internal/domain/workorder"
	"fleet-workflow/internal/infra"
	"fleet-workflow/internal/infra/repository"
	sqlc "fleet-workflow/internal/infra/sqlc/generated"
	"fleet-workflow/internal/pkg/errs"
	"fleet-workflow/tests/common/builder"
	repositorymock "fleet-workflow/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Tests
// =============================================================================

func TestWorkOrderRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockWorkOrderWriteQueries, *workorder.WorkOrder, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: row and requested parts are stored",
			setupMock: func(mock *repositorymock.MockWorkOrderWriteQueries, w *workorder.WorkOrder, tx sqlc.DBTX) {
				mock.EXPECT().CreateWorkOrder(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateWorkOrderParams) error {
						assert.Equal(t, w.ID(), arg.ID)
						assert.Equal(t, "pendiente", arg.Status)
						assert.False(t, arg.Diagnosis.Valid)
						return nil
					})
				mock.EXPECT().InsertWorkOrderPart(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertWorkOrderPartParams) error {
						assert.Equal(t, "requested", arg.Line)
						assert.Equal(t, "P1", arg.PartID)
						assert.Equal(t, int32(2), arg.Quantity)
						assert.False(t, arg.UnitPrice.Valid)
						return nil
					})
			},
		},
		{
			name: "error: unknown plate violates foreign key",
			setupMock: func(mock *repositorymock.MockWorkOrderWriteQueries, w *workorder.WorkOrder, tx sqlc.DBTX) {
				mock.EXPECT().CreateWorkOrder(ctx, tx, gomock.Any()).Return(pgError("23503"))
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
		{
			name: "error: part insert fails",
			setupMock: func(mock *repositorymock.MockWorkOrderWriteQueries, w *workorder.WorkOrder, tx sqlc.DBTX) {
				mock.EXPECT().CreateWorkOrder(ctx, tx, gomock.Any()).Return(nil)
				mock.EXPECT().InsertWorkOrderPart(ctx, tx, gomock.Any()).Return(errors.New("connection reset"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockWorkOrderWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewWorkOrderRepository(mockQueries, mockDB)

			w := builder.NewWorkOrderBuilder().WithStatus(workorder.StatusPendiente).BuildDomain()
			tc.setupMock(mockQueries, w, mockDB)

			err := repo.Create(ctx, mockDB, w)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// =============================================================================
// FindForUpdate Tests
// =============================================================================

func TestWorkOrderRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: parts are split by line and priced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockWorkOrderWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewWorkOrderRepository(mockQueries, mockDB)

		b := builder.NewWorkOrderBuilder().
			WithStatus(workorder.StatusAprobado).
			WithRequested(builder.PartSpec{ID: "P1", Quantity: 2}, builder.PartSpec{ID: "P2", Quantity: 1}).
			WithAdjusted(builder.PartSpec{ID: "P1", Quantity: 1, Price: builder.Price(10)})
		row, lines := b.BuildInfra()

		mockQueries.EXPECT().GetWorkOrderForUpdate(ctx, mockDB, b.ID).Return(row, nil)
		mockQueries.EXPECT().ListWorkOrderParts(ctx, mockDB, []uuid.UUID{b.ID}).Return(lines, nil)

		w, err := repo.FindForUpdate(ctx, mockDB, b.ID)
		require.NoError(t, err)

		assert.Equal(t, workorder.StatusAprobado, w.Status())
		assert.Equal(t, []string{"P1", "P2"}, w.Requested().IDs())
		require.Equal(t, 1, w.Adjusted().Len())
		price, ok := w.Adjusted()[0].UnitPrice()
		require.True(t, ok)
		assert.True(t, decimal.NewFromInt(10).Equal(price))
		assert.Equal(t, int32(1), w.Version())
	})

	t.Run("error: missing order is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockWorkOrderWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewWorkOrderRepository(mockQueries, mockDB)

		id := uuid.New()
		mockQueries.EXPECT().GetWorkOrderForUpdate(ctx, mockDB, id).Return(sqlc.WorkOrders{}, pgx.ErrNoRows)

		_, err := repo.FindForUpdate(ctx, mockDB, id)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})
}

// =============================================================================
// Update Tests
// =============================================================================

func TestWorkOrderRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success: version guarded update rewrites both lines", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockWorkOrderWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewWorkOrderRepository(mockQueries, mockDB)

		w := builder.NewWorkOrderBuilder().
			WithStatus(workorder.StatusAprobado).
			WithAdjusted(builder.PartSpec{ID: "P1", Quantity: 2, Price: builder.Price(10)}).
			With(func(b *builder.WorkOrderBuilder) { b.Version = 4 }).
			BuildDomain()

		gomock.InOrder(
			mockQueries.EXPECT().UpdateWorkOrder(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateWorkOrderParams) (int64, error) {
					assert.Equal(t, int32(4), arg.Version)
					assert.Equal(t, "aprobado", arg.Status)
					return 1, nil
				}),
			mockQueries.EXPECT().DeleteWorkOrderParts(ctx, mockDB, sqlc.DeleteWorkOrderPartsParams{WorkOrderID: w.ID(), Line: "requested"}).Return(nil),
			mockQueries.EXPECT().InsertWorkOrderPart(ctx, mockDB, gomock.Any()).Return(nil),
			mockQueries.EXPECT().DeleteWorkOrderParts(ctx, mockDB, sqlc.DeleteWorkOrderPartsParams{WorkOrderID: w.ID(), Line: "adjusted"}).Return(nil),
			mockQueries.EXPECT().InsertWorkOrderPart(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertWorkOrderPartParams) error {
					assert.Equal(t, "adjusted", arg.Line)
					assert.True(t, arg.UnitPrice.Valid)
					return nil
				}),
		)

		require.NoError(t, repo.Update(ctx, mockDB, w))
	})

	t.Run("error: stale version is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockWorkOrderWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewWorkOrderRepository(mockQueries, mockDB)

		w := builder.NewWorkOrderBuilder().WithStatus(workorder.StatusPendiente).BuildDomain()
		mockQueries.EXPECT().UpdateWorkOrder(ctx, mockDB, gomock.Any()).Return(int64(0), nil)

		err := repo.Update(ctx, mockDB, w)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
		assert.Equal(t, errs.KindConflict, errs.KindOf(err))
	})
}
