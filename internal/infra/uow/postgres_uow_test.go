//go:build unit

package uow

import (
	"context"
	"fmt"
	"testing"
	"time"

	"fleet-workflow/internal/domain/inventory"
	"fleet-workflow/internal/infra"
	"fleet-workflow/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRetryableError(t *testing.T) {
	serialization := &pgconn.PgError{Code: "40001"}

	assert.True(t, isRetryableError(serialization))
	assert.True(t, isRetryableError(&pgconn.PgError{Code: "40P01"}))
	assert.True(t, isRetryableError(fmt.Errorf("commit: %w", serialization)))
	assert.True(t, isRetryableError(infra.WrapRepoErr("failed to lock parts", serialization)))
	assert.False(t, isRetryableError(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isRetryableError(assert.AnError))
}

func TestShouldRetry(t *testing.T) {
	retryable := &pgconn.PgError{Code: "40001"}

	assert.True(t, shouldRetry(retryable, 0, 3))
	assert.False(t, shouldRetry(retryable, 3, 3))
	assert.False(t, shouldRetry(assert.AnError, 0, 3))
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond

	for attempt := range 3 {
		wait := calculateBackoff(attempt, base)
		floor := time.Duration(1<<attempt) * base

		assert.GreaterOrEqual(t, wait, floor)
		assert.Less(t, wait, floor+floor/5)
	}
}

// recordingTx is a pgx.Tx that only tracks how it was finished.
type recordingTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *recordingTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *recordingTx) Rollback(context.Context) error {
	if t.committed {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}

func TestRunOnce(t *testing.T) {
	ctx := context.Background()
	u := &PostgresUoW{}

	t.Run("commits when fn succeeds", func(t *testing.T) {
		tx := &recordingTx{}

		err := u.runOnce(ctx, tx, func(context.Context, shared.Tx) error { return nil })

		require.NoError(t, err)
		assert.True(t, tx.committed)
		assert.False(t, tx.rolledBack)
	})

	t.Run("rolls back when fn fails", func(t *testing.T) {
		tx := &recordingTx{}

		err := u.runOnce(ctx, tx, func(context.Context, shared.Tx) error { return assert.AnError })

		assert.ErrorIs(t, err, assert.AnError)
		assert.False(t, tx.committed)
		assert.True(t, tx.rolledBack)
	})

	t.Run("rolls back before a panic propagates", func(t *testing.T) {
		tx := &recordingTx{}
		violation := inventory.InvariantViolation{SKU: "P1", Reason: "release 3 exceeds reserved 1"}

		assert.PanicsWithValue(t, violation, func() {
			_ = u.runOnce(ctx, tx, func(context.Context, shared.Tx) error { panic(violation) })
		})
		assert.False(t, tx.committed)
		assert.True(t, tx.rolledBack)
	})
}
