//go:build unit

package pgconv_test

import (
	"database/sql"
	"fmt"
	"math"
	"testing"
	"time"

	"fleet-workflow/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestNullableConversions(t *testing.T) {
	assert.Nil(t, pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(nil)))

	now := time.Date(2024, time.May, 5, 10, 0, 0, 0, time.UTC)
	got := pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(&now))
	if assert.NotNil(t, got) {
		assert.True(t, now.Equal(*got))
	}

	assert.False(t, pgconv.OptionalStringToPgtype("").Valid)
	assert.Equal(t, "diag", pgconv.StringFromPgtype(pgconv.OptionalStringToPgtype("diag")))
	assert.Equal(t, int64(0), pgconv.Int64FromPgtype(pgconv.Int64ToPgtype(0)))
}

func TestErrorHelpers(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(fmt.Errorf("wrapped: %w", pgx.ErrNoRows)))
	assert.True(t, pgconv.IsNoRows(sql.ErrNoRows))
	assert.False(t, pgconv.IsNoRows(assert.AnError))

	pgErr := &pgconn.PgError{Code: "40001"}
	assert.Equal(t, "40001", pgconv.PgErrorCode(fmt.Errorf("tx: %w", pgErr)))
	assert.Equal(t, "", pgconv.PgErrorCode(assert.AnError))
}

func TestIntToInt32(t *testing.T) {
	assert.Equal(t, int32(42), pgconv.IntToInt32(42))
	assert.Panics(t, func() { pgconv.IntToInt32(math.MaxInt32 + 1) })
}
