//go:build unit || e2e

package dbtest

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"fleet-workflow/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestVehicle(t *testing.T, db DBLike, plate, client string, odometer int64) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO vehicles (plate, client, brand, model, contract_type, odometer) VALUES ($1, $2, 'Toyota', 'Hilux', 'leasing', $3) ON CONFLICT (plate) DO NOTHING",
		plate, client, odometer)
	require.NoError(t, err)
}

func CreateTestPart(t *testing.T, db DBLike, id, product string, available int) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO parts (id, brand, product, available) VALUES ($1, 'Bosch', $2, $3) ON CONFLICT (id) DO NOTHING",
		id, product, available)
	require.NoError(t, err)
}

// CreateTestScheduledOrder inserts a programado order directly, bypassing the workflow.
func CreateTestScheduledOrder(t *testing.T, db DBLike, plate string, scheduledAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO work_orders (id, plate, kind, status, scheduled_at) VALUES ($1, $2, 'preventivo', 'programado', $3)",
		id, plate, scheduledAt)
	require.NoError(t, err)
	return id
}

// PartQuantities reads the three buckets of one SKU.
func PartQuantities(t *testing.T, db DBLike, id string) (available, reserved, consumed int) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		"SELECT available, reserved, consumed FROM parts WHERE id = $1", id).
		Scan(&available, &reserved, &consumed)
	require.NoError(t, err)
	return available, reserved, consumed
}

func CountNotifications(t *testing.T, db DBLike, channel string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notifications WHERE channel = $1", channel).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return errs.New("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
