//go:build integration

package integration

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	testDB  *sql.DB
	testRDB *redis.Client
)

// resetTestData clears the historical entries table and flushes the current
// Redis database so each test starts from an empty state.
func resetTestData(t *testing.T) {
	t.Helper()

	_, err := testDB.ExecContext(context.Background(), "TRUNCATE TABLE historical_entries")
	if err != nil {
		t.Fatalf("failed to truncate historical_entries: %v", err)
	}

	if err := testRDB.FlushDB(context.Background()).Err(); err != nil {
		t.Fatalf("failed to flush redis: %v", err)
	}
}

// insertEntry adds one historical entry row at the given position.
func insertEntry(t *testing.T, position int, name, unit string, modernUSD float64) {
	t.Helper()

	_, err := testDB.ExecContext(context.Background(),
		`INSERT INTO historical_entries (position, name, unit, year_range, note, modern_usd)
		 VALUES ($1, $2, $3, '', '', $4)`,
		position, name, unit, modernUSD)
	if err != nil {
		t.Fatalf("failed to insert historical entry %q: %v", name, err)
	}
}

// testContext returns a context with a 30-second deadline tied to the test's cleanup.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}
