package testdb

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/coursekit/course-api/internal/ciutil"
	"github.com/coursekit/course-api/internal/platform/logger"
	"github.com/coursekit/course-api/internal/platform/postgres"
)

// TestTimeout bounds connection and migration work done by this package.
const TestTimeout = 30 * time.Second

var (
	migrateOnce sync.Once
	migrateErr  error
)

// GetTestDBWithT connects to the test database and applies the migrations
// once per test binary. The connection is closed when t finishes.
func GetTestDBWithT(t testing.TB) *sql.DB {
	t.Helper()

	url := ciutil.TestDatabaseURL(nil)
	if url == "" {
		if ciutil.IsCI() {
			t.Fatalf("%s must be set for integration tests in CI", ciutil.EnvTestDatabaseURL)
		}
		t.Skipf("integration test skipped: %s is not set", ciutil.EnvTestDatabaseURL)
	}

	log, _ := logger.GetTestLogger(t)
	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	db, err := postgres.Open(ctx, url, log)
	require.NoError(t, err, "failed to connect to the test database")
	t.Cleanup(func() { _ = db.Close() })

	migrateOnce.Do(func() {
		migrateErr = postgres.Migrate(ctx, db, postgres.MigrateUp, log)
	})
	require.NoError(t, migrateErr, "failed to migrate the test database")
	return db
}

// WithTx runs fn inside a transaction that is rolled back afterwards, even
// when fn panics or fails the test.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err, "failed to begin transaction")
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("failed to roll back test transaction: %v", err)
		}
	}()

	fn(t, tx)
}
