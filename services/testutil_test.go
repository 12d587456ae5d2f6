package services

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/expenseinsight/expense-api/config"
)

// newTestDB opens an in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err, "failed to open test database")
	db.SetMaxOpenConns(1)

	require.NoError(t, config.RunMigrations(db), "failed to run migrations")

	t.Cleanup(func() { db.Close() })
	return db
}
