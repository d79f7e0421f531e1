package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/n8nops/roi-dashboard/pkg/database"
)

// setupTestDB opens an in-memory database with the full schema applied.
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	logger := zap.NewNop()
	// A single connection keeps the in-memory database alive for the whole
	// test.
	db, err := database.New(database.Config{
		Path:         ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	migrator := database.NewMigrator(db, logger)
	require.NoError(t, migrator.Run("../../migrations"))

	return db
}

func seedClient(t *testing.T, db *database.DB, id, name, code string) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO clients (id, name, code, currency_code) VALUES (?, ?, ?, 'GBP')",
		id, name, code,
	)
	require.NoError(t, err)
}

func seedWorkflow(t *testing.T, db *database.DB, id, clientID, name string, active bool) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO workflows (id, client_id, name, is_active) VALUES (?, ?, ?, ?)",
		id, clientID, name, active,
	)
	require.NoError(t, err)
}

func seedExecution(t *testing.T, db *database.DB, workflowID, clientID, status string, startedAt time.Time) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO executions (workflow_id, client_id, status, started_at, duration_ms) VALUES (?, ?, ?, ?, 1200)",
		workflowID, clientID, status, startedAt,
	)
	require.NoError(t, err)
}
