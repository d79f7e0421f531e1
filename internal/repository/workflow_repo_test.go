package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/n8nops/roi-dashboard/internal/models"
)

func TestClientRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientRepository(db, zap.NewNop())

	seedClient(t, db, "client-1", "Acme Ltd", "acme")

	t.Run("existing client", func(t *testing.T) {
		client, err := repo.GetByID("client-1")
		require.NoError(t, err)
		require.NotNil(t, client)
		assert.Equal(t, "Acme Ltd", client.Name)
		assert.Equal(t, "acme", client.Code)
		assert.Equal(t, "GBP", client.CurrencyCode)
	})

	t.Run("missing client returns nil", func(t *testing.T) {
		client, err := repo.GetByID("nope")
		require.NoError(t, err)
		assert.Nil(t, client)
	})
}

func TestWorkflowRepository_ListAndCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkflowRepository(db, zap.NewNop())

	seedClient(t, db, "client-1", "Acme Ltd", "acme")
	seedWorkflow(t, db, "wf-1", "client-1", "Invoices", true)
	seedWorkflow(t, db, "wf-2", "client-1", "Reports", true)
	seedWorkflow(t, db, "wf-3", "client-1", "Retired", false)

	workflows, err := repo.ListActiveByClient("client-1")
	require.NoError(t, err)
	require.Len(t, workflows, 2, "inactive workflows are excluded")

	count, err := repo.CountActiveByClient("client-1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestWorkflowRepository_GetStats(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkflowRepository(db, zap.NewNop())

	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	seedClient(t, db, "client-1", "Acme Ltd", "acme")
	seedWorkflow(t, db, "wf-1", "client-1", "Invoices", true)

	// Three recent executions, one outside the 24h window.
	seedExecution(t, db, "wf-1", "client-1", models.ExecutionStatusSuccess, now.Add(-1*time.Hour))
	seedExecution(t, db, "wf-1", "client-1", models.ExecutionStatusSuccess, now.Add(-2*time.Hour))
	seedExecution(t, db, "wf-1", "client-1", models.ExecutionStatusError, now.Add(-3*time.Hour))
	seedExecution(t, db, "wf-1", "client-1", models.ExecutionStatusSuccess, now.Add(-30*time.Hour))

	stats, err := repo.GetStats("client-1", now)
	require.NoError(t, err)
	require.Len(t, stats, 1)

	s := stats[0]
	assert.Equal(t, "wf-1", s.WorkflowID)
	assert.Equal(t, 3, s.Executions24h)
	assert.Equal(t, 2, s.Success24h)
	assert.Equal(t, 1, s.Errors24h)
	assert.InDelta(t, 66.67, s.SuccessRate24h, 0.01)
	require.NotNil(t, s.LastExecution)
}

func TestWorkflowRepository_GetStats_NoExecutions(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkflowRepository(db, zap.NewNop())

	seedClient(t, db, "client-1", "Acme Ltd", "acme")
	seedWorkflow(t, db, "wf-1", "client-1", "Idle", true)

	stats, err := repo.GetStats("client-1", time.Now())
	require.NoError(t, err)
	require.Len(t, stats, 1)

	assert.Zero(t, stats[0].Executions24h)
	assert.Zero(t, stats[0].SuccessRate24h)
	assert.Nil(t, stats[0].LastExecution)
}

func TestWorkflowRepository_GetClientSummary(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkflowRepository(db, zap.NewNop())

	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	seedClient(t, db, "client-1", "Acme Ltd", "acme")
	seedWorkflow(t, db, "wf-1", "client-1", "Invoices", true)
	seedWorkflow(t, db, "wf-2", "client-1", "Reports", true)
	seedExecution(t, db, "wf-1", "client-1", models.ExecutionStatusSuccess, now.Add(-1*time.Hour))
	seedExecution(t, db, "wf-2", "client-1", models.ExecutionStatusError, now.Add(-2*time.Hour))

	summary, err := repo.GetClientSummary("client-1", now)
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Equal(t, "Acme Ltd", summary.ClientName)
	assert.Equal(t, 2, summary.TotalWorkflows)
	assert.Equal(t, 2, summary.Executions24h)
	assert.Equal(t, 1, summary.Success24h)
	assert.Equal(t, 1, summary.Errors24h)
	assert.Equal(t, 50.0, summary.SuccessRate24h)
}

func TestWorkflowRepository_GetClientSummary_MissingClient(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkflowRepository(db, zap.NewNop())

	summary, err := repo.GetClientSummary("nope", time.Now())
	require.NoError(t, err)
	assert.Nil(t, summary)
}
