package repository

import (
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/n8nops/roi-dashboard/internal/models"
	"github.com/n8nops/roi-dashboard/pkg/database"
)

// WorkflowRepository handles workflow database operations and the
// execution aggregates behind the dashboard's stats views.
type WorkflowRepository struct {
	db     *database.DB
	logger *zap.Logger
}

// NewWorkflowRepository creates a new workflow repository
func NewWorkflowRepository(db *database.DB, logger *zap.Logger) *WorkflowRepository {
	return &WorkflowRepository{
		db:     db,
		logger: logger,
	}
}

// ListActiveByClient retrieves a client's active workflows in display order.
func (r *WorkflowRepository) ListActiveByClient(clientID string) ([]*models.Workflow, error) {
	query := `
		SELECT id, client_id, name, is_active, display_order, created_at
		FROM workflows
		WHERE client_id = ? AND is_active = 1
		ORDER BY display_order, name
	`

	rows, err := r.db.Query(query, clientID)
	if err != nil {
		r.logger.Error("Failed to list workflows", zap.String("client_id", clientID), zap.Error(err))
		return nil, fmt.Errorf("failed to list workflows: %w", err)
	}
	defer rows.Close()

	var workflows []*models.Workflow
	for rows.Next() {
		var wf models.Workflow
		if err := rows.Scan(&wf.ID, &wf.ClientID, &wf.Name, &wf.IsActive, &wf.DisplayOrder, &wf.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan workflow: %w", err)
		}
		workflows = append(workflows, &wf)
	}

	return workflows, rows.Err()
}

// CountActiveByClient returns the number of active workflows for a client.
// This is the divisor for shared tool-cost allocation.
func (r *WorkflowRepository) CountActiveByClient(clientID string) (int, error) {
	var count int
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM workflows WHERE client_id = ? AND is_active = 1",
		clientID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count workflows: %w", err)
	}
	return count, nil
}

// GetStats returns per-workflow execution aggregates for the 24 hours
// preceding now.
func (r *WorkflowRepository) GetStats(clientID string, now time.Time) ([]*models.WorkflowStats, error) {
	since := now.Add(-24 * time.Hour)

	query := `
		SELECT
			w.client_id,
			w.id,
			w.name,
			w.display_order,
			COUNT(e.id) AS executions,
			COALESCE(SUM(CASE WHEN e.status = 'success' THEN 1 ELSE 0 END), 0) AS successes,
			COALESCE(SUM(CASE WHEN e.status = 'error' THEN 1 ELSE 0 END), 0) AS errors,
			AVG(e.duration_ms) AS avg_duration,
			MAX(e.started_at) AS last_execution
		FROM workflows w
		LEFT JOIN executions e ON e.workflow_id = w.id AND e.started_at >= ?
		WHERE w.client_id = ? AND w.is_active = 1
		GROUP BY w.id
		ORDER BY w.display_order, w.name
	`

	rows, err := r.db.Query(query, since, clientID)
	if err != nil {
		r.logger.Error("Failed to get workflow stats", zap.String("client_id", clientID), zap.Error(err))
		return nil, fmt.Errorf("failed to get workflow stats: %w", err)
	}
	defer rows.Close()

	var stats []*models.WorkflowStats
	for rows.Next() {
		var s models.WorkflowStats
		var avgDuration sql.NullFloat64
		var lastExecution sql.NullTime

		if err := rows.Scan(
			&s.ClientID,
			&s.WorkflowID,
			&s.WorkflowName,
			&s.DisplayOrder,
			&s.Executions24h,
			&s.Success24h,
			&s.Errors24h,
			&avgDuration,
			&lastExecution,
		); err != nil {
			return nil, fmt.Errorf("failed to scan workflow stats: %w", err)
		}

		if s.Executions24h > 0 {
			s.SuccessRate24h = float64(s.Success24h) / float64(s.Executions24h) * 100
		}
		if avgDuration.Valid {
			s.AvgDurationMs = avgDuration.Float64
		}
		if lastExecution.Valid {
			s.LastExecution = &lastExecution.Time
		}

		stats = append(stats, &s)
	}

	return stats, rows.Err()
}

// GetClientSummary returns the client-wide execution aggregate for the 24
// hours preceding now.
func (r *WorkflowRepository) GetClientSummary(clientID string, now time.Time) (*models.ClientSummary, error) {
	since := now.Add(-24 * time.Hour)

	query := `
		SELECT
			c.id,
			c.name,
			c.code,
			(SELECT COUNT(*) FROM workflows w WHERE w.client_id = c.id AND w.is_active = 1),
			COUNT(e.id),
			COALESCE(SUM(CASE WHEN e.status = 'success' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN e.status = 'error' THEN 1 ELSE 0 END), 0)
		FROM clients c
		LEFT JOIN executions e ON e.client_id = c.id AND e.started_at >= ?
		WHERE c.id = ?
		GROUP BY c.id
	`

	var summary models.ClientSummary
	err := r.db.QueryRow(query, since, clientID).Scan(
		&summary.ClientID,
		&summary.ClientName,
		&summary.ClientCode,
		&summary.TotalWorkflows,
		&summary.Executions24h,
		&summary.Success24h,
		&summary.Errors24h,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get client summary", zap.String("client_id", clientID), zap.Error(err))
		return nil, fmt.Errorf("failed to get client summary: %w", err)
	}

	if summary.Executions24h > 0 {
		summary.SuccessRate24h = float64(summary.Success24h) / float64(summary.Executions24h) * 100
	}

	return &summary, nil
}
