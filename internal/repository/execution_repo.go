package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/n8nops/roi-dashboard/internal/models"
	"github.com/n8nops/roi-dashboard/pkg/database"
)

// ExecutionRepository handles execution database operations
type ExecutionRepository struct {
	db     *database.DB
	logger *zap.Logger
}

// NewExecutionRepository creates a new execution repository
func NewExecutionRepository(db *database.DB, logger *zap.Logger) *ExecutionRepository {
	return &ExecutionRepository{
		db:     db,
		logger: logger,
	}
}

// ListRecent returns a page of a client's executions, newest first, plus the
// total match count. A days filter means the last days*24 hours from now.
// The default page size is 100, or 1000 when a days filter is set; both are
// capped at MaxExecutionPageSize.
func (r *ExecutionRepository) ListRecent(clientID string, filter models.ExecutionFilter, now time.Time) (*models.ExecutionPage, error) {
	conditions := []string{"e.client_id = ?"}
	args := []interface{}{clientID}

	if filter.Status != "" {
		conditions = append(conditions, "e.status = ?")
		args = append(args, filter.Status)
	}
	if filter.WorkflowName != "" {
		conditions = append(conditions, "w.name = ?")
		args = append(args, filter.WorkflowName)
	}
	if filter.Days > 0 {
		conditions = append(conditions, "e.started_at >= ?")
		args = append(args, now.Add(-time.Duration(filter.Days)*24*time.Hour))
	}

	where := strings.Join(conditions, " AND ")

	var total int
	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM executions e
		JOIN workflows w ON w.id = e.workflow_id
		WHERE %s`, where)
	if err := r.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count executions: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = models.DefaultExecutionPageSize
		if filter.Days > 0 {
			limit = models.DefaultExecutionPageSizeWithDays
		}
	}
	if limit > models.MaxExecutionPageSize {
		limit = models.MaxExecutionPageSize
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`
		SELECT e.id, e.client_id, e.workflow_id, w.name, e.status, e.mode,
			e.started_at, e.stopped_at, e.duration_ms, e.details
		FROM executions e
		JOIN workflows w ON w.id = e.workflow_id
		WHERE %s
		ORDER BY e.started_at DESC
		LIMIT ? OFFSET ?`, where)
	args = append(args, limit, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Error("Failed to list executions", zap.String("client_id", clientID), zap.Error(err))
		return nil, fmt.Errorf("failed to list executions: %w", err)
	}
	defer rows.Close()

	executions := make([]*models.Execution, 0, limit)
	for rows.Next() {
		exec, err := scanExecution(rows)
		if err != nil {
			return nil, err
		}
		executions = append(executions, exec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate executions: %w", err)
	}

	return &models.ExecutionPage{Executions: executions, TotalCount: total}, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanExecution(row rowScanner) (*models.Execution, error) {
	var exec models.Execution
	var mode, details sql.NullString
	var stoppedAt sql.NullTime
	var durationMs sql.NullInt64

	if err := row.Scan(
		&exec.ID,
		&exec.ClientID,
		&exec.WorkflowID,
		&exec.WorkflowName,
		&exec.Status,
		&mode,
		&exec.StartedAt,
		&stoppedAt,
		&durationMs,
		&details,
	); err != nil {
		return nil, fmt.Errorf("failed to scan execution: %w", err)
	}

	if mode.Valid {
		exec.Mode = mode.String
	}
	if stoppedAt.Valid {
		exec.StoppedAt = &stoppedAt.Time
	}
	if durationMs.Valid {
		exec.DurationMs = &durationMs.Int64
	}
	if details.Valid {
		exec.Details = details.String
	}

	return &exec, nil
}

// CountSuccessfulByWorkflow returns the all-time successful execution count
// per workflow for a client, keyed by workflow ID.
func (r *ExecutionRepository) CountSuccessfulByWorkflow(clientID string) (map[string]int, error) {
	query := `
		SELECT workflow_id, COUNT(*)
		FROM executions
		WHERE client_id = ? AND status = 'success'
		GROUP BY workflow_id
	`

	rows, err := r.db.Query(query, clientID)
	if err != nil {
		r.logger.Error("Failed to count successful executions", zap.String("client_id", clientID), zap.Error(err))
		return nil, fmt.Errorf("failed to count successful executions: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var workflowID string
		var count int
		if err := rows.Scan(&workflowID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan execution count: %w", err)
		}
		counts[workflowID] = count
	}

	return counts, rows.Err()
}
