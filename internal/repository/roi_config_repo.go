package repository

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/n8nops/roi-dashboard/internal/models"
	"github.com/n8nops/roi-dashboard/pkg/database"
)

// ROIConfigRepository handles workflow ROI configuration database operations
type ROIConfigRepository struct {
	db     *database.DB
	logger *zap.Logger
}

// NewROIConfigRepository creates a new ROI config repository
func NewROIConfigRepository(db *database.DB, logger *zap.Logger) *ROIConfigRepository {
	return &ROIConfigRepository{
		db:     db,
		logger: logger,
	}
}

const roiConfigColumns = `
	id, workflow_id, client_id, roi_type, deployment_date, currency_code,
	manual_minutes_saved, hourly_rate, implementation_cost, implementation_date,
	frequency, occurrences_per_frequency, value_per_execution, clients_per_report,
	reactivation_rate_percent, value_per_client, value_per_frequency,
	value_description, notes, created_at, updated_at`

// ListByClient retrieves all ROI configurations for a client.
func (r *ROIConfigRepository) ListByClient(clientID string) ([]*models.WorkflowROIConfig, error) {
	query := fmt.Sprintf("SELECT %s FROM workflow_roi WHERE client_id = ?", roiConfigColumns)

	rows, err := r.db.Query(query, clientID)
	if err != nil {
		r.logger.Error("Failed to list ROI configs", zap.String("client_id", clientID), zap.Error(err))
		return nil, fmt.Errorf("failed to list ROI configs: %w", err)
	}
	defer rows.Close()

	var configs []*models.WorkflowROIConfig
	for rows.Next() {
		cfg, err := scanROIConfig(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}

	return configs, rows.Err()
}

// GetByWorkflow retrieves the ROI configuration for one workflow. Returns nil
// when the workflow has no configuration.
func (r *ROIConfigRepository) GetByWorkflow(clientID, workflowID string) (*models.WorkflowROIConfig, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM workflow_roi WHERE client_id = ? AND workflow_id = ?",
		roiConfigColumns,
	)

	cfg, err := scanROIConfig(r.db.QueryRow(query, clientID, workflowID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get ROI config",
			zap.String("client_id", clientID),
			zap.String("workflow_id", workflowID),
			zap.Error(err))
		return nil, err
	}

	return cfg, nil
}

// Create inserts a new ROI configuration.
func (r *ROIConfigRepository) Create(cfg *models.WorkflowROIConfig) error {
	query := `
		INSERT INTO workflow_roi (
			workflow_id, client_id, roi_type, deployment_date, currency_code,
			manual_minutes_saved, hourly_rate, implementation_cost, implementation_date,
			frequency, occurrences_per_frequency, value_per_execution, clients_per_report,
			reactivation_rate_percent, value_per_client, value_per_frequency,
			value_description, notes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		cfg.WorkflowID,
		cfg.ClientID,
		cfg.ROIType,
		cfg.DeploymentDate,
		nullIfEmpty(cfg.CurrencyCode),
		cfg.ManualMinutesSaved,
		cfg.HourlyRate,
		cfg.ImplementationCost,
		cfg.ImplementationDate,
		nullIfEmpty(cfg.Frequency),
		cfg.OccurrencesPerFrequency,
		cfg.ValuePerExecution,
		cfg.ClientsPerReport,
		cfg.ReactivationRatePercent,
		cfg.ValuePerClient,
		cfg.ValuePerFrequency,
		nullIfEmpty(cfg.ValueDescription),
		nullIfEmpty(cfg.Notes),
	)
	if err != nil {
		r.logger.Error("Failed to create ROI config", zap.String("workflow_id", cfg.WorkflowID), zap.Error(err))
		return fmt.Errorf("failed to create ROI config: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	cfg.ID = fmt.Sprintf("%d", id)

	return nil
}

// Update replaces the ROI configuration for a workflow.
func (r *ROIConfigRepository) Update(cfg *models.WorkflowROIConfig) error {
	query := `
		UPDATE workflow_roi SET
			roi_type = ?, deployment_date = ?, currency_code = ?,
			manual_minutes_saved = ?, hourly_rate = ?,
			implementation_cost = ?, implementation_date = ?,
			frequency = ?, occurrences_per_frequency = ?,
			value_per_execution = ?, clients_per_report = ?,
			reactivation_rate_percent = ?, value_per_client = ?,
			value_per_frequency = ?, value_description = ?, notes = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE client_id = ? AND workflow_id = ?
	`

	result, err := r.db.Exec(query,
		cfg.ROIType,
		cfg.DeploymentDate,
		nullIfEmpty(cfg.CurrencyCode),
		cfg.ManualMinutesSaved,
		cfg.HourlyRate,
		cfg.ImplementationCost,
		cfg.ImplementationDate,
		nullIfEmpty(cfg.Frequency),
		cfg.OccurrencesPerFrequency,
		cfg.ValuePerExecution,
		cfg.ClientsPerReport,
		cfg.ReactivationRatePercent,
		cfg.ValuePerClient,
		cfg.ValuePerFrequency,
		nullIfEmpty(cfg.ValueDescription),
		nullIfEmpty(cfg.Notes),
		cfg.ClientID,
		cfg.WorkflowID,
	)
	if err != nil {
		r.logger.Error("Failed to update ROI config", zap.String("workflow_id", cfg.WorkflowID), zap.Error(err))
		return fmt.Errorf("failed to update ROI config: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("no ROI config for workflow %s", cfg.WorkflowID)
	}

	return nil
}

// Delete removes the ROI configuration for a workflow.
func (r *ROIConfigRepository) Delete(clientID, workflowID string) error {
	_, err := r.db.Exec(
		"DELETE FROM workflow_roi WHERE client_id = ? AND workflow_id = ?",
		clientID, workflowID,
	)
	if err != nil {
		r.logger.Error("Failed to delete ROI config", zap.String("workflow_id", workflowID), zap.Error(err))
		return fmt.Errorf("failed to delete ROI config: %w", err)
	}
	return nil
}

func scanROIConfig(row rowScanner) (*models.WorkflowROIConfig, error) {
	var cfg models.WorkflowROIConfig
	var id int64
	var deploymentDate, implementationDate, updatedAt sql.NullTime
	var currencyCode, frequency, valueDescription, notes sql.NullString
	var minutesSaved, hourlyRate, implCost sql.NullFloat64
	var occurrences, valuePerExecution, clientsPerReport sql.NullFloat64
	var reactivationRate, valuePerClient, valuePerFrequency sql.NullFloat64

	err := row.Scan(
		&id,
		&cfg.WorkflowID,
		&cfg.ClientID,
		&cfg.ROIType,
		&deploymentDate,
		&currencyCode,
		&minutesSaved,
		&hourlyRate,
		&implCost,
		&implementationDate,
		&frequency,
		&occurrences,
		&valuePerExecution,
		&clientsPerReport,
		&reactivationRate,
		&valuePerClient,
		&valuePerFrequency,
		&valueDescription,
		&notes,
		&cfg.CreatedAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan ROI config: %w", err)
	}

	cfg.ID = fmt.Sprintf("%d", id)
	if deploymentDate.Valid {
		cfg.DeploymentDate = &deploymentDate.Time
	}
	if implementationDate.Valid {
		cfg.ImplementationDate = &implementationDate.Time
	}
	if updatedAt.Valid {
		cfg.UpdatedAt = &updatedAt.Time
	}
	cfg.CurrencyCode = currencyCode.String
	cfg.Frequency = frequency.String
	cfg.ValueDescription = valueDescription.String
	cfg.Notes = notes.String
	cfg.ManualMinutesSaved = minutesSaved.Float64
	cfg.HourlyRate = hourlyRate.Float64
	cfg.ImplementationCost = implCost.Float64
	cfg.OccurrencesPerFrequency = occurrences.Float64
	cfg.ValuePerExecution = valuePerExecution.Float64
	cfg.ClientsPerReport = clientsPerReport.Float64
	cfg.ReactivationRatePercent = reactivationRate.Float64
	cfg.ValuePerClient = valuePerClient.Float64
	cfg.ValuePerFrequency = valuePerFrequency.Float64

	return &cfg, nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
