package repository

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/n8nops/roi-dashboard/internal/models"
	"github.com/n8nops/roi-dashboard/pkg/database"
)

// ToolCostRepository handles tool cost database operations
type ToolCostRepository struct {
	db     *database.DB
	logger *zap.Logger
}

// NewToolCostRepository creates a new tool cost repository
func NewToolCostRepository(db *database.DB, logger *zap.Logger) *ToolCostRepository {
	return &ToolCostRepository{
		db:     db,
		logger: logger,
	}
}

// ListByClient retrieves a client's enabled tool costs.
func (r *ToolCostRepository) ListByClient(clientID string) ([]models.ToolCost, error) {
	query := `
		SELECT id, client_id, tool, cost, recurring, period, start_date,
			end_date, currency_code, enabled
		FROM tool_costs
		WHERE client_id = ? AND enabled = 1
		ORDER BY tool
	`

	rows, err := r.db.Query(query, clientID)
	if err != nil {
		r.logger.Error("Failed to list tool costs", zap.String("client_id", clientID), zap.Error(err))
		return nil, fmt.Errorf("failed to list tool costs: %w", err)
	}
	defer rows.Close()

	var costs []models.ToolCost
	for rows.Next() {
		var tc models.ToolCost
		var period, currencyCode sql.NullString
		var startDate, endDate sql.NullTime

		if err := rows.Scan(
			&tc.ID,
			&tc.ClientID,
			&tc.Tool,
			&tc.Cost,
			&tc.Recurring,
			&period,
			&startDate,
			&endDate,
			&currencyCode,
			&tc.Enabled,
		); err != nil {
			return nil, fmt.Errorf("failed to scan tool cost: %w", err)
		}

		tc.Period = period.String
		tc.CurrencyCode = currencyCode.String
		if startDate.Valid {
			tc.StartDate = &startDate.Time
		}
		if endDate.Valid {
			tc.EndDate = &endDate.Time
		}

		costs = append(costs, tc)
	}

	return costs, rows.Err()
}

// ReplaceForClient atomically replaces the client's tool cost list.
func (r *ToolCostRepository) ReplaceForClient(clientID string, costs []models.ToolCost) error {
	err := r.db.WithTransaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM tool_costs WHERE client_id = ?", clientID); err != nil {
			return fmt.Errorf("failed to clear tool costs: %w", err)
		}

		stmt, err := tx.Prepare(`
			INSERT INTO tool_costs (
				client_id, tool, cost, recurring, period, start_date,
				end_date, currency_code, enabled
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare tool cost insert: %w", err)
		}
		defer stmt.Close()

		for _, tc := range costs {
			if _, err := stmt.Exec(
				clientID,
				tc.Tool,
				tc.Cost,
				tc.Recurring,
				nullIfEmpty(tc.Period),
				tc.StartDate,
				tc.EndDate,
				nullIfEmpty(tc.CurrencyCode),
				tc.Enabled,
			); err != nil {
				return fmt.Errorf("failed to insert tool cost %q: %w", tc.Tool, err)
			}
		}

		return nil
	})
	if err != nil {
		r.logger.Error("Failed to replace tool costs", zap.String("client_id", clientID), zap.Error(err))
		return err
	}

	return nil
}
