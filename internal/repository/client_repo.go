package repository

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/n8nops/roi-dashboard/internal/models"
	"github.com/n8nops/roi-dashboard/pkg/database"
)

// ClientRepository handles client database operations
type ClientRepository struct {
	db     *database.DB
	logger *zap.Logger
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *database.DB, logger *zap.Logger) *ClientRepository {
	return &ClientRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves a client by ID. Returns nil when no client exists.
func (r *ClientRepository) GetByID(id string) (*models.Client, error) {
	query := `
		SELECT id, name, code, currency_code, created_at
		FROM clients
		WHERE id = ?
	`

	var client models.Client
	err := r.db.QueryRow(query, id).Scan(
		&client.ID,
		&client.Name,
		&client.Code,
		&client.CurrencyCode,
		&client.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get client", zap.String("client_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return &client, nil
}
