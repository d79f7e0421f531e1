package service

import (
	"time"

	"github.com/n8nops/roi-dashboard/internal/models"
)

// ClientStore provides client lookups.
type ClientStore interface {
	GetByID(id string) (*models.Client, error)
}

// WorkflowStore provides workflow listings and execution aggregates.
type WorkflowStore interface {
	ListActiveByClient(clientID string) ([]*models.Workflow, error)
	CountActiveByClient(clientID string) (int, error)
	GetStats(clientID string, now time.Time) ([]*models.WorkflowStats, error)
	GetClientSummary(clientID string, now time.Time) (*models.ClientSummary, error)
}

// ExecutionStore provides execution listings and per-workflow counts.
type ExecutionStore interface {
	ListRecent(clientID string, filter models.ExecutionFilter, now time.Time) (*models.ExecutionPage, error)
	CountSuccessfulByWorkflow(clientID string) (map[string]int, error)
}

// ROIConfigStore provides workflow ROI configuration persistence.
type ROIConfigStore interface {
	ListByClient(clientID string) ([]*models.WorkflowROIConfig, error)
	GetByWorkflow(clientID, workflowID string) (*models.WorkflowROIConfig, error)
	Create(cfg *models.WorkflowROIConfig) error
	Update(cfg *models.WorkflowROIConfig) error
	Delete(clientID, workflowID string) error
}

// ToolCostStore provides client tool-cost persistence.
type ToolCostStore interface {
	ListByClient(clientID string) ([]models.ToolCost, error)
	ReplaceForClient(clientID string, costs []models.ToolCost) error
}
