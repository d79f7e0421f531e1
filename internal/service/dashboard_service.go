package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/n8nops/roi-dashboard/internal/models"
)

// DashboardService serves the execution-activity views of the dashboard:
// client summary, per-workflow stats and the recent-executions feed.
type DashboardService struct {
	clients    ClientStore
	workflows  WorkflowStore
	executions ExecutionStore
	logger     *zap.Logger
	now        func() time.Time
}

// NewDashboardService creates a new dashboard service. A nil clock defaults
// to time.Now.
func NewDashboardService(
	clients ClientStore,
	workflows WorkflowStore,
	executions ExecutionStore,
	logger *zap.Logger,
	clock func() time.Time,
) *DashboardService {
	if clock == nil {
		clock = time.Now
	}
	return &DashboardService{
		clients:    clients,
		workflows:  workflows,
		executions: executions,
		logger:     logger,
		now:        clock,
	}
}

// GetClient looks a client up by ID. Returns nil when the client does not
// exist.
func (s *DashboardService) GetClient(clientID string) (*models.Client, error) {
	return s.clients.GetByID(clientID)
}

// ClientSummary returns the trailing-24h activity rollup for a client.
func (s *DashboardService) ClientSummary(clientID string) (*models.ClientSummary, error) {
	summary, err := s.workflows.GetClientSummary(clientID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to get client summary: %w", err)
	}
	return summary, nil
}

// WorkflowStats returns the trailing-24h per-workflow activity for a client.
func (s *DashboardService) WorkflowStats(clientID string) ([]*models.WorkflowStats, error) {
	stats, err := s.workflows.GetStats(clientID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to get workflow stats: %w", err)
	}
	return stats, nil
}

// RecentExecutions returns a filtered, paginated page of a client's
// executions, newest first.
func (s *DashboardService) RecentExecutions(clientID string, filter models.ExecutionFilter) (*models.ExecutionPage, error) {
	page, err := s.executions.ListRecent(clientID, filter, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to list executions: %w", err)
	}
	return page, nil
}
