package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/n8nops/roi-dashboard/internal/models"
	"github.com/n8nops/roi-dashboard/internal/roi"
)

// ROIService orchestrates the ROI calculation flow: it assembles the
// per-workflow inputs from storage, runs the calculation engine, and rolls
// the results up. The clock is injectable so calculations are reproducible
// in tests.
type ROIService struct {
	workflows  WorkflowStore
	executions ExecutionStore
	roiConfigs ROIConfigStore
	toolCosts  ToolCostStore
	logger     *zap.Logger
	now        func() time.Time
}

// NewROIService creates a new ROI service. A nil clock defaults to
// time.Now.
func NewROIService(
	workflows WorkflowStore,
	executions ExecutionStore,
	roiConfigs ROIConfigStore,
	toolCosts ToolCostStore,
	logger *zap.Logger,
	clock func() time.Time,
) *ROIService {
	if clock == nil {
		clock = time.Now
	}
	return &ROIService{
		workflows:  workflows,
		executions: executions,
		roiConfigs: roiConfigs,
		toolCosts:  toolCosts,
		logger:     logger,
		now:        clock,
	}
}

// Summary returns the tenant-level ROI rollup for a client.
func (s *ROIService) Summary(clientID string) (*models.ClientROISummary, error) {
	summary, _, _, err := s.Compute(clientID)
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// WorkflowBreakdown returns the per-workflow ROI rows for a client,
// including formula traces.
func (s *ROIService) WorkflowBreakdown(clientID string) ([]models.WorkflowROIBreakdown, error) {
	_, rows, _, err := s.Compute(clientID)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Compute runs the full calculation over one consistent snapshot and
// returns the tenant summary, the per-workflow breakdown and the reference
// date both were calculated against. Every active workflow yields a row,
// configured or not, so the breakdown's cost shares sum back to the
// summary's totals.
func (s *ROIService) Compute(clientID string) (*models.ClientROISummary, []models.WorkflowROIBreakdown, time.Time, error) {
	referenceDate := s.now()

	workflows, err := s.workflows.ListActiveByClient(clientID)
	if err != nil {
		return nil, nil, referenceDate, fmt.Errorf("failed to load workflows: %w", err)
	}

	configs, err := s.roiConfigs.ListByClient(clientID)
	if err != nil {
		return nil, nil, referenceDate, fmt.Errorf("failed to load ROI configs: %w", err)
	}
	configByWorkflow := make(map[string]*models.WorkflowROIConfig, len(configs))
	for _, cfg := range configs {
		configByWorkflow[cfg.WorkflowID] = cfg
	}

	successCounts, err := s.executions.CountSuccessfulByWorkflow(clientID)
	if err != nil {
		return nil, nil, referenceDate, fmt.Errorf("failed to load execution counts: %w", err)
	}

	tools, err := s.toolCosts.ListByClient(clientID)
	if err != nil {
		return nil, nil, referenceDate, fmt.Errorf("failed to load tool costs: %w", err)
	}

	results := make([]models.CalculationResult, 0, len(workflows))
	for _, wf := range workflows {
		var result models.CalculationResult
		if cfg, ok := configByWorkflow[wf.ID]; ok {
			stats := models.WorkflowExecutionStats{
				WorkflowID:           wf.ID,
				SuccessfulExecutions: successCounts[wf.ID],
				DaysSinceDeployment:  daysSince(cfg.DeploymentDate, referenceDate),
			}
			result = roi.Calculate(*cfg, stats)
		} else {
			result = models.CalculationResult{
				WorkflowID:           wf.ID,
				SuccessfulExecutions: successCounts[wf.ID],
			}
		}
		result.WorkflowName = wf.Name
		results = append(results, result)
	}

	workflowCount := len(workflows)
	summary := roi.Summarize(results, tools, workflowCount, referenceDate)
	summary.ClientID = clientID
	rows := roi.Breakdown(results, tools, workflowCount, referenceDate)

	s.logger.Debug("Computed client ROI",
		zap.String("client_id", clientID),
		zap.Int("workflows", workflowCount),
		zap.Float64("net_roi", summary.NetROI))

	return &summary, rows, referenceDate, nil
}

// daysSince is the whole number of 24-hour days between a deployment date
// and the reference time, floored at zero for future dates.
func daysSince(deployed *time.Time, now time.Time) int {
	if deployed == nil {
		return 0
	}
	days := int(now.Sub(*deployed).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
