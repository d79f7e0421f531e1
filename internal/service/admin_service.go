package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/n8nops/roi-dashboard/internal/models"
)

// AdminService handles ROI configuration and tool-cost writes, enforcing
// the invariants the calculation engine assumes at the write boundary.
type AdminService struct {
	roiConfigs ROIConfigStore
	toolCosts  ToolCostStore
	logger     *zap.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(roiConfigs ROIConfigStore, toolCosts ToolCostStore, logger *zap.Logger) *AdminService {
	return &AdminService{
		roiConfigs: roiConfigs,
		toolCosts:  toolCosts,
		logger:     logger,
	}
}

// ListROIConfigs returns all ROI configurations for a client.
func (s *AdminService) ListROIConfigs(clientID string) ([]*models.WorkflowROIConfig, error) {
	return s.roiConfigs.ListByClient(clientID)
}

// CreateROIConfig validates and stores a new workflow ROI configuration.
func (s *AdminService) CreateROIConfig(cfg *models.WorkflowROIConfig) error {
	if err := validateROIConfig(cfg); err != nil {
		return err
	}
	if err := s.roiConfigs.Create(cfg); err != nil {
		return err
	}
	s.logger.Info("Created ROI config",
		zap.String("client_id", cfg.ClientID),
		zap.String("workflow_id", cfg.WorkflowID),
		zap.String("roi_type", cfg.ROIType))
	return nil
}

// UpdateROIConfig validates and replaces a workflow's ROI configuration.
func (s *AdminService) UpdateROIConfig(cfg *models.WorkflowROIConfig) error {
	if err := validateROIConfig(cfg); err != nil {
		return err
	}
	if err := s.roiConfigs.Update(cfg); err != nil {
		return err
	}
	s.logger.Info("Updated ROI config",
		zap.String("client_id", cfg.ClientID),
		zap.String("workflow_id", cfg.WorkflowID))
	return nil
}

// DeleteROIConfig removes a workflow's ROI configuration.
func (s *AdminService) DeleteROIConfig(clientID, workflowID string) error {
	if err := s.roiConfigs.Delete(clientID, workflowID); err != nil {
		return err
	}
	s.logger.Info("Deleted ROI config",
		zap.String("client_id", clientID),
		zap.String("workflow_id", workflowID))
	return nil
}

// ListToolCosts returns a client's enabled tool costs.
func (s *AdminService) ListToolCosts(clientID string) ([]models.ToolCost, error) {
	return s.toolCosts.ListByClient(clientID)
}

// ReplaceToolCosts validates and atomically replaces a client's tool-cost
// list.
func (s *AdminService) ReplaceToolCosts(clientID string, costs []models.ToolCost) error {
	for i := range costs {
		if err := validateToolCost(&costs[i]); err != nil {
			return err
		}
	}
	if err := s.toolCosts.ReplaceForClient(clientID, costs); err != nil {
		return err
	}
	s.logger.Info("Replaced tool costs",
		zap.String("client_id", clientID),
		zap.Int("count", len(costs)))
	return nil
}

var validROITypes = map[string]bool{
	models.ROITypePerExecution:  true,
	models.ROITypeRecurringTask: true,
	models.ROITypeNewCapability: true,
}

var validFrequencies = map[string]bool{
	models.FrequencyDaily:     true,
	models.FrequencyWeekly:    true,
	models.FrequencyMonthly:   true,
	models.FrequencyQuarterly: true,
}

var validPeriods = map[string]bool{
	models.PeriodMonthly:   true,
	models.PeriodQuarterly: true,
	models.PeriodYearly:    true,
	models.Period24Months:  true,
}

func validateROIConfig(cfg *models.WorkflowROIConfig) error {
	if cfg.WorkflowID == "" {
		return fmt.Errorf("workflow_id is required")
	}
	if cfg.ClientID == "" {
		return fmt.Errorf("client_id is required")
	}
	if !validROITypes[cfg.ROIType] {
		return fmt.Errorf("invalid roi_type %q", cfg.ROIType)
	}
	if cfg.Frequency != "" && !validFrequencies[cfg.Frequency] {
		return fmt.Errorf("invalid frequency %q", cfg.Frequency)
	}
	return nil
}

// validateToolCost enforces the one-time/recurring split: a recurring cost
// carries a billing period and no end date, a one-time fee the reverse.
func validateToolCost(tc *models.ToolCost) error {
	if tc.Tool == "" {
		return fmt.Errorf("tool name is required")
	}
	if tc.Cost < 0 {
		return fmt.Errorf("tool %q: cost must not be negative", tc.Tool)
	}
	if tc.Recurring {
		if !validPeriods[tc.Period] {
			return fmt.Errorf("tool %q: recurring cost requires a valid period", tc.Tool)
		}
		if tc.EndDate != nil {
			return fmt.Errorf("tool %q: recurring cost cannot have an end date", tc.Tool)
		}
	} else {
		if tc.Period != "" {
			return fmt.Errorf("tool %q: one-time cost cannot have a billing period", tc.Tool)
		}
	}
	return nil
}
