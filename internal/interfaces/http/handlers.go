package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/n8nops/roi-dashboard/internal/models"
	"github.com/n8nops/roi-dashboard/internal/report"
)

// DashboardProvider serves the execution-activity views.
type DashboardProvider interface {
	GetClient(clientID string) (*models.Client, error)
	ClientSummary(clientID string) (*models.ClientSummary, error)
	WorkflowStats(clientID string) ([]*models.WorkflowStats, error)
	RecentExecutions(clientID string, filter models.ExecutionFilter) (*models.ExecutionPage, error)
}

// ROIProvider serves the calculated ROI views. Compute also reports the
// reference date the figures were calculated against.
type ROIProvider interface {
	Summary(clientID string) (*models.ClientROISummary, error)
	WorkflowBreakdown(clientID string) ([]models.WorkflowROIBreakdown, error)
	Compute(clientID string) (*models.ClientROISummary, []models.WorkflowROIBreakdown, time.Time, error)
}

// AdminProvider handles ROI configuration and tool-cost writes.
type AdminProvider interface {
	ListROIConfigs(clientID string) ([]*models.WorkflowROIConfig, error)
	CreateROIConfig(cfg *models.WorkflowROIConfig) error
	UpdateROIConfig(cfg *models.WorkflowROIConfig) error
	DeleteROIConfig(clientID, workflowID string) error
	ListToolCosts(clientID string) ([]models.ToolCost, error)
	ReplaceToolCosts(clientID string, costs []models.ToolCost) error
}

// Handlers contains all HTTP request handlers
type Handlers struct {
	dashboard DashboardProvider
	roi       ROIProvider
	admin     AdminProvider
	exporter  *report.Exporter
	logger    Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(
	dashboard DashboardProvider,
	roi ROIProvider,
	admin AdminProvider,
	exporter *report.Exporter,
	logger Logger,
) *Handlers {
	return &Handlers{
		dashboard: dashboard,
		roi:       roi,
		admin:     admin,
		exporter:  exporter,
		logger:    logger,
	}
}

// Response represents a standard JSON response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// ListExecutionsRequest represents query parameters for listing executions
type ListExecutionsRequest struct {
	Status   string `form:"status"`
	Workflow string `form:"workflow"`
	Days     int    `form:"days"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   "1.0.0",
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    response,
	})
}

// GetClientSummary handles GET /api/v1/clients/:id/summary
func (h *Handlers) GetClientSummary(c *gin.Context) {
	clientID := c.Param("id")

	summary, err := h.dashboard.ClientSummary(clientID)
	if err != nil {
		h.logger.Error("Failed to get client summary", "client_id", clientID, "error", err)
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "failed to retrieve client summary",
		})
		return
	}
	if summary == nil {
		c.JSON(http.StatusNotFound, Response{
			Success: false,
			Error:   "client not found",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    summary,
	})
}

// GetWorkflowStats handles GET /api/v1/clients/:id/workflows/stats
func (h *Handlers) GetWorkflowStats(c *gin.Context) {
	clientID := c.Param("id")

	stats, err := h.dashboard.WorkflowStats(clientID)
	if err != nil {
		h.logger.Error("Failed to get workflow stats", "client_id", clientID, "error", err)
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "failed to retrieve workflow stats",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    stats,
	})
}

// ListExecutions handles GET /api/v1/clients/:id/executions
func (h *Handlers) ListExecutions(c *gin.Context) {
	clientID := c.Param("id")

	var req ListExecutionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logger.Error("Invalid query parameters", "error", err)
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid query parameters",
		})
		return
	}

	if req.Status != "" && req.Status != models.ExecutionStatusSuccess && req.Status != models.ExecutionStatusError {
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "status must be success or error",
		})
		return
	}

	page, err := h.dashboard.RecentExecutions(clientID, models.ExecutionFilter{
		Status:       req.Status,
		WorkflowName: req.Workflow,
		Days:         req.Days,
		Limit:        req.Limit,
		Offset:       req.Offset,
	})
	if err != nil {
		h.logger.Error("Failed to list executions", "client_id", clientID, "error", err)
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "failed to retrieve executions",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    page,
	})
}

// GetROISummary handles GET /api/v1/clients/:id/roi/summary
func (h *Handlers) GetROISummary(c *gin.Context) {
	clientID := c.Param("id")

	summary, err := h.roi.Summary(clientID)
	if err != nil {
		h.logger.Error("Failed to compute ROI summary", "client_id", clientID, "error", err)
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "failed to compute ROI summary",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    summary,
	})
}

// GetROIWorkflows handles GET /api/v1/clients/:id/roi/workflows
func (h *Handlers) GetROIWorkflows(c *gin.Context) {
	clientID := c.Param("id")

	rows, err := h.roi.WorkflowBreakdown(clientID)
	if err != nil {
		h.logger.Error("Failed to compute ROI breakdown", "client_id", clientID, "error", err)
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "failed to compute ROI breakdown",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    rows,
	})
}

// ExportROIReport handles GET /api/v1/clients/:id/roi/export
func (h *Handlers) ExportROIReport(c *gin.Context) {
	clientID := c.Param("id")

	client, err := h.dashboard.GetClient(clientID)
	if err != nil {
		h.logger.Error("Failed to get client for export", "client_id", clientID, "error", err)
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "failed to retrieve client",
		})
		return
	}
	if client == nil {
		c.JSON(http.StatusNotFound, Response{
			Success: false,
			Error:   "client not found",
		})
		return
	}

	summary, rows, referenceDate, err := h.roi.Compute(clientID)
	if err != nil {
		h.logger.Error("Failed to compute ROI for export", "client_id", clientID, "error", err)
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "failed to compute ROI report",
		})
		return
	}

	// The report is stamped with the same reference date the figures were
	// calculated against.
	workbook, err := h.exporter.Build(client, summary, rows, referenceDate)
	if err != nil {
		h.logger.Error("Failed to build ROI report", "client_id", clientID, "error", err)
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "failed to build ROI report",
		})
		return
	}
	defer workbook.Close()

	filename := fmt.Sprintf("roi-report-%s-%s.xlsx", client.Code, referenceDate.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if _, err := workbook.WriteTo(c.Writer); err != nil {
		h.logger.Error("Failed to stream ROI report", "client_id", clientID, "error", err)
	}
}

// ListROIConfigs handles GET /api/v1/clients/:id/roi/configs
func (h *Handlers) ListROIConfigs(c *gin.Context) {
	clientID := c.Param("id")

	configs, err := h.admin.ListROIConfigs(clientID)
	if err != nil {
		h.logger.Error("Failed to list ROI configs", "client_id", clientID, "error", err)
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "failed to retrieve ROI configs",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    configs,
	})
}

// CreateROIConfig handles POST /api/v1/clients/:id/roi/configs
func (h *Handlers) CreateROIConfig(c *gin.Context) {
	clientID := c.Param("id")

	var cfg models.WorkflowROIConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}
	cfg.ClientID = clientID

	if err := h.admin.CreateROIConfig(&cfg); err != nil {
		h.logger.Error("Failed to create ROI config", "client_id", clientID, "error", err)
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    cfg,
	})
}

// UpdateROIConfig handles PUT /api/v1/clients/:id/roi/configs/:workflowId
func (h *Handlers) UpdateROIConfig(c *gin.Context) {
	clientID := c.Param("id")
	workflowID := c.Param("workflowId")

	var cfg models.WorkflowROIConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}
	cfg.ClientID = clientID
	cfg.WorkflowID = workflowID

	if err := h.admin.UpdateROIConfig(&cfg); err != nil {
		h.logger.Error("Failed to update ROI config", "client_id", clientID, "workflow_id", workflowID, "error", err)
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    cfg,
	})
}

// DeleteROIConfig handles DELETE /api/v1/clients/:id/roi/configs/:workflowId
func (h *Handlers) DeleteROIConfig(c *gin.Context) {
	clientID := c.Param("id")
	workflowID := c.Param("workflowId")

	if err := h.admin.DeleteROIConfig(clientID, workflowID); err != nil {
		h.logger.Error("Failed to delete ROI config", "client_id", clientID, "workflow_id", workflowID, "error", err)
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "failed to delete ROI config",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
	})
}

// GetToolCosts handles GET /api/v1/clients/:id/tool-costs
func (h *Handlers) GetToolCosts(c *gin.Context) {
	clientID := c.Param("id")

	costs, err := h.admin.ListToolCosts(clientID)
	if err != nil {
		h.logger.Error("Failed to list tool costs", "client_id", clientID, "error", err)
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "failed to retrieve tool costs",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    costs,
	})
}

// PutToolCosts handles PUT /api/v1/clients/:id/tool-costs
func (h *Handlers) PutToolCosts(c *gin.Context) {
	clientID := c.Param("id")

	var costs []models.ToolCost
	if err := c.ShouldBindJSON(&costs); err != nil {
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	if err := h.admin.ReplaceToolCosts(clientID, costs); err != nil {
		h.logger.Error("Failed to replace tool costs", "client_id", clientID, "error", err)
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
	})
}
