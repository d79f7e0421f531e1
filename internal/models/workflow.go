package models

import "time"

// Workflow represents a deployed automation workflow belonging to a client.
type Workflow struct {
	ID           string    `json:"id"`
	ClientID     string    `json:"client_id"`
	Name         string    `json:"name"`
	IsActive     bool      `json:"is_active"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// WorkflowStats aggregates execution activity for one workflow over the
// trailing 24 hours.
type WorkflowStats struct {
	ClientID       string     `json:"client_id"`
	WorkflowID     string     `json:"workflow_id"`
	WorkflowName   string     `json:"workflow_name"`
	DisplayOrder   int        `json:"display_order"`
	Executions24h  int        `json:"executions_24h"`
	Success24h     int        `json:"success_24h"`
	Errors24h      int        `json:"errors_24h"`
	SuccessRate24h float64    `json:"success_rate_24h"`
	AvgDurationMs  float64    `json:"avg_duration_ms"`
	LastExecution  *time.Time `json:"last_execution,omitempty"`
}

// WorkflowExecutionStats is the execution aggregate consumed by the ROI
// calculation engine. DaysSinceDeployment is derived from the workflow's
// ROI deployment date and the reference time, never from a wall clock read
// inside the engine.
type WorkflowExecutionStats struct {
	WorkflowID           string `json:"workflow_id"`
	SuccessfulExecutions int    `json:"successful_executions"`
	DaysSinceDeployment  int    `json:"days_since_deployment"`
}
