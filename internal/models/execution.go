package models

import "time"

// Execution status constants
const (
	ExecutionStatusSuccess = "success"
	ExecutionStatusError   = "error"
)

// Execution represents a single workflow run.
type Execution struct {
	ID           string     `json:"execution_id"`
	ClientID     string     `json:"client_id"`
	WorkflowID   string     `json:"workflow_id"`
	WorkflowName string     `json:"workflow_name"`
	Status       string     `json:"status"`
	Mode         string     `json:"mode,omitempty"`
	StartedAt    time.Time  `json:"started_at"`
	StoppedAt    *time.Time `json:"stopped_at,omitempty"`
	DurationMs   *int64     `json:"duration_ms,omitempty"`
	Details      string     `json:"details,omitempty"`
}

// ExecutionFilter narrows a recent-executions query. Days means the last
// Days*24 hours from the reference time, not calendar days. Limit is capped
// at MaxExecutionPageSize.
type ExecutionFilter struct {
	Status       string
	WorkflowName string
	Days         int
	Limit        int
	Offset       int
}

// Pagination limits for the executions listing.
const (
	DefaultExecutionPageSize         = 100
	DefaultExecutionPageSizeWithDays = 1000
	MaxExecutionPageSize             = 1000
)

// ExecutionPage is one page of executions plus the total match count for
// pagination.
type ExecutionPage struct {
	Executions []*Execution `json:"executions"`
	TotalCount int          `json:"total_count"`
}
