package models

import "time"

// ROI calculation type constants
const (
	ROITypePerExecution  = "per_execution"
	ROITypeRecurringTask = "recurring_task"
	ROITypeNewCapability = "new_capability"
)

// Frequency constants for recurring tasks and frequency-based capability
// value.
const (
	FrequencyDaily     = "daily"
	FrequencyWeekly    = "weekly"
	FrequencyMonthly   = "monthly"
	FrequencyQuarterly = "quarterly"
)

// WorkflowROIConfig is the value-calculation contract for one workflow.
// Fields irrelevant to the active ROIType are simply ignored by the
// calculation engine, never rejected.
type WorkflowROIConfig struct {
	ID           string `json:"id,omitempty"`
	WorkflowID   string `json:"workflow_id"`
	ClientID     string `json:"client_id"`
	ROIType      string `json:"roi_type"`
	CurrencyCode string `json:"currency_code,omitempty"`
	// DeploymentDate gates all calculations: without it every derived value
	// is zero.
	DeploymentDate *time.Time `json:"deployment_date,omitempty"`

	// per_execution and recurring_task
	ManualMinutesSaved float64 `json:"manual_minutes_saved,omitempty"`
	HourlyRate         float64 `json:"hourly_rate,omitempty"`

	// recurring_task and frequency-based new_capability
	Frequency               string  `json:"frequency,omitempty"`
	OccurrencesPerFrequency float64 `json:"occurrences_per_frequency,omitempty"`
	ValuePerFrequency       float64 `json:"value_per_frequency,omitempty"`

	// execution-based new_capability
	ValuePerExecution       float64 `json:"value_per_execution,omitempty"`
	ClientsPerReport        float64 `json:"clients_per_report,omitempty"`
	ReactivationRatePercent float64 `json:"reactivation_rate_percent,omitempty"`
	ValuePerClient          float64 `json:"value_per_client,omitempty"`

	// One-time cost attributable to this single workflow, distinct from
	// client-wide tool costs.
	ImplementationCost float64    `json:"implementation_cost,omitempty"`
	ImplementationDate *time.Time `json:"implementation_date,omitempty"`

	ValueDescription string     `json:"value_description,omitempty"`
	Notes            string     `json:"notes,omitempty"`
	CreatedAt        time.Time  `json:"created_at,omitempty"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

// CalculationResult is the engine output for one workflow. At most one of
// LaborCostSaved and ValueCreated is non-zero, selected by ROIType. An empty
// FormulaTrace means the workflow produced a zero result because it is not
// (fully) configured.
//
// The identification and cost fields are carried through from the config so
// the aggregator can work from results alone.
type CalculationResult struct {
	WorkflowID   string `json:"workflow_id"`
	WorkflowName string `json:"workflow_name,omitempty"`
	ROIType      string `json:"roi_type"`
	CurrencyCode string `json:"currency_code,omitempty"`

	MinutesSaved   float64 `json:"minutes_saved"`
	LaborCostSaved float64 `json:"labor_cost_saved"`
	ValueCreated   float64 `json:"value_created"`
	FormulaTrace   string  `json:"formula_trace,omitempty"`

	SuccessfulExecutions int `json:"successful_executions"`
	DaysSinceDeployment  int `json:"days_since_deployment"`

	DeploymentDate     *time.Time `json:"deployment_date,omitempty"`
	ImplementationCost float64    `json:"implementation_cost"`
	ImplementationDate *time.Time `json:"implementation_date,omitempty"`

	ValueDescription string `json:"value_description,omitempty"`
}

// WorkflowROIBreakdown is one row of the per-workflow breakdown view. Costs
// are the workflow's own implementation cost (if already incurred) plus its
// even share of the client's allocated tool costs.
type WorkflowROIBreakdown struct {
	CalculationResult

	ImplementationCostApplied float64 `json:"implementation_cost_applied"`
	AllocatedToolCost         float64 `json:"allocated_tool_cost"`
	TotalCost                 float64 `json:"total_cost"`
	NetROI                    float64 `json:"net_roi"`
}

// ClientROISummary is the tenant-level rollup. NetROI must equal the same
// figure re-derived from the per-workflow breakdown rows.
type ClientROISummary struct {
	ClientID                string  `json:"client_id"`
	CurrencyCode            string  `json:"currency_code"`
	TotalMinutesSaved       float64 `json:"total_minutes_saved"`
	TotalHoursSaved         float64 `json:"total_hours_saved"`
	TotalLaborCostSaved     float64 `json:"total_labor_cost_saved"`
	TotalValueCreated       float64 `json:"total_value_created"`
	TotalImplementationCost float64 `json:"total_implementation_costs"`
	TotalToolCost           float64 `json:"total_tool_costs"`
	TotalAutomationCost     float64 `json:"total_automation_cost"`
	NetROI                  float64 `json:"net_roi"`
	ActiveWorkflows         int     `json:"active_workflows"`
	WorkflowsWithROI        int     `json:"workflows_with_roi"`
}
