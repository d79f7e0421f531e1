package roi

import (
	"time"

	"github.com/n8nops/roi-dashboard/internal/models"
)

// Summarize rolls per-workflow calculation results and client tool costs up
// into the tenant-level summary. One-time fees (workflow implementation
// costs and non-recurring tool costs) are counted in full; recurring tool
// costs are allocated by the billing-period rules in AllocatedCost.
//
// Breakdown divides the same tool-cost total evenly across workflowCount, so
// when results cover every active workflow the summary's NetROI equals the
// sum of the breakdown rows' NetROI. Both views run the identical allocator
// calls over the same snapshot; there is no caller-specific rounding.
func Summarize(results []models.CalculationResult, toolCosts []models.ToolCost, workflowCount int, referenceDate time.Time) models.ClientROISummary {
	summary := models.ClientROISummary{
		CurrencyCode:    DefaultCurrencyCode,
		ActiveWorkflows: workflowCount,
	}

	for _, res := range results {
		summary.TotalMinutesSaved += res.MinutesSaved
		summary.TotalLaborCostSaved += res.LaborCostSaved
		summary.TotalValueCreated += res.ValueCreated
		summary.TotalImplementationCost += ImplementationCostApplied(res, referenceDate)
		if res.FormulaTrace != "" {
			summary.WorkflowsWithROI++
		}
		if summary.CurrencyCode == DefaultCurrencyCode && res.CurrencyCode != "" {
			summary.CurrencyCode = res.CurrencyCode
		}
	}
	summary.TotalHoursSaved = summary.TotalMinutesSaved / 60

	oneTime, recurring := toolCostTotals(toolCosts, referenceDate, EarliestDeploymentDate(results))
	summary.TotalToolCost = oneTime + recurring
	summary.TotalAutomationCost = summary.TotalImplementationCost + summary.TotalToolCost
	summary.NetROI = summary.TotalLaborCostSaved + summary.TotalValueCreated - summary.TotalAutomationCost
	return summary
}

// Breakdown produces the per-workflow rows backing the detail view. Each row
// carries the workflow's own implementation cost (if incurred) plus an even
// share of the client's tool-cost total.
func Breakdown(results []models.CalculationResult, toolCosts []models.ToolCost, workflowCount int, referenceDate time.Time) []models.WorkflowROIBreakdown {
	oneTime, recurring := toolCostTotals(toolCosts, referenceDate, EarliestDeploymentDate(results))

	var share float64
	if workflowCount > 0 {
		share = (oneTime + recurring) / float64(workflowCount)
	}

	rows := make([]models.WorkflowROIBreakdown, 0, len(results))
	for _, res := range results {
		implApplied := ImplementationCostApplied(res, referenceDate)
		totalCost := implApplied + share
		rows = append(rows, models.WorkflowROIBreakdown{
			CalculationResult:         res,
			ImplementationCostApplied: implApplied,
			AllocatedToolCost:         share,
			TotalCost:                 totalCost,
			NetROI:                    res.LaborCostSaved + res.ValueCreated - totalCost,
		})
	}
	return rows
}

// EarliestDeploymentDate returns the earliest workflow deployment date among
// the results, the allocator's fallback anchor for tool costs without a
// start date. Nil when no workflow has deployed.
func EarliestDeploymentDate(results []models.CalculationResult) *time.Time {
	var earliest *time.Time
	for _, res := range results {
		if res.DeploymentDate == nil {
			continue
		}
		if earliest == nil || res.DeploymentDate.Before(*earliest) {
			earliest = res.DeploymentDate
		}
	}
	return earliest
}

// toolCostTotals sums one-time and recurring tool allocations separately.
func toolCostTotals(toolCosts []models.ToolCost, referenceDate time.Time, fallbackStartDate *time.Time) (oneTime, recurring float64) {
	for _, tool := range toolCosts {
		allocated := AllocatedCost(tool, referenceDate, fallbackStartDate)
		if tool.Recurring {
			recurring += allocated
		} else {
			oneTime += allocated
		}
	}
	return oneTime, recurring
}
