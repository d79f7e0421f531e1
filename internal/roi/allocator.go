package roi

import (
	"math"
	"time"

	"github.com/n8nops/roi-dashboard/internal/models"
)

// AllocatedCost returns the cumulative cost a tool has incurred up to
// referenceDate.
//
// One-time fees are recognized in full the moment referenceDate reaches the
// tool's end date, never amortized. Recurring fees are charged per elapsed
// billing period measured in whole calendar months from the anchor date
// (tool start date, falling back to the client's earliest workflow
// deployment date). A yearly fee is charged in full immediately at the
// anchor, then once per subsequent full year.
func AllocatedCost(tool models.ToolCost, referenceDate time.Time, fallbackStartDate *time.Time) float64 {
	cost := clamp(tool.Cost)
	if cost == 0 {
		return 0
	}

	if !tool.Recurring {
		if tool.EndDate == nil {
			return 0
		}
		if referenceDate.Before(*tool.EndDate) {
			return 0
		}
		return cost
	}

	anchor := tool.StartDate
	if anchor == nil {
		anchor = fallbackStartDate
	}
	if anchor == nil {
		return 0
	}

	// Whole calendar months between anchor and reference; day-of-month is
	// ignored, so a period started any day in a month counts that month.
	months := (referenceDate.Year()-anchor.Year())*12 +
		int(referenceDate.Month()) - int(anchor.Month())

	switch tool.Period {
	case models.PeriodMonthly:
		return cost * float64(max(0, months))
	case models.PeriodQuarterly:
		return cost * float64(max(0, floorDiv(months+1, 3)))
	case models.PeriodYearly:
		return cost * float64(max(1, floorDiv(months+1, 12)))
	case models.Period24Months:
		return cost * float64(max(0, floorDiv(months+1, 24)))
	}
	return 0
}

// AllocatedCostPerWorkflow divides a tool's allocated cost evenly across the
// client's active workflows. A zero workflow count contributes nothing.
func AllocatedCostPerWorkflow(tool models.ToolCost, referenceDate time.Time, fallbackStartDate *time.Time, workflowCount int) float64 {
	if workflowCount <= 0 {
		return 0
	}
	return AllocatedCost(tool, referenceDate, fallbackStartDate) / float64(workflowCount)
}

// clamp treats negative and NaN inputs as zero.
func clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// floorDiv divides rounding toward negative infinity, matching the floor
// semantics the billing formulas are defined with.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
