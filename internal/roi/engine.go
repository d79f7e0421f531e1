// Package roi implements the cost-allocation and ROI calculation engine
// behind the dashboard: pure, deterministic functions that turn workflow ROI
// configuration, execution statistics and client tool costs into monetary
// figures. The package performs no I/O and reads no clocks; callers supply
// the reference date explicitly.
//
// The engine never returns errors. Missing or malformed inputs degrade to a
// zero result with an empty formula trace, so a dashboard renders "£0"
// instead of failing.
package roi

import (
	"time"

	"github.com/n8nops/roi-dashboard/internal/models"
)

// Day-count conversion constants for fractional period math. The month and
// quarter figures are calendar averages (365.25/12 and 365.25/4), applied
// uniformly rather than counting the actual days of the specific months
// elapsed.
const (
	daysPerWeek       = 7.0
	avgDaysPerMonth   = 30.44
	avgDaysPerQuarter = 91.25
)

// Calculate dispatches to the calculation branch selected by the config's
// ROI type. A missing deployment date forces a zero result before any
// branch runs.
func Calculate(cfg models.WorkflowROIConfig, stats models.WorkflowExecutionStats) models.CalculationResult {
	switch cfg.ROIType {
	case models.ROITypePerExecution:
		return PerExecution(cfg, stats)
	case models.ROITypeRecurringTask:
		return RecurringTask(cfg, stats)
	case models.ROITypeNewCapability:
		return NewCapability(cfg, stats)
	}
	return newResult(cfg, stats)
}

// perExecutionParams are the normalized inputs of the per_execution branch.
type perExecutionParams struct {
	minutesSaved float64
	hourlyRate   float64
}

// PerExecution values time saved as executions × minutes-per-execution,
// converted to hours and priced at the configured labor rate.
func PerExecution(cfg models.WorkflowROIConfig, stats models.WorkflowExecutionStats) models.CalculationResult {
	res := newResult(cfg, stats)
	if cfg.DeploymentDate == nil {
		return res
	}

	p := perExecutionParams{
		minutesSaved: clamp(cfg.ManualMinutesSaved),
		hourlyRate:   clamp(cfg.HourlyRate),
	}
	executions := res.SuccessfulExecutions
	if p.minutesSaved <= 0 || p.hourlyRate <= 0 || executions <= 0 {
		return res
	}

	totalMinutes := float64(executions) * p.minutesSaved
	totalHours := totalMinutes / 60
	laborCost := totalHours * p.hourlyRate

	res.MinutesSaved = totalMinutes
	res.LaborCostSaved = laborCost
	res.FormulaTrace = perExecutionTrace(p, executions, totalMinutes, totalHours, laborCost, currencyOf(cfg))
	return res
}

// recurringTaskParams are the normalized inputs of the recurring_task branch.
type recurringTaskParams struct {
	minutesSaved float64
	hourlyRate   float64
	frequency    string
	occurrences  float64
}

// RecurringTask values time saved from a manual task the workflow replaced,
// scaled by the fractional number of frequency periods elapsed since
// deployment. Partial weeks, months and quarters contribute proportionally.
func RecurringTask(cfg models.WorkflowROIConfig, stats models.WorkflowExecutionStats) models.CalculationResult {
	res := newResult(cfg, stats)
	if cfg.DeploymentDate == nil {
		return res
	}

	p := recurringTaskParams{
		minutesSaved: clamp(cfg.ManualMinutesSaved),
		hourlyRate:   clamp(cfg.HourlyRate),
		frequency:    cfg.Frequency,
		occurrences:  clamp(cfg.OccurrencesPerFrequency),
	}
	if p.occurrences == 0 {
		p.occurrences = 1
	}
	if p.minutesSaved <= 0 || p.hourlyRate <= 0 {
		return res
	}

	periods, ok := periodsElapsed(p.frequency, res.DaysSinceDeployment)
	if !ok {
		return res
	}

	totalOccurrences := periods * p.occurrences
	totalMinutes := totalOccurrences * p.minutesSaved
	totalHours := totalMinutes / 60
	laborCost := totalHours * p.hourlyRate

	res.MinutesSaved = totalMinutes
	res.LaborCostSaved = laborCost
	res.FormulaTrace = recurringTaskTrace(p, res.DaysSinceDeployment, periods, totalOccurrences, totalMinutes, totalHours, laborCost, currencyOf(cfg))
	return res
}

// newCapabilityParams are the normalized inputs of the new_capability
// branch, covering its three mutually exclusive modes.
type newCapabilityParams struct {
	frequency         string
	valuePerFrequency float64

	clientsPerReport        float64
	reactivationRatePercent float64
	valuePerClient          float64

	valuePerExecution float64
}

// NewCapability values output the client could not produce manually. Three
// modes are tried in priority order: value per frequency period, conversion
// value per execution, then simple value per execution. Only the first
// matching mode runs.
func NewCapability(cfg models.WorkflowROIConfig, stats models.WorkflowExecutionStats) models.CalculationResult {
	res := newResult(cfg, stats)
	if cfg.DeploymentDate == nil {
		return res
	}

	p := newCapabilityParams{
		frequency:               cfg.Frequency,
		valuePerFrequency:       clamp(cfg.ValuePerFrequency),
		clientsPerReport:        clamp(cfg.ClientsPerReport),
		reactivationRatePercent: clamp(cfg.ReactivationRatePercent),
		valuePerClient:          clamp(cfg.ValuePerClient),
		valuePerExecution:       clamp(cfg.ValuePerExecution),
	}
	currency := currencyOf(cfg)
	executions := res.SuccessfulExecutions

	// A configured frequency claims the frequency mode outright: an
	// unrecognized frequency degrades to zero rather than falling through to
	// the execution-based modes.
	if p.frequency != "" && p.valuePerFrequency > 0 {
		periods, ok := periodsElapsed(p.frequency, res.DaysSinceDeployment)
		if !ok {
			return res
		}
		value := periods * p.valuePerFrequency
		res.ValueCreated = value
		res.FormulaTrace = capabilityFrequencyTrace(p, res.DaysSinceDeployment, periods, value, currency)
		return res
	}

	if p.clientsPerReport > 0 && p.reactivationRatePercent > 0 && p.valuePerClient > 0 {
		totalItems := float64(executions) * p.clientsPerReport
		convertedItems := totalItems * (p.reactivationRatePercent / 100)
		value := convertedItems * p.valuePerClient
		res.ValueCreated = value
		res.FormulaTrace = capabilityConversionTrace(p, executions, totalItems, convertedItems, value, currency)
		return res
	}

	if p.valuePerExecution > 0 && executions > 0 {
		value := float64(executions) * p.valuePerExecution
		res.ValueCreated = value
		res.FormulaTrace = capabilityPerExecutionTrace(p, executions, value, currency)
		return res
	}

	return res
}

// periodsElapsed converts elapsed days into a fractional count of frequency
// periods. Daily periods are whole days; the rest are fractional so partial
// periods contribute proportionally. Unknown frequencies report false.
func periodsElapsed(frequency string, days int) (float64, bool) {
	switch frequency {
	case models.FrequencyDaily:
		return float64(days), true
	case models.FrequencyWeekly:
		return float64(days) / daysPerWeek, true
	case models.FrequencyMonthly:
		return float64(days) / avgDaysPerMonth, true
	case models.FrequencyQuarterly:
		return float64(days) / avgDaysPerQuarter, true
	}
	return 0, false
}

// newResult builds the zero result for a config, carrying through the
// identification and cost fields the aggregator needs.
func newResult(cfg models.WorkflowROIConfig, stats models.WorkflowExecutionStats) models.CalculationResult {
	executions := stats.SuccessfulExecutions
	if executions < 0 {
		executions = 0
	}
	days := stats.DaysSinceDeployment
	if days < 0 {
		days = 0
	}
	return models.CalculationResult{
		WorkflowID:           cfg.WorkflowID,
		ROIType:              cfg.ROIType,
		CurrencyCode:         cfg.CurrencyCode,
		SuccessfulExecutions: executions,
		DaysSinceDeployment:  days,
		DeploymentDate:       cfg.DeploymentDate,
		ImplementationCost:   clamp(cfg.ImplementationCost),
		ImplementationDate:   cfg.ImplementationDate,
		ValueDescription:     cfg.ValueDescription,
	}
}

func currencyOf(cfg models.WorkflowROIConfig) string {
	if cfg.CurrencyCode != "" {
		return cfg.CurrencyCode
	}
	return DefaultCurrencyCode
}

// DefaultCurrencyCode is assumed when a config carries no currency.
const DefaultCurrencyCode = "GBP"

// ImplementationCostApplied returns the workflow's one-time implementation
// cost if it has been incurred by the reference date, zero otherwise.
func ImplementationCostApplied(res models.CalculationResult, referenceDate time.Time) float64 {
	if res.ImplementationDate == nil || referenceDate.Before(*res.ImplementationDate) {
		return 0
	}
	return clamp(res.ImplementationCost)
}
