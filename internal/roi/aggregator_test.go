package roi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n8nops/roi-dashboard/internal/models"
)

func summaryFixture() ([]models.CalculationResult, []models.ToolCost, time.Time) {
	referenceDate := date(2025, time.June, 15)

	results := []models.CalculationResult{
		{
			WorkflowID:         "wf-invoices",
			ROIType:            models.ROITypePerExecution,
			CurrencyCode:       "GBP",
			MinutesSaved:       600,
			LaborCostSaved:     250,
			FormulaTrace:       "trace",
			DeploymentDate:     datePtr(2025, time.January, 15),
			ImplementationCost: 300,
			ImplementationDate: datePtr(2025, time.January, 15),
		},
		{
			WorkflowID:         "wf-reactivation",
			ROIType:            models.ROITypeNewCapability,
			CurrencyCode:       "GBP",
			ValueCreated:       2000,
			FormulaTrace:       "trace",
			DeploymentDate:     datePtr(2025, time.March, 1),
			ImplementationCost: 450,
			ImplementationDate: datePtr(2026, time.January, 1), // not yet incurred
		},
	}

	tools := []models.ToolCost{
		{
			Tool:      "Development",
			Cost:      500,
			Recurring: false,
			EndDate:   datePtr(2025, time.February, 1),
		},
		{
			Tool:      "Hosting",
			Cost:      40,
			Recurring: true,
			Period:    models.PeriodMonthly,
			// No start date: anchors on the earliest deployment (15 Jan),
			// five elapsed months by mid June.
		},
	}

	return results, tools, referenceDate
}

func TestSummarize(t *testing.T) {
	results, tools, referenceDate := summaryFixture()

	summary := Summarize(results, tools, 2, referenceDate)

	assert.Equal(t, 600.0, summary.TotalMinutesSaved)
	assert.Equal(t, 10.0, summary.TotalHoursSaved)
	assert.Equal(t, 250.0, summary.TotalLaborCostSaved)
	assert.Equal(t, 2000.0, summary.TotalValueCreated)
	assert.Equal(t, 300.0, summary.TotalImplementationCost, "future implementation date is not yet incurred")
	assert.Equal(t, 700.0, summary.TotalToolCost, "500 one-time + 5 months of hosting")
	assert.Equal(t, 1000.0, summary.TotalAutomationCost)
	assert.Equal(t, 1250.0, summary.NetROI)
	assert.Equal(t, "GBP", summary.CurrencyCode)
	assert.Equal(t, 2, summary.ActiveWorkflows)
	assert.Equal(t, 2, summary.WorkflowsWithROI)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil, nil, 0, date(2025, time.June, 15))

	assert.Zero(t, summary.TotalLaborCostSaved)
	assert.Zero(t, summary.TotalAutomationCost)
	assert.Zero(t, summary.NetROI)
	assert.Equal(t, DefaultCurrencyCode, summary.CurrencyCode)
}

func TestBreakdown(t *testing.T) {
	results, tools, referenceDate := summaryFixture()

	rows := Breakdown(results, tools, 2, referenceDate)
	require.Len(t, rows, 2)

	// 700 total tool cost split across 2 active workflows.
	assert.Equal(t, 350.0, rows[0].AllocatedToolCost)
	assert.Equal(t, 350.0, rows[1].AllocatedToolCost)

	assert.Equal(t, 300.0, rows[0].ImplementationCostApplied)
	assert.Equal(t, 650.0, rows[0].TotalCost)
	assert.Equal(t, 250.0-650.0, rows[0].NetROI)

	assert.Equal(t, 0.0, rows[1].ImplementationCostApplied)
	assert.Equal(t, 350.0, rows[1].TotalCost)
	assert.Equal(t, 2000.0-350.0, rows[1].NetROI)
}

func TestBreakdown_ReconcilesWithSummary(t *testing.T) {
	results, tools, referenceDate := summaryFixture()

	summary := Summarize(results, tools, 2, referenceDate)
	rows := Breakdown(results, tools, 2, referenceDate)

	bottomUp := 0.0
	for _, row := range rows {
		bottomUp += row.NetROI
	}
	assert.Equal(t, summary.NetROI, bottomUp, "top-down and bottom-up net ROI must match")

	costBottomUp := 0.0
	for _, row := range rows {
		costBottomUp += row.TotalCost
	}
	assert.Equal(t, summary.TotalAutomationCost, costBottomUp)
}

func TestBreakdown_ZeroWorkflowCount(t *testing.T) {
	results, tools, referenceDate := summaryFixture()

	rows := Breakdown(results, tools, 0, referenceDate)
	for _, row := range rows {
		assert.Zero(t, row.AllocatedToolCost, "division by zero workflows short-circuits")
	}
}

func TestEarliestDeploymentDate(t *testing.T) {
	t.Run("picks the earliest non-nil date", func(t *testing.T) {
		results := []models.CalculationResult{
			{DeploymentDate: datePtr(2025, time.March, 1)},
			{DeploymentDate: nil},
			{DeploymentDate: datePtr(2025, time.January, 15)},
		}
		earliest := EarliestDeploymentDate(results)
		require.NotNil(t, earliest)
		assert.Equal(t, date(2025, time.January, 15), *earliest)
	})

	t.Run("nil when nothing deployed", func(t *testing.T) {
		assert.Nil(t, EarliestDeploymentDate([]models.CalculationResult{{}, {}}))
	})
}

func TestSummarize_DeterministicAcrossCalls(t *testing.T) {
	results, tools, referenceDate := summaryFixture()

	first := Summarize(results, tools, 2, referenceDate)
	second := Summarize(results, tools, 2, referenceDate)
	assert.Equal(t, first, second)
}
