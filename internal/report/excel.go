// Package report builds the downloadable Excel rendering of a client's ROI
// figures.
package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/n8nops/roi-dashboard/internal/models"
	"github.com/n8nops/roi-dashboard/pkg/utils"
)

const (
	summarySheet   = "Summary"
	breakdownSheet = "Workflow Breakdown"
)

// Exporter writes ROI summaries and per-workflow breakdowns into xlsx
// workbooks.
type Exporter struct {
	logger *zap.Logger
}

// NewExporter creates a new report exporter
func NewExporter(logger *zap.Logger) *Exporter {
	return &Exporter{logger: logger}
}

// Build renders the summary and breakdown into a two-sheet workbook. The
// caller owns the returned file and must Close it.
func (e *Exporter) Build(client *models.Client, summary *models.ClientROISummary, rows []models.WorkflowROIBreakdown, generatedAt time.Time) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := e.writeSummarySheet(f, client, summary, generatedAt); err != nil {
		f.Close()
		return nil, err
	}
	if err := e.writeBreakdownSheet(f, summary.CurrencyCode, rows); err != nil {
		f.Close()
		return nil, err
	}

	// Drop the default sheet and open the workbook on the summary.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}
	index, err := f.GetSheetIndex(summarySheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to find summary sheet: %w", err)
	}
	f.SetActiveSheet(index)

	e.logger.Info("Built ROI report",
		zap.String("client_id", summary.ClientID),
		zap.Int("workflows", len(rows)))

	return f, nil
}

func (e *Exporter) writeSummarySheet(f *excelize.File, client *models.Client, summary *models.ClientROISummary, generatedAt time.Time) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	currency := summary.CurrencyCode

	lines := []struct {
		label string
		value interface{}
	}{
		{"Client", client.Name},
		{"Generated", generatedAt.Format("2006-01-02 15:04")},
		{"", ""},
		{"Active workflows", summary.ActiveWorkflows},
		{"Workflows with ROI", summary.WorkflowsWithROI},
		{"Total hours saved", summary.TotalHoursSaved},
		{"Labor cost saved", utils.FormatCurrency(summary.TotalLaborCostSaved, currency)},
		{"Value created", utils.FormatCurrency(summary.TotalValueCreated, currency)},
		{"Implementation costs", utils.FormatCurrency(summary.TotalImplementationCost, currency)},
		{"Tool costs", utils.FormatCurrency(summary.TotalToolCost, currency)},
		{"Total automation cost", utils.FormatCurrency(summary.TotalAutomationCost, currency)},
		{"Net ROI", utils.FormatCurrency(summary.NetROI, currency)},
	}

	for i, line := range lines {
		row := i + 1
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), line.label); err != nil {
			return fmt.Errorf("failed to write summary row %d: %w", row, err)
		}
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), line.value); err != nil {
			return fmt.Errorf("failed to write summary row %d: %w", row, err)
		}
	}

	if err := f.SetColWidth(summarySheet, "A", "A", 24); err != nil {
		return fmt.Errorf("failed to size summary columns: %w", err)
	}
	return f.SetColWidth(summarySheet, "B", "B", 20)
}

func (e *Exporter) writeBreakdownSheet(f *excelize.File, currency string, rows []models.WorkflowROIBreakdown) error {
	if _, err := f.NewSheet(breakdownSheet); err != nil {
		return fmt.Errorf("failed to create breakdown sheet: %w", err)
	}

	headers := []string{
		"Workflow", "ROI Type", "Executions", "Hours Saved",
		"Labor Cost Saved", "Value Created", "Implementation Cost",
		"Allocated Tool Cost", "Total Cost", "Net ROI",
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to locate header cell: %w", err)
		}
		if err := f.SetCellValue(breakdownSheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header %q: %w", h, err)
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.WorkflowName,
			row.ROIType,
			row.SuccessfulExecutions,
			row.MinutesSaved / 60,
			utils.FormatCurrency(row.LaborCostSaved, currency),
			utils.FormatCurrency(row.ValueCreated, currency),
			utils.FormatCurrency(row.ImplementationCostApplied, currency),
			utils.FormatCurrency(row.AllocatedToolCost, currency),
			utils.FormatCurrency(row.TotalCost, currency),
			utils.FormatCurrency(row.NetROI, currency),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to locate cell: %w", err)
			}
			if err := f.SetCellValue(breakdownSheet, cell, v); err != nil {
				return fmt.Errorf("failed to write breakdown row %d: %w", i+2, err)
			}
		}
	}

	return f.SetColWidth(breakdownSheet, "A", "A", 32)
}
