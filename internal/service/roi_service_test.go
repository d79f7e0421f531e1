package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/n8nops/roi-dashboard/internal/models"
)

// mockWorkflowStore is a hand-written WorkflowStore mock.
type mockWorkflowStore struct {
	workflows []*models.Workflow
	err       error
}

func (m *mockWorkflowStore) ListActiveByClient(string) ([]*models.Workflow, error) {
	return m.workflows, m.err
}

func (m *mockWorkflowStore) CountActiveByClient(string) (int, error) {
	return len(m.workflows), m.err
}

func (m *mockWorkflowStore) GetStats(string, time.Time) ([]*models.WorkflowStats, error) {
	return nil, m.err
}

func (m *mockWorkflowStore) GetClientSummary(string, time.Time) (*models.ClientSummary, error) {
	return nil, m.err
}

type mockExecutionStore struct {
	counts map[string]int
	page   *models.ExecutionPage
	err    error
}

func (m *mockExecutionStore) ListRecent(string, models.ExecutionFilter, time.Time) (*models.ExecutionPage, error) {
	return m.page, m.err
}

func (m *mockExecutionStore) CountSuccessfulByWorkflow(string) (map[string]int, error) {
	return m.counts, m.err
}

type mockROIConfigStore struct {
	configs []*models.WorkflowROIConfig
	err     error
}

func (m *mockROIConfigStore) ListByClient(string) ([]*models.WorkflowROIConfig, error) {
	return m.configs, m.err
}

func (m *mockROIConfigStore) GetByWorkflow(string, string) (*models.WorkflowROIConfig, error) {
	return nil, m.err
}

func (m *mockROIConfigStore) Create(*models.WorkflowROIConfig) error { return m.err }
func (m *mockROIConfigStore) Update(*models.WorkflowROIConfig) error { return m.err }
func (m *mockROIConfigStore) Delete(string, string) error            { return m.err }

type mockToolCostStore struct {
	costs []models.ToolCost
	err   error
}

func (m *mockToolCostStore) ListByClient(string) ([]models.ToolCost, error) {
	return m.costs, m.err
}

func (m *mockToolCostStore) ReplaceForClient(string, []models.ToolCost) error {
	return m.err
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestROIService_Compute(t *testing.T) {
	referenceDate := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	workflows := &mockWorkflowStore{workflows: []*models.Workflow{
		{ID: "wf-1", Name: "Invoice processing", IsActive: true},
		{ID: "wf-2", Name: "Unconfigured workflow", IsActive: true},
	}}
	executions := &mockExecutionStore{counts: map[string]int{"wf-1": 100, "wf-2": 7}}
	configs := &mockROIConfigStore{configs: []*models.WorkflowROIConfig{
		{
			WorkflowID:         "wf-1",
			ROIType:            models.ROITypePerExecution,
			CurrencyCode:       "GBP",
			DeploymentDate:     datePtr(2025, time.January, 15),
			ManualMinutesSaved: 15,
			HourlyRate:         25,
		},
	}}
	tools := &mockToolCostStore{costs: []models.ToolCost{
		{Tool: "Hosting", Cost: 40, Recurring: true, Period: models.PeriodMonthly, StartDate: datePtr(2025, time.January, 15)},
	}}

	svc := NewROIService(workflows, executions, configs, tools, zap.NewNop(), fixedClock(referenceDate))

	summary, rows, computedAt, err := svc.Compute("client-1")
	require.NoError(t, err)
	assert.Equal(t, referenceDate, computedAt, "figures are reported against the clock's reference date")

	// 100 execs x 15 min = 1500 min = 25h x £25 = £625.
	assert.Equal(t, 1500.0, summary.TotalMinutesSaved)
	assert.Equal(t, 625.0, summary.TotalLaborCostSaved)
	// Five monthly billing cycles elapsed since mid January.
	assert.Equal(t, 200.0, summary.TotalToolCost)
	assert.Equal(t, 2, summary.ActiveWorkflows)
	assert.Equal(t, 1, summary.WorkflowsWithROI)
	assert.Equal(t, "client-1", summary.ClientID)

	require.Len(t, rows, 2, "unconfigured workflows still get a breakdown row")
	assert.Equal(t, "Invoice processing", rows[0].WorkflowName)
	assert.Equal(t, 100.0, rows[0].AllocatedToolCost)
	assert.Equal(t, "Unconfigured workflow", rows[1].WorkflowName)
	assert.Empty(t, rows[1].FormulaTrace)
	assert.Equal(t, 100.0, rows[1].AllocatedToolCost)
}

func TestROIService_SummaryReconcilesWithBreakdown(t *testing.T) {
	referenceDate := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	workflows := &mockWorkflowStore{workflows: []*models.Workflow{
		{ID: "wf-1", Name: "A", IsActive: true},
		{ID: "wf-2", Name: "B", IsActive: true},
		{ID: "wf-3", Name: "C", IsActive: true},
	}}
	executions := &mockExecutionStore{counts: map[string]int{"wf-1": 42, "wf-2": 9}}
	configs := &mockROIConfigStore{configs: []*models.WorkflowROIConfig{
		{
			WorkflowID:         "wf-1",
			ROIType:            models.ROITypePerExecution,
			DeploymentDate:     datePtr(2025, time.February, 1),
			ManualMinutesSaved: 30,
			HourlyRate:         40,
			ImplementationCost: 250,
			ImplementationDate: datePtr(2025, time.February, 1),
		},
		{
			WorkflowID:        "wf-2",
			ROIType:           models.ROITypeNewCapability,
			DeploymentDate:    datePtr(2025, time.March, 1),
			ValuePerExecution: 120,
		},
	}}
	tools := &mockToolCostStore{costs: []models.ToolCost{
		{Tool: "Dev", Cost: 1000, Recurring: false, EndDate: datePtr(2025, time.January, 20)},
		{Tool: "SaaS", Cost: 30, Recurring: true, Period: models.PeriodMonthly},
	}}

	svc := NewROIService(workflows, executions, configs, tools, zap.NewNop(), fixedClock(referenceDate))

	summary, rows, _, err := svc.Compute("client-1")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	var netBottomUp, costBottomUp float64
	for _, row := range rows {
		netBottomUp += row.NetROI
		costBottomUp += row.TotalCost
	}
	assert.InDelta(t, summary.NetROI, netBottomUp, 1e-9)
	assert.InDelta(t, summary.TotalAutomationCost, costBottomUp, 1e-9)
}

func TestROIService_DaysSinceDeploymentUsesClock(t *testing.T) {
	deployed := datePtr(2025, time.June, 1)
	workflows := &mockWorkflowStore{workflows: []*models.Workflow{{ID: "wf-1", Name: "A"}}}
	executions := &mockExecutionStore{counts: map[string]int{}}
	configs := &mockROIConfigStore{configs: []*models.WorkflowROIConfig{
		{
			WorkflowID:         "wf-1",
			ROIType:            models.ROITypeRecurringTask,
			DeploymentDate:     deployed,
			ManualMinutesSaved: 60,
			HourlyRate:         50,
			Frequency:          models.FrequencyDaily,
		},
	}}
	tools := &mockToolCostStore{}

	svc := NewROIService(workflows, executions, configs, tools, zap.NewNop(),
		fixedClock(time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC)))

	_, rows, _, err := svc.Compute("client-1")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, 10, rows[0].DaysSinceDeployment)
	// 10 days x 1 occurrence x 60 min = 10h x £50.
	assert.Equal(t, 500.0, rows[0].LaborCostSaved)
}

func TestROIService_FutureDeploymentClampsToZeroDays(t *testing.T) {
	workflows := &mockWorkflowStore{workflows: []*models.Workflow{{ID: "wf-1", Name: "A"}}}
	executions := &mockExecutionStore{counts: map[string]int{"wf-1": 3}}
	configs := &mockROIConfigStore{configs: []*models.WorkflowROIConfig{
		{
			WorkflowID:         "wf-1",
			ROIType:            models.ROITypeRecurringTask,
			DeploymentDate:     datePtr(2025, time.December, 1),
			ManualMinutesSaved: 60,
			HourlyRate:         50,
			Frequency:          models.FrequencyDaily,
		},
	}}

	svc := NewROIService(workflows, executions, configs, &mockToolCostStore{}, zap.NewNop(),
		fixedClock(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)))

	_, rows, _, err := svc.Compute("client-1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].DaysSinceDeployment)
	assert.Zero(t, rows[0].LaborCostSaved)
}

func TestROIService_PropagatesStoreErrors(t *testing.T) {
	boom := errors.New("db down")

	svc := NewROIService(
		&mockWorkflowStore{err: boom},
		&mockExecutionStore{},
		&mockROIConfigStore{},
		&mockToolCostStore{},
		zap.NewNop(), nil)

	_, _, _, err := svc.Compute("client-1")
	assert.ErrorIs(t, err, boom)
}

func TestDaysSince(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, daysSince(nil, now))
	assert.Equal(t, 0, daysSince(datePtr(2025, time.July, 1), now), "future dates clamp to zero")
	assert.Equal(t, 14, daysSince(datePtr(2025, time.June, 1), now), "partial days floor")
	assert.Equal(t, 0, daysSince(datePtr(2025, time.June, 15), now))
}
