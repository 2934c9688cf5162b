package cli

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/rileyhilliard/sysmon/internal/collector"
	"github.com/rileyhilliard/sysmon/internal/doctor"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCheck implements doctor.Check for testing
type mockCheck struct {
	name     string
	category string
	result   doctor.CheckResult
	fixed    bool
	fixErr   error
}

func (m *mockCheck) Name() string {
	if m.name == "" {
		return "mock_check"
	}
	return m.name
}

func (m *mockCheck) Category() string {
	if m.category == "" {
		return "TEST"
	}
	return m.category
}

func (m *mockCheck) Run() doctor.CheckResult {
	return m.result
}

func (m *mockCheck) Fix() error {
	m.fixed = true
	return m.fixErr
}

func TestCollectChecks_CoversAllCategories(t *testing.T) {
	coll := collector.New(logger.Noop())
	checks := collectChecks(coll)

	require.NotEmpty(t, checks)

	categories := make(map[string]bool)
	for _, check := range checks {
		categories[check.Category()] = true
	}

	assert.True(t, categories["CONFIG"], "should have CONFIG checks")
	assert.True(t, categories["METRICS"], "should have METRICS checks")
	assert.True(t, categories["INSTALL"], "should have INSTALL checks")
	assert.True(t, categories["NETWORK"], "should have NETWORK checks")
}

func TestAttemptFixes_PassStatusSkipped(t *testing.T) {
	results := []doctor.CheckResult{
		{Status: doctor.StatusPass, Message: "All good", Fixable: true},
	}
	mockChk := &mockCheck{result: results[0]}
	checks := []doctor.Check{mockChk}

	newResults := attemptFixes(checks, results, true)

	assert.False(t, mockChk.fixed, "passing checks should not be fixed")
	assert.Equal(t, doctor.StatusPass, newResults[0].Status)
}

func TestAttemptFixes_FailStatusFixed(t *testing.T) {
	results := []doctor.CheckResult{
		{Status: doctor.StatusFail, Message: "Something failed", Fixable: true},
	}
	checks := []doctor.Check{
		&mockCheck{
			result: doctor.CheckResult{Status: doctor.StatusPass, Message: "Fixed!"},
		},
	}

	newResults := attemptFixes(checks, results, true)

	// After fix, the check re-runs and reports the new state
	assert.Equal(t, doctor.StatusPass, newResults[0].Status)
	assert.Equal(t, "Fixed!", newResults[0].Message)
}

func TestAttemptFixes_WarnStatusFixed(t *testing.T) {
	results := []doctor.CheckResult{
		{Status: doctor.StatusWarn, Message: "Warning", Fixable: true},
	}
	checks := []doctor.Check{
		&mockCheck{
			result: doctor.CheckResult{Status: doctor.StatusPass, Message: "Fixed warning"},
		},
	}

	newResults := attemptFixes(checks, results, true)
	assert.Equal(t, doctor.StatusPass, newResults[0].Status)
}

func TestAttemptFixes_NotFixableSkipped(t *testing.T) {
	original := doctor.CheckResult{
		Status:  doctor.StatusFail,
		Message: "Not fixable failure",
		Fixable: false,
	}
	results := []doctor.CheckResult{original}
	mockChk := &mockCheck{result: original}

	newResults := attemptFixes([]doctor.Check{mockChk}, results, true)

	assert.False(t, mockChk.fixed)
	assert.Equal(t, original, newResults[0])
}

func TestAttemptFixes_FixErrorKeepsOriginal(t *testing.T) {
	original := doctor.CheckResult{
		Status:  doctor.StatusFail,
		Message: "Fixable but will error",
		Fixable: true,
	}
	results := []doctor.CheckResult{original}
	checks := []doctor.Check{
		&mockCheck{result: original, fixErr: fmt.Errorf("fix failed")},
	}

	newResults := attemptFixes(checks, results, true)

	assert.Equal(t, original, newResults[0])
}

func TestAttemptFixes_MultipleChecks(t *testing.T) {
	results := []doctor.CheckResult{
		{Status: doctor.StatusPass, Message: "Already passing", Fixable: false},
		{Status: doctor.StatusFail, Message: "Failing check", Fixable: true},
		{Status: doctor.StatusWarn, Message: "Warning check", Fixable: true},
		{Status: doctor.StatusFail, Message: "Not fixable", Fixable: false},
	}
	checks := []doctor.Check{
		&mockCheck{result: results[0]},
		&mockCheck{result: doctor.CheckResult{Status: doctor.StatusPass, Message: "Fixed 1"}},
		&mockCheck{result: doctor.CheckResult{Status: doctor.StatusPass, Message: "Fixed 2"}},
		&mockCheck{result: results[3]},
	}

	newResults := attemptFixes(checks, results, true)

	assert.Equal(t, doctor.StatusPass, newResults[0].Status) // unchanged
	assert.Equal(t, doctor.StatusPass, newResults[1].Status) // fixed
	assert.Equal(t, doctor.StatusPass, newResults[2].Status) // fixed
	assert.Equal(t, doctor.StatusFail, newResults[3].Status) // unchanged, not fixable
}

func TestDoctorRows_MapsResults(t *testing.T) {
	checks := []doctor.Check{
		&mockCheck{category: "CONFIG"},
		&mockCheck{category: "METRICS"},
	}
	results := []doctor.CheckResult{
		{Status: doctor.StatusPass, Message: "Config found"},
		{Status: doctor.StatusFail, Message: "Cannot sample CPU", Suggestion: "Check /proc"},
	}

	rows := doctorRows(checks, results)

	require.Len(t, rows, 2)
	assert.Equal(t, "pass", rows[0].Status)
	assert.Equal(t, "CONFIG", rows[0].Category)
	assert.Equal(t, "Config found", rows[0].Message)
	assert.Equal(t, "fail", rows[1].Status)
	assert.Equal(t, "METRICS", rows[1].Category)
	assert.Equal(t, "Check /proc", rows[1].Suggestion)
}

func TestDoctorOutput_GroupsByCategory(t *testing.T) {
	checks := []doctor.Check{
		&mockCheck{category: "CONFIG"},
		&mockCheck{category: "CONFIG"},
		&mockCheck{category: "NETWORK"},
	}
	results := []doctor.CheckResult{
		{Name: "config_file", Status: doctor.StatusPass, Message: "Found"},
		{Name: "config_schema", Status: doctor.StatusPass, Message: "Valid"},
		{Name: "connectivity", Status: doctor.StatusWarn, Message: "Offline", Suggestion: "Check cable"},
	}

	out := doctorOutput(checks, results)

	assert.Len(t, out.Categories["CONFIG"], 2)
	assert.Len(t, out.Categories["NETWORK"], 1)
	assert.Equal(t, "warn", out.Categories["NETWORK"][0].Status)
	assert.Equal(t, "1 issue found", out.Summary)
	assert.True(t, out.Healthy, "warnings alone should not mark the host unhealthy")
}

func TestDoctorOutput_FailuresMarkUnhealthy(t *testing.T) {
	checks := []doctor.Check{&mockCheck{category: "METRICS"}}
	results := []doctor.CheckResult{
		{Name: "cpu_sample", Status: doctor.StatusFail, Message: "Broken"},
	}

	out := doctorOutput(checks, results)

	assert.False(t, out.Healthy)
	assert.Equal(t, "1 issue found", out.Summary)
}

func TestDoctorOutput_JSONShape(t *testing.T) {
	checks := []doctor.Check{&mockCheck{category: "CONFIG"}}
	results := []doctor.CheckResult{
		{Name: "config_file", Status: doctor.StatusPass, Message: "Found"},
	}

	data, err := json.Marshal(doctorOutput(checks, results))
	require.NoError(t, err)

	assert.Contains(t, string(data), `"categories"`)
	assert.Contains(t, string(data), `"status":"pass"`)
	assert.Contains(t, string(data), `"summary":"Everything looks good"`)
	assert.Contains(t, string(data), `"fixable":0`)
	assert.Contains(t, string(data), `"healthy":true`)
}

func TestSummaryLine_AllClear(t *testing.T) {
	results := []doctor.CheckResult{
		{Status: doctor.StatusPass},
		{Status: doctor.StatusPass},
	}

	line := summaryLine(results)
	assert.Contains(t, line, "Everything looks good")
}

func TestSummaryLine_Warnings(t *testing.T) {
	results := []doctor.CheckResult{
		{Status: doctor.StatusPass},
		{Status: doctor.StatusWarn},
	}

	line := summaryLine(results)
	assert.Contains(t, line, "1 issue found")
}

func TestSummaryLine_Failures(t *testing.T) {
	results := []doctor.CheckResult{
		{Status: doctor.StatusFail},
		{Status: doctor.StatusWarn},
		{Status: doctor.StatusPass},
	}

	line := summaryLine(results)
	assert.Contains(t, line, "2 issues found")
	assert.Contains(t, line, "1 failed")
	assert.Contains(t, line, "1 warning")
}

func TestMockCheck_Defaults(t *testing.T) {
	check := &mockCheck{}

	assert.Equal(t, "mock_check", check.Name())
	assert.Equal(t, "TEST", check.Category())
}
