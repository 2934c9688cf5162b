package cli

import (
	"fmt"
	"os"

	"github.com/rileyhilliard/sysmon/internal/collector"
	"github.com/rileyhilliard/sysmon/internal/doctor"
	"github.com/rileyhilliard/sysmon/internal/ui"
	"github.com/rileyhilliard/sysmon/internal/util"
)

// DoctorOutput is the JSON shape of the doctor command.
type DoctorOutput struct {
	Categories map[string][]DoctorCheckJSON `json:"categories"`
	Summary    string                       `json:"summary"`
	Fixable    int                          `json:"fixable"`
	Healthy    bool                         `json:"healthy"`
}

// DoctorCheckJSON is one check result with the status as a string.
type DoctorCheckJSON struct {
	Name       string `json:"name"`
	Status     string `json:"status"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
	Fixable    bool   `json:"fixable,omitempty"`
}

func doctorCommand(jsonOut, fix bool) error {
	_, coll, log := newRuntime()
	checks := collectChecks(coll)

	// The network probe and the CPU sample each block for about a second,
	// so run the checks concurrently.
	spin := startSpinner(jsonOut, "Running diagnostics")
	results := doctor.RunAllParallel(checks)
	stopSpinner(spin)

	if fix {
		results = attemptFixes(checks, results, jsonOut)
	}

	if jsonOut || MachineMode() {
		if err := WriteJSONSuccess(os.Stdout, doctorOutput(checks, results)); err != nil {
			return err
		}
		if doctor.HasFailures(results) {
			return ErrSilent
		}
		return nil
	}

	fmt.Println()
	fmt.Print(ui.RenderDoctorTable(doctorRows(checks, results)))
	fmt.Println(summaryLine(results))
	if n := doctor.FixableCount(results); n > 0 && !fix {
		fmt.Println("  " + ui.MutedStyle().Render(
			fmt.Sprintf("%d %s can be fixed automatically; run with --fix", n, util.Pluralize(n, "issue", "issues"))))
	}
	fmt.Println()

	if doctor.HasFailures(results) {
		log.Debug("doctor found failing checks")
		return ErrSilent
	}
	return nil
}

// collectChecks assembles the full check list in report order.
func collectChecks(coll *collector.Collector) []doctor.Check {
	var checks []doctor.Check
	checks = append(checks, doctor.NewConfigChecks(Config())...)
	checks = append(checks, doctor.NewMetricsChecks(coll)...)
	checks = append(checks, doctor.NewInstallChecks()...)
	checks = append(checks, doctor.NewNetworkChecks()...)
	return checks
}

// attemptFixes runs Fix on every fixable issue and re-runs those checks so
// the report shows the post-fix state.
func attemptFixes(checks []doctor.Check, results []doctor.CheckResult, quiet bool) []doctor.CheckResult {
	fixed := 0
	for i, r := range results {
		if !r.Fixable || r.Status == doctor.StatusPass {
			continue
		}
		if err := checks[i].Fix(); err != nil {
			if !quiet {
				ui.PrintWarning(fmt.Sprintf("Fix for %s failed: %v", checks[i].Name(), err))
			}
			continue
		}
		results[i] = checks[i].Run()
		fixed++
	}
	if fixed > 0 && !quiet {
		fmt.Println(ui.SuccessStyle().Render(fmt.Sprintf("%s Applied %d %s", ui.SymbolSuccess,
			fixed, util.Pluralize(fixed, "fix", "fixes"))))
	}
	return results
}

func doctorRows(checks []doctor.Check, results []doctor.CheckResult) []ui.DoctorCheckRow {
	rows := make([]ui.DoctorCheckRow, len(results))
	for i, r := range results {
		rows[i] = ui.DoctorCheckRow{
			Status:     r.Status.String(),
			Category:   checks[i].Category(),
			Message:    r.Message,
			Suggestion: r.Suggestion,
		}
	}
	return rows
}

func doctorOutput(checks []doctor.Check, results []doctor.CheckResult) DoctorOutput {
	categories := make(map[string][]DoctorCheckJSON)
	for i, r := range results {
		cat := checks[i].Category()
		categories[cat] = append(categories[cat], DoctorCheckJSON{
			Name:       r.Name,
			Status:     r.Status.String(),
			Message:    r.Message,
			Suggestion: r.Suggestion,
			Fixable:    r.Fixable,
		})
	}
	return DoctorOutput{
		Categories: categories,
		Summary:    doctor.Summary(results),
		Fixable:    doctor.FixableCount(results),
		Healthy:    !doctor.HasFailures(results),
	}
}

func summaryLine(results []doctor.CheckResult) string {
	counts := doctor.CountByStatus(results)
	line := doctor.Summary(results)
	if doctor.HasFailures(results) {
		return ui.ErrorStyle().Render(fmt.Sprintf("%s %s (%d failed, %d warnings)",
			ui.SymbolFail, line, counts[doctor.StatusFail], counts[doctor.StatusWarn]))
	}
	if doctor.HasIssues(results) {
		return ui.WarningStyle().Render(fmt.Sprintf("%s %s", ui.SymbolWarning, line))
	}
	return ui.SuccessStyle().Render(fmt.Sprintf("%s %s", ui.SymbolSuccess, line))
}
