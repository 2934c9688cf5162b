package cli

import (
	"fmt"
	"os"

	"github.com/rileyhilliard/sysmon/internal/collector"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/ui"
)

func cpuCommand(interval float64, jsonOut bool) error {
	spin := startSpinner(jsonOut, fmt.Sprintf("Sampling CPU over %gs", interval))
	result, err := runOperation("get_cpu_usage", map[string]any{"interval": interval})
	stopSpinner(spin)
	if err != nil {
		return err
	}

	if jsonOut || MachineMode() {
		return WriteJSONSuccess(os.Stdout, result)
	}

	usage, ok := result.(*collector.CPUUsage)
	if !ok {
		return errors.New(errors.ErrInternal, "Unexpected CPU usage payload", "")
	}

	fmt.Println()
	fmt.Println(ui.InfoStyle().Render("CPU Usage"))
	fmt.Println()
	fmt.Println("  " + ui.RenderMeterLine("Total", usage.TotalPercent, meterWidth))
	fmt.Println()
	for i, pct := range usage.PerCPUPercent {
		fmt.Println("  " + ui.RenderMeterLine(fmt.Sprintf("Core %d", i), pct, meterWidth))
	}

	pairs := []ui.KeyValue{}
	if usage.Frequency.Current != nil {
		pairs = append(pairs, ui.KeyValue{Key: "Frequency", Value: fmt.Sprintf("%.0f MHz", *usage.Frequency.Current)})
	}
	if len(usage.LoadAverage) == 3 {
		pairs = append(pairs, ui.KeyValue{Key: "Load", Value: fmt.Sprintf("%.2f  %.2f  %.2f",
			usage.LoadAverage[0], usage.LoadAverage[1], usage.LoadAverage[2])})
	}
	if len(pairs) > 0 {
		fmt.Println()
		fmt.Print(ui.RenderKeyValues(pairs))
	}
	fmt.Println()
	return nil
}

// startSpinner begins a progress spinner for interactive terminals. JSON and
// machine output stay clean: no spinner is started for them.
func startSpinner(jsonOut bool, label string) *ui.Spinner {
	if jsonOut || MachineMode() {
		return nil
	}
	spin := ui.NewSpinner(label)
	spin.Start()
	return spin
}

func stopSpinner(spin *ui.Spinner) {
	if spin != nil {
		spin.Stop()
	}
}
