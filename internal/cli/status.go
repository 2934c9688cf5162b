package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rileyhilliard/sysmon/internal/collector"
	"github.com/rileyhilliard/sysmon/internal/ui"
	"github.com/rileyhilliard/sysmon/internal/util"
)

// meterWidth is the bar width used by the one-shot metric views.
const meterWidth = 30

// StatusOutput is the JSON shape of the status command.
type StatusOutput struct {
	CPUPercent    float64     `json:"cpu_percent"`
	Memory        StatusUsage `json:"memory"`
	Disk          StatusUsage `json:"disk"`
	Uptime        string      `json:"uptime"`
	UptimeSeconds uint64      `json:"uptime_seconds"`
	Processes     int         `json:"processes"`
}

// StatusUsage is one resource's percent plus used/total in GB.
type StatusUsage struct {
	Percent float64 `json:"percent"`
	UsedGB  float64 `json:"used_gb"`
	TotalGB float64 `json:"total_gb"`
}

func statusCommand(jsonOut bool) error {
	_, coll, _ := newRuntime()
	snap, err := coll.StatusOverview(context.Background())
	if err != nil {
		return err
	}

	if jsonOut || MachineMode() {
		return WriteJSONSuccess(os.Stdout, statusOutput(snap))
	}

	outputStatusText(snap)
	return nil
}

func statusOutput(snap *collector.StatusSnapshot) StatusOutput {
	return StatusOutput{
		CPUPercent: snap.CPUPercent,
		Memory: StatusUsage{
			Percent: snap.MemPercent,
			UsedGB:  snap.MemUsedGB,
			TotalGB: snap.MemTotalGB,
		},
		Disk: StatusUsage{
			Percent: snap.DiskPercent,
			UsedGB:  snap.DiskUsedGB,
			TotalGB: snap.DiskTotalGB,
		},
		Uptime:        collector.FormatUptime(snap.UptimeSecs),
		UptimeSeconds: snap.UptimeSecs,
		Processes:     snap.ProcessCount,
	}
}

func outputStatusText(snap *collector.StatusSnapshot) {
	fmt.Println()
	fmt.Println(ui.InfoStyle().Render("System Status"))
	fmt.Println()
	fmt.Println("  " + ui.RenderMeterLine("CPU", snap.CPUPercent, meterWidth))
	fmt.Printf("  %s  (%.1f GB / %.1f GB)\n",
		ui.RenderMeterLine("Memory", snap.MemPercent, meterWidth), snap.MemUsedGB, snap.MemTotalGB)
	fmt.Printf("  %s  (%.1f GB / %.1f GB)\n",
		ui.RenderMeterLine("Disk", snap.DiskPercent, meterWidth), snap.DiskUsedGB, snap.DiskTotalGB)
	fmt.Println()
	fmt.Print(ui.RenderKeyValues([]ui.KeyValue{
		{Key: "Uptime", Value: collector.FormatUptime(snap.UptimeSecs)},
		{Key: "Processes", Value: fmt.Sprintf("%d %s", snap.ProcessCount,
			util.Pluralize(snap.ProcessCount, "process", "processes"))},
	}))
	fmt.Println()
}
