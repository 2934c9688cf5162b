package collector

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// StatusOverview samples the headline numbers behind the status text:
// one-second CPU sample, memory, root-disk usage, uptime, process count.
func (c *Collector) StatusOverview(ctx context.Context) (*StatusSnapshot, error) {
	cpuPct, err := cpu.PercentWithContext(ctx, time.Second, false)
	if err != nil {
		return nil, errors.Wrap(err, "CPU sample failed")
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Reading virtual memory failed")
	}

	rootPath := "/"
	if runtime.GOOS == "windows" {
		rootPath = "C:\\"
	}
	du, err := disk.UsageWithContext(ctx, rootPath)
	if err != nil {
		return nil, errors.Wrap(err, "Reading root disk usage failed")
	}

	uptime, err := host.UptimeWithContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Reading uptime failed")
	}

	pids, err := process.PidsWithContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Counting processes failed")
	}

	snap := &StatusSnapshot{
		MemPercent:   round1(vm.UsedPercent),
		MemUsedGB:    round1(float64(vm.Used) / bytesPerGB),
		MemTotalGB:   round1(float64(vm.Total) / bytesPerGB),
		DiskPercent:  round1(du.UsedPercent),
		DiskUsedGB:   round1(float64(du.Used) / bytesPerGB),
		DiskTotalGB:  round1(float64(du.Total) / bytesPerGB),
		UptimeSecs:   uptime,
		ProcessCount: len(pids),
	}
	if len(cpuPct) > 0 {
		snap.CPUPercent = round1(cpuPct[0])
	}
	return snap, nil
}

// RenderStatus formats a snapshot as the plain-text overview block served
// at system://status and printed by the status subcommand.
func RenderStatus(s *StatusSnapshot) string {
	var b strings.Builder
	b.WriteString("System Status Overview\n")
	b.WriteString("=====================\n")
	fmt.Fprintf(&b, "CPU Usage: %g%%\n", s.CPUPercent)
	fmt.Fprintf(&b, "Memory: %g%% used (%g GB / %g GB)\n", s.MemPercent, s.MemUsedGB, s.MemTotalGB)
	fmt.Fprintf(&b, "Disk: %g%% used (%g GB / %g GB)\n", s.DiskPercent, s.DiskUsedGB, s.DiskTotalGB)
	fmt.Fprintf(&b, "Uptime: %s\n", FormatUptime(s.UptimeSecs))
	fmt.Fprintf(&b, "Processes: %d\n", s.ProcessCount)
	return b.String()
}

// FormatUptime renders seconds of uptime as "N days, H:MM:SS".
func FormatUptime(secs uint64) string {
	days := secs / 86400
	rem := secs % 86400
	hours := rem / 3600
	minutes := (rem % 3600) / 60
	seconds := rem % 60

	clock := fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	switch days {
	case 0:
		return clock
	case 1:
		return "1 day, " + clock
	default:
		return fmt.Sprintf("%d days, %s", days, clock)
	}
}
