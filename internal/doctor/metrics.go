package doctor

import (
	"context"
	"fmt"
	"time"

	"github.com/rileyhilliard/sysmon/internal/collector"
)

// metricsCheckTimeout bounds each OS-metrics probe.
const metricsCheckTimeout = 5 * time.Second

// cpuSampleWindow is deliberately short; the check cares about readability,
// not accuracy.
const cpuSampleWindow = 100 * time.Millisecond

// HostInfoCheck verifies the host identity metrics are readable.
type HostInfoCheck struct {
	Collector *collector.Collector
}

func (c *HostInfoCheck) Name() string     { return "host_info" }
func (c *HostInfoCheck) Category() string { return "METRICS" }

func (c *HostInfoCheck) Run() CheckResult {
	ctx, cancel := context.WithTimeout(context.Background(), metricsCheckTimeout)
	defer cancel()

	info, err := c.Collector.SystemInfo(ctx)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Host info unreadable: %v", err),
			Suggestion: "The metrics library cannot read this platform's host data",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Host info readable (%s %s)", info.OS.System, info.OS.Release),
	}
}

func (c *HostInfoCheck) Fix() error { return nil }

// ProcessTableCheck verifies the process table is enumerable.
type ProcessTableCheck struct {
	Collector *collector.Collector
}

func (c *ProcessTableCheck) Name() string     { return "process_table" }
func (c *ProcessTableCheck) Category() string { return "METRICS" }

func (c *ProcessTableCheck) Run() CheckResult {
	ctx, cancel := context.WithTimeout(context.Background(), metricsCheckTimeout)
	defer cancel()

	procs, err := c.Collector.ListProcesses(ctx, collector.SortCPU, 5)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Process table unreadable: %v", err),
			Suggestion: "Check /proc permissions or security policy restrictions",
		}
	}

	if len(procs) == 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "Process table is empty",
			Suggestion: "Per-process access may be restricted for this user",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Process table readable (%d sampled)", len(procs)),
	}
}

func (c *ProcessTableCheck) Fix() error { return nil }

// CPUSampleCheck verifies CPU utilization sampling works.
type CPUSampleCheck struct {
	Collector *collector.Collector
}

func (c *CPUSampleCheck) Name() string     { return "cpu_sample" }
func (c *CPUSampleCheck) Category() string { return "METRICS" }

func (c *CPUSampleCheck) Run() CheckResult {
	ctx, cancel := context.WithTimeout(context.Background(), metricsCheckTimeout)
	defer cancel()

	usage, err := c.Collector.CPUUsage(ctx, cpuSampleWindow)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("CPU sampling failed: %v", err),
			Suggestion: "The metrics library cannot sample CPU times on this platform",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("CPU sampling works (%.1f%% across %d cores)", usage.TotalPercent, len(usage.PerCPUPercent)),
	}
}

func (c *CPUSampleCheck) Fix() error { return nil }

// NewMetricsChecks returns the OS-metrics readability checks.
func NewMetricsChecks(coll *collector.Collector) []Check {
	return []Check{
		&HostInfoCheck{Collector: coll},
		&ProcessTableCheck{Collector: coll},
		&CPUSampleCheck{Collector: coll},
	}
}
