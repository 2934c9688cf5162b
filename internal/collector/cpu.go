package collector

import (
	"context"
	"time"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/load"
)

// CPUUsage samples CPU utilization over the given interval. The total and
// per-core figures are sampled back to back, so a call blocks for roughly
// twice the interval.
func (c *Collector) CPUUsage(ctx context.Context, interval time.Duration) (*CPUUsage, error) {
	total, err := cpu.PercentWithContext(ctx, interval, false)
	if err != nil {
		return nil, errors.Wrap(err, "CPU sample failed")
	}
	perCPU, err := cpu.PercentWithContext(ctx, interval, true)
	if err != nil {
		return nil, errors.Wrap(err, "Per-core CPU sample failed")
	}

	usage := &CPUUsage{
		PerCPUPercent: make([]float64, len(perCPU)),
		Frequency:     c.cpuFrequency(ctx),
		LoadAverage:   c.loadAverage(ctx),
	}
	if len(total) > 0 {
		usage.TotalPercent = round1(total[0])
	}
	for i, v := range perCPU {
		usage.PerCPUPercent[i] = round1(v)
	}
	return usage, nil
}

// cpuFrequency reads the current clock speed. The metrics library exposes
// no min/max, so those stay null.
func (c *Collector) cpuFrequency(ctx context.Context) CPUFrequency {
	freq := CPUFrequency{}
	info, err := cpu.InfoWithContext(ctx)
	if err != nil || len(info) == 0 {
		c.log.Debug("cpu frequency unavailable: %v", err)
		return freq
	}
	if mhz := info[0].Mhz; mhz > 0 {
		freq.Current = &mhz
	}
	return freq
}

// loadAverage returns the 1/5/15 minute triple, or nil on platforms
// without load averages.
func (c *Collector) loadAverage(ctx context.Context) []float64 {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		c.log.Debug("load average unavailable: %v", err)
		return nil
	}
	return []float64{avg.Load1, avg.Load5, avg.Load15}
}
