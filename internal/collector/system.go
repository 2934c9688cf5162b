package collector

import (
	"context"
	"runtime"
	"time"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
)

// SystemInfo reports OS identity, hostname, boot time, and core counts.
func (c *Collector) SystemInfo(ctx context.Context) (*SystemInfo, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Reading host information failed")
	}

	processor := ""
	if cpus, err := cpu.InfoWithContext(ctx); err == nil && len(cpus) > 0 {
		processor = cpus[0].ModelName
	}

	physical, err := cpu.CountsWithContext(ctx, false)
	if err != nil {
		c.log.Debug("physical core count unavailable: %v", err)
	}
	logical, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		c.log.Debug("logical core count unavailable: %v", err)
	}

	return &SystemInfo{
		OS: OSInfo{
			System:    info.OS,
			Release:   info.KernelVersion,
			Version:   info.Platform + " " + info.PlatformVersion,
			Machine:   info.KernelArch,
			Processor: processor,
		},
		GoVersion: runtime.Version(),
		Hostname:  info.Hostname,
		BootTime:  time.Unix(int64(info.BootTime), 0).Format(time.RFC3339),
		CPUCount: CPUCount{
			Physical: physical,
			Logical:  logical,
		},
	}, nil
}
