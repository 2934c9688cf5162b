package collector

import (
	"context"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/shirou/gopsutil/v3/disk"
)

// DiskUsage reports usage for every mounted physical partition. Partitions
// whose usage cannot be read for permission reasons become error entries
// rather than failing the whole call.
func (c *Collector) DiskUsage(ctx context.Context) ([]PartitionUsage, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, errors.Wrap(err, "Listing disk partitions failed")
	}

	out := make([]PartitionUsage, 0, len(parts))
	for _, part := range parts {
		usage, err := disk.UsageWithContext(ctx, part.Mountpoint)
		if err != nil {
			if isPermission(err) {
				out = append(out, PartitionUsage{
					Device:     part.Device,
					Mountpoint: part.Mountpoint,
					Error:      "Permission denied",
				})
				continue
			}
			return nil, errors.Wrap(err, "Reading usage for "+part.Mountpoint+" failed")
		}
		out = append(out, PartitionUsage{
			Device:     part.Device,
			Mountpoint: part.Mountpoint,
			Filesystem: part.Fstype,
			Total:      usage.Total,
			Used:       usage.Used,
			Free:       usage.Free,
			Percent:    round1(usage.UsedPercent),
			TotalGB:    toGB(usage.Total),
			FreeGB:     toGB(usage.Free),
		})
	}
	return out, nil
}
