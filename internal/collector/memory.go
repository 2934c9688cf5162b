package collector

import (
	"context"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/shirou/gopsutil/v3/mem"
)

// MemoryInfo reports RAM and swap usage.
func (c *Collector) MemoryInfo(ctx context.Context) (*MemoryInfo, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Reading virtual memory failed")
	}
	swap, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Reading swap memory failed")
	}

	return &MemoryInfo{
		RAM: RAMInfo{
			Total:       vm.Total,
			Available:   vm.Available,
			Used:        vm.Used,
			Free:        vm.Free,
			Percent:     round1(vm.UsedPercent),
			TotalGB:     toGB(vm.Total),
			AvailableGB: toGB(vm.Available),
		},
		Swap: SwapInfo{
			Total:   swap.Total,
			Used:    swap.Used,
			Free:    swap.Free,
			Percent: round1(swap.UsedPercent),
			TotalGB: toGB(swap.Total),
		},
	}, nil
}
