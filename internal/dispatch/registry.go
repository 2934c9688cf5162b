package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/rileyhilliard/sysmon/internal/collector"
	"github.com/rileyhilliard/sysmon/internal/errors"
)

// Argument bounds enforced before any OS call.
const (
	maxInterval   = 60.0
	minLimit      = 1
	defaultSortBy = string(collector.SortCPU)
	defaultLimit  = 20
)

// buildRegistry returns the fixed operation table. Order matters: it is the
// listing order shown to protocol clients and in help output.
func buildRegistry(c *collector.Collector) []Operation {
	return []Operation{
		{
			Name:        "get_system_info",
			Description: "Get comprehensive system information including OS, hardware, and environment.",
			Handler: func(ctx context.Context, _ Args) (any, error) {
				return c.SystemInfo(ctx)
			},
		},
		{
			Name:        "get_cpu_usage",
			Description: "Get current CPU usage statistics.",
			Params: []Param{
				{
					Name:        "interval",
					Type:        TypeNumber,
					Description: "Time interval in seconds for measuring CPU usage (default: 1.0)",
					Default:     1.0,
				},
			},
			Handler: func(ctx context.Context, args Args) (any, error) {
				interval, err := args.Float("interval", 1.0)
				if err != nil {
					return nil, err
				}
				if interval <= 0 || interval > maxInterval {
					return nil, errors.New(errors.ErrInvalidArgument,
						fmt.Sprintf("Argument 'interval' must be greater than 0 and at most %g seconds, got %g", maxInterval, interval),
						"")
				}
				return c.CPUUsage(ctx, time.Duration(interval*float64(time.Second)))
			},
		},
		{
			Name:        "get_memory_info",
			Description: "Get memory (RAM and swap) usage statistics.",
			Handler: func(ctx context.Context, _ Args) (any, error) {
				return c.MemoryInfo(ctx)
			},
		},
		{
			Name:        "get_disk_usage",
			Description: "Get disk usage information for all mounted partitions.",
			Handler: func(ctx context.Context, _ Args) (any, error) {
				return c.DiskUsage(ctx)
			},
		},
		{
			Name:        "list_processes",
			Description: "List running processes sorted by resource usage.",
			Params: []Param{
				{
					Name:        "sort_by",
					Type:        TypeString,
					Description: "Sort criterion - 'cpu', 'memory', or 'name' (default: 'cpu')",
					Default:     defaultSortBy,
					Enum:        []string{"cpu", "memory", "name"},
				},
				{
					Name:        "limit",
					Type:        TypeInteger,
					Description: "Maximum number of processes to return (default: 20)",
					Default:     defaultLimit,
				},
			},
			Handler: func(ctx context.Context, args Args) (any, error) {
				sortBy, err := args.String("sort_by", defaultSortBy)
				if err != nil {
					return nil, err
				}
				if !collector.ValidSortKey(sortBy) {
					return nil, errors.New(errors.ErrInvalidArgument,
						fmt.Sprintf("Argument 'sort_by' must be one of cpu, memory, name, got '%s'", sortBy),
						"")
				}
				limit, err := args.Int("limit", defaultLimit)
				if err != nil {
					return nil, err
				}
				if limit < minLimit {
					return nil, errors.New(errors.ErrInvalidArgument,
						fmt.Sprintf("Argument 'limit' must be at least %d, got %d", minLimit, limit),
						"")
				}
				return c.ListProcesses(ctx, collector.SortKey(sortBy), limit)
			},
		},
		{
			Name:        "kill_process",
			Description: "Terminate a process by its PID.",
			Params: []Param{
				{
					Name:        "pid",
					Type:        TypeInteger,
					Description: "Process ID to terminate",
					Required:    true,
				},
				{
					Name:        "force",
					Type:        TypeBoolean,
					Description: "Use SIGKILL instead of SIGTERM (default: false)",
					Default:     false,
				},
			},
			Handler: func(ctx context.Context, args Args) (any, error) {
				pid, err := requirePid(args)
				if err != nil {
					return nil, err
				}
				force, err := args.Bool("force", false)
				if err != nil {
					return nil, err
				}
				return c.KillProcess(ctx, pid, force)
			},
		},
		{
			Name:        "get_network_stats",
			Description: "Get network interface statistics and connections.",
			Handler: func(ctx context.Context, _ Args) (any, error) {
				return c.NetworkStats(ctx)
			},
		},
		{
			Name:        "get_process_info",
			Description: "Get detailed information about a specific process.",
			Params: []Param{
				{
					Name:        "pid",
					Type:        TypeInteger,
					Description: "Process ID to get information for",
					Required:    true,
				},
			},
			Handler: func(ctx context.Context, args Args) (any, error) {
				pid, err := requirePid(args)
				if err != nil {
					return nil, err
				}
				return c.ProcessDetail(ctx, pid)
			},
		},
	}
}

// requirePid extracts and bounds-checks the pid argument. Zero and negative
// pids are rejected here so handlers never signal process groups.
func requirePid(args Args) (int32, error) {
	pid, err := args.RequiredInt("pid")
	if err != nil {
		return 0, err
	}
	if pid < 1 {
		return 0, errors.New(errors.ErrInvalidArgument,
			fmt.Sprintf("Argument 'pid' must be a positive integer, got %d", pid),
			"")
	}
	return int32(pid), nil
}
