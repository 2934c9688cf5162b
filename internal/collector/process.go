package collector

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/shirou/gopsutil/v3/process"
)

// SortKey selects the ordering for process listings.
type SortKey string

const (
	SortCPU    SortKey = "cpu"
	SortMemory SortKey = "memory"
	SortName   SortKey = "name"
)

// ValidSortKey reports whether s names a supported sort order.
func ValidSortKey(s string) bool {
	switch SortKey(s) {
	case SortCPU, SortMemory, SortName:
		return true
	}
	return false
}

// ListProcesses returns the current process table sorted by key. A limit
// greater than zero truncates the result; zero or negative means all.
// Processes that vanish mid-scan are skipped.
func (c *Collector) ListProcesses(ctx context.Context, key SortKey, limit int) ([]ProcessRecord, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Listing processes failed")
	}

	records := make([]ProcessRecord, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			// Gone or unreadable between enumeration and inspection.
			continue
		}
		cpuPct, err := p.CPUPercentWithContext(ctx)
		if err != nil {
			cpuPct = 0
		}
		memPct, err := p.MemoryPercentWithContext(ctx)
		if err != nil {
			memPct = 0
		}
		records = append(records, ProcessRecord{
			PID:           p.Pid,
			Name:          name,
			CPUPercent:    round2(cpuPct),
			MemoryPercent: round2(float64(memPct)),
			Status:        c.processStatus(ctx, p),
		})
	}

	return SortAndLimit(records, key, limit), nil
}

// SortAndLimit orders records by the given key and truncates to limit when
// limit is positive. CPU and memory sort descending; name sorts ascending
// case-insensitively.
func SortAndLimit(records []ProcessRecord, key SortKey, limit int) []ProcessRecord {
	switch key {
	case SortMemory:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].MemoryPercent > records[j].MemoryPercent
		})
	case SortName:
		sort.SliceStable(records, func(i, j int) bool {
			return strings.ToLower(records[i].Name) < strings.ToLower(records[j].Name)
		})
	default:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].CPUPercent > records[j].CPUPercent
		})
	}

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records
}

// ProcessDetail returns the full view of one process. The pid must exist;
// fields that need more privilege than the caller has degrade to empty
// values instead of failing the lookup.
func (c *Collector) ProcessDetail(ctx context.Context, pid int32) (*ProcessDetail, error) {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return nil, classifyProcessError(err,
			fmt.Sprintf("No process found with PID %d", pid),
			fmt.Sprintf("Access denied to process %d", pid),
			"Process lookup failed")
	}

	name, err := p.NameWithContext(ctx)
	if err != nil {
		return nil, classifyProcessError(err,
			fmt.Sprintf("No process found with PID %d", pid),
			fmt.Sprintf("Access denied to process %d", pid),
			"Process lookup failed")
	}

	detail := &ProcessDetail{
		PID:    pid,
		Name:   name,
		Status: c.processStatus(ctx, p),
	}

	if ct, err := p.CreateTimeWithContext(ctx); err == nil {
		detail.CreateTime = time.UnixMilli(ct).Format(time.RFC3339)
	}
	if pct, err := p.PercentWithContext(ctx, 100*time.Millisecond); err == nil {
		detail.CPUPercent = round2(pct)
	}
	if mi, err := p.MemoryInfoWithContext(ctx); err == nil && mi != nil {
		detail.Memory.RSS = mi.RSS
		detail.Memory.VMS = mi.VMS
	}
	if memPct, err := p.MemoryPercentWithContext(ctx); err == nil {
		detail.Memory.Percent = round2(float64(memPct))
	}
	if threads, err := p.NumThreadsWithContext(ctx); err == nil {
		detail.NumThreads = threads
	}
	if ppid, err := p.PpidWithContext(ctx); err == nil {
		detail.PPID = ppid
	}
	if cmdline, err := p.CmdlineSliceWithContext(ctx); err == nil {
		detail.Cmdline = cmdline
	}
	if cwd, err := p.CwdWithContext(ctx); err == nil {
		detail.Cwd = cwd
	}
	if username, err := p.UsernameWithContext(ctx); err == nil {
		detail.Username = username
	}

	return detail, nil
}

// KillProcess sends SIGTERM, or SIGKILL when force is set, to the given
// pid. One-shot: no waiting for the process to actually exit.
func (c *Collector) KillProcess(ctx context.Context, pid int32, force bool) (*KillResult, error) {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return nil, classifyProcessError(err,
			fmt.Sprintf("No process found with PID %d", pid),
			fmt.Sprintf("Access denied to terminate process %d", pid),
			"Process termination failed")
	}

	name, err := p.NameWithContext(ctx)
	if err != nil {
		name = ""
	}

	if force {
		err = p.KillWithContext(ctx)
	} else {
		err = p.TerminateWithContext(ctx)
	}
	if err != nil {
		return nil, classifyProcessError(err,
			fmt.Sprintf("No process found with PID %d", pid),
			fmt.Sprintf("Access denied to terminate process %d", pid),
			"Process termination failed")
	}

	c.log.Info("sent %s to pid %d (%s)", signalName(force), pid, name)

	return &KillResult{
		Success: true,
		PID:     pid,
		Name:    name,
		Message: fmt.Sprintf("Process %d (%s) terminated successfully", pid, name),
	}, nil
}

// processStatus reads the scheduler state, returning the first reported
// value or an empty string.
func (c *Collector) processStatus(ctx context.Context, p *process.Process) string {
	st, err := p.StatusWithContext(ctx)
	if err != nil || len(st) == 0 {
		return ""
	}
	return st[0]
}

func signalName(force bool) string {
	if force {
		return "SIGKILL"
	}
	return "SIGTERM"
}
