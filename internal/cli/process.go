package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rileyhilliard/sysmon/internal/collector"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/ui"
	"github.com/rileyhilliard/sysmon/internal/util"
)

// parsePid turns a positional argument into a pid. Rejections carry the
// argument-validation code so they render the same as dispatcher failures.
func parsePid(arg string) (int, error) {
	pid, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.New(errors.ErrInvalidArgument,
			fmt.Sprintf("Invalid PID '%s'", arg),
			"PID must be a positive integer, e.g. sysmon process 4221")
	}
	if pid < 1 {
		return 0, errors.New(errors.ErrInvalidArgument,
			fmt.Sprintf("Invalid PID %d", pid),
			"PID must be a positive integer")
	}
	return pid, nil
}

func processCommand(pid int, jsonOut bool) error {
	result, err := runOperation("get_process_info", map[string]any{"pid": pid})
	if err != nil {
		return err
	}

	if jsonOut || MachineMode() {
		return WriteJSONSuccess(os.Stdout, result)
	}

	detail, ok := result.(*collector.ProcessDetail)
	if !ok {
		return errors.New(errors.ErrInternal, "Unexpected process detail payload", "")
	}

	fmt.Println()
	fmt.Println(ui.InfoStyle().Render(fmt.Sprintf("Process %d: %s", detail.PID, detail.Name)))
	fmt.Println()
	fmt.Print(ui.RenderKeyValues([]ui.KeyValue{
		{Key: "Status", Value: detail.Status},
		{Key: "Started", Value: detail.CreateTime},
		{Key: "CPU", Value: fmt.Sprintf("%.1f%%", detail.CPUPercent)},
		{Key: "Memory", Value: fmt.Sprintf("%s rss, %s vms (%.1f%%)",
			util.FormatBytes(detail.Memory.RSS), util.FormatBytes(detail.Memory.VMS), detail.Memory.Percent)},
		{Key: "Threads", Value: fmt.Sprintf("%d", detail.NumThreads)},
		{Key: "Parent", Value: fmt.Sprintf("%d", detail.PPID)},
		{Key: "Command", Value: util.Truncate(strings.Join(detail.Cmdline, " "), 80)},
		{Key: "Workdir", Value: orUnknown(detail.Cwd)},
		{Key: "User", Value: orUnknown(detail.Username)},
	}))
	fmt.Println()
	return nil
}

// orUnknown substitutes a muted placeholder for fields that degraded to
// empty under restricted privileges.
func orUnknown(s string) string {
	if s == "" {
		return ui.MutedStyle().Render("(unavailable)")
	}
	return s
}
