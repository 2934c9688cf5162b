package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rileyhilliard/sysmon/internal/collector"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/ui"
	"github.com/spf13/cobra"
)

// completionProcessLimit bounds how many live processes shell completion
// offers for the pid argument.
const completionProcessLimit = 250

func killCommand(pid int, force, jsonOut bool) error {
	result, err := runOperation("kill_process", map[string]any{
		"pid":   pid,
		"force": force,
	})
	if err != nil {
		return err
	}

	res, ok := result.(*collector.KillResult)
	if !ok {
		return errors.New(errors.ErrInternal, "Unexpected kill result payload", "")
	}

	if jsonOut || MachineMode() {
		return WriteJSONSuccess(os.Stdout, res)
	}

	fmt.Println(ui.SuccessStyle().Render(ui.SymbolSuccess + " " + res.Message))
	return nil
}

// completeLivePids offers live pids with process names for the kill
// argument, formatted as "pid<TAB>name" so shells with rich completion
// show what each pid is.
func completeLivePids(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	result, err := runOperation("list_processes", map[string]any{
		"sort_by": "cpu",
		"limit":   completionProcessLimit,
	})
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	procs, ok := result.([]collector.ProcessRecord)
	if !ok {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	return formatPidCompletions(procs, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func formatPidCompletions(procs []collector.ProcessRecord, toComplete string) []string {
	completions := make([]string, 0, len(procs))
	for _, p := range procs {
		pid := strconv.Itoa(int(p.PID))
		if toComplete != "" && !strings.HasPrefix(pid, toComplete) {
			continue
		}
		entry := pid
		if p.Name != "" {
			entry += "\t" + p.Name
		}
		completions = append(completions, entry)
	}
	return completions
}
