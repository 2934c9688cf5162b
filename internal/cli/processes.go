package cli

import (
	"fmt"
	"os"

	"github.com/rileyhilliard/sysmon/internal/collector"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/ui"
	"github.com/rileyhilliard/sysmon/internal/util"
)

func processesCommand(sortBy string, limit int, jsonOut bool) error {
	result, err := runOperation("list_processes", map[string]any{
		"sort_by": sortBy,
		"limit":   limit,
	})
	if err != nil {
		return err
	}

	if jsonOut || MachineMode() {
		return WriteJSONSuccess(os.Stdout, result)
	}

	procs, ok := result.([]collector.ProcessRecord)
	if !ok {
		return errors.New(errors.ErrInternal, "Unexpected process list payload", "")
	}

	fmt.Println()
	fmt.Println(ui.InfoStyle().Render(fmt.Sprintf("Processes by %s", sortBy)))
	fmt.Println()
	fmt.Println(renderProcessTable(procs))
	fmt.Println()
	fmt.Println("  " + ui.MutedStyle().Render(fmt.Sprintf("showing top %d", len(procs))))
	fmt.Println()
	return nil
}

func renderProcessTable(procs []collector.ProcessRecord) string {
	nameWidth := processNameWidth()
	columns := []ui.TableColumn{
		{Title: "PID", Width: 8},
		{Title: "NAME", Width: nameWidth},
		{Title: "CPU%", Width: 7},
		{Title: "MEM%", Width: 7},
		{Title: "STATUS", Width: 10},
	}
	rows := make([][]string, len(procs))
	for i, p := range procs {
		rows[i] = []string{
			fmt.Sprintf("%d", p.PID),
			util.Truncate(p.Name, nameWidth),
			fmt.Sprintf("%.1f", p.CPUPercent),
			fmt.Sprintf("%.1f", p.MemoryPercent),
			p.Status,
		}
	}
	return ui.RenderSimpleTable(columns, rows)
}

// processNameWidth gives the NAME column whatever terminal width the fixed
// columns leave over, so helper-process names with long suffixes survive
// on wide terminals. Width 28 is the floor and the non-tty fallback.
func processNameWidth() int {
	const siblings = 8 + 7 + 7 + 10 + 12 // fixed columns plus cell padding
	w := ui.TerminalWidth(siblings+28) - siblings
	if w < 28 {
		return 28
	}
	if w > 64 {
		return 64
	}
	return w
}
