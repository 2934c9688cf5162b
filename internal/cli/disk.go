package cli

import (
	"fmt"
	"os"

	"github.com/rileyhilliard/sysmon/internal/collector"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/ui"
	"github.com/rileyhilliard/sysmon/internal/util"
)

func diskCommand(jsonOut bool) error {
	result, err := runOperation("get_disk_usage", nil)
	if err != nil {
		return err
	}

	if jsonOut || MachineMode() {
		return WriteJSONSuccess(os.Stdout, result)
	}

	partitions, ok := result.([]collector.PartitionUsage)
	if !ok {
		return errors.New(errors.ErrInternal, "Unexpected disk usage payload", "")
	}

	fmt.Println()
	fmt.Println(ui.InfoStyle().Render("Disk Usage"))
	fmt.Println()

	if len(partitions) == 0 {
		fmt.Println("  " + ui.MutedStyle().Render("No mounted partitions found"))
		fmt.Println()
		return nil
	}

	columns := []ui.TableColumn{
		{Title: "MOUNT", Width: 24},
		{Title: "DEVICE", Width: 20},
		{Title: "TYPE", Width: 8},
		{Title: "USED", Width: 10},
		{Title: "FREE", Width: 10},
		{Title: "USE%", Width: 6},
	}
	rows := make([][]string, 0, len(partitions))
	denied := 0
	for _, p := range partitions {
		if p.Error != "" {
			denied++
			continue
		}
		rows = append(rows, []string{
			util.Truncate(p.Mountpoint, 24),
			util.Truncate(p.Device, 20),
			p.Filesystem,
			util.FormatBytes(p.Used),
			util.FormatBytes(p.Free),
			fmt.Sprintf("%.0f%%", p.Percent),
		})
	}
	fmt.Println(ui.RenderSimpleTable(columns, rows))

	if denied > 0 {
		fmt.Println()
		fmt.Println("  " + ui.MutedStyle().Render(fmt.Sprintf("%d %s skipped: permission denied",
			denied, util.Pluralize(denied, "partition", "partitions"))))
	}
	fmt.Println()
	return nil
}
