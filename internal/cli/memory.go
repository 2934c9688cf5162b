package cli

import (
	"fmt"
	"os"

	"github.com/rileyhilliard/sysmon/internal/collector"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/ui"
	"github.com/rileyhilliard/sysmon/internal/util"
)

func memoryCommand(jsonOut bool) error {
	result, err := runOperation("get_memory_info", nil)
	if err != nil {
		return err
	}

	if jsonOut || MachineMode() {
		return WriteJSONSuccess(os.Stdout, result)
	}

	mem, ok := result.(*collector.MemoryInfo)
	if !ok {
		return errors.New(errors.ErrInternal, "Unexpected memory info payload", "")
	}

	fmt.Println()
	fmt.Println(ui.InfoStyle().Render("Memory"))
	fmt.Println()
	fmt.Printf("  %s  (%s / %s)\n",
		ui.RenderMeterLine("RAM", mem.RAM.Percent, meterWidth),
		util.FormatBytes(mem.RAM.Used), util.FormatBytes(mem.RAM.Total))
	if mem.Swap.Total > 0 {
		fmt.Printf("  %s  (%s / %s)\n",
			ui.RenderMeterLine("Swap", mem.Swap.Percent, meterWidth),
			util.FormatBytes(mem.Swap.Used), util.FormatBytes(mem.Swap.Total))
	} else {
		fmt.Println("  " + ui.MutedStyle().Render("Swap    not configured"))
	}
	fmt.Println()
	fmt.Print(ui.RenderKeyValues([]ui.KeyValue{
		{Key: "Available", Value: util.FormatBytes(mem.RAM.Available)},
		{Key: "Free", Value: util.FormatBytes(mem.RAM.Free)},
	}))
	fmt.Println()
	return nil
}
