package cli

import (
	"fmt"
	"os"

	"github.com/rileyhilliard/sysmon/internal/collector"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/ui"
)

func infoCommand(jsonOut bool) error {
	result, err := runOperation("get_system_info", nil)
	if err != nil {
		return err
	}

	if jsonOut || MachineMode() {
		return WriteJSONSuccess(os.Stdout, result)
	}

	info, ok := result.(*collector.SystemInfo)
	if !ok {
		return errors.New(errors.ErrInternal, "Unexpected system info payload", "")
	}

	fmt.Println()
	fmt.Println(ui.InfoStyle().Render("System Information"))
	fmt.Println()
	fmt.Print(ui.RenderKeyValues([]ui.KeyValue{
		{Key: "Hostname", Value: info.Hostname},
		{Key: "OS", Value: info.OS.System + " " + info.OS.Release},
		{Key: "Kernel", Value: info.OS.Version},
		{Key: "Arch", Value: info.OS.Machine},
		{Key: "Cores", Value: fmt.Sprintf("%d physical, %d logical", info.CPUCount.Physical, info.CPUCount.Logical)},
		{Key: "Booted", Value: info.BootTime},
		{Key: "Runtime", Value: info.GoVersion},
	}))
	fmt.Println()
	return nil
}
