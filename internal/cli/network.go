package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/rileyhilliard/sysmon/internal/collector"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/ui"
	"github.com/rileyhilliard/sysmon/internal/util"
)

func networkCommand(jsonOut bool) error {
	result, err := runOperation("get_network_stats", nil)
	if err != nil {
		return err
	}

	if jsonOut || MachineMode() {
		return WriteJSONSuccess(os.Stdout, result)
	}

	stats, ok := result.(*collector.NetworkStats)
	if !ok {
		return errors.New(errors.ErrInternal, "Unexpected network stats payload", "")
	}

	fmt.Println()
	fmt.Println(ui.InfoStyle().Render("Network"))
	fmt.Println()
	fmt.Print(ui.RenderKeyValues([]ui.KeyValue{
		{Key: "Sent", Value: fmt.Sprintf("%s (%d packets)",
			util.FormatBytes(stats.GlobalStats.BytesSent), stats.GlobalStats.PacketsSent)},
		{Key: "Received", Value: fmt.Sprintf("%s (%d packets)",
			util.FormatBytes(stats.GlobalStats.BytesRecv), stats.GlobalStats.PacketsRecv)},
		{Key: "Errors", Value: fmt.Sprintf("%d in, %d out", stats.GlobalStats.Errin, stats.GlobalStats.Errout)},
		{Key: "Dropped", Value: fmt.Sprintf("%d in, %d out", stats.GlobalStats.Dropin, stats.GlobalStats.Dropout)},
		{Key: "Sockets", Value: formatConnectionCount(stats.ConnectionsCount)},
	}))
	fmt.Println()

	if len(stats.Interfaces) > 0 {
		fmt.Println(renderInterfaceTable(stats.Interfaces))
		fmt.Println()
	}
	return nil
}

func formatConnectionCount(count int) string {
	if count < 0 {
		return ui.MutedStyle().Render("(permission denied)")
	}
	return fmt.Sprintf("%d open", count)
}

func renderInterfaceTable(interfaces map[string]collector.InterfaceInfo) string {
	names := make([]string, 0, len(interfaces))
	for name := range interfaces {
		names = append(names, name)
	}
	sort.Strings(names)

	columns := []ui.TableColumn{
		{Title: "INTERFACE", Width: 14},
		{Title: "STATE", Width: 6},
		{Title: "ADDRESSES", Width: 44},
	}
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		iface := interfaces[name]
		state := "down"
		if iface.IsUp {
			state = "up"
		}
		addrs := make([]string, 0, len(iface.Addresses))
		for _, a := range iface.Addresses {
			addrs = append(addrs, a.Address)
		}
		rows = append(rows, []string{
			name,
			state,
			util.Truncate(util.JoinOrNone(addrs), 44),
		})
	}
	return ui.RenderSimpleTable(columns, rows)
}
