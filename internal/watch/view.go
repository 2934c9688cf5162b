package watch

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/sysmon/internal/ui"
	"github.com/rileyhilliard/sysmon/internal/util"
)

// Layout constants for the dashboard sections.
const (
	barWidth   = 30
	sparkWidth = 30
	nameWidth  = 26
)

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.status == nil {
		if m.lastErr != "" {
			b.WriteString(ui.ErrorStyle().Render(ui.SymbolFail + " " + m.lastErr))
		} else {
			b.WriteString(m.spin.View())
		}
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.renderMeters())
	b.WriteString("\n")
	b.WriteString(m.renderProcesses())
	b.WriteString("\n")
	b.WriteString(m.renderNetwork())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the title line with summary stats.
func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().
		Foreground(ui.ColorNeonCyan).
		Bold(true).
		Render("sysmon watch")

	var parts []string
	if m.status != nil {
		parts = append(parts, fmt.Sprintf("%d processes", m.status.ProcessCount))
		parts = append(parts, "up "+collectorUptime(m.status.UptimeSecs))
	}
	parts = append(parts, "last update "+m.updateText())

	stats := ui.MutedStyle().Render(" | " + strings.Join(parts, " | "))

	header := title + stats
	if m.lastErr != "" {
		header += "\n" + ui.ErrorStyle().Render(ui.SymbolWarning+" "+m.lastErr)
	}
	return header
}

// updateText describes how fresh the current snapshot is.
func (m Model) updateText() string {
	switch secs := m.SecondsSinceUpdate(); {
	case secs < 0:
		return "never"
	case secs == 0:
		return "just now"
	case secs == 1:
		return "1s ago"
	default:
		return fmt.Sprintf("%ds ago", secs)
	}
}

// renderMeters renders the CPU, memory, and disk meters with sparklines.
func (m Model) renderMeters() string {
	var b strings.Builder

	cpuSpark := ui.RenderSparkline(m.history.CPU(sparkWidth), sparkWidth)
	memSpark := ui.RenderSparkline(m.history.Memory(sparkWidth), sparkWidth)

	b.WriteString("  " + ui.RenderMeterLine("CPU", m.status.CPUPercent, barWidth))
	if cpuSpark != "" {
		b.WriteString("  " + cpuSpark)
	}
	b.WriteString("\n")

	b.WriteString("  " + ui.RenderMeterLine("Memory", m.status.MemPercent, barWidth))
	if memSpark != "" {
		b.WriteString("  " + memSpark)
	}
	b.WriteString(fmt.Sprintf("  %.1f/%.1f GB", m.status.MemUsedGB, m.status.MemTotalGB))
	b.WriteString("\n")

	b.WriteString("  " + ui.RenderMeterLine("Disk", m.status.DiskPercent, barWidth))
	b.WriteString(fmt.Sprintf("  %.1f/%.1f GB", m.status.DiskUsedGB, m.status.DiskTotalGB))
	b.WriteString("\n")

	return b.String()
}

// renderProcesses renders the top-process table.
func (m Model) renderProcesses() string {
	if len(m.procs) == 0 {
		return ui.MutedStyle().Render("  no process data") + "\n"
	}

	header := fmt.Sprintf("  %-8s %-*s %7s %7s", "PID", nameWidth, "NAME", "CPU%", "MEM%")

	var b strings.Builder
	b.WriteString(ui.MutedStyle().Render(header))
	b.WriteString("\n")
	for _, p := range m.procs {
		line := fmt.Sprintf("  %-8d %-*s %7.1f %7.1f",
			p.PID, nameWidth, util.Truncate(p.Name, nameWidth), p.CPUPercent, p.MemoryPercent)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// renderNetwork renders the throughput line derived from counter deltas.
func (m Model) renderNetwork() string {
	inRate, outRate := m.history.NetworkRate(m.interval.Seconds())
	line := fmt.Sprintf("  Net     ↓ %s  ↑ %s",
		util.FormatRate(inRate), util.FormatRate(outRate))
	return line + "\n"
}

// renderFooter renders the keyboard help footer.
func (m Model) renderFooter() string {
	hints := []string{
		"q quit",
		"r refresh",
	}
	return ui.MutedStyle().Render(strings.Join(hints, " | "))
}

// collectorUptime formats the uptime compactly for the header.
func collectorUptime(secs uint64) string {
	days := secs / 86400
	hours := (secs % 86400) / 3600
	mins := (secs % 3600) / 60
	if days > 0 {
		return fmt.Sprintf("%dd %dh", days, hours)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dm", mins)
}
