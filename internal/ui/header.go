package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// headerDividerWidth is how many rule characters close out the header.
const headerDividerWidth = 50

// HeaderInfo is the content of the branded header.
type HeaderInfo struct {
	Version string // formatted version, like "v0.5.0"
	Tagline string // optional line under the title
}

// RenderHeader renders the header shown above interactive flows: the tool
// name with its version, an optional tagline, and a rule.
func RenderHeader(info HeaderInfo) string {
	title := lipgloss.NewStyle().Foreground(ColorNeonPink).Bold(true).Render("sysmon")
	version := lipgloss.NewStyle().Foreground(ColorNeonCyan).Render(info.Version)
	rule := lipgloss.NewStyle().Foreground(ColorGlassBorder).Render(strings.Repeat("━", headerDividerWidth))

	var b strings.Builder
	b.WriteString(title + " " + version + "\n")
	if info.Tagline != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(ColorSecondary).Render(info.Tagline) + "\n")
	}
	b.WriteString(rule + "\n")
	return b.String()
}

// PrintHeader writes the header to stdout.
func PrintHeader(info HeaderInfo) {
	fmt.Print(RenderHeader(info))
}
