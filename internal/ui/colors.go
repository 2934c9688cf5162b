package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Accent palette. Hex values render on truecolor terminals; lipgloss
// degrades them to the nearest ANSI color elsewhere.
const (
	ColorNeonPink lipgloss.Color = "#FF2E88"
	ColorNeonCyan lipgloss.Color = "#00E5FF"
)

// Surface colors for full-screen views.
const (
	ColorDarkSurface lipgloss.Color = "#14141E"
	ColorGlassBorder lipgloss.Color = "#2E2E44"
)

// Semantic colors for status indication.
const (
	ColorSuccess lipgloss.Color = "#3DF07C"
	ColorError   lipgloss.Color = "#FF4D5E"
	ColorWarning lipgloss.Color = "#FFC24B"
	ColorInfo    lipgloss.Color = "#00E5FF"
)

// Text colors for content hierarchy.
const (
	ColorPrimary   lipgloss.Color = "#EDEDF7"
	ColorSecondary lipgloss.Color = "#8C8CF0"
	ColorMuted     lipgloss.Color = "#6E6E82"
)

// SuccessStyle returns the style for success messages.
func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorSuccess)
}

// ErrorStyle returns the style for error messages.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorError)
}

// WarningStyle returns the style for warning messages.
func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorWarning)
}

// InfoStyle returns the style for informational messages.
func InfoStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorInfo)
}

// MutedStyle returns the style for secondary text.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted)
}

// DisableColors switches all lipgloss rendering to plain text.
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ApplyColorMode applies the configured color mode: "never" disables color,
// "always" forces it, and "auto" disables it when stdout is not a terminal
// or NO_COLOR is set.
func ApplyColorMode(mode string) {
	switch mode {
	case "never":
		DisableColors()
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	default:
		if os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stdout.Fd())) {
			DisableColors()
		}
	}
}

// TerminalWidth returns the current terminal width, or the fallback when
// stdout is not a terminal.
func TerminalWidth(fallback int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

// PrintWarning prints a styled warning message to stderr.
func PrintWarning(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", WarningStyle().Render(SymbolWarning), message)
}
