// Package ui provides terminal UI components for sysmon's CLI output.
//
// The package includes spinners, percent meters, sparklines, tables, and
// styled text output using the Lip Gloss library for consistent terminal
// styling across all commands.
//
// # Components Overview
//
//	Spinner       - Animated status indicator for long-running samples
//	Percent meter - Visual percentage indicator with color thresholds
//	Sparkline     - Mini line graphs for historical data visualization
//	Tables        - Process, partition, and doctor-report tables
//	Header        - Branded header for the init wizard and dashboard
//
// # Color Scheme
//
// Colors are defined as hex values; lipgloss degrades them to the nearest
// ANSI color on terminals without truecolor support:
//
//	ColorSuccess   (green)  - Healthy readings, successful operations
//	ColorError     (red)    - Failures and critical readings
//	ColorWarning   (yellow) - Warnings and elevated readings
//	ColorInfo      (cyan)   - Informational messages
//	ColorMuted     (gray)   - Secondary text, timing info
//	ColorSecondary (blue)   - In-progress indicators
//
// Use DisableColors() to switch to monochrome output (for --no-color), or
// ApplyColorMode to honor the configured auto/always/never setting.
//
// # Symbols
//
// Unicode symbols provide visual status indicators:
//
//	SymbolSuccess  (checkmark) - Completed successfully
//	SymbolFail     (X)         - Failed
//	SymbolWarning  (triangle)  - Needs attention
//	SymbolPending  (circle)    - Not yet started
//	SymbolComplete (filled)    - Table status cells
//
// # Spinner Usage
//
// The Spinner type provides an animated indicator for operations:
//
//	s := ui.NewSpinner("Sampling CPU")
//	s.Start()
//	// ... do work ...
//	s.Success() // or s.Fail(), or s.Stop() to erase quietly
//
// The spinner animates on stderr so stdout stays clean, and handles line
// clearing and timing display itself.
//
// # Percent Meters
//
// Meters use block characters with color thresholds:
//
//	ui.RenderMeter(67.5, 20)  // [█████████████░░░░░░░]
//
// Colors change based on percentage: green (0-60%), yellow (60-80%), red
// (80-100%).
//
// # Bubble Tea Components
//
// For interactive TUI applications, use SpinnerComponent which wraps the
// Bubble Tea spinner for use in full-screen applications like the watch
// dashboard.
package ui
