// Package watch implements the live terminal dashboard.
//
// The dashboard shows CPU, memory, and disk meters, the top processes, and
// network throughput for the local host, refreshed on a configurable
// interval.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm
// Architecture (Model-Update-View pattern):
//
//   - Model: Holds dashboard state (latest snapshot, history, dimensions)
//   - Update: Processes messages (keystrokes, tick events, new metrics)
//   - View: Renders the current state to a string for display
//
// # Message Flow
//
// The dashboard operates on a tick-based refresh cycle:
//
//  1. tickMsg fires at the configured interval (default 2s)
//  2. collectCmd() reads the metrics in a background command
//  3. metricsMsg arrives with results, updating the model
//  4. View() re-renders the dashboard with new data
//
// # History and Sparklines
//
// The History type stores CPU and memory percentages plus cumulative
// network counters in ring buffers. The percentages feed the sparklines;
// the counter deltas between consecutive samples yield throughput rates.
//
// # Keyboard Shortcuts
//
//	q, Ctrl+C   - Quit
//	r           - Force refresh
package watch
