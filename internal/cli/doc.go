// Package cli implements the sysmon command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to the operation dispatcher for the actual work. The general
// structure follows a clean separation between:
//
//   - Command definitions (cobra.Command instances in commands.go)
//   - Operation dispatch (internal/dispatch, shared with the protocol server)
//   - Rendering (styled text by default, JSON envelope under --json/--machine)
//
// # Command Structure
//
// The root command is "sysmon" with subcommands for different views:
//
//	sysmon status          - System status overview
//	sysmon info            - Host and OS information
//	sysmon cpu             - CPU usage sample
//	sysmon memory          - RAM and swap usage
//	sysmon disk            - Partition usage table
//	sysmon processes       - Process table
//	sysmon process <pid>   - Single-process detail
//	sysmon kill <pid>      - Terminate a process
//	sysmon network         - Interface stats and counters
//	sysmon serve           - Protocol server on stdio
//	sysmon watch           - Live dashboard
//	sysmon doctor          - Diagnose installation issues
//	sysmon init            - Create .sysmon.yaml config
//
// Every metric subcommand goes through the dispatcher, so the CLI and the
// protocol server expose exactly the same operations with the same
// validation. The status overview is the one composite view served outside
// the operation table; it reads the same collector the dispatcher wraps.
//
// # Flag Handling
//
// Global flags (--config, --machine, --no-color, --verbose) are defined on
// the root command and available to all subcommands. Command-specific flags
// like --sort and --interval are defined on individual commands, with
// defaults resolved from the config file when the flag is not set.
package cli
