package cli

import (
	"os"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	statusJSONFlag    bool
	infoJSONFlag      bool
	cpuIntervalFlag   float64
	cpuJSONFlag       bool
	memoryJSONFlag    bool
	diskJSONFlag      bool
	processesSortFlag string
	processesLimitFlag int
	processesJSONFlag bool
	processJSONFlag   bool
	killForceFlag     bool
	killJSONFlag      bool
	networkJSONFlag   bool
	watchIntervalFlag float64
	doctorJSONFlag    bool
	doctorFixFlag     bool
	initForceFlag     bool
	versionJSONFlag   bool
	versionShortFlag  bool
)

// statusCmd shows the system status overview
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show system status overview",
	Long: `Display the headline numbers for this host.

Shows:
  - CPU usage
  - Memory used / total
  - Root disk used / total
  - Uptime
  - Process count

Examples:
  sysmon status
  sysmon status --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return statusCommand(statusJSONFlag)
	},
}

// infoCmd shows host and OS information
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show host and OS information",
	Long: `Display static host information: OS identity, hostname, boot time,
and physical/logical core counts.

Examples:
  sysmon info
  sysmon info --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return infoCommand(infoJSONFlag)
	},
}

// cpuCmd samples CPU usage
var cpuCmd = &cobra.Command{
	Use:   "cpu",
	Short: "Sample CPU usage",
	Long: `Sample CPU utilization over an interval and display total and
per-core percentages, clock frequency, and load averages.

Examples:
  sysmon cpu
  sysmon cpu --interval 2.5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		interval := cpuIntervalFlag
		if !cmd.Flags().Changed("interval") {
			if cfg, err := loadDefaults(); err == nil {
				interval = cfg.CPU.Interval
			}
		}
		return cpuCommand(interval, cpuJSONFlag)
	},
}

// memoryCmd shows RAM and swap usage
var memoryCmd = &cobra.Command{
	Use:   "memory",
	Short: "Show RAM and swap usage",
	Long: `Display virtual memory and swap usage with totals, availability,
and percentages.

Examples:
  sysmon memory
  sysmon memory --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return memoryCommand(memoryJSONFlag)
	},
}

// diskCmd shows partition usage
var diskCmd = &cobra.Command{
	Use:   "disk",
	Short: "Show disk usage for all partitions",
	Long: `Display usage for every mounted partition. Partitions the current
user cannot stat are listed with a permission note instead of failing
the whole report.

Examples:
  sysmon disk
  sysmon disk --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return diskCommand(diskJSONFlag)
	},
}

// processesCmd shows the process table
var processesCmd = &cobra.Command{
	Use:   "processes",
	Short: "List running processes",
	Long: `Display the process table sorted by CPU, memory, or name.

Examples:
  sysmon processes
  sysmon processes --sort memory --limit 10
  sysmon processes --sort name`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sortBy := processesSortFlag
		limit := processesLimitFlag
		if cfg, err := loadDefaults(); err == nil {
			if !cmd.Flags().Changed("sort") {
				sortBy = cfg.Processes.SortBy
			}
			if !cmd.Flags().Changed("limit") {
				limit = cfg.Processes.Limit
			}
		}
		return processesCommand(sortBy, limit, processesJSONFlag)
	},
}

// processCmd shows detail for one process
var processCmd = &cobra.Command{
	Use:   "process <pid>",
	Short: "Show detail for a single process",
	Long: `Display the full view of one process: status, start time, CPU and
memory usage, thread count, parent, command line, working directory,
and owner. Fields that need more privilege degrade to empty values.

Examples:
  sysmon process 1
  sysmon process 4221 --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pid, err := parsePid(args[0])
		if err != nil {
			return err
		}
		return processCommand(pid, processJSONFlag)
	},
}

// killCmd terminates a process
var killCmd = &cobra.Command{
	Use:   "kill <pid>",
	Short: "Terminate a process",
	Long: `Send SIGTERM to a process, or SIGKILL with --force.

One-shot: the signal is sent and the result reported immediately, with
no waiting for the process to exit.

Examples:
  sysmon kill 4221
  sysmon kill 4221 --force`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeLivePids,
	RunE: func(cmd *cobra.Command, args []string) error {
		pid, err := parsePid(args[0])
		if err != nil {
			return err
		}
		return killCommand(pid, killForceFlag, killJSONFlag)
	},
}

// networkCmd shows network stats
var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Show network interfaces and counters",
	Long: `Display host-wide network I/O counters, per-interface state and
addresses, and the open-socket count.

Examples:
  sysmon network
  sysmon network --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return networkCommand(networkJSONFlag)
	},
}

// serveCmd runs the protocol server on stdio
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP protocol server on stdio",
	Long: `Serve the eight monitoring operations over the MCP stdio protocol:
one JSON-RPC 2.0 message per line on stdin/stdout, logs on stderr.

Register with a chat-based CLI host:
  claude mcp add sysmon -- sysmon serve`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCommand()
	},
}

// watchCmd starts the live dashboard
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live system dashboard",
	Long: `Start an interactive dashboard showing CPU, memory, disk, top
processes, and network throughput, refreshed on an interval.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  r           Force refresh

Examples:
  sysmon watch
  sysmon watch --interval 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		interval := watchIntervalFlag
		if !cmd.Flags().Changed("interval") {
			if cfg, err := loadDefaults(); err == nil {
				interval = cfg.Watch.Interval
			}
		}
		if interval <= 0 {
			return errors.New(errors.ErrInvalidArgument,
				"Refresh interval must be greater than 0",
				"Try --interval 2")
		}
		return watchCommand(interval)
	},
}

// doctorCmd diagnoses installation and environment issues
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose installation and environment issues",
	Long: `Run diagnostic checks to identify common problems.

Checks:
  - Config file presence and validity
  - OS metrics readability (host info, process table, CPU sampling)
  - Installation (binary on PATH, shell completion, host CLI registration)
  - Network reachability

Examples:
  sysmon doctor
  sysmon doctor --fix`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand(doctorJSONFlag, doctorFixFlag)
	},
}

// initCmd creates a new .sysmon.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .sysmon.yaml configuration",
	Long: `Initialize a sysmon configuration file in the current directory.

Walks through the CLI defaults (process sort order, list limit, sample
intervals, color mode) with interactive prompts and writes .sysmon.yaml.

Examples:
  sysmon init
  sysmon init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForceFlag)
	},
}

// versionCmd shows version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display the sysmon version, commit hash, and build date.

Examples:
  sysmon version
  sysmon version --short`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return versionCommand(versionShortFlag, versionJSONFlag)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for sysmon.

Examples:
  # Bash
  sysmon completion bash > /etc/bash_completion.d/sysmon

  # Zsh
  sysmon completion zsh > "${fpath[1]}/_sysmon"

  # Fish
  sysmon completion fish > ~/.config/fish/completions/sysmon.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrInvalidArgument,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// status command flags
	statusCmd.Flags().BoolVar(&statusJSONFlag, "json", false, "output in JSON format")

	// info command flags
	infoCmd.Flags().BoolVar(&infoJSONFlag, "json", false, "output in JSON format")

	// cpu command flags
	cpuCmd.Flags().Float64Var(&cpuIntervalFlag, "interval", 1.0, "sample interval in seconds (max 60)")
	cpuCmd.Flags().BoolVar(&cpuJSONFlag, "json", false, "output in JSON format")

	// memory command flags
	memoryCmd.Flags().BoolVar(&memoryJSONFlag, "json", false, "output in JSON format")

	// disk command flags
	diskCmd.Flags().BoolVar(&diskJSONFlag, "json", false, "output in JSON format")

	// processes command flags
	processesCmd.Flags().StringVar(&processesSortFlag, "sort", "cpu", "sort order: cpu, memory, or name")
	processesCmd.Flags().IntVar(&processesLimitFlag, "limit", 20, "maximum number of processes to list")
	processesCmd.Flags().BoolVar(&processesJSONFlag, "json", false, "output in JSON format")
	_ = processesCmd.RegisterFlagCompletionFunc("sort", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"cpu", "memory", "name"}, cobra.ShellCompDirectiveNoFileComp
	})

	// process command flags
	processCmd.Flags().BoolVar(&processJSONFlag, "json", false, "output in JSON format")

	// kill command flags
	killCmd.Flags().BoolVarP(&killForceFlag, "force", "f", false, "send SIGKILL instead of SIGTERM")
	killCmd.Flags().BoolVar(&killJSONFlag, "json", false, "output in JSON format")

	// network command flags
	networkCmd.Flags().BoolVar(&networkJSONFlag, "json", false, "output in JSON format")

	// watch command flags
	watchCmd.Flags().Float64Var(&watchIntervalFlag, "interval", 2.0, "refresh interval in seconds")

	// doctor command flags
	doctorCmd.Flags().BoolVar(&doctorJSONFlag, "json", false, "output in JSON format")
	doctorCmd.Flags().BoolVar(&doctorFixFlag, "fix", false, "attempt automatic fixes where possible")

	// init command flags
	initCmd.Flags().BoolVarP(&initForceFlag, "force", "f", false, "overwrite existing config")

	// version command flags
	versionCmd.Flags().BoolVar(&versionShortFlag, "short", false, "print only the version number")
	versionCmd.Flags().BoolVar(&versionJSONFlag, "json", false, "output in JSON format")

	// Register all commands
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(cpuCmd)
	rootCmd.AddCommand(memoryCmd)
	rootCmd.AddCommand(diskCmd)
	rootCmd.AddCommand(processesCmd)
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(killCmd)
	rootCmd.AddCommand(networkCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}
