package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"

	"github.com/rileyhilliard/sysmon/internal/collector"
	"github.com/rileyhilliard/sysmon/internal/config"
	"github.com/rileyhilliard/sysmon/internal/dispatch"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags
var (
	configFlag  string
	verboseFlag bool
	noColorFlag bool
)

// ErrSilent signals a failure exit code after the command has already
// written its own output. Execute does not print it.
var ErrSilent = stderrors.New("exit with failure")

// rootCmd is the base command all subcommands hang off.
var rootCmd = &cobra.Command{
	Use:   "sysmon",
	Short: "System monitoring from your terminal",
	Long: `sysmon inspects the local host: CPU, memory, disk, processes, and network.

Every metric is available three ways: as a styled terminal view, as machine
JSON (--json / --machine), and over the MCP stdio protocol (sysmon serve)
for chat-based CLI hosts.

Examples:
  sysmon status
  sysmon processes --sort memory --limit 10
  sysmon kill 4221 --force
  sysmon serve`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		applyOutputMode()
		if verboseFlag {
			os.Setenv("SYSMON_DEBUG", "1")
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file (default: .sysmon.yaml search)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&machineMode, "machine", false, "machine-readable JSON output")
}

// Config returns the --config flag value.
func Config() string {
	return configFlag
}

// Verbose returns true if --verbose was passed.
func Verbose() bool {
	return verboseFlag
}

// applyOutputMode resolves the color mode from config and flags. Machine
// output always disables styling so the JSON stays clean.
func applyOutputMode() {
	mode := "auto"
	if cfg, err := loadDefaults(); err == nil {
		mode = cfg.Output.Color
	}
	if noColorFlag || machineMode {
		mode = "never"
	}
	ui.ApplyColorMode(mode)
}

// loadDefaults resolves config-backed flag defaults. An explicit --config
// that cannot be loaded is an error; a missing config just means defaults.
func loadDefaults() (*config.Config, error) {
	path, err := config.Find(Config())
	if err != nil {
		return nil, err
	}
	if path == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newRuntime builds the dispatcher stack the commands call into.
func newRuntime() (*dispatch.Dispatcher, *collector.Collector, logger.Logger) {
	log := logger.NewEnvLogger("[sysmon]")
	c := collector.New(log)
	return dispatch.New(c, log), c, log
}

// runOperation dispatches one operation with a fresh runtime.
func runOperation(name string, args map[string]any) (any, error) {
	d, _, _ := newRuntime()
	return d.Dispatch(context.Background(), name, args)
}

// Execute runs the root command and returns the process exit code:
// 0 on success, 1 on any failure.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if stderrors.Is(err, ErrSilent) {
			return 1
		}
		if MachineMode() {
			_ = WriteJSONFromError(os.Stdout, err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return 1
	}
	return 0
}
