package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/sysmon/internal/config"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/ui"
)

// nonInteractive reports whether prompts should be skipped. CI jobs and
// scripted installs set one of these.
func nonInteractive() bool {
	return os.Getenv("SYSMON_NON_INTERACTIVE") != "" || os.Getenv("CI") != ""
}

// checkExistingConfig decides whether init may proceed when a config file
// is already present. Returns false with no error when the user declined.
func checkExistingConfig(configPath string, force bool) (bool, error) {
	if _, err := os.Stat(configPath); err != nil {
		return true, nil // Nothing there yet
	}
	if force {
		return true, nil
	}

	if nonInteractive() {
		return false, errors.New(errors.ErrConfig,
			fmt.Sprintf("There's already a config file at %s", configPath),
			"Use --force to overwrite it")
	}

	var overwrite bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
				Value(&overwrite),
		),
	)
	if err := form.Run(); err != nil {
		return false, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Try running with --force to overwrite")
	}
	return overwrite, nil
}

// initCommand creates a new .sysmon.yaml in the current directory.
func initCommand(force bool) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	proceed, err := checkExistingConfig(configPath, force)
	if err != nil {
		return err
	}
	if !proceed {
		fmt.Println("Cancelled.")
		return nil
	}

	if nonInteractive() {
		if err := config.WriteFile(config.DefaultConfig(), configPath); err != nil {
			return err
		}
		fmt.Printf("%s Created %s with defaults\n", ui.SymbolSuccess, configPath)
		return nil
	}

	ui.PrintHeader(ui.HeaderInfo{
		Version: formatVersion(version),
		Tagline: "Local system monitor",
	})
	fmt.Println()

	// Seed the form from the current config where one parses, so re-running
	// init edits settings instead of resetting them. A broken file just
	// means defaults; init is how you repair it.
	defaults, err := config.LoadOrDefault()
	if err != nil {
		defaults = config.DefaultConfig()
	}
	sortBy := defaults.Processes.SortBy
	limitStr := strconv.Itoa(defaults.Processes.Limit)
	cpuIntervalStr := strconv.FormatFloat(defaults.CPU.Interval, 'g', -1, 64)
	watchIntervalStr := strconv.FormatFloat(defaults.Watch.Interval, 'g', -1, 64)
	colorMode := defaults.Output.Color
	serverName := defaults.Server.Name

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default process sort order").
				Options(
					huh.NewOption("CPU usage", "cpu"),
					huh.NewOption("Memory usage", "memory"),
					huh.NewOption("Name", "name"),
				).
				Value(&sortBy),
			huh.NewInput().
				Title("Process list limit").
				Description("How many processes the table shows by default").
				Value(&limitStr).
				Validate(validateLimit),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("CPU sample interval (seconds)").
				Description("Sampling window for the cpu command").
				Value(&cpuIntervalStr).
				Validate(validateInterval),
			huh.NewInput().
				Title("Dashboard refresh interval (seconds)").
				Description("How often the watch view refreshes").
				Value(&watchIntervalStr).
				Validate(validateInterval),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color output").
				Options(
					huh.NewOption("Auto (off when piped)", "auto"),
					huh.NewOption("Always", "always"),
					huh.NewOption("Never", "never"),
				).
				Value(&colorMode),
			huh.NewInput().
				Title("Protocol server name").
				Description("Name announced to MCP clients during the handshake").
				Value(&serverName).
				Validate(validateServerName),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility")
	}

	// Verify metrics are readable before saving
	fmt.Println()
	spinner := ui.NewSpinner("Sampling system metrics")
	spinner.Start()

	_, coll, _ := newRuntime()
	_, probeErr := coll.StatusOverview(context.Background())
	if probeErr != nil {
		spinner.Fail()

		// Sampling failed, but still offer to save the config
		var saveAnyway bool
		fmt.Printf("\n%s Metrics sample failed: %v\n\n", ui.SymbolFail, probeErr)
		confirm := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Save config anyway? (sysmon doctor can diagnose this later)").
					Value(&saveAnyway),
			),
		)
		if formErr := confirm.Run(); formErr != nil || !saveAnyway {
			return errors.WrapWithCode(probeErr, errors.ErrUnderlying,
				"System metrics are not readable",
				"Run 'sysmon doctor' to diagnose")
		}
	} else {
		spinner.Success()
		fmt.Println()
	}

	// Build config from the answers
	cfg := defaults
	cfg.Version = config.CurrentConfigVersion
	cfg.Processes.SortBy = sortBy
	cfg.Processes.Limit, _ = strconv.Atoi(strings.TrimSpace(limitStr))
	cfg.CPU.Interval, _ = strconv.ParseFloat(strings.TrimSpace(cpuIntervalStr), 64)
	cfg.Watch.Interval, _ = strconv.ParseFloat(strings.TrimSpace(watchIntervalStr), 64)
	cfg.Output.Color = colorMode
	cfg.Server.Name = strings.TrimSpace(serverName)

	if err := config.WriteFile(cfg, configPath); err != nil {
		return err
	}

	fmt.Printf("%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Println("Next steps:")
	fmt.Println("  sysmon status   - System overview")
	fmt.Println("  sysmon watch    - Live dashboard")
	fmt.Println("  sysmon doctor   - Check the installation")

	return nil
}

func validateLimit(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n < 1 {
		return fmt.Errorf("must be at least 1")
	}
	return nil
}

func validateInterval(s string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if f <= 0 {
		return fmt.Errorf("must be greater than 0")
	}
	if f > 60 {
		return fmt.Errorf("must be at most 60 seconds")
	}
	return nil
}

func validateServerName(s string) error {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return fmt.Errorf("server name is required")
	}
	if strings.ContainsAny(trimmed, " \t\n") {
		return fmt.Errorf("server name cannot contain whitespace")
	}
	return nil
}
