package config

import (
	"fmt"

	"github.com/rileyhilliard/sysmon/internal/errors"
)

// maxInterval caps sampling windows; matching the dispatcher's bound keeps a
// config default from producing requests the dispatcher would reject.
const maxInterval = 60.0

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	// Check version
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but sysmon only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest sysmon: https://github.com/rileyhilliard/sysmon/releases")
	}

	if err := validateProcesses(cfg.Processes); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'processes' section in your .sysmon.yaml.")
	}

	if err := validateInterval("cpu.interval", cfg.CPU.Interval); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'cpu' section in your .sysmon.yaml.")
	}

	if err := validateInterval("watch.interval", cfg.Watch.Interval); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'watch' section in your .sysmon.yaml.")
	}

	if err := validateOutput(cfg.Output); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'output' section in your .sysmon.yaml.")
	}

	if err := validateServer(cfg.Server); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'server' section in your .sysmon.yaml.")
	}

	return nil
}

// validateProcesses checks the process listing defaults.
func validateProcesses(p ProcessesConfig) error {
	validSorts := map[string]bool{"cpu": true, "memory": true, "name": true, "": true}
	if !validSorts[p.SortBy] {
		return fmt.Errorf("processes.sort_by '%s' isn't valid - use 'cpu', 'memory', or 'name'", p.SortBy)
	}

	// Zero means "use the built-in default"; negative limits make no sense.
	if p.Limit < 0 {
		return fmt.Errorf("processes.limit can't be negative (got %d)", p.Limit)
	}

	return nil
}

// validateInterval checks a sampling window in seconds.
func validateInterval(field string, seconds float64) error {
	if seconds < 0 {
		return fmt.Errorf("%s can't be negative (got %g)", field, seconds)
	}
	if seconds > maxInterval {
		return fmt.Errorf("%s is %g seconds - that's longer than the %g second cap", field, seconds, maxInterval)
	}
	return nil
}

// validateOutput checks output configuration.
func validateOutput(out OutputConfig) error {
	validColors := map[string]bool{"auto": true, "always": true, "never": true, "": true}
	if !validColors[out.Color] {
		return fmt.Errorf("output.color '%s' isn't valid - use 'auto', 'always', or 'never'", out.Color)
	}
	return nil
}

// validateServer checks the protocol server settings.
func validateServer(s ServerConfig) error {
	for _, r := range s.Name {
		if r == ' ' || r == '\t' || r == '\n' {
			return fmt.Errorf("server.name '%s' contains whitespace - use a plain identifier like 'sysmon'", s.Name)
		}
	}
	return nil
}
