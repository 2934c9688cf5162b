package config

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .sysmon.yaml configuration file. It holds
// CLI defaults only; every value can be overridden per invocation with flags.
type Config struct {
	Version   int             `yaml:"version" mapstructure:"version"`
	Processes ProcessesConfig `yaml:"processes" mapstructure:"processes"`
	CPU       CPUConfig       `yaml:"cpu" mapstructure:"cpu"`
	Watch     WatchConfig     `yaml:"watch" mapstructure:"watch"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
}

// ProcessesConfig sets defaults for the process listing.
type ProcessesConfig struct {
	// SortBy is the default sort criterion: "cpu", "memory", or "name".
	SortBy string `yaml:"sort_by" mapstructure:"sort_by"`

	// Limit is the default maximum number of processes listed.
	Limit int `yaml:"limit" mapstructure:"limit"`
}

// CPUConfig sets defaults for CPU sampling.
type CPUConfig struct {
	// Interval is the default sampling window in seconds.
	Interval float64 `yaml:"interval" mapstructure:"interval"`
}

// WatchConfig sets defaults for the live dashboard.
type WatchConfig struct {
	// Interval is the refresh period in seconds.
	Interval float64 `yaml:"interval" mapstructure:"interval"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// ServerConfig controls how the protocol server announces itself.
type ServerConfig struct {
	// Name is the server name reported during the initialize handshake.
	Name string `yaml:"name" mapstructure:"name"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Processes: ProcessesConfig{
			SortBy: "cpu",
			Limit:  20,
		},
		CPU: CPUConfig{
			Interval: 1.0,
		},
		Watch: WatchConfig{
			Interval: 2.0,
		},
		Output: OutputConfig{
			Color: "auto",
		},
		Server: ServerConfig{
			Name: "sysmon",
		},
	}
}
