package config

import (
	"testing"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDefaults(t *testing.T) {
	assert.NoError(t, Validate(DefaultConfig()))
}

func TestValidateNil(t *testing.T) {
	err := Validate(nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid custom values",
			mutate: func(c *Config) { c.Processes.SortBy = "memory"; c.Processes.Limit = 5 },
		},
		{
			name:   "empty sort_by allowed",
			mutate: func(c *Config) { c.Processes.SortBy = "" },
		},
		{
			name:    "future version",
			mutate:  func(c *Config) { c.Version = CurrentConfigVersion + 1 },
			wantErr: "from the future",
		},
		{
			name:    "bad sort key",
			mutate:  func(c *Config) { c.Processes.SortBy = "pid" },
			wantErr: "processes.sort_by",
		},
		{
			name:    "negative limit",
			mutate:  func(c *Config) { c.Processes.Limit = -1 },
			wantErr: "processes.limit can't be negative",
		},
		{
			name:   "zero limit means default",
			mutate: func(c *Config) { c.Processes.Limit = 0 },
		},
		{
			name:    "negative cpu interval",
			mutate:  func(c *Config) { c.CPU.Interval = -0.5 },
			wantErr: "cpu.interval can't be negative",
		},
		{
			name:    "huge cpu interval",
			mutate:  func(c *Config) { c.CPU.Interval = 3600 },
			wantErr: "cpu.interval is 3600 seconds",
		},
		{
			name:    "negative watch interval",
			mutate:  func(c *Config) { c.Watch.Interval = -2 },
			wantErr: "watch.interval can't be negative",
		},
		{
			name:    "bad color mode",
			mutate:  func(c *Config) { c.Output.Color = "rainbow" },
			wantErr: "output.color",
		},
		{
			name:    "server name with spaces",
			mutate:  func(c *Config) { c.Server.Name = "sys mon" },
			wantErr: "server.name",
		},
		{
			name:   "empty server name allowed",
			mutate: func(c *Config) { c.Server.Name = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig), "want CONFIG, got %v", err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
