package cli

import (
	"encoding/json"
	"testing"

	"github.com/rileyhilliard/sysmon/internal/collector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOutput_MapsSnapshot(t *testing.T) {
	snap := &collector.StatusSnapshot{
		CPUPercent:   42.5,
		MemPercent:   61.2,
		MemUsedGB:    19.6,
		MemTotalGB:   32.0,
		DiskPercent:  48.0,
		DiskUsedGB:   240.0,
		DiskTotalGB:  500.0,
		UptimeSecs:   93784, // 1d 2h 3m 4s
		ProcessCount: 312,
	}

	out := statusOutput(snap)

	assert.Equal(t, 42.5, out.CPUPercent)
	assert.Equal(t, 61.2, out.Memory.Percent)
	assert.Equal(t, 19.6, out.Memory.UsedGB)
	assert.Equal(t, 32.0, out.Memory.TotalGB)
	assert.Equal(t, 48.0, out.Disk.Percent)
	assert.Equal(t, uint64(93784), out.UptimeSeconds)
	assert.Equal(t, 312, out.Processes)
	assert.NotEmpty(t, out.Uptime)
}

func TestStatusOutput_JSONShape(t *testing.T) {
	snap := &collector.StatusSnapshot{
		CPUPercent:   10.0,
		UptimeSecs:   3600,
		ProcessCount: 100,
	}

	data, err := json.Marshal(statusOutput(snap))
	require.NoError(t, err)

	assert.Contains(t, string(data), `"cpu_percent":10`)
	assert.Contains(t, string(data), `"uptime_seconds":3600`)
	assert.Contains(t, string(data), `"memory":{`)
	assert.Contains(t, string(data), `"disk":{`)
	assert.Contains(t, string(data), `"processes":100`)
}

func TestOutputStatusText_DoesNotPanic(t *testing.T) {
	snap := &collector.StatusSnapshot{
		CPUPercent:   35.0,
		MemPercent:   62.3,
		MemUsedGB:    19.9,
		MemTotalGB:   32.0,
		DiskPercent:  48.0,
		DiskUsedGB:   240.0,
		DiskTotalGB:  500.0,
		UptimeSecs:   7380,
		ProcessCount: 1,
	}

	assert.NotPanics(t, func() { outputStatusText(snap) })
}
