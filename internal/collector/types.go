package collector

import "encoding/json"

// SystemInfo describes the host: OS identity, hardware counts, and boot time.
type SystemInfo struct {
	OS        OSInfo   `json:"os"`
	GoVersion string   `json:"go_version"`
	Hostname  string   `json:"hostname"`
	BootTime  string   `json:"boot_time"`
	CPUCount  CPUCount `json:"cpu_count"`
}

// OSInfo holds operating system identity fields.
type OSInfo struct {
	System    string `json:"system"`
	Release   string `json:"release"`
	Version   string `json:"version"`
	Machine   string `json:"machine"`
	Processor string `json:"processor"`
}

// CPUCount holds physical and logical core counts.
type CPUCount struct {
	Physical int `json:"physical"`
	Logical  int `json:"logical"`
}

// CPUUsage is a sampled CPU utilization snapshot.
type CPUUsage struct {
	TotalPercent  float64      `json:"total_percent"`
	PerCPUPercent []float64    `json:"per_cpu_percent"`
	Frequency     CPUFrequency `json:"frequency"`
	// LoadAverage is the 1/5/15 minute load triple, or null on platforms
	// without load averages.
	LoadAverage []float64 `json:"load_average"`
}

// CPUFrequency reports clock speeds in MHz. Fields are null where the
// metrics library cannot read them.
type CPUFrequency struct {
	Current *float64 `json:"current"`
	Min     *float64 `json:"min"`
	Max     *float64 `json:"max"`
}

// MemoryInfo combines RAM and swap usage.
type MemoryInfo struct {
	RAM  RAMInfo  `json:"ram"`
	Swap SwapInfo `json:"swap"`
}

// RAMInfo reports virtual memory usage in bytes plus derived GB figures.
type RAMInfo struct {
	Total       uint64  `json:"total"`
	Available   uint64  `json:"available"`
	Used        uint64  `json:"used"`
	Free        uint64  `json:"free"`
	Percent     float64 `json:"percent"`
	TotalGB     float64 `json:"total_gb"`
	AvailableGB float64 `json:"available_gb"`
}

// SwapInfo reports swap usage in bytes plus a derived GB figure.
type SwapInfo struct {
	Total   uint64  `json:"total"`
	Used    uint64  `json:"used"`
	Free    uint64  `json:"free"`
	Percent float64 `json:"percent"`
	TotalGB float64 `json:"total_gb"`
}

// PartitionUsage is one mounted partition's usage. When usage could not be
// read due to permissions, Error is set and only device, mountpoint, and
// error appear in the serialized form.
type PartitionUsage struct {
	Device     string  `json:"device"`
	Mountpoint string  `json:"mountpoint"`
	Filesystem string  `json:"filesystem"`
	Total      uint64  `json:"total"`
	Used       uint64  `json:"used"`
	Free       uint64  `json:"free"`
	Percent    float64 `json:"percent"`
	TotalGB    float64 `json:"total_gb"`
	FreeGB     float64 `json:"free_gb"`
	Error      string  `json:"error,omitempty"`
}

// MarshalJSON collapses permission-failure entries to the three-field shape.
func (p PartitionUsage) MarshalJSON() ([]byte, error) {
	if p.Error != "" {
		return json.Marshal(struct {
			Device     string `json:"device"`
			Mountpoint string `json:"mountpoint"`
			Error      string `json:"error"`
		}{p.Device, p.Mountpoint, p.Error})
	}
	type plain PartitionUsage
	return json.Marshal(plain(p))
}

// ProcessRecord is the transient per-process view used by process listings.
type ProcessRecord struct {
	PID           int32   `json:"pid"`
	Name          string  `json:"name"`
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	Status        string  `json:"status"`
}

// ProcessDetail is the full view of a single process.
type ProcessDetail struct {
	PID        int32         `json:"pid"`
	Name       string        `json:"name"`
	Status     string        `json:"status"`
	CreateTime string        `json:"create_time"`
	CPUPercent float64       `json:"cpu_percent"`
	Memory     ProcessMemory `json:"memory_info"`
	NumThreads int32         `json:"num_threads"`
	PPID       int32         `json:"ppid"`
	Cmdline    []string      `json:"cmdline"`
	Cwd        string        `json:"cwd"`
	Username   string        `json:"username"`
}

// ProcessMemory reports a process's memory footprint.
type ProcessMemory struct {
	RSS     uint64  `json:"rss"`
	VMS     uint64  `json:"vms"`
	Percent float64 `json:"percent"`
}

// KillResult is the outcome payload of a termination request.
type KillResult struct {
	Success bool   `json:"success"`
	PID     int32  `json:"pid"`
	Name    string `json:"name,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NetworkStats combines global counters, per-interface state, and the
// open-socket count.
type NetworkStats struct {
	GlobalStats      NetIOCounters            `json:"global_stats"`
	Interfaces       map[string]InterfaceInfo `json:"interfaces"`
	ConnectionsCount int                      `json:"connections_count"`
}

// NetIOCounters are the host-wide network I/O counters.
type NetIOCounters struct {
	BytesSent   uint64 `json:"bytes_sent"`
	BytesRecv   uint64 `json:"bytes_recv"`
	PacketsSent uint64 `json:"packets_sent"`
	PacketsRecv uint64 `json:"packets_recv"`
	Errin       uint64 `json:"errin"`
	Errout      uint64 `json:"errout"`
	Dropin      uint64 `json:"dropin"`
	Dropout     uint64 `json:"dropout"`
}

// InterfaceInfo is one network interface's state and addresses. Speed is
// null where the metrics library does not expose link speed.
type InterfaceInfo struct {
	IsUp      bool               `json:"is_up"`
	Speed     *int64             `json:"speed"`
	Addresses []InterfaceAddress `json:"addresses"`
}

// InterfaceAddress is one address bound to an interface.
type InterfaceAddress struct {
	Family  string `json:"family"`
	Address string `json:"address"`
	Netmask string `json:"netmask"`
}

// StatusSnapshot backs the plain-text status overview.
type StatusSnapshot struct {
	CPUPercent   float64
	MemPercent   float64
	MemUsedGB    float64
	MemTotalGB   float64
	DiskPercent  float64
	DiskUsedGB   float64
	DiskTotalGB  float64
	UptimeSecs   uint64
	ProcessCount int
}
