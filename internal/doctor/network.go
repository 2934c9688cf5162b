package doctor

import (
	"fmt"
	"time"

	probing "github.com/prometheus-community/pro-bing"
)

// Probe target and bounds. A public anycast resolver keeps the probe
// meaningful from almost anywhere.
const (
	probeTarget  = "1.1.1.1"
	probeCount   = 3
	probeTimeout = 3 * time.Second
)

// ConnectivityCheck probes a public resolver to report whether the host is
// online. Offline hosts are fine, so failures are warnings.
type ConnectivityCheck struct {
	Target string // Defaults to probeTarget
}

func (c *ConnectivityCheck) Name() string     { return "connectivity" }
func (c *ConnectivityCheck) Category() string { return "NETWORK" }

func (c *ConnectivityCheck) Run() CheckResult {
	target := c.Target
	if target == "" {
		target = probeTarget
	}

	pinger, err := probing.NewPinger(target)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Cannot build probe for %s: %v", target, err),
			Suggestion: "Check DNS resolution and network configuration",
		}
	}

	pinger.Count = probeCount
	pinger.Timeout = probeTimeout
	// UDP mode; ICMP sockets need elevated privileges on most systems
	pinger.SetPrivileged(false)

	if err := pinger.Run(); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Probe to %s failed: %v", target, err),
			Suggestion: "The host looks offline; network stats still work locally",
		}
	}

	stats := pinger.Statistics()
	if stats.PacketsRecv == 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("No replies from %s", target),
			Suggestion: "The host looks offline; network stats still work locally",
		}
	}

	return CheckResult{
		Name:   c.Name(),
		Status: StatusPass,
		Message: fmt.Sprintf("Network reachable (%d/%d replies from %s, avg %s)",
			stats.PacketsRecv, probeCount, target, stats.AvgRtt.Round(time.Millisecond)),
	}
}

func (c *ConnectivityCheck) Fix() error { return nil }

// NewNetworkChecks returns the network reachability checks.
func NewNetworkChecks() []Check {
	return []Check{
		&ConnectivityCheck{},
	}
}
