// Package collector wraps the OS-metrics library behind typed snapshot
// calls. Every result is computed fresh from live OS state; nothing is
// cached between calls. This is the only package that imports gopsutil.
package collector

import (
	"math"

	"github.com/rileyhilliard/sysmon/internal/logger"
)

const bytesPerGB = 1024 * 1024 * 1024

// Collector issues synchronous queries against the local host.
type Collector struct {
	log logger.Logger
}

// New creates a collector. A nil logger is replaced with a no-op one.
func New(log logger.Logger) *Collector {
	if log == nil {
		log = logger.Noop()
	}
	return &Collector{log: log}
}

// toGB converts bytes to gigabytes rounded to two decimals.
func toGB(b uint64) float64 {
	return round2(float64(b) / bytesPerGB)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
