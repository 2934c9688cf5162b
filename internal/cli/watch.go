package cli

import (
	"time"

	"github.com/rileyhilliard/sysmon/internal/watch"
)

func watchCommand(interval float64) error {
	_, coll, log := newRuntime()
	return watch.Run(coll, log, time.Duration(interval*float64(time.Second)))
}
