package cli

import (
	"github.com/rileyhilliard/sysmon/internal/server"
)

func serveCommand() error {
	disp, coll, log := newRuntime()

	name := ""
	if cfg, err := loadDefaults(); err == nil {
		name = cfg.Server.Name
	}

	srv := server.New(disp, coll, server.Options{
		Name:    name,
		Version: GetVersion(),
	}, log)
	return srv.Serve()
}
