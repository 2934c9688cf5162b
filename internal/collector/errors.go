package collector

import (
	stderrors "errors"
	"os"
	"syscall"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/shirou/gopsutil/v3/process"
)

// classifyProcessError maps an OS-layer error onto the dispatch failure
// contract: vanished process, insufficient privilege, or pass-through.
// The caller supplies the user-facing message for each outcome.
func classifyProcessError(err error, notFoundMsg, deniedMsg, passMsg string) error {
	switch {
	case isNotRunning(err):
		return errors.WrapWithCode(err, errors.ErrNotFound,
			notFoundMsg,
			"The process may have already exited")
	case isPermission(err):
		return errors.WrapWithCode(err, errors.ErrPermission,
			deniedMsg,
			"Re-run with elevated privileges to manage other users' processes")
	default:
		return errors.Wrap(err, passMsg)
	}
}

func isNotRunning(err error) bool {
	return stderrors.Is(err, process.ErrorProcessNotRunning) ||
		stderrors.Is(err, syscall.ESRCH) ||
		stderrors.Is(err, os.ErrNotExist)
}

func isPermission(err error) bool {
	return stderrors.Is(err, os.ErrPermission) ||
		stderrors.Is(err, syscall.EPERM) ||
		stderrors.Is(err, syscall.EACCES)
}
