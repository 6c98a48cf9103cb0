package cmd

import (
	"fmt"
)

// ExitCodeError carries a process exit status from a command to main.
type ExitCodeError struct {
	Code int
}

// NewExitCodeError returns an ExitCodeError for code.
func NewExitCodeError(code int) *ExitCodeError {
	return &ExitCodeError{Code: code}
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// daemonNotRunningError returns a user-friendly error when the vty socket
// cannot be reached.
func daemonNotRunningError(socket string, err error) error {
	return fmt.Errorf("zrpcd is not running (no vty socket at %s); start it with \"zrpcd run\": %w", socket, err)
}
