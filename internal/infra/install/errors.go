package install

import (
	"errors"
	"fmt"
	"strings"
)

var (
	errRunnerNil       = errors.New("command runner is nil")
	errInstallRootNone = errors.New("install root is required")
)

// SubprocessError reports a failed install step. Files already written stay on disk.
type SubprocessError struct {
	Step    string
	Command []string
	Dir     string
	Err     error
}

func (e *SubprocessError) Error() string {
	return fmt.Sprintf("%s (%s) failed: %v", e.Step, strings.Join(e.Command, " "), e.Err)
}

func (e *SubprocessError) Unwrap() error {
	return e.Err
}
