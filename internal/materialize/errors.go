// Where: internal/materialize/errors.go
// What: Error types surfaced by tree materialization.
// Why: Let the CLI map failures to messages and exit codes with errors.As.
package materialize

import (
	"errors"
	"fmt"
)

var (
	errFilesystemNil = errors.New("filesystem is nil")
	errTemplatesNil  = errors.New("template source is nil")
	errRootRequired  = errors.New("root path is required")
)

// AlreadyExistsError reports that the target root is already present.
// Nothing is written when it is returned.
type AlreadyExistsError struct {
	Path string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("directory %q already exists", e.Path)
}

// IOError wraps a filesystem failure. Files written before it stay on disk.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
