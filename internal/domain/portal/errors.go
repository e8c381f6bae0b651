// Where: internal/domain/portal/errors.go
// What: Validation errors for project requests and file trees.
// Why: Let callers match failures with errors.Is.
package portal

import "errors"

var (
	ErrProjectNameRequired = errors.New("project name is required")
	ErrInvalidProjectName  = errors.New("project name must be a single directory name")
	ErrEmptyPath           = errors.New("file path is empty")
	ErrInvalidPath         = errors.New("file path must be relative without dot segments")
	ErrDuplicatePath       = errors.New("duplicate file path")
)
