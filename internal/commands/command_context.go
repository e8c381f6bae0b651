// Where: internal/commands/command_context.go
// What: Shared exit helpers for CLI commands.
// Why: Keep error reporting and exit codes consistent across commands.
package commands

import (
	"fmt"
	"io"
)

// exitWithError prints an error message to the output writer and returns
// exit code 1 for CLI error handling.
func exitWithError(out io.Writer, err error) int {
	writeLine(out, fmt.Sprintf("✗ %v", err))
	return 1
}
