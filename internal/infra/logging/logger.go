// Where: internal/infra/logging/logger.go
// What: Structured logger construction.
// Why: Diagnostics go to stderr at a configurable level, separate from user-facing console output.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/openmfp/create-portal/internal/meta"
)

// DefaultLevel keeps the console quiet unless something goes wrong.
const DefaultLevel = "warn"

// New returns a logger writing to out at the named level.
// An empty level falls back to DefaultLevel.
func New(out io.Writer, level string) (*log.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(out, log.Options{
		Level:  lvl,
		Prefix: meta.AppName,
	}), nil
}

// ParseLevel converts a level name such as "debug" or "info".
func ParseLevel(level string) (log.Level, error) {
	name := strings.ToLower(strings.TrimSpace(level))
	if name == "" {
		name = DefaultLevel
	}
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q: supported levels are debug, info, warn, error, fatal", level)
	}
	return lvl, nil
}
